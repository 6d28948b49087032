package dates

import "time"

// CenturyConvention selects how "Nth century" maps onto years.
type CenturyConvention string

const (
	// CenturyOrdinal is the conventional numbering: the 19th century is
	// 1801-1900.
	CenturyOrdinal CenturyConvention = "ordinal"
	// CenturyLiteral maps the 19th century onto 1800-1899.
	CenturyLiteral CenturyConvention = "literal"
)

// Day-of-month and date-source preferences forwarded to the fallback parser.
const (
	PreferFirst   = "first"
	PreferCurrent = "current"
	PreferLast    = "last"

	PreferPast          = "past"
	PreferFuture        = "future"
	PreferCurrentPeriod = "current"
)

// FallbackOptions configures the natural-language fallback parser.
type FallbackOptions struct {
	// Languages restricts which languages the fallback parser considers.
	Languages []string
	// PreferDayOfMonth resolves expressions with no day component
	// (first, current, last).
	PreferDayOfMonth string
	// PreferDateSource resolves ambiguous relative phrases
	// (past, future, current).
	PreferDateSource string
}

// Config holds everything a Parser needs. It is copied at construction and
// never mutated afterwards, so one Parser can serve concurrent callers.
type Config struct {
	// UnknownLabel is written to eventDates when nothing could be resolved.
	UnknownLabel string
	// UnknownStart and UnknownEnd bound the range reported for unknown
	// dates. If supplied reversed they are swapped at construction.
	UnknownStart time.Time
	UnknownEnd   time.Time
	// Timid makes total parse failure an error instead of degrading to a
	// best-effort range.
	Timid bool
	// UnknownSynonyms lists extra tokens treated as "no date", on top of
	// the built-in set.
	UnknownSynonyms []string
	// Centuries selects the century numbering convention.
	Centuries CenturyConvention
	// Fallback is passed through to the natural-language parser.
	Fallback FallbackOptions
}

// DefaultConfig mirrors the defaults the archival pipelines have always used.
func DefaultConfig() Config {
	return Config{
		UnknownLabel: "Unknown date",
		UnknownStart: ymd(1800, time.January, 1),
		UnknownEnd:   ymd(2010, time.January, 1),
		Centuries:    CenturyOrdinal,
		Fallback: FallbackOptions{
			Languages:        []string{"en"},
			PreferDayOfMonth: PreferFirst,
			PreferDateSource: PreferPast,
		},
	}
}

// unknownRange is the triple every unknown-marker input resolves to.
func (c *Config) unknownRange() DateRange {
	return DateRange{Label: c.UnknownLabel, Start: c.UnknownStart, End: c.UnknownEnd}
}
