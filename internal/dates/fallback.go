package dates

import (
	"strconv"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/markusmobius/go-dateparser/date"
)

// fallbackParser adapts the general natural-language date parser. It only
// runs after every pattern handler has declined, because the delegate is
// slow on text it cannot recognize.
type fallbackParser struct {
	cfg *dateparser.Configuration
}

func newFallbackParser(opts FallbackOptions) *fallbackParser {
	cfg := &dateparser.Configuration{
		Languages:       opts.Languages,
		DefaultTimezone: time.UTC,
	}

	switch opts.PreferDayOfMonth {
	case PreferLast:
		cfg.PreferredDayOfMonth = dateparser.Last
	case PreferCurrent:
		cfg.PreferredDayOfMonth = dateparser.Current
	default:
		cfg.PreferredDayOfMonth = dateparser.First
	}

	switch opts.PreferDateSource {
	case PreferFuture:
		cfg.PreferredDateSource = dateparser.Future
	case PreferCurrentPeriod:
		cfg.PreferredDateSource = dateparser.CurrentPeriod
	default:
		cfg.PreferredDateSource = dateparser.Past
	}

	return &fallbackParser{cfg: cfg}
}

// parse delegates to the natural-language parser. A result the delegate only
// resolved to year or month confidence is widened to the full span of that
// year or month instead of reporting false day-level precision. Years after
// the current year are treated as misparses and declined.
func (f *fallbackParser) parse(text string) (DateRange, bool) {
	dt, err := dateparser.Parse(f.cfg, text)
	if err != nil || dt.Time.IsZero() {
		return DateRange{}, false
	}

	t := dt.Time.In(time.UTC)
	if t.Year() > time.Now().Year() {
		return DateRange{}, false
	}

	switch dt.Period {
	case date.Year:
		return yearSpan(strconv.Itoa(t.Year()), t.Year()), true
	case date.Month:
		return monthSpan(t.Format("January 2006"), t.Year(), t.Month()), true
	default:
		d := ymd(t.Year(), t.Month(), t.Day())
		return DateRange{Label: d.Format(ISODate), Start: d, End: d}, true
	}
}
