// Package dates interprets the free-form date expressions found in archival
// description metadata.
//
// AtoM CSV templates carry three date columns: eventDates, eventStartDates,
// and eventEndDates. A Parser turns one raw expression ("circa 1990s",
// "April 1887-1889", "undated") into a clean label plus a concrete,
// inclusive start/end range for those columns. Interpretation runs through
// an ordered cascade of pattern handlers, then a natural-language fallback
// parser, then a configured degrade policy.
package dates

import (
	"regexp"
	"strings"
	"time"
)

// handler is one recognizer in the cascade. matched=false means "not my
// shape, try the next one"; a non-nil error means the shape was recognized
// but the value is impossible, which stops the cascade.
type handler struct {
	name string
	fn   func(text string) (DateRange, bool, error)
}

// Parser interprets date expressions. It holds only immutable configuration
// after construction, so a single instance may be shared across a whole
// batch of records, including from concurrent goroutines.
type Parser struct {
	cfg      Config
	cascade  []handler
	singles  []handler
	fallback *fallbackParser
}

// bareYearRe finds a year anywhere in otherwise unparseable text.
var bareYearRe = regexp.MustCompile(`[1-2]\d{3}`)

// New builds a Parser from the given configuration. Zero-valued fields fall
// back to DefaultConfig, and reversed unknown start/end dates are swapped.
func New(cfg Config) *Parser {
	def := DefaultConfig()
	if cfg.UnknownLabel == "" {
		cfg.UnknownLabel = def.UnknownLabel
	}
	if cfg.UnknownStart.IsZero() {
		cfg.UnknownStart = def.UnknownStart
	}
	if cfg.UnknownEnd.IsZero() {
		cfg.UnknownEnd = def.UnknownEnd
	}
	if cfg.UnknownEnd.Before(cfg.UnknownStart) {
		cfg.UnknownStart, cfg.UnknownEnd = cfg.UnknownEnd, cfg.UnknownStart
	}
	if cfg.Centuries == "" {
		cfg.Centuries = def.Centuries
	}
	if len(cfg.Fallback.Languages) == 0 {
		cfg.Fallback.Languages = def.Fallback.Languages
	}

	p := &Parser{cfg: cfg}
	p.fallback = newFallbackParser(cfg.Fallback)

	// Single-expression handlers, also used to resolve each side of a
	// textual range. Specific shapes come before general ones.
	p.singles = []handler{
		{"year-month-day", p.handleYearMonthDay},
		{"zero-month", p.handleZeroMonth},
		{"zero-day", p.handleZeroDay},
		{"century", p.handleCentury},
		{"decade", p.handleDecade},
		{"year", p.handleYear},
		{"season", p.handleSeason},
		{"month-year", p.handleMonthWordYear},
		{"month-day-year", p.handleMonthWordDayYear},
		{"day-month-year", p.handleDayMonthWordYear},
	}

	// Full cascade: circa first so qualifiers are stripped before any
	// shape is tried, then ranges before singles, then the generic
	// textual range as the most permissive recognizer.
	p.cascade = []handler{
		{"circa", p.handleCirca},
		{"year-range", p.handleYearRange},
		{"year-month-range", p.handleYearMonthRange},
		{"year-month-day-range", p.handleYearMonthDayRange},
		{"decade-range", p.handleDecadeRange},
		{"month-day-year-range", p.handleMonthWordDayYearRange},
	}
	p.cascade = append(p.cascade, p.singles...)
	p.cascade = append(p.cascade, handler{"textual-range", p.handleTextualRange})

	return p
}

// Config returns a copy of the parser's effective configuration.
func (p *Parser) Config() Config {
	return p.cfg
}

// UnknownRange is the triple reported for unknown-date markers.
func (p *Parser) UnknownRange() DateRange {
	return p.cfg.unknownRange()
}

// runCascade tries handlers starting at the given index. Index 1 skips the
// circa handler, which is how circa recursion avoids looping.
func (p *Parser) runCascade(text string, from int) (DateRange, bool, error) {
	for _, h := range p.cascade[from:] {
		r, ok, err := h.fn(text)
		if err != nil {
			return DateRange{}, false, err
		}
		if ok {
			return r, true, nil
		}
	}
	return DateRange{}, false, nil
}

// resolveSingle resolves one side of a range through the single-expression
// handlers only.
func (p *Parser) resolveSingle(text string) (DateRange, bool, error) {
	for _, h := range p.singles {
		r, ok, err := h.fn(text)
		if err != nil {
			return DateRange{}, false, err
		}
		if ok {
			return r, true, nil
		}
	}
	return DateRange{}, false, nil
}

// Parse interprets a single date expression and returns its resolved range.
//
// Errors are limited to *ParseError (a handler recognized the shape but the
// value is calendar-impossible) and, in timid mode, *UnparseableDateError
// when nothing at all could be extracted. With timid off, total failure
// degrades: any bare year in the text yields that year's span, otherwise the
// configured unknown range is returned with the original text as label.
func (p *Parser) Parse(text string) (DateRange, error) {
	norm := Normalize(text)
	if p.isUnknown(norm) {
		return p.cfg.unknownRange(), nil
	}

	r, ok, err := p.runCascade(norm, 0)
	if err != nil {
		return DateRange{}, err
	}
	if ok {
		return r, nil
	}

	if r, ok := p.fallback.parse(norm); ok {
		return r, nil
	}

	if p.cfg.Timid {
		return DateRange{}, &UnparseableDateError{Expression: strings.TrimSpace(text)}
	}
	return p.degrade(strings.TrimSpace(text)), nil
}

// degrade is the best-effort recovery for timid=false: scan the raw text for
// a plausible year and report its span, else fall back to the configured
// unknown range. Either way the original text is kept as the label so no
// information is silently dropped.
func (p *Parser) degrade(text string) DateRange {
	for _, tok := range bareYearRe.FindAllString(text, -1) {
		year := atoi(tok)
		if year < p.cfg.UnknownStart.Year() || year > time.Now().Year() {
			continue
		}
		r := yearSpan(text, year)
		return r
	}
	return DateRange{
		Label: text,
		Start: p.cfg.UnknownStart,
		End:   p.cfg.UnknownEnd,
	}
}

// ParseEventDates interprets one expression and formats the result as the
// eventDates / eventStartDates / eventEndDates triple.
func (p *Parser) ParseEventDates(text string) (EventDates, error) {
	r, err := p.Parse(text)
	if err != nil {
		return EventDates{}, err
	}
	return r.Triple(), nil
}
