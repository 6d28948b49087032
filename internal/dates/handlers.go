package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Regular expression building blocks, shared by the handler cascade. Years
// are restricted to 1000-2999, which is as much as the archival holdings
// ever need.
const (
	yearPat  = `([1-2]\d{3})`
	monthPat = `(1[0-2]|0?[1-9])`
	dayPat   = `(3[0-1]|[1-2][0-9]|0?[1-9])`
	delimPat = `[-—./]`

	// blankPat matches the placeholder a cataloguer used for an unknown
	// date component: 00, X, XX, *, ?.
	blankPat = `(?:00|[Xx]{1,2}|\*+|\?+)`

	// rangeSepPat joins the two sides of an explicit range.
	rangeSepPat = `\s*(?:-|—|–|and|to)\s*`

	monthNamePat = `(jan(?:\.?|uary)?|feb(?:\.?|ruary)?|mar(?:\.?|ch)?|` +
		`apr(?:\.?|il)?|may\.?|jun(?:\.?|e)?|jul(?:\.?|y)?|aug(?:\.?|ust)?|` +
		`sep(?:\.?|t\.?|tember)?|oct(?:\.?|ober)?|nov(?:\.?|ember)?|dec(?:\.?|ember)?)`

	// permissiveYearPat accepts a bare year with optional blank month and
	// day portions: "2000", "2000-00-00", "2000-XX-XX".
	permissiveYearPat = yearPat + `(?:` + delimPat + blankPat + delimPat + blankPat + `)?`

	// decadePat matches "192" in "1920s", "1920's" or truncated "192-".
	decadePat = `([1-2]\d{2})(?:-|—|_|0['’]?s)`
)

var (
	yearRangeRe       = regexp.MustCompile(`(?i)^` + permissiveYearPat + rangeSepPat + permissiveYearPat + `$`)
	abbrevYearRangeRe = regexp.MustCompile(`^` + yearPat + rangeSepPat + `(\d{2})$`)

	ymdRe = regexp.MustCompile(`^` + yearPat + delimPat + monthPat + delimPat + dayPat + `$`)
	mdyRe = regexp.MustCompile(`^` + monthPat + delimPat + dayPat + delimPat + yearPat + `$`)
	dmyRe = regexp.MustCompile(`^` + dayPat + delimPat + monthPat + delimPat + yearPat + `$`)

	yearMonthRangeRe = regexp.MustCompile(`^` +
		yearPat + delimPat + monthPat + delimPat + blankPat + rangeSepPat +
		yearPat + delimPat + monthPat + delimPat + blankPat + `$`)

	ymdRangeRe = regexp.MustCompile(`^` +
		yearPat + delimPat + monthPat + delimPat + dayPat + rangeSepPat +
		yearPat + delimPat + monthPat + delimPat + dayPat + `$`)

	zeroMonthRe = regexp.MustCompile(`^` + yearPat + delimPat + blankPat + delimPat + dayPat + `$`)
	zeroDayRe   = regexp.MustCompile(`^` + yearPat + delimPat + monthPat + delimPat + blankPat + `$`)

	decadeRe      = regexp.MustCompile(`(?i)^(early|late)?\s*` + decadePat + `$`)
	decadeRangeRe = regexp.MustCompile(`(?i)^` + decadePat + rangeSepPat + decadePat + `$`)

	centuryRe = regexp.MustCompile(`(?i)^(\d{1,2})(?:st|nd|rd|th) century$`)

	yearOnlyRe = regexp.MustCompile(`^` + permissiveYearPat + `$`)

	seasonRe = regexp.MustCompile(`(?i)^(spring|easter|summer|fall|winter|christmas|late|year end|early)\s*` + yearPat + `$`)

	monthWordYearRe = regexp.MustCompile(`(?i)^(early|end of|late)?\s*` + monthNamePat + `\s*` + yearPat + `$`)

	monthWordDayYearRe = regexp.MustCompile(`(?i)^` + monthNamePat + `\s*` + dayPat + `(?:,\s*|\s+)` + yearPat + `$`)

	// Excel-style exports: "30-jan-19", "1-mar-1908".
	dayMonthWordYearRe = regexp.MustCompile(`(?i)^` + dayPat + delimPat + monthNamePat + delimPat + `((?:[1-2]\d{3})|(?:\d{2}))$`)

	monthWordDayYearRangeRe = regexp.MustCompile(`(?i)^` +
		monthNamePat + `\s*` + dayPat + `(?:,\s*|\s+)` + yearPat + rangeSepPat +
		monthNamePat + `\s*` + dayPat + `(?:,\s*|\s+)` + yearPat + `$`)

	// Dotted qualifiers need no following space: "ca.1999", "c.1990".
	circaRe = regexp.MustCompile(`(?i)^(?:(?:circa|about|approximately)\s+|(?:ca|c|approx)\.\s*|(?:ca|approx)\s+)`)

	twoDigitRe      = regexp.MustCompile(`^\d{2}$`)
	monthNameOnlyRe = regexp.MustCompile(`(?i)^` + monthNamePat + `$`)
)

var monthsByAbbr = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// monthByName resolves a month word or abbreviation ("Jan.", "august").
func monthByName(name string) (time.Month, bool) {
	key := strings.ToLower(strings.TrimRight(name, "."))
	if len(key) > 3 {
		key = key[:3]
	}
	m, ok := monthsByAbbr[key]
	return m, ok
}

// checkDay validates a day-of-month and reports a ParseError for values that
// cannot exist on the calendar, like February 31.
func checkDay(expr string, year int, month time.Month, day int) error {
	if max := daysIn(year, month); day > max {
		return &ParseError{
			Expression: expr,
			Reason:     fmt.Sprintf("%s %d only has %d days", month, year, max),
		}
	}
	return nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// handleCirca strips approximation qualifiers ("circa", "ca.", "c.",
// "approximately", "about") and resolves the remainder through the rest of
// the cascade. The label keeps only the resolved date, never the qualifier.
func (p *Parser) handleCirca(text string) (DateRange, bool, error) {
	rest := text
	stripped := false
	for {
		loc := circaRe.FindStringIndex(rest)
		if loc == nil {
			break
		}
		rest = strings.TrimSpace(rest[loc[1]:])
		stripped = true
	}
	if !stripped || rest == "" {
		return DateRange{}, false, nil
	}
	// Skip this handler when recursing so repeated qualifiers cannot loop.
	return p.runCascade(rest, 1)
}

// handleYearRange covers "2000 to 2005", "2000-05", "2001-00-00 and
// 2002-00-00". The two years are sorted, never trusted in textual order.
func (p *Parser) handleYearRange(text string) (DateRange, bool, error) {
	var first, second string
	if m := yearRangeRe.FindStringSubmatch(text); m != nil {
		first, second = m[1], m[2]
	} else if m := abbrevYearRangeRe.FindStringSubmatch(text); m != nil {
		first, second = m[1], first2Digits(m[1])+m[2]
	} else {
		return DateRange{}, false, nil
	}

	a, b := atoi(first), atoi(second)
	if b < a {
		a, b = b, a
	}
	label := strconv.Itoa(a)
	if a != b {
		label = fmt.Sprintf("%d - %d", a, b)
	}
	return newRange(label, ymd(a, time.January, 1), ymd(b, time.December, 31)), true, nil
}

func first2Digits(year string) string {
	return year[:2]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// handleYearMonthDay covers fully specified numeric dates: "1999-09-01",
// "12/01/1984", "2014.03.03". Month-first is preferred over day-first when
// both could match, mirroring how the holdings were catalogued.
func (p *Parser) handleYearMonthDay(text string) (DateRange, bool, error) {
	var year, month, day int
	if m := ymdRe.FindStringSubmatch(text); m != nil {
		year, month, day = atoi(m[1]), atoi(m[2]), atoi(m[3])
	} else if m := mdyRe.FindStringSubmatch(text); m != nil {
		month, day, year = atoi(m[1]), atoi(m[2]), atoi(m[3])
	} else if m := dmyRe.FindStringSubmatch(text); m != nil {
		day, month, year = atoi(m[1]), atoi(m[2]), atoi(m[3])
	} else {
		return DateRange{}, false, nil
	}

	if err := checkDay(text, year, time.Month(month), day); err != nil {
		return DateRange{}, false, err
	}
	d := ymd(year, time.Month(month), day)
	return DateRange{Label: d.Format(ISODate), Start: d, End: d}, true, nil
}

// handleYearMonthRange covers "2009-05-00 to 2010-02-00" and friends: both
// sides carry a year and month with a blank day portion.
func (p *Parser) handleYearMonthRange(text string) (DateRange, bool, error) {
	m := yearMonthRangeRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}

	y1, mo1 := atoi(m[1]), time.Month(atoi(m[2]))
	y2, mo2 := atoi(m[3]), time.Month(atoi(m[4]))
	if ymd(y2, mo2, 1).Before(ymd(y1, mo1, 1)) {
		y1, y2 = y2, y1
		mo1, mo2 = mo2, mo1
	}

	label := fmt.Sprintf("%s %d - %s %d", mo1, y1, mo2, y2)
	return DateRange{
		Label: label,
		Start: ymd(y1, mo1, 1),
		End:   ymd(y2, mo2, daysIn(y2, mo2)),
	}, true, nil
}

// handleYearMonthDayRange covers "2009-05-20 to 2008-09-16" and
// "2005/04/06 - 2005/04/08".
func (p *Parser) handleYearMonthDayRange(text string) (DateRange, bool, error) {
	m := ymdRangeRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}

	y1, mo1, d1 := atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3])
	y2, mo2, d2 := atoi(m[4]), time.Month(atoi(m[5])), atoi(m[6])
	if err := checkDay(text, y1, mo1, d1); err != nil {
		return DateRange{}, false, err
	}
	if err := checkDay(text, y2, mo2, d2); err != nil {
		return DateRange{}, false, err
	}

	early := ymd(y1, mo1, d1)
	late := ymd(y2, mo2, d2)
	if late.Before(early) {
		early, late = late, early
	}

	label := RangeLabel(early, late)
	return DateRange{Label: label, Start: early, End: late}, true, nil
}

// RangeLabel formats a resolved span the way the CSV templates expect:
// a single ISO date for a point, otherwise "January 2, 2001 - March 4, 2002".
func RangeLabel(start, end time.Time) string {
	if start.Equal(end) {
		return start.Format(ISODate)
	}
	return start.Format("January 2, 2006") + " - " + end.Format("January 2, 2006")
}

// handleZeroMonth covers "2005-00-01": a blank month makes the day
// meaningless, so the whole year is reported.
func (p *Parser) handleZeroMonth(text string) (DateRange, bool, error) {
	m := zeroMonthRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}
	return yearSpan(m[1], atoi(m[1])), true, nil
}

// handleZeroDay covers "2021-06-XX": year and month known, day blank.
func (p *Parser) handleZeroDay(text string) (DateRange, bool, error) {
	m := zeroDayRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}
	year, month := atoi(m[1]), time.Month(atoi(m[2]))
	return monthSpan(fmt.Sprintf("%s %d", month, year), year, month), true, nil
}

// handleDecadeRange covers "1930s - 1940s".
func (p *Parser) handleDecadeRange(text string) (DateRange, bool, error) {
	m := decadeRangeRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}

	d1, d2 := atoi(m[1]), atoi(m[2])
	if d2 < d1 {
		d1, d2 = d2, d1
	}
	return DateRange{
		Label: fmt.Sprintf("%d - %d", d1*10, d2*10+9),
		Start: ymd(d1*10, time.January, 1),
		End:   ymd(d2*10+9, time.December, 31),
	}, true, nil
}

// handleCentury covers "19th century". With the ordinal convention the 19th
// century is 1801-1900; with the literal convention it is 1800-1899.
func (p *Parser) handleCentury(text string) (DateRange, bool, error) {
	m := centuryRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}

	n := atoi(m[1])
	if n == 0 {
		return DateRange{}, false, &ParseError{Expression: text, Reason: "there is no 0th century"}
	}

	first := (n-1)*100 + 1
	last := n * 100
	if p.cfg.Centuries == CenturyLiteral {
		first, last = (n-1)*100, (n-1)*100+99
	}
	return DateRange{
		Label: strings.ToLower(text),
		Start: ymd(first, time.January, 1),
		End:   ymd(last, time.December, 31),
	}, true, nil
}

// handleDecade covers "1920s", "Early 1990s", "Late 1940s" and truncated
// forms like "190-". Early means the first four years, late the last three.
func (p *Parser) handleDecade(text string) (DateRange, bool, error) {
	m := decadeRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}

	span := strings.ToLower(m[1])
	first := atoi(m[2]) * 10
	label := fmt.Sprintf("%ds", first)

	switch span {
	case "":
		return DateRange{Label: label, Start: ymd(first, time.January, 1), End: ymd(first+9, time.December, 31)}, true, nil
	case "early":
		return DateRange{Label: label, Start: ymd(first, time.January, 1), End: ymd(first+3, time.December, 31)}, true, nil
	case "late":
		return DateRange{Label: label, Start: ymd(first+7, time.January, 1), End: ymd(first+9, time.December, 31)}, true, nil
	}
	return DateRange{}, false, nil
}

// handleYear covers "2017" and permissive forms like "2018-00-00".
func (p *Parser) handleYear(text string) (DateRange, bool, error) {
	m := yearOnlyRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}
	return yearSpan(m[1], atoi(m[1])), true, nil
}

// handleSeason covers English seasonal dates like "Spring 2002". The spans
// follow the cataloguing conventions the descriptions were written with;
// winter crosses into the following year.
func (p *Parser) handleSeason(text string) (DateRange, bool, error) {
	m := seasonRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}

	season := strings.ToLower(m[1])
	year := atoi(m[2])
	label := capitalize(season) + " " + m[2]

	var start, end time.Time
	switch season {
	case "early":
		start = ymd(year, time.January, 1)
		end = ymd(year, time.February, daysIn(year, time.February))
	case "spring":
		start = ymd(year, time.March, 1)
		end = ymd(year, time.May, 31)
	case "easter":
		start = ymd(year, time.April, 1)
		end = ymd(year, time.April, 30)
	case "summer":
		start = ymd(year, time.June, 1)
		end = ymd(year, time.August, 31)
	case "fall":
		start = ymd(year, time.September, 1)
		end = ymd(year, time.November, 30)
	case "winter":
		start = ymd(year, time.December, 1)
		end = ymd(year+1, time.February, daysIn(year+1, time.February))
	case "christmas":
		start = ymd(year, time.December, 20)
		end = ymd(year, time.December, 31)
	case "late":
		start = ymd(year, time.November, 1)
		end = ymd(year, time.December, 31)
	case "year end":
		start = ymd(year, time.December, 1)
		end = ymd(year, time.December, 31)
	default:
		return DateRange{}, false, nil
	}
	return DateRange{Label: label, Start: start, End: end}, true, nil
}

// handleMonthWordYear covers "August 1974", "Jan. 1979" and span-qualified
// forms like "Late May 2003" or "end of June 1944".
func (p *Parser) handleMonthWordYear(text string) (DateRange, bool, error) {
	m := monthWordYearRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}
	month, ok := monthByName(m[2])
	if !ok {
		return DateRange{}, false, nil
	}

	span := strings.ToLower(m[1])
	year := atoi(m[3])
	label := fmt.Sprintf("%s %d", month, year)

	switch span {
	case "":
		return monthSpan(label, year, month), true, nil
	case "early":
		return DateRange{Label: label, Start: ymd(year, month, 1), End: ymd(year, month, 10)}, true, nil
	case "end of":
		return DateRange{Label: label, Start: ymd(year, month, 16), End: ymd(year, month, daysIn(year, month))}, true, nil
	case "late":
		return DateRange{Label: label, Start: ymd(year, month, 21), End: ymd(year, month, daysIn(year, month))}, true, nil
	}
	return DateRange{}, false, nil
}

// handleMonthWordDayYearRange covers "September 29, 2002 to September 30,
// 2002".
func (p *Parser) handleMonthWordDayYearRange(text string) (DateRange, bool, error) {
	m := monthWordDayYearRangeRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}
	mo1, ok1 := monthByName(m[1])
	mo2, ok2 := monthByName(m[4])
	if !ok1 || !ok2 {
		return DateRange{}, false, nil
	}

	y1, d1 := atoi(m[3]), atoi(m[2])
	y2, d2 := atoi(m[6]), atoi(m[5])
	if err := checkDay(text, y1, mo1, d1); err != nil {
		return DateRange{}, false, err
	}
	if err := checkDay(text, y2, mo2, d2); err != nil {
		return DateRange{}, false, err
	}

	early := ymd(y1, mo1, d1)
	late := ymd(y2, mo2, d2)
	if late.Before(early) {
		early, late = late, early
	}
	return DateRange{Label: RangeLabel(early, late), Start: early, End: late}, true, nil
}

// handleMonthWordDayYear covers "January 17, 2009" and "mar. 6 1994".
func (p *Parser) handleMonthWordDayYear(text string) (DateRange, bool, error) {
	m := monthWordDayYearRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}
	month, ok := monthByName(m[1])
	if !ok {
		return DateRange{}, false, nil
	}

	year, day := atoi(m[3]), atoi(m[2])
	if err := checkDay(text, year, month, day); err != nil {
		return DateRange{}, false, err
	}
	d := ymd(year, month, day)
	return DateRange{Label: d.Format(ISODate), Start: d, End: d}, true, nil
}

// handleDayMonthWordYear covers Excel-style exports: "30-jan-19",
// "1-mar-1908". A two-digit year is read as 19xx, which matches the era of
// the records these spreadsheets came from.
func (p *Parser) handleDayMonthWordYear(text string) (DateRange, bool, error) {
	m := dayMonthWordYearRe.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false, nil
	}
	month, ok := monthByName(m[2])
	if !ok {
		return DateRange{}, false, nil
	}

	yearStr := m[3]
	if len(yearStr) == 2 {
		yearStr = "19" + yearStr
	}
	year, day := atoi(yearStr), atoi(m[1])
	if err := checkDay(text, year, month, day); err != nil {
		return DateRange{}, false, err
	}
	d := ymd(year, month, day)
	return DateRange{Label: d.Format(ISODate), Start: d, End: d}, true, nil
}

// textualRangeSeps are tried in order: spaced separators first so a date
// like "April 1887 - 1889" is not cut inside "1887".
var textualRangeSeps = []string{" - ", " – ", " — ", " to ", " and ", "–", "—", "-"}

// handleTextualRange is the generic range handler: two single-date sides
// joined by a separator, where the sides may carry different precision
// ("April 1887-1889"). Each side resolves to its own earliest/latest span
// and the overall range takes the earliest start and the latest end, so a
// reversed expression yields the same result.
func (p *Parser) handleTextualRange(text string) (DateRange, bool, error) {
	for _, sep := range textualRangeSeps {
		i := strings.Index(text, sep)
		if i < 0 {
			continue
		}
		left := strings.TrimSpace(text[:i])
		right := strings.TrimSpace(text[i+len(sep):])
		if left == "" || right == "" {
			continue
		}

		lr, lok, err := p.resolveSingle(left)
		if err != nil {
			return DateRange{}, false, err
		}
		rr, rok, err := p.resolveSingle(right)
		if err != nil {
			return DateRange{}, false, err
		}
		if !lok && !rok {
			continue
		}
		if !rok {
			rr, rok = inferSide(right, lr)
		}
		if !lok {
			lr, lok = inferSide(left, rr)
		}
		if !lok || !rok {
			continue
		}

		first, second := lr, rr
		if rr.Start.Before(lr.Start) {
			first, second = rr, lr
		}
		start := first.Start
		end := second.End
		if first.End.After(end) {
			end = first.End
		}
		return DateRange{Label: first.Label + " - " + second.Label, Start: start, End: end}, true, nil
	}
	return DateRange{}, false, nil
}

// inferSide resolves a range side that is incomplete on its own by borrowing
// context from the other, already resolved side: a two-digit year takes the
// other side's century ("April 1887-89"), a bare month name takes its year
// ("April - May 1887").
func inferSide(side string, other DateRange) (DateRange, bool) {
	if twoDigitRe.MatchString(side) {
		year := other.Start.Year()/100*100 + atoi(side)
		return yearSpan(strconv.Itoa(year), year), true
	}
	if monthNameOnlyRe.MatchString(side) {
		if month, ok := monthByName(side); ok {
			year := other.Start.Year()
			return monthSpan(fmt.Sprintf("%s %d", month, year), year, month), true
		}
	}
	return DateRange{}, false
}
