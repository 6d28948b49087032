package dates

import "time"

// ISODate is the layout used for all start/end dates crossing the boundary.
const ISODate = "2006-01-02"

// DateRange is the result of interpreting one date expression: a canonical
// label plus an inclusive start/end span. Start is never after End.
type DateRange struct {
	Label string
	Start time.Time
	End   time.Time
}

// Point reports whether the range covers a single day.
func (r DateRange) Point() bool {
	return r.Start.Equal(r.End)
}

// EventDates is the triple written back into AtoM CSV columns. Start and end
// are ISO calendar dates.
type EventDates struct {
	EventDates      string `json:"eventDates"`
	EventStartDates string `json:"eventStartDates"`
	EventEndDates   string `json:"eventEndDates"`
}

// Triple formats a DateRange into the three CSV-facing strings.
func (r DateRange) Triple() EventDates {
	return EventDates{
		EventDates:      r.Label,
		EventStartDates: r.Start.Format(ISODate),
		EventEndDates:   r.End.Format(ISODate),
	}
}

// newRange builds a DateRange with the endpoints sorted. Handlers use it so a
// reversed textual range can never produce start > end.
func newRange(label string, start, end time.Time) DateRange {
	if end.Before(start) {
		start, end = end, start
	}
	return DateRange{Label: label, Start: start, End: end}
}

// ymd is a shorthand for a UTC calendar date.
func ymd(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysIn returns the number of days in a month, accounting for leap years.
func daysIn(year int, month time.Month) int {
	return ymd(year, month+1, 0).Day()
}

// yearSpan covers a full calendar year.
func yearSpan(label string, year int) DateRange {
	return DateRange{
		Label: label,
		Start: ymd(year, time.January, 1),
		End:   ymd(year, time.December, 31),
	}
}

// monthSpan covers a full calendar month.
func monthSpan(label string, year int, month time.Month) DateRange {
	return DateRange{
		Label: label,
		Start: ymd(year, month, 1),
		End:   ymd(year, month, daysIn(year, month)),
	}
}
