// Package csvfix repairs the date columns of AtoM CSV exports.
//
// Each row carries an eventDates cell plus optional explicit
// eventStartDates/eventEndDates cells. The fixer reconciles the three: the
// parsed eventDates range is preferred, but explicit start/end values that
// fall outside it widen the final range rather than being discarded.
package csvfix

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/archivist-labs/atomdates/internal/dates"
)

// Fixer repairs one row at a time. It is as reusable and goroutine-safe as
// the parser it wraps.
type Fixer struct {
	parser *dates.Parser
}

// NewFixer wraps a parser.
func NewFixer(p *dates.Parser) *Fixer {
	return &Fixer{parser: p}
}

// FixRow reconciles one row's eventDates, eventStartDates and eventEndDates
// cells into a clean triple. Cells may hold multiple dates joined by
// " and "; pipe-delimited cells are rejected because a pipe separates
// different events, which cannot be merged into one range.
func (f *Fixer) FixRow(eventDate, startDate, endDate string) (dates.EventDates, error) {
	eventDate = strings.TrimSpace(eventDate)
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)

	for _, cell := range []string{eventDate, startDate, endDate} {
		if dates.Cardinality(cell) > 1 {
			return dates.EventDates{}, fmt.Errorf("pipe-delimited date cell %q is not supported", cell)
		}
	}

	if triple, ok := f.trivialRow(eventDate, startDate, endDate); ok {
		return triple, nil
	}
	return f.fixGroup(eventDate, startDate, endDate)
}

// trivialRow short-circuits rows that need no parsing: fully empty rows and
// rows already carrying the unknown label become the unknown triple, and
// all-NULL rows stay NULL.
func (f *Fixer) trivialRow(eventDate, startDate, endDate string) (dates.EventDates, bool) {
	cfg := f.parser.Config()
	if (eventDate == "" && startDate == "" && endDate == "") || eventDate == cfg.UnknownLabel {
		return f.parser.UnknownRange().Triple(), true
	}

	allNull := true
	for _, cell := range []string{eventDate, startDate, endDate} {
		if cell != "" && !strings.EqualFold(cell, "null") {
			allNull = false
			break
		}
	}
	if allNull {
		return dates.EventDates{EventDates: "NULL", EventStartDates: "NULL", EventEndDates: "NULL"}, true
	}
	return dates.EventDates{}, false
}

func (f *Fixer) fixGroup(eventDate, startDate, endDate string) (dates.EventDates, error) {
	labels := make(map[string]struct{})
	endpoints := make(map[time.Time]struct{})

	for _, part := range dates.SplitBy(eventDate, " and ") {
		r, err := f.parser.Parse(part)
		if err != nil {
			return dates.EventDates{}, err
		}
		labels[r.Label] = struct{}{}
		endpoints[r.Start] = struct{}{}
		endpoints[r.End] = struct{}{}
	}

	curMin := f.minAvoidingReserved(endpoints)
	curMax := f.maxAvoidingReserved(endpoints)
	curUnknown := f.isUnknownPair(curMin, curMax)

	seMin, seMax, seOK := f.startEndRange(startDate, endDate)
	if !seOK {
		seMin, seMax = curMin, curMax
	}
	seUnknown := f.isUnknownPair(seMin, seMax)

	if curUnknown && !seUnknown {
		curMin, curMax = seMin, seMax
	}

	// Explicit start/end cells outside the parsed eventDates widen the
	// final range; otherwise the parsed range stands.
	var newStart, newEnd time.Time
	var newLabel string
	if seMin.Before(curMin) || seMax.After(curMax) {
		newStart = minTime(curMin, seMin)
		newEnd = maxTime(curMax, seMax)
		newLabel = dates.RangeLabel(newStart, newEnd)
	} else {
		newStart = curMin
		newEnd = curMax
		newLabel = f.wellFormattedLabel(labels, curMin, curMax)
	}

	return dates.EventDates{
		EventDates:      newLabel,
		EventStartDates: newStart.Format(dates.ISODate),
		EventEndDates:   newEnd.Format(dates.ISODate),
	}, nil
}

// startEndRange parses the explicit start/end cells. Unknown and
// unparseable values are skipped rather than reported: these columns are
// advisory next to eventDates.
func (f *Fixer) startEndRange(startDate, endDate string) (time.Time, time.Time, bool) {
	cfg := f.parser.Config()
	strStart := cfg.UnknownStart.Format(dates.ISODate)
	strEnd := cfg.UnknownEnd.Format(dates.ISODate)
	if (startDate == strStart && endDate == strEnd) || (startDate == strEnd && endDate == strStart) {
		return time.Time{}, time.Time{}, false
	}

	endpoints := make(map[time.Time]struct{})
	for _, cell := range uniqueStrings(startDate, endDate) {
		r, err := f.parser.Parse(cell)
		if err != nil {
			continue
		}
		if f.isUnknownPair(r.Start, r.End) {
			continue
		}
		endpoints[r.Start] = struct{}{}
		endpoints[r.End] = struct{}{}
	}
	if len(endpoints) == 0 {
		return time.Time{}, time.Time{}, false
	}

	min, max := spread(endpoints)
	if f.isUnknownPair(min, max) {
		return time.Time{}, time.Time{}, false
	}
	return min, max, true
}

// wellFormattedLabel joins the parsed labels, dropping NULL and unknown
// placeholders when real dates exist beside them. With no usable labels the
// range itself is summarized by year.
func (f *Fixer) wellFormattedLabel(labels map[string]struct{}, min, max time.Time) string {
	cfg := f.parser.Config()

	var usable []string
	for label := range labels {
		if label == "NULL" || label == cfg.UnknownLabel {
			continue
		}
		usable = append(usable, label)
	}
	if len(usable) > 0 {
		sort.Strings(usable)
		return strings.Join(usable, " and ")
	}

	if f.isUnknownPair(min, max) {
		return cfg.UnknownLabel
	}
	if min.Year() == max.Year() {
		return fmt.Sprintf("%d", min.Year())
	}
	return fmt.Sprintf("%d - %d", min.Year(), max.Year())
}

func (f *Fixer) isUnknownPair(start, end time.Time) bool {
	cfg := f.parser.Config()
	return start.Equal(cfg.UnknownStart) && end.Equal(cfg.UnknownEnd)
}

// minAvoidingReserved picks the earliest endpoint, preferring real dates
// over the reserved unknown defaults whenever any exist.
func (f *Fixer) minAvoidingReserved(endpoints map[time.Time]struct{}) time.Time {
	return f.pickAvoidingReserved(endpoints, f.parser.Config().UnknownStart, minTime)
}

// maxAvoidingReserved picks the latest endpoint the same way.
func (f *Fixer) maxAvoidingReserved(endpoints map[time.Time]struct{}) time.Time {
	return f.pickAvoidingReserved(endpoints, f.parser.Config().UnknownEnd, maxTime)
}

func (f *Fixer) pickAvoidingReserved(endpoints map[time.Time]struct{}, fallback time.Time, pick func(a, b time.Time) time.Time) time.Time {
	if len(endpoints) == 0 {
		return fallback
	}
	if len(endpoints) == 1 {
		for t := range endpoints {
			return t
		}
	}

	cfg := f.parser.Config()
	var chosen time.Time
	found := false
	for t := range endpoints {
		if t.Equal(cfg.UnknownStart) || t.Equal(cfg.UnknownEnd) {
			continue
		}
		if !found {
			chosen = t
			found = true
			continue
		}
		chosen = pick(chosen, t)
	}
	if !found {
		return fallback
	}
	return chosen
}

func spread(endpoints map[time.Time]struct{}) (time.Time, time.Time) {
	var min, max time.Time
	first := true
	for t := range endpoints {
		if first {
			min, max = t, t
			first = false
			continue
		}
		min = minTime(min, t)
		max = maxTime(max, t)
	}
	return min, max
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func uniqueStrings(values ...string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
