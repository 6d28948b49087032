package dates

import "strings"

// SplitBy splits a string on a separator, trimming each piece and dropping
// empties. Used for multi-date cells joined with " and ".
func SplitBy(s, sep string) []string {
	var items []string
	for _, sub := range strings.Split(s, sep) {
		sub = strings.TrimSpace(sub)
		if sub != "" {
			items = append(items, sub)
		}
	}
	return items
}

// Cardinality counts the number of values in a pipe-delimited AtoM cell. An
// empty or blank cell has cardinality zero.
func Cardinality(s string) int {
	if strings.TrimSpace(s) == "" {
		return 0
	}
	return strings.Count(s, "|") + 1
}
