package dates

import (
	"regexp"
	"strings"
)

var (
	spaceRunRe = regexp.MustCompile(`\s+`)

	// Archival date cells are frequently wrapped in brackets or braces and
	// suffixed with question marks: "[ 2000? ]", "{1994}". A leading
	// "between" carries no information once the range itself is parsed.
	enclosingRe = regexp.MustCompile(`(?i)^[\[{\s]*(?:between\s+)?(.*?)[\s?\]}]*$`)

	// Built-in "no date" markers: empty cells, zero-filled or 9999-filled
	// placeholder dates, n.d. variants, NULL, truncated years like "19-?",
	// single digits, and the word unknown anywhere in the cell.
	noDateRe = regexp.MustCompile(
		`(?i)^$|^0\d{3}\D\d{2}\D\d{2}$|^9999\D\d{2}\D\d{2}$|^n\.?d\.?$|^null$|` +
			`^\d{2}[-_]*\??$|^\d$|^no\s+date$|^undated$|^n/a$|unknown`)
)

// Normalize cleans a raw date expression: trims, collapses runs of
// whitespace, and strips enclosing brackets and trailing question marks.
// Pure function, no interpretation happens here.
func Normalize(text string) string {
	s := strings.TrimSpace(text)
	s = spaceRunRe.ReplaceAllString(s, " ")
	if m := enclosingRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	return strings.TrimSpace(s)
}

// isUnknown reports whether a normalized expression is a recognized "no
// date" marker, either built-in or configured.
func (p *Parser) isUnknown(text string) bool {
	if noDateRe.MatchString(text) {
		return true
	}
	for _, syn := range p.cfg.UnknownSynonyms {
		if strings.EqualFold(text, syn) {
			return true
		}
	}
	return false
}
