package dates

import "fmt"

// ParseError reports an expression whose shape a handler recognized but whose
// value is not a possible calendar date (e.g. "2001-02-31"). It is fatal: the
// cascade does not continue past it.
type ParseError struct {
	Expression string
	Reason     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot resolve date %q: %s", e.Expression, e.Reason)
}

// UnparseableDateError reports an expression no handler and no fallback could
// interpret. It is only returned when the parser runs in timid mode.
type UnparseableDateError struct {
	Expression string
}

func (e *UnparseableDateError) Error() string {
	return fmt.Sprintf("could not parse date %q", e.Expression)
}
