package pageviews

import (
	"errors"
	"fmt"
)

var (
	ErrNoData        = errors.New("no data")
	ErrMalformedRow  = errors.New("malformed row")
	ErrDuplicateDate = errors.New("duplicate date")
	ErrMissingColumn = errors.New("missing column")
)

// Error records a failed operation and, for input errors, the line of the
// offending CSV record.
type Error struct {
	Op   string
	Line int // 0 if unknown
	Err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("pageviews: %s: line %d: %v", e.Op, e.Line, e.Err)
	}
	return fmt.Sprintf("pageviews: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
