package query

import (
	"errors"
	"fmt"
)

// ErrUnknownQuery is returned for a query type other than 'k' or 'q'.
var ErrUnknownQuery = errors.New("unknown query type")

// ParseError describes a query whose tokens could not be read.
type ParseError struct {
	Query int    // 1-based index of the query in the stream
	Token string // offending token, empty at end of input
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("query %d: %v", e.Query, e.Err)
	}
	return fmt.Sprintf("query %d: token %q: %v", e.Query, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
