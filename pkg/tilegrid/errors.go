package tilegrid

import "fmt"

// ParseError indicates malformed tile map or grid KML input.
//
// The first malformed line or field aborts the operation that encountered it;
// the registry is left with its pre-call contents.
type ParseError struct {
	Line   int    // 1-based line number in the tile map, 0 when not line-oriented
	Field  string // offending field or placemark, may be empty
	Reason string
	Err    error // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field %q)", msg, e.Field)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
