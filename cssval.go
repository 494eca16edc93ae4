package cssval

import (
	"errors"
	"fmt"
)

// ErrNoMatch reports that a speculative attempt found the input does not
// start this grammar. The cursor is left unmoved and the caller is free to
// try alternatives.
var ErrNoMatch = errors.New("cssval: no match")

// Error represents a parse error: a required component is missing or an
// illegal combination was written. Unlike ErrNoMatch it is not retried.
type Error struct {
	Message string
	Pos     Pos
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	return e.Message
}

// invalidf builds an *Error with the source location captured at failure time.
func invalidf(pos Pos, format string, v ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, v...), Pos: pos}
}
