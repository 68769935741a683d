package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
)

// SyntaxError reports text that failed to parse in its declared format.
type SyntaxError struct {
	Format string
	Pos    *Pos
	Msg    string
	Err    error
}

func NewSyntaxError(format string, pos *Pos, msg string) *SyntaxError {
	return &SyntaxError{Format: format, Pos: pos, Msg: msg}
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSyntax}
	}
	return []error{ErrSyntax, e.Err}
}

func (e *SyntaxError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Pos == nil {
		return fmt.Sprintf("%s: invalid %s: %s", ErrSyntax, e.Format, msg)
	}
	return fmt.Sprintf("%s: invalid %s: %s near %s", ErrSyntax, e.Format, msg, e.Pos)
}
