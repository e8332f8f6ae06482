package token

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete signals that the buffer ended inside a token, or before
	// the next token could be decided.  It is not an error in the input:
	// supplying more bytes and retrying from the same offset may succeed.
	ErrIncomplete = errors.New("incomplete input")

	ErrUnterminated      = errors.New("unterminated")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadChar           = errors.New("bad character")
	ErrEmptyQuoted       = errors.New("empty quoted word")
)

type PosErr struct {
	Err error
	Pos Pos
}

func (e *PosErr) Unwrap() error {
	return e.Err
}

func (e *PosErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func NewPosErr(e error, p *Pos) *PosErr {
	return &PosErr{Err: e, Pos: *p}
}

func ExpectedErr(what string, p *Pos) error {
	return NewPosErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewPosErr(fmt.Errorf("unexpected %s", what), p)
}
