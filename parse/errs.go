package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/tptp-format/go-tptp/token"
)

var (
	ErrParse = errors.New("parse error")
	// ErrIncomplete is token.ErrIncomplete: the input ended before the
	// production could be decided.  Retry from the same offset with more
	// input.
	ErrIncomplete = token.ErrIncomplete
	ErrDepth      = fmt.Errorf("%w: nesting too deep", ErrParse)
)

// SyntaxError reports a position at which no alternative of the current
// production applies.
type SyntaxError struct {
	Pos      token.Pos
	Expected []string
	Found    string
}

func (e *SyntaxError) Unwrap() error {
	return ErrParse
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s: unexpected %s at %s", ErrParse, e.Found, e.Pos.String())
	}
	return fmt.Sprintf("%s: expected %s, found %s at %s", ErrParse,
		strings.Join(e.Expected, " or "), e.Found, e.Pos.String())
}

// Status classifies the outcome of a parse.
type Status int

const (
	Complete Status = iota
	Incomplete
	Malformed
)

func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case Incomplete:
		return "incomplete"
	default:
		return "malformed"
	}
}

// StatusOf returns the status of a parse which returned err.  Lexical
// errors from package token are malformed input.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Complete
	case errors.Is(err, ErrIncomplete):
		return Incomplete
	default:
		return Malformed
	}
}
