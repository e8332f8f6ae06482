package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/tptp-format/go-tptp/token"
)

// parser holds the state of one parse.  Productions take a cursor pi into
// the buffer.  They start at a meaningful byte, skip ignorable spans
// between their own tokens and stop right after their last token.
//
// A production returns (nil, nil) when the input at *pi does not start it,
// leaving *pi unchanged.  Once a production has consumed a token which
// only it accepts, any failure is an error.
type parser struct {
	s     *token.Scanner
	d     []byte
	opts  *parseOpts
	depth int
}

func newParser(d []byte, atEOF bool, opts *parseOpts) *parser {
	return &parser{
		s:    token.NewScannerAt(d, atEOF, opts.base, opts.line),
		d:    d,
		opts: opts,
	}
}

func (p *parser) at(i int) (byte, bool) {
	if i >= len(p.d) {
		return 0, false
	}
	return p.d[i], true
}

func (p *parser) skip(pi *int) error {
	n, err := p.s.Ignored(*pi)
	if err != nil {
		return err
	}
	*pi += n
	return nil
}

// glyph consumes g at *pi if it is there.
func (p *parser) glyph(pi *int, g token.Glyph) (bool, error) {
	n, err := p.s.Glyph(*pi, g)
	if err != nil || n == 0 {
		return false, err
	}
	*pi += n
	return true, nil
}

// want skips ignorable spans and consumes g, which must be there.
func (p *parser) want(pi *int, g token.Glyph) error {
	if err := p.skip(pi); err != nil {
		return err
	}
	ok, err := p.glyph(pi, g)
	if err != nil {
		return err
	}
	if !ok {
		return p.expected(*pi, strconv.Quote(g.String()))
	}
	return nil
}

// peek skips ignorable spans after *pi and reports which of gs follows,
// without moving *pi.  It returns the offset after the glyph.
func (p *parser) peek(pi *int, gs ...token.Glyph) (token.Glyph, int, error) {
	j := *pi
	if err := p.skip(&j); err != nil {
		return 0, 0, err
	}
	g, n, err := p.s.FirstGlyph(j, gs...)
	if err != nil || n == 0 {
		return 0, 0, err
	}
	return g, j + n, nil
}

// expected returns the error for a failure at i, describing what is
// there.
func (p *parser) expected(i int, what ...string) error {
	found := "end of input"
	if i < len(p.d) {
		tok, err := p.s.Next(i)
		switch {
		case err == nil:
			found = tok.String()
		case errors.Is(err, token.ErrIncomplete):
			found = strconv.Quote(string(p.d[i:min(i+8, len(p.d))]))
		default:
			return err
		}
	}
	return &SyntaxError{Pos: *p.s.Pos(i), Expected: what, Found: found}
}

func (p *parser) enter(i int) error {
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return fmt.Errorf("%w (max %d) at %s", ErrDepth, p.opts.maxDepth, p.s.Pos(i).String())
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}
