package parse

import (
	"bytes"
	"errors"
	"io"

	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/debug"
	"github.com/signadot/tptp-format/go-tptp/format"
	"github.com/signadot/tptp-format/go-tptp/token"
)

const minRead = 4096

// Decoder reads a stream of formulas, each terminated by '.', from an
// io.Reader.  Formulas are separated by ignorable spans.
//
// Returned trees reference the Decoder's buffers.  Those bytes are never
// overwritten: when the buffer fills up, unread input is moved to a new
// one.
//
// Errors are not recovered from: after a malformed formula, Next keeps
// returning the same error.
type Decoder struct {
	r     io.Reader
	opts  []ParseOption
	buf   []byte
	off   int
	line  int
	atEOF bool
	err   error
}

func NewDecoder(r io.Reader, opts ...ParseOption) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Offset returns the stream offset of the first unread byte.
func (d *Decoder) Offset() int {
	return d.off
}

// Next returns the next formula or io.EOF when only ignorable spans are
// left.
func (d *Decoder) Next() (ast.Formula, error) {
	if d.err != nil {
		return nil, d.err
	}
	for {
		f, n, err := d.try()
		if err == nil {
			d.advance(n)
			return f, nil
		}
		if !errors.Is(err, ErrIncomplete) {
			d.err = err
			return nil, err
		}
		if err := d.fill(); err != nil {
			d.err = err
			return nil, err
		}
	}
}

// try parses one terminated formula from the start of the buffer.
func (d *Decoder) try() (ast.Formula, int, error) {
	pOpts := newOpts(d.opts)
	pOpts.base, pOpts.line = d.off, d.line
	p := newParser(d.buf, d.atEOF, pOpts)
	i := 0
	if err := p.skip(&i); err != nil {
		return nil, 0, err
	}
	if i == len(d.buf) {
		// skip only gets here at EOF
		return nil, 0, io.EOF
	}
	var f ast.Formula
	if pOpts.format == format.CNFFormat {
		c, err := p.cnf(&i)
		if err != nil {
			return nil, 0, err
		}
		if c == nil {
			return nil, 0, p.expected(i, expectLiteral, `"("`)
		}
		f = c
	} else {
		l, err := p.logic(&i)
		if err != nil {
			return nil, 0, err
		}
		if l == nil {
			return nil, 0, p.expected(i, expectFormula)
		}
		f = &ast.FOF{Formula: l}
	}
	if err := p.want(&i, token.Period); err != nil {
		return nil, 0, err
	}
	if debug.Decode() {
		debug.Logf("decode: offset %d: %s\n", d.off, f)
	}
	return f, i, nil
}

func (d *Decoder) advance(n int) {
	d.line += bytes.Count(d.buf[:n], []byte{'\n'})
	d.off += n
	d.buf = d.buf[n:]
}

// fill reads more input, moving unread bytes to a new buffer when there
// is no room.
func (d *Decoder) fill() error {
	if d.atEOF {
		return io.ErrUnexpectedEOF
	}
	if cap(d.buf)-len(d.buf) < minRead {
		nb := make([]byte, len(d.buf), 2*len(d.buf)+minRead)
		copy(nb, d.buf)
		d.buf = nb
	}
	n, err := d.r.Read(d.buf[len(d.buf):cap(d.buf)])
	d.buf = d.buf[:len(d.buf)+n]
	switch {
	case err == io.EOF:
		d.atEOF = true
	case err != nil:
		return err
	}
	return nil
}
