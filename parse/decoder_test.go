package parse

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/signadot/tptp-format/go-tptp/ast"
)

const stream = `% a problem
p(X) => q(X).
/* several
   lines */ ![X]: (r(X) & s)
  .
a <=> 'b c'.   % trailing
`

func decodeAll(t *testing.T, r io.Reader, opts ...ParseOption) []ast.Formula {
	t.Helper()
	dec := NewDecoder(r, opts...)
	var res []ast.Formula
	for {
		f, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return res
		}
		if err != nil {
			t.Fatalf("after %d formulas: %v", len(res), err)
		}
		res = append(res, f)
	}
}

func TestDecoder(t *testing.T) {
	want := []string{"p(X)=>q(X)", "![X]:(r(X)&s)", "a<=>'b c'"}
	for name, r := range map[string]io.Reader{
		"whole":   strings.NewReader(stream),
		"onebyte": iotest.OneByteReader(strings.NewReader(stream)),
		"half":    iotest.HalfReader(strings.NewReader(stream)),
	} {
		t.Run(name, func(t *testing.T) {
			fs := decodeAll(t, r)
			if len(fs) != len(want) {
				t.Fatalf("got %d formulas", len(fs))
			}
			// earlier trees still print after later reads
			for i, f := range fs {
				if f.String() != want[i] {
					t.Errorf("formula %d: got %q want %q", i, f.String(), want[i])
				}
			}
		})
	}
}

func TestDecoderLongStream(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 2000; i++ {
		b.WriteString("f(a_long_constant_name, X) != g(Y)  &  p.\n")
	}
	fs := decodeAll(t, iotest.HalfReader(strings.NewReader(b.String())))
	if len(fs) != 2000 {
		t.Fatalf("got %d formulas", len(fs))
	}
	for _, f := range fs {
		if f.String() != "f(a_long_constant_name,X)!=g(Y)&p" {
			t.Fatalf("got %s", f)
		}
	}
}

func TestDecoderCNF(t *testing.T) {
	fs := decodeAll(t, iotest.OneByteReader(strings.NewReader("p | ~q.\n(r).")), ParseCNFFormat())
	if len(fs) != 2 {
		t.Fatalf("got %d formulas", len(fs))
	}
	c, ok := fs[1].(*ast.CNF)
	if !ok || !c.Parenthesised || fs[0].String() != "p|~q" {
		t.Errorf("got %v and %v", fs[0], fs[1])
	}
}

func TestDecoderErr(t *testing.T) {
	dec := NewDecoder(iotest.OneByteReader(strings.NewReader("p.\nq &\n  & r.\ns.")))
	if _, err := dec.Next(); err != nil {
		t.Fatal(err)
	}
	_, err := dec.Next()
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %v", err)
	}
	if se.Pos.I != 9 || se.Pos.Line() != 2 || se.Pos.Col() != 2 {
		t.Errorf("got position %d line %d col %d", se.Pos.I, se.Pos.Line(), se.Pos.Col())
	}
	if _, err2 := dec.Next(); err2 != err {
		t.Errorf("error is not sticky: %v", err2)
	}
}

func TestDecoderEOF(t *testing.T) {
	dec := NewDecoder(strings.NewReader("p.\nq"))
	if _, err := dec.Next(); err != nil {
		t.Fatal(err)
	}
	if dec.Offset() != 2 {
		t.Errorf("offset %d", dec.Offset())
	}
	_, err := dec.Next()
	if StatusOf(err) != Malformed || !strings.Contains(err.Error(), `expected ".", found end of input`) {
		t.Errorf("got %v", err)
	}
	_, err = NewDecoder(strings.NewReader("p & q")).Next()
	if StatusOf(err) != Malformed {
		t.Errorf("got %v", err)
	}
	_, err = NewDecoder(strings.NewReader("p. /* open")).Next()
	if err != nil {
		t.Errorf("got %v", err)
	}
	dec = NewDecoder(strings.NewReader("  % nothing\n"))
	if _, err := dec.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("got %v", err)
	}
}
