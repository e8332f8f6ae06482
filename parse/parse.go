package parse

import (
	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/debug"
	"github.com/signadot/tptp-format/go-tptp/format"
)

// The functions below parse one production at the start of d, after any
// ignorable spans, in the manner of a bufio.SplitFunc: they return the
// tree and the number of bytes consumed, leaving the rest of d alone.
// Ignorable spans after the production are not consumed.
//
// When atEOF is false, d may be a prefix of the input; ErrIncomplete means
// the parse should be retried from the same offset with more input.

func start(d []byte, atEOF bool, opts []ParseOption) (*parser, int, error) {
	p := newParser(d, atEOF, newOpts(opts))
	i := 0
	if err := p.skip(&i); err != nil {
		return nil, 0, err
	}
	return p, i, nil
}

func Term(d []byte, atEOF bool, opts ...ParseOption) (ast.Term, int, error) {
	p, i, err := start(d, atEOF, opts)
	if err != nil {
		return nil, 0, err
	}
	t, err := p.term(&i)
	if err != nil {
		return nil, 0, err
	}
	if t == nil {
		return nil, 0, p.expected(i, expectTerm)
	}
	return t, i, nil
}

func AtomicFormula(d []byte, atEOF bool, opts ...ParseOption) (ast.AtomicFormula, int, error) {
	p, i, err := start(d, atEOF, opts)
	if err != nil {
		return nil, 0, err
	}
	a, err := p.atomicOnly(&i)
	if err != nil {
		return nil, 0, err
	}
	if a == nil {
		return nil, 0, p.expected(i, expectAtomic)
	}
	return a, i, nil
}

func UnitFormula(d []byte, atEOF bool, opts ...ParseOption) (ast.UnitFormula, int, error) {
	p, i, err := start(d, atEOF, opts)
	if err != nil {
		return nil, 0, err
	}
	u, err := p.unit(&i)
	if err != nil {
		return nil, 0, err
	}
	if u == nil {
		return nil, 0, p.expected(i, expectUnit)
	}
	return u, i, nil
}

func LogicFormula(d []byte, atEOF bool, opts ...ParseOption) (ast.LogicFormula, int, error) {
	p, i, err := start(d, atEOF, opts)
	if err != nil {
		return nil, 0, err
	}
	f, err := p.logic(&i)
	if err != nil {
		return nil, 0, err
	}
	if f == nil {
		return nil, 0, p.expected(i, expectFormula)
	}
	return f, i, nil
}

func Literal(d []byte, atEOF bool, opts ...ParseOption) (ast.Literal, int, error) {
	p, i, err := start(d, atEOF, opts)
	if err != nil {
		return nil, 0, err
	}
	l, err := p.literal(&i)
	if err != nil {
		return nil, 0, err
	}
	if l == nil {
		return nil, 0, p.expected(i, expectLiteral)
	}
	return l, i, nil
}

func Disjunction(d []byte, atEOF bool, opts ...ParseOption) (*ast.Disjunction, int, error) {
	p, i, err := start(d, atEOF, opts)
	if err != nil {
		return nil, 0, err
	}
	dis, err := p.disjunction(&i)
	if err != nil {
		return nil, 0, err
	}
	if dis == nil {
		return nil, 0, p.expected(i, expectLiteral)
	}
	return dis, i, nil
}

// FOF parses one fof formula.
func FOF(d []byte, atEOF bool, opts ...ParseOption) (*ast.FOF, int, error) {
	f, n, err := LogicFormula(d, atEOF, opts...)
	if err != nil {
		if debug.Parse() {
			debug.Logf("fof: %v\n", err)
		}
		return nil, 0, err
	}
	res := &ast.FOF{Formula: f}
	if debug.Parse() {
		debug.Logf("fof: %d bytes: %s\n", n, res)
	}
	return res, n, nil
}

// CNF parses one cnf formula.
func CNF(d []byte, atEOF bool, opts ...ParseOption) (*ast.CNF, int, error) {
	p, i, err := start(d, atEOF, opts)
	if err != nil {
		return nil, 0, err
	}
	c, err := p.cnf(&i)
	if err == nil && c == nil {
		err = p.expected(i, expectLiteral, `"("`)
	}
	if err != nil {
		if debug.Parse() {
			debug.Logf("cnf: %v\n", err)
		}
		return nil, 0, err
	}
	if debug.Parse() {
		debug.Logf("cnf: %d bytes: %s\n", i, c)
	}
	return c, i, nil
}

// Formula parses one formula of the format given by ParseFormat, fof by
// default.
func Formula(d []byte, atEOF bool, opts ...ParseOption) (ast.Formula, int, error) {
	if FormatFromOpts(opts...) == format.CNFFormat {
		c, n, err := CNF(d, atEOF, opts...)
		if err != nil {
			return nil, 0, err
		}
		return c, n, nil
	}
	f, n, err := FOF(d, atEOF, opts...)
	if err != nil {
		return nil, 0, err
	}
	return f, n, nil
}

// Parse parses d as exactly one formula, surrounded by nothing but
// ignorable spans.
func Parse(d []byte, opts ...ParseOption) (ast.Formula, error) {
	f, n, err := Formula(d, true, opts...)
	if err != nil {
		return nil, err
	}
	if err := end(d, n, opts); err != nil {
		return nil, err
	}
	return f, nil
}

func ParseString(s string, opts ...ParseOption) (ast.Formula, error) {
	return Parse([]byte(s), opts...)
}

func ParseFOF(d []byte, opts ...ParseOption) (*ast.FOF, error) {
	f, n, err := FOF(d, true, opts...)
	if err != nil {
		return nil, err
	}
	if err := end(d, n, opts); err != nil {
		return nil, err
	}
	return f, nil
}

func ParseCNF(d []byte, opts ...ParseOption) (*ast.CNF, error) {
	c, n, err := CNF(d, true, opts...)
	if err != nil {
		return nil, err
	}
	if err := end(d, n, opts); err != nil {
		return nil, err
	}
	return c, nil
}

// end requires that only ignorable spans follow offset i.
func end(d []byte, i int, opts []ParseOption) error {
	p := newParser(d, true, newOpts(opts))
	if err := p.skip(&i); err != nil {
		return err
	}
	if i < len(d) {
		return p.expected(i)
	}
	return nil
}
