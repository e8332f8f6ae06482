package parse

import (
	"strconv"

	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/token"
)

const expectAtomic = "atomic formula"

// atomic parses an atomic formula or an inequality.  A plain, defined or
// system term may be followed by = or !=; any other term must be.
func (p *parser) atomic(pi *int) (ast.UnitFormula, error) {
	c, ok := p.at(*pi)
	if !ok {
		if p.s.AtEOF() {
			return nil, nil
		}
		return nil, ErrIncomplete
	}
	switch {
	case 'a' <= c && c <= 'z', c == '\'':
		t, err := p.plainTerm(pi)
		if err != nil || t == nil {
			return nil, err
		}
		return p.infixTail(pi, t, &ast.PlainAtomic{Term: t})
	case c == '$':
		t, err := p.dollarTerm(pi)
		if err != nil || t == nil {
			return nil, err
		}
		var alone ast.AtomicFormula
		switch x := t.(type) {
		case *ast.SystemTerm:
			alone = &ast.SystemAtomic{Term: x}
		case *ast.DefinedPlainTerm:
			alone = &ast.DefinedPlainAtomic{Term: x}
		}
		return p.infixTail(pi, t, alone)
	case 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '+', c == '-', c == '"':
		t, err := p.term(pi)
		if err != nil || t == nil {
			return nil, err
		}
		return p.infixTail(pi, t, nil)
	}
	return nil, nil
}

// infixTail completes t = r or t != r.  Without a tail the result is
// alone, which is an error if alone is nil.
func (p *parser) infixTail(pi *int, t ast.Term, alone ast.AtomicFormula) (ast.UnitFormula, error) {
	g, j, err := p.peek(pi, token.Equal, token.NotEqual)
	if err != nil {
		return nil, err
	}
	if j == 0 {
		if alone == nil {
			j = *pi
			if err := p.skip(&j); err != nil {
				return nil, err
			}
			return nil, p.expected(j, `"="`, `"!="`)
		}
		return alone, nil
	}
	if err := p.skip(&j); err != nil {
		return nil, err
	}
	r, err := p.term(&j)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, p.expected(j, expectTerm)
	}
	*pi = j
	if g == token.NotEqual {
		return &ast.InfixUnary{Left: t, Right: r}, nil
	}
	return &ast.DefinedInfix{Left: t, Right: r}, nil
}

// atomicOnly is atomic restricted to atomic formulas.
func (p *parser) atomicOnly(pi *int) (ast.AtomicFormula, error) {
	j := *pi
	f, err := p.atomic(&j)
	if err != nil || f == nil {
		return nil, err
	}
	a, ok := f.(ast.AtomicFormula)
	if !ok {
		return nil, &SyntaxError{Pos: *p.s.Pos(*pi), Expected: []string{expectAtomic}, Found: strconv.Quote(f.String())}
	}
	*pi = j
	return a, nil
}
