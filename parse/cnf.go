package parse

import (
	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/token"
)

const expectLiteral = "literal"

// cnf parses a disjunction, optionally in parentheses.
func (p *parser) cnf(pi *int) (*ast.CNF, error) {
	j := *pi
	ok, err := p.glyph(&j, token.LParen)
	if err != nil {
		return nil, err
	}
	if !ok {
		d, err := p.disjunction(pi)
		if err != nil || d == nil {
			return nil, err
		}
		return &ast.CNF{Clause: d}, nil
	}
	if err := p.skip(&j); err != nil {
		return nil, err
	}
	d, err := p.disjunction(&j)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, p.expected(j, expectLiteral)
	}
	if err := p.want(&j, token.RParen); err != nil {
		return nil, err
	}
	*pi = j
	return &ast.CNF{Parenthesised: true, Clause: d}, nil
}

func (p *parser) disjunction(pi *int) (*ast.Disjunction, error) {
	l, err := p.literal(pi)
	if err != nil || l == nil {
		return nil, err
	}
	ls := []ast.Literal{l}
	for {
		_, j, err := p.peek(pi, token.Pipe)
		if err != nil {
			return nil, err
		}
		if j == 0 {
			return &ast.Disjunction{Literals: ls}, nil
		}
		if err := p.skip(&j); err != nil {
			return nil, err
		}
		l, err := p.literal(&j)
		if err != nil {
			return nil, err
		}
		if l == nil {
			return nil, p.expected(j, expectLiteral)
		}
		ls = append(ls, l)
		*pi = j
	}
}

// literal parses an atomic formula, a negated atomic formula or an
// inequality.
func (p *parser) literal(pi *int) (ast.Literal, error) {
	c, ok := p.at(*pi)
	if !ok {
		if p.s.AtEOF() {
			return nil, nil
		}
		return nil, ErrIncomplete
	}
	if c != '~' {
		f, err := p.atomic(pi)
		if err != nil || f == nil {
			return nil, err
		}
		return f.(ast.Literal), nil
	}
	j := *pi
	ok, err := p.glyph(&j, token.Tilde)
	if err != nil || !ok {
		return nil, err
	}
	if err := p.skip(&j); err != nil {
		return nil, err
	}
	a, err := p.atomicOnly(&j)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, p.expected(j, expectAtomic)
	}
	*pi = j
	return &ast.NegatedAtomic{Formula: a}, nil
}
