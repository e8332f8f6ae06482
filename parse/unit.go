package parse

import (
	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/token"
)

const (
	expectUnit    = "unit formula"
	expectFormula = "formula"
)

// unit parses a negation, a quantified formula, a parenthesised formula,
// an atomic formula or an inequality.  The first byte decides which.
func (p *parser) unit(pi *int) (ast.UnitFormula, error) {
	c, ok := p.at(*pi)
	if !ok {
		if p.s.AtEOF() {
			return nil, nil
		}
		return nil, ErrIncomplete
	}
	switch c {
	case '~':
		return p.negation(pi)
	case '!', '?':
		return p.quantified(pi)
	case '(':
		return p.parenthesised(pi)
	}
	return p.atomic(pi)
}

func (p *parser) negation(pi *int) (ast.UnitFormula, error) {
	j := *pi
	// ~| and ~& are connectives, not negations
	ok, err := p.glyph(&j, token.Tilde)
	if err != nil || !ok {
		return nil, err
	}
	if err := p.enter(*pi); err != nil {
		return nil, err
	}
	defer p.leave()
	if err := p.skip(&j); err != nil {
		return nil, err
	}
	f, err := p.unit(&j)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, p.expected(j, expectUnit)
	}
	*pi = j
	return &ast.Negation{Formula: f}, nil
}

func (p *parser) quantified(pi *int) (ast.UnitFormula, error) {
	j := *pi
	g, n, err := p.s.FirstGlyph(j, token.Bang, token.Question)
	if err != nil || n == 0 {
		return nil, err
	}
	j += n
	q := ast.Universal
	if g == token.Question {
		q = ast.Existential
	}
	if err := p.enter(*pi); err != nil {
		return nil, err
	}
	defer p.leave()
	if err := p.want(&j, token.LBracket); err != nil {
		return nil, err
	}
	var vs []*ast.Variable
	for {
		if err := p.skip(&j); err != nil {
			return nil, err
		}
		v, err := p.variable(&j)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, p.expected(j, "variable")
		}
		vs = append(vs, v)
		g, k, err := p.peek(&j, token.Comma, token.RBracket)
		if err != nil {
			return nil, err
		}
		if k == 0 {
			if err := p.skip(&j); err != nil {
				return nil, err
			}
			return nil, p.expected(j, `","`, `"]"`)
		}
		j = k
		if g == token.RBracket {
			break
		}
	}
	if err := p.want(&j, token.Colon); err != nil {
		return nil, err
	}
	if err := p.skip(&j); err != nil {
		return nil, err
	}
	f, err := p.unit(&j)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, p.expected(j, expectUnit)
	}
	*pi = j
	return &ast.Quantified{Quantifier: q, Bound: vs, Formula: f}, nil
}

func (p *parser) parenthesised(pi *int) (ast.UnitFormula, error) {
	j := *pi
	ok, err := p.glyph(&j, token.LParen)
	if err != nil || !ok {
		return nil, err
	}
	if err := p.enter(*pi); err != nil {
		return nil, err
	}
	defer p.leave()
	if err := p.skip(&j); err != nil {
		return nil, err
	}
	f, err := p.logic(&j)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, p.expected(j, expectFormula)
	}
	if err := p.want(&j, token.RParen); err != nil {
		return nil, err
	}
	*pi = j
	return &ast.Parenthesised{Formula: f}, nil
}
