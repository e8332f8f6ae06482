package parse

import (
	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/token"
)

var connectives = []token.Glyph{
	token.Equiv, token.NotEquiv, token.Implies, token.RevImplies,
	token.NotOr, token.NotAnd, token.Amp, token.Pipe,
}

var nonassocOps = map[token.Glyph]ast.NonassocConnective{
	token.Implies:    ast.Implies,
	token.RevImplies: ast.RevImplies,
	token.Equiv:      ast.Equiv,
	token.NotEquiv:   ast.NotEquiv,
	token.NotOr:      ast.NotOr,
	token.NotAnd:     ast.NotAnd,
}

// logic parses a unit formula optionally followed by either one
// non-associative connective and a unit, or a run of units joined by the
// same associative connective.  Whatever follows, such as a second
// non-associative connective or a different associative one, is left for
// the caller.
func (p *parser) logic(pi *int) (ast.LogicFormula, error) {
	u, err := p.unit(pi)
	if err != nil || u == nil {
		return nil, err
	}
	g, j, err := p.peek(pi, connectives...)
	if err != nil {
		return nil, err
	}
	if j == 0 {
		return u, nil
	}
	if g == token.Amp || g == token.Pipe {
		return p.assoc(pi, u, g, j)
	}
	if err := p.skip(&j); err != nil {
		return nil, err
	}
	r, err := p.unit(&j)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, p.expected(j, expectUnit)
	}
	*pi = j
	return &ast.Nonassoc{Left: u, Op: nonassocOps[g], Right: r}, nil
}

// assoc collects the run of units joined by g which starts with first.
// j is the offset after the first g.
func (p *parser) assoc(pi *int, first ast.UnitFormula, g token.Glyph, j int) (ast.LogicFormula, error) {
	fs := []ast.UnitFormula{first}
	for {
		if err := p.skip(&j); err != nil {
			return nil, err
		}
		u, err := p.unit(&j)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, p.expected(j, expectUnit)
		}
		fs = append(fs, u)
		*pi = j
		_, k, err := p.peek(pi, g)
		if err != nil {
			return nil, err
		}
		if k == 0 {
			break
		}
		j = k
	}
	op := ast.AndOp
	if g == token.Pipe {
		op = ast.OrOp
	}
	return &ast.Assoc{Op: op, Formulas: fs}, nil
}
