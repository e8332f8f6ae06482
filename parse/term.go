package parse

import (
	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/token"
)

const expectTerm = "term"

// term parses a variable, a number, a distinct object or a plain, defined
// or system functor with optional arguments.
func (p *parser) term(pi *int) (ast.Term, error) {
	c, ok := p.at(*pi)
	if !ok {
		if p.s.AtEOF() {
			return nil, nil
		}
		return nil, ErrIncomplete
	}
	switch {
	case 'A' <= c && c <= 'Z':
		v, err := p.variable(pi)
		if err != nil || v == nil {
			return nil, err
		}
		return v, nil
	case 'a' <= c && c <= 'z', c == '\'':
		t, err := p.plainTerm(pi)
		if err != nil || t == nil {
			return nil, err
		}
		return t, nil
	case c == '$':
		return p.dollarTerm(pi)
	case c == '"':
		n, err := p.s.DistinctObject(*pi)
		if err != nil {
			return nil, err
		}
		d := &ast.DistinctObject{Text: p.d[*pi+1 : *pi+n-1]}
		*pi += n
		return d, nil
	case '0' <= c && c <= '9', c == '+', c == '-':
		return p.number(pi)
	}
	return nil, nil
}

func (p *parser) variable(pi *int) (*ast.Variable, error) {
	n, err := p.s.UpperWord(*pi)
	if err != nil || n == 0 {
		return nil, err
	}
	v := &ast.Variable{Name: p.d[*pi : *pi+n]}
	*pi += n
	return v, nil
}

func (p *parser) number(pi *int) (ast.Term, error) {
	tt, n, err := p.s.Number(*pi)
	if err != nil || n == 0 {
		return nil, err
	}
	num := &ast.Number{Text: p.d[*pi : *pi+n]}
	switch tt {
	case token.TRational:
		num.NumKind = ast.Rational
	case token.TReal:
		num.NumKind = ast.Real
	}
	*pi += n
	return num, nil
}

// atomicWord parses a lower word or a single quoted word.
func (p *parser) atomicWord(pi *int) (ast.AtomicWord, bool, error) {
	if n, err := p.s.LowerWord(*pi); err != nil || n != 0 {
		if err != nil {
			return ast.AtomicWord{}, false, err
		}
		w := ast.AtomicWord{Text: p.d[*pi : *pi+n]}
		*pi += n
		return w, true, nil
	}
	n, err := p.s.SingleQuoted(*pi)
	if err != nil || n == 0 {
		return ast.AtomicWord{}, false, err
	}
	w := ast.AtomicWord{Text: p.d[*pi+1 : *pi+n-1], Quoted: true}
	*pi += n
	return w, true, nil
}

func (p *parser) plainTerm(pi *int) (*ast.PlainTerm, error) {
	w, ok, err := p.atomicWord(pi)
	if err != nil || !ok {
		return nil, err
	}
	args, err := p.arguments(pi)
	if err != nil {
		return nil, err
	}
	return &ast.PlainTerm{Functor: w, Args: args}, nil
}

// dollarTerm parses a system ($$) or defined ($) functor with optional
// arguments.
func (p *parser) dollarTerm(pi *int) (ast.Term, error) {
	if n, err := p.s.DollarDollarWord(*pi); err != nil || n != 0 {
		if err != nil {
			return nil, err
		}
		t := &ast.SystemTerm{Functor: ast.SystemWord{Name: p.d[*pi+2 : *pi+n]}}
		*pi += n
		if t.Args, err = p.arguments(pi); err != nil {
			return nil, err
		}
		return t, nil
	}
	n, err := p.s.DollarWord(*pi)
	if err != nil || n == 0 {
		return nil, err
	}
	t := &ast.DefinedPlainTerm{Functor: ast.DefinedWord{Name: p.d[*pi+1 : *pi+n]}}
	*pi += n
	if t.Args, err = p.arguments(pi); err != nil {
		return nil, err
	}
	return t, nil
}

// arguments parses an optional parenthesised, comma separated, non-empty
// list of terms following a functor.  Without parentheses the functor is
// a constant and nothing is consumed.
func (p *parser) arguments(pi *int) ([]ast.Term, error) {
	j := *pi
	if err := p.skip(&j); err != nil {
		return nil, err
	}
	ok, err := p.glyph(&j, token.LParen)
	if err != nil || !ok {
		return nil, err
	}
	if err := p.enter(j); err != nil {
		return nil, err
	}
	defer p.leave()
	var args []ast.Term
	for {
		if err := p.skip(&j); err != nil {
			return nil, err
		}
		t, err := p.term(&j)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, p.expected(j, expectTerm)
		}
		args = append(args, t)
		g, k, err := p.peek(&j, token.Comma, token.RParen)
		if err != nil {
			return nil, err
		}
		if k == 0 {
			if err := p.skip(&j); err != nil {
				return nil, err
			}
			return nil, p.expected(j, `","`, `")"`)
		}
		j = k
		if g == token.RParen {
			*pi = j
			return args, nil
		}
	}
}
