package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/format"
	"github.com/signadot/tptp-format/go-tptp/token"
)

type parseTest struct {
	in  string
	out string
}

func TestParseFOFOK(t *testing.T) {
	pts := []parseTest{
		{in: `p`, out: `p`},
		{in: `~ ~ p`, out: `~~p`},
		{in: `![X,Y]: p(X,Y)`, out: `![X,Y]:p(X,Y)`},
		{in: `? [X] : ( p(X) => q )`, out: `?[X]:(p(X)=>q)`},
		{in: `a & b & c`, out: `a&b&c`},
		{in: `a | (b & c)`, out: `a|(b&c)`},
		{in: `a <=> b`, out: `a<=>b`},
		{in: `a <~> b`, out: `a<~>b`},
		{in: `a ~| b`, out: `a~|b`},
		{in: `a ~& ~b`, out: `a~&~b`},
		{in: `a <= b`, out: `a<=b`},
		{in: `(a => b) => c`, out: `(a=>b)=>c`},
		{in: `X = Y`, out: `X=Y`},
		{in: `f(X) != a`, out: `f(X)!=a`},
		{in: `p = q`, out: `p=q`},
		{in: `~ p = q`, out: `~p=q`},
		{in: `~(p = q)`, out: `~(p=q)`},
		{in: `$true`, out: `$true`},
		{in: `$less(X, 2)`, out: `$less(X,2)`},
		{in: `$sum(X,1) = Y`, out: `$sum(X,1)=Y`},
		{in: `$$sys(a)`, out: `$$sys(a)`},
		{in: `$$sys = X`, out: `$$sys=X`},
		{in: `'A b'(X)`, out: `'A b'(X)`},
		{in: `'it\'s'`, out: `'it\'s'`},
		{in: `"d" = X`, out: `"d"=X`},
		{in: `p( -1/2, 3.5e-2, 0 )`, out: `p(-1/2,3.5e-2,0)`},
		{in: `~ ! [X] : ~ p(X)`, out: `~![X]:~p(X)`},
		{in: "p /* c */ & % x\n q", out: `p&q`},
		{in: "  % leading\n p  \n", out: `p`},
		{in: `f (X)`, out: `f(X)`},
		{in: `f(g(h(X)), Y)`, out: `f(g(h(X)),Y)`},
		{in: `X != Y => p`, out: `X!=Y=>p`},
		{in: `![X]: p(X) => q`, out: `![X]:p(X)=>q`},
	}
	for _, pt := range pts {
		f, err := ParseFOF([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if got := f.String(); got != pt.out {
			t.Errorf("%q: got %q want %q", pt.in, got, pt.out)
			continue
		}
		g, err := ParseFOF([]byte(pt.out))
		if err != nil {
			t.Errorf("reparse %q: %v", pt.out, err)
			continue
		}
		if !ast.Equal(f, g) {
			t.Errorf("%q: reparse of %q differs", pt.in, pt.out)
		}
	}
}

func TestParseFOFErr(t *testing.T) {
	pts := []struct {
		in   string
		want string
		err  error
	}{
		{in: `f()`, want: `expected term, found ")"`},
		{in: `a => b => c`, want: `unexpected "=>"`},
		{in: `a & b | c`, want: `unexpected "|"`},
		{in: `a | b & c`, want: `unexpected "&"`},
		{in: `a => b & c`, want: `unexpected "&"`},
		{in: `![]: p`, want: `expected variable, found "]"`},
		{in: `![X] p`, want: `expected ":", found "p"`},
		{in: `![X,]: p`, want: `expected variable`},
		{in: `X`, want: `expected "=" or "!=", found end of input`},
		{in: `(p`, want: `expected ")", found end of input`},
		{in: `p &`, want: `expected unit formula`},
		{in: ``, want: `expected formula`},
		{in: `p(X`, want: `expected "," or ")"`},
		{in: `p(X Y)`, want: `expected "," or ")", found "Y"`},
		{in: `~`, want: `expected unit formula`},
		{in: `X != `, want: `expected term`},
		{in: `p # q`, want: `unexpected "#"`},
		{in: `p.`, want: `unexpected "."`},
		{in: `'abc`, err: token.ErrUnterminated},
		{in: `p(007)`, err: token.ErrNumberLeadingZero},
		{in: `p /* c`, err: token.ErrUnterminated},
		{in: `''`, err: token.ErrEmptyQuoted},
	}
	for _, pt := range pts {
		_, err := ParseFOF([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: expected error", pt.in)
			continue
		}
		if StatusOf(err) != Malformed {
			t.Errorf("%q: got status %s for %v", pt.in, StatusOf(err), err)
		}
		if pt.err != nil {
			if !errors.Is(err, pt.err) {
				t.Errorf("%q: got %v want %v", pt.in, err, pt.err)
			}
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v is not a parse error", pt.in, err)
		}
		if !strings.Contains(err.Error(), pt.want) {
			t.Errorf("%q: got %q want %q", pt.in, err.Error(), pt.want)
		}
	}
}

func TestSyntaxErrorPos(t *testing.T) {
	_, err := ParseFOF([]byte("p &\n  q =>"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %v", err)
	}
	if se.Pos.I != 8 || se.Pos.Line() != 1 || se.Pos.Col() != 4 {
		t.Errorf("got position %d line %d col %d", se.Pos.I, se.Pos.Line(), se.Pos.Col())
	}
	_, err = Parse([]byte("p & "), ParseBase(100, 3))
	if !errors.As(err, &se) || se.Pos.I != 104 || se.Pos.Line() != 3 {
		t.Errorf("base not applied: %v", err)
	}
}

func TestFlattening(t *testing.T) {
	f, err := ParseFOF([]byte("a & b & c"))
	if err != nil {
		t.Fatal(err)
	}
	as, ok := f.Formula.(*ast.Assoc)
	if !ok || as.Op != ast.AndOp || len(as.Formulas) != 3 {
		t.Fatalf("got %#v", f.Formula)
	}
	f, err = ParseFOF([]byte("a & (b & c)"))
	if err != nil {
		t.Fatal(err)
	}
	as, ok = f.Formula.(*ast.Assoc)
	if !ok || len(as.Formulas) != 2 {
		t.Fatalf("got %#v", f.Formula)
	}
	p, ok := as.Formulas[1].(*ast.Parenthesised)
	if !ok {
		t.Fatalf("got %#v", as.Formulas[1])
	}
	inner, ok := p.Formula.(*ast.Assoc)
	if !ok || len(inner.Formulas) != 2 {
		t.Fatalf("got %#v", p.Formula)
	}
}

func TestNonChaining(t *testing.T) {
	in := []byte("a => b => c")
	f, n, err := LogicFormula(in, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.(*ast.Nonassoc); !ok || n != len("a => b") {
		t.Errorf("got %s consuming %d", f, n)
	}
	in = []byte("a & b | c")
	f, n, err = LogicFormula(in, true)
	if err != nil {
		t.Fatal(err)
	}
	if f.String() != "a&b" || string(in[n:]) != " | c" {
		t.Errorf("got %s leaving %q", f, in[n:])
	}
	if _, err := ParseFOF([]byte("a | b => c")); StatusOf(err) != Malformed {
		t.Errorf("mixed connectives accepted: %v", err)
	}
}

func TestArity(t *testing.T) {
	if _, _, err := Term([]byte("f()"), true); StatusOf(err) != Malformed {
		t.Errorf("f() accepted: %v", err)
	}
	tm, n, err := Term([]byte("f"), true)
	if err != nil || n != 1 || !ast.IsConstant(tm) {
		t.Errorf("got %v %d %v", tm, n, err)
	}
	tm, _, err = Term([]byte("f(a)"), true)
	if err != nil || ast.IsConstant(tm) {
		t.Errorf("got %v %v", tm, err)
	}
}

func TestNegationDistinct(t *testing.T) {
	f, err := ParseFOF([]byte("~~p"))
	if err != nil {
		t.Fatal(err)
	}
	n1, ok := f.Formula.(*ast.Negation)
	if !ok {
		t.Fatalf("got %#v", f.Formula)
	}
	if _, ok := n1.Formula.(*ast.Negation); !ok {
		t.Fatalf("got %#v", n1.Formula)
	}
	a, err := ParseFOF([]byte("p != q"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseFOF([]byte("~(p = q)"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a.Formula.(*ast.InfixUnary); !ok {
		t.Errorf("got %#v", a.Formula)
	}
	neg, ok := b.Formula.(*ast.Negation)
	if !ok {
		t.Fatalf("got %#v", b.Formula)
	}
	par, ok := neg.Formula.(*ast.Parenthesised)
	if !ok {
		t.Fatalf("got %#v", neg.Formula)
	}
	if _, ok := par.Formula.(*ast.DefinedInfix); !ok {
		t.Errorf("got %#v", par.Formula)
	}
	if ast.Equal(a, b) {
		t.Errorf("p!=q equals ~(p=q)")
	}
}

func TestMaxDepth(t *testing.T) {
	if _, err := Parse([]byte("~~p"), ParseMaxDepth(3)); err != nil {
		t.Errorf("got %v", err)
	}
	_, err := Parse([]byte("~~~~p"), ParseMaxDepth(3))
	if !errors.Is(err, ErrDepth) || StatusOf(err) != Malformed {
		t.Errorf("got %v", err)
	}
	_, err = Parse([]byte("p(f(g(h(a))))"), ParseMaxDepth(3))
	if !errors.Is(err, ErrDepth) {
		t.Errorf("got %v", err)
	}
	if _, err := Parse([]byte(strings.Repeat("(", 200) + "p" + strings.Repeat(")", 200))); err != nil {
		t.Errorf("unlimited depth: %v", err)
	}
}

func TestComponents(t *testing.T) {
	a, n, err := AtomicFormula([]byte("p(X) = Y & q"), true)
	if err != nil || a.String() != "p(X)=Y" || n != 8 {
		t.Errorf("got %v %d %v", a, n, err)
	}
	if _, _, err := AtomicFormula([]byte("X != Y"), true); StatusOf(err) != Malformed {
		t.Errorf("inequality accepted as atomic formula: %v", err)
	}
	u, n, err := UnitFormula([]byte("~p & q"), true)
	if err != nil || u.String() != "~p" || n != 2 {
		t.Errorf("got %v %d %v", u, n, err)
	}
	l, _, err := Literal([]byte("~ p(a) | q"), true)
	if err != nil || l.Kind() != ast.NegatedAtomicKind {
		t.Errorf("got %v %v", l, err)
	}
	d, n, err := Disjunction([]byte("p | q."), true)
	if err != nil || len(d.Literals) != 2 || n != 5 {
		t.Errorf("got %v %d %v", d, n, err)
	}
}

func TestFormat(t *testing.T) {
	f, err := ParseString("p | ~q", ParseCNFFormat())
	if err != nil {
		t.Fatal(err)
	}
	if f.Format() != format.CNFFormat {
		t.Errorf("got %s", f.Format())
	}
	f, err = ParseString("p | ~q")
	if err != nil {
		t.Fatal(err)
	}
	if f.Format() != format.FOFFormat {
		t.Errorf("got %s", f.Format())
	}
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want Status
	}{
		{nil, Complete},
		{ErrIncomplete, Incomplete},
		{&SyntaxError{}, Malformed},
		{token.NewPosErr(token.ErrBadChar, &token.Pos{}), Malformed},
		{ErrDepth, Malformed},
	}
	for _, c := range cases {
		if got := StatusOf(c.err); got != c.want {
			t.Errorf("StatusOf(%v) = %s want %s", c.err, got, c.want)
		}
	}
}

func TestNumberKind(t *testing.T) {
	f, err := ParseString("p(0, -1/2, 1.5e3)")
	if err != nil {
		t.Fatal(err)
	}
	args := f.(*ast.FOF).Formula.(*ast.PlainAtomic).Term.Args
	want := []ast.NumKind{ast.Integer, ast.Rational, ast.Real}
	for i, a := range args {
		n, ok := a.(*ast.Number)
		if !ok || n.NumKind != want[i] {
			t.Errorf("arg %d: got %#v", i, a)
		}
	}
}
