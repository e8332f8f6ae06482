package ast

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	X, Y := Var("X"), Var("Y")
	cases := []struct {
		n    Node
		want string
	}{
		{Const("a"), "a"},
		{Const("a b"), "'a b'"},
		{Const("A"), "'A'"},
		{Func("f", X, Const("a")), "f(X,a)"},
		{Dollar("sum", X, Num("1")), "$sum(X,1)"},
		{System("ext"), "$$ext"},
		{Distinct("Apple"), `"Apple"`},
		{Num("-1/3"), "-1/3"},
		{Eq(X, Y), "X=Y"},
		{Neq(X, Y), "X!=Y"},
		{Not(Not(Pred("p"))), "~~p"},
		{Forall(Vars("X", "Y"), Pred("p", X, Y)), "![X,Y]:p(X,Y)"},
		{Exists([]*Variable{X}, Paren(Binary(Pred("p", X), Implies, DollarPred("true")))), "?[X]:(p(X)=>$true)"},
		{And(Pred("a"), Pred("b"), Paren(Or(Pred("c"), Pred("d")))), "a&b&(c|d)"},
		{Binary(Pred("a"), NotAnd, Pred("b")), "a~&b"},
		{Binary(Pred("a"), NotEquiv, SystemPred("q")), "a<~>$$q"},
		{NewFOF(Pred("p")), "p"},
		{NewCNF(false, Pred("p"), NegLit(Pred("q")), Pred("r")), "p|~q|r"},
		{NewCNF(true, Pred("p")), "(p)"},
		{NewCNF(false, Neq(X, Const("a")), NegLit(Eq(X, Y))), "X!=a|~X=Y"},
	}
	for _, c := range cases {
		if got := c.n.String(); got != c.want {
			t.Errorf("got %q want %q", got, c.want)
		}
	}
}

type recorder []string

func (r *recorder) Put(c Class, text string) {
	*r = append(*r, c.String()+":"+text)
}

func TestEmitClasses(t *testing.T) {
	r := &recorder{}
	Forall(Vars("X"), Pred("p", Var("X"), Num("2"))).Emit(r)
	want := recorder{"quantifier:!", "punct:[", "variable:X", "punct:]", "punct::",
		"functor:p", "punct:(", "variable:X", "punct:,", "number:2", "punct:)"}
	if diff := cmp.Diff(want, *r); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompare(t *testing.T) {
	X, Y := Var("X"), Var("Y")
	ordered := []Node{
		Var("X"),
		Var("Y"),
		Num("1"),
		Const("a"),
		Func("a", X),
		Func("a", X, Y),
		Func("a", Y),
		Const("b"),
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if got != want {
				t.Errorf("Compare(%s, %s) = %d want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestEqualHash(t *testing.T) {
	pairs := []struct {
		a, b  Node
		equal bool
	}{
		{Pred("p", Var("X")), Pred("p", Var("X")), true},
		{Const("a"), Const("'a'"), false},
		{Neq(Var("X"), Var("Y")), Not(Paren(Eq(Var("X"), Var("Y")))), false},
		{And(Pred("a"), Pred("b")), Or(Pred("a"), Pred("b")), false},
		{NewCNF(true, Pred("p")), NewCNF(false, Pred("p")), false},
		{Forall(Vars("X"), Pred("p")), Exists(Vars("X"), Pred("p")), false},
		{NewCNF(false, Pred("p"), Pred("p")), NewCNF(false, Pred("p"), Pred("p")), true},
	}
	for _, p := range pairs {
		if got := Equal(p.a, p.b); got != p.equal {
			t.Errorf("Equal(%s, %s) = %t", p.a, p.b, got)
		}
		if p.equal && Hash(p.a) != Hash(p.b) {
			t.Errorf("Hash(%s) != Hash(%s)", p.a, p.b)
		}
	}
}

func TestClauseSet(t *testing.T) {
	s := NewClauseSet(
		NewCNF(false, Pred("q")),
		NewCNF(false, Pred("p"), NegLit(Pred("q"))),
		NewCNF(false, Pred("q")),
		NewCNF(true, Pred("q")),
	)
	if s.Len() != 3 {
		t.Fatalf("got %d clauses", s.Len())
	}
	if n := s.Add(NewCNF(false, Pred("p"), NegLit(Pred("q")))); n != 0 {
		t.Errorf("re-added %d", n)
	}
	var got []string
	for _, c := range s.Clauses() {
		got = append(got, c.String())
	}
	want := []string{"p|~q", "q", "(q)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	s.Remove(NewCNF(true, Pred("q")))
	if s.Contains(NewCNF(true, Pred("q"))) {
		t.Errorf("still contains (q)")
	}
}

func TestMeasure(t *testing.T) {
	X, Y := Var("X"), Var("Y")
	f := NewFOF(Forall(Vars("X", "Y"), Paren(Binary(
		Paren(And(Pred("p", X), Not(Pred("q", Y)))),
		Implies,
		Paren(Eq(Func("f", X), Y)),
	))))
	got := Measure(f)
	want := Stats{
		Format:              "fof",
		Depth:               10,
		Atoms:               3,
		Equalities:          1,
		Variables:           2,
		VariableOccurrences: 4,
		Quantifiers:         1,
		Connectives:         3,
		Text:                "![X,Y]:((p(X)&~q(Y))=>(f(X)=Y))",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	c := Measure(NewCNF(false, Pred("p"), NegLit(Pred("q")), Neq(Const("a"), Const("b"))))
	if c.Literals != 3 || !c.Horn || !c.Ground || c.Connectives != 4 {
		t.Errorf("bad cnf stats %+v", c)
	}
}

func TestOutline(t *testing.T) {
	got := Outline(NewCNF(true, NegLit(DollarPred("less", Var("X"), Num("2")))))
	want := &OutlineNode{Kind: "CNF", Text: "()", Children: []*OutlineNode{
		{Kind: "Disjunction", Children: []*OutlineNode{
			{Kind: "NegatedAtomic", Children: []*OutlineNode{
				{Kind: "DefinedPlainAtomic", Children: []*OutlineNode{
					{Kind: "DefinedPlainTerm", Text: "$less", Children: []*OutlineNode{
						{Kind: "Variable", Text: "X"},
						{Kind: "Number", Text: "2"},
					}},
				}},
			}},
		}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestConstructorPanics(t *testing.T) {
	for i, f := range []func(){
		func() { And(Pred("a")) },
		func() { Or() },
		func() { Forall(nil, Pred("p")) },
		func() { Clause() },
		func() { Num("x") },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("case %d: expected panic", i)
				}
			}()
			f()
		}()
	}
}

func ExampleForall() {
	X := Var("X")
	f := NewFOF(Forall([]*Variable{X}, Paren(Binary(Pred("p", X), Implies, Pred("q")))))
	fmt.Println(f)
	// Output: ![X]:(p(X)=>q)
}

func TestNumKind(t *testing.T) {
	for in, want := range map[string]NumKind{
		"12":     Integer,
		"-7/31":  Rational,
		"3.25":   Real,
		"1.0e-5": Real,
		"2E7":    Real,
	} {
		n := Num(in)
		if n.NumKind != want || n.Kind() != NumberKind {
			t.Errorf("Num(%q): got %s %s", in, n.NumKind, n.Kind())
		}
	}
}
