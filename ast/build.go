package ast

import (
	"fmt"

	"github.com/signadot/tptp-format/go-tptp/token"
)

// word returns the atomic word for name, quoting it unless it is a lower
// word.  A quoted name must already be escaped.
func word(name string) AtomicWord {
	s := token.NewScanner([]byte(name), true)
	if n, _ := s.LowerWord(0); n != 0 && n == len(name) {
		return AtomicWord{Text: []byte(name)}
	}
	return AtomicWord{Text: []byte(name), Quoted: true}
}

func Var(name string) *Variable {
	return &Variable{Name: []byte(name)}
}

func Vars(names ...string) []*Variable {
	res := make([]*Variable, len(names))
	for i, n := range names {
		res[i] = Var(n)
	}
	return res
}

// Const returns the constant name, quoted when name is not a lower word.
func Const(name string) *PlainTerm {
	return &PlainTerm{Functor: word(name)}
}

func Func(name string, args ...Term) *PlainTerm {
	return &PlainTerm{Functor: word(name), Args: args}
}

// Num returns a number node.  It panics if text is not a TPTP number.
func Num(text string) *Number {
	s := token.NewScanner([]byte(text), true)
	tt, n, err := s.Number(0)
	if err != nil || n != len(text) {
		panic(fmt.Sprintf("ast: %q is not a number", text))
	}
	k := Integer
	switch tt {
	case token.TRational:
		k = Rational
	case token.TReal:
		k = Real
	}
	return &Number{NumKind: k, Text: []byte(text)}
}

func Distinct(text string) *DistinctObject {
	return &DistinctObject{Text: []byte(text)}
}

// Dollar returns the defined term $name(args...).
func Dollar(name string, args ...Term) *DefinedPlainTerm {
	return &DefinedPlainTerm{Functor: DefinedWord{Name: []byte(name)}, Args: args}
}

// System returns the system term $$name(args...).
func System(name string, args ...Term) *SystemTerm {
	return &SystemTerm{Functor: SystemWord{Name: []byte(name)}, Args: args}
}

func Pred(name string, args ...Term) *PlainAtomic {
	return &PlainAtomic{Term: Func(name, args...)}
}

func DollarPred(name string, args ...Term) *DefinedPlainAtomic {
	return &DefinedPlainAtomic{Term: Dollar(name, args...)}
}

func SystemPred(name string, args ...Term) *SystemAtomic {
	return &SystemAtomic{Term: System(name, args...)}
}

func Eq(l, r Term) *DefinedInfix {
	return &DefinedInfix{Left: l, Right: r}
}

func Neq(l, r Term) *InfixUnary {
	return &InfixUnary{Left: l, Right: r}
}

func Not(f UnitFormula) *Negation {
	return &Negation{Formula: f}
}

func Forall(vs []*Variable, f UnitFormula) *Quantified {
	return quantify(Universal, vs, f)
}

func Exists(vs []*Variable, f UnitFormula) *Quantified {
	return quantify(Existential, vs, f)
}

func quantify(q Quantifier, vs []*Variable, f UnitFormula) *Quantified {
	if len(vs) == 0 {
		panic("ast: quantifier without variables")
	}
	return &Quantified{Quantifier: q, Bound: vs, Formula: f}
}

func Paren(f LogicFormula) *Parenthesised {
	return &Parenthesised{Formula: f}
}

func Binary(l UnitFormula, op NonassocConnective, r UnitFormula) *Nonassoc {
	return &Nonassoc{Left: l, Op: op, Right: r}
}

func And(fs ...UnitFormula) *Assoc {
	return assoc(AndOp, fs)
}

func Or(fs ...UnitFormula) *Assoc {
	return assoc(OrOp, fs)
}

func assoc(op AssocConnective, fs []UnitFormula) *Assoc {
	if len(fs) < 2 {
		panic(fmt.Sprintf("ast: %s with %d operands", op, len(fs)))
	}
	return &Assoc{Op: op, Formulas: fs}
}

func NewFOF(f LogicFormula) *FOF {
	return &FOF{Formula: f}
}

func NegLit(a AtomicFormula) *NegatedAtomic {
	return &NegatedAtomic{Formula: a}
}

func Clause(ls ...Literal) *Disjunction {
	if len(ls) == 0 {
		panic("ast: empty clause")
	}
	return &Disjunction{Literals: ls}
}

func NewCNF(parenthesised bool, ls ...Literal) *CNF {
	return &CNF{Parenthesised: parenthesised, Clause: Clause(ls...)}
}
