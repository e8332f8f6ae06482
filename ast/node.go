package ast

import (
	"github.com/signadot/tptp-format/go-tptp/format"
)

// Node is any tree node.
type Node interface {
	Kind() Kind
	// Emit writes the canonical form of the node to w.
	Emit(w Writer)
	String() string

	// label is the text distinguishing nodes of the same kind apart from
	// their children: a leaf's text, a connective, a quantifier.
	label() string
	children() []Node
}

type Term interface {
	Node
	isTerm()
}

type AtomicFormula interface {
	UnitaryFormula
	Literal
	isAtomic()
}

// UnitaryFormula is a quantified, atomic or parenthesised formula.
type UnitaryFormula interface {
	UnitFormula
	isUnitary()
}

// UnitFormula is the operand of a binary connective.
type UnitFormula interface {
	LogicFormula
	isUnit()
}

type LogicFormula interface {
	Node
	isLogic()
}

// Literal is an element of a clause.
type Literal interface {
	Node
	isLiteral()
}

// Formula is the root of one parsed formula.
type Formula interface {
	Node
	Format() format.Format
}

// AtomicWord is a functor or constant name, either a lower word or the
// text between single quotes.
type AtomicWord struct {
	Text   []byte
	Quoted bool
}

func (w AtomicWord) String() string {
	if w.Quoted {
		return "'" + string(w.Text) + "'"
	}
	return string(w.Text)
}

// DefinedWord is a name with the $ prefix removed.
type DefinedWord struct {
	Name []byte
}

func (w DefinedWord) String() string { return "$" + string(w.Name) }

// SystemWord is a name with the $$ prefix removed.
type SystemWord struct {
	Name []byte
}

func (w SystemWord) String() string { return "$$" + string(w.Name) }

type Variable struct {
	Name []byte
}

type Number struct {
	NumKind NumKind
	Text    []byte
}

// DistinctObject holds the text between double quotes.
type DistinctObject struct {
	Text []byte
}

// PlainTerm is a constant when Args is empty and a function application
// otherwise.
type PlainTerm struct {
	Functor AtomicWord
	Args    []Term
}

type DefinedPlainTerm struct {
	Functor DefinedWord
	Args    []Term
}

type SystemTerm struct {
	Functor SystemWord
	Args    []Term
}

type PlainAtomic struct {
	Term *PlainTerm
}

type DefinedPlainAtomic struct {
	Term *DefinedPlainTerm
}

// DefinedInfix is Left=Right.
type DefinedInfix struct {
	Left, Right Term
}

type SystemAtomic struct {
	Term *SystemTerm
}

// InfixUnary is Left!=Right.  It is not an atomic formula.
type InfixUnary struct {
	Left, Right Term
}

type Negation struct {
	Formula UnitFormula
}

// Quantified binds a non-empty list of variables over Formula.
type Quantified struct {
	Quantifier Quantifier
	Bound      []*Variable
	Formula    UnitFormula
}

type Parenthesised struct {
	Formula LogicFormula
}

type Nonassoc struct {
	Left  UnitFormula
	Op    NonassocConnective
	Right UnitFormula
}

// Assoc is a flattened run of at least two formulas joined by Op.
type Assoc struct {
	Op       AssocConnective
	Formulas []UnitFormula
}

type FOF struct {
	Formula LogicFormula
}

type NegatedAtomic struct {
	Formula AtomicFormula
}

// Disjunction is a non-empty clause.  Order and duplicates are kept.
type Disjunction struct {
	Literals []Literal
}

type CNF struct {
	Parenthesised bool
	Clause        *Disjunction
}

func (*Variable) Kind() Kind           { return VariableKind }
func (*Number) Kind() Kind             { return NumberKind }
func (*DistinctObject) Kind() Kind     { return DistinctObjectKind }
func (*PlainTerm) Kind() Kind          { return PlainTermKind }
func (*DefinedPlainTerm) Kind() Kind   { return DefinedPlainTermKind }
func (*SystemTerm) Kind() Kind         { return SystemTermKind }
func (*PlainAtomic) Kind() Kind        { return PlainAtomicKind }
func (*DefinedPlainAtomic) Kind() Kind { return DefinedPlainAtomicKind }
func (*DefinedInfix) Kind() Kind       { return DefinedInfixKind }
func (*SystemAtomic) Kind() Kind       { return SystemAtomicKind }
func (*InfixUnary) Kind() Kind         { return InfixUnaryKind }
func (*Negation) Kind() Kind           { return NegationKind }
func (*Quantified) Kind() Kind         { return QuantifiedKind }
func (*Parenthesised) Kind() Kind      { return ParenthesisedKind }
func (*Nonassoc) Kind() Kind           { return NonassocKind }
func (*Assoc) Kind() Kind              { return AssocKind }
func (*NegatedAtomic) Kind() Kind      { return NegatedAtomicKind }
func (*Disjunction) Kind() Kind        { return DisjunctionKind }
func (*FOF) Kind() Kind                { return FOFKind }
func (*CNF) Kind() Kind                { return CNFKind }

func (*FOF) Format() format.Format { return format.FOFFormat }
func (*CNF) Format() format.Format { return format.CNFFormat }

func (*Variable) isTerm()         {}
func (*Number) isTerm()           {}
func (*DistinctObject) isTerm()   {}
func (*PlainTerm) isTerm()        {}
func (*DefinedPlainTerm) isTerm() {}
func (*SystemTerm) isTerm()       {}

func (*PlainAtomic) isAtomic()        {}
func (*DefinedPlainAtomic) isAtomic() {}
func (*DefinedInfix) isAtomic()       {}
func (*SystemAtomic) isAtomic()       {}

func (*PlainAtomic) isUnitary()        {}
func (*DefinedPlainAtomic) isUnitary() {}
func (*DefinedInfix) isUnitary()       {}
func (*SystemAtomic) isUnitary()       {}
func (*Quantified) isUnitary()         {}
func (*Parenthesised) isUnitary()      {}

func (*PlainAtomic) isUnit()        {}
func (*DefinedPlainAtomic) isUnit() {}
func (*DefinedInfix) isUnit()       {}
func (*SystemAtomic) isUnit()       {}
func (*Quantified) isUnit()         {}
func (*Parenthesised) isUnit()      {}
func (*Negation) isUnit()           {}
func (*InfixUnary) isUnit()         {}

func (*PlainAtomic) isLogic()        {}
func (*DefinedPlainAtomic) isLogic() {}
func (*DefinedInfix) isLogic()       {}
func (*SystemAtomic) isLogic()       {}
func (*Quantified) isLogic()         {}
func (*Parenthesised) isLogic()      {}
func (*Negation) isLogic()           {}
func (*InfixUnary) isLogic()         {}
func (*Nonassoc) isLogic()           {}
func (*Assoc) isLogic()              {}

func (*PlainAtomic) isLiteral()        {}
func (*DefinedPlainAtomic) isLiteral() {}
func (*DefinedInfix) isLiteral()       {}
func (*SystemAtomic) isLiteral()       {}
func (*NegatedAtomic) isLiteral()      {}
func (*InfixUnary) isLiteral()         {}

// IsConstant reports whether t is a functor without arguments.
func IsConstant(t Term) bool {
	switch x := t.(type) {
	case *PlainTerm:
		return len(x.Args) == 0
	case *DefinedPlainTerm:
		return len(x.Args) == 0
	case *SystemTerm:
		return len(x.Args) == 0
	}
	return false
}
