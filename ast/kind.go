package ast

import (
	"fmt"
)

type Kind int

const (
	VariableKind Kind = iota
	NumberKind
	DistinctObjectKind
	PlainTermKind
	DefinedPlainTermKind
	SystemTermKind
	PlainAtomicKind
	DefinedPlainAtomicKind
	DefinedInfixKind
	SystemAtomicKind
	InfixUnaryKind
	NegationKind
	QuantifiedKind
	ParenthesisedKind
	NonassocKind
	AssocKind
	NegatedAtomicKind
	DisjunctionKind
	FOFKind
	CNFKind
)

var kindNames = map[Kind]string{
	VariableKind:           "Variable",
	NumberKind:             "Number",
	DistinctObjectKind:     "DistinctObject",
	PlainTermKind:          "PlainTerm",
	DefinedPlainTermKind:   "DefinedPlainTerm",
	SystemTermKind:         "SystemTerm",
	PlainAtomicKind:        "PlainAtomic",
	DefinedPlainAtomicKind: "DefinedPlainAtomic",
	DefinedInfixKind:       "DefinedInfix",
	SystemAtomicKind:       "SystemAtomic",
	InfixUnaryKind:         "InfixUnary",
	NegationKind:           "Negation",
	QuantifiedKind:         "Quantified",
	ParenthesisedKind:      "Parenthesised",
	NonassocKind:           "Nonassoc",
	AssocKind:              "Assoc",
	NegatedAtomicKind:      "NegatedAtomic",
	DisjunctionKind:        "Disjunction",
	FOFKind:                "FOF",
	CNFKind:                "CNF",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("<kind %d>", int(k))
	}
	return s
}

// NumKind classifies numeric literals.
type NumKind int

const (
	Integer NumKind = iota
	Rational
	Real
)

func (k NumKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Rational:
		return "rational"
	case Real:
		return "real"
	}
	return fmt.Sprintf("<numkind %d>", int(k))
}

type Quantifier int

const (
	Universal Quantifier = iota
	Existential
)

func (q Quantifier) String() string {
	if q == Existential {
		return "?"
	}
	return "!"
}

// AssocConnective is a connective whose runs are flattened into one list.
type AssocConnective int

const (
	AndOp AssocConnective = iota
	OrOp
)

func (c AssocConnective) String() string {
	if c == OrOp {
		return "|"
	}
	return "&"
}

// NonassocConnective is a strictly binary connective.
type NonassocConnective int

const (
	Implies NonassocConnective = iota
	RevImplies
	Equiv
	NotEquiv
	NotOr
	NotAnd
)

var nonassocText = [...]string{
	Implies:    "=>",
	RevImplies: "<=",
	Equiv:      "<=>",
	NotEquiv:   "<~>",
	NotOr:      "~|",
	NotAnd:     "~&",
}

func (c NonassocConnective) String() string {
	if c < 0 || int(c) >= len(nonassocText) {
		return fmt.Sprintf("<connective %d>", int(c))
	}
	return nonassocText[c]
}
