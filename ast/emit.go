package ast

import (
	"strings"
)

// Class tells a Writer what a piece of printed text is, so that a writer
// may highlight it.
type Class int

const (
	ClassPunct Class = iota
	ClassConnective
	ClassQuantifier
	ClassVariable
	ClassFunctor
	ClassDefined
	ClassSystem
	ClassNumber
	ClassDistinct
)

func Classes() []Class {
	return []Class{ClassPunct, ClassConnective, ClassQuantifier, ClassVariable,
		ClassFunctor, ClassDefined, ClassSystem, ClassNumber, ClassDistinct}
}

func (c Class) String() string {
	return map[Class]string{
		ClassPunct:      "punct",
		ClassConnective: "connective",
		ClassQuantifier: "quantifier",
		ClassVariable:   "variable",
		ClassFunctor:    "functor",
		ClassDefined:    "defined",
		ClassSystem:     "system",
		ClassNumber:     "number",
		ClassDistinct:   "distinct",
	}[c]
}

// Writer receives the printed form of a tree piece by piece.
type Writer interface {
	Put(c Class, text string)
}

type builder struct {
	strings.Builder
}

func (b *builder) Put(_ Class, text string) {
	b.WriteString(text)
}

func stringOf(n Node) string {
	b := &builder{}
	n.Emit(b)
	return b.String()
}

func emitArgs(w Writer, args []Term) {
	if len(args) == 0 {
		return
	}
	w.Put(ClassPunct, "(")
	for i, a := range args {
		if i != 0 {
			w.Put(ClassPunct, ",")
		}
		a.Emit(w)
	}
	w.Put(ClassPunct, ")")
}

func (v *Variable) Emit(w Writer) { w.Put(ClassVariable, string(v.Name)) }

func (n *Number) Emit(w Writer) { w.Put(ClassNumber, string(n.Text)) }

func (d *DistinctObject) Emit(w Writer) { w.Put(ClassDistinct, `"`+string(d.Text)+`"`) }

func (t *PlainTerm) Emit(w Writer) {
	w.Put(ClassFunctor, t.Functor.String())
	emitArgs(w, t.Args)
}

func (t *DefinedPlainTerm) Emit(w Writer) {
	w.Put(ClassDefined, t.Functor.String())
	emitArgs(w, t.Args)
}

func (t *SystemTerm) Emit(w Writer) {
	w.Put(ClassSystem, t.Functor.String())
	emitArgs(w, t.Args)
}

func (a *PlainAtomic) Emit(w Writer)        { a.Term.Emit(w) }
func (a *DefinedPlainAtomic) Emit(w Writer) { a.Term.Emit(w) }
func (a *SystemAtomic) Emit(w Writer)       { a.Term.Emit(w) }

func (a *DefinedInfix) Emit(w Writer) {
	a.Left.Emit(w)
	w.Put(ClassConnective, "=")
	a.Right.Emit(w)
}

func (u *InfixUnary) Emit(w Writer) {
	u.Left.Emit(w)
	w.Put(ClassConnective, "!=")
	u.Right.Emit(w)
}

func (n *Negation) Emit(w Writer) {
	w.Put(ClassConnective, "~")
	n.Formula.Emit(w)
}

func (q *Quantified) Emit(w Writer) {
	w.Put(ClassQuantifier, q.Quantifier.String())
	w.Put(ClassPunct, "[")
	for i, v := range q.Bound {
		if i != 0 {
			w.Put(ClassPunct, ",")
		}
		v.Emit(w)
	}
	w.Put(ClassPunct, "]")
	w.Put(ClassPunct, ":")
	q.Formula.Emit(w)
}

func (p *Parenthesised) Emit(w Writer) {
	w.Put(ClassPunct, "(")
	p.Formula.Emit(w)
	w.Put(ClassPunct, ")")
}

func (b *Nonassoc) Emit(w Writer) {
	b.Left.Emit(w)
	w.Put(ClassConnective, b.Op.String())
	b.Right.Emit(w)
}

func (b *Assoc) Emit(w Writer) {
	for i, f := range b.Formulas {
		if i != 0 {
			w.Put(ClassConnective, b.Op.String())
		}
		f.Emit(w)
	}
}

func (f *FOF) Emit(w Writer) { f.Formula.Emit(w) }

func (n *NegatedAtomic) Emit(w Writer) {
	w.Put(ClassConnective, "~")
	n.Formula.Emit(w)
}

func (d *Disjunction) Emit(w Writer) {
	for i, l := range d.Literals {
		if i != 0 {
			w.Put(ClassConnective, "|")
		}
		l.Emit(w)
	}
}

func (c *CNF) Emit(w Writer) {
	if c.Parenthesised {
		w.Put(ClassPunct, "(")
	}
	c.Clause.Emit(w)
	if c.Parenthesised {
		w.Put(ClassPunct, ")")
	}
}

func (n *Variable) String() string           { return stringOf(n) }
func (n *Number) String() string             { return stringOf(n) }
func (n *DistinctObject) String() string     { return stringOf(n) }
func (n *PlainTerm) String() string          { return stringOf(n) }
func (n *DefinedPlainTerm) String() string   { return stringOf(n) }
func (n *SystemTerm) String() string         { return stringOf(n) }
func (n *PlainAtomic) String() string        { return stringOf(n) }
func (n *DefinedPlainAtomic) String() string { return stringOf(n) }
func (n *DefinedInfix) String() string       { return stringOf(n) }
func (n *SystemAtomic) String() string       { return stringOf(n) }
func (n *InfixUnary) String() string         { return stringOf(n) }
func (n *Negation) String() string           { return stringOf(n) }
func (n *Quantified) String() string         { return stringOf(n) }
func (n *Parenthesised) String() string      { return stringOf(n) }
func (n *Nonassoc) String() string           { return stringOf(n) }
func (n *Assoc) String() string              { return stringOf(n) }
func (n *FOF) String() string                { return stringOf(n) }
func (n *NegatedAtomic) String() string      { return stringOf(n) }
func (n *Disjunction) String() string        { return stringOf(n) }
func (n *CNF) String() string                { return stringOf(n) }
