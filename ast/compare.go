package ast

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes are ordered by kind, then by their own text (functor, leaf text,
// connective or quantifier), then by their children lexicographically,
// a shorter list of children coming first when it is a prefix of the
// other.
func Compare(a, b Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	if c := strings.Compare(a.label(), b.label()); c != 0 {
		return c
	}
	ak, bk := a.children(), b.children()
	for i := range min(len(ak), len(bk)) {
		if c := Compare(ak[i], bk[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ak), len(bk))
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Node) bool {
	return Compare(a, b) == 0
}

// Children returns the direct children of n in printing order.
func Children(n Node) []Node {
	return n.children()
}

// Walk calls f on n and its descendants in printing order, skipping the
// descendants of nodes for which f returns false.
func Walk(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	for _, k := range n.children() {
		Walk(k, f)
	}
}

func termNodes(ts []Term) []Node {
	res := make([]Node, len(ts))
	for i, t := range ts {
		res[i] = t
	}
	return res
}

func (v *Variable) label() string       { return string(v.Name) }
func (n *Number) label() string         { return string(n.Text) }
func (d *DistinctObject) label() string { return string(d.Text) }

// A quoted and an unquoted word with the same text print differently and
// so must not compare equal.
func (t *PlainTerm) label() string        { return t.Functor.String() }
func (t *DefinedPlainTerm) label() string { return string(t.Functor.Name) }
func (t *SystemTerm) label() string       { return string(t.Functor.Name) }
func (*PlainAtomic) label() string        { return "" }
func (*DefinedPlainAtomic) label() string { return "" }
func (*DefinedInfix) label() string       { return "" }
func (*SystemAtomic) label() string       { return "" }
func (*InfixUnary) label() string         { return "" }
func (*Negation) label() string           { return "" }
func (q *Quantified) label() string       { return q.Quantifier.String() }
func (*Parenthesised) label() string      { return "" }
func (b *Nonassoc) label() string         { return b.Op.String() }
func (b *Assoc) label() string            { return b.Op.String() }
func (*FOF) label() string                { return "" }
func (*NegatedAtomic) label() string      { return "" }
func (*Disjunction) label() string        { return "" }
func (c *CNF) label() string {
	if c.Parenthesised {
		return "()"
	}
	return ""
}

func (*Variable) children() []Node             { return nil }
func (*Number) children() []Node               { return nil }
func (*DistinctObject) children() []Node       { return nil }
func (t *PlainTerm) children() []Node          { return termNodes(t.Args) }
func (t *DefinedPlainTerm) children() []Node   { return termNodes(t.Args) }
func (t *SystemTerm) children() []Node         { return termNodes(t.Args) }
func (a *PlainAtomic) children() []Node        { return []Node{a.Term} }
func (a *DefinedPlainAtomic) children() []Node { return []Node{a.Term} }
func (a *DefinedInfix) children() []Node       { return []Node{a.Left, a.Right} }
func (a *SystemAtomic) children() []Node       { return []Node{a.Term} }
func (u *InfixUnary) children() []Node         { return []Node{u.Left, u.Right} }
func (n *Negation) children() []Node           { return []Node{n.Formula} }
func (p *Parenthesised) children() []Node      { return []Node{p.Formula} }
func (b *Nonassoc) children() []Node           { return []Node{b.Left, b.Right} }
func (f *FOF) children() []Node                { return []Node{f.Formula} }
func (n *NegatedAtomic) children() []Node      { return []Node{n.Formula} }
func (c *CNF) children() []Node                { return []Node{c.Clause} }

func (q *Quantified) children() []Node {
	res := make([]Node, 0, len(q.Bound)+1)
	for _, v := range q.Bound {
		res = append(res, v)
	}
	return append(res, q.Formula)
}

func (b *Assoc) children() []Node {
	res := make([]Node, len(b.Formulas))
	for i, f := range b.Formulas {
		res[i] = f
	}
	return res
}

func (d *Disjunction) children() []Node {
	res := make([]Node, len(d.Literals))
	for i, l := range d.Literals {
		res[i] = l
	}
	return res
}
