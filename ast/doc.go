// Package ast defines the trees produced by parsing TPTP fof and cnf
// formulas.
//
// # Overview
//
// Each grammar level is a distinct Go type and each union of levels is an
// interface with unexported marker methods, so the compiler rejects trees
// the grammar cannot produce:
//
//   - Term: *Variable, *PlainTerm, *DefinedPlainTerm, *SystemTerm, *Number,
//     *DistinctObject
//   - AtomicFormula: *PlainAtomic, *DefinedPlainAtomic, *DefinedInfix,
//     *SystemAtomic
//   - UnitFormula: atomic formulas, *Quantified, *Parenthesised,
//     *Negation, *InfixUnary
//   - LogicFormula: unit formulas, *Nonassoc, *Assoc
//   - Literal: atomic formulas, *NegatedAtomic, *InfixUnary
//   - Formula: *FOF, *CNF
//
// Leaves hold byte slices of the parsed input rather than copies, so a
// tree must not outlive modifications to that input.
//
// # Printing
//
// Every node has exactly one textual form, produced by Emit and String.
// No whitespace is emitted, and parsing the printed form of a tree yields
// an equal tree.
//
//	f := ast.NewFOF(ast.Forall([]*ast.Variable{ast.Var("X")},
//	    ast.Paren(ast.Binary(ast.Pred("p", ast.Var("X")), ast.Implies, ast.Pred("q")))))
//	f.String() // ![X]:(p(X)=>q)
//
// # Comparison
//
// Compare, Equal and Hash are structural.  ClauseSet orders and
// deduplicates clauses with Compare.
package ast
