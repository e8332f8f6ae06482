// Package parse parses TPTP fof formulas and cnf clauses.
//
// Every production has a streaming entry point (Term, AtomicFormula,
// UnitFormula, LogicFormula, Literal, Disjunction, FOF, CNF) which
// parses one production at the start of a buffer and returns the tree
// and the number of bytes consumed.  The result is one of
//
//   - complete: a tree and a nil error,
//   - incomplete: ErrIncomplete, the buffer may be a prefix of a valid
//     input and the caller should retry from the same offset with more,
//   - malformed: an error wrapping ErrParse (usually a *SyntaxError) or a
//     lexical error from package token.
//
// StatusOf classifies an error.  Parse, ParseFOF and ParseCNF parse a
// whole input, and Decoder reads a stream of '.' terminated formulas.
//
// Trees reference the parsed bytes; callers must not modify them while
// the tree is in use.
//
// # Related Packages
//
//   - github.com/signadot/tptp-format/go-tptp/ast - the trees
//   - github.com/signadot/tptp-format/go-tptp/encode - trees to text
package parse
