// Package query filters formulas with expr-lang expressions.
//
// An expression sees the fields of ast.Stats (Depth, Atoms, Ground, ...)
// together with Symbols and Vars, the sorted distinct functor and
// variable names of the formula.  For example
//
//	Ground && Depth < 5
//	"$less" in Symbols
//	Text == canon("p & q")
package query

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/parse"
)

var ErrQuery = errors.New("query error")

// Env is the environment of an expression.
type Env struct {
	ast.Stats
	Symbols []string `expr:"Symbols"`
	Vars    []string `expr:"Vars"`
}

func NewEnv(f ast.Formula) Env {
	syms := treeset.NewWith(utils.StringComparator)
	vars := treeset.NewWith(utils.StringComparator)
	ast.Walk(f, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.PlainTerm:
			syms.Add(x.Functor.String())
		case *ast.DefinedPlainTerm:
			syms.Add(x.Functor.String())
		case *ast.SystemTerm:
			syms.Add(x.Functor.String())
		case *ast.Variable:
			vars.Add(string(x.Name))
		}
		return true
	})
	return Env{
		Stats:   ast.Measure(f),
		Symbols: values(syms),
		Vars:    values(vars),
	}
}

func values(s *treeset.Set) []string {
	res := make([]string, 0, s.Size())
	for _, v := range s.Values() {
		res = append(res, v.(string))
	}
	return res
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("canon", func(params ...any) (any, error) {
			f, err := parse.ParseFOF([]byte(params[0].(string)))
			if err != nil {
				return nil, err
			}
			return f.String(), nil
		},
			new(func(string) string)),
	}
}

type Filter struct {
	src string
	prg *vm.Program
}

// Compile compiles src, which must evaluate to a bool.
func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (q *Filter) String() string {
	return q.src
}

func (q *Filter) Match(f ast.Formula) (bool, error) {
	res, err := expr.Run(q.prg, NewEnv(f))
	if err != nil {
		return false, fmt.Errorf("%w: %q on %s: %w", ErrQuery, q.src, f, err)
	}
	return res.(bool), nil
}
