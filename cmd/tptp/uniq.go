package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/encode"
)

func uniq(cfg *UniqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Uniq.Parse(cc, args)
	if err != nil {
		cfg.Uniq.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if !cfg.format().IsCNF() {
		return fmt.Errorf("%w: uniq reads cnf clauses, use -cnf", cli.ErrUsage)
	}
	set := ast.NewClauseSet()
	err = eachFile(cc.In, args, func(name string, r io.Reader) error {
		return collectClauses(cfg.MainConfig, set, name, r)
	})
	if err != nil {
		return err
	}
	return writeClauses(cfg, cc.Out, set)
}

func collectClauses(cfg *MainConfig, set *ast.ClauseSet, name string, r io.Reader) error {
	return decodeAll(cfg, name, r, func(f ast.Formula) error {
		set.Add(f.(*ast.CNF))
		return nil
	})
}

func writeClauses(cfg *UniqConfig, w io.Writer, set *ast.ClauseSet) error {
	if cfg.Count {
		_, err := fmt.Fprintf(w, "%d\n", set.Len())
		return err
	}
	opts := cfg.encOpts(w)
	for _, c := range set.Clauses() {
		if err := encode.Encode(c, w, opts...); err != nil {
			return err
		}
	}
	return nil
}
