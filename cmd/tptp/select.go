package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/encode"
	"github.com/signadot/tptp-format/go-tptp/query"
)

func selectMain(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: select requires -e <expr>", cli.ErrUsage)
	}
	q, err := query.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachFile(cc.In, args, func(name string, r io.Reader) error {
		return selectReader(cfg, q, cc.Out, name, r)
	})
}

func selectReader(cfg *SelectConfig, q *query.Filter, w io.Writer, name string, r io.Reader) error {
	opts := cfg.encOpts(w)
	return decodeAll(cfg.MainConfig, name, r, func(f ast.Formula) error {
		ok, err := q.Match(f)
		if err != nil {
			return err
		}
		if ok == cfg.Invert {
			return nil
		}
		return encode.Encode(f, w, opts...)
	})
}
