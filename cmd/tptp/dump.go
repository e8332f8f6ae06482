package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/tptp-format/go-tptp/ast"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachFile(cc.In, args, func(name string, r io.Reader) error {
		return dumpReader(cfg.MainConfig, cc.Out, name, r)
	})
}

func dumpReader(cfg *MainConfig, w io.Writer, name string, r io.Reader) error {
	return decodeAll(cfg, name, r, func(f ast.Formula) error {
		d, err := yaml.Marshal(ast.Outline(f))
		if err != nil {
			return fmt.Errorf("error encoding outline of %s: %w", f, err)
		}
		_, err = fmt.Fprintf(w, "---\n%s", d)
		return err
	})
}
