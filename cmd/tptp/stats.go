package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/tptp-format/go-tptp/ast"
)

type formulaStats struct {
	File      string `yaml:"file"`
	Index     int    `yaml:"index"`
	ast.Stats `yaml:",inline"`
}

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		cfg.Stats.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachFile(cc.In, args, func(name string, r io.Reader) error {
		return statsReader(cfg.MainConfig, cc.Out, name, r)
	})
}

func statsReader(cfg *MainConfig, w io.Writer, name string, r io.Reader) error {
	i := 0
	return decodeAll(cfg, name, r, func(f ast.Formula) error {
		d, err := yaml.Marshal(formulaStats{File: name, Index: i, Stats: ast.Measure(f)})
		if err != nil {
			return err
		}
		i++
		_, err = fmt.Fprintf(w, "---\n%s", d)
		return err
	})
}
