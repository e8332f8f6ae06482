package main

import (
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/encode"
)

func fmtMain(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachFile(cc.In, args, func(name string, r io.Reader) error {
		return fmtReader(cfg.MainConfig, cc.Out, name, r)
	})
}

func fmtReader(cfg *MainConfig, w io.Writer, name string, r io.Reader) error {
	opts := cfg.encOpts(w)
	return decodeAll(cfg, name, r, func(f ast.Formula) error {
		return encode.Encode(f, w, opts...)
	})
}
