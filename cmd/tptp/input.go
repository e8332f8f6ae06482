package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/parse"
)

// eachFile calls f on each file named in args, or on in, named "-", when
// there are none.
func eachFile(in io.Reader, args []string, f func(name string, r io.Reader) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		if err := withFile(in, name, f); err != nil {
			return err
		}
	}
	return nil
}

func withFile(in io.Reader, name string, f func(name string, r io.Reader) error) error {
	if name == "-" {
		return f(name, in)
	}
	fd, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", name, err)
	}
	defer fd.Close()
	return f(name, fd)
}

// decodeAll calls f on each formula read from r.
func decodeAll(cfg *MainConfig, name string, r io.Reader, f func(ast.Formula) error) error {
	dec := parse.NewDecoder(r, cfg.parseOpts()...)
	for {
		fm, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", name, err)
		}
		if err := f(fm); err != nil {
			return err
		}
	}
}
