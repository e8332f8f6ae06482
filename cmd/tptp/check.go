package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/encode"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	bad := 0
	err = eachFile(cc.In, args, func(name string, r io.Reader) error {
		ok, err := checkReader(cfg, cc.Out, name, r)
		if !ok {
			bad++
		}
		return err
	})
	if err != nil {
		return err
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkReader reports whether r holds exactly the canonical rendering of
// its formulas, one per line.  Comments and blank lines are not
// canonical.
func checkReader(cfg *CheckConfig, w io.Writer, name string, r io.Reader) (bool, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("error reading %s: %w", name, err)
	}
	canon := bytes.NewBuffer(nil)
	err = decodeAll(cfg.MainConfig, name, bytes.NewReader(in), func(f ast.Formula) error {
		return encode.Encode(f, canon, encode.EncodeTerminator(true))
	})
	if err != nil {
		return false, err
	}
	if bytes.Equal(in, canon.Bytes()) {
		return true, nil
	}
	fmt.Fprintf(w, "%s: not canonical\n", name)
	if cfg.Diff {
		writeLineDiff(w, string(in), canon.String(), cfg.colored(w))
	}
	return false, nil
}

func writeLineDiff(w io.Writer, a, b string, colored bool) {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
	}
	for _, d := range diffs {
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			if !strings.HasSuffix(ln, "\n") {
				ln += "\n"
			}
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				fmt.Fprint(w, del("-"+ln))
			case diffmatchpatch.DiffInsert:
				fmt.Fprint(w, ins("+"+ln))
			default:
				fmt.Fprint(w, " "+ln)
			}
		}
	}
}
