package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/tptp-format/go-tptp/ast"
)

var out io.Writer = os.Stderr

// Logf writes a message to stderr.  Trees are rendered in their
// canonical form and outlines and stats as YAML.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *ast.OutlineNode, ast.Stats, *ast.Stats:
			d, err := yaml.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = "\n" + string(d)
		case ast.Node:
			args[i] = x.String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
