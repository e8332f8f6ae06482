package encode

import (
	"io"

	"github.com/signadot/tptp-format/go-tptp/ast"
	"github.com/signadot/tptp-format/go-tptp/debug"
)

type EncState struct {
	terminator bool
	newline    bool

	w   io.Writer
	n   int
	err error

	Color func(ast.Class, string) string
}

// Encode writes the canonical form of node to w.
func Encode(node ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{newline: true}
	for _, opt := range opts {
		opt(es)
	}
	es.w = w
	node.Emit(es)
	if es.terminator {
		es.Put(ast.ClassPunct, ".")
	}
	if es.newline {
		writeString(es, "\n")
	}
	if debug.Encode() {
		debug.Logf("encode: %d bytes: %s\n", es.n, node)
	}
	return es.err
}

// Put implements ast.Writer.  After the first write error, further
// pieces are dropped.
func (es *EncState) Put(c ast.Class, text string) {
	if es.Color != nil {
		text = es.Color(c, text)
	}
	writeString(es, text)
}

func writeString(es *EncState, s string) {
	if es.err != nil {
		return
	}
	n, err := io.WriteString(es.w, s)
	es.n += n
	es.err = err
}
