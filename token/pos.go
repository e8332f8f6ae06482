package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps offsets in a buffer to lines and columns.  Offsets are
// absolute: base is the stream offset of d[0] and line is the number of
// newlines in the stream before d[0].
type PosDoc struct {
	d    []byte
	base int
	line int
	n    []int
	done bool
}

func NewPosDoc(d []byte, base, line int) *PosDoc {
	return &PosDoc{d: d, base: base, line: line}
}

// newlines are only needed when a position is rendered, which
// happens for errors and debug output.
func (p *PosDoc) index() {
	if p.done {
		return
	}
	p.done = true
	for i, c := range p.d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
}

// LineCol returns the 0-based line and column of absolute offset off.
func (p *PosDoc) LineCol(off int) (int, int) {
	p.index()
	off -= p.base
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return p.line, off
	default:
		return p.line + di, off - p.n[di-1] - 1
	}
}

// Pos returns the position of relative offset i in the buffer.
func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: p.base + i,
		D: p,
	}
}

func (p *PosDoc) Base() int {
	return p.base
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil {
		i := p.I - p.D.base
		sample = string(p.D.d[max(0, min(i-5, len(p.D.d))):min(max(i+5, 0), len(p.D.d))])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
