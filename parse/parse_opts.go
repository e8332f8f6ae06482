package parse

import (
	"github.com/signadot/tptp-format/go-tptp/format"
)

type parseOpts struct {
	format   format.Format
	maxDepth int
	base     int
	line     int
}

type ParseOption func(*parseOpts)

func ParseFOFFormat() ParseOption {
	return ParseFormat(format.FOFFormat)
}
func ParseCNFFormat() ParseOption {
	return ParseFormat(format.CNFFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseMaxDepth limits the nesting of formulas and argument lists.  0
// means no limit.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseBase sets the offset and line number of the start of the input
// within an enclosing stream, for reported positions.
func ParseBase(offset, line int) ParseOption {
	return func(o *parseOpts) {
		o.base = offset
		o.line = line
	}
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{format: format.FOFFormat}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

// FormatFromOpts extracts the format from parse options.
func FormatFromOpts(opts ...ParseOption) format.Format {
	return newOpts(opts).format
}
