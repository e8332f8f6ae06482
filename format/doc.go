// Package format names the two formula families of the TPTP language
// handled by this module: full first-order form (fof) and clausal normal
// form (cnf).
//
// # Usage
//
//	f, err := format.ParseFormat("cnf")
//	tree, err := parse.Parse(input, parse.ParseFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/tptp-format/go-tptp/parse - Parse text to trees
//   - github.com/signadot/tptp-format/go-tptp/encode - Encode trees to text
package format
