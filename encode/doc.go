// Package encode writes formula trees in their canonical text form.
//
// # Usage
//
//	f, err := parse.ParseFOF([]byte("![X]: (p(X) => q(X))"))
//	...
//	err = encode.Encode(f, os.Stdout, encode.EncodeTerminator(true))
//	// ![X]:(p(X)=>q(X)).
//
// Output may be highlighted with EncodeColors(NewColors()).  Without
// colors the output is exactly the tree's String, which parses back to
// an equal tree.
//
// # Related Packages
//
//   - github.com/signadot/tptp-format/go-tptp/ast - the trees
//   - github.com/signadot/tptp-format/go-tptp/parse - text to trees
package encode
