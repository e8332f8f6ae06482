// Package token provides the lexical layer of the TPTP formula syntax.
//
// A [Scanner] holds a buffer and an atEOF flag and offers recognizers for the
// token classes of the language: words ([Scanner.LowerWord],
// [Scanner.UpperWord], [Scanner.DollarWord], [Scanner.DollarDollarWord]),
// quoted text ([Scanner.SingleQuoted], [Scanner.DistinctObject]), numbers
// ([Scanner.Number]) and glyphs ([Scanner.Glyph]).  [Scanner.Ignored] skips
// whitespace and comments between tokens.
//
// Every recognizer reports one of three outcomes: a match with its length, no
// match (length 0 and a nil error), or [ErrIncomplete] when the bytes up to
// the end of the buffer are a valid prefix and more input could change the
// answer.  Malformed input is reported as a [*PosErr].
package token
