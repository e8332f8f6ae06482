package token

import (
	"fmt"
)

type TokenType int

const (
	TEOF TokenType = iota
	TLowerWord
	TUpperWord
	TDollarWord
	TDollarDollarWord
	TSingleQuoted
	TDistinctObject
	TInteger
	TRational
	TReal
	TGlyph
	TUnknown
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:              "TEOF",
		TLowerWord:        "TLowerWord",
		TUpperWord:        "TUpperWord",
		TDollarWord:       "TDollarWord",
		TDollarDollarWord: "TDollarDollarWord",
		TSingleQuoted:     "TSingleQuoted",
		TDistinctObject:   "TDistinctObject",
		TInteger:          "TInteger",
		TRational:         "TRational",
		TReal:             "TReal",
		TGlyph:            "TGlyph",
		TUnknown:          "TUnknown",
	}[t]
}

// Glyph is a punctuation or connective token.
type Glyph int

const (
	LParen Glyph = iota
	RParen
	LBracket
	RBracket
	Comma
	Colon
	Period
	Tilde
	Bang
	Question
	Amp
	Pipe
	Equal
	NotEqual
	Implies
	RevImplies
	Equiv
	NotEquiv
	NotOr
	NotAnd
	nGlyphs
)

var glyphText = [nGlyphs]string{
	LParen:     "(",
	RParen:     ")",
	LBracket:   "[",
	RBracket:   "]",
	Comma:      ",",
	Colon:      ":",
	Period:     ".",
	Tilde:      "~",
	Bang:       "!",
	Question:   "?",
	Amp:        "&",
	Pipe:       "|",
	Equal:      "=",
	NotEqual:   "!=",
	Implies:    "=>",
	RevImplies: "<=",
	Equiv:      "<=>",
	NotEquiv:   "<~>",
	NotOr:      "~|",
	NotAnd:     "~&",
}

func (g Glyph) String() string {
	if g < 0 || g >= nGlyphs {
		return fmt.Sprintf("<glyph %d>", int(g))
	}
	return glyphText[g]
}

// longer lists the glyphs of which g is a strict prefix.  A glyph only
// matches when none of its extensions does.
var longer [nGlyphs][]Glyph

func init() {
	for g := Glyph(0); g < nGlyphs; g++ {
		for h := Glyph(0); h < nGlyphs; h++ {
			gt, ht := glyphText[g], glyphText[h]
			if len(ht) > len(gt) && ht[:len(gt)] == gt {
				longer[g] = append(longer[g], h)
			}
		}
	}
}

type Token struct {
	Type  TokenType
	Glyph Glyph
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String describes the token for error messages.
func (t *Token) String() string {
	switch t.Type {
	case TEOF:
		return "end of input"
	case TGlyph:
		return fmt.Sprintf("%q", t.Glyph.String())
	default:
		return fmt.Sprintf("%q", t.Bytes)
	}
}
