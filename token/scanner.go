package token

import (
	"bytes"
)

// Scanner recognizes tokens in d.  When atEOF is false, d may be a prefix
// of the input and recognizers return ErrIncomplete rather than guess at
// what follows.  A Scanner holds no mutable state besides its lazily
// built PosDoc.
type Scanner struct {
	d     []byte
	atEOF bool
	doc   *PosDoc
}

func NewScanner(d []byte, atEOF bool) *Scanner {
	return &Scanner{d: d, atEOF: atEOF, doc: NewPosDoc(d, 0, 0)}
}

// NewScannerAt is NewScanner for a buffer which starts at stream offset base
// after line newlines.
func NewScannerAt(d []byte, atEOF bool, base, line int) *Scanner {
	return &Scanner{d: d, atEOF: atEOF, doc: NewPosDoc(d, base, line)}
}

func (s *Scanner) Bytes() []byte { return s.d }
func (s *Scanner) Len() int      { return len(s.d) }
func (s *Scanner) AtEOF() bool   { return s.atEOF }
func (s *Scanner) Pos(i int) *Pos {
	return s.doc.Pos(i)
}

// end reports how running out of bytes at i is treated: no match at EOF,
// incomplete otherwise.
func (s *Scanner) end() (int, error) {
	if s.atEOF {
		return 0, nil
	}
	return 0, ErrIncomplete
}

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }
func isAlnum(c byte) bool { return isLower(c) || isUpper(c) || isDigit(c) || c == '_' }

func (s *Scanner) alnums(i int) (int, error) {
	j := i
	for j < len(s.d) && isAlnum(s.d[j]) {
		j++
	}
	if j == len(s.d) && !s.atEOF {
		return 0, ErrIncomplete
	}
	return j - i, nil
}

func (s *Scanner) word(i int, first func(byte) bool) (int, error) {
	if i >= len(s.d) {
		return s.end()
	}
	if !first(s.d[i]) {
		return 0, nil
	}
	n, err := s.alnums(i + 1)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// LowerWord matches [a-z][A-Za-z0-9_]*.
func (s *Scanner) LowerWord(i int) (int, error) {
	return s.word(i, isLower)
}

// UpperWord matches [A-Z][A-Za-z0-9_]*.
func (s *Scanner) UpperWord(i int) (int, error) {
	return s.word(i, isUpper)
}

// DollarWord matches $ followed by a lower word, but not $$.
func (s *Scanner) DollarWord(i int) (int, error) {
	return s.prefixed(i, 1)
}

// DollarDollarWord matches $$ followed by a lower word.
func (s *Scanner) DollarDollarWord(i int) (int, error) {
	return s.prefixed(i, 2)
}

func (s *Scanner) prefixed(i, dollars int) (int, error) {
	for k := 0; k < dollars; k++ {
		if i+k >= len(s.d) {
			return s.end()
		}
		if s.d[i+k] != '$' {
			return 0, nil
		}
	}
	n, err := s.LowerWord(i + dollars)
	if err != nil || n == 0 {
		return 0, err
	}
	return n + dollars, nil
}

// SingleQuoted matches a non-empty quoted atomic word, 'like this'.
func (s *Scanner) SingleQuoted(i int) (int, error) {
	n, err := s.quoted(i, '\'')
	if err != nil || n == 0 {
		return n, err
	}
	if n == 2 {
		return 0, NewPosErr(ErrEmptyQuoted, s.Pos(i))
	}
	return n, nil
}

// DistinctObject matches a double quoted distinct object, "like this".
func (s *Scanner) DistinctObject(i int) (int, error) {
	return s.quoted(i, '"')
}

// quoted scans printable ASCII up to the closing quote q.  Inside, \ may
// only escape \ and q.
func (s *Scanner) quoted(i int, q byte) (int, error) {
	if i >= len(s.d) {
		return s.end()
	}
	if s.d[i] != q {
		return 0, nil
	}
	j := i + 1
loop:
	for j < len(s.d) {
		c := s.d[j]
		switch {
		case c == q:
			return j + 1 - i, nil
		case c == '\\':
			if j+1 >= len(s.d) {
				break loop
			}
			if e := s.d[j+1]; e != '\\' && e != q {
				return 0, NewPosErr(ErrBadEscape, s.Pos(j))
			}
			j += 2
		case c < ' ' || c > '~':
			return 0, NewPosErr(ErrBadChar, s.Pos(j))
		default:
			j++
		}
	}
	if s.atEOF {
		return 0, NewPosErr(ErrUnterminated, s.Pos(i))
	}
	return 0, ErrIncomplete
}

// Ignored returns the length of the run of whitespace and comments at i.
// Running into the end of the buffer is incomplete unless atEOF, since
// more ignorable bytes, or a connective, may follow.
func (s *Scanner) Ignored(i int) (int, error) {
	j := i
	for {
		if j >= len(s.d) {
			if s.atEOF {
				return j - i, nil
			}
			return 0, ErrIncomplete
		}
		switch s.d[j] {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			j++
		case '%':
			k := bytes.IndexByte(s.d[j:], '\n')
			if k == -1 {
				j = len(s.d)
				continue
			}
			j += k + 1
		case '/':
			if j+1 >= len(s.d) {
				if s.atEOF {
					return j - i, nil
				}
				return 0, ErrIncomplete
			}
			if s.d[j+1] != '*' {
				return j - i, nil
			}
			k := bytes.Index(s.d[j+2:], []byte("*/"))
			if k == -1 {
				if s.atEOF {
					return 0, NewPosErr(ErrUnterminated, s.Pos(j))
				}
				return 0, ErrIncomplete
			}
			j += k + 4
		default:
			return j - i, nil
		}
	}
}

// Glyph matches the text of g at i, provided no longer glyph extending g
// matches there: "=" does not match the start of "=>".
func (s *Scanner) Glyph(i int, g Glyph) (int, error) {
	text := glyphText[g]
	for k := 0; k < len(text); k++ {
		if i+k >= len(s.d) {
			return s.end()
		}
		if s.d[i+k] != text[k] {
			return 0, nil
		}
	}
	for _, h := range longer[g] {
		n, err := s.Glyph(i, h)
		if err != nil {
			return 0, err
		}
		if n != 0 {
			return 0, nil
		}
	}
	return len(text), nil
}

// FirstGlyph returns the first of gs matching at i.
func (s *Scanner) FirstGlyph(i int, gs ...Glyph) (Glyph, int, error) {
	for _, g := range gs {
		n, err := s.Glyph(i, g)
		if err != nil {
			return 0, 0, err
		}
		if n != 0 {
			return g, n, nil
		}
	}
	return 0, 0, nil
}
