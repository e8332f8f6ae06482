package token

// Next classifies the token starting at i, without skipping ignorable
// spans.  It is used to describe what was found where a production
// failed, and by tools which want a flat token view of a formula.
func (s *Scanner) Next(i int) (*Token, error) {
	if i >= len(s.d) {
		if !s.atEOF {
			return nil, ErrIncomplete
		}
		return &Token{Type: TEOF, Pos: s.Pos(i)}, nil
	}
	tok := func(tt TokenType, n int) *Token {
		return &Token{Type: tt, Pos: s.Pos(i), Bytes: s.d[i : i+n]}
	}
	type rec struct {
		tt TokenType
		f  func(int) (int, error)
	}
	for _, r := range [...]rec{
		{TLowerWord, s.LowerWord},
		{TUpperWord, s.UpperWord},
		{TDollarDollarWord, s.DollarDollarWord},
		{TDollarWord, s.DollarWord},
		{TSingleQuoted, s.SingleQuoted},
		{TDistinctObject, s.DistinctObject},
	} {
		n, err := r.f(i)
		if err != nil {
			return nil, err
		}
		if n != 0 {
			return tok(r.tt, n), nil
		}
	}
	tt, n, err := s.Number(i)
	if err != nil {
		return nil, err
	}
	if n != 0 {
		return tok(tt, n), nil
	}
	for g := Glyph(0); g < nGlyphs; g++ {
		n, err := s.Glyph(i, g)
		if err != nil {
			return nil, err
		}
		if n != 0 {
			t := tok(TGlyph, n)
			t.Glyph = g
			return t, nil
		}
	}
	return tok(TUnknown, 1), nil
}

// Tokenize splits d into tokens, skipping ignorable spans.
func Tokenize(d []byte) ([]Token, error) {
	s := NewScanner(d, true)
	var res []Token
	i := 0
	for {
		n, err := s.Ignored(i)
		if err != nil {
			return nil, err
		}
		i += n
		t, err := s.Next(i)
		if err != nil {
			return nil, err
		}
		if t.Type == TEOF {
			return res, nil
		}
		if t.Type == TUnknown {
			return nil, UnexpectedErr(t.String(), t.Pos)
		}
		res = append(res, *t)
		i += len(t.Bytes)
	}
}
