package token

// Number matches the longest integer, rational or real at i and returns
// its type (TInteger, TRational or TReal).
//
//	integer  [+-]?(0|[1-9][0-9]*)
//	rational integer/[1-9][0-9]*
//	real     integer(.[0-9]+)?([Ee][+-]?[0-9]+)?  with a fraction or exponent
func (s *Scanner) Number(i int) (TokenType, int, error) {
	j := i
	if j >= len(s.d) {
		n, err := s.end()
		return TUnknown, n, err
	}
	if c := s.d[j]; c == '+' || c == '-' {
		j++
		if j >= len(s.d) {
			n, err := s.end()
			return TUnknown, n, err
		}
	}
	if !isDigit(s.d[j]) {
		return TUnknown, 0, nil
	}
	start := j
	j, err := s.digits(j)
	if err != nil {
		return TUnknown, 0, err
	}
	if s.d[start] == '0' && j-start > 1 {
		return TUnknown, 0, NewPosErr(ErrNumberLeadingZero, s.Pos(start))
	}
	if j == len(s.d) {
		return TInteger, j - i, nil
	}
	switch s.d[j] {
	case '/':
		k := j + 1
		if k >= len(s.d) {
			if s.atEOF {
				return TInteger, j - i, nil
			}
			return TUnknown, 0, ErrIncomplete
		}
		if s.d[k] < '1' || s.d[k] > '9' {
			return TInteger, j - i, nil
		}
		k, err = s.digits(k)
		if err != nil {
			return TUnknown, 0, err
		}
		return TRational, k - i, nil
	case '.', 'e', 'E':
		return s.real(i, j)
	}
	return TInteger, j - i, nil
}

// digits returns the end of the run of decimal digits at j.  A run reaching
// the end of an open buffer is incomplete.
func (s *Scanner) digits(j int) (int, error) {
	for j < len(s.d) && isDigit(s.d[j]) {
		j++
	}
	if j == len(s.d) && !s.atEOF {
		return 0, ErrIncomplete
	}
	return j, nil
}

// real continues an integer ending at j with an optional fraction and an
// optional exponent.  A '.' not followed by a digit is not part of the
// number; it may be the terminator of the enclosing formula.
func (s *Scanner) real(i, j int) (TokenType, int, error) {
	tt := TInteger
	var err error
	if s.d[j] == '.' {
		k := j + 1
		if k >= len(s.d) {
			if s.atEOF {
				return TInteger, j - i, nil
			}
			return TUnknown, 0, ErrIncomplete
		}
		if !isDigit(s.d[k]) {
			return TInteger, j - i, nil
		}
		j, err = s.digits(k)
		if err != nil {
			return TUnknown, 0, err
		}
		tt = TReal
		if j == len(s.d) {
			return tt, j - i, nil
		}
	}
	if c := s.d[j]; c != 'e' && c != 'E' {
		return tt, j - i, nil
	}
	k := j + 1
	if k < len(s.d) && (s.d[k] == '+' || s.d[k] == '-') {
		k++
	}
	if k >= len(s.d) {
		if s.atEOF {
			return tt, j - i, nil
		}
		return TUnknown, 0, ErrIncomplete
	}
	if !isDigit(s.d[k]) {
		return tt, j - i, nil
	}
	k, err = s.digits(k)
	if err != nil {
		return TUnknown, 0, err
	}
	return TReal, k - i, nil
}
