package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeTerminator ends each formula with '.', as in a stream read by
// parse.Decoder.
func EncodeTerminator(v bool) EncodeOption {
	return func(es *EncState) { es.terminator = v }
}

// EncodeNewline controls the newline written after the formula, on by
// default.
func EncodeNewline(v bool) EncodeOption {
	return func(es *EncState) { es.newline = v }
}
