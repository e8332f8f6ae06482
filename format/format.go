package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	FOFFormat Format = iota
	CNFFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"f":   FOFFormat,
		"fof": FOFFormat,
		"c":   CNFFormat,
		"cnf": CNFFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case FOFFormat:
		return []byte("fof"), nil
	case CNFFormat:
		return []byte("cnf"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsFOF() bool { return f == FOFFormat }
func (f Format) IsCNF() bool { return f == CNFFormat }

// Suffix returns the conventional TPTP file extension for problems written
// in this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case FOFFormat, CNFFormat:
		return ".p"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{FOFFormat, CNFFormat}
}
