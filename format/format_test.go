package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		g, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
	}
	if f, err := ParseFormat("c"); err != nil || !f.IsCNF() {
		t.Errorf("short name: %s %v", f, err)
	}
	if _, err := ParseFormat("thf"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestUnmarshalText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("cnf")); err != nil {
		t.Fatal(err)
	}
	if f != CNFFormat {
		t.Errorf("got %s", f)
	}
	if _, err := Format(7).MarshalText(); err == nil {
		t.Errorf("expected error for bad format")
	}
}
