package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		for _, name := range []string{f.String(), f.String()[:1]} {
			got, err := ParseFormat(name)
			if err != nil {
				t.Fatal(err)
			}
			if got != f {
				t.Errorf("%q: got %s want %s", name, got, f)
			}
		}
		if f.Suffix() != "."+f.String() {
			t.Errorf("suffix of %s: %q", f, f.Suffix())
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v want ErrBadFormat", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil || !f.IsYAML() {
		t.Errorf("unmarshal: got %s, %v", f, err)
	}
	if _, err := Format(7).MarshalText(); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
