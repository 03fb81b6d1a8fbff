package token

import (
	"errors"
	"testing"
)

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"node", true},
		{"foo-bar", true},
		{"-", true},
		{"+x", true},
		{".x", true},
		{"ünïcode", true},
		{"", false},
		{"1abc", false},
		{"-1", false},
		{"+.5", false},
		{".5", false},
		{"true", false},
		{"-inf", false},
		{"nan", false},
		{"a b", false},
		{"a=b", false},
		{"a\"b", false},
		{"a#b", false},
		{"(x)", false},
		{"a\nb", false},
	}
	for _, tc := range tests {
		if got := IsIdentifier(tc.in); got != tc.want {
			t.Errorf("IsIdentifier(%q): got %t want %t", tc.in, got, tc.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\"b", `"a\"b"`},
		{"a\\b", `"a\\b"`},
		{"a\nb\tc\r", `"a\nb\tc\r"`},
		{"\b\f", `"\b\f"`},
		{"\x00\u2028", `"\u{0}\u{2028}"`},
		{"ünï", `"ünï"`},
	}
	for _, tc := range tests {
		if got := Quote(tc.in); got != tc.out {
			t.Errorf("Quote(%q): got %q want %q", tc.in, got, tc.out)
		}
		toks, err := Tokenize([]byte(Quote(tc.in)))
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if toks[0].Value != tc.in || len(toks[0].Errs) != 0 {
			t.Errorf("reading back %q: got %q %v", tc.in, toks[0].Value, toks[0].Errs)
		}
	}
}

func TestJoin(t *testing.T) {
	if Join(nil) != nil {
		t.Errorf("Join(nil) should be nil")
	}
	p := Pos{Offset: 4, Line: 1, Column: 5}
	one := NewErrorAt(ErrKeyword, p, "unknown keyword #x")
	if got := Join([]*Error{one}); got != one {
		t.Errorf("Join of one error should return it, got %v", got)
	}
	if got, want := one.Error(), "unknown keyword #x at 1:5"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	two := EOFError(ErrUnterminated, "unterminated children block")
	if got, want := two.Error(), "unterminated children block at end of input"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	err := Join([]*Error{one, two})
	if !errors.Is(err, ErrMultiple) || !errors.Is(err, ErrKeyword) || !errors.Is(err, ErrUnterminated) {
		t.Errorf("aggregate does not wrap its members: %v", err)
	}
	if got := Errors(err); len(got) != 2 {
		t.Errorf("got %d errors want 2", len(got))
	}
	nested := Join([]*Error{err.(*Error), NewErrorAt(ErrNumber, p, "bad number")})
	if got := Errors(nested); len(got) != 3 {
		t.Errorf("nested aggregate: got %d errors want 3", len(got))
	}
}

func TestKeywordSuggestion(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"True", "true", true},
		{"NULL", "null", true},
		{"ture", "true", true},
		{"flase", "false", true},
		{"nul", "null", true},
		{"Inf", "inf", true},
		{"in", "inf", true},
		{"whatever", "", false},
	}
	for _, tc := range tests {
		got, ok := suggestKeyword(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("suggestKeyword(%q): got %q %t want %q %t", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
