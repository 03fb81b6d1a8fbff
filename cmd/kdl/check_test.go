package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/go-kdl/parse"
	"github.com/signadot/go-kdl/token"
)

func TestExcerpt(t *testing.T) {
	src := []byte("first\n\tsecond line\nthird")
	tests := []struct {
		pos         token.Pos
		line, caret string
	}{
		{token.Pos{Offset: 0, Line: 1, Column: 1}, "first", "^"},
		{token.Pos{Offset: 8, Line: 2, Column: 3}, "\tsecond line", "\t ^"},
		{token.Pos{Offset: 24, Line: 3, Column: 5}, "third", "    ^"},
	}
	for _, tc := range tests {
		line, caret := excerpt(src, tc.pos)
		if line != tc.line || caret != tc.caret {
			t.Errorf("%s: got %q %q want %q %q", tc.pos, line, caret, tc.line, tc.caret)
		}
	}
}

func TestReport(t *testing.T) {
	in := input{name: "x.kdl", data: []byte("node 1x\nother \"open\n")}
	_, err := parse.ParseDocument(in.data)
	if err == nil {
		t.Fatal("expected errors")
	}
	buf := &bytes.Buffer{}
	rep := &reporter{w: buf, excerpts: true}
	for _, e := range token.Errors(err) {
		rep.report(in, e)
	}
	out := buf.String()
	for _, want := range []string{"x.kdl:1:", "error: ", "\tnode 1x\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}
