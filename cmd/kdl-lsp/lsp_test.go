package main

import (
	"context"
	"strings"
	"testing"

	"github.com/signadot/go-kdl/token"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func TestErrorRange(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     *token.Error
		want    protocol.Range
	}{
		{
			name:    "position",
			content: "a\nbcd\n",
			err:     &token.Error{Msg: "x", Pos: &token.Pos{Offset: 4, Line: 2, Column: 3}},
			want: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 2},
				End:   protocol.Position{Line: 1, Character: 3},
			},
		},
		{
			name:    "token",
			content: "node abc",
			err: &token.Error{Msg: "x", Token: &token.Token{
				Type:  token.TIdentifier,
				Text:  "abc",
				Start: token.Pos{Offset: 5, Line: 1, Column: 6},
				End:   token.Pos{Offset: 8, Line: 1, Column: 9},
			}},
			want: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 5},
				End:   protocol.Position{Line: 0, Character: 8},
			},
		},
		{
			name:    "kdl-only newline",
			content: "a\u2028b c",
			err:     &token.Error{Msg: "x", Pos: &token.Pos{Offset: 4, Line: 2, Column: 1}},
			want: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 2},
				End:   protocol.Position{Line: 0, Character: 3},
			},
		},
		{
			name:    "eof",
			content: "a\nbé",
			err:     &token.Error{Msg: "x"},
			want: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 2},
				End:   protocol.Position{Line: 1, Character: 2},
			},
		},
	}
	for _, tc := range tests {
		got := errorRange(tc.content, tc.err)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tc.name, diff)
		}
	}
}

func TestLineIndex(t *testing.T) {
	text := "a\u2028b\rc\r\nd\ve"
	idx := newLineIndex(text)
	tests := []struct {
		offset int
		pos    protocol.Position
	}{
		{0, protocol.Position{Line: 0, Character: 0}},
		{4, protocol.Position{Line: 0, Character: 2}},
		{6, protocol.Position{Line: 1, Character: 0}},
		{9, protocol.Position{Line: 2, Character: 0}},
		{11, protocol.Position{Line: 2, Character: 2}},
		{12, protocol.Position{Line: 2, Character: 3}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.pos, idx.position(tc.offset)); diff != "" {
			t.Errorf("position(%d): (-want +got)\n%s", tc.offset, diff)
		}
		if got := idx.offset(tc.pos); got != tc.offset {
			t.Errorf("offset(%v): got %d want %d", tc.pos, got, tc.offset)
		}
	}
	if got := idx.line(0); got != "a\u2028b" {
		t.Errorf("line 0: got %q", got)
	}
	if got := idx.offset(protocol.Position{Line: 1, Character: 9}); got != 7 {
		t.Errorf("clamped offset: got %d", got)
	}
}

func TestDiagnostics(t *testing.T) {
	d := &document{content: "node {\n"}
	d.parse()
	if len(d.errs) == 0 {
		t.Fatal("expected errors")
	}
	diags := diagnostics(d.content, d.errs)
	if len(diags) != len(d.errs) {
		t.Fatalf("got %d diagnostics for %d errors", len(diags), len(d.errs))
	}
	for _, diag := range diags {
		if diag.Severity != protocol.DiagnosticSeverityError || diag.Message == "" {
			t.Errorf("bad diagnostic %+v", diag)
		}
	}
}

func TestSemanticTokens(t *testing.T) {
	got := semanticTokens("(t)node key=1 \"s\" // c\n")
	def := []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition}
	want := []semToken{
		{line: 0, character: 1, length: 1, tokenType: protocol.SemanticTokenType},
		{line: 0, character: 3, length: 4, tokenType: protocol.SemanticTokenStruct, modifiers: def},
		{line: 0, character: 8, length: 3, tokenType: protocol.SemanticTokenProperty},
		{line: 0, character: 11, length: 1, tokenType: protocol.SemanticTokenOperator},
		{line: 0, character: 12, length: 1, tokenType: protocol.SemanticTokenNumber},
		{line: 0, character: 14, length: 3, tokenType: protocol.SemanticTokenString},
		{line: 0, character: 18, length: 4, tokenType: protocol.SemanticTokenComment},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(semToken{})); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestSemanticTokensMultiline(t *testing.T) {
	got := semanticTokens("/* a\nbc */ n\n")
	def := []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition}
	want := []semToken{
		{line: 0, character: 0, length: 4, tokenType: protocol.SemanticTokenComment},
		{line: 1, character: 0, length: 5, tokenType: protocol.SemanticTokenComment},
		{line: 1, character: 6, length: 1, tokenType: protocol.SemanticTokenStruct, modifiers: def},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(semToken{})); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestEncodeSemanticTokens(t *testing.T) {
	got := encodeSemanticTokens([]semToken{
		{line: 1, character: 2, length: 3, tokenType: protocol.SemanticTokenString},
		{line: 0, character: 1, length: 1, tokenType: protocol.SemanticTokenType},
		{line: 0, character: 3, length: 4, tokenType: protocol.SemanticTokenStruct,
			modifiers: []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition}},
	})
	want := []uint32{
		0, 1, 1, 6, 0,
		0, 2, 4, 7, 1,
		1, 2, 3, 2, 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestHover(t *testing.T) {
	s := newServer()
	uri := protocol.DocumentURI("file:///hover.kdl")
	content := "parent {\n\tchild 1 key=\"v\"\n}\n"
	if err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: content},
	}); err != nil {
		t.Fatal(err)
	}
	h, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 1, Character: 2},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h == nil {
		t.Fatal("no hover")
	}
	for _, want := range []string{"**node** `child`", "`1`", "`key=\"v\"`"} {
		if !strings.Contains(h.Contents.Value, want) {
			t.Errorf("hover %q does not contain %q", h.Contents.Value, want)
		}
	}
}

func TestFormatting(t *testing.T) {
	s := newServer()
	ctx := context.Background()
	tests := []struct {
		in   string
		want []protocol.TextEdit
	}{
		{
			in: "a   1 // c\n",
			want: []protocol.TextEdit{{
				Range: protocol.Range{
					End: protocol.Position{Line: 1, Character: 0},
				},
				NewText: "a 1 // c\n",
			}},
		},
		{in: "a 1\n"},
		{in: "a {\n"},
	}
	for i, tc := range tests {
		uri := protocol.DocumentURI("file:///fmt.kdl")
		if err := s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
			TextDocument: protocol.TextDocumentItem{URI: uri, Text: tc.in},
		}); err != nil {
			t.Fatal(err)
		}
		got, err := s.Formatting(ctx, &protocol.DocumentFormattingParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%d: (-want +got)\n%s", i, diff)
		}
	}
}

func TestCompletions(t *testing.T) {
	d := &document{content: "server host=\"a\" port=1\nclient {\n\tserver tls=#true\n}\n"}
	d.parse()
	if d.doc == nil {
		t.Fatalf("parse: %v", d.errs)
	}
	labels := func(prefix string) []string {
		var res []string
		for _, item := range completions(d.doc, prefix) {
			res = append(res, item.Label)
		}
		return res
	}
	tests := []struct {
		prefix string
		want   []string
	}{
		{"  s", []string{"client", "server"}},
		{"a { ", []string{"client", "server"}},
		{"server ", []string{"host", "port", "tls"}},
		{"server h", []string{"host", "port", "tls"}},
		{"client ", nil},
		{"a #t", []string{"#true", "#false", "#null", "#inf", "#-inf", "#nan"}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, labels(tc.prefix)); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", tc.prefix, diff)
		}
	}
}

func TestLinePrefix(t *testing.T) {
	content := "one\r\ntwé three\n"
	if got := linePrefix(content, 1, 3); got != "twé" {
		t.Errorf("got %q", got)
	}
	if got := linePrefix(content, 0, 10); got != "one" {
		t.Errorf("got %q", got)
	}
	if got := linePrefix(content, 5, 0); got != "" {
		t.Errorf("got %q", got)
	}
}
