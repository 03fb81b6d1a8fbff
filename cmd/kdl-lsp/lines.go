package main

import (
	"sort"
	"strings"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// lineIndex maps byte offsets of a text to LSP positions.  Only '\n',
// "\r\n" and a lone '\r' end a line, so the other KDL newlines stay
// inside their line.  Characters are counted in code points.
type lineIndex struct {
	text   string
	starts []int
}

func newLineIndex(text string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{text: text, starts: starts}
}

func (x *lineIndex) position(offset int) protocol.Position {
	offset = min(max(offset, 0), len(x.text))
	line := sort.SearchInts(x.starts, offset+1) - 1
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf8.RuneCountInString(x.text[x.starts[line]:offset])),
	}
}

// line returns the text of line n without its line break.
func (x *lineIndex) line(n int) string {
	if n < 0 || n >= len(x.starts) {
		return ""
	}
	end := len(x.text)
	if n+1 < len(x.starts) {
		end = x.starts[n+1]
	}
	return strings.TrimSuffix(strings.TrimSuffix(x.text[x.starts[n]:end], "\n"), "\r")
}

// offset returns the byte offset of p.  A character past the end of
// its line is clamped to the line end, a line past the end of the text
// to the end of the text.
func (x *lineIndex) offset(p protocol.Position) int {
	n := int(p.Line)
	if n >= len(x.starts) {
		return len(x.text)
	}
	line := x.line(n)
	off := 0
	for i := uint32(0); i < p.Character && off < len(line); i++ {
		_, w := utf8.DecodeRuneInString(line[off:])
		off += w
	}
	return x.starts[n] + off
}

// lineEnd returns the offset just past the line break of the line
// holding offset, or the end of the text.
func (x *lineIndex) lineEnd(offset int) int {
	line := int(x.position(offset).Line)
	if line+1 < len(x.starts) {
		return x.starts[line+1]
	}
	return len(x.text)
}
