package token

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

func scanQuoted(s *scanCtx) Token {
	start := s.pos()
	if s.peek(1) == '"' && s.peek(2) == '"' {
		return scanMultiQuoted(s, start)
	}
	s.advance()
	bodyStart := s.off
	for {
		switch {
		case s.cur == eof:
			s.fail(NewErrorAt(ErrUnterminated, start, "unterminated string"))
			return s.token(TQuotedString, start, "")
		case s.cur == '"':
			body := string(s.src[bodyStart:s.off])
			s.advance()
			return s.token(TQuotedString, start, s.unescape(body, start))
		case s.cur == '\\':
			s.advance()
			if isSpace(s.cur) || isNewline(s.cur) {
				for isSpace(s.cur) || isNewline(s.cur) {
					s.advance()
				}
				continue
			}
			s.advance()
		case isNewline(s.cur):
			s.errorf(ErrNewlineInString, s.pos(), `newline in single-line string, use """ for multi-line strings`)
			s.advance()
		default:
			s.advance()
		}
	}
}

func scanMultiQuoted(s *scanCtx, start Pos) Token {
	s.advance()
	s.advance()
	s.advance()
	s.openMultiline(start)
	bodyPos := s.pos()
	bodyStart := bodyPos.Offset
	for {
		switch {
		case s.cur == eof:
			s.fail(NewErrorAt(ErrUnterminated, start, "unterminated multi-line string"))
			return s.token(TMultiLineString, start, "")
		case s.cur == '\\':
			s.advance()
			s.advance()
		case s.cur == '"' && s.peek(1) == '"' && s.peek(2) == '"':
			body := string(s.src[bodyStart:s.off])
			s.advance()
			s.advance()
			s.advance()
			return s.token(TMultiLineString, start, s.unescape(s.dedent(body, bodyPos), start))
		default:
			s.advance()
		}
	}
}

func scanRaw(s *scanCtx, start Pos, hashes int) Token {
	if s.peek(1) == '"' && s.peek(2) == '"' {
		return scanMultiRaw(s, start, hashes)
	}
	s.advance()
	bodyStart := s.off
	for {
		switch {
		case s.cur == eof:
			s.fail(NewErrorAt(ErrUnterminated, start, "unterminated raw string"))
			return s.token(TRawString, start, "")
		case s.cur == '"' && s.closesRaw(1, hashes):
			body := string(s.src[bodyStart:s.off])
			for range hashes + 1 {
				s.advance()
			}
			return s.token(TRawString, start, body)
		case isNewline(s.cur):
			s.errorf(ErrNewlineInString, s.pos(), `newline in single-line raw string, use """ for multi-line strings`)
			s.advance()
		default:
			s.advance()
		}
	}
}

func scanMultiRaw(s *scanCtx, start Pos, hashes int) Token {
	s.advance()
	s.advance()
	s.advance()
	s.openMultiline(start)
	bodyPos := s.pos()
	bodyStart := bodyPos.Offset
	for {
		switch {
		case s.cur == eof:
			s.fail(NewErrorAt(ErrUnterminated, start, "unterminated multi-line raw string"))
			return s.token(TMultiLineRawString, start, "")
		case s.cur == '"' && s.peek(1) == '"' && s.peek(2) == '"' && s.closesRaw(3, hashes):
			body := string(s.src[bodyStart:s.off])
			for range hashes + 3 {
				s.advance()
			}
			return s.token(TMultiLineRawString, start, s.dedent(body, bodyPos))
		default:
			s.advance()
		}
	}
}

// closesRaw reports whether the n code points after the first skip
// code points (counting cur) are all '#'.
func (s *scanCtx) closesRaw(skip, n int) bool {
	for i := range n {
		if s.peek(skip+i) != '#' {
			return false
		}
	}
	return true
}

// openMultiline consumes the newline that must follow an opening """.
func (s *scanCtx) openMultiline(start Pos) {
	if !isNewline(s.cur) {
		s.errorf(ErrMultilineString, start, `multi-line string must start with a newline after """`)
		return
	}
	if s.cur == '\r' && s.peek(1) == '\n' {
		s.advance()
	}
	s.advance()
}

// dedent removes the whitespace prefix of the closing line from every
// line of a multi-line string body starting at pos.  Whitespace-only
// lines become empty and newlines are normalized to '\n'.
func (s *scanCtx) dedent(body string, pos Pos) string {
	lines, starts := splitLines(body)
	linePos := func(i int) Pos {
		if i == 0 {
			return pos
		}
		return Pos{Offset: pos.Offset + starts[i], Line: pos.Line + i, Column: 1}
	}
	n := len(lines) - 1
	last := lines[n]
	if strings.TrimFunc(last, isSpace) != "" {
		s.errorf(ErrMultilineString, linePos(n), `closing """ of a multi-line string must be on its own line`)
		return strings.Join(lines, "\n")
	}
	prefix := last
	lines = lines[:n]
	for i, ln := range lines {
		switch {
		case strings.TrimFunc(ln, isSpace) == "":
			lines[i] = ""
		case strings.HasPrefix(ln, prefix):
			lines[i] = ln[len(prefix):]
		default:
			s.errorf(ErrMultilineString, linePos(i), "line %d of multi-line string does not start with the indentation of the closing line", i+1)
		}
	}
	return strings.Join(lines, "\n")
}

// splitLines splits body at newlines, returning the lines and the byte
// offset of each line in body.
func splitLines(body string) ([]string, []int) {
	var res []string
	starts := []int{0}
	lineStart := 0
	for i := 0; i < len(body); {
		r, w := utf8.DecodeRuneInString(body[i:])
		if !isNewline(r) {
			i += w
			continue
		}
		res = append(res, body[lineStart:i])
		if r == '\r' && i+1 < len(body) && body[i+1] == '\n' {
			w++
		}
		i += w
		lineStart = i
		starts = append(starts, lineStart)
	}
	return append(res, body[lineStart:]), starts
}

// unescape processes the escapes of a quoted string body.
func (s *scanCtx) unescape(body string, at Pos) string {
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(body) {
			s.errorf(ErrBadEscape, at, "incomplete escape at end of string")
			break
		}
		r, w := utf8.DecodeRuneInString(body[i:])
		i += w
		switch r {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 's':
			b.WriteByte(' ')
		case 'u':
			u, n := s.unicodeEscape(body[i:], at)
			if n > 0 {
				b.WriteRune(u)
			}
			i += n
		default:
			if isSpace(r) || isNewline(r) {
				for i < len(body) {
					r, w := utf8.DecodeRuneInString(body[i:])
					if !isSpace(r) && !isNewline(r) {
						break
					}
					i += w
				}
				continue
			}
			s.errorf(ErrBadEscape, at, "invalid escape \\%c", r)
		}
	}
	return b.String()
}

// unicodeEscape decodes the {hex} part of a \u escape, returning the
// code point and the number of bytes consumed.
func (s *scanCtx) unicodeEscape(d string, at Pos) (rune, int) {
	if len(d) == 0 || d[0] != '{' {
		s.errorf(ErrBadUnicode, at, `\u escape must be of the form \u{1-6 hex digits}`)
		return 0, 0
	}
	end := strings.IndexByte(d, '}')
	if end < 0 {
		s.errorf(ErrBadUnicode, at, `unterminated \u{ escape`)
		return 0, 0
	}
	hex := d[1:end]
	if len(hex) == 0 || len(hex) > 6 {
		s.errorf(ErrBadUnicode, at, `\u escape must have 1 to 6 hex digits, got %q`, hex)
		return 0, end + 1
	}
	for _, c := range hex {
		if !isHexDigit(c) {
			s.errorf(ErrBadUnicode, at, `invalid hex digit %q in \u escape`, c)
			return 0, end + 1
		}
	}
	v, _ := strconv.ParseUint(hex, 16, 32)
	if v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		s.errorf(ErrBadUnicode, at, `\u{%s} is not a unicode scalar value`, hex)
		return 0, end + 1
	}
	return rune(v), end + 1
}
