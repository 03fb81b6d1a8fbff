package token

import (
	"fmt"
	"unicode/utf8"
)

// scanCtx is the tokenizer state threaded through every scanFunc.  cur
// is the code point at off, eof at the end of input or after a fatal
// error.
type scanCtx struct {
	src   []byte
	off   int
	line  int
	col   int
	cur   rune
	width int

	opts  *tokenOpts
	table *[256]scanFunc

	// set when a number ends directly on a suffix
	suffix *suffixState
	errs   []*Error
	fatal  *Error
}

type scanFunc func(s *scanCtx) Token

func newScanCtx(src []byte, opts *tokenOpts) *scanCtx {
	s := &scanCtx{src: src, line: 1, col: 1, opts: opts, table: &docTable}
	if opts.query {
		s.table = &queryTable
	}
	s.load()
	return s
}

func (s *scanCtx) pos() Pos {
	return Pos{Offset: s.off, Line: s.line, Column: s.col}
}

func (s *scanCtx) load() {
	if s.off >= len(s.src) {
		s.cur, s.width = eof, 0
		return
	}
	b := s.src[s.off]
	if b < utf8.RuneSelf {
		s.cur, s.width = rune(b), 1
	} else {
		r, w := utf8.DecodeRune(s.src[s.off:])
		if r == utf8.RuneError && w <= 1 {
			s.fail(NewErrorAt(ErrBadUTF8, s.pos(), "invalid utf8 byte 0x%02x", b))
			return
		}
		s.cur, s.width = r, w
	}
	if isDisallowed(s.cur) && !(s.cur == bom && s.off == 0) {
		s.fail(NewErrorAt(ErrInvalidCodePoint, s.pos(), "disallowed code point U+%04X", s.cur))
	}
}

func (s *scanCtx) fail(e *Error) {
	if s.fatal == nil {
		s.fatal = e
	}
	s.cur, s.width = eof, 0
}

func (s *scanCtx) advance() {
	if s.cur == eof {
		return
	}
	r := s.cur
	s.off += s.width
	if isNewline(r) && !(r == '\r' && s.off < len(s.src) && s.src[s.off] == '\n') {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.load()
}

// peek returns the code point n places after cur without validating
// it.
func (s *scanCtx) peek(n int) rune {
	if s.cur == eof {
		return eof
	}
	off := s.off + s.width
	for {
		if off >= len(s.src) {
			return eof
		}
		r, w := utf8.DecodeRune(s.src[off:])
		if n == 1 {
			return r
		}
		n--
		off += w
	}
}

func (s *scanCtx) errorf(kind error, p Pos, format string, args ...any) {
	s.errs = append(s.errs, &Error{Err: kind, Msg: fmt.Sprintf(format, args...), Pos: &p})
}

func (s *scanCtx) token(tt TokenType, start Pos, value any) Token {
	tok := Token{
		Type:  tt,
		Text:  string(s.src[start.Offset:s.off]),
		Start: start,
		End:   s.pos(),
		Value: value,
		Errs:  s.errs,
	}
	s.errs = nil
	return tok
}

// skipIdent advances over identifier characters.
func (s *scanCtx) skipIdent() {
	for isIdentChar(s.cur) {
		if s.opts.query && isQueryStop(s.cur, s.peek(1)) {
			return
		}
		s.advance()
	}
}
