package token

var docTable, queryTable [256]scanFunc

func init() {
	docTable = buildTable()
	queryTable = buildTable()
	queryTable['!'] = scanOperator('=', TNotEquals, TInvalid)
	queryTable['^'] = scanOperator('=', TStartsWith, TInvalid)
	queryTable['$'] = scanOperator('=', TEndsWith, TInvalid)
	queryTable['*'] = scanOperator('=', TContains, TInvalid)
	queryTable['|'] = scanOperator('|', TOr, TInvalid)
	queryTable['>'] = scanOperator('=', TGreaterEquals, TGreater)
	queryTable['<'] = scanOperator('=', TLessEquals, TLess)
	queryTable['['] = scanSingle(TOpenSquare)
	queryTable[']'] = scanSingle(TCloseSquare)
}

func buildTable() [256]scanFunc {
	var t [256]scanFunc
	for i := range t {
		r := rune(i)
		switch {
		case isNewline(r):
			t[i] = scanNewline
		case isSpace(r):
			t[i] = scanSpace
		case isDigit(r):
			t[i] = scanNumber
		default:
			t[i] = scanIdentifier
		}
	}
	t['+'] = scanSigned
	t['-'] = scanSigned
	t['.'] = scanDot
	t['"'] = scanQuoted
	t['#'] = scanHash
	t['/'] = scanSlash
	t['\\'] = scanSingle(TEscLine)
	t['('] = scanSingle(TOpenParen)
	t[')'] = scanSingle(TCloseParen)
	t['{'] = scanSingle(TOpenBrace)
	t['}'] = scanSingle(TCloseBrace)
	t[';'] = scanSingle(TSemicolon)
	t['='] = scanSingle(TEquals)
	t['['] = scanUnexpected
	t[']'] = scanUnexpected
	return t
}

// dispatch picks the scanFunc for code points outside the table.
func dispatch(s *scanCtx) scanFunc {
	if s.cur < 256 {
		return s.table[s.cur]
	}
	switch {
	case s.cur == bom:
		return scanBOM
	case isNewline(s.cur):
		return scanNewline
	case isSpace(s.cur):
		return scanSpace
	}
	return scanIdentifier
}

func scanSingle(tt TokenType) scanFunc {
	return func(s *scanCtx) Token {
		start := s.pos()
		s.advance()
		return s.token(tt, start, nil)
	}
}

// scanOperator scans a query operator made of cur followed by second,
// falling back to single when second is absent.  A TInvalid fallback
// scans an identifier instead.
func scanOperator(second rune, tt, single TokenType) scanFunc {
	return func(s *scanCtx) Token {
		if s.peek(1) == second {
			start := s.pos()
			s.advance()
			s.advance()
			return s.token(tt, start, nil)
		}
		if single == TInvalid {
			return scanIdentifier(s)
		}
		start := s.pos()
		s.advance()
		return s.token(single, start, nil)
	}
}

func scanUnexpected(s *scanCtx) Token {
	start := s.pos()
	r := s.cur
	s.advance()
	s.errorf(ErrUnexpected, start, "unexpected character %q", r)
	return s.token(TInvalid, start, nil)
}

func scanBOM(s *scanCtx) Token {
	start := s.pos()
	s.advance()
	return s.token(TWhitespace, start, nil)
}

func scanNewline(s *scanCtx) Token {
	start := s.pos()
	if s.cur == '\r' && s.peek(1) == '\n' {
		s.advance()
	}
	s.advance()
	return s.token(TNewline, start, nil)
}

func scanSpace(s *scanCtx) Token {
	start := s.pos()
	for isSpace(s.cur) {
		s.advance()
	}
	return s.token(TWhitespace, start, nil)
}

func scanSlash(s *scanCtx) Token {
	start := s.pos()
	switch s.peek(1) {
	case '/':
		for s.cur != eof && !isNewline(s.cur) {
			s.advance()
		}
		return s.token(TSingleLineComment, start, nil)
	case '*':
		s.advance()
		s.advance()
		depth := 1
		for depth > 0 {
			switch {
			case s.cur == eof:
				s.fail(NewErrorAt(ErrUnterminated, start, "unterminated multi-line comment"))
				return s.token(TMultiLineComment, start, nil)
			case s.cur == '/' && s.peek(1) == '*':
				s.advance()
				depth++
			case s.cur == '*' && s.peek(1) == '/':
				s.advance()
				depth--
			}
			s.advance()
		}
		return s.token(TMultiLineComment, start, nil)
	case '-':
		s.advance()
		s.advance()
		return s.token(TSlashdash, start, nil)
	}
	return scanUnexpected(s)
}

func scanIdentifier(s *scanCtx) Token {
	start := s.pos()
	s.skipIdent()
	if s.off == start.Offset {
		// a query stop character that does not start an operator
		return scanUnexpected(s)
	}
	text := string(s.src[start.Offset:s.off])
	if _, ok := keywords[text]; ok {
		s.errorf(ErrKeyword, start, "bare %s is not allowed, use #%s", text, text)
	}
	return s.token(TIdentifier, start, text)
}

func scanSigned(s *scanCtx) Token {
	next := s.peek(1)
	if isDigit(next) {
		return scanNumber(s)
	}
	if next == '.' && isDigit(s.peek(2)) {
		return scanAmbiguous(s)
	}
	return scanIdentifier(s)
}

func scanDot(s *scanCtx) Token {
	if isDigit(s.peek(1)) {
		return scanAmbiguous(s)
	}
	return scanIdentifier(s)
}

func scanAmbiguous(s *scanCtx) Token {
	start := s.pos()
	s.skipIdent()
	text := string(s.src[start.Offset:s.off])
	s.errorf(ErrAmbiguous, start, "identifier %s looks like a number, quote it or add a leading 0", text)
	return s.token(TIdentifier, start, text)
}
