package token

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

type suffixState struct {
	exponent bool
	radix    bool
}

func scanNumber(s *scanCtx) Token {
	start := s.pos()
	if s.cur == '+' || s.cur == '-' {
		s.advance()
	}
	if s.cur == '0' {
		switch s.peek(1) {
		case 'x':
			return scanRadix(s, start, 16, TNumberHex)
		case 'o':
			return scanRadix(s, start, 8, TNumberOctal)
		case 'b':
			return scanRadix(s, start, 2, TNumberBinary)
		}
	}
	s.digits(isDigit)
	float := false
	if s.cur == '.' && isDigit(s.peek(1)) {
		float = true
		s.advance()
		s.digits(isDigit)
	}
	exponent := false
	if s.cur == 'e' || s.cur == 'E' {
		next := s.peek(1)
		switch {
		case isDigit(next), (next == '+' || next == '-') && isDigit(s.peek(2)):
			exponent = true
		case next == '_', (next == '+' || next == '-') && s.peek(2) == '_':
			exponent = true
			s.errorf(ErrNumber, s.pos(), "invalid exponent, digits must follow e")
		}
		if exponent {
			float = true
			s.advance()
			if s.cur == '+' || s.cur == '-' {
				s.advance()
			}
			s.digits(isDigit)
		}
	}
	end := s.off
	s.checkSuffix(start, &suffixState{exponent: exponent})
	text := strings.ReplaceAll(string(s.src[start.Offset:end]), "_", "")
	var v any
	if float {
		v = parseFloat(text)
	} else if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		v = i
	} else {
		v = parseFloat(text)
	}
	return s.token(TNumberDecimal, start, v)
}

func scanRadix(s *scanCtx, start Pos, base int, tt TokenType) Token {
	s.advance()
	s.advance()
	valid := func(r rune) bool {
		switch base {
		case 16:
			return isHexDigit(r)
		case 8:
			return r >= '0' && r <= '7'
		}
		return r == '0' || r == '1'
	}
	digStart := s.off
	if !valid(s.cur) {
		s.errorf(ErrNumber, s.pos(), "expected a base %d digit after %s", base, s.src[start.Offset:s.off])
	}
	s.digits(valid)
	end := s.off
	s.checkSuffix(start, &suffixState{radix: true})
	digits := strings.ReplaceAll(string(s.src[digStart:end]), "_", "")
	if digits == "" {
		return s.token(tt, start, int64(0))
	}
	neg := s.src[start.Offset] == '-'
	return s.token(tt, start, radixValue(digits, base, neg))
}

// digits advances over a run of digits and underscores.
func (s *scanCtx) digits(valid func(rune) bool) {
	for valid(s.cur) || s.cur == '_' {
		s.advance()
	}
}

// checkSuffix inspects what directly follows a number.  A valid suffix
// is left for the next call to Next, anything else glued to the number
// is consumed into it with an error.
func (s *scanCtx) checkSuffix(start Pos, st *suffixState) {
	if s.cur == '#' {
		if isIdentChar(s.peek(1)) {
			s.suffix = st
		}
		return
	}
	if !isIdentChar(s.cur) || (s.opts.query && isQueryStop(s.cur, s.peek(1))) {
		return
	}
	at := s.pos()
	first, second := s.cur, s.peek(1)
	var msg string
	switch {
	case !s.opts.suffixes:
		msg = "invalid character %q in number"
	case st.radix:
		msg = "bare suffix %q is not allowed on a non-decimal number, use #"
	case st.exponent:
		msg = "bare suffix %q is not allowed after an exponent, use #"
	case first == '.' || first == ',':
		msg = "bare suffix %q may not start with '.' or ','"
	case first == '_':
		msg = "bare suffix %q may not start with '_'"
	case (first == 'x' || first == 'X') && isHexDigit(second):
		msg = "bare suffix %q looks like a hex number, use #"
	case isLetter(first) && (isDigit(second) || second == '_'):
		msg = "bare suffix %q is ambiguous, use #"
	case isDigit(first) || first == '+' || first == '-':
		msg = "invalid character %q in number"
	default:
		s.suffix = st
		return
	}
	s.skipIdent()
	s.errorf(ErrNumberSuffix, at, msg, string(s.src[at.Offset:s.off]))
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// scanSuffix scans the suffix following a number.
func scanSuffix(s *scanCtx) Token {
	s.suffix = nil
	start := s.pos()
	hashed := s.cur == '#'
	if hashed {
		s.advance()
	}
	nameStart := s.off
	s.skipIdent()
	name := string(s.src[nameStart:s.off])
	if hashed && !s.opts.suffixes {
		s.errorf(ErrNumberSuffix, start, "number suffixes are not enabled")
	}
	return s.token(TNumberSuffix, start, name)
}

// parseFloat ignores range errors, ParseFloat returns +-Inf or 0 for them.
func parseFloat(text string) any {
	f, _ := strconv.ParseFloat(text, 64)
	return f
}

func radixValue(digits string, base int, neg bool) any {
	if u, err := strconv.ParseUint(digits, base, 64); err == nil {
		switch {
		case u <= math.MaxInt64 && neg:
			return -int64(u)
		case u <= math.MaxInt64:
			return int64(u)
		case u == 1<<63 && neg:
			return int64(math.MinInt64)
		}
	}
	b, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return int64(0)
	}
	if neg {
		b.Neg(b)
	}
	f, _ := new(big.Float).SetInt(b).Float64()
	return f
}
