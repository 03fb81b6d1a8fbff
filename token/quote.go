package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// IsIdentifier reports whether s can be written as a bare identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if _, ok := keywords[s]; ok {
		return false
	}
	for _, r := range s {
		if !isIdentChar(r) {
			return false
		}
	}
	r0, n := utf8.DecodeRuneInString(s)
	r1, m := utf8.DecodeRuneInString(s[n:])
	r2, _ := utf8.DecodeRuneInString(s[n+m:])
	switch {
	case isDigit(r0):
		return false
	case r0 == '+' || r0 == '-':
		return !isDigit(r1) && !(r1 == '.' && isDigit(r2))
	case r0 == '.':
		return !isDigit(r1)
	}
	return true
}

// Quote returns s as a quoted KDL string.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if isNewline(r) || isDisallowed(r) || r == utf8.RuneError {
				fmt.Fprintf(&b, `\u{%x}`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// FormatIdentifier returns s bare when it is a valid identifier and
// quoted otherwise.
func FormatIdentifier(s string) string {
	if IsIdentifier(s) {
		return s
	}
	return Quote(s)
}

// IsSuffixName reports whether s can follow '#' as a number suffix.
func IsSuffixName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isIdentChar(r) {
			return false
		}
	}
	return true
}
