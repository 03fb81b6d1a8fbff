package token

const (
	eof = -1
	bom = 0xFEFF
)

func isNewline(r rune) bool {
	switch r {
	case '\n', '\r', 0x0B, 0x0C, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

func isSpace(r rune) bool {
	switch r {
	case '\t', ' ', 0xA0, 0x1680, 0x202F, 0x205F, 0x3000:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

func isDisallowed(r rune) bool {
	switch {
	case r < 0x20:
		return r != '\t' && !isNewline(r)
	case r == 0x7F:
		return true
	case r >= 0xD800 && r <= 0xDFFF:
		return true
	case r >= 0x200E && r <= 0x200F, r >= 0x202A && r <= 0x202E, r >= 0x2066 && r <= 0x2069:
		// direction control
		return true
	case r == bom:
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isReserved(r rune) bool {
	switch r {
	case '\\', '/', '(', ')', '{', '}', ';', '[', ']', '"', '#', '=':
		return true
	}
	return false
}

func isIdentChar(r rune) bool {
	return r >= 0 && !isReserved(r) && !isSpace(r) && !isNewline(r) && !isDisallowed(r)
}

// isQueryStop reports whether r, followed by next, ends an identifier in
// the query grammar.
func isQueryStop(r, next rune) bool {
	switch r {
	case '>', '<':
		return true
	case '!', '^', '$', '*':
		return next == '='
	case '|':
		return next == '|'
	}
	return false
}
