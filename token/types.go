package token

import (
	"fmt"
)

type TokenType int

const (
	TEOF TokenType = iota
	TNewline
	TWhitespace
	TEscLine
	TSingleLineComment
	TMultiLineComment
	TSlashdash
	TIdentifier
	TQuotedString
	TMultiLineString
	TRawString
	TMultiLineRawString
	TNumberDecimal
	TNumberHex
	TNumberOctal
	TNumberBinary
	TNumberSuffix
	TKeyword
	TEquals
	TOpenParen
	TCloseParen
	TOpenBrace
	TCloseBrace
	TSemicolon
	TInvalid

	// query tokens
	TNotEquals
	TGreater
	TGreaterEquals
	TLess
	TLessEquals
	TStartsWith
	TEndsWith
	TContains
	TOr
	TOpenSquare
	TCloseSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:                "TEOF",
		TNewline:            "TNewline",
		TWhitespace:         "TWhitespace",
		TEscLine:            "TEscLine",
		TSingleLineComment:  "TSingleLineComment",
		TMultiLineComment:   "TMultiLineComment",
		TSlashdash:          "TSlashdash",
		TIdentifier:         "TIdentifier",
		TQuotedString:       "TQuotedString",
		TMultiLineString:    "TMultiLineString",
		TRawString:          "TRawString",
		TMultiLineRawString: "TMultiLineRawString",
		TNumberDecimal:      "TNumberDecimal",
		TNumberHex:          "TNumberHex",
		TNumberOctal:        "TNumberOctal",
		TNumberBinary:       "TNumberBinary",
		TNumberSuffix:       "TNumberSuffix",
		TKeyword:            "TKeyword",
		TEquals:             "TEquals",
		TOpenParen:          "TOpenParen",
		TCloseParen:         "TCloseParen",
		TOpenBrace:          "TOpenBrace",
		TCloseBrace:         "TCloseBrace",
		TSemicolon:          "TSemicolon",
		TInvalid:            "TInvalid",
		TNotEquals:          "TNotEquals",
		TGreater:            "TGreater",
		TGreaterEquals:      "TGreaterEquals",
		TLess:               "TLess",
		TLessEquals:         "TLessEquals",
		TStartsWith:         "TStartsWith",
		TEndsWith:           "TEndsWith",
		TContains:           "TContains",
		TOr:                 "TOr",
		TOpenSquare:         "TOpenSquare",
		TCloseSquare:        "TCloseSquare",
	}[t]
}

// IsString reports whether t is one of the string forms, which may
// also serve as identifiers.
func (t TokenType) IsString() bool {
	switch t {
	case TIdentifier, TQuotedString, TMultiLineString, TRawString, TMultiLineRawString:
		return true
	}
	return false
}

func (t TokenType) IsNumber() bool {
	switch t {
	case TNumberDecimal, TNumberHex, TNumberOctal, TNumberBinary:
		return true
	}
	return false
}

// IsSpace reports whether t is plain whitespace or a multi-line comment,
// the forms allowed anywhere between entries on a single line.
func (t TokenType) IsSpace() bool {
	return t == TWhitespace || t == TMultiLineComment
}

type Token struct {
	Type TokenType
	// Text is the exact source text of the token.
	Text  string
	Start Pos
	End   Pos
	// Value holds the decoded value for strings (string), numbers
	// (int64 or float64), keywords (bool, nil or float64) and number
	// suffixes (the suffix name).
	Value any
	// Errs holds recoverable errors found in this token.
	Errs []*Error
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Text, t.Start.String())
}

func (t *Token) String() string {
	return t.Text
}

// Describe returns a short description of the token for error
// messages.
func (t *Token) Describe() string {
	switch t.Type {
	case TEOF:
		return "end of input"
	case TNewline:
		return "newline"
	case TWhitespace:
		return "whitespace"
	}
	if len(t.Text) > 20 {
		return fmt.Sprintf("%q", t.Text[:20]+"...")
	}
	return fmt.Sprintf("%q", t.Text)
}
