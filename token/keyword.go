package token

import (
	"math"
	"strings"
)

var keywordNames = []string{"true", "false", "null", "inf", "-inf", "nan"}

var keywords = map[string]any{
	"true":  true,
	"false": false,
	"null":  nil,
	"inf":   math.Inf(1),
	"-inf":  math.Inf(-1),
	"nan":   math.NaN(),
}

// KeywordValue returns the value of the keyword named word (without the
// leading '#').
func KeywordValue(word string) (any, bool) {
	v, ok := keywords[word]
	return v, ok
}

// suggestKeyword finds the keyword word most plausibly meant: a casing
// variant or a single edit away.
func suggestKeyword(word string) (string, bool) {
	for _, kw := range keywordNames {
		if strings.EqualFold(word, kw) {
			return kw, true
		}
	}
	lower := strings.ToLower(word)
	for _, kw := range keywordNames {
		if editDistance(lower, kw) <= 1 {
			return kw, true
		}
	}
	return "", false
}

// editDistance is the optimal string alignment distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+1)
			}
		}
	}
	return d[len(ra)][len(rb)]
}

// scanHash scans tokens starting with '#': raw strings and keywords.
func scanHash(s *scanCtx) Token {
	start := s.pos()
	hashes := 0
	for s.cur == '#' {
		hashes++
		s.advance()
	}
	if s.cur == '"' {
		return scanRaw(s, start, hashes)
	}
	if hashes > 1 || !isIdentChar(s.cur) {
		s.errorf(ErrUnexpected, start, "unexpected %q", string(s.src[start.Offset:s.off]))
		return s.token(TInvalid, start, nil)
	}
	wStart := s.off
	s.skipIdent()
	word := string(s.src[wStart:s.off])
	if v, ok := keywords[word]; ok {
		return s.token(TKeyword, start, v)
	}
	if kw, ok := suggestKeyword(word); ok {
		s.errorf(ErrKeyword, start, "unknown keyword #%s, did you mean #%s?", word, kw)
		return s.token(TKeyword, start, keywords[kw])
	}
	s.errorf(ErrKeyword, start, "unknown keyword #%s", word)
	return s.token(TKeyword, start, nil)
}
