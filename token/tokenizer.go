package token

import (
	"iter"

	"github.com/signadot/go-kdl/debug"
)

// Tokenizer produces the tokens of a source one at a time.
type Tokenizer struct {
	s *scanCtx
}

func NewTokenizer(src []byte, opts ...TokenOpt) *Tokenizer {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	return &Tokenizer{s: newScanCtx(src, opt)}
}

// Next returns the next token.  At the end of input it returns a TEOF
// token, repeatedly.  A non-nil error is fatal: the tokenizer cannot
// continue and every later call returns the same error.
func (t *Tokenizer) Next() (Token, error) {
	s := t.s
	if s.fatal != nil {
		return Token{}, s.fatal
	}
	var tok Token
	switch {
	case s.cur == eof:
		tok = s.token(TEOF, s.pos(), nil)
	case s.suffix != nil:
		tok = scanSuffix(s)
	default:
		tok = dispatch(s)(s)
	}
	if s.fatal != nil {
		return Token{}, s.fatal
	}
	if debug.Tokens() {
		debug.Logf("token %s\n", tok.Info())
	}
	return tok, nil
}

// All iterates over the tokens up to and including TEOF, or up to the
// first fatal error.
func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if !yield(tok, err) || err != nil || tok.Type == TEOF {
				return
			}
		}
	}
}

// Tokenize returns all tokens of src, the last being TEOF.
func Tokenize(src []byte, opts ...TokenOpt) ([]Token, error) {
	var res []Token
	for tok, err := range NewTokenizer(src, opts...).All() {
		if err != nil {
			return res, err
		}
		res = append(res, tok)
	}
	return res, nil
}
