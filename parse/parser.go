package parse

import (
	"errors"

	"github.com/signadot/go-kdl/debug"
	"github.com/signadot/go-kdl/ir"
	"github.com/signadot/go-kdl/token"
)

type parser struct {
	src  []byte
	tk   *token.Tokenizer
	cur  token.Token
	last token.Token
	errs []*token.Error
	opts *parseOpts
}

func newParser(src []byte, opts *parseOpts) (*parser, error) {
	p := &parser{
		src:  src,
		tk:   token.NewTokenizer(src, opts.tokenizeOpts()...),
		opts: opts,
	}
	return p, p.advance()
}

func (p *parser) advance() error {
	tok, err := p.tk.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// pop consumes the current token, collecting its errors.
func (p *parser) pop() (token.Token, error) {
	tok := p.cur
	if debug.Parse() {
		debug.Logf("parse: pop %s\n", tok.Info())
	}
	p.errs = append(p.errs, tok.Errs...)
	p.last = tok
	return tok, p.advance()
}

func (p *parser) recoverable(kind error, tok *token.Token, format string, args ...any) {
	p.errs = append(p.errs, token.NewError(kind, tok, format, args...))
}

func (p *parser) unexpected(expected string) *token.Error {
	if p.cur.Type == token.TEOF {
		return token.EOFError(token.ErrUnexpected, "unexpected end of input, expected %s", expected)
	}
	return token.NewError(token.ErrUnexpected, &p.cur, "unexpected %s, expected %s", p.cur.Describe(), expected)
}

// fail combines a fatal error with the errors collected before it.
func (p *parser) fail(err error) error {
	var te *token.Error
	if !errors.As(err, &te) {
		return err
	}
	return token.Join(append(p.errs, te))
}

func (p *parser) finish(res ir.Element, err error) (ir.Element, error) {
	if err != nil {
		return nil, p.fail(err)
	}
	if p.cur.Type != token.TEOF {
		p.errs = append(p.errs, p.unexpected("end of input"))
	}
	if err := token.Join(p.errs); err != nil {
		if debug.Parse() {
			debug.Logf("parse: %s\n", err)
		}
		return nil, err
	}
	return res, nil
}

func (p *parser) loc(start token.Pos) *ir.Location {
	if !p.opts.locations {
		return nil
	}
	end := p.last.End
	if end.Offset < start.Offset {
		end = start
	}
	return &ir.Location{Start: start, End: end}
}

func (p *parser) tokLoc(tok *token.Token) *ir.Location {
	if !p.opts.locations {
		return nil
	}
	return &ir.Location{Start: tok.Start, End: tok.End}
}

// startsEntry reports whether the current token can begin an entry.
func (p *parser) startsEntry() bool {
	t := p.cur.Type
	return t.IsString() || t.IsNumber() || t == token.TKeyword || t == token.TOpenParen
}
