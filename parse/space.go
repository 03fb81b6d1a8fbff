package parse

import (
	"strings"

	"github.com/signadot/go-kdl/token"
)

// nodeSpace consumes whitespace, multi-line comments and line
// continuations.
func (p *parser) nodeSpace() (string, error) {
	var b strings.Builder
	for {
		switch p.cur.Type {
		case token.TWhitespace, token.TMultiLineComment:
			tok, err := p.pop()
			b.WriteString(tok.Text)
			if err != nil {
				return "", err
			}
		case token.TEscLine:
			s, err := p.escLine()
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		default:
			return b.String(), nil
		}
	}
}

// lineSpace consumes the space between nodes: node space, newlines,
// comments and, when slashdash is set, slashdashed nodes.
func (p *parser) lineSpace(inChildren, slashdash bool) (string, error) {
	var b strings.Builder
	for {
		switch p.cur.Type {
		case token.TWhitespace, token.TMultiLineComment, token.TNewline, token.TSingleLineComment:
			tok, err := p.pop()
			if err != nil {
				return "", err
			}
			b.WriteString(tok.Text)
		case token.TEscLine:
			s, err := p.escLine()
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		case token.TSlashdash:
			if !slashdash {
				return b.String(), nil
			}
			s, err := p.slashdashNode(inChildren)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		default:
			return b.String(), nil
		}
	}
}

// entrySpace consumes the space between the entries of a node,
// including slashdashed entries and children blocks.  lead is the space
// already consumed before it.  seenChildren is set once a children
// block, live or slashdashed, has been seen; no entry may follow it.
func (p *parser) entrySpace(inChildren bool, lead string, seenChildren *bool) (string, error) {
	var b strings.Builder
	for {
		switch p.cur.Type {
		case token.TSlashdash:
			sd := p.cur
			start := sd.Start.Offset
			spaced := lead != "" || b.Len() > 0
			if _, err := p.pop(); err != nil {
				return "", err
			}
			if _, err := p.lineSpace(inChildren, false); err != nil {
				return "", err
			}
			switch {
			case p.cur.Type == token.TOpenBrace:
				if _, err := p.parseChildren(); err != nil {
					return "", err
				}
				*seenChildren = true
			case p.startsEntry():
				if *seenChildren {
					return "", token.NewError(token.ErrEntryAfterChildren, &p.cur,
						"entry %s after the children block", p.cur.Describe())
				}
				if !spaced {
					p.recoverable(token.ErrMissingSpace, &sd, "missing whitespace before %s", sd.Describe())
				}
				if _, _, err := p.parseEntry(); err != nil {
					return "", err
				}
			default:
				return "", p.unexpected("an entry or a children block after /-")
			}
			b.WriteString(string(p.src[start:p.last.End.Offset]))
		case token.TWhitespace, token.TMultiLineComment, token.TEscLine:
			s, err := p.nodeSpace()
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		default:
			return b.String(), nil
		}
	}
}

// escLine consumes a line continuation: a backslash, optional space
// and a comment, then a newline.
func (p *parser) escLine() (string, error) {
	esc, err := p.pop()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(esc.Text)
	for p.cur.Type.IsSpace() {
		tok, err := p.pop()
		if err != nil {
			return "", err
		}
		b.WriteString(tok.Text)
	}
	switch p.cur.Type {
	case token.TSingleLineComment:
		tok, err := p.pop()
		if err != nil {
			return "", err
		}
		b.WriteString(tok.Text)
		if p.cur.Type != token.TNewline {
			break
		}
		fallthrough
	case token.TNewline:
		tok, err := p.pop()
		if err != nil {
			return "", err
		}
		b.WriteString(tok.Text)
	case token.TEOF:
	default:
		p.recoverable(token.ErrEscLine, &esc, "line continuation must be followed by a newline")
	}
	return b.String(), nil
}

// terminator consumes the end of a node: a newline, a semicolon or a
// single-line comment with its newline.  The end of input and, inside
// children, a closing brace also end a node but are not consumed.
func (p *parser) terminator(inChildren bool) (string, bool, error) {
	switch p.cur.Type {
	case token.TNewline, token.TSemicolon:
		tok, err := p.pop()
		return tok.Text, true, err
	case token.TSingleLineComment:
		tok, err := p.pop()
		if err != nil {
			return "", true, err
		}
		if p.cur.Type != token.TNewline {
			return tok.Text, true, nil
		}
		nl, err := p.pop()
		return tok.Text + nl.Text, true, err
	case token.TEOF:
		return "", true, nil
	case token.TCloseBrace:
		return "", inChildren, nil
	}
	return "", false, nil
}
