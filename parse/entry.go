package parse

import (
	"github.com/signadot/go-kdl/ir"
	"github.com/signadot/go-kdl/token"
)

// parseEntry parses an argument or property.  For a string argument it
// also returns the space consumed while looking for '='.
func (p *parser) parseEntry() (*ir.Entry, string, error) {
	start := p.cur.Start
	entry := &ir.Entry{Trailing: ir.Str("")}
	var (
		tag     *ir.Tag
		between string
		err     error
	)
	if p.cur.Type == token.TOpenParen {
		if tag, err = p.parseTag(); err != nil {
			return nil, "", err
		}
		if between, err = p.nodeSpace(); err != nil {
			return nil, "", err
		}
	}
	if !p.cur.Type.IsString() {
		v, err := p.valueAfterTag(tag, between, start)
		if err != nil {
			return nil, "", err
		}
		entry.Value = v
		entry.Loc = p.loc(start)
		return entry, "", nil
	}
	str, err := p.pop()
	if err != nil {
		return nil, "", err
	}
	rest, err := p.nodeSpace()
	if err != nil {
		return nil, "", err
	}
	if p.cur.Type != token.TEquals {
		v := p.stringValue(&str)
		if tag != nil {
			v.Tag = tag
			v.BetweenTagAndValue = ir.Str(between)
			v.Loc = p.span(start, str.End)
		}
		entry.Value = v
		entry.Loc = p.span(start, str.End)
		return entry, rest, nil
	}
	eq, err := p.pop()
	if err != nil {
		return nil, "", err
	}
	after, err := p.nodeSpace()
	if err != nil {
		return nil, "", err
	}
	entry.Name = p.identifier(&str)
	if tag != nil {
		entry.NameTag = tag
		entry.BetweenTagAndName = ir.Str(between)
	}
	entry.Equals = ir.Str(rest + eq.Text + after)
	if entry.Value, err = p.parseValue(); err != nil {
		return nil, "", err
	}
	entry.Loc = p.loc(start)
	return entry, "", nil
}

// parseLoneEntry parses input holding a single entry with surrounding
// space.
func (p *parser) parseLoneEntry() (*ir.Entry, error) {
	leading, err := p.nodeSpace()
	if err != nil {
		return nil, err
	}
	if !p.startsEntry() {
		return nil, p.unexpected("an entry")
	}
	entry, rest, err := p.parseEntry()
	if err != nil {
		return nil, err
	}
	trailing, err := p.nodeSpace()
	if err != nil {
		return nil, err
	}
	entry.Leading = ir.Str(leading)
	entry.Trailing = ir.Str(rest + trailing)
	return entry, nil
}

// parseValue parses a value with an optional type annotation.
func (p *parser) parseValue() (*ir.Value, error) {
	start := p.cur.Start
	var (
		tag     *ir.Tag
		between string
		err     error
	)
	if p.cur.Type == token.TOpenParen {
		if tag, err = p.parseTag(); err != nil {
			return nil, err
		}
		if between, err = p.nodeSpace(); err != nil {
			return nil, err
		}
	}
	return p.valueAfterTag(tag, between, start)
}

func (p *parser) valueAfterTag(tag *ir.Tag, between string, start token.Pos) (*ir.Value, error) {
	var v *ir.Value
	switch {
	case p.cur.Type.IsString():
		tok, err := p.pop()
		if err != nil {
			return nil, err
		}
		v = p.stringValue(&tok)
	case p.cur.Type.IsNumber():
		tok, err := p.pop()
		if err != nil {
			return nil, err
		}
		v = &ir.Value{Value: tok.Value, Representation: ir.Str(tok.Text)}
		if p.cur.Type == token.TNumberSuffix {
			suf, err := p.pop()
			if err != nil {
				return nil, err
			}
			if tag != nil {
				p.recoverable(token.ErrTagWithSuffix, &suf, "number has both a type annotation and a suffix")
				*v.Representation += suf.Text
			} else {
				tag = &ir.Tag{
					Name:           suf.Value.(string),
					Representation: ir.Str(suf.Text),
					Suffix:         true,
					Loc:            p.tokLoc(&suf),
				}
			}
		}
	case p.cur.Type == token.TKeyword:
		tok, err := p.pop()
		if err != nil {
			return nil, err
		}
		v = &ir.Value{Value: tok.Value, Representation: ir.Str(tok.Text)}
	case tag != nil:
		return nil, p.unexpected("a value after the type annotation")
	default:
		return nil, p.unexpected("a value")
	}
	v.Tag = tag
	if tag != nil && !tag.Suffix {
		v.BetweenTagAndValue = ir.Str(between)
	}
	v.Loc = p.loc(start)
	return v, nil
}

// stringValue makes a value of a string token.  A bare keyword such as
// true, already reported by the tokenizer, is read as the keyword.
func (p *parser) stringValue(tok *token.Token) *ir.Value {
	v := &ir.Value{Value: tok.Value, Representation: ir.Str(tok.Text), Loc: p.tokLoc(tok)}
	if tok.Type == token.TIdentifier {
		if kv, ok := token.KeywordValue(tok.Text); ok {
			v.Value = kv
		}
	}
	return v
}

func (p *parser) identifier(tok *token.Token) *ir.Identifier {
	return &ir.Identifier{
		Name:           tok.Value.(string),
		Representation: ir.Str(tok.Text),
		Loc:            p.tokLoc(tok),
	}
}

func (p *parser) parseIdentifier() (*ir.Identifier, error) {
	tok, err := p.pop()
	if err != nil {
		return nil, err
	}
	return p.identifier(&tok), nil
}

func (p *parser) parseLoneIdentifier() (*ir.Identifier, error) {
	if !p.cur.Type.IsString() {
		return nil, p.unexpected("an identifier")
	}
	return p.parseIdentifier()
}

func (p *parser) parseTag() (*ir.Tag, error) {
	open, err := p.pop()
	if err != nil {
		return nil, err
	}
	leading, err := p.nodeSpace()
	if err != nil {
		return nil, err
	}
	if !p.cur.Type.IsString() {
		return nil, p.unexpected("a type annotation name")
	}
	name, err := p.pop()
	if err != nil {
		return nil, err
	}
	trailing, err := p.nodeSpace()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.TCloseParen {
		return nil, p.unexpected("')'")
	}
	if _, err := p.pop(); err != nil {
		return nil, err
	}
	return &ir.Tag{
		Name:           name.Value.(string),
		Representation: ir.Str(name.Text),
		Leading:        ir.Str(leading),
		Trailing:       ir.Str(trailing),
		Loc:            p.loc(open.Start),
	}, nil
}

func (p *parser) span(start, end token.Pos) *ir.Location {
	if !p.opts.locations {
		return nil
	}
	return &ir.Location{Start: start, End: end}
}
