package parse

import (
	"github.com/signadot/go-kdl/ir"
	"github.com/signadot/go-kdl/token"
)

func (p *parser) parseDocument(inChildren bool) (*ir.Document, error) {
	doc := &ir.Document{Leading: ir.Str("")}
	start := p.cur.Start
	for {
		space, err := p.lineSpace(inChildren, true)
		if err != nil {
			return nil, err
		}
		if p.cur.Type == token.TEOF || (inChildren && p.cur.Type == token.TCloseBrace) {
			doc.Trailing = ir.Str(space)
			doc.Loc = p.loc(start)
			return doc, nil
		}
		node, err := p.parseNode(inChildren)
		if err != nil {
			return nil, err
		}
		node.Leading = ir.Str(space)
		doc.Nodes = append(doc.Nodes, node)
	}
}

func (p *parser) parseChildren() (*ir.Document, error) {
	open, err := p.pop()
	if err != nil {
		return nil, err
	}
	doc, err := p.parseDocument(true)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.TCloseBrace {
		return nil, token.EOFError(token.ErrUnterminated, "unterminated children block opened at %s", open.Start)
	}
	if _, err := p.pop(); err != nil {
		return nil, err
	}
	return doc, nil
}

// slashdashNode consumes a slashdashed node and returns its source text.
func (p *parser) slashdashNode(inChildren bool) (string, error) {
	start := p.cur.Start.Offset
	if _, err := p.pop(); err != nil {
		return "", err
	}
	if _, err := p.lineSpace(inChildren, false); err != nil {
		return "", err
	}
	if p.cur.Type == token.TEOF || p.cur.Type == token.TCloseBrace {
		return "", p.unexpected("a node after /-")
	}
	if _, err := p.parseNode(inChildren); err != nil {
		return "", err
	}
	return string(p.src[start:p.last.End.Offset]), nil
}

func (p *parser) parseNode(inChildren bool) (*ir.Node, error) {
	start := p.cur.Start
	node := &ir.Node{}
	if p.cur.Type == token.TOpenParen {
		tag, err := p.parseTag()
		if err != nil {
			return nil, err
		}
		node.Tag = tag
		between, err := p.nodeSpace()
		if err != nil {
			return nil, err
		}
		node.BetweenTagAndName = ir.Str(between)
		if !p.cur.Type.IsString() {
			if p.cur.Type == token.TEOF {
				return nil, token.EOFError(token.ErrMissingName, "expected a node name after the type annotation")
			}
			return nil, token.NewError(token.ErrMissingName, &p.cur,
				"expected a node name after the type annotation, got %s", p.cur.Describe())
		}
	}
	if !p.cur.Type.IsString() {
		return nil, p.unexpected("a node name")
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	node.Name = name

	pending, seenChildren := "", false
	for {
		space, err := p.entrySpace(inChildren, pending, &seenChildren)
		if err != nil {
			return nil, err
		}
		space, pending = pending+space, ""
		switch {
		case p.startsEntry():
			if seenChildren {
				return nil, token.NewError(token.ErrEntryAfterChildren, &p.cur,
					"entry %s after the children block", p.cur.Describe())
			}
			if space == "" {
				p.recoverable(token.ErrMissingSpace, &p.cur, "missing whitespace before %s", p.cur.Describe())
			}
			entry, rest, err := p.parseEntry()
			if err != nil {
				return nil, err
			}
			entry.Leading = ir.Str(space)
			node.Entries = append(node.Entries, entry)
			pending = rest
		case p.cur.Type == token.TOpenBrace:
			if node.Children != nil {
				return nil, token.NewError(token.ErrDuplicateChildren, &p.cur, "node already has a children block")
			}
			node.BeforeChildren = ir.Str(space)
			children, err := p.parseChildren()
			if err != nil {
				return nil, err
			}
			node.Children = children
			seenChildren = true
		case p.cur.Type == token.TEquals:
			eq, err := p.pop()
			if err != nil {
				return nil, err
			}
			p.recoverable(token.ErrUnexpected, &eq, "unexpected '=' without a property name")
			pending = space + eq.Text
		default:
			term, ok, err := p.terminator(inChildren)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, p.unexpected("an entry, a children block or the end of the node")
			}
			node.Trailing = ir.Str(space + term)
			node.Loc = p.loc(start)
			return node, nil
		}
	}
}

// parseLoneNode parses input holding a single node with surrounding
// space.
func (p *parser) parseLoneNode() (*ir.Node, error) {
	leading, err := p.lineSpace(false, true)
	if err != nil {
		return nil, err
	}
	node, err := p.parseNode(false)
	if err != nil {
		return nil, err
	}
	trailing, err := p.lineSpace(false, true)
	if err != nil {
		return nil, err
	}
	node.Leading = ir.Str(leading)
	node.Trailing = ir.Str(*node.Trailing + trailing)
	return node, nil
}
