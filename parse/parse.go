package parse

import (
	"fmt"
	"slices"

	"github.com/signadot/go-kdl/ir"
)

// Parse parses src as the kind of element selected with [ParseAs],
// a document by default.
func Parse(src []byte, opts ...ParseOption) (ir.Element, error) {
	pOpts := &parseOpts{as: ir.DocumentKind}
	for _, f := range opts {
		f(pOpts)
	}
	p, err := newParser(src, pOpts)
	if err != nil {
		return nil, p.fail(err)
	}
	var res ir.Element
	switch pOpts.as {
	case ir.DocumentKind:
		res, err = p.parseDocument(false)
	case ir.NodeKind:
		res, err = p.parseLoneNode()
	case ir.EntryKind:
		res, err = p.parseLoneEntry()
	case ir.ValueKind:
		res, err = p.parseValue()
	case ir.IdentifierKind:
		res, err = p.parseLoneIdentifier()
	default:
		return nil, fmt.Errorf("cannot parse a %s", pOpts.as)
	}
	return p.finish(res, err)
}

func ParseString(s string, opts ...ParseOption) (ir.Element, error) {
	return Parse([]byte(s), opts...)
}

func ParseDocument(src []byte, opts ...ParseOption) (*ir.Document, error) {
	e, err := Parse(src, slices.Concat(opts, []ParseOption{ParseAs(ir.DocumentKind)})...)
	if err != nil {
		return nil, err
	}
	return e.(*ir.Document), nil
}

func ParseNode(src []byte, opts ...ParseOption) (*ir.Node, error) {
	e, err := Parse(src, slices.Concat(opts, []ParseOption{ParseAs(ir.NodeKind)})...)
	if err != nil {
		return nil, err
	}
	return e.(*ir.Node), nil
}

func ParseEntry(src []byte, opts ...ParseOption) (*ir.Entry, error) {
	e, err := Parse(src, slices.Concat(opts, []ParseOption{ParseAs(ir.EntryKind)})...)
	if err != nil {
		return nil, err
	}
	return e.(*ir.Entry), nil
}

func ParseValue(src []byte, opts ...ParseOption) (*ir.Value, error) {
	e, err := Parse(src, slices.Concat(opts, []ParseOption{ParseAs(ir.ValueKind)})...)
	if err != nil {
		return nil, err
	}
	return e.(*ir.Value), nil
}

func ParseIdentifier(src []byte, opts ...ParseOption) (*ir.Identifier, error) {
	e, err := Parse(src, slices.Concat(opts, []ParseOption{ParseAs(ir.IdentifierKind)})...)
	if err != nil {
		return nil, err
	}
	return e.(*ir.Identifier), nil
}
