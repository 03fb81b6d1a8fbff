package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/go-kdl/encode"
	"github.com/signadot/go-kdl/ir"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}
	off := newLineIndex(doc.content).offset(params.Position)
	node := findNodeAt(doc.doc, off)
	if node == nil {
		return nil, nil
	}
	hoverText := buildHoverText(node, findEntryAt(node, off))
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// contains reports whether the byte offset falls inside loc.
func contains(loc *ir.Location, off int) bool {
	return loc != nil && loc.Start.Offset <= off && off < loc.End.Offset
}

// findNodeAt returns the innermost node of d containing off.
func findNodeAt(d *ir.Document, off int) *ir.Node {
	if d == nil {
		return nil
	}
	for _, n := range d.Nodes {
		if !contains(n.Loc, off) {
			continue
		}
		if child := findNodeAt(n.Children, off); child != nil {
			return child
		}
		return n
	}
	return nil
}

func findEntryAt(n *ir.Node, off int) *ir.Entry {
	for _, e := range n.Entries {
		if contains(e.Loc, off) {
			return e
		}
	}
	return nil
}

func buildHoverText(n *ir.Node, e *ir.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**node** `%s`", n.GetName())
	if tag, ok := n.GetTag(); ok {
		fmt.Fprintf(&b, " (type `%s`)", tag)
	}
	b.WriteString("\n\n")

	if e != nil {
		if e.IsProperty() {
			fmt.Fprintf(&b, "property `%s`: %s\n\n", e.GetName(), valueInfo(e.Value))
		} else {
			fmt.Fprintf(&b, "argument %d: %s\n\n", argIndex(n, e), valueInfo(e.Value))
		}
	}

	args := n.GetArgumentEntries()
	if len(args) > 0 {
		vals := make([]string, len(args))
		for i, a := range args {
			vals[i] = "`" + valueText(a.Value) + "`"
		}
		fmt.Fprintf(&b, "- arguments: %s\n", strings.Join(vals, ", "))
	}
	names := n.PropertyNames()
	if len(names) > 0 {
		props := make([]string, len(names))
		for i, name := range names {
			props[i] = "`" + name + "=" + valueText(n.GetPropertyEntry(name).Value) + "`"
		}
		fmt.Fprintf(&b, "- properties: %s\n", strings.Join(props, ", "))
	}
	if n.HasChildren() {
		fmt.Fprintf(&b, "- children: %d\n", len(n.Children.Nodes))
	}
	return strings.TrimRight(b.String(), "\n")
}

func argIndex(n *ir.Node, e *ir.Entry) int {
	for i, a := range n.GetArgumentEntries() {
		if a == e {
			return i
		}
	}
	return -1
}

func valueText(v *ir.Value) string {
	if v == nil {
		return "#null"
	}
	s := encode.FormatValue(v.Value)
	if v.Tag != nil {
		s = "(" + v.Tag.Name + ")" + s
	}
	return s
}

func valueInfo(v *ir.Value) string {
	kind := "null"
	if v != nil {
		switch v.Value.(type) {
		case string:
			kind = "string"
		case int64:
			kind = "integer"
		case float64:
			kind = "float"
		case bool:
			kind = "boolean"
		}
		if v.Tag != nil {
			kind += " of type `" + v.Tag.Name + "`"
		}
	}
	return kind + " `" + valueText(v) + "`"
}
