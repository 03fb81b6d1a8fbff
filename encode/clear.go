package encode

import (
	"sort"

	"github.com/signadot/go-kdl/ir"
)

// ClearFormat strips representation and whitespace fields from e in
// place so that it encodes in canonical form.  Node entries are
// reordered: arguments first in their original order, then properties
// sorted by name with only the last occurrence of each name kept.
// Locations are cleared as well.  ClearFormat returns e.
func ClearFormat[E ir.Element](e E) E {
	switch x := any(e).(type) {
	case *ir.Document:
		clearDocument(x)
	case *ir.Node:
		clearNode(x)
	case *ir.Entry:
		clearEntry(x)
	case *ir.Value:
		clearValue(x)
	case *ir.Identifier:
		clearIdentifier(x)
	case *ir.Tag:
		clearTag(x)
	}
	return e
}

func clearDocument(d *ir.Document) {
	if d == nil {
		return
	}
	d.Leading, d.Trailing, d.Loc = nil, nil, nil
	for _, n := range d.Nodes {
		clearNode(n)
	}
}

func clearNode(n *ir.Node) {
	n.Leading, n.BetweenTagAndName, n.BeforeChildren, n.Trailing = nil, nil, nil, nil
	n.Loc = nil
	clearTag(n.Tag)
	clearIdentifier(n.Name)

	var args []*ir.Entry
	props := map[string]*ir.Entry{}
	for _, e := range n.Entries {
		clearEntry(e)
		if e.IsArgument() {
			args = append(args, e)
			continue
		}
		props[e.GetName()] = e
	}
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	entries := args
	for _, name := range names {
		entries = append(entries, props[name])
	}
	n.Entries = entries
	clearDocument(n.Children)
}

func clearEntry(e *ir.Entry) {
	e.Leading, e.Equals, e.Trailing, e.BetweenTagAndName = nil, nil, nil, nil
	e.Loc = nil
	clearIdentifier(e.Name)
	clearTag(e.NameTag)
	clearValue(e.Value)
}

func clearValue(v *ir.Value) {
	if v == nil {
		return
	}
	v.Representation, v.BetweenTagAndValue, v.Loc = nil, nil, nil
	clearTag(v.Tag)
}

func clearIdentifier(id *ir.Identifier) {
	if id == nil {
		return
	}
	id.Representation, id.Loc = nil, nil
}

func clearTag(t *ir.Tag) {
	if t == nil {
		return
	}
	t.Representation, t.Leading, t.Trailing, t.Loc = nil, nil, nil, nil
	t.Suffix = false
}
