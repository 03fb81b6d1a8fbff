package ir

import "slices"

type Document struct {
	Nodes []*Node
	// Leading and Trailing are the whitespace before the first and
	// after the last node.
	Leading  *string
	Trailing *string
	Loc      *Location
}

func NewDocument(nodes ...*Node) *Document {
	return &Document{Nodes: nodes}
}

func (*Document) Kind() Kind { return DocumentKind }
func (*Document) element()   {}

func (d *Document) IsEmpty() bool {
	return len(d.Nodes) == 0
}

func (d *Document) AppendNode(nodes ...*Node) {
	d.Nodes = append(d.Nodes, nodes...)
}

func (d *Document) index(n *Node) int {
	return slices.Index(d.Nodes, n)
}

// InsertNodeBefore inserts n before ref, reporting whether ref was found.
func (d *Document) InsertNodeBefore(ref, n *Node) bool {
	i := d.index(ref)
	if i < 0 {
		return false
	}
	d.Nodes = slices.Insert(d.Nodes, i, n)
	return true
}

func (d *Document) InsertNodeAfter(ref, n *Node) bool {
	i := d.index(ref)
	if i < 0 {
		return false
	}
	d.Nodes = slices.Insert(d.Nodes, i+1, n)
	return true
}

func (d *Document) RemoveNode(n *Node) bool {
	i := d.index(n)
	if i < 0 {
		return false
	}
	d.Nodes = slices.Delete(d.Nodes, i, i+1)
	return true
}

func (d *Document) ReplaceNode(old, n *Node) bool {
	i := d.index(old)
	if i < 0 {
		return false
	}
	d.Nodes[i] = n
	return true
}

// FindNodeByName returns the last node named name.
func (d *Document) FindNodeByName(name string) *Node {
	for i := len(d.Nodes) - 1; i >= 0; i-- {
		if d.Nodes[i].GetName() == name {
			return d.Nodes[i]
		}
	}
	return nil
}

func (d *Document) FindNodesByName(name string) []*Node {
	var res []*Node
	for _, n := range d.Nodes {
		if n.GetName() == name {
			res = append(res, n)
		}
	}
	return res
}

// FindParameterizedNode returns the last node named name that has
// exactly one argument, equal to arg[0] when arg is given.
func (d *Document) FindParameterizedNode(name string, arg ...any) *Node {
	var want any
	if len(arg) > 0 {
		var err error
		if want, err = Normalize(arg[0]); err != nil {
			return nil
		}
	}
	for i := len(d.Nodes) - 1; i >= 0; i-- {
		n := d.Nodes[i]
		if n.GetName() != name {
			continue
		}
		args := n.GetArgumentEntries()
		if len(args) != 1 {
			continue
		}
		if len(arg) == 0 || args[0].GetValue() == want {
			return n
		}
	}
	return nil
}

func (d *Document) Clone() *Document {
	c := &Document{
		Leading:  cloneStr(d.Leading),
		Trailing: cloneStr(d.Trailing),
		Loc:      cloneLoc(d.Loc),
	}
	if d.Nodes != nil {
		c.Nodes = make([]*Node, len(d.Nodes))
		for i, n := range d.Nodes {
			c.Nodes[i] = n.Clone()
		}
	}
	return c
}
