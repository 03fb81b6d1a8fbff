package ir

import (
	"slices"
	"sort"
)

type Node struct {
	Tag      *Tag
	Name     *Identifier
	Entries  []*Entry
	Children *Document

	Leading           *string
	BetweenTagAndName *string
	BeforeChildren    *string
	// Trailing holds the whitespace after the last entry or children
	// block together with the node terminator.
	Trailing *string
	Loc      *Location
}

func NewNode(name string) *Node {
	return &Node{Name: NewIdentifier(name)}
}

func (*Node) Kind() Kind { return NodeKind }
func (*Node) element()   {}

func (n *Node) GetName() string {
	if n.Name == nil {
		return ""
	}
	return n.Name.Name
}

func (n *Node) SetName(name string) {
	if n.Name == nil {
		n.Name = NewIdentifier(name)
		return
	}
	n.Name.SetName(name)
}

func (n *Node) GetTag() (string, bool) {
	if n.Tag == nil {
		return "", false
	}
	return n.Tag.Name, true
}

func (n *Node) SetTag(name string) {
	n.Tag = NewTag(name)
}

func (n *Node) RemoveTag() {
	n.Tag = nil
	n.BetweenTagAndName = nil
}

// argIndex returns the index in Entries of the i'th argument, or -1.
func (n *Node) argIndex(i int) int {
	if i < 0 {
		return -1
	}
	for j, e := range n.Entries {
		if !e.IsArgument() {
			continue
		}
		if i == 0 {
			return j
		}
		i--
	}
	return -1
}

func (n *Node) GetArgumentEntries() []*Entry {
	var res []*Entry
	for _, e := range n.Entries {
		if e.IsArgument() {
			res = append(res, e)
		}
	}
	return res
}

func (n *Node) GetArguments() []any {
	var res []any
	for _, e := range n.GetArgumentEntries() {
		res = append(res, e.GetValue())
	}
	return res
}

func (n *Node) GetArgument(i int) (any, bool) {
	j := n.argIndex(i)
	if j < 0 {
		return nil, false
	}
	return n.Entries[j].GetValue(), true
}

func (n *Node) HasArgument(i int) bool {
	return n.argIndex(i) >= 0
}

func (n *Node) AddArgument(v any) *Entry {
	e := NewArgument(v)
	n.Entries = append(n.Entries, e)
	return e
}

// InsertArgument inserts an argument so that it becomes argument i.  If
// i is past the last argument, the argument is appended.
func (n *Node) InsertArgument(i int, v any) *Entry {
	e := NewArgument(v)
	j := n.argIndex(i)
	if j < 0 {
		n.Entries = append(n.Entries, e)
		return e
	}
	n.Entries = slices.Insert(n.Entries, j, e)
	return e
}

func (n *Node) RemoveArgument(i int) bool {
	j := n.argIndex(i)
	if j < 0 {
		return false
	}
	n.Entries = slices.Delete(n.Entries, j, j+1)
	return true
}

func (n *Node) RemoveAllArguments() {
	n.Entries = slices.DeleteFunc(n.Entries, (*Entry).IsArgument)
}

func (n *Node) GetPropertyEntries() []*Entry {
	var res []*Entry
	for _, e := range n.Entries {
		if e.IsProperty() {
			res = append(res, e)
		}
	}
	return res
}

// GetPropertyEntry returns the last property named name.
func (n *Node) GetPropertyEntry(name string) *Entry {
	for i := len(n.Entries) - 1; i >= 0; i-- {
		e := n.Entries[i]
		if e.IsProperty() && e.Name.Name == name {
			return e
		}
	}
	return nil
}

func (n *Node) HasProperty(name string) bool {
	return n.GetPropertyEntry(name) != nil
}

func (n *Node) GetProperty(name string) (any, bool) {
	e := n.GetPropertyEntry(name)
	if e == nil {
		return nil, false
	}
	return e.GetValue(), true
}

// GetProperties returns the properties, later duplicates overriding
// earlier ones.
func (n *Node) GetProperties() map[string]any {
	res := map[string]any{}
	for _, e := range n.GetPropertyEntries() {
		res[e.Name.Name] = e.GetValue()
	}
	return res
}

// PropertyNames returns the distinct property names in sorted order.
func (n *Node) PropertyNames() []string {
	props := n.GetProperties()
	res := make([]string, 0, len(props))
	for k := range props {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// SetProperty sets the value of the last property named name, removing
// earlier duplicates, or appends a new property.
func (n *Node) SetProperty(name string, v any) *Entry {
	last := n.GetPropertyEntry(name)
	if last == nil {
		e := NewProperty(name, v)
		n.Entries = append(n.Entries, e)
		return e
	}
	last.SetValue(v)
	n.Entries = slices.DeleteFunc(n.Entries, func(e *Entry) bool {
		return e != last && e.IsProperty() && e.Name.Name == name
	})
	return last
}

func (n *Node) DeleteProperty(name string) bool {
	before := len(n.Entries)
	n.Entries = slices.DeleteFunc(n.Entries, func(e *Entry) bool {
		return e.IsProperty() && e.Name.Name == name
	})
	return len(n.Entries) != before
}

// HasChildren reports whether n has at least one child node.
func (n *Node) HasChildren() bool {
	return n.Children != nil && len(n.Children.Nodes) > 0
}

// AppendNode adds child nodes, creating the children block if needed.
func (n *Node) AppendNode(nodes ...*Node) {
	if n.Children == nil {
		n.Children = NewDocument()
	}
	n.Children.AppendNode(nodes...)
}

func (n *Node) FindNodeByName(name string) *Node {
	if n.Children == nil {
		return nil
	}
	return n.Children.FindNodeByName(name)
}

func (n *Node) FindNodesByName(name string) []*Node {
	if n.Children == nil {
		return nil
	}
	return n.Children.FindNodesByName(name)
}

func (n *Node) FindParameterizedNode(name string, arg ...any) *Node {
	if n.Children == nil {
		return nil
	}
	return n.Children.FindParameterizedNode(name, arg...)
}

func (n *Node) Clone() *Node {
	c := &Node{
		Tag:               n.Tag.Clone(),
		Name:              n.Name.Clone(),
		Leading:           cloneStr(n.Leading),
		BetweenTagAndName: cloneStr(n.BetweenTagAndName),
		BeforeChildren:    cloneStr(n.BeforeChildren),
		Trailing:          cloneStr(n.Trailing),
		Loc:               cloneLoc(n.Loc),
	}
	if n.Entries != nil {
		c.Entries = make([]*Entry, len(n.Entries))
		for i, e := range n.Entries {
			c.Entries[i] = e.Clone()
		}
	}
	if n.Children != nil {
		c.Children = n.Children.Clone()
	}
	return c
}
