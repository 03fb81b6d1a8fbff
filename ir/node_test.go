package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArguments(t *testing.T) {
	n := NewNode("node")
	n.AddArgument(1)
	n.SetProperty("a", "x")
	n.AddArgument("two")
	n.InsertArgument(1, 1.5)
	n.InsertArgument(10, true)

	want := []any{int64(1), 1.5, "two", true}
	if diff := cmp.Diff(want, n.GetArguments()); diff != "" {
		t.Errorf("arguments mismatch (-want +got):\n%s", diff)
	}
	if v, ok := n.GetArgument(2); !ok || v != "two" {
		t.Errorf("GetArgument(2): got %v %t", v, ok)
	}
	if _, ok := n.GetArgument(4); ok {
		t.Errorf("GetArgument(4) should not exist")
	}
	if !n.RemoveArgument(0) || n.HasArgument(3) {
		t.Errorf("RemoveArgument(0) failed: %v", n.GetArguments())
	}
	n.RemoveAllArguments()
	if len(n.Entries) != 1 || n.Entries[0].GetName() != "a" {
		t.Errorf("RemoveAllArguments left %d entries", len(n.Entries))
	}
}

func TestEntryLists(t *testing.T) {
	n := NewNode("node")
	n.AddArgument(1)
	n.SetProperty("b", 2)
	n.AddArgument(3)
	n.SetProperty("a", 4)
	var args []any
	var props []string
	for _, e := range n.GetArgumentEntries() {
		args = append(args, e.Value.Value)
	}
	for _, e := range n.GetPropertyEntries() {
		props = append(props, e.GetName())
	}
	if diff := cmp.Diff([]any{int64(1), int64(3)}, args); diff != "" {
		t.Errorf("arguments (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "a"}, props); diff != "" {
		t.Errorf("properties (-want +got):\n%s", diff)
	}
}

func TestSetProperty(t *testing.T) {
	n := NewNode("node")
	n.Entries = []*Entry{
		NewProperty("a", 1),
		NewArgument("arg"),
		NewProperty("b", 2),
		NewProperty("a", 3),
	}
	n.Entries[3].Value.Representation = Str("0x3")
	last := n.Entries[3]

	got := n.SetProperty("a", 4)
	if got != last {
		t.Errorf("SetProperty should update the last match")
	}
	if got.Value.Representation != nil {
		t.Errorf("SetProperty should clear the representation")
	}
	var names []string
	for _, e := range n.Entries {
		names = append(names, e.GetName())
	}
	if diff := cmp.Diff([]string{"", "b", "a"}, names); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	n.SetProperty("c", nil)
	if v, ok := n.GetProperty("c"); !ok || v != nil {
		t.Errorf("GetProperty(c): got %v %t", v, ok)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, n.PropertyNames()); diff != "" {
		t.Errorf("property names mismatch (-want +got):\n%s", diff)
	}
	if !n.DeleteProperty("b") || n.HasProperty("b") || n.DeleteProperty("b") {
		t.Errorf("DeleteProperty(b) failed")
	}
}

func TestGetProperties(t *testing.T) {
	n := NewNode("node")
	n.Entries = []*Entry{NewProperty("a", 1), NewProperty("a", 2), NewProperty("b", "x")}
	want := map[string]any{"a": int64(2), "b": "x"}
	if diff := cmp.Diff(want, n.GetProperties()); diff != "" {
		t.Errorf("properties mismatch (-want +got):\n%s", diff)
	}
}

func TestHasChildren(t *testing.T) {
	n := NewNode("n")
	if n.HasChildren() {
		t.Errorf("nil children")
	}
	n.Children = NewDocument()
	if n.HasChildren() {
		t.Errorf("empty children")
	}
	n.AppendNode(NewNode("c"))
	if !n.HasChildren() {
		t.Errorf("expected children")
	}
}

func TestFind(t *testing.T) {
	a1 := NewNode("a")
	a1.AddArgument(1)
	a2 := NewNode("a")
	a2.AddArgument(2)
	a3 := NewNode("a")
	a3.AddArgument(1)
	a3.AddArgument(2)
	b := NewNode("b")
	d := NewDocument(a1, a2, a3, b)

	if got := d.FindNodeByName("a"); got != a3 {
		t.Errorf("FindNodeByName should return the last match")
	}
	if got := d.FindNodesByName("a"); len(got) != 3 {
		t.Errorf("FindNodesByName: got %d want 3", len(got))
	}
	if got := d.FindParameterizedNode("a"); got != a2 {
		t.Errorf("FindParameterizedNode(a) should skip nodes with two arguments")
	}
	if got := d.FindParameterizedNode("a", 1); got != a1 {
		t.Errorf("FindParameterizedNode(a, 1) got %v", got)
	}
	if got := d.FindParameterizedNode("a", "1"); got != nil {
		t.Errorf("FindParameterizedNode(a, \"1\") should not match an int")
	}
	if got := d.FindNodeByName("zzz"); got != nil {
		t.Errorf("unexpected match")
	}
	parent := NewNode("p")
	if parent.FindNodeByName("a") != nil {
		t.Errorf("no children, no match")
	}
}

func TestDocumentEdits(t *testing.T) {
	a, b, c, x := NewNode("a"), NewNode("b"), NewNode("c"), NewNode("x")
	d := NewDocument(a, c)
	if !d.InsertNodeBefore(c, b) || !d.InsertNodeAfter(c, x) {
		t.Fatal("insert failed")
	}
	if d.InsertNodeAfter(NewNode("nope"), x) {
		t.Errorf("insert relative to a missing node should fail")
	}
	if !d.RemoveNode(a) || d.RemoveNode(a) {
		t.Errorf("RemoveNode")
	}
	y := NewNode("y")
	if !d.ReplaceNode(x, y) {
		t.Errorf("ReplaceNode")
	}
	var names []string
	for _, n := range d.Nodes {
		names = append(names, n.GetName())
	}
	if diff := cmp.Diff([]string{"b", "c", "y"}, names); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestSettersClearRepresentation(t *testing.T) {
	n := &Node{
		Name: &Identifier{Name: "n", Representation: Str(`"n"`)},
		Tag:  &Tag{Name: "t", Representation: Str(`"t"`)},
	}
	n.SetName("m")
	if n.Name.Representation != nil || n.GetName() != "m" {
		t.Errorf("SetName did not clear the representation")
	}
	n.Tag.SetName("u")
	if n.Tag.Representation != nil {
		t.Errorf("Tag.SetName did not clear the representation")
	}
	if tag, ok := n.GetTag(); !ok || tag != "u" {
		t.Errorf("GetTag: got %q %t", tag, ok)
	}
	n.RemoveTag()
	if _, ok := n.GetTag(); ok {
		t.Errorf("RemoveTag")
	}

	e := NewArgument(1)
	e.SetTag("u8")
	if tag, _ := e.GetTag(); tag != "u8" {
		t.Errorf("entry tag: got %q", tag)
	}
	e.SetName("p")
	if !e.IsProperty() {
		t.Errorf("SetName should turn an argument into a property")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{1, int64(1)},
		{int8(-2), int64(-2)},
		{uint16(3), int64(3)},
		{uint64(1 << 63), float64(1 << 63)},
		{float32(0.5), 0.5},
		{"s", "s"},
		{nil, nil},
		{true, true},
	}
	for _, tc := range tests {
		got, err := Normalize(tc.in)
		if err != nil {
			t.Errorf("Normalize(%v): %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Normalize(%v) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
	if _, err := Normalize([]int{1}); err == nil {
		t.Errorf("expected error for a slice")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("NewValue should panic on unsupported values")
		}
	}()
	NewValue(struct{}{})
}

func TestClone(t *testing.T) {
	n := NewNode("n")
	n.AddArgument(1).Leading = Str("  ")
	n.AppendNode(NewNode("child"))
	c := n.Clone()
	if diff := cmp.Diff(n, c); diff != "" {
		t.Errorf("clone mismatch (-want +got):\n%s", diff)
	}
	*c.Entries[0].Leading = "\t"
	c.Children.Nodes[0].SetName("other")
	if *n.Entries[0].Leading != "  " || n.Children.Nodes[0].GetName() != "child" {
		t.Errorf("clone shares state with the original")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{DocumentKind, NodeKind, EntryKind, IdentifierKind, ValueKind, TagKind} {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil || back != k {
			t.Errorf("%s: got %s %v", k, back, err)
		}
	}
}
