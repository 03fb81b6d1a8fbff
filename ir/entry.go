package ir

// Entry is an argument (Name == nil) or a property of a node.
type Entry struct {
	Name  *Identifier
	Value *Value
	// NameTag is a type annotation written before a property name.
	NameTag           *Tag
	BetweenTagAndName *string

	Leading *string
	// Equals is the '=' of a property with its surrounding whitespace.
	Equals   *string
	Trailing *string
	Loc      *Location
}

func NewArgument(v any) *Entry {
	return &Entry{Value: NewValue(v)}
}

func NewProperty(name string, v any) *Entry {
	return &Entry{Name: NewIdentifier(name), Value: NewValue(v)}
}

func (*Entry) Kind() Kind { return EntryKind }
func (*Entry) element()   {}

func (e *Entry) IsArgument() bool {
	return e.Name == nil
}

func (e *Entry) IsProperty() bool {
	return e.Name != nil
}

// GetName returns the property name, or "" for an argument.
func (e *Entry) GetName() string {
	if e.Name == nil {
		return ""
	}
	return e.Name.Name
}

// SetName sets the property name, turning an argument into a property.
func (e *Entry) SetName(name string) {
	if e.Name == nil {
		e.Name = NewIdentifier(name)
		return
	}
	e.Name.SetName(name)
}

func (e *Entry) GetValue() any {
	if e.Value == nil {
		return nil
	}
	return e.Value.Value
}

func (e *Entry) SetValue(v any) {
	if e.Value == nil {
		e.Value = NewValue(v)
		return
	}
	e.Value.SetValue(v)
}

// GetTag returns the tag of the entry's value.
func (e *Entry) GetTag() (string, bool) {
	if e.Value == nil {
		return "", false
	}
	return e.Value.GetTag()
}

func (e *Entry) SetTag(name string) {
	if e.Value == nil {
		e.Value = NewValue(nil)
	}
	e.Value.SetTag(name)
}

func (e *Entry) RemoveTag() {
	if e.Value != nil {
		e.Value.RemoveTag()
	}
}

func (e *Entry) Clone() *Entry {
	return &Entry{
		Name:              e.Name.Clone(),
		Value:             e.Value.Clone(),
		NameTag:           e.NameTag.Clone(),
		BetweenTagAndName: cloneStr(e.BetweenTagAndName),
		Leading:           cloneStr(e.Leading),
		Equals:            cloneStr(e.Equals),
		Trailing:          cloneStr(e.Trailing),
		Loc:               cloneLoc(e.Loc),
	}
}
