package ir

import "fmt"

// Identifier is a node or property name.
type Identifier struct {
	Name string
	// Representation is the source text of the name, bare or quoted.
	Representation *string
	Loc            *Location
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{Name: name}
}

func (*Identifier) Kind() Kind { return IdentifierKind }
func (*Identifier) element()   {}

func (id *Identifier) GetName() string {
	return id.Name
}

func (id *Identifier) SetName(name string) {
	id.Name = name
	id.Representation = nil
}

func (id *Identifier) Clone() *Identifier {
	if id == nil {
		return nil
	}
	return &Identifier{Name: id.Name, Representation: cloneStr(id.Representation), Loc: cloneLoc(id.Loc)}
}

// Tag is a type annotation, written (name) before a node, property
// name or value.  A Suffix tag is written after a number instead, as
// in 10px or 10#px.
type Tag struct {
	Name           string
	Representation *string
	// Leading and Trailing are the whitespace inside the parentheses.
	Leading  *string
	Trailing *string
	Suffix   bool
	Loc      *Location
}

func NewTag(name string) *Tag {
	return &Tag{Name: name}
}

func (*Tag) Kind() Kind { return TagKind }
func (*Tag) element()   {}

func (t *Tag) GetName() string {
	return t.Name
}

func (t *Tag) SetName(name string) {
	t.Name = name
	t.Representation = nil
}

func (t *Tag) Clone() *Tag {
	if t == nil {
		return nil
	}
	return &Tag{
		Name:           t.Name,
		Representation: cloneStr(t.Representation),
		Leading:        cloneStr(t.Leading),
		Trailing:       cloneStr(t.Trailing),
		Suffix:         t.Suffix,
		Loc:            cloneLoc(t.Loc),
	}
}

// Value is a primitive value: string, int64, float64, bool or nil.
type Value struct {
	Value any
	// Representation is the source text of the value.
	Representation *string
	Tag            *Tag
	// BetweenTagAndValue is the whitespace between a prefix tag and the
	// value.
	BetweenTagAndValue *string
	Loc                *Location
}

// NewValue returns a Value holding v.  It panics if v is not a
// supported primitive, see [Normalize].
func NewValue(v any) *Value {
	n, err := Normalize(v)
	if err != nil {
		panic(err)
	}
	return &Value{Value: n}
}

func (*Value) Kind() Kind { return ValueKind }
func (*Value) element()   {}

func (v *Value) GetValue() any {
	return v.Value
}

// SetValue sets the value and clears its representation.  It panics if
// x is not a supported primitive.
func (v *Value) SetValue(x any) {
	n, err := Normalize(x)
	if err != nil {
		panic(err)
	}
	v.Value = n
	v.Representation = nil
}

func (v *Value) GetTag() (string, bool) {
	if v.Tag == nil {
		return "", false
	}
	return v.Tag.Name, true
}

func (v *Value) SetTag(name string) {
	v.Tag = NewTag(name)
}

func (v *Value) RemoveTag() {
	v.Tag = nil
	v.BetweenTagAndValue = nil
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	return &Value{
		Value:              v.Value,
		Representation:     cloneStr(v.Representation),
		Tag:                v.Tag.Clone(),
		BetweenTagAndValue: cloneStr(v.BetweenTagAndValue),
		Loc:                cloneLoc(v.Loc),
	}
}

// Normalize converts v to one of the primitive types held in a Value:
// string, int64, float64, bool or nil.
func Normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil, string, int64, float64, bool:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint:
		if uint64(x) <= 1<<63-1 {
			return int64(x), nil
		}
		return float64(x), nil
	case uint64:
		if x <= 1<<63-1 {
			return int64(x), nil
		}
		return float64(x), nil
	case float32:
		return float64(x), nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}
