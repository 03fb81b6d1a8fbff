package ir

import (
	"fmt"

	"github.com/signadot/go-kdl/token"
)

type Kind int

const (
	DocumentKind Kind = iota
	NodeKind
	EntryKind
	IdentifierKind
	ValueKind
	TagKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		DocumentKind:   "document",
		NodeKind:       "node",
		EntryKind:      "entry",
		IdentifierKind: "identifier",
		ValueKind:      "value",
		TagKind:        "tag",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"document":   DocumentKind,
		"node":       NodeKind,
		"entry":      EntryKind,
		"identifier": IdentifierKind,
		"value":      ValueKind,
		"tag":        TagKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Element is implemented by *Document, *Node, *Entry, *Identifier,
// *Value and *Tag.
type Element interface {
	Kind() Kind
	element()
}

// Location is the source span of a parsed element.
type Location struct {
	Start token.Pos
	End   token.Pos
}

// GetLocation returns the location recorded when e was parsed, or nil.
func GetLocation(e Element) *Location {
	switch x := e.(type) {
	case *Document:
		return x.Loc
	case *Node:
		return x.Loc
	case *Entry:
		return x.Loc
	case *Identifier:
		return x.Loc
	case *Value:
		return x.Loc
	case *Tag:
		return x.Loc
	}
	return nil
}

// Str returns a pointer to s, for the formatting fields.
func Str(s string) *string {
	return &s
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	return Str(*s)
}

func cloneLoc(l *Location) *Location {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
