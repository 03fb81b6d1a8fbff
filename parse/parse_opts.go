package parse

import (
	"github.com/signadot/go-kdl/ir"
	"github.com/signadot/go-kdl/token"
)

type parseOpts struct {
	as        ir.Kind
	locations bool
	suffixes  bool
}

func (o *parseOpts) tokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{token.NumberSuffixes(o.suffixes)}
}

type ParseOption func(*parseOpts)

// ParseAs selects what the input holds: a document (the default), a
// node, an entry, a value or an identifier.
func ParseAs(k ir.Kind) ParseOption {
	return func(o *parseOpts) { o.as = k }
}

// ParseLocations records source locations in the Loc field of every
// element.
func ParseLocations(v bool) ParseOption {
	return func(o *parseOpts) { o.locations = v }
}

// NumberSuffixes accepts suffix type annotations on numbers, as in
// 10px or 10#px.
func NumberSuffixes(v bool) ParseOption {
	return func(o *parseOpts) { o.suffixes = v }
}
