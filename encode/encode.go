package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/go-kdl/debug"
	"github.com/signadot/go-kdl/ir"
	"github.com/signadot/go-kdl/token"
)

type EncState struct {
	b     strings.Builder
	Color func(ColorAttr, string) string
}

// Encode writes the KDL text of e to w.
func Encode(e ir.Element, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(e, es); err != nil {
		return err
	}
	if debug.Format() {
		debug.Logf("format %s: %q\n", e.Kind(), es.b.String())
	}
	_, err := io.WriteString(w, es.b.String())
	return err
}

// Format returns the KDL text of e.
func Format(e ir.Element) string {
	es := &EncState{}
	if err := encode(e, es); err != nil {
		panic(err)
	}
	return es.b.String()
}

func encode(e ir.Element, es *EncState) error {
	switch x := e.(type) {
	case *ir.Document:
		encodeDocument(x, es, 0, true)
	case *ir.Node:
		encodeNode(x, es, 0)
	case *ir.Entry:
		encodeEntry(x, es)
	case *ir.Value:
		encodeValue(x, es)
	case *ir.Identifier:
		writeIdentifier(x, es, NodeNameColor)
	case *ir.Tag:
		encodeTag(x, es)
	default:
		return fmt.Errorf("cannot encode %T", e)
	}
	return nil
}

func (es *EncState) write(attr ColorAttr, s string) {
	if es.Color != nil {
		s = es.Color(attr, s)
	}
	es.b.WriteString(s)
}

// writeSpace writes a formatting field, or def when it is nil.
func (es *EncState) writeSpace(s *string, def string) {
	if s == nil {
		es.b.WriteString(def)
		return
	}
	if es.Color != nil && strings.TrimSpace(*s) != "" {
		es.b.WriteString(es.Color(CommentColor, *s))
		return
	}
	es.b.WriteString(*s)
}

func (es *EncState) writeEquals(eq *string) {
	if eq == nil {
		es.write(SepColor, "=")
		return
	}
	if es.Color == nil {
		es.b.WriteString(*eq)
		return
	}
	i := equalsIndex(*eq)
	if i < 0 {
		es.writeSpace(eq, "")
		return
	}
	before, after := (*eq)[:i], (*eq)[i+1:]
	es.writeSpace(&before, "")
	es.write(SepColor, "=")
	es.writeSpace(&after, "")
}

// equalsIndex finds the '=' of a property separator, skipping block
// comments before it.
func equalsIndex(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], "/*"):
			depth++
			i++
		case depth > 0 && strings.HasPrefix(s[i:], "*/"):
			depth--
			i++
		case depth == 0 && s[i] == '=':
			return i
		}
	}
	return -1
}

func indent(depth int) string {
	return strings.Repeat("\t", depth)
}

// encodeDocument writes the nodes of d.  depth is the depth of its
// nodes.
func encodeDocument(d *ir.Document, es *EncState, depth int, root bool) {
	leading, trailing := "", ""
	if !root && len(d.Nodes) > 0 {
		leading, trailing = "\n", indent(depth-1)
	}
	es.writeSpace(d.Leading, leading)
	for _, n := range d.Nodes {
		encodeNode(n, es, depth)
	}
	es.writeSpace(d.Trailing, trailing)
}

func encodeNode(n *ir.Node, es *EncState, depth int) {
	es.writeSpace(n.Leading, indent(depth))
	if n.Tag != nil {
		encodeTag(n.Tag, es)
		es.writeSpace(n.BetweenTagAndName, "")
	}
	if n.Name == nil {
		es.write(NodeNameColor, `""`)
	} else {
		writeIdentifier(n.Name, es, NodeNameColor)
	}
	for _, e := range n.Entries {
		encodeEntry(e, es)
	}
	if n.Children != nil {
		es.writeSpace(n.BeforeChildren, " ")
		es.write(SepColor, "{")
		encodeDocument(n.Children, es, depth+1, false)
		es.write(SepColor, "}")
	}
	es.writeSpace(n.Trailing, "\n")
}

func encodeEntry(e *ir.Entry, es *EncState) {
	es.writeSpace(e.Leading, " ")
	if e.Name != nil {
		if e.NameTag != nil {
			encodeTag(e.NameTag, es)
			es.writeSpace(e.BetweenTagAndName, "")
		}
		writeIdentifier(e.Name, es, PropColor)
		es.writeEquals(e.Equals)
	}
	if e.Value == nil {
		es.write(KeywordColor, "#null")
	} else {
		encodeValue(e.Value, es)
	}
	es.writeSpace(e.Trailing, "")
}

func writeIdentifier(id *ir.Identifier, es *EncState, attr ColorAttr) {
	if id.Representation != nil {
		es.write(attr, *id.Representation)
		return
	}
	es.write(attr, token.FormatIdentifier(id.Name))
}

func encodeTag(t *ir.Tag, es *EncState) {
	es.write(SepColor, "(")
	es.writeSpace(t.Leading, "")
	// a suffix representation is not valid inside parentheses
	if t.Representation != nil && !t.Suffix {
		es.write(TagColor, *t.Representation)
	} else {
		es.write(TagColor, token.FormatIdentifier(t.Name))
	}
	es.writeSpace(t.Trailing, "")
	es.write(SepColor, ")")
}

func encodeValue(v *ir.Value, es *EncState) {
	suffix := isSuffix(v)
	if v.Tag != nil && !suffix {
		encodeTag(v.Tag, es)
		es.writeSpace(v.BetweenTagAndValue, "")
	}
	attr := valueColor(v.Value)
	if v.Representation != nil {
		es.write(attr, *v.Representation)
	} else {
		es.write(attr, FormatValue(v.Value))
	}
	if !suffix {
		return
	}
	if v.Representation != nil && v.Tag.Representation != nil {
		es.write(TagColor, *v.Tag.Representation)
		return
	}
	es.write(TagColor, "#"+v.Tag.Name)
}

// isSuffix reports whether the tag of v can be written as a number
// suffix.
func isSuffix(v *ir.Value) bool {
	if v.Tag == nil || !v.Tag.Suffix {
		return false
	}
	if v.Representation != nil && v.Tag.Representation != nil {
		return true
	}
	switch x := v.Value.(type) {
	case int64:
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return false
		}
	default:
		return false
	}
	return token.IsSuffixName(v.Tag.Name)
}

func valueColor(v any) ColorAttr {
	switch v.(type) {
	case string:
		return StringColor
	case int64, float64:
		return NumberColor
	}
	return KeywordColor
}

// FormatValue returns the canonical text of a primitive value.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "#null"
	case bool:
		if x {
			return "#true"
		}
		return "#false"
	case string:
		return token.FormatIdentifier(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x)
	}
	n, err := ir.Normalize(v)
	if err != nil {
		return token.Quote(fmt.Sprint(v))
	}
	return FormatValue(n)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "#inf"
	case math.IsInf(f, -1):
		return "#-inf"
	case math.IsNaN(f):
		return "#nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
