package encode

import (
	"strings"

	"github.com/signadot/go-kdl/ir"
)

// Tidy resets the layout of d to the canonical one while keeping its
// comments and the representation of its values.  Whitespace-only
// fields are cleared, lines holding only single-line comments are
// re-indented, and runs of blank lines between nodes shrink to one.
// Fields holding block comments or slashdashed text are kept as they
// are.  Tidy returns d.
func Tidy(d *ir.Document) *ir.Document {
	tidyDocument(d, 0)
	return d
}

func tidyDocument(d *ir.Document, depth int) {
	root := depth == 0
	opened := true
	for i, n := range d.Nodes {
		if n.Leading == nil {
			tidyNode(n, depth)
			continue
		}
		lead, prefix := *n.Leading, ""
		if i == 0 && !root {
			// the first line of the first child follows '{'
			line := firstLine(lead)
			lead = lead[len(line):]
			switch t := strings.TrimSpace(line); {
			case t == "":
			case strings.HasPrefix(t, "//") && strings.HasSuffix(line, "\n"):
				opened, prefix = false, line
			default:
				opened = false
				tidyNode(n, depth)
				continue
			}
		}
		if s, ok := reindent(lead, indent(depth), indent(depth), i == 0); ok {
			s = prefix + s
			n.Leading = &s
		} else if i == 0 {
			opened = false
		}
		tidyNode(n, depth)
	}
	if opened && blank(d.Leading) {
		d.Leading = nil
	}
	switch {
	case blank(d.Trailing):
		d.Trailing = nil
	case d.Trailing == nil:
	case root:
		if s, ok := reindent(*d.Trailing, "", "", false); ok {
			d.Trailing = &s
		}
	case len(d.Nodes) > 0:
		if s, ok := reindent(*d.Trailing, indent(depth), indent(depth-1), false); ok {
			d.Trailing = &s
		}
	}
}

func tidyNode(n *ir.Node, depth int) {
	if blank(n.BetweenTagAndName) {
		n.BetweenTagAndName = nil
	}
	if blank(n.BeforeChildren) {
		n.BeforeChildren = nil
	}
	if n.Trailing != nil {
		if t := strings.TrimSpace(*n.Trailing); t == "" || t == ";" {
			n.Trailing = nil
		}
	}
	tidyTag(n.Tag)
	for _, e := range n.Entries {
		if blank(e.Leading) {
			e.Leading = nil
		}
		if e.Equals != nil && strings.TrimSpace(*e.Equals) == "=" {
			e.Equals = nil
		}
		if blank(e.Trailing) {
			e.Trailing = nil
		}
		if blank(e.BetweenTagAndName) {
			e.BetweenTagAndName = nil
		}
		tidyTag(e.NameTag)
		if e.Value != nil {
			if blank(e.Value.BetweenTagAndValue) {
				e.Value.BetweenTagAndValue = nil
			}
			tidyTag(e.Value.Tag)
		}
	}
	if n.Children != nil {
		tidyDocument(n.Children, depth+1)
	}
}

func tidyTag(t *ir.Tag) {
	if t == nil {
		return
	}
	if blank(t.Leading) {
		t.Leading = nil
	}
	if blank(t.Trailing) {
		t.Trailing = nil
	}
}

func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s
	}
	return s[:i+1]
}

// reindent rewrites whitespace made of whole lines, each blank or a
// single-line comment, followed by the indentation of what comes next.
// Comment lines get lineIndent, blank lines shrink to one and the
// result ends with finalIndent.  Leading blank lines are dropped if
// dropBlank is set.  ok is false if s has any other content.
func reindent(s, lineIndent, finalIndent string, dropBlank bool) (res string, ok bool) {
	if strings.Contains(s, "/*") || strings.Contains(s, "/-") || strings.Contains(s, "\\") {
		return "", false
	}
	segs := strings.Split(s, "\n")
	if strings.TrimSpace(segs[len(segs)-1]) != "" {
		return "", false
	}
	var b strings.Builder
	pending := false
	for _, seg := range segs[:len(segs)-1] {
		t := strings.TrimSpace(seg)
		if t == "" {
			pending = !dropBlank || b.Len() > 0
			continue
		}
		if !strings.HasPrefix(t, "//") {
			return "", false
		}
		if pending {
			b.WriteByte('\n')
			pending = false
		}
		b.WriteString(lineIndent)
		b.WriteString(t)
		b.WriteByte('\n')
	}
	if pending {
		b.WriteByte('\n')
	}
	b.WriteString(finalIndent)
	return b.String(), true
}
