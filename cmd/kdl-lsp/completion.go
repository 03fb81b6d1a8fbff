package main

import (
	"context"
	"sort"
	"strings"

	"github.com/signadot/go-kdl/ir"

	"go.lsp.dev/protocol"
)

var keywords = []struct {
	label string
	doc   string
}{
	{"#true", "Boolean true"},
	{"#false", "Boolean false"},
	{"#null", "The null value"},
	{"#inf", "Positive infinity"},
	{"#-inf", "Negative infinity"},
	{"#nan", "Not a number"},
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	prefix := linePrefix(doc.content, int(params.Position.Line), int(params.Position.Character))
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions(doc.doc, prefix),
	}, nil
}

// linePrefix returns the text of the given line before the character
// column.
func linePrefix(content string, line, char int) string {
	idx := newLineIndex(content)
	if line >= len(idx.starts) {
		return ""
	}
	start := idx.starts[line]
	return content[start:idx.offset(protocol.Position{Line: uint32(line), Character: uint32(char)})]
}

func completions(doc *ir.Document, prefix string) []protocol.CompletionItem {
	word := prefix[strings.LastIndexAny(prefix, " \t;{}()=")+1:]
	if strings.HasPrefix(word, "#") {
		return keywordItems()
	}
	rest := strings.TrimSpace(strings.TrimSuffix(prefix, word))
	if rest == "" || strings.HasSuffix(rest, "{") || strings.HasSuffix(rest, ";") {
		return nameItems(nodeNames(doc), protocol.CompletionItemKindClass, "")
	}
	node := rest[strings.LastIndexAny(rest, ";{}")+1:]
	fields := strings.Fields(node)
	if len(fields) == 0 {
		return nil
	}
	name := fields[0]
	if i := strings.IndexByte(name, ')'); i >= 0 {
		name = name[i+1:]
	}
	return nameItems(propertyNames(doc, name), protocol.CompletionItemKindProperty, "=")
}

func keywordItems() []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(keywords))
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{
			Label:      kw.label,
			Kind:       protocol.CompletionItemKindKeyword,
			InsertText: kw.label,
			Documentation: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: kw.doc,
			},
		})
	}
	return items
}

func nameItems(names []string, kind protocol.CompletionItemKind, suffix string) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		items = append(items, protocol.CompletionItem{
			Label:      name,
			Kind:       kind,
			InsertText: name + suffix,
		})
	}
	return items
}

// nodeNames returns the sorted names of all nodes in doc.
func nodeNames(doc *ir.Document) []string {
	seen := map[string]bool{}
	walk(doc, func(n *ir.Node) {
		seen[n.GetName()] = true
	})
	return sortedKeys(seen)
}

// propertyNames returns the sorted property names used on nodes called
// name.
func propertyNames(doc *ir.Document, name string) []string {
	seen := map[string]bool{}
	walk(doc, func(n *ir.Node) {
		if n.GetName() != name {
			return
		}
		for _, p := range n.PropertyNames() {
			seen[p] = true
		}
	})
	return sortedKeys(seen)
}

func walk(doc *ir.Document, f func(*ir.Node)) {
	if doc == nil {
		return
	}
	for _, n := range doc.Nodes {
		f(n)
		walk(n.Children, f)
	}
}

func sortedKeys(m map[string]bool) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		if k != "" {
			res = append(res, k)
		}
	}
	sort.Strings(res)
	return res
}
