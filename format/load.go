package format

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-kdl/ir"
	"github.com/signadot/go-kdl/parse"
	"github.com/signadot/go-kdl/token"
)

// Load reads a document dumped in format f.  JSON and YAML input has
// the layout written by [Dump] and gives a document without formatting.
// The strings "#inf", "#-inf" and "#nan" load as the corresponding
// floats.
func Load(data []byte, f Format, opts ...parse.ParseOption) (*ir.Document, error) {
	var d dumpDocument
	switch f {
	case KDLFormat:
		return parse.ParseDocument(data, opts...)
	case JSONFormat:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&d); err != nil {
			return nil, err
		}
	case YAMLFormat:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
	return d.document()
}

func (d *dumpDocument) document() (*ir.Document, error) {
	doc := ir.NewDocument()
	for _, dn := range d.Nodes {
		n, err := dn.node()
		if err != nil {
			return nil, err
		}
		doc.AppendNode(n)
	}
	return doc, nil
}

func (dn *dumpNode) node() (*ir.Node, error) {
	if dn == nil {
		return nil, fmt.Errorf("null node")
	}
	n := ir.NewNode(dn.Name)
	if dn.Tag != "" {
		n.SetTag(dn.Tag)
	}
	for _, a := range dn.Args {
		v, err := loadValue(a.Value)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", dn.Name, err)
		}
		e := &ir.Entry{Value: v}
		if a.Tag != "" {
			v.SetTag(a.Tag)
		}
		n.Entries = append(n.Entries, e)
	}
	for _, p := range dn.Props {
		v, err := loadValue(p.Value)
		if err != nil {
			return nil, fmt.Errorf("node %q property %q: %w", dn.Name, p.Name, err)
		}
		if p.Tag != "" {
			v.SetTag(p.Tag)
		}
		e := &ir.Entry{Name: ir.NewIdentifier(p.Name), Value: v}
		if p.NameTag != "" {
			e.NameTag = ir.NewTag(p.NameTag)
		}
		n.Entries = append(n.Entries, e)
	}
	if dn.Children != nil {
		n.Children = ir.NewDocument()
		for _, dc := range *dn.Children {
			c, err := dc.node()
			if err != nil {
				return nil, err
			}
			n.Children.AppendNode(c)
		}
	}
	return n, nil
}

func loadValue(v any) (*ir.Value, error) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.NewValue(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return ir.NewValue(f), nil
	case string:
		if len(x) > 1 && x[0] == '#' {
			if kv, ok := token.KeywordValue(x[1:]); ok {
				if f, ok := kv.(float64); ok {
					return ir.NewValue(f), nil
				}
			}
		}
		return ir.NewValue(x), nil
	}
	n, err := ir.Normalize(v)
	if err != nil {
		return nil, err
	}
	return ir.NewValue(n), nil
}
