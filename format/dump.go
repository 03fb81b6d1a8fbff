package format

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-kdl/encode"
	"github.com/signadot/go-kdl/ir"
)

type dumpDocument struct {
	Nodes []*dumpNode `json:"nodes" yaml:"nodes"`
}

type dumpNode struct {
	Tag      string       `json:"tag,omitempty" yaml:"tag,omitempty"`
	Name     string       `json:"name" yaml:"name"`
	Args     []*dumpValue `json:"args,omitempty" yaml:"args,omitempty"`
	Props    []*dumpProp  `json:"props,omitempty" yaml:"props,omitempty"`
	Children *[]*dumpNode `json:"children,omitempty" yaml:"children,omitempty"`
}

type dumpValue struct {
	Tag   string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Value any    `json:"value" yaml:"value"`
}

type dumpProp struct {
	Name    string `json:"name" yaml:"name"`
	NameTag string `json:"nameTag,omitempty" yaml:"nameTag,omitempty"`
	Tag     string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Value   any    `json:"value" yaml:"value"`
}

// Dump writes e to w in format f.
func Dump(w io.Writer, e ir.Element, f Format) error {
	if f == KDLFormat {
		return encode.Encode(e, w)
	}
	d, err := Tree(e)
	if err != nil {
		return err
	}
	switch f {
	case JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case YAMLFormat:
		data, err := yaml.Marshal(d)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// Tree returns the plain structure of e, as dumped in JSON and YAML.
func Tree(e ir.Element) (any, error) {
	switch x := e.(type) {
	case *ir.Document:
		return &dumpDocument{Nodes: dumpNodes(x)}, nil
	case *ir.Node:
		return dumpNodeOf(x), nil
	case *ir.Entry:
		if x.IsProperty() {
			return dumpPropOf(x), nil
		}
		return dumpValueOf(x.Value), nil
	case *ir.Value:
		return dumpValueOf(x), nil
	case *ir.Identifier:
		return x.Name, nil
	case *ir.Tag:
		return x.Name, nil
	}
	return nil, fmt.Errorf("cannot dump %T", e)
}

func dumpNodes(d *ir.Document) []*dumpNode {
	res := make([]*dumpNode, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		res = append(res, dumpNodeOf(n))
	}
	return res
}

func dumpNodeOf(n *ir.Node) *dumpNode {
	res := &dumpNode{Name: n.GetName()}
	res.Tag, _ = n.GetTag()
	for _, e := range n.Entries {
		if e.IsArgument() {
			res.Args = append(res.Args, dumpValueOf(e.Value))
			continue
		}
		res.Props = append(res.Props, dumpPropOf(e))
	}
	if n.Children != nil {
		children := dumpNodes(n.Children)
		res.Children = &children
	}
	return res
}

func dumpPropOf(e *ir.Entry) *dumpProp {
	v := dumpValueOf(e.Value)
	p := &dumpProp{Name: e.GetName(), Tag: v.Tag, Value: v.Value}
	if e.NameTag != nil {
		p.NameTag = e.NameTag.Name
	}
	return p
}

func dumpValueOf(v *ir.Value) *dumpValue {
	if v == nil {
		return &dumpValue{}
	}
	res := &dumpValue{Value: plain(v.Value)}
	res.Tag, _ = v.GetTag()
	return res
}

// plain replaces values JSON cannot hold with their KDL keyword text.
func plain(v any) any {
	f, ok := v.(float64)
	if !ok {
		return v
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return encode.FormatValue(f)
	}
	return f
}
