package main

import (
	"fmt"

	"github.com/signadot/go-kdl/encode"
	"github.com/signadot/go-kdl/ir"
	"github.com/signadot/go-kdl/parse"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func kdlSelect(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: -e is required", cli.ErrUsage)
	}
	prog, err := compileSelect(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		doc, err := parse.ParseDocument(in.data, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
		nodes, err := selectNodes(prog, doc)
		if err != nil {
			return fmt.Errorf("error selecting in %s: %w", in.name, err)
		}
		for _, n := range nodes {
			if err := encodeTo(cfg.MainConfig, cc, encode.ClearFormat(n.Clone())); err != nil {
				return err
			}
		}
	}
	return nil
}

func compileSelect(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(nodeEnv(ir.NewNode(""), 0, "")), expr.AsBool())
}

// nodeEnv is what a select expression sees of n.
func nodeEnv(n *ir.Node, depth int, parent string) map[string]any {
	tag, _ := n.GetTag()
	args := n.GetArguments()
	if args == nil {
		args = []any{}
	}
	props := n.GetProperties()
	if props == nil {
		props = map[string]any{}
	}
	children := []any{}
	if n.Children != nil {
		for _, c := range n.Children.Nodes {
			children = append(children, c.GetName())
		}
	}
	return map[string]any{
		"name":        n.GetName(),
		"tag":         tag,
		"args":        args,
		"props":       props,
		"depth":       depth,
		"parent":      parent,
		"children":    children,
		"hasChildren": n.Children != nil,
		"arg": func(i int) any {
			v, _ := n.GetArgument(i)
			return v
		},
		"prop": func(name string) any {
			v, _ := n.GetProperty(name)
			return v
		},
	}
}

// selectNodes returns the nodes of doc, at any depth and in document
// order, for which prog is true.
func selectNodes(prog *vm.Program, doc *ir.Document) ([]*ir.Node, error) {
	var res []*ir.Node
	var walk func(d *ir.Document, depth int, parent string) error
	walk = func(d *ir.Document, depth int, parent string) error {
		for _, n := range d.Nodes {
			out, err := expr.Run(prog, nodeEnv(n, depth, parent))
			if err != nil {
				return fmt.Errorf("node %q: %w", n.GetName(), err)
			}
			if ok, _ := out.(bool); ok {
				res = append(res, n)
			}
			if n.Children != nil {
				if err := walk(n.Children, depth+1, n.GetName()); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(doc, 0, ""); err != nil {
		return nil, err
	}
	return res, nil
}
