package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/go-kdl/encode"
	"github.com/signadot/go-kdl/format"
	"github.com/signadot/go-kdl/ir"
	"github.com/signadot/go-kdl/libdiff"
	"github.com/signadot/go-kdl/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	var docs [2]*ir.Document
	for i, file := range args {
		in, err := readInput(cc, file)
		if err != nil {
			return err
		}
		docs[i], err = parse.ParseDocument(in.data, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if cfg.Canonical {
			encode.ClearFormat(docs[i])
		}
	}
	if cfg.MergePatch {
		p, err := mergePatch(docs[0], docs[1])
		if err != nil {
			return err
		}
		if string(p) == "{}" {
			return nil
		}
		fmt.Fprintf(cc.Out, "%s\n", p)
		return cli.ExitCodeErr(1)
	}
	d, changed := libdiff.Lines(encode.Format(docs[0]), encode.Format(docs[1]), cfg.Context)
	if !changed {
		return nil
	}
	fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n%s", args[0], args[1], d)
	return cli.ExitCodeErr(1)
}

// mergePatch returns the json merge patch (rfc 7396) taking the json
// dump of from to that of to.
func mergePatch(from, to *ir.Document) ([]byte, error) {
	a, err := jsonDump(from)
	if err != nil {
		return nil, err
	}
	b, err := jsonDump(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}

func jsonDump(doc *ir.Document) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := format.Dump(buf, doc, format.JSONFormat); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
