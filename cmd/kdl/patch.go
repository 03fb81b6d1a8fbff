package main

import (
	"fmt"
	"os"

	"github.com/signadot/go-kdl/format"
	"github.com/signadot/go-kdl/ir"
	"github.com/signadot/go-kdl/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: -p is required", cli.ErrUsage)
	}
	d, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", cfg.PatchFile, err)
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
		res, err := applyPatch(ops, doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", in.name, err)
		}
		if err := encodeTo(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}

// applyPatch applies ops to the json dump of doc and loads the result.
func applyPatch(ops jsonpatch.Patch, doc *ir.Document) (*ir.Document, error) {
	d, err := jsonDump(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return format.Load(out, format.JSONFormat)
}
