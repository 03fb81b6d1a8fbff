package main

import (
	"fmt"

	"github.com/signadot/go-kdl/format"
	"github.com/signadot/go-kdl/parse"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	f := cfg.outFormat(format.JSONFormat)
	for i, in := range ins {
		doc, err := parse.ParseDocument(in.data, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
		if f.IsYAML() && i > 0 {
			cc.Out.Write([]byte("---\n"))
		}
		if err := format.Dump(cc.Out, doc, f); err != nil {
			return fmt.Errorf("error dumping %s: %w", in.name, err)
		}
	}
	return nil
}

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	f := cfg.inFormat(format.JSONFormat)
	for _, in := range ins {
		doc, err := format.Load(in.data, f, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", in.name, err)
		}
		if err := encodeTo(cfg.MainConfig, cc, doc); err != nil {
			return err
		}
	}
	return nil
}
