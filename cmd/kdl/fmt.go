package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-kdl/encode"
	"github.com/signadot/go-kdl/libdiff"
	"github.com/signadot/go-kdl/parse"

	"github.com/scott-cotton/cli"
)

func kdlFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && cfg.Diff {
		return fmt.Errorf("%w: -w and -d are exclusive", cli.ErrUsage)
	}
	if cfg.Canonical && cfg.Tidy {
		return fmt.Errorf("%w: -c and -t are exclusive", cli.ErrUsage)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	changed := false
	for _, in := range ins {
		doc, err := parse.ParseDocument(in.data, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
		switch {
		case cfg.Canonical:
			encode.ClearFormat(doc)
		case cfg.Tidy:
			encode.Tidy(doc)
		}
		switch {
		case cfg.Diff:
			d, ch := libdiff.Lines(string(in.data), encode.Format(doc), 3)
			if ch {
				changed = true
				fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n%s", in.name, in.name, d)
			}
		case cfg.Write:
			out := []byte(encode.Format(doc))
			if bytes.Equal(out, in.data) {
				continue
			}
			if err := writeFile(in.name, out); err != nil {
				return err
			}
		default:
			if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
		}
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeFile(name string, d []byte) error {
	st, err := os.Stat(name)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(name, os.O_TRUNC|os.O_WRONLY, st.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, bytes.NewReader(d)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
