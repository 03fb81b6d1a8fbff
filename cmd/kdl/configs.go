package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-kdl/encode"
	"github.com/signadot/go-kdl/format"
	"github.com/signadot/go-kdl/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='output with color'"`
	Suffix bool `cli:"name=suffix desc='accept number suffixes such as 10px'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.NumberSuffixes(cfg.Suffix)}
}

func (cfg *MainConfig) inFormat(def format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return def
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

// useColor reports whether output to w is colored: when -color is
// given, or when it is not and w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if !cfg.useColor(w) {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
}

type FmtConfig struct {
	*MainConfig
	Canonical bool `cli:"name=c aliases=canonical desc='strip formatting and sort properties'"`
	Tidy      bool `cli:"name=t aliases=tidy desc='reset the layout, keeping comments'"`
	Write     bool `cli:"name=w desc='write the result back to the files'"`
	Diff      bool `cli:"name=d desc='print a diff instead of the result'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='do not print source excerpts'"`

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig
	Load *cli.Command
}

type TokensConfig struct {
	*MainConfig
	Query bool `cli:"name=q desc='tokenize with the query grammar'"`

	Tokens *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='expression a node must satisfy'"`

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Canonical  bool `cli:"name=c aliases=canonical desc='compare canonical forms'"`
	MergePatch bool `cli:"name=m aliases=merge-patch desc='print a json merge patch of the dumps'"`
	Context    int  `cli:"name=U desc='lines of context'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='json patch (rfc 6902) file'"`

	Patch *cli.Command
}
