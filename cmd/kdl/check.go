package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-kdl/parse"
	"github.com/signadot/go-kdl/token"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	rep := &reporter{w: cc.Out, excerpts: !cfg.Quiet}
	if cfg.useColor(cc.Out) {
		rep.errColor = color.New(color.FgRed, color.Bold).SprintFunc()
		rep.posColor = color.New(color.Bold).SprintFunc()
	}
	n := 0
	for _, in := range ins {
		_, err := parse.ParseDocument(in.data, cfg.parseOpts()...)
		if err == nil {
			continue
		}
		errs := token.Errors(err)
		if errs == nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
		n += len(errs)
		for _, e := range errs {
			rep.report(in, e)
		}
	}
	if n > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

type reporter struct {
	w        io.Writer
	excerpts bool
	errColor func(...any) string
	posColor func(...any) string
}

func (r *reporter) report(in input, e *token.Error) {
	errColor, posColor := fmt.Sprint, fmt.Sprint
	if r.errColor != nil {
		errColor, posColor = r.errColor, r.posColor
	}
	p := e.Where()
	where := "end of input"
	if p != nil {
		where = p.String()
	}
	fmt.Fprintf(r.w, "%s %s\n", posColor(in.name+":"+where+":"), errColor("error: ")+e.Message())
	if !r.excerpts || p == nil {
		return
	}
	line, caret := excerpt(in.data, *p)
	fmt.Fprintf(r.w, "\t%s\n\t%s\n", line, errColor(caret))
}

// excerpt returns the source line at p and a caret line pointing at
// its column.
func excerpt(src []byte, p token.Pos) (string, string) {
	start := bytes.LastIndexAny(src[:min(p.Offset, len(src))], "\n\r") + 1
	end := bytes.IndexAny(src[start:], "\n\r")
	if end < 0 {
		end = len(src)
	} else {
		end += start
	}
	line := string(src[start:end])
	var caret strings.Builder
	col := 1
	for _, r := range line {
		if col >= p.Column {
			break
		}
		if r == '\t' {
			caret.WriteByte('\t')
		} else {
			caret.WriteByte(' ')
		}
		col++
	}
	caret.WriteByte('^')
	return line, caret.String()
}
