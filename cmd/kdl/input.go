package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

type input struct {
	name string
	data []byte
}

// readInputs reads the named files, or standard input when there are
// none.  The name "-" also stands for standard input.
func readInputs(cc *cli.Context, files []string) ([]input, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	res := make([]input, 0, len(files))
	for _, file := range files {
		in, err := readInput(cc, file)
		if err != nil {
			return nil, err
		}
		res = append(res, in)
	}
	return res, nil
}

func readInput(cc *cli.Context, file string) (input, error) {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return input{}, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return input{}, fmt.Errorf("error reading %s: %w", file, err)
	}
	return input{name: file, data: d}, nil
}
