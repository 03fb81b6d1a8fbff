package main

import (
	"fmt"

	"github.com/signadot/go-kdl/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	opts := []token.TokenOpt{token.NumberSuffixes(cfg.Suffix)}
	if cfg.Query {
		opts = append(opts, token.TokenizeQuery())
	}
	for _, in := range ins {
		if len(ins) > 1 {
			fmt.Fprintf(cc.Out, "# %s\n", in.name)
		}
		toks, err := token.Tokenize(in.data, opts...)
		token.FprintTokens(cc.Out, toks)
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", in.name, err)
		}
	}
	return nil
}
