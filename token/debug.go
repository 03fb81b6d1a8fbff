package token

import (
	"fmt"
	"io"
)

func FprintTokens(w io.Writer, toks []Token) {
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(w, "%s\t%-20s %q\n", t.Start, t.Type, t.Text)
		for _, e := range t.Errs {
			fmt.Fprintf(w, "\t! %s\n", e)
		}
	}
}
