package parse

import (
	"bytes"
	"testing"

	"github.com/signadot/go-kdl/encode"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Nodes
		`node`,
		`node;other`,
		`(tag)node`,
		`"quoted node"`,
		`node {}`,
		`node { child; }`,
		"node {\n  child 1\n}\n",

		// Entries
		`node 1 2 3`,
		`node key=value`,
		`node (t)1 (t)key=2`,
		`node key = "spaced"`,

		// Values
		`n #true #false #null #inf #-inf #nan`,
		`n 0x1F 0o17 0b11 1_000 -1.5e-3`,
		`n 10px 10#px`,
		`n #"raw"# ##"raw "# raw"##`,
		"n \"\"\"\n  multi\n  \"\"\"",
		`n "esc \u{1F600} \t \\ \""`,

		// Space
		`/* block /* nested */ */ node`,
		"node // line\n",
		"node \\\n  1",
		`/-node 1`,
		`node /-1 /-{ x }`,
		"\ufeffnode",
		"node\r\n",

		// Errors
		`node "unterminated`,
		`node {`,
		`node 1x`,
		`node true`,
		`node #tru`,
		`(t)`,
		`node { } { }`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := ParseDocument(data, NumberSuffixes(true))
		if err != nil {
			return
		}
		var buf bytes.Buffer
		if err := encode.Encode(doc, &buf); err != nil {
			t.Fatalf("encode: %v", err)
		}
		if !bytes.Equal(buf.Bytes(), data) {
			t.Fatalf("round trip of %q gave %q", data, buf.Bytes())
		}
		canon := encode.Format(encode.ClearFormat(doc))
		if _, err := ParseDocument([]byte(canon), NumberSuffixes(true)); err != nil {
			t.Fatalf("canonical form %q of %q does not parse: %v", canon, data, err)
		}
	})
}
