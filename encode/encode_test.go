package encode

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/go-kdl/ir"
	"github.com/signadot/go-kdl/parse"
	"golang.org/x/tools/txtar"
)

var roundTrips = []string{
	"",
	"\n\n",
	"node",
	"node\n",
	"node 1 2 3\n",
	"  node   \"a\"  key = \"value\"   // comment\n",
	"/* lead */ node /* mid */ 1 /* tail */\n",
	"node { child; child2 1 }\n",
	"node {\n    child {\n        grandchild\n    }\n}\n",
	"(type)node (u8)255 key=(str)\"v\"\n",
	"( type )node ( t )1\n",
	"node #true #false #null #inf #-inf\n",
	"node 0xFF 0o17 0b1010 1_000 1.5e10 -3.25\n",
	"node #\"raw \\n\"# ##\"with \"# inside\"##\n",
	"node \"\"\"\n  multi\n  line\n  \"\"\"\n",
	"node \\\n  1 \\ // escaped\n  2\n",
	"/-node 1\nother\n",
	"node /-1 2 /-key=3\n",
	"node /-{ skipped } { kept }\n",
	"a; b; c\n",
	"\ufeffnode\n",
	"node\r\nother\r\n",
	"node \"esc \\u{1F600} \\t\"\n",
	"- +x .y\n",
	"node {}\n",
	"// only a comment",
}

func TestRoundTrip(t *testing.T) {
	for _, src := range roundTrips {
		doc, err := parse.ParseDocument([]byte(src))
		if err != nil {
			t.Errorf("parse %q: %v", src, err)
			continue
		}
		if got := Format(doc); got != src {
			t.Errorf("round trip %q: got %q", src, got)
		}
	}
}

func TestRoundTripSuffixes(t *testing.T) {
	for _, src := range []string{"node 10px 1.5em 0xff#u8 10#px\n", "node 1e3#k\n"} {
		doc, err := parse.ParseDocument([]byte(src), parse.NumberSuffixes(true))
		if err != nil {
			t.Errorf("parse %q: %v", src, err)
			continue
		}
		if got := Format(doc); got != src {
			t.Errorf("round trip %q: got %q", src, got)
		}
	}
}

func TestCanonicalFiles(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no test files")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			data, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			ar := txtar.Parse(data)
			parts := map[string]string{}
			for _, f := range ar.Files {
				parts[f.Name] = string(f.Data)
			}
			in, want := parts["in.kdl"], parts["canonical.kdl"]
			doc, err := parse.ParseDocument([]byte(in))
			if err != nil {
				t.Fatal(err)
			}
			if got := Format(doc); got != in {
				t.Errorf("lossless:\n%s", cmp.Diff(in, got))
			}
			if got := Format(ClearFormat(doc)); got != want {
				t.Errorf("canonical (-want +got):\n%s", cmp.Diff(want, got))
			}
		})
	}
}

func TestClearFormatStable(t *testing.T) {
	for _, src := range roundTrips {
		doc, err := parse.ParseDocument([]byte(src))
		if err != nil {
			t.Fatal(err)
		}
		once := ClearFormat(doc.Clone())
		twice := ClearFormat(once.Clone())
		if diff := cmp.Diff(once, twice, cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("%q: clearing twice differs (-once +twice):\n%s", src, diff)
		}
		text := Format(once)
		if text != Format(once) {
			t.Errorf("%q: canonical output is not deterministic", src)
		}
		again, err := parse.ParseDocument([]byte(text))
		if err != nil {
			t.Errorf("%q: reparse canonical %q: %v", src, text, err)
			continue
		}
		if diff := cmp.Diff(once, ClearFormat(again), cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("%q: reparsed canonical form differs (-want +got):\n%s", src, diff)
		}
	}
}

func TestClearFormatProperties(t *testing.T) {
	n, err := parse.ParseNode([]byte("node a=1 b=2 a=3"))
	if err != nil {
		t.Fatal(err)
	}
	ClearFormat(n)
	var names []string
	for _, e := range n.Entries {
		names = append(names, e.GetName())
	}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if v, _ := n.GetProperty("a"); v != int64(3) {
		t.Errorf("a: got %v want 3", v)
	}
	if got := Format(n); got != "node a=3 b=2\n" {
		t.Errorf("got %q", got)
	}
}

func TestClearFormatKeepsEmptyChildren(t *testing.T) {
	doc, err := parse.ParseDocument([]byte("a { }\nb\n"))
	if err != nil {
		t.Fatal(err)
	}
	ClearFormat(doc)
	if doc.Nodes[0].Children == nil {
		t.Error("empty children block was dropped")
	}
	if doc.Nodes[1].Children != nil {
		t.Error("children block was added")
	}
}

func TestFormatConstructed(t *testing.T) {
	n := ir.NewNode("node")
	n.AddArgument(1)
	n.AddArgument("two words")
	n.AddArgument(2.0)
	n.SetProperty("k", true)
	n.SetProperty("#weird", nil)
	n.SetTag("my tag")
	n.AppendNode(ir.NewNode("child"))
	n.Children.Nodes[0].AppendNode(ir.NewNode("grandchild"))
	n.AppendNode(ir.NewNode("empty"))
	n.Children.Nodes[1].Children = ir.NewDocument()
	doc := ir.NewDocument(n, ir.NewNode("second"))

	want := "(\"my tag\")node 1 \"two words\" 2.0 k=#true \"#weird\"=#null {\n" +
		"\tchild {\n\t\tgrandchild\n\t}\n" +
		"\tempty {}\n" +
		"}\n" +
		"second\n"
	if got := Format(doc); got != want {
		t.Errorf("(-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestFormatKinds(t *testing.T) {
	tests := []struct {
		e    ir.Element
		want string
	}{
		{ir.NewIdentifier("plain"), "plain"},
		{ir.NewIdentifier("1abc"), `"1abc"`},
		{ir.NewIdentifier("true"), `"true"`},
		{ir.NewIdentifier(""), `""`},
		{ir.NewValue("a\"b\nc"), `"a\"b\nc"`},
		{ir.NewValue(int64(-7)), "-7"},
		{ir.NewValue(1e21), "1e+21"},
		{ir.NewValue(0.1), "0.1"},
		{ir.NewValue(math.NaN()), "#nan"},
		{ir.NewValue(uint64(math.MaxUint64)), "1.8446744073709552e+19"},
		{ir.NewArgument("x"), " x"},
		{ir.NewProperty("key", 1), " key=1"},
		{ir.NewTag("t"), "(t)"},
		{ir.NewNode("n"), "n\n"},
	}
	for _, tc := range tests {
		if got := Format(tc.e); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.e.Kind(), got, tc.want)
		}
	}
}

func TestSetterDropsRepresentation(t *testing.T) {
	n, err := parse.ParseNode([]byte("node 0x10   key=\"a\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	n.Entries[0].SetValue(17)
	if got := Format(n); got != "node 17   key=\"a\"\n" {
		t.Errorf("got %q", got)
	}
	n.Entries[1].SetName("other key")
	if got := Format(n); got != "node 17   \"other key\"=\"a\"\n" {
		t.Errorf("got %q", got)
	}
}

func TestSuffixCanonical(t *testing.T) {
	n, err := parse.ParseNode([]byte("node 10px"), parse.NumberSuffixes(true))
	if err != nil {
		t.Fatal(err)
	}
	v := n.Entries[0].Value
	if tag, _ := v.GetTag(); tag != "px" || !v.Tag.Suffix {
		t.Fatalf("tag: got %+v", v.Tag)
	}
	v.Representation = nil
	v.Tag.Representation = nil
	if got := Format(v); got != "10#px" {
		t.Errorf("suffix: got %q", got)
	}
	v.SetValue(math.Inf(1))
	if got := Format(v); got != "(px)#inf" {
		t.Errorf("non-finite: got %q", got)
	}
	v.SetValue(int64(3))
	ClearFormat(v)
	if got := Format(v); got != "(px)3" {
		t.Errorf("cleared: got %q", got)
	}
}

func TestSetValueDropsSuffix(t *testing.T) {
	n, err := parse.ParseNode([]byte("n 10#px 10px 7px\n"), parse.NumberSuffixes(true))
	if err != nil {
		t.Fatal(err)
	}
	n.Entries[0].SetValue("a")
	n.Entries[1].SetValue(math.Inf(-1))
	n.Entries[2].SetValue(int64(8))
	got := Format(n)
	if want := "n (px)a (px)#-inf 8#px\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if _, err := parse.ParseNode([]byte(got), parse.NumberSuffixes(true)); err != nil {
		t.Errorf("%q does not parse: %v", got, err)
	}
}

func TestEncodeColors(t *testing.T) {
	doc, err := parse.ParseDocument([]byte("(t)node 1 key=\"v\" // c\n"))
	if err != nil {
		t.Fatal(err)
	}
	c := &Colors{Map: map[ColorAttr]func(string, ...any) string{}}
	for _, a := range []ColorAttr{CommentColor, TagColor, NodeNameColor, PropColor, StringColor, NumberColor, KeywordColor, SepColor} {
		c.Map[a] = func(s string, _ ...any) string { return "<" + a.String() + ":" + s + ">" }
	}
	buf := &bytes.Buffer{}
	if err := Encode(doc, buf, EncodeColors(c)); err != nil {
		t.Fatal(err)
	}
	want := "<sep:(><tag:t><sep:)><node:node> <number:1> <prop:key><sep:=><string:\"v\"><comment: // c\n>"
	if got := buf.String(); got != want {
		t.Errorf("(-want +got):\n%s", cmp.Diff(want, got))
	}

	buf.Reset()
	if err := Encode(doc, buf, EncodeColors(nil)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != Format(doc) {
		t.Errorf("nil colors: got %q", got)
	}
}
