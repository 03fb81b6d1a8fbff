package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-kdl/parse"
)

const dumpSrc = "a 1 (u8)2 key=\"v\" big=#inf\nb {}\n(t)c\n"

func TestDumpJSON(t *testing.T) {
	doc, err := parse.ParseDocument([]byte(dumpSrc))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Dump(buf, doc, JSONFormat); err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v in\n%s", err, buf)
	}
	want := map[string]any{
		"nodes": []any{
			map[string]any{
				"name": "a",
				"args": []any{
					map[string]any{"value": 1.0},
					map[string]any{"tag": "u8", "value": 2.0},
				},
				"props": []any{
					map[string]any{"name": "key", "value": "v"},
					map[string]any{"name": "big", "value": "#inf"},
				},
			},
			map[string]any{"name": "b", "children": []any{}},
			map[string]any{"name": "c", "tag": "t"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDumpYAML(t *testing.T) {
	doc, err := parse.ParseDocument([]byte(dumpSrc))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Dump(buf, doc, YAMLFormat); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"nodes:", "name: a", "tag: u8", "children: []", "tag: t"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestDumpKDL(t *testing.T) {
	doc, err := parse.ParseDocument([]byte(dumpSrc))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Dump(buf, doc, KDLFormat); err != nil {
		t.Fatal(err)
	}
	if buf.String() != dumpSrc {
		t.Errorf("got %q", buf.String())
	}
}

func TestTreeNode(t *testing.T) {
	n, err := parse.ParseNode([]byte("n (t)k=1"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Tree(n)
	if err != nil {
		t.Fatal(err)
	}
	want := &dumpNode{Name: "n", Props: []*dumpProp{{Name: "k", NameTag: "t", Value: int64(1)}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	src := "a 1 2.5 (u8)2 key=\"v\" big=#inf (t)k=#null\nb {}\n(t)c {\n\td #true\n}\n"
	doc, err := parse.ParseDocument([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		buf := &bytes.Buffer{}
		if err := Dump(buf, doc, f); err != nil {
			t.Fatal(err)
		}
		got, err := Load(buf.Bytes(), f)
		if err != nil {
			t.Fatalf("%s: %v in\n%s", f, err, buf)
		}
		want, err := Tree(doc)
		if err != nil {
			t.Fatal(err)
		}
		gotTree, err := Tree(got)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, gotTree); diff != "" {
			t.Errorf("%s (-want +got):\n%s", f, diff)
		}
	}
}
