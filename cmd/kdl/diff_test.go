package main

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-kdl/encode"
	"github.com/signadot/go-kdl/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

func TestMergePatch(t *testing.T) {
	a, err := parse.ParseDocument([]byte("a 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.ParseDocument([]byte("a 1 // same\n"))
	if err != nil {
		t.Fatal(err)
	}
	p, err := mergePatch(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if string(p) != "{}" {
		t.Errorf("formatting only: got %s", p)
	}

	c, err := parse.ParseDocument([]byte("a 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	p, err = mergePatch(a, c)
	if err != nil {
		t.Fatal(err)
	}
	var got any
	if err := json.Unmarshal(p, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"nodes": []any{map[string]any{"name": "a", "args": []any{map[string]any{"value": 2.0}}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestApplyPatch(t *testing.T) {
	doc, err := parse.ParseDocument([]byte("a 1 key=\"v\"\nb\n"))
	if err != nil {
		t.Fatal(err)
	}
	ops, err := jsonpatch.DecodePatch([]byte(`[
		{"op": "replace", "path": "/nodes/0/args/0/value", "value": 2},
		{"op": "remove", "path": "/nodes/1"},
		{"op": "add", "path": "/nodes/-", "value": {"name": "c", "children": []}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := applyPatch(ops, doc)
	if err != nil {
		t.Fatal(err)
	}
	want := "a 2 key=v\nc {}\n"
	if got := encode.Format(res); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
