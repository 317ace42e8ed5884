package mergeop

import (
	"errors"
	"testing"

	"github.com/signadot/bintree/token"
	"github.com/signadot/bintree/tree"
)

func dups() *tree.Node {
	return tree.New("1",
		tree.New("2", tree.Leaf("4"), tree.Leaf("5")),
		tree.New("2", nil, tree.Leaf("1")),
	)
}

func TestJSONPatch(t *testing.T) {
	root := dups()
	got, err := JSONPatch(root, []byte(`[
		{"op": "replace", "path": "/right/right/value", "value": "a"},
		{"op": "remove", "path": "/left/left"},
		{"op": "add", "path": "/right/left", "value": {"value": "z"}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	want := tree.New("1",
		tree.New("2", nil, tree.Leaf("5")),
		tree.New("2", tree.Leaf("z"), tree.Leaf("a")),
	)
	if !tree.Equal(got, want) {
		t.Errorf("got %s want %s", got, want)
	}
	if !tree.Equal(root, dups()) {
		t.Errorf("input was modified: %s", root)
	}
}

func TestMergePatch(t *testing.T) {
	got, err := MergePatch(dups(), []byte(`{"value": "0", "left": null, "right": {"right": {"value": "9"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := tree.New("0", nil, tree.New("2", nil, tree.Leaf("9")))
	if !tree.Equal(got, want) {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestPatchErrors(t *testing.T) {
	tests := []struct {
		name  string
		patch string
		err   error
	}{
		{"bad patch", `{"op": 1}`, ErrPatch},
		{"missing path", `[{"op": "remove", "path": "/left/left/left"}]`, ErrPatch},
		{"no value", `[{"op": "remove", "path": "/left/value"}]`, tree.ErrBadDoc},
		{"reserved", `[{"op": "replace", "path": "/value", "value": "-"}]`, token.ErrReservedValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JSONPatch(dups(), []byte(tt.patch))
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestAllowReserved(t *testing.T) {
	got, err := JSONPatch(tree.Leaf("a"), []byte(`[{"op": "replace", "path": "/value", "value": "a#b"}]`), AllowReserved())
	if err != nil {
		t.Fatal(err)
	}
	if got.Value != "a#b" {
		t.Errorf("got %s", got)
	}
}
