package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/bintree/tree"
)

func dups() *tree.Node {
	return tree.New("1",
		tree.New("2", tree.Leaf("4"), tree.Leaf("5")),
		tree.New("2", nil, tree.Leaf("1")),
	)
}

func TestSelect(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{`value == "2"`, []string{"$.left", "$.right"}},
		{`leaf`, []string{"$.left.left", "$.left.right", "$.right.right"}},
		{`hasRight && !hasLeft`, []string{"$.right"}},
		{`depth == 1`, []string{"$.left", "$.right"}},
		{`ord == 3`, []string{"$.left.right"}},
		{`At("$.right.right") == value`, []string{"$", "$.right.right"}},
		{`depth == 0 && At("$.right.right") == value`, []string{"$"}},
		{`At("$.left.left.left") == ""`, []string{"$", "$.left", "$.left.left", "$.left.right", "$.right", "$.right.right"}},
		{`path startsWith "$.left"`, []string{"$.left", "$.left.left", "$.left.right"}},
		{`value == "x"`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			q, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			ms, err := q.Select(dups())
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, m := range ms {
				got = append(got, m.Path.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%s (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestSelectEmpty(t *testing.T) {
	q, err := Compile("true")
	if err != nil {
		t.Fatal(err)
	}
	ms, err := q.Select(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 0 {
		t.Errorf("got %d matches", len(ms))
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`value +`, `value`, `nosuch == 1`} {
		if _, err := Compile(src); !errors.Is(err, ErrCompile) {
			t.Errorf("%q: expected ErrCompile, got %v", src, err)
		}
	}
}

func TestMatch(t *testing.T) {
	q, err := Compile(`value == "1" && hasLeft`)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := q.Match(dups())
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("expected root match")
	}
	ok, _ = q.Match(dups().Right)
	if ok {
		t.Errorf("unexpected match")
	}
}
