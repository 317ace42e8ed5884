package decode

import (
	"errors"
	"testing"

	"github.com/signadot/bintree/tree"
)

func TestBuildFromStrings(t *testing.T) {
	n, err := BuildFromStrings(
		[]string{"4", "2", "5", "1", "2", "1"},
		[]string{"1", "2", "4", "5", "2", "1"})
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Equal(n, dups()) {
		t.Errorf("got %s want %s", n, dups())
	}
}

func TestBuildFromStringsEmpty(t *testing.T) {
	n, err := BuildFromStrings(nil, nil)
	if err != nil || n != nil {
		t.Errorf("got %v, %v", n, err)
	}
}

// Without ordinals the first unvisited occurrence wins, so a value repeated
// on a path leans right.
func TestBuildFromStringsFirstUnvisited(t *testing.T) {
	n, err := BuildFromStrings([]string{"a", "a"}, []string{"a", "a"})
	if err != nil {
		t.Fatal(err)
	}
	want := tree.New("a", nil, tree.Leaf("a"))
	if !tree.Equal(n, want) {
		t.Errorf("got %s want %s", n, want)
	}
}

// Three occurrences of one value at depths 0, 1 and 2, none of them inside
// the left subtree of another.
func TestBuildFromStringsThreeOccurrences(t *testing.T) {
	want := tree.New("3", tree.New("1", tree.Leaf("0"), tree.Leaf("2")), tree.New("3", nil, tree.Leaf("3")))
	n, err := BuildFromStrings(tree.InOrder(want), tree.PreOrder(want))
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Equal(n, want) {
		t.Errorf("got %s want %s", n, want)
	}
}

func TestBuildInconsistent(t *testing.T) {
	tests := []struct {
		name    string
		in, pre []string
	}{
		{"lengths", []string{"a"}, []string{"a", "b"}},
		{"missing value", []string{"a", "b"}, []string{"a", "c"}},
		{"out of range", []string{"b", "a", "c"}, []string{"a", "c", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildFromStrings(tt.in, tt.pre)
			if !errors.Is(err, ErrInconsistent) {
				t.Errorf("expected ErrInconsistent, got %v", err)
			}
		})
	}
}

func TestBuildOrdinalMismatch(t *testing.T) {
	in := []Entry{{"a", 1}, {"a", 0}}
	pre := []Entry{{"a", 0}, {"a", 2}}
	if _, err := BuildFromInAndPre(in, pre); !errors.Is(err, ErrInconsistent) {
		t.Errorf("expected ErrInconsistent, got %v", err)
	}
}
