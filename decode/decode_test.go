package decode

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/bintree/encode"
	"github.com/signadot/bintree/format"
	"github.com/signadot/bintree/token"
	"github.com/signadot/bintree/tree"
)

func mixed() *tree.Node {
	return tree.New("1",
		tree.New("aa",
			tree.Leaf("ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
			tree.Leaf(`+=_~!@$%^&*()_+"<>?:,./;'|[]{}`)),
		tree.New("abcdefghijklmnopqrstuvwxyz", tree.Leaf("Hello!"), nil),
	)
}

func dups() *tree.Node {
	return tree.New("1",
		tree.New("2", tree.Leaf("4"), tree.Leaf("5")),
		tree.New("2", nil, tree.Leaf("1")),
	)
}

func roundTrip(t *testing.T, n *tree.Node) *tree.Node {
	t.Helper()
	text, ok := encode.String(n)
	if ok != (n != nil) {
		t.Fatalf("encode.String ok = %v for %s", ok, n)
	}
	got, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode(%q): %v", text, err)
	}
	return got
}

func TestDecodeEmpty(t *testing.T) {
	n, err := Decode("")
	if err != nil || n != nil {
		t.Errorf("Decode(\"\") = %v, %v", n, err)
	}
	if got := roundTrip(t, nil); got != nil {
		t.Errorf("empty tree decoded to %s", got)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		n    *tree.Node
	}{
		{"single", tree.Leaf("1")},
		{"mixed", mixed()},
		{"dups", dups()},
		{"empty value", tree.New("", tree.Leaf(""), tree.Leaf(""))},
		{"left chain", tree.New("a", tree.New("b", tree.Leaf("c"), nil), nil)},
		{"right chain", tree.New("a", nil, tree.New("b", nil, tree.Leaf("c")))},
		{"zigzag", tree.New("a", tree.New("b", nil, tree.New("c", tree.Leaf("d"), nil)), nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTrip(t, tt.n)
			if !tree.Equal(got, tt.n) {
				t.Errorf("round trip gave %s, want %s", got, tt.n)
			}
		})
	}
}

func TestRoundTripDistinguishesDuplicates(t *testing.T) {
	got := roundTrip(t, dups())
	if got.Left.Value != "2" || got.Right.Value != "2" {
		t.Fatalf("got %s", got)
	}
	if got.Left.Left.Value != "4" || got.Left.Right.Value != "5" {
		t.Errorf("left 2 lost its children: %s", got)
	}
	if got.Right.Left != nil || got.Right.Right.Value != "1" {
		t.Errorf("right 2 lost its shape: %s", got)
	}
}

// A value repeated along a root to leaf path cannot be told apart by value
// alone: a(a,-) and a(-,a) have the same in-order and pre-order values.
func TestRoundTripAmbiguousByValue(t *testing.T) {
	for _, n := range []*tree.Node{
		tree.New("a", tree.Leaf("a"), nil),
		tree.New("a", nil, tree.Leaf("a")),
		tree.New("a", tree.New("a", nil, tree.Leaf("a")), nil),
		tree.New("a", tree.New("a", tree.Leaf("a"), nil), tree.Leaf("a")),
	} {
		if got := roundTrip(t, n); !tree.Equal(got, n) {
			t.Errorf("round trip gave %s, want %s", got, n)
		}
	}
}

// Three or more occurrences of one value at mixed depths.
func TestRoundTripManyOccurrences(t *testing.T) {
	tests := []*tree.Node{
		tree.New("x",
			tree.New("y", tree.Leaf("x"), tree.New("x", nil, tree.Leaf("y"))),
			tree.New("x", tree.Leaf("x"), nil)),
		tree.New("7",
			tree.New("7", tree.New("7", nil, tree.Leaf("7")), tree.Leaf("1")),
			tree.New("1", nil, tree.New("7", tree.Leaf("7"), tree.Leaf("7")))),
		tree.New("q", nil, tree.New("r", tree.New("q", tree.Leaf("q"), nil), tree.Leaf("q"))),
	}
	for _, n := range tests {
		if got := roundTrip(t, n); !tree.Equal(got, n) {
			t.Errorf("round trip gave %s, want %s", got, n)
		}
	}
}

// shapes returns every tree shape with n nodes, all values v.
func shapes(n int, v string) []*tree.Node {
	if n == 0 {
		return []*tree.Node{nil}
	}
	var res []*tree.Node
	for l := 0; l < n; l++ {
		for _, left := range shapes(l, v) {
			for _, right := range shapes(n-1-l, v) {
				res = append(res, tree.New(v, left.Clone(), right.Clone()))
			}
		}
	}
	return res
}

func TestRoundTripAllShapesSameValue(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for _, s := range shapes(n, "v") {
			if got := roundTrip(t, s); !tree.Equal(got, s) {
				t.Fatalf("round trip gave %s, want %s", got, s)
			}
		}
	}
}

func TestDecodeIdempotentEncoding(t *testing.T) {
	n := mixed()
	a, _ := encode.String(n)
	b, _ := encode.String(n)
	if a != b {
		t.Fatalf("encodings differ: %q %q", a, b)
	}
	x, err := Decode(a)
	if err != nil {
		t.Fatal(err)
	}
	y, err := Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Equal(x, y) {
		t.Errorf("decodes differ: %s %s", x, y)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"1#-#-", token.ErrTruncated},
		{"1#-#", token.ErrTruncated},
		{"1#2#", token.ErrTruncated},
		{"1#-#-#2#", token.ErrMalformed},
		{"-#", token.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Decode(tt.in)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("expected ErrDecode, got %v", err)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestDecodeNoValidate(t *testing.T) {
	_, err := Decode("1#2#", NoValidate())
	if !errors.Is(err, ErrInconsistent) {
		t.Errorf("expected ErrInconsistent, got %v", err)
	}
	n, err := Decode("1#-#-#", NoValidate())
	if err != nil || !tree.Equal(n, tree.Leaf("1")) {
		t.Errorf("got %s, %v", n, err)
	}
}

func TestDecodeReader(t *testing.T) {
	text, _ := encode.String(dups())
	n, err := DecodeReader(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Equal(n, dups()) {
		t.Errorf("got %s", n)
	}
	n, err = DecodeReader(strings.NewReader(""))
	if err != nil || n != nil {
		t.Errorf("empty reader: %v %v", n, err)
	}
	if _, err := DecodeReader(strings.NewReader("1#-")); !errors.Is(err, token.ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeReaderLongValue(t *testing.T) {
	long := strings.Repeat("v", 2<<20)
	root := tree.New("a", tree.Leaf(long), nil)
	text := "a#" + long + "#-#-#-#"
	want, err := Decode(text)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeReader(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Equal(got, want) || !tree.Equal(got, root) {
		t.Errorf("long value not decoded the same by Decode and DecodeReader")
	}
}

func TestDecodeDoc(t *testing.T) {
	text, _ := encode.String(dups())
	n, err := DecodeDoc([]byte(text + "\n"))
	if err != nil || !tree.Equal(n, dups()) {
		t.Errorf("wire doc: %s %v", n, err)
	}
	n, err = DecodeDoc([]byte(`{"value":"1","right":{"value":"2"}}`), DecodeFormat(format.JSONFormat))
	if err != nil || !tree.Equal(n, tree.New("1", nil, tree.Leaf("2"))) {
		t.Errorf("json doc: %s %v", n, err)
	}
	n, err = DecodeDoc([]byte("value: a\nleft: {value: b}\n"), DecodeFormat(format.YAMLFormat))
	if err != nil || !tree.Equal(n, tree.New("a", tree.Leaf("b"), nil)) {
		t.Errorf("yaml doc: %s %v", n, err)
	}
	if _, err := DecodeDoc([]byte("a"), DecodeFormat(format.TextFormat)); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}
