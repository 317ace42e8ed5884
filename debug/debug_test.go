package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/bintree/tree"
)

func TestBoolEnv(t *testing.T) {
	t.Setenv("BT_TEST_FLAG", "true")
	if !boolEnv("BT_TEST_FLAG") {
		t.Error("expected true")
	}
	t.Setenv("BT_TEST_FLAG", "nope")
	if boolEnv("BT_TEST_FLAG") {
		t.Error("unparseable value should be false")
	}
	if boolEnv("BT_TEST_FLAG_UNSET") {
		t.Error("unset should be false")
	}
}

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	old := out
	out = buf
	defer func() { out = old }()

	Logf("node %s seq %s n=%d\n", tree.New("1", tree.Leaf("2"), nil), []string{"a", "b"}, 3)
	want := "node 1(2,-) seq [\"a\",\"b\"] n=3\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestLogAny(t *testing.T) {
	buf := &bytes.Buffer{}
	old := out
	out = buf
	defer func() { out = old }()

	LogAny([]string{"$", "$.left"})
	LogAny(func() {})
	got := buf.String()
	if !strings.HasPrefix(got, "[\"$\",\"$.left\"]\n") {
		t.Errorf("got %q", got)
	}
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", got)
	}
}
