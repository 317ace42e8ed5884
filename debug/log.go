package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/bintree/tree"
)

var out io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *tree.Node:
			args[i] = x.String()
		case []string:
			d, err := json.Marshal(x)
			if err != nil {
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(out, msg, args...)
}
