package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/bintree/token"

	"github.com/fatih/color"
)

// WriteEdits writes one line per edit: the op followed by the tokens in wire
// form. With colors, insertions are green and deletions red.
func WriteEdits(w io.Writer, edits []Edit, colors bool) error {
	sep := string(token.Separator)
	for _, edit := range edits {
		line := edit.Op.String() + " " + strings.Join(edit.Tokens, sep) + sep
		if colors {
			switch edit.Op {
			case OpInsert:
				line = color.GreenString("%s", line)
			case OpDelete:
				line = color.RedString("%s", line)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func WriteChanges(w io.Writer, cs []Change) error {
	for _, c := range cs {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}
