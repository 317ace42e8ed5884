package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/bintree/decode"
	"github.com/signadot/bintree/tree"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getTreeFile(cc *cli.Context, path string, opts ...decode.DecodeOption) (*tree.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	root, err := decode.DecodeDoc(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	theLog.Debug("read tree", "file", path, "bytes", len(d), "nodes", root.Size())
	return root, nil
}

// inputs returns args, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
