package main

import (
	"fmt"

	"github.com/signadot/bintree/format"
	"github.com/signadot/bintree/libdiff"
	"github.com/signadot/bintree/tree"

	"github.com/scott-cotton/cli"
)

func readPair(cfg *MainConfig, cc *cli.Context, cmd string, args []string) (a, b *tree.Node, err error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%w: %s requires 2 args, got %v", cli.ErrUsage, cmd, args)
	}
	a, err = getTreeFile(cc, args[0], cfg.decOpts(format.WireFormat)...)
	if err != nil {
		return nil, nil, err
	}
	b, err = getTreeFile(cc, args[1], cfg.decOpts(format.WireFormat)...)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func equal(cfg *EqualConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Equal.Parse(cc, args)
	if err != nil {
		cfg.Equal.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	a, b, err := readPair(cfg.MainConfig, cc, "equal", args)
	if err != nil {
		return err
	}
	if !tree.Equal(a, b) {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	a, b, err := readPair(cfg.MainConfig, cc, "diff", args)
	if err != nil {
		return err
	}
	if cfg.Tokens {
		edits, err := libdiff.DiffTokens(a, b)
		if err != nil {
			return err
		}
		if !libdiff.Changed(edits) {
			return nil
		}
		if err := libdiff.WriteEdits(cc.Out, edits, cfg.useColor(cc.Out)); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	cs := libdiff.Changes(a, b)
	if len(cs) == 0 {
		return nil
	}
	if err := libdiff.WriteChanges(cc.Out, cs); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
