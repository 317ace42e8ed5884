package main

import (
	"fmt"

	"github.com/signadot/bintree/encode"
	"github.com/signadot/bintree/format"
	"github.com/signadot/bintree/mergeop"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	var p []byte
	if cfg.String {
		p = []byte(args[0])
	} else {
		p, err = readFile(cc, args[0])
		if err != nil {
			return err
		}
	}
	var popts []mergeop.PatchOption
	if cfg.AllowReserved {
		popts = append(popts, mergeop.AllowReserved())
	}
	apply := mergeop.JSONPatch
	if cfg.Merge {
		apply = mergeop.MergePatch
	}
	for _, arg := range inputs(args[1:]) {
		root, err := getTreeFile(cc, arg, cfg.decOpts(format.WireFormat)...)
		if err != nil {
			return err
		}
		res, err := apply(root, p, popts...)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, format.WireFormat)...); err != nil {
			return err
		}
	}
	return nil
}
