package main

import (
	"fmt"
	"strconv"

	"github.com/signadot/bintree/encode"
	"github.com/signadot/bintree/eval"
	"github.com/signadot/bintree/format"
	"github.com/signadot/bintree/tree"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires an expression", cli.ErrUsage)
	}
	q, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, arg := range inputs(args[1:]) {
		root, err := getTreeFile(cc, arg, cfg.decOpts(format.WireFormat)...)
		if err != nil {
			return err
		}
		ms, err := q.Select(root)
		if err != nil {
			return fmt.Errorf("error evaluating %s on %s: %w", q, arg, err)
		}
		theLog.Debug("find", "file", arg, "matches", len(ms))
		for _, m := range ms {
			if cfg.Values {
				_, err = fmt.Fprintf(cc.Out, "%s %s\n", m.Path, strconv.Quote(m.Node.Value))
			} else {
				_, err = fmt.Fprintf(cc.Out, "%s\n", m.Path)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func walk(cfg *WalkConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Walk.Parse(cc, args)
	if err != nil {
		cfg.Walk.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var order func(*tree.Node) []string
	switch cfg.Order {
	case "pre":
		order = tree.PreOrder
	case "in":
		order = tree.InOrder
	case "post":
		order = tree.PostOrder
	default:
		return fmt.Errorf("%w: unknown order %q", cli.ErrUsage, cfg.Order)
	}
	if cfg.Paths && cfg.Order != "pre" {
		return fmt.Errorf("%w: -p requires pre-order", cli.ErrUsage)
	}
	for _, arg := range inputs(args) {
		root, err := getTreeFile(cc, arg, cfg.decOpts(format.WireFormat)...)
		if err != nil {
			return err
		}
		if cfg.Paths {
			tree.Walk(root, func(n *tree.Node, p tree.Path, _ int) bool {
				_, err = fmt.Fprintf(cc.Out, "%s %s\n", p, strconv.Quote(n.Value))
				return err == nil
			})
			if err != nil {
				return err
			}
			continue
		}
		for _, v := range order(root) {
			if _, err := fmt.Fprintln(cc.Out, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a tree path", cli.ErrUsage)
	}
	p, err := tree.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, arg := range inputs(args[1:]) {
		root, err := getTreeFile(cc, arg, cfg.decOpts(format.WireFormat)...)
		if err != nil {
			return err
		}
		sub, err := root.GetPath(p)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", p, arg, err)
		}
		if err := encode.Encode(sub, cc.Out, cfg.encOpts(cc.Out, format.WireFormat)...); err != nil {
			return err
		}
	}
	return nil
}
