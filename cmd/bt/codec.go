package main

import (
	"github.com/signadot/bintree/decode"
	"github.com/signadot/bintree/encode"
	"github.com/signadot/bintree/format"

	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		cfg.Encode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	encOpts := append(cfg.encOpts(cc.Out, format.WireFormat),
		encode.EncodeCheckValues(!cfg.AllowReserved))
	for _, arg := range inputs(args) {
		root, err := getTreeFile(cc, arg, cfg.decOpts(format.YAMLFormat)...)
		if err != nil {
			return err
		}
		if err := encode.Encode(root, cc.Out, encOpts...); err != nil {
			return err
		}
	}
	return nil
}

func decodeCmd(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		cfg.Decode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	decOpts := cfg.decOpts(format.WireFormat)
	if cfg.NoValidate {
		decOpts = append(decOpts, decode.NoValidate())
	}
	for _, arg := range inputs(args) {
		root, err := getTreeFile(cc, arg, decOpts...)
		if err != nil {
			return err
		}
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out, format.YAMLFormat)...); err != nil {
			return err
		}
	}
	return nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputs(args) {
		root, err := getTreeFile(cc, arg, cfg.decOpts(format.WireFormat)...)
		if err != nil {
			return err
		}
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out, format.TextFormat)...); err != nil {
			return err
		}
	}
	return nil
}
