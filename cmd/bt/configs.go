package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/bintree/decode"
	"github.com/signadot/bintree/encode"
	"github.com/signadot/bintree/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Gops    bool `cli:"name=gops desc='start a gops agent'"`
	Verbose bool `cli:"name=v desc='log at debug level'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat(def format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return def
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) decOpts(def format.Format) []decode.DecodeOption {
	return []decode.DecodeOption{decode.DecodeFormat(cfg.inFormat(def))}
}

func (cfg *MainConfig) encOpts(w io.Writer, def format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(def)),
		encode.EncodeNewline(true),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type EncodeConfig struct {
	*MainConfig
	AllowReserved bool `cli:"name=r desc='do not reject values the wire form cannot carry'"`

	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	NoValidate bool `cli:"name=novalidate desc='skip the grammar check before decoding'"`

	Decode *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type EqualConfig struct {
	*MainConfig

	Equal *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Tokens bool `cli:"name=tokens desc='show the wire token diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge         bool `cli:"name=m desc='treat the patch as a json merge patch'"`
	String        bool `cli:"name=s desc='patch arg as string'"`
	AllowReserved bool `cli:"name=r desc='accept results the wire form cannot carry'"`

	Patch *cli.Command
}

type FindConfig struct {
	*MainConfig
	Values bool `cli:"name=v desc='print values along with paths'"`

	Find *cli.Command
}

type WalkConfig struct {
	*MainConfig
	Order string `cli:"name=order desc='traversal order: pre, in or post'"`
	Paths bool   `cli:"name=p desc='print node paths, pre-order only'"`

	Walk *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}
