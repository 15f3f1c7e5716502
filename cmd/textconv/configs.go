package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/textconv/encode"
	"github.com/signadot/textconv/format"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='indent children by this many spaces, 0 for a single line'"`

	T bool `cli:"name=t aliases=text desc='output text'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

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

// format picks the output format from -O, then -t/-j/-y, then the
// extension of the -o file.
func (cfg *MainConfig) format() format.Format {
	var fmat format.Format
	if f, ok := format.FromSuffix(cfg.Out); ok {
		fmat = f
	}
	switch {
	case cfg.T:
		fmat = format.TextFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
		encode.Indent(cfg.Indent),
	}
	if cfg.Color {
		// an explicit -color wins over fatih/color's own terminal check
		color.NoColor = false
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type DemoConfig struct {
	*MainConfig

	Demo *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Set string `cli:"name=set desc='value for str2 in the changed tree'"`

	Diff *cli.Command
}
