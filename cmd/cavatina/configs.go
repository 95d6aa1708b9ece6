package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/cavatina/encode"
	"github.com/signadot/cavatina/format"
	"github.com/signadot/cavatina/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Wire    bool `cli:"name=wire desc='output json on a single line'"`
	Copy    bool `cli:"name=copy desc='copy names out of input buffers'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug records to stderr'"`
	Gops    bool `cli:"name=gops desc='start a gops diagnostics agent'"`

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

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.CopyNames(cfg.Copy),
		parse.WithLogger(theLog),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.Wire),
	}
	if colors := cfg.colors(w); colors != nil {
		res = append(res, encode.EncodeColors(colors))
	}
	return res
}

// colors returns the colors to use on w, or nil. Unless -color was
// given explicitly, colors are used when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return nil
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type AddConfig struct {
	*MainConfig
	Add *cli.Command
}

type RemoveConfig struct {
	*MainConfig
	Missing bool `cli:"name=f aliases=force desc='do not fail when the target is missing'"`
	Remove  *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}
