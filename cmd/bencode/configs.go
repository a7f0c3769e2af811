package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/bencode/dump"
	"github.com/signadot/bencode/encode"
	"github.com/signadot/bencode/format"
	"github.com/signadot/bencode/parse"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='render dumps with color'"`
	Sort     bool `cli:"name=sort desc='encode dict keys in sorted order'"`
	MaxDepth int  `cli:"name=depth desc='maximum nesting depth when decoding'"`
	Truncate int  `cli:"name=trunc desc='truncate dumped strings to this many bytes'"`

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

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.MaxDepth > 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	return []encode.EncodeOption{encode.SortKeys(cfg.Sort)}
}

// inFormat is the format to read file from.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.FromPath(file)
}

// outFormat is the format to write, def unless -O was given.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) dumpOpts(w io.Writer) []dump.DumpOption {
	res := []dump.DumpOption{dump.Truncate(cfg.Truncate)}
	if cfg.colors(w) {
		res = append(res, dump.DumpColors(dump.NewColors()))
	}
	return res
}

// colors reports whether output to w is coloured: -color wins when given,
// otherwise terminals get colour.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	var opts []*cli.Opt
	if cfg.Main != nil {
		opts = cfg.Main.Opts
	}
	for _, opt := range opts {
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

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ConvConfig struct {
	*MainConfig

	Conv *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	Expr   bool `cli:"name=e desc='consider match a boolean expression'"`
	String bool `cli:"name=s desc='consider match a yaml or json string'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as a json string'"`

	Patch *cli.Command
}

type InfoConfig struct {
	*MainConfig
	Files bool `cli:"name=files desc='list the files of multi file torrents'"`

	Info *cli.Command
}
