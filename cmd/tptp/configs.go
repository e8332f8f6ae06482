package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/tptp-format/go-tptp/encode"
	"github.com/signadot/tptp-format/go-tptp/format"
	"github.com/signadot/tptp-format/go-tptp/parse"
)

// defaultMaxDepth bounds nesting when neither -depth nor the config
// file sets a limit.
const defaultMaxDepth = 4096

type MainConfig struct {
	CNF    bool   `cli:"name=cnf desc='read cnf clauses instead of fof formulas'"`
	Color  bool   `cli:"name=color desc='encode with color'"`
	Depth  int    `cli:"name=depth desc='maximum nesting depth, 0 for no limit'"`
	Config string `cli:"name=config desc='yaml file with default options'"`
	Gops   bool   `cli:"name=gops desc='start a gops diagnostics agent'"`

	File *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// FileConfig holds the defaults read with -config.  Options given on the
// command line take precedence.
type FileConfig struct {
	Format   *format.Format `yaml:"format"`
	MaxDepth *int           `yaml:"maxDepth"`
	Color    *bool          `yaml:"color"`
}

func loadConfig(path string) (*FileConfig, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	res := &FileConfig{}
	if err := yaml.UnmarshalWithOptions(d, res, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("error in config %q: %w", path, err)
	}
	return res, nil
}

// isSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) isSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) format() format.Format {
	switch {
	case cfg.CNF:
		return format.CNFFormat
	case cfg.File != nil && cfg.File.Format != nil:
		return *cfg.File.Format
	}
	return format.FOFFormat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	depth := defaultMaxDepth
	switch {
	case cfg.isSet("depth"):
		depth = cfg.Depth
	case cfg.File != nil && cfg.File.MaxDepth != nil:
		depth = *cfg.File.MaxDepth
	}
	return []parse.ParseOption{
		parse.ParseFormat(cfg.format()),
		parse.ParseMaxDepth(depth),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeTerminator(true)}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether output to w is highlighted: -color, then the
// config file, then whether w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color || cfg.isSet("color") {
		return cfg.Color
	}
	if cfg.File != nil && cfg.File.Color != nil {
		return *cfg.File.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FmtConfig struct {
	*MainConfig
	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d aliases=diff desc='show the difference from canonical form'"`
	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Expr   string `cli:"name=e desc='expr-lang expression selecting formulas'"`
	Invert bool   `cli:"name=v desc='print the formulas which are not selected'"`
	Select *cli.Command
}

type UniqConfig struct {
	*MainConfig
	Count bool `cli:"name=n desc='print only the number of distinct clauses'"`
	Uniq  *cli.Command
}

type StatsConfig struct {
	*MainConfig
	Stats *cli.Command
}
