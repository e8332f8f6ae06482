package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "tptp").
		WithSynopsis("tptp [opts] command [opts] [files]").
		WithDescription("tptp reads '.' terminated streams of fof formulas or cnf clauses.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tptpMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			CheckCommand(cfg),
			DumpCommand(cfg),
			SelectCommand(cfg),
			UniqCommand(cfg),
			StatsCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("print formulas in canonical form, one per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtMain(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-d] [files]").
		WithDescription("check that files are in canonical form, exiting 1 if not").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump the tree of each formula as yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s", "sel").
		WithSynopsis("select -e <expr> [-v] [files]").
		WithDescription(selectDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return selectMain(cfg, cc, args)
		})
}

const selectDescription = `select prints the formulas for which an expr-lang expression is true.

The expression sees the formula's stats (see 'tptp stats'), named
Format, Depth, Atoms, Literals, Equalities, Variables,
VariableOccurrences, Quantifiers, Connectives, Ground, Horn and Text,
as well as Symbols and Vars, the sorted functor and variable names.
canon(s) returns the canonical form of the fof formula s.

  tptp select -e 'Ground && Depth < 4' axioms.p
  tptp -cnf select -e 'Horn' clauses.p
  tptp select -e '"$less" in Symbols' problem.p
`

func UniqCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UniqConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Uniq, "uniq").
		WithAliases("u").
		WithSynopsis("uniq [-n] [files]").
		WithDescription("print the sorted set of distinct clauses (cnf only)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return uniq(cfg, cc, args)
		})
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithSynopsis("stats [files]").
		WithDescription("print the stats of each formula as yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
}
