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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "textconv").
		WithSynopsis("textconv [opts] command [opts]").
		WithDescription("textconv builds value trees and renders them as text, json or yaml.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return textconvMain(cfg, cc, args)
		}).
		WithSubs(
			DemoCommand(cfg),
			DiffCommand(cfg))
}

func DemoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DemoConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Demo, "demo").
		WithAliases("d").
		WithSynopsis("demo").
		WithDescription("render the sample tree followed by its size").
		WithRun(func(cc *cli.Context, args []string) error {
			return demo(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Set: "farewell"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff [-set value]").
		WithDescription("diff the sample tree against a copy with str2 set to value").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
