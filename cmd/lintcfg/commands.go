package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "lintcfg").
		WithSynopsis("lintcfg [opts] command [opts]").
		WithDescription("lintcfg converts linter configurations and installs plugins into them.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lintcfgMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			InstallCommand(cfg),
			PluginsCommand(cfg),
			ServeCommand(cfg))
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg, From: "json", To: "module"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-from fmt] [-to fmt] [file]").
		WithDescription("convert a configuration between json, yaml and module formats").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convertMain(cfg, cc, args)
		})
}

func InstallCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InstallConfig{MainConfig: mainCfg, Pkg: "package.json"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "plugin",
			Aliases:     []string{"p"},
			Description: "plugin to install, may be repeated",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.pluginOpt), "(name)"),
		})
	return cli.NewCommandAt(&cfg.Install, "install").
		WithAliases("i").
		WithSynopsis("install [-format fmt] [-pkg file] -plugin name [-plugin name]... [-w] [-diff] <config>").
		WithDescription("install plugins into a legacy or flat configuration").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return installMain(cfg, cc, args)
		})
}

func PluginsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PluginsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Plugins, "plugins").
		WithAliases("ls").
		WithSynopsis("plugins").
		WithDescription("list the plugin catalog").
		WithRun(func(cc *cli.Context, args []string) error {
			return pluginsMain(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve").
		WithDescription("serve conversions and installations as JSON-RPC 2.0 over stdio").
		WithRun(func(cc *cli.Context, args []string) error {
			return serveMain(cfg, cc, args)
		})
}
