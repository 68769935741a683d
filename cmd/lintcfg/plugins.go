package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/lintcfg"
)

func pluginsMain(cfg *PluginsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Plugins.Parse(cc, args)
	if err != nil {
		return err
	}
	ps, err := lintcfg.Plugins(args...)
	if err != nil {
		return err
	}
	for _, p := range ps {
		var kinds []string
		if p.Legacy != nil {
			kinds = append(kinds, "legacy")
		}
		if p.Flat != nil {
			kinds = append(kinds, "flat")
		}
		deps := slices.Sorted(maps.Keys(p.DevDependencies))
		fmt.Fprintf(cc.Out, "%-20s %-12s %s\n", p.Name, strings.Join(kinds, ","), strings.Join(deps, " "))
	}
	return nil
}
