package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/lintcfg/libdiff"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='color diffs'"`
	NoColor bool `cli:"name=no-color desc='never color diffs'"`

	Main *cli.Command
}

// diffColors returns the colors for diffs written to w.
func (cfg *MainConfig) diffColors(w io.Writer) *libdiff.Colors {
	switch {
	case cfg.NoColor:
		return nil
	case cfg.Color:
		return libdiff.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return libdiff.NewColors()
	}
	return nil
}

type ConvertConfig struct {
	*MainConfig
	From string `cli:"name=from aliases=f desc='input format: json/j, yaml/y, module/m'"`
	To   string `cli:"name=to aliases=t desc='output format: json/j, yaml/y, module/m'"`

	Convert *cli.Command
}

type InstallConfig struct {
	*MainConfig
	Format  string `cli:"name=format aliases=F desc='config format: json, yaml, cjs or flat (default from the file name)'"`
	Pkg     string `cli:"name=pkg desc='package.json of a legacy config'"`
	Write   bool   `cli:"name=w desc='write the results to the files'"`
	Diff    bool   `cli:"name=diff aliases=d desc='print a diff of the changes'"`
	Plugins []string

	Install *cli.Command
}

func (cfg *InstallConfig) pluginOpt(_ *cli.Context, a string) (any, error) {
	cfg.Plugins = append(cfg.Plugins, a)
	return a, nil
}

type PluginsConfig struct {
	*MainConfig
	Plugins *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Serve *cli.Command
}
