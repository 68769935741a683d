package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/lintcfg"
	"github.com/signadot/lintcfg/format"
	"github.com/signadot/lintcfg/install"
)

func installMain(cfg *InstallConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Install.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one config file", cli.ErrUsage)
	}
	if len(cfg.Plugins) == 0 {
		return fmt.Errorf("%w: no -plugin given", cli.ErrUsage)
	}
	path := args[0]
	if cfg.Write && path == "-" {
		return fmt.Errorf("%w: -w needs a file", cli.ErrUsage)
	}
	fmat := cfg.Format
	if fmat == "" {
		fmat = guessFormat(path)
	}
	plugins, err := lintcfg.Plugins(cfg.Plugins...)
	if err != nil {
		return err
	}
	config, err := readInput(cc, path)
	if err != nil {
		return err
	}
	if fmat == "flat" {
		res, err := install.Flat(config, plugins...)
		if err != nil {
			return fmt.Errorf("error installing into %s: %w", path, err)
		}
		switch {
		case cfg.Write:
			return writeChanged(path, config, res.Config)
		case cfg.Diff:
			_, err = io.WriteString(cc.Out, res.Diff(cfg.diffColors(cc.Out)))
		default:
			_, err = io.WriteString(cc.Out, res.Config)
		}
		return err
	}
	lf, err := format.ParseLegacyFormat(fmat)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	pkg, err := readInput(cc, cfg.Pkg)
	if err != nil {
		return err
	}
	res, err := install.Legacy(pkg, config, lf, plugins...)
	if err != nil {
		return fmt.Errorf("error installing into %s: %w", path, err)
	}
	switch {
	case cfg.Write:
		if err := writeChanged(cfg.Pkg, pkg, res.PackageJSON); err != nil {
			return err
		}
		return writeChanged(path, config, res.Config)
	case cfg.Diff:
		_, err = io.WriteString(cc.Out, res.Diff(cfg.diffColors(cc.Out)))
	default:
		_, err = fmt.Fprintf(cc.Out, "%s\n---\n%s", res.PackageJSON, res.Config)
	}
	return err
}

// guessFormat returns the config format suggested by the name of path.
func guessFormat(path string) string {
	base := filepath.Base(path)
	switch ext := filepath.Ext(base); {
	case strings.HasPrefix(base, "eslint.config."):
		return "flat"
	case ext == ".yaml", ext == ".yml":
		return "yaml"
	case ext == ".js", ext == ".cjs":
		return "cjs"
	default:
		return "json"
	}
}

func writeChanged(path, old, text string) error {
	if old == text {
		return nil
	}
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), st.Mode().Perm())
}
