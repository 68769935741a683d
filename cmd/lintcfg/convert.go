package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/lintcfg/convert"
	"github.com/signadot/lintcfg/format"
)

func convertMain(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	from, err := format.ParseFormat(cfg.From)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	to, err := format.ParseFormat(cfg.To)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	path := "-"
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		return fmt.Errorf("%w: at most one file", cli.ErrUsage)
	}
	text, err := readInput(cc, path)
	if err != nil {
		return err
	}
	res, err := convert.Text(text, from, to)
	if err != nil {
		return fmt.Errorf("error converting %s from %s to %s: %w", path, from, to, err)
	}
	if _, err := io.WriteString(cc.Out, res); err != nil {
		return err
	}
	if to.IsJSON() {
		_, err = io.WriteString(cc.Out, "\n")
	}
	return err
}
