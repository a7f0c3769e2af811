package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/bencode/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	from, err := cfg.loadOne(args[0])
	if err != nil {
		return err
	}
	to, err := cfg.loadOne(args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	pretty := cfg.colors(cc.Out)
	for _, c := range libdiff.Diff(from, to) {
		s := c.String()
		if pretty {
			s = c.Pretty()
		}
		if _, err := fmt.Fprintln(cc.Out, s); err != nil {
			return err
		}
	}
	return nil
}
