package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/bencode/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, file := range args {
		d, err := readFile(file)
		if err != nil {
			return err
		}
		_, err = parse.Parse(d, cfg.parseOpts()...)
		if err == nil {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", file)
			}
			continue
		}
		failed++
		if cfg.Quiet {
			continue
		}
		var pe *parse.Error
		if errors.As(err, &pe) {
			fmt.Fprintf(cc.Out, "%s: %s at offset %d: %s\n", file, pe.Kind, pe.Offset(), pe.Detail)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
