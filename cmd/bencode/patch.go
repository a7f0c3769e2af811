package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/bencode"
	"github.com/signadot/bencode/format"
	"github.com/signadot/bencode/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires 1 argument, a json patch", cli.ErrUsage)
	}
	p := []byte(args[0])
	if !cfg.String {
		p, err = readFile(args[0])
		if err != nil {
			return err
		}
	}
	dw := cfg.newDocWriter(cc.Out, format.BencodeFormat)
	return cfg.eachDoc(args[1:], func(_ string, node *ir.Node) error {
		res, err := bencode.Patch(node, p)
		if err != nil {
			return err
		}
		return dw.write(res)
	})
}
