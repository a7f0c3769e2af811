package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/bencode/format"
	"github.com/signadot/bencode/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	dw := cfg.newDocWriter(cc.Out, format.DumpFormat)
	return cfg.eachDoc(args, func(_ string, node *ir.Node) error {
		return dw.write(node)
	})
}
