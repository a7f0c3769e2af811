package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/bencode/format"
	"github.com/signadot/bencode/ir"
)

func conv(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		return err
	}
	var dw *docWriter
	return cfg.eachDoc(args, func(file string, node *ir.Node) error {
		if dw == nil {
			def := format.BencodeFormat
			if cfg.inFormat(file) == format.BencodeFormat {
				def = format.JSONFormat
			}
			dw = cfg.newDocWriter(cc.Out, def)
		}
		return dw.write(node)
	})
}
