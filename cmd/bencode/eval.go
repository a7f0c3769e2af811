package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/bencode/eval"
	"github.com/signadot/bencode/format"
	"github.com/signadot/bencode/ir"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	dw := cfg.newDocWriter(cc.Out, format.DumpFormat)
	return cfg.eachDoc(args[1:], func(_ string, node *ir.Node) error {
		res, err := eval.EvalNode(node, src)
		if err != nil {
			return err
		}
		return dw.write(res)
	})
}
