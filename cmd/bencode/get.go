package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/bencode/format"
	"github.com/signadot/bencode/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	dw := cfg.newDocWriter(cc.Out, format.DumpFormat)
	return cfg.eachDoc(args[1:], func(_ string, node *ir.Node) error {
		if !strings.Contains(path, "[*]") {
			res, err := node.GetPath(path)
			if err != nil {
				return err
			}
			return dw.write(res)
		}
		res, err := node.ListPath(nil, path)
		if err != nil {
			return err
		}
		for _, r := range res {
			if err := dw.write(r); err != nil {
				return err
			}
		}
		return nil
	})
}
