package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/bencode"
	"github.com/signadot/bencode/eval"
	"github.com/signadot/bencode/format"
	"github.com/signadot/bencode/gomap"
	"github.com/signadot/bencode/ir"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	pred, err := getMatch(cfg, args[0])
	if err != nil {
		return err
	}
	dw := cfg.newDocWriter(cc.Out, format.DumpFormat)
	return cfg.eachDoc(args[1:], func(_ string, node *ir.Node) error {
		res, err := pred(node)
		if err != nil || res == nil {
			return err
		}
		return dw.write(res)
	})
}

// getMatch returns a function giving the document to output for a match
// and nil otherwise.
func getMatch(cfg *MatchConfig, arg string) (func(*ir.Node) (*ir.Node, error), error) {
	if count(cfg.Expr, cfg.String, cfg.File) > 1 {
		return nil, fmt.Errorf("%w: only one of -e, -s, -f may be specified", cli.ErrUsage)
	}
	if cfg.Expr {
		return func(node *ir.Node) (*ir.Node, error) {
			ok, err := eval.Match(node, arg)
			if err != nil || !ok {
				return nil, err
			}
			return node, nil
		}, nil
	}
	var (
		m   *ir.Node
		err error
	)
	if cfg.File {
		m, err = cfg.loadOne(arg)
	} else {
		m, err = gomap.FromYAML([]byte(arg))
	}
	if err != nil {
		return nil, fmt.Errorf("error reading match: %w", err)
	}
	return func(node *ir.Node) (*ir.Node, error) {
		if !bencode.Match(node, m) {
			return nil, nil
		}
		if cfg.Trim {
			return bencode.Trim(m, node), nil
		}
		return node, nil
	}, nil
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
