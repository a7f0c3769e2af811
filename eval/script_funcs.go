package eval

import (
	"encoding/hex"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/signadot/bencode/ir"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return toAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			yRes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(yRes))
			for i, item := range yRes {
				res[i] = toAny(item)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("hex", func(params ...any) (any, error) {
			switch x := params[0].(type) {
			case string:
				return hex.EncodeToString([]byte(x)), nil
			case []byte:
				return hex.EncodeToString(x), nil
			default:
				return nil, fmt.Errorf("hex of %T", x)
			}
		},
			new(func(string) string),
			new(func([]byte) string)),
	}
}
