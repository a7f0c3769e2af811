package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/bencode/debug"
	"github.com/signadot/bencode/gomap"
	"github.com/signadot/bencode/ir"
)

func compile(doc *ir.Node, src string, opts ...expr.Option) (*vm.Program, error) {
	opts = append(exprOpts(doc), opts...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	return prg, nil
}

// Eval evaluates the expression src against doc.
func Eval(doc *ir.Node, src string) (any, error) {
	prg, err := compile(doc, src)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, map[string]any(NewEnv(doc)))
	if debug.Eval() {
		debug.Logf("eval %q on %v: %v (err %v)\n", src, doc, res, err)
	}
	return res, err
}

// EvalNode is like Eval but converts the result into a tree. Null results
// are an error since bencode has no null.
func EvalNode(doc *ir.Node, src string) (*ir.Node, error) {
	v, err := Eval(doc, src)
	if err != nil {
		return nil, err
	}
	return gomap.FromAny(v)
}

// Match reports whether the boolean expression src holds for doc.
func Match(doc *ir.Node, src string) (bool, error) {
	prg, err := compile(doc, src, expr.AsBool())
	if err != nil {
		return false, err
	}
	res, err := expr.Run(prg, map[string]any(NewEnv(doc)))
	if err != nil {
		return false, err
	}
	if debug.Eval() {
		debug.Logf("match %q on %v: %v\n", src, doc, res)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%q gave %T, not bool", src, res)
	}
	return b, nil
}
