package eval

import (
	"github.com/signadot/bencode/gomap"
	"github.com/signadot/bencode/ir"
)

// DocVar is the variable bound to the whole document.
const DocVar = "doc"

type Env map[string]any

// NewEnv returns the environment for evaluating expressions against node.
func NewEnv(node *ir.Node) Env {
	root := toAny(node)
	env := Env{}
	if m, ok := root.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	if _, present := env[DocVar]; !present {
		env[DocVar] = root
	}
	return env
}

func toAny(node *ir.Node) any {
	return gomap.ToAny(node, gomap.PlainMaps(true))
}
