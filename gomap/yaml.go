package gomap

import (
	"github.com/goccy/go-yaml"
	"github.com/signadot/bencode/ir"
)

// ToYAML renders node as a YAML document.
func ToYAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(ToAny(node, Base64(true)))
}

// ToJSON renders node as JSON. Dict key order is kept.
func ToJSON(node *ir.Node) ([]byte, error) {
	return yaml.MarshalWithOptions(ToAny(node, Base64(true)), yaml.JSON())
}

// FromYAML reads a YAML or JSON document into a bencode tree.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}
