package gomap

import (
	"github.com/goccy/go-yaml"
	"github.com/signadot/bencode/encode"
	"github.com/signadot/bencode/parse"
)

// Load decodes bencoded d into p, which is populated by its yaml struct
// tags.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	y, err := ToYAML(node)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(y, p)
}

// Marshal bencodes v, which is first rendered through its yaml struct tags.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	y, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	node, err := FromYAML(y)
	if err != nil {
		return nil, err
	}
	return encode.Marshal(node, opts...)
}
