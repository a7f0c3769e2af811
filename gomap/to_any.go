package gomap

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/signadot/bencode/ir"
)

// ToAny converts node into int64, string, []byte, []any and yaml.MapSlice
// values.
func ToAny(node *ir.Node, opts ...ToOption) any {
	o := &toOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return o.toAny(node)
}

func (o *toOpts) toAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.IntType:
		return node.Int64
	case ir.StringType:
		return o.str(node.Bytes)
	case ir.ListType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = o.toAny(v)
		}
		return res
	case ir.DictType:
		if o.plainMaps {
			res := make(map[string]any, len(node.Values))
			for i, v := range node.Values {
				k := node.Fields[i].Str()
				if _, present := res[k]; present {
					continue
				}
				res[k] = o.toAny(v)
			}
			return res
		}
		res := make(yaml.MapSlice, len(node.Values))
		for i, v := range node.Values {
			res[i] = yaml.MapItem{Key: node.Fields[i].Str(), Value: o.toAny(v)}
		}
		return res
	default:
		return nil
	}
}

func (o *toOpts) str(d []byte) any {
	if utf8.Valid(d) {
		return string(d)
	}
	if !o.base64 {
		return append([]byte{}, d...)
	}
	b64 := base64.StdEncoding.EncodeToString(d)
	if o.plainMaps {
		return map[string]any{Base64Key: b64}
	}
	return yaml.MapSlice{{Key: Base64Key, Value: b64}}
}
