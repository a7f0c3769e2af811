package encode

import "github.com/signadot/bencode/ir"

func MustString(node *ir.Node, opts ...EncodeOption) string {
	d, err := Marshal(node, opts...)
	if err != nil {
		panic(err)
	}
	return string(d)
}

func MustMarshal(node *ir.Node, opts ...EncodeOption) []byte {
	d, err := Marshal(node, opts...)
	if err != nil {
		panic(err)
	}
	return d
}
