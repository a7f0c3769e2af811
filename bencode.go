package bencode

import (
	"github.com/signadot/bencode/encode"
	"github.com/signadot/bencode/ir"
	"github.com/signadot/bencode/parse"
)

// Decode decodes d, which must hold exactly one value.
func Decode(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// Encode returns the encoding of node.
func Encode(node *ir.Node, opts ...encode.EncodeOption) ([]byte, error) {
	return encode.Marshal(node, opts...)
}

// Valid reports whether d holds exactly one well formed value.
func Valid(d []byte) bool {
	_, err := parse.Parse(d)
	return err == nil
}
