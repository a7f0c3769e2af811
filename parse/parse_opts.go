package parse

import (
	"github.com/signadot/bencode/ir"
	"github.com/signadot/bencode/token"
)

const DefaultMaxDepth = 10

type parseOpts struct {
	maxDepth  int
	maxAlloc  int64
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// MaxDepth sets the nesting limit. Values below 1 are ignored.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n >= 1 {
			o.maxDepth = n
		}
	}
}

// MaxAlloc bounds the memory a single decode may allocate for nodes and
// string payloads. Exceeding it fails with ErrOutOfMemory. 0 means no bound.
func MaxAlloc(n int64) ParseOption {
	return func(o *parseOpts) { o.maxAlloc = n }
}

// ParsePositions records the start offset of every decoded node in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

func newOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}
