package ir

import "slices"

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	Int64 int64
	Bytes []byte
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

// FromBytes returns a string node holding a copy of v.
func FromBytes(v []byte) *Node {
	return &Node{
		Type:  StringType,
		Bytes: append([]byte{}, v...),
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:  StringType,
		Bytes: []byte(v),
	}
}

// FromSlice returns a list node owning vs.
func FromSlice(vs []*Node) *Node {
	if vs == nil {
		vs = []*Node{}
	}
	return &Node{
		Type:   ListType,
		Values: vs,
	}
}

func NewList() *Node {
	return FromSlice(nil)
}

func NewDict() *Node {
	return &Node{
		Type:   DictType,
		Fields: []*Node{},
		Values: []*Node{},
	}
}

// Pair is a dictionary entry used to build a dict in a given order.
type Pair struct {
	Key   string
	Value *Node
}

// FromPairs returns a dict with the pairs in the given order. Duplicate keys
// are kept.
func FromPairs(ps ...Pair) *Node {
	res := NewDict()
	for _, p := range ps {
		res.Fields = append(res.Fields, FromString(p.Key))
		res.Values = append(res.Values, p.Value)
	}
	return res
}

// Len returns the number of bytes of a string, the number of elements of a
// list and the number of pairs of a dict. Ints have length 0.
func (y *Node) Len() int {
	switch y.Type {
	case StringType:
		return len(y.Bytes)
	case ListType, DictType:
		return len(y.Values)
	default:
		return 0
	}
}

// Str returns the string payload as a Go string.
func (y *Node) Str() string {
	return string(y.Bytes)
}

// Append adds v to the end of a list.
func (y *Node) Append(vs ...*Node) error {
	if y.Type != ListType {
		return ErrWrongType
	}
	y.Values = append(y.Values, vs...)
	return nil
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Int64 = y.Int64
	dst.Bytes = nil
	if y.Bytes != nil {
		dst.Bytes = slices.Clone(y.Bytes)
	}
	dst.Fields = cloneNodes(y.Fields)
	dst.Values = cloneNodes(y.Values)
	return dst
}

func cloneNodes(ns []*Node) []*Node {
	if ns == nil {
		return nil
	}
	res := make([]*Node, len(ns))
	for i, n := range ns {
		res[i] = n.Clone()
	}
	return res
}
