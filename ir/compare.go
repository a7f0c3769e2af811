package ir

import (
	"bytes"
	"cmp"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes of different types order as Int < String < List < Dict. Dicts
// compare pair by pair in stored order, so two dicts holding the same pairs
// in a different order are not equal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case IntType:
		return cmp.Compare(a.Int64, b.Int64)
	case StringType:
		return bytes.Compare(a.Bytes, b.Bytes)
	case ListType:
		return compareSeq(a.Values, b.Values)
	case DictType:
		n := min(len(a.Values), len(b.Values))
		for i := range n {
			if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
				return c
			}
			if c := Compare(a.Values[i], b.Values[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.Values), len(b.Values))
	}
	return 0
}

func compareSeq(as, bs []*Node) int {
	n := min(len(as), len(bs))
	for i := range n {
		if c := Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
