package bencode

import (
	"bytes"

	"github.com/signadot/bencode/debug"
	"github.com/signadot/bencode/ir"
)

// Match reports whether doc contains match. Integers and strings must be
// equal, lists must have the same length with matching elements, and every
// key of a match dict must be present in the doc dict with a matching
// value. Keys compare with the first pair holding them.
func Match(doc, match *ir.Node) bool {
	if debug.Eval() {
		debug.Logf("match %v against %v\n", doc, match)
	}
	if doc.Type != match.Type {
		return false
	}
	switch match.Type {
	case ir.DictType:
		return matchDict(doc, match)
	case ir.ListType:
		return matchList(doc, match)
	case ir.StringType:
		return bytes.Equal(doc.Bytes, match.Bytes)
	case ir.IntType:
		return doc.Int64 == match.Int64
	}
	return false
}

func matchDict(doc, match *ir.Node) bool {
	for i, field := range match.Fields {
		dv, err := doc.Lookup(field.Str())
		if err != nil {
			return false
		}
		if !Match(dv, match.Values[i]) {
			return false
		}
	}
	return true
}

func matchList(doc, match *ir.Node) bool {
	if len(doc.Values) != len(match.Values) {
		return false
	}
	for i := range doc.Values {
		if !Match(doc.Values[i], match.Values[i]) {
			return false
		}
	}
	return true
}

// Trim filters doc down to the keys present in match. Lists keep, for each
// match element, the first unused doc element that matches it.
func Trim(match, doc *ir.Node) *ir.Node {
	if match.Type != doc.Type {
		return doc.Clone()
	}
	switch match.Type {
	case ir.DictType:
		res := ir.NewDict()
		for i, field := range doc.Fields {
			mv, err := match.Lookup(field.Str())
			if err != nil {
				continue
			}
			res.Fields = append(res.Fields, field.Clone())
			res.Values = append(res.Values, Trim(mv, doc.Values[i]))
		}
		return res
	case ir.ListType:
		res := ir.NewList()
		used := make([]bool, len(doc.Values))
		for _, me := range match.Values {
			for i, de := range doc.Values {
				if used[i] || !Match(de, me) {
					continue
				}
				res.Values = append(res.Values, Trim(me, de))
				used[i] = true
				break
			}
		}
		return res
	default:
		return doc.Clone()
	}
}
