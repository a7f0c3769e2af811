package libdiff

import (
	"bytes"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/bencode/debug"
	"github.com/signadot/bencode/ir"
)

// Diff returns the changes turning from into to. Equal trees give no
// changes.
//
// List elements removed from the end are reported last index first so
// the result can be applied in order.
func Diff(from, to *ir.Node) []Change {
	res := diff(nil, "$", from, to)
	if debug.Diff() {
		debug.Logf("diff %v -> %v: %d changes\n", from, to, len(res))
	}
	return res
}

func diff(dst []Change, path string, from, to *ir.Node) []Change {
	if from.Type != to.Type {
		return append(dst, replace(path, from, to))
	}
	switch from.Type {
	case ir.IntType:
		if from.Int64 != to.Int64 {
			dst = append(dst, replace(path, from, to))
		}
		return dst
	case ir.StringType:
		if !bytes.Equal(from.Bytes, to.Bytes) {
			dst = append(dst, replace(path, from, to))
		}
		return dst
	case ir.ListType:
		return diffList(dst, path, from, to)
	case ir.DictType:
		return diffDict(dst, path, from, to)
	default:
		return dst
	}
}

func replace(path string, from, to *ir.Node) Change {
	c := Change{Path: path, Kind: Replace, From: from, To: to}
	if from.Type == ir.StringType && to.Type == ir.StringType && utf8.Valid(from.Bytes) && utf8.Valid(to.Bytes) {
		dmp := diffpatch.New()
		c.Text = dmp.DiffCleanupSemantic(dmp.DiffMain(from.Str(), to.Str(), false))
	}
	return c
}

func diffList(dst []Change, path string, from, to *ir.Node) []Change {
	n := min(len(from.Values), len(to.Values))
	for i := range n {
		dst = diff(dst, ir.IndexPath(path, i), from.Values[i], to.Values[i])
	}
	for i := len(from.Values) - 1; i >= n; i-- {
		dst = append(dst, Change{Path: ir.IndexPath(path, i), Kind: Delete, From: from.Values[i]})
	}
	for i := n; i < len(to.Values); i++ {
		dst = append(dst, Change{Path: ir.IndexPath(path, i), Kind: Insert, To: to.Values[i]})
	}
	return dst
}

func diffDict(dst []Change, path string, from, to *ir.Node) []Change {
	if unkeyed(from) || unkeyed(to) {
		if ir.Equal(from, to) {
			return dst
		}
		return append(dst, replace(path, from, to))
	}
	for i, f := range from.Fields {
		key := f.Str()
		p := ir.FieldPath(path, key)
		j := to.Index(key)
		if j == -1 {
			dst = append(dst, Change{Path: p, Kind: Delete, From: from.Values[i]})
			continue
		}
		dst = diff(dst, p, from.Values[i], to.Values[j])
	}
	for j, f := range to.Fields {
		key := f.Str()
		if from.Index(key) == -1 {
			dst = append(dst, Change{Path: ir.FieldPath(path, key), Kind: Insert, To: to.Values[j]})
		}
	}
	return dst
}

// unkeyed reports whether node has a repeated or missing key, in which case
// its pairs cannot be matched up by key.
func unkeyed(node *ir.Node) bool {
	seen := make(map[string]bool, len(node.Fields))
	for _, f := range node.Fields {
		if f == nil {
			return true
		}
		k := f.Str()
		if seen[k] {
			return true
		}
		seen[k] = true
	}
	return false
}
