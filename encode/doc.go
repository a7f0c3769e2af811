// Package encode encodes [ir.Node] trees to bencode bytes.
//
// # Usage
//
//	// exact size, nothing written
//	n, err := encode.Encode(node, nil)
//
//	// write into a caller buffer; fails with ErrShortBuffer if it is too small
//	buf := make([]byte, n)
//	n, err = encode.Encode(node, buf)
//
//	// both steps at once
//	d, err := encode.Marshal(node)
//
// Size query and write mode walk the tree with the same code, so for any
// tree the byte count reported by the first equals the count written by the
// second.
//
// Dictionary pairs are written in stored order. [SortKeys] selects the
// canonical form instead, with keys ordered by their raw bytes.
//
// # Related Packages
//
//   - github.com/signadot/bencode/ir - the tree
//   - github.com/signadot/bencode/parse - decodes bytes to a tree
package encode
