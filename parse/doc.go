// Package parse decodes bencode bytes into [ir.Node] trees.
//
// # Usage
//
//	// decode one value, reporting how many bytes it used
//	node, n, err := parse.Decode(d)
//
//	// decode a whole buffer holding exactly one value
//	node, err := parse.Parse(d)
//
//	// decode a concatenation of values
//	nodes, err := parse.ParseAll(d)
//
// # Errors
//
// Every failure is an [*Error] which unwraps to exactly one of
// [ErrBadFormat], [ErrRecursionLimit] or [ErrOutOfMemory]. The offset and
// detail carried by the error are diagnostics only. No partial tree is ever
// returned.
//
// Nesting is limited to [DefaultMaxDepth] levels, counting the top level
// value as 1. The limit is checked before a nested value is looked at, so
// adversarial input cannot grow the stack.
//
// The decoder is lenient about integers: leading zeros (`i03e`) and negative
// zero (`i-0e`) decode to 0, and out of range values saturate to the int64
// bounds.
//
// # Related Packages
//
//   - github.com/signadot/bencode/ir - the tree
//   - github.com/signadot/bencode/encode - encodes a tree to bytes
package parse
