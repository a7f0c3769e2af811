// Package libdiff computes structural differences between bencode trees
// and applies them.
//
// Dicts are compared key by key, so reordering keys is not a difference.
// Lists are compared index by index. Changes are addressed with the path
// syntax of package ir.
package libdiff
