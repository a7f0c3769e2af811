// Package dump renders a bencode tree in a human readable layout.
//
// Integers print in decimal, strings double quoted with non printable bytes
// replaced by '.', lists as [ a, b ] and dicts as { "k": v }. Each element
// after the first starts a new line aligned under the opening bracket.
package dump
