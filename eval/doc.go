// Package eval evaluates expr-lang expressions against bencode documents.
//
// The environment of an expression holds the root dict's keys as variables
// and the whole document as doc. Strings that are valid UTF-8 are Go
// strings, other strings are []byte. The functions getpath, listpath and
// hex are available in addition to the expr builtins.
package eval
