// Package bencode decodes and encodes the bencode format used by BitTorrent
// metainfo files and tracker responses.
//
// A document is a tree of *ir.Node values: integers, byte strings, lists
// and dicts. Decode and Encode are thin wrappers over packages parse and
// encode, which carry the options. Match and Trim compare a document
// against a partial one, and Patch applies an RFC 6902 JSON patch.
package bencode
