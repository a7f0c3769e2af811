// Package torrent reads BitTorrent metainfo files on top of the bencode
// tree.
//
// The info hash is the SHA-1 of the info dict as re-encoded by package
// encode, which matches the file bytes whenever the file is canonical.
package torrent
