package torrent

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/signadot/bencode/encode"
	"github.com/signadot/bencode/ir"
)

const HashSize = sha1.Size

type Hash [HashSize]byte

func (h Hash) String() string { return h.HexString() }

func (h Hash) HexString() string { return hex.EncodeToString(h[:]) }

func (h Hash) IsZero() bool { return h == Hash{} }

// HashNode returns the SHA-1 of the encoding of node.
func HashNode(node *ir.Node) (Hash, error) {
	d, err := encode.Marshal(node)
	if err != nil {
		return Hash{}, err
	}
	return sha1.Sum(d), nil
}
