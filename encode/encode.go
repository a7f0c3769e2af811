package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/signadot/bencode/debug"
	"github.com/signadot/bencode/ir"
	"github.com/signadot/bencode/token"
)

var (
	ErrShortBuffer = errors.New("short buffer")
	ErrEncoding    = errors.New("encoding error")
)

// EncState is the state of one encoding pass. A nil dst means the pass only
// counts bytes.
type EncState struct {
	dst      []byte
	n        int
	sortKeys bool
}

// Encode writes the encoding of node into dst and returns the number of
// bytes written. If dst is nil nothing is written and the returned count is
// the exact size dst needs to have.
//
// In write mode a dst that is too small yields ErrShortBuffer; the bytes
// written before the failure are unspecified.
func Encode(node *ir.Node, dst []byte, opts ...EncodeOption) (int, error) {
	es := &EncState{dst: dst}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, es); err != nil {
		if debug.Encode() {
			debug.Logf("encode failed after %d bytes: %v\n", es.n, err)
		}
		return 0, err
	}
	return es.n, nil
}

// Size returns the encoded size of node. It panics on a malformed tree.
func Size(node *ir.Node, opts ...EncodeOption) int {
	n, err := Encode(node, nil, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// Marshal returns the encoding of node in a buffer of exactly the right
// size.
func Marshal(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	n, err := Encode(node, nil, opts...)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	m, err := Encode(node, buf, opts...)
	if err != nil {
		return nil, err
	}
	if m != n {
		return nil, fmt.Errorf("%w: wrote %d bytes, sized %d", ErrEncoding, m, n)
	}
	return buf, nil
}

// EncodeTo writes the encoding of node to w.
func EncodeTo(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(node, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func encode(node *ir.Node, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.IntType:
		if err := es.writeByte(token.IntStart); err != nil {
			return err
		}
		if err := es.writeInt(node.Int64); err != nil {
			return err
		}
		return es.writeByte(token.End)
	case ir.StringType:
		return es.writeString(node.Bytes)
	case ir.ListType:
		if err := es.writeByte(token.ListStart); err != nil {
			return err
		}
		for _, v := range node.Values {
			if err := encode(v, es); err != nil {
				return err
			}
		}
		return es.writeByte(token.End)
	case ir.DictType:
		return encodeDict(node, es)
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
	}
}

func encodeDict(node *ir.Node, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: dict with %d keys and %d values", ErrEncoding, len(node.Fields), len(node.Values))
	}
	if err := es.writeByte(token.DictStart); err != nil {
		return err
	}
	for _, i := range es.pairOrder(node) {
		key := node.Fields[i]
		if key == nil || key.Type != ir.StringType {
			return fmt.Errorf("%w: dict key %d is not a string", ErrEncoding, i)
		}
		if err := es.writeString(key.Bytes); err != nil {
			return err
		}
		if err := encode(node.Values[i], es); err != nil {
			return err
		}
	}
	return es.writeByte(token.End)
}

func (es *EncState) pairOrder(node *ir.Node) []int {
	order := make([]int, len(node.Fields))
	for i := range order {
		order[i] = i
	}
	if !es.sortKeys {
		return order
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ka, kb := node.Fields[a], node.Fields[b]
		if ka == nil || kb == nil {
			return 0
		}
		return bytes.Compare(ka.Bytes, kb.Bytes)
	})
	return order
}

func (es *EncState) reserve(k int) ([]byte, error) {
	if es.dst == nil {
		es.n += k
		return nil, nil
	}
	if len(es.dst)-es.n < k {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, k, es.n, len(es.dst)-es.n)
	}
	res := es.dst[es.n : es.n+k]
	es.n += k
	return res, nil
}

func (es *EncState) writeByte(c byte) error {
	b, err := es.reserve(1)
	if err != nil || b == nil {
		return err
	}
	b[0] = c
	return nil
}

func (es *EncState) writeInt(v int64) error {
	b, err := es.reserve(token.IntLen(v))
	if err != nil || b == nil {
		return err
	}
	var tmp [20]byte
	copy(b, token.AppendInt(tmp[:0], v))
	return nil
}

func (es *EncState) writeString(d []byte) error {
	if err := es.writeInt(int64(len(d))); err != nil {
		return err
	}
	if err := es.writeByte(token.Colon); err != nil {
		return err
	}
	b, err := es.reserve(len(d))
	if err != nil || b == nil {
		return err
	}
	copy(b, d)
	return nil
}
