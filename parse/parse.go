package parse

import (
	"errors"
	"unsafe"

	"github.com/signadot/bencode/debug"
	"github.com/signadot/bencode/ir"
	"github.com/signadot/bencode/token"
)

var nodeCost = int64(unsafe.Sizeof(ir.Node{}))

// Decode decodes the first value in d and returns it together with the
// number of bytes it occupies. Bytes after the value are not examined.
func Decode(d []byte, opts ...ParseOption) (*ir.Node, int, error) {
	p := &parser{d: d, opts: newOpts(opts)}
	node, end, err := p.value(0, 1)
	if err != nil {
		if debug.Parse() {
			debug.Logf("decode failed: %v\n", err)
		}
		return nil, 0, err
	}
	return node, end, nil
}

// Parse decodes d, which must hold exactly one value.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	node, n, err := Decode(d, opts...)
	if err != nil {
		return nil, err
	}
	if n != len(d) {
		return nil, &Error{
			Kind:   ErrBadFormat,
			Pos:    token.Pos{I: n, D: d},
			Detail: "trailing data",
		}
	}
	return node, nil
}

// ParseAll decodes a concatenation of values. An empty d yields no values.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	var res []*ir.Node
	off := 0
	for off < len(d) {
		node, n, err := Decode(d[off:], opts...)
		if err != nil {
			var pe *Error
			if errors.As(err, &pe) {
				pe.Pos = token.Pos{I: off + pe.Pos.I, D: d}
			}
			return nil, err
		}
		res = append(res, node)
		off += n
	}
	return res, nil
}

type parser struct {
	d     []byte
	opts  *parseOpts
	alloc int64
}

func (p *parser) errAt(kind error, i int, detail string) error {
	return &Error{Kind: kind, Pos: token.Pos{I: i, D: p.d}, Detail: detail}
}

func (p *parser) charge(i int, n int64) error {
	p.alloc += n
	if p.opts.maxAlloc > 0 && p.alloc > p.opts.maxAlloc {
		return p.errAt(ErrOutOfMemory, i, "allocation budget exceeded")
	}
	return nil
}

func (p *parser) track(node *ir.Node, i int) {
	if p.opts.positions != nil {
		p.opts.positions[node] = &token.Pos{I: i, D: p.d}
	}
}

// value decodes the value starting at offset i and returns the offset just
// past it.
func (p *parser) value(i, depth int) (*ir.Node, int, error) {
	if depth > p.opts.maxDepth {
		return nil, 0, p.errAt(ErrRecursionLimit, i, "nesting too deep")
	}
	if err := p.charge(i, nodeCost); err != nil {
		return nil, 0, err
	}
	var (
		node *ir.Node
		end  int
		err  error
	)
	switch token.Classify(p.d[i:]) {
	case token.Int:
		node, end, err = p.integer(i)
	case token.String:
		node, end, err = p.str(i)
	case token.List:
		node, end, err = p.list(i, depth)
	case token.Dict:
		node, end, err = p.dict(i, depth)
	default:
		if i == len(p.d) {
			return nil, 0, p.errAt(ErrBadFormat, i, "unexpected end of input")
		}
		return nil, 0, p.errAt(ErrBadFormat, i, "unexpected byte")
	}
	if err != nil {
		return nil, 0, err
	}
	p.track(node, i)
	return node, end, nil
}

func (p *parser) integer(i int) (*ir.Node, int, error) {
	j := i + 1
	v, n := token.ParseInt(p.d[j:])
	if n == 0 || (n == 1 && p.d[j] == token.Minus) {
		return nil, 0, p.errAt(ErrBadFormat, j, "integer without digits")
	}
	j += n
	if j == len(p.d) || p.d[j] != token.End {
		return nil, 0, p.errAt(ErrBadFormat, j, "unterminated integer")
	}
	return ir.FromInt(v), j + 1, nil
}

// str decodes `<length>:<bytes>`. It is also used for dict keys, which is
// why it checks for a leading digit itself.
func (p *parser) str(i int) (*ir.Node, int, error) {
	if i == len(p.d) || !token.IsDigit(p.d[i]) {
		return nil, 0, p.errAt(ErrBadFormat, i, "expected string length")
	}
	size, n := token.ParseInt(p.d[i:])
	j := i + n
	if size < 0 {
		return nil, 0, p.errAt(ErrBadFormat, i, "negative string length")
	}
	if j == len(p.d) || p.d[j] != token.Colon {
		return nil, 0, p.errAt(ErrBadFormat, j, "expected ':' after string length")
	}
	j++
	if size > int64(len(p.d)-j) {
		return nil, 0, p.errAt(ErrBadFormat, j, "string length exceeds input")
	}
	if err := p.charge(i, size); err != nil {
		return nil, 0, err
	}
	end := j + int(size)
	return ir.FromBytes(p.d[j:end]), end, nil
}

func (p *parser) list(i, depth int) (*ir.Node, int, error) {
	res := ir.NewList()
	j := i + 1
	for {
		if j == len(p.d) {
			return nil, 0, p.errAt(ErrBadFormat, j, "unterminated list")
		}
		if p.d[j] == token.End {
			return res, j + 1, nil
		}
		child, end, err := p.value(j, depth+1)
		if err != nil {
			return nil, 0, err
		}
		res.Values = append(res.Values, child)
		j = end
	}
}

func (p *parser) dict(i, depth int) (*ir.Node, int, error) {
	res := ir.NewDict()
	j := i + 1
	for {
		if j == len(p.d) {
			return nil, 0, p.errAt(ErrBadFormat, j, "unterminated dict")
		}
		if p.d[j] == token.End {
			return res, j + 1, nil
		}
		if err := p.charge(j, nodeCost); err != nil {
			return nil, 0, err
		}
		key, end, err := p.str(j)
		if err != nil {
			return nil, 0, err
		}
		p.track(key, j)
		val, end, err := p.value(end, depth+1)
		if err != nil {
			return nil, 0, err
		}
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, val)
		j = end
	}
}
