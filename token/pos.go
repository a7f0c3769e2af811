package token

import (
	"fmt"
	"strconv"
)

// Pos is an offset into a document being decoded. Bencode is binary so
// there is no line/column notion, only a byte offset.
type Pos struct {
	I int
	D []byte
}

func (p Pos) Offset() int { return p.I }

// Sample returns up to n bytes on each side of the offset, quoted so that
// arbitrary bytes print safely.
func (p Pos) Sample(n int) string {
	lo := max(0, p.I-n)
	hi := min(p.I+n, len(p.D))
	if lo > hi {
		return `""`
	}
	return strconv.Quote(string(p.D[lo:hi]))
}

func (p Pos) String() string {
	s := p.Sample(5)
	return fmt.Sprintf("`...%s...` at offset %d", s[1:len(s)-1], p.I)
}
