package libdiff

import (
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/bencode/dump"
	"github.com/signadot/bencode/ir"
)

type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

func (k Kind) sigil() string {
	switch k {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change is one difference. From is nil for an Insert and To is nil for a
// Delete. Text is set when both sides of a Replace are UTF-8 strings.
type Change struct {
	Path string
	Kind Kind
	From *ir.Node
	To   *ir.Node
	Text []diffpatch.Diff
}

func (c Change) String() string {
	opt := dump.Truncate(64)
	switch c.Kind {
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path, dump.String(c.To, opt))
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path, dump.String(c.From, opt))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, dump.String(c.From, opt), dump.String(c.To, opt))
	}
}

// Pretty is like String but shows string replacements as an inline,
// terminal coloured character diff.
func (c Change) Pretty() string {
	if c.Text == nil {
		return c.String()
	}
	return fmt.Sprintf("%s %s: %s", c.Kind.sigil(), c.Path, diffpatch.New().DiffPrettyText(c.Text))
}
