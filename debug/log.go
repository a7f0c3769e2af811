package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/bencode/dump"
	"github.com/signadot/bencode/ir"
)

type Bencode struct{ *ir.Node }

func (y Bencode) String() string {
	buf := bytes.NewBuffer(nil)
	if err := dump.Dump(y.Node, buf, dump.Truncate(64)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", y.Node)
	}
	return buf.String()
}

// Output receives everything written by Logf.
var Output io.Writer = os.Stderr

// Logf writes to Output, rendering *ir.Node arguments with dump.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok && x != nil {
			args[i] = Bencode{x}.String()
		}
	}
	fmt.Fprintf(Output, msg, args...)
}
