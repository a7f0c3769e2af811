package dump

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/bencode/ir"
)

// Dump writes the rendering of node to w, followed by a newline.
func Dump(node *ir.Node, w io.Writer, opts ...DumpOption) error {
	ds := &dumpState{w: w}
	for _, opt := range opts {
		opt(&ds.dumpOpts)
	}
	ds.node(node, 0)
	ds.write("\n")
	return ds.err
}

// String returns the rendering of node without the trailing newline.
func String(node *ir.Node, opts ...DumpOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Dump(node, buf, opts...); err != nil {
		return fmt.Sprintf("<dump error: %v>", err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

type dumpState struct {
	dumpOpts
	w   io.Writer
	err error
}

func (ds *dumpState) write(s string) {
	if ds.err != nil {
		return
	}
	_, ds.err = io.WriteString(ds.w, s)
}

func (ds *dumpState) color(t ir.Type, a ColorAttr, s string) {
	if ds.colors != nil {
		s = ds.colors.Color(t, a, s)
	}
	ds.write(s)
}

func (ds *dumpState) newline(indent int) {
	ds.write("\n" + strings.Repeat(" ", indent))
}

func (ds *dumpState) node(node *ir.Node, indent int) {
	if node == nil {
		ds.write("<nil>")
		return
	}
	switch node.Type {
	case ir.IntType:
		ds.color(ir.IntType, ValueColor, strconv.FormatInt(node.Int64, 10))
	case ir.StringType:
		ds.str(node.Bytes, ValueColor)
	case ir.ListType:
		ds.container(node, indent, "[", "]", func(i, indent int) {
			ds.node(node.Values[i], indent+2)
		})
	case ir.DictType:
		ds.container(node, indent, "{", "}", func(i, indent int) {
			var key []byte
			if i < len(node.Fields) && node.Fields[i] != nil {
				key = node.Fields[i].Bytes
			}
			w := ds.str(key, FieldColor)
			ds.color(ir.DictType, SepColor, ": ")
			ds.node(node.Values[i], indent+w+4)
		})
	default:
		ds.write(fmt.Sprintf("<%s>", node.Type))
	}
}

func (ds *dumpState) container(node *ir.Node, indent int, open, close string, elt func(i, indent int)) {
	if len(node.Values) == 0 {
		ds.color(node.Type, SepColor, open+close)
		return
	}
	for i := range node.Values {
		if i == 0 {
			ds.color(node.Type, SepColor, open+" ")
		} else {
			ds.newline(indent)
			ds.color(node.Type, SepColor, ", ")
		}
		elt(i, indent)
	}
	ds.color(node.Type, SepColor, close)
}

// str writes d quoted and returns the number of columns it occupies.
func (ds *dumpState) str(d []byte, attr ColorAttr) int {
	shown := d
	if ds.truncate > 0 && len(d) > ds.truncate {
		shown = d[:ds.truncate]
	}
	buf := make([]byte, 0, len(shown)+2)
	buf = append(buf, '"')
	for _, c := range shown {
		if isPrint(c) {
			buf = append(buf, c)
		} else {
			buf = append(buf, '.')
		}
	}
	buf = append(buf, '"')
	t := ir.StringType
	if attr == FieldColor {
		t = ir.DictType
	}
	ds.color(t, attr, string(buf))
	w := len(buf)
	if len(shown) < len(d) {
		marker := fmt.Sprintf("...(%d bytes)", len(d))
		ds.color(ir.StringType, TruncColor, marker)
		w += len(marker)
	}
	return w
}

func isPrint(c byte) bool {
	return c >= 0x20 && c < 0x7f
}
