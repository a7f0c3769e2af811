package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed JSONPath-style selector over a tree: `$`, `.key`,
// `.'key with dots'`, `[i]` and `[*]`.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			buf.WriteString(FieldPath("", *x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// FieldPath appends a dict key step to the path string parent.
func FieldPath(parent, key string) string {
	if key != "" && strings.IndexAny(key, "'.*$[]\\") == -1 {
		return parent + "." + key
	}
	return parent + ".'" + strings.NewReplacer("\\", "\\\\", "'", "\\'").Replace(key) + "'"
}

// IndexPath appends a list index step to the path string parent.
func IndexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	if len(p) == 1 {
		return nil, nil
	}
	root := &Path{}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case escaped:
			escaped = false
			res = append(res, c)
		case c == '\\':
			escaped = true
		case c == '\'':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node selected by path. Missing keys and out of range
// indices are ErrNotFound, stepping into the wrong kind of node is
// ErrWrongType. The returned node is part of y, not a copy.
func (y *Node) GetPath(path string) (*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := y
	for ; yp != nil; yp = yp.Next {
		switch {
		case yp.IndexAll:
			return nil, fmt.Errorf("%w: [*] in get", ErrPath)
		case yp.Index != nil:
			if res.Type != ListType {
				return nil, fmt.Errorf("%w: expected list, got %s", ErrWrongType, res.Type)
			}
			index := *yp.Index
			if index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index %d (len %d)", ErrNotFound, index, len(res.Values))
			}
			res = res.Values[index]
		case yp.Field != nil:
			res, err = res.Lookup(*yp.Field)
			if err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// ListPath appends to dst every node matched by path, expanding [*] over
// list elements and dict values. Non-matching branches are skipped.
func (y *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp), nil
}

func (y *Node) listPath(dst []*Node, yp *Path) []*Node {
	if yp == nil {
		return append(dst, y)
	}
	switch y.Type {
	case DictType:
		if yp.IndexAll {
			for _, v := range y.Values {
				dst = v.listPath(dst, yp.Next)
			}
			return dst
		}
		if yp.Field == nil {
			return dst
		}
		if v, err := y.Lookup(*yp.Field); err == nil {
			dst = v.listPath(dst, yp.Next)
		}
		return dst
	case ListType:
		if yp.IndexAll {
			for _, v := range y.Values {
				dst = v.listPath(dst, yp.Next)
			}
			return dst
		}
		if yp.Index != nil && *yp.Index < len(y.Values) {
			dst = y.Values[*yp.Index].listPath(dst, yp.Next)
		}
		return dst
	default:
		return dst
	}
}
