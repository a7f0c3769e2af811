package libdiff

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/bencode/ir"
)

var ErrApply = errors.New("cannot apply change")

// Apply returns a copy of node with changes applied in order. Dict keys
// address the first pair with that key.
func Apply(node *ir.Node, changes []Change) (*ir.Node, error) {
	res := node.Clone()
	for _, c := range changes {
		var err error
		res, err = apply(res, c)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrApply, c.Path, err)
		}
	}
	return res, nil
}

// Reverse returns the changes undoing changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Kind {
		case Insert:
			r.Kind = Delete
		case Delete:
			r.Kind = Insert
		default:
			r = replace(c.Path, c.To, c.From)
		}
		res[len(changes)-1-i] = r
	}
	return res
}

func apply(root *ir.Node, c Change) (*ir.Node, error) {
	p, err := ir.ParsePath(c.Path)
	if err != nil {
		return nil, err
	}
	if p == nil {
		if c.Kind != Replace {
			return nil, fmt.Errorf("%s at root", c.Kind)
		}
		return c.To.Clone(), nil
	}
	parent := root
	for ; p.Next != nil; p = p.Next {
		parent, err = step(parent, p)
		if err != nil {
			return nil, err
		}
	}
	switch {
	case p.Field != nil:
		return root, applyField(parent, *p.Field, c)
	case p.Index != nil:
		return root, applyIndex(parent, *p.Index, c)
	default:
		return nil, fmt.Errorf("%w: [*]", ir.ErrPath)
	}
}

func step(node *ir.Node, p *ir.Path) (*ir.Node, error) {
	switch {
	case p.Field != nil:
		return node.Lookup(*p.Field)
	case p.Index != nil:
		if node.Type != ir.ListType {
			return nil, fmt.Errorf("%w: expected list, got %s", ir.ErrWrongType, node.Type)
		}
		if *p.Index >= len(node.Values) {
			return nil, fmt.Errorf("%w: index %d", ir.ErrNotFound, *p.Index)
		}
		return node.Values[*p.Index], nil
	default:
		return nil, fmt.Errorf("%w: [*]", ir.ErrPath)
	}
}

func applyField(dict *ir.Node, key string, c Change) error {
	if dict.Type != ir.DictType {
		return fmt.Errorf("%w: expected dict, got %s", ir.ErrWrongType, dict.Type)
	}
	i := dict.Index(key)
	switch c.Kind {
	case Insert:
		if i != -1 {
			return fmt.Errorf("key %q already present", key)
		}
		return dict.Add(key, c.To.Clone())
	case Delete:
		if i == -1 {
			return fmt.Errorf("%w: %q", ir.ErrNotFound, key)
		}
		dict.Fields = slices.Delete(dict.Fields, i, i+1)
		dict.Values = slices.Delete(dict.Values, i, i+1)
	default:
		if i == -1 {
			return fmt.Errorf("%w: %q", ir.ErrNotFound, key)
		}
		dict.Values[i] = c.To.Clone()
	}
	return nil
}

func applyIndex(list *ir.Node, i int, c Change) error {
	if list.Type != ir.ListType {
		return fmt.Errorf("%w: expected list, got %s", ir.ErrWrongType, list.Type)
	}
	switch c.Kind {
	case Insert:
		if i > len(list.Values) {
			return fmt.Errorf("%w: index %d (len %d)", ir.ErrNotFound, i, len(list.Values))
		}
		list.Values = slices.Insert(list.Values, i, c.To.Clone())
	case Delete:
		if i >= len(list.Values) {
			return fmt.Errorf("%w: index %d (len %d)", ir.ErrNotFound, i, len(list.Values))
		}
		list.Values = slices.Delete(list.Values, i, i+1)
	default:
		if i >= len(list.Values) {
			return fmt.Errorf("%w: index %d (len %d)", ir.ErrNotFound, i, len(list.Values))
		}
		list.Values[i] = c.To.Clone()
	}
	return nil
}
