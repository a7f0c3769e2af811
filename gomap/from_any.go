package gomap

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/signadot/bencode/ir"
)

var ErrUnsupported = errors.New("unsupported value")

// FromAny converts a Go value into a bencode tree.
//
// Integers of every width, bool (as 0 or 1), integral floats and
// json.Number, string, []byte, []any, map[string]any (keys sorted) and
// yaml.MapSlice (order kept) are accepted. A map whose only key is "$base64" becomes the decoded
// byte string.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null", ErrUnsupported)
	case *ir.Node:
		return x.Clone(), nil
	case bool:
		if x {
			return ir.FromInt(1), nil
		}
		return ir.FromInt(0), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s", ErrUnsupported, x)
		}
		return fromFloat(f)
	case string:
		return ir.FromString(x), nil
	case []byte:
		return ir.FromBytes(x), nil
	case []any:
		res := ir.NewList()
		for i, elt := range x {
			node, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Values = append(res.Values, node)
		}
		return res, nil
	case map[string]any:
		if d, ok, err := base64Value(len(x), x[Base64Key]); ok || err != nil {
			return d, err
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		res := ir.NewDict()
		for _, k := range keys {
			if err := addAny(res, k, x[k]); err != nil {
				return nil, err
			}
		}
		return res, nil
	case yaml.MapSlice:
		if len(x) == 1 && x[0].Key == Base64Key {
			if d, ok, err := base64Value(1, x[0].Value); ok || err != nil {
				return d, err
			}
		}
		res := ir.NewDict()
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprint(item.Key)
			}
			if err := addAny(res, k, item.Value); err != nil {
				return nil, err
			}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func addAny(dict *ir.Node, k string, v any) error {
	node, err := FromAny(v)
	if err != nil {
		return fmt.Errorf("%s: %w", ir.FieldPath("$", k), err)
	}
	return dict.Add(k, node)
}

func fromUint(v uint64) (*ir.Node, error) {
	if v > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrUnsupported, v)
	}
	return ir.FromInt(int64(v)), nil
}

func fromFloat(v float64) (*ir.Node, error) {
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return nil, fmt.Errorf("%w: non integral number %v", ErrUnsupported, v)
	}
	return ir.FromInt(int64(v)), nil
}

func base64Value(n int, v any) (*ir.Node, bool, error) {
	if n != 1 {
		return nil, false, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, false, nil
	}
	d, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false, fmt.Errorf("%w: bad %s value: %v", ErrUnsupported, Base64Key, err)
	}
	return ir.FromBytes(d), true, nil
}
