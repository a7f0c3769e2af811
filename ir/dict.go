package ir

import "fmt"

// Add appends a key-value pair to a dict. Existing pairs with the same key
// are left in place.
func (y *Node) Add(key string, val *Node) error {
	if y.Type != DictType {
		return fmt.Errorf("%w: add to %s", ErrWrongType, y.Type)
	}
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, val)
	return nil
}

func (y *Node) AddString(key, val string) error {
	return y.Add(key, FromString(val))
}

func (y *Node) AddBytes(key string, val []byte) error {
	return y.Add(key, FromBytes(val))
}

func (y *Node) AddInt(key string, val int64) error {
	return y.Add(key, FromInt(val))
}

// Index returns the index of the first pair whose key equals key, or -1.
func (y *Node) Index(key string) int {
	if y.Type != DictType {
		return -1
	}
	for i, f := range y.Fields {
		if f != nil && string(f.Bytes) == key {
			return i
		}
	}
	return -1
}

// Lookup returns the value of the first pair whose key matches key byte for
// byte.
func (y *Node) Lookup(key string) (*Node, error) {
	if y.Type != DictType {
		return nil, fmt.Errorf("%w: lookup %q in %s", ErrWrongType, key, y.Type)
	}
	i := y.Index(key)
	if i == -1 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return y.Values[i], nil
}

func (y *Node) lookupType(key string, t Type) (*Node, error) {
	v, err := y.Lookup(key)
	if err != nil {
		return nil, err
	}
	if v.Type != t {
		return nil, fmt.Errorf("%w: %q is %s, not %s", ErrWrongType, key, v.Type, t)
	}
	return v, nil
}

func (y *Node) LookupInt(key string) (int64, error) {
	v, err := y.lookupType(key, IntType)
	if err != nil {
		return 0, err
	}
	return v.Int64, nil
}

// LookupBytes returns the payload of a string value without copying.
func (y *Node) LookupBytes(key string) ([]byte, error) {
	v, err := y.lookupType(key, StringType)
	if err != nil {
		return nil, err
	}
	return v.Bytes, nil
}

func (y *Node) LookupString(key string) (string, error) {
	d, err := y.LookupBytes(key)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func (y *Node) LookupList(key string) ([]*Node, error) {
	v, err := y.lookupType(key, ListType)
	if err != nil {
		return nil, err
	}
	return v.Values, nil
}

func (y *Node) LookupDict(key string) (*Node, error) {
	return y.lookupType(key, DictType)
}
