package ir

import "fmt"

type Type int

const (
	IntType Type = iota
	StringType
	ListType
	DictType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		IntType:    "Int",
		StringType: "String",
		ListType:   "List",
		DictType:   "Dict",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Int":    IntType,
		"String": StringType,
		"List":   ListType,
		"Dict":   DictType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		IntType,
		StringType,
		ListType,
		DictType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, DictType:
		return false
	default:
		return true
	}
}
