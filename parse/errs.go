package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/bencode/token"
)

var (
	ErrBadFormat      = errors.New("bad format")
	ErrRecursionLimit = errors.New("recursion limit")
	ErrOutOfMemory    = errors.New("out of memory")
)

// Error is a decode failure. Kind is one of ErrBadFormat, ErrRecursionLimit
// or ErrOutOfMemory.
type Error struct {
	Kind   error
	Pos    token.Pos
	Detail string
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func (e *Error) Offset() int {
	return e.Pos.I
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Pos)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Detail, e.Pos)
}
