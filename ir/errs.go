package ir

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrWrongType = errors.New("wrong type")
	ErrPath      = errors.New("bad path")
)
