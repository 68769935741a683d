package ir

import "errors"

var (
	ErrNotList   = errors.New("node is not a list")
	ErrNotChild  = errors.New("node is not a child of its parent")
	ErrNoParent  = errors.New("node has no parent")
	ErrNotObject = errors.New("node is not an object")
)
