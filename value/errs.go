package value

import "errors"

var (
	ErrJSON = errors.New("invalid json")
	ErrYAML = errors.New("invalid yaml")
)
