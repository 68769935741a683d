package plugin

import "errors"

var (
	ErrUnknown  = errors.New("unknown plugin")
	ErrTemplate = errors.New("bad expression template")
	ErrCatalog  = errors.New("bad plugin catalog")
)
