package install

import "errors"

var (
	// ErrUnsupported reports a configuration shape which is valid but
	// not supported by an installer.
	ErrUnsupported = errors.New("not yet supported")
	// ErrStructure reports an expected object, array or export which was
	// not found.
	ErrStructure = errors.New("unexpected structure")
	// ErrPlugin reports a plugin which failed to produce its imports or
	// expressions.
	ErrPlugin = errors.New("plugin failed")
)
