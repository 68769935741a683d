package convert

import "errors"

var (
	ErrNoExport = errors.New("no module.exports or export default")
	// errNotRepresentable signals a module expression without a static
	// data equivalent. It aborts the whole conversion.
	errNotRepresentable = errors.New("not representable")
)
