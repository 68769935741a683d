package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/lintcfg/token"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = token.ErrSyntax
	ErrTrailing = fmt.Errorf("%w: trailing input after expression", ErrParse)
)
