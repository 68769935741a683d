package convert

import (
	"fmt"

	"github.com/signadot/lintcfg/debug"
	"github.com/signadot/lintcfg/format"
)

// Func is a directed conversion.
type Func func(text string) (string, error)

var funcs = map[[2]format.Format]Func{
	{format.JSONFormat, format.ModuleFormat}: JSONToModule,
	{format.JSONFormat, format.YAMLFormat}:   JSONToYAML,
	{format.ModuleFormat, format.JSONFormat}: ModuleToJSON,
	{format.ModuleFormat, format.YAMLFormat}: ModuleToYAML,
	{format.YAMLFormat, format.JSONFormat}:   YAMLToJSON,
	{format.YAMLFormat, format.ModuleFormat}: YAMLToModule,
}

// Convert converts text from one format to another. It returns text
// unchanged when from == to or when the conversion fails.
func Convert(text string, from, to format.Format) string {
	res, err := Text(text, from, to)
	if err != nil {
		if debug.Convert() {
			debug.Logf("convert %s to %s: %v\n", from, to, err)
		}
		return text
	}
	return res
}

// Text converts text from one format to another, reporting why the
// conversion failed.
func Text(text string, from, to format.Format) (res string, err error) {
	if from == to {
		return text, nil
	}
	f, ok := funcs[[2]format.Format{from, to}]
	if !ok {
		return "", fmt.Errorf("%w: no conversion from %d to %d", format.ErrBadFormat, from, to)
	}
	defer func() {
		if r := recover(); r != nil {
			res, err = "", fmt.Errorf("%s to %s: %v", from, to, r)
		}
	}()
	res, err = f(text)
	if err != nil {
		return "", fmt.Errorf("%s to %s: %w", from, to, err)
	}
	if debug.Convert() {
		debug.Logf("convert %s to %s:\n%s\n", from, to, res)
	}
	return res, nil
}
