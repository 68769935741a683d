package convert

import (
	"bytes"
	"fmt"

	"github.com/signadot/lintcfg/encode"
	"github.com/signadot/lintcfg/eval"
	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/parse"
	"github.com/signadot/lintcfg/value"
)

func parseExport(text string) (*ir.Node, *eval.Export, error) {
	prog, err := parse.ParseProgram([]byte(text))
	if err != nil {
		return nil, nil, err
	}
	exp := eval.FindExport(prog)
	if exp == nil {
		return nil, nil, ErrNoExport
	}
	return prog, exp, nil
}

// ModuleToJSON resolves the exported value of a module and prints it as
// JSON. The whole value must resolve statically.
func ModuleToJSON(text string) (string, error) {
	prog, exp, err := parseExport(text)
	if err != nil {
		return "", err
	}
	v, ok := eval.Resolve(exp.Value, eval.ModuleScope(prog))
	if !ok {
		return "", fmt.Errorf("%w: exported value is not static", errNotRepresentable)
	}
	return value.EncodeJSON(v, "  "), nil
}

// JSONToModule prints JSON text as module.exports = <value>;
func JSONToModule(text string) (string, error) {
	v, err := value.ParseJSON([]byte(text))
	if err != nil {
		return "", err
	}
	return printModule(ir.ModuleExports(eval.ToNode(v)))
}

func printModule(stmt *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(ir.Program(stmt), buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
