package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/lintcfg/encode"
	"github.com/signadot/lintcfg/ir"
)

var out io.Writer = os.Stderr

type JS struct{ *ir.Node }

func (y JS) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x.Type)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *ir.Node:
			args[i] = JS{x}.String()
		case bool, string, float64, int, error, nil:
		case json.Marshaler, map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
