package eval

import (
	"slices"

	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/value"
)

// ToNode builds an expression for v, which is a resolved value or one of
// the Go types map[string]any, int and []string. Unsupported values
// become undefined.
func ToNode(v any) *ir.Node {
	switch x := v.(type) {
	case nil:
		return ir.Null()
	case bool:
		return ir.FromBool(x)
	case float64:
		if x < 0 {
			n := &ir.Node{Type: ir.UnaryType, Name: "-", X: ir.FromNumber(-x)}
			n.X.Parent = n
			return n
		}
		return ir.FromNumber(x)
	case int:
		return ToNode(float64(x))
	case string:
		return ir.FromString(x)
	case []string:
		return ToNode(value.FromStrings(x))
	case []any:
		vs := make([]*ir.Node, len(x))
		for i, e := range x {
			vs[i] = ToNode(e)
		}
		return ir.FromSlice(vs...)
	case value.Object:
		ps := make([]*ir.Node, len(x))
		for i, m := range x {
			ps[i] = ir.Prop(m.Key, ToNode(m.Value))
		}
		return ir.FromProps(ps...)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		ps := make([]*ir.Node, len(keys))
		for i, k := range keys {
			ps[i] = ir.Prop(k, ToNode(x[k]))
		}
		return ir.FromProps(ps...)
	}
	return ir.Ident("undefined")
}
