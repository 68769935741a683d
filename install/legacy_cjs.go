package install

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/signadot/lintcfg/encode"
	"github.com/signadot/lintcfg/eval"
	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/parse"
	"github.com/signadot/lintcfg/value"
)

type cjsDoc struct {
	prog, obj *ir.Node
	scope     *eval.Scope
}

func newCJSDoc(text string) (*cjsDoc, error) {
	prog, err := parse.ParseProgram([]byte(text))
	if err != nil {
		return nil, err
	}
	exp := eval.FindExport(prog)
	switch {
	case exp == nil:
		return nil, fmt.Errorf("%w: no module.exports assignment", ErrStructure)
	case exp.ESM:
		return nil, fmt.Errorf("%w: export default in a legacy config", ErrUnsupported)
	case exp.Value.Type != ir.ObjectType:
		return nil, fmt.Errorf("%w: module.exports is %s, not an object literal", ErrStructure, exp.Value.Type)
	}
	return &cjsDoc{prog: prog, obj: exp.Value, scope: eval.ModuleScope(prog)}, nil
}

func (d *cjsDoc) mergeList(key string, add []string) (bool, error) {
	p := d.obj.Prop(key)
	if p == nil {
		return true, d.obj.Append(ir.Prop(key, eval.ToNode(add)))
	}
	l := flatten(p.Value, d.scope)
	var missing []*ir.Node
	for _, a := range add {
		if !l.known[a] {
			missing = append(missing, ir.FromString(a))
			l.known[a] = true
		}
	}
	if len(missing) == 0 {
		return false, nil
	}
	return true, l.append(p.Value, missing)
}

// list is the flattened view of a list valued field.
type list struct {
	// base is the array literal holding the field's elements, possibly
	// inside a .flat() call.
	base *ir.Node
	// wrapped is set when base is the object of a .flat() call.
	wrapped bool
	elems   []*ir.Node
	known   map[string]bool
	// nested is set when elements might be arrays.
	nested bool
	// rebuild is set when the field has to be rewritten to hold the
	// flattened elements.
	rebuild bool
}

func flatten(v *ir.Node, s *eval.Scope) *list {
	l := &list{known: map[string]bool{}}
	switch {
	case v.Type == ir.ArrayType:
		l.base = v
		l.add(s, v.Values...)
	case isFlatCall(v):
		l.base, l.wrapped = v.X.X, true
		l.add(s, l.base.Values...)
	default:
		l.rebuild = true
		l.add(s, v)
	}
	return l
}

// isFlatCall reports whether n is [...].flat().
func isFlatCall(n *ir.Node) bool {
	if n.Type != ir.CallType || len(n.Values) != 0 || n.X.Type != ir.MemberType {
		return false
	}
	k, ok := n.X.KeyName()
	return ok && k == "flat" && n.X.X.Type == ir.ArrayType
}

func (l *list) add(s *eval.Scope, elems ...*ir.Node) {
	for _, e := range elems {
		switch {
		case e.Type == ir.ArrayType:
			l.rebuild = true
			l.add(s, e.Values...)
			continue
		case isFlatCall(e):
			l.rebuild = true
			l.add(s, e.X.X.Values...)
			continue
		case e.Type == ir.SpreadType && e.X.Type == ir.ArrayType:
			l.rebuild = true
			l.add(s, e.X.Values...)
			continue
		}
		l.elems = append(l.elems, e)
		x := e
		if e.Type == ir.SpreadType {
			x = e.X
		}
		v, ok := eval.Resolve(x, s)
		if !ok {
			if e.Type != ir.SpreadType {
				l.nested = true
			}
			continue
		}
		if ss, ok := value.Strings(v); ok {
			for _, str := range ss {
				l.known[str] = true
			}
		}
		if _, ok := v.([]any); ok && e.Type != ir.SpreadType {
			l.nested = true
		}
	}
}

// append adds elems to the field whose current value is old.
func (l *list) append(old *ir.Node, elems []*ir.Node) error {
	if !l.rebuild && l.base != nil && (l.wrapped || !l.nested) {
		return l.base.Append(elems...)
	}
	arr := ir.FromSlice()
	repl := arr
	if l.wrapped || l.nested {
		repl = ir.Call(ir.Member(arr, "flat"))
	}
	if err := ir.Replace(old, repl); err != nil {
		return err
	}
	return arr.Append(append(slices.Clone(l.elems), elems...)...)
}

func (d *cjsDoc) mergeOverride(o value.Object) (bool, error) {
	p := d.obj.Prop("overrides")
	if p == nil {
		return true, d.obj.Append(ir.Prop("overrides", ir.FromSlice(eval.ToNode(o))))
	}
	arr := p.Value
	if isFlatCall(arr) {
		arr = arr.X.X
	}
	if arr.Type != ir.ArrayType {
		return false, fmt.Errorf("%w: overrides is %s, not an array literal", ErrStructure, arr.Type)
	}
	files := overrideFiles(o)
	for _, e := range arr.Values {
		if e.Type == ir.SpreadType {
			continue
		}
		fv, ok := d.field(e, "files")
		if !ok {
			continue
		}
		if fs, ok := value.Strings(fv); !ok || !slices.Equal(fs, files) {
			continue
		}
		changed := false
		for _, m := range o {
			if m.Key == "files" {
				continue
			}
			if cur, ok := d.field(e, m.Key); ok && value.Equal(cur, m.Value) {
				continue
			}
			if e.Type != ir.ObjectType {
				return false, fmt.Errorf("%w: cannot merge into %s override at %s", ErrStructure, e.Type, e.Path())
			}
			if err := e.SetProp(m.Key, eval.ToNode(m.Value)); err != nil {
				return false, err
			}
			changed = true
		}
		return changed, nil
	}
	return true, arr.Append(eval.ToNode(o))
}

// field resolves field key of override e.
func (d *cjsDoc) field(e *ir.Node, key string) (any, bool) {
	if e.Type == ir.ObjectType {
		p := e.Prop(key)
		if p == nil {
			return nil, false
		}
		return eval.Resolve(p.Value, d.scope)
	}
	v, ok := eval.Resolve(e, d.scope)
	if !ok {
		return nil, false
	}
	obj, ok := v.(value.Object)
	if !ok {
		return nil, false
	}
	return obj.Get(key)
}

func (d *cjsDoc) String() (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(d.prog, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
