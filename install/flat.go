package install

import (
	"bytes"
	"fmt"
	"iter"
	"slices"

	"github.com/signadot/lintcfg/debug"
	"github.com/signadot/lintcfg/encode"
	"github.com/signadot/lintcfg/eval"
	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/parse"
	"github.com/signadot/lintcfg/plugin"
)

// Flat installs plugins into a flat configuration: it binds the imports
// the plugins request, reusing existing imports or requires of the same
// module, and appends the plugins' elements to the exported array.
func Flat(config string, plugins ...*plugin.Descriptor) (res *FlatResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("flat config: %v", r)
		}
	}()
	prog, err := parse.ParseProgram([]byte(config))
	if err != nil {
		return nil, err
	}
	exp := eval.FindExport(prog)
	if exp == nil {
		return nil, fmt.Errorf("%w: no export default or module.exports", ErrStructure)
	}
	root, wrapped, err := rootArray(exp)
	if err != nil {
		return nil, err
	}
	b := newBinder(prog, exp.ESM)
	res = &FlatResult{Config: config, origConfig: config, Changed: wrapped}
	for _, p := range plugins {
		bs := plugin.Bindings{}
		if p.Flat != nil {
			reqs, err := collect(p.Name, p.Flat.Imports)
			if err != nil {
				return nil, err
			}
			for _, req := range reqs {
				local, err := b.bind(req)
				if err != nil {
					return nil, fmt.Errorf("%w %s: %w", ErrPlugin, p.Name, err)
				}
				bs[req.Local] = local
			}
		}
		res.Bindings = append(res.Bindings, bs)
	}
	res.Changed = res.Changed || b.added
	for i, p := range plugins {
		if p.Flat == nil {
			continue
		}
		bs := res.Bindings[i]
		xs, err := collect2(p.Name, func() iter.Seq2[*ir.Node, error] {
			return p.Flat.Expressions(bs)
		})
		if err != nil {
			return nil, err
		}
		if installed(root, xs) {
			continue
		}
		for _, x := range xs {
			if err := root.Append(x); err != nil {
				return nil, err
			}
			res.Changed = true
		}
	}
	if res.Changed {
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(prog, buf); err != nil {
			return nil, err
		}
		res.Config = buf.String()
	}
	if debug.Install() {
		debug.Logf("flat install changed=%t:\n%s", res.Changed, res.Diff(nil))
	}
	return res, nil
}

// installed reports whether every expression of xs is already an element
// of root.
func installed(root *ir.Node, xs []*ir.Node) bool {
	if len(xs) == 0 {
		return true
	}
	for _, x := range xs {
		if !slices.ContainsFunc(root.Values, func(e *ir.Node) bool { return ir.Equal(e, x) }) {
			return false
		}
	}
	return true
}

// rootArray returns the list the configuration elements are appended to,
// wrapping a non array export in an array.
func rootArray(exp *eval.Export) (*ir.Node, bool, error) {
	v := exp.Value
	if v.IsCall("defineConfig") {
		if len(v.Values) == 1 && v.Values[0].Type == ir.ArrayType {
			return v.Values[0], false, nil
		}
		return v, false, nil
	}
	switch v.Type {
	case ir.ArrayType:
		return v, false, nil
	case ir.RawType:
		return nil, false, fmt.Errorf("%w: cannot wrap exported %s", ErrStructure, v.Type)
	}
	arr := ir.FromSlice()
	if err := ir.Replace(v, arr); err != nil {
		return nil, false, err
	}
	elem := v
	if v.Type != ir.ObjectType {
		elem = ir.Spread(v)
	}
	if err := arr.Append(elem); err != nil {
		return nil, false, err
	}
	return arr, true, nil
}

func collect(name string, imports func() iter.Seq[plugin.ImportRequest]) (res []plugin.ImportRequest, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("%w %s: imports: %v", ErrPlugin, name, r)
		}
	}()
	return slices.Collect(imports()), nil
}

func collect2(name string, exprs func() iter.Seq2[*ir.Node, error]) (res []*ir.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("%w %s: expressions: %v", ErrPlugin, name, r)
		}
	}()
	for x, err := range exprs() {
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrPlugin, name, err)
		}
		if x == nil {
			return nil, fmt.Errorf("%w %s: nil expression", ErrPlugin, name)
		}
		res = append(res, x)
	}
	return res, nil
}
