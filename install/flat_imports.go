package install

import (
	"errors"
	"fmt"

	"github.com/signadot/lintcfg/eval"
	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/plugin"
	"github.com/signadot/lintcfg/token"
)

// binder resolves import requests to local names of a program, adding
// import or require statements when needed.
type binder struct {
	prog  *ir.Node
	scope *eval.Scope
	esm   bool
	used  map[string]bool
	// at is where the next new statement goes.
	at    int
	synth map[*ir.Node]bool
	added bool
}

func newBinder(prog *ir.Node, esm bool) *binder {
	b := &binder{
		prog:  prog,
		scope: eval.ModuleScope(prog),
		esm:   esm,
		used:  map[string]bool{},
		at:    insertionPoint(prog),
		synth: map[*ir.Node]bool{},
	}
	for _, n := range b.scope.Names() {
		b.used[n] = true
	}
	for _, n := range eval.Identifiers(prog) {
		b.used[n] = true
	}
	return b
}

// insertionPoint returns the index after the last import or require
// statement, or after the leading directives when there is none.
func insertionPoint(prog *ir.Node) int {
	at := -1
	for i, s := range prog.Values {
		if isImportStmt(s) {
			at = i
		}
	}
	if at != -1 {
		return at + 1
	}
	i := 0
	for i < len(prog.Values) && isDirective(prog.Values[i]) {
		i++
	}
	return i
}

func isImportStmt(s *ir.Node) bool {
	switch s.Type {
	case ir.ImportType:
		return true
	case ir.VarType:
		for _, d := range s.Values {
			if requireOf(d.Value) == "" {
				return false
			}
		}
		return len(s.Values) != 0
	}
	return false
}

func isDirective(s *ir.Node) bool {
	return s.Type == ir.ExprStmtType && s.X.Type == ir.StringType
}

// requireOf returns the module of require("m") or require("m").x.
func requireOf(n *ir.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == ir.MemberType {
		n = n.X
	}
	return eval.RequireSource(n)
}

func (b *binder) bind(req plugin.ImportRequest) (string, error) {
	switch {
	case req.Source == "":
		return "", errors.New("import request without source")
	case !token.IsIdentifier(req.Local):
		return "", fmt.Errorf("invalid local name %q", req.Local)
	case req.Kind == ir.NamedSpec && req.Imported == "":
		return "", fmt.Errorf("named import of %q without imported name", req.Source)
	}
	if b.esm {
		return b.bindImport(req)
	}
	return b.bindRequire(req)
}

// fresh returns name, prefixed with underscores until it is unused.
func (b *binder) fresh(name string) string {
	for b.used[name] {
		name = "_" + name
	}
	b.used[name] = true
	return name
}

func (b *binder) insert(stmt *ir.Node) error {
	if err := b.prog.InsertAt(b.at, stmt); err != nil {
		return err
	}
	b.at++
	b.synth[stmt] = true
	b.added = true
	return nil
}

func (b *binder) bindImport(req plugin.ImportRequest) (string, error) {
	for _, s := range b.prog.Values {
		if s.Type != ir.ImportType || s.String != req.Source {
			continue
		}
		for _, sp := range s.Values {
			if compatible(sp, req) {
				return sp.Name, nil
			}
		}
	}
	local := b.fresh(req.Local)
	spec := ir.Specifier(req.Kind, req.Imported, local)
	for _, s := range b.prog.Values {
		if b.synth[s] && s.Type == ir.ImportType && s.String == req.Source && canMerge(s, req.Kind) {
			b.added = true
			return local, s.Append(spec)
		}
	}
	return local, b.insert(ir.Import(req.Source, spec))
}

func compatible(sp *ir.Node, req plugin.ImportRequest) bool {
	switch req.Kind {
	case ir.DefaultSpec:
		return sp.Spec == ir.DefaultSpec || sp.Spec == ir.NamedSpec && sp.String == "default"
	case ir.NamespaceSpec:
		return sp.Spec == ir.NamespaceSpec
	default:
		return sp.Spec == ir.NamedSpec && sp.String == req.Imported
	}
}

// canMerge reports whether import s can take one more specifier of kind k.
func canMerge(s *ir.Node, k ir.SpecKind) bool {
	has := map[ir.SpecKind]bool{}
	for _, sp := range s.Values {
		has[sp.Spec] = true
	}
	switch k {
	case ir.DefaultSpec:
		return !has[ir.DefaultSpec]
	case ir.NamespaceSpec:
		return !has[ir.NamespaceSpec] && !has[ir.NamedSpec]
	default:
		return !has[ir.NamespaceSpec]
	}
}

func (b *binder) bindRequire(req plugin.ImportRequest) (string, error) {
	for _, s := range b.prog.Values {
		if s.Type != ir.VarType {
			continue
		}
		for _, d := range s.Values {
			if name, ok := b.requireBinding(d, req); ok {
				return name, nil
			}
		}
	}
	local := b.fresh(req.Local)
	if req.Kind != ir.NamedSpec {
		return local, b.insert(ir.Var("const", ir.Declarator(ir.Ident(local), ir.Require(req.Source))))
	}
	prop := namedProp(req.Imported, local)
	for _, s := range b.prog.Values {
		if !b.synth[s] || s.Type != ir.VarType {
			continue
		}
		d := s.Values[0]
		if d.Key.Type == ir.PatternType && eval.RequireSource(d.Value) == req.Source {
			b.added = true
			return local, d.Key.Append(prop)
		}
	}
	return local, b.insert(ir.Var("const", ir.Declarator(ir.Pattern(prop), ir.Require(req.Source))))
}

// requireBinding returns the local name declarator d binds for req.
func (b *binder) requireBinding(d *ir.Node, req plugin.ImportRequest) (string, bool) {
	init := d.Value
	if init == nil {
		return "", false
	}
	if init.Type == ir.MemberType && d.Key.Type == ir.IdentType && eval.RequireSource(init.X) == req.Source {
		k, ok := init.KeyName()
		switch {
		case !ok:
		case req.Kind == ir.NamedSpec && k == req.Imported:
			return d.Key.Name, true
		case req.Kind == ir.DefaultSpec && k == "default":
			return d.Key.Name, true
		}
		return "", false
	}
	if eval.RequireSource(init) != req.Source {
		return "", false
	}
	switch d.Key.Type {
	case ir.IdentType:
		if req.Kind != ir.NamedSpec {
			return d.Key.Name, true
		}
	case ir.PatternType:
		if req.Kind != ir.NamedSpec {
			break
		}
		for _, p := range d.Key.Values {
			if p.Type != ir.PropertyType || p.Value == nil || p.Value.Type != ir.IdentType {
				continue
			}
			if k, ok := b.patternKey(p); ok && k == req.Imported {
				return p.Value.Name, true
			}
		}
	}
	return "", false
}

func (b *binder) patternKey(p *ir.Node) (string, bool) {
	if !p.Computed {
		return p.KeyName()
	}
	v, ok := eval.Resolve(p.Key, b.scope)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func namedProp(imported, local string) *ir.Node {
	if imported == local {
		p := ir.PropKey(ir.Ident(imported), ir.Ident(local))
		p.Shorthand = true
		return p
	}
	return ir.Prop(imported, ir.Ident(local))
}
