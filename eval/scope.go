package eval

import (
	"slices"

	"github.com/signadot/lintcfg/ir"
)

type BindingKind int

const (
	ConstBinding BindingKind = iota
	LetBinding
	VarBinding
	ImportBinding
	DeclBinding
)

func (k BindingKind) String() string {
	switch k {
	case ConstBinding:
		return "const"
	case LetBinding:
		return "let"
	case VarBinding:
		return "var"
	case ImportBinding:
		return "import"
	case DeclBinding:
		return "declaration"
	default:
		return "<unknown binding>"
	}
}

func varKind(s string) BindingKind {
	switch s {
	case "const":
		return ConstBinding
	case "let":
		return LetBinding
	default:
		return VarBinding
	}
}

// Binding is a name declared in a scope.
type Binding struct {
	Name string
	Kind BindingKind
	// Init is the initializer of a variable, for destructured names the
	// initializer of the whole pattern.
	Init *ir.Node
	// Path is the sequence of keys selecting a destructured name in Init.
	// For imports it holds the imported name.
	Path []string
	// Source is the module source of an import or require binding.
	Source string
	Decl   *ir.Node
}

type Scope struct {
	Parent   *Scope
	bindings map[string]*Binding
	order    []string
}

func NewScope(parent *Scope) *Scope {
	return &Scope{Parent: parent, bindings: map[string]*Binding{}}
}

// Declare adds b to s. A later declaration of the same name shadows the
// earlier one.
func (s *Scope) Declare(b *Binding) {
	if _, ok := s.bindings[b.Name]; !ok {
		s.order = append(s.order, b.Name)
	}
	s.bindings[b.Name] = b
}

func (s *Scope) Lookup(name string) (*Binding, bool) {
	for x := s; x != nil; x = x.Parent {
		if b, ok := x.bindings[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// Names returns the names bound in s and its parents, sorted.
func (s *Scope) Names() []string {
	var res []string
	for x := s; x != nil; x = x.Parent {
		res = append(res, x.order...)
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// Bindings returns the bindings declared in s in declaration order.
func (s *Scope) Bindings() []*Binding {
	res := make([]*Binding, len(s.order))
	for i, n := range s.order {
		res[i] = s.bindings[n]
	}
	return res
}

// ModuleScope returns the scope of the top level declarations of prog.
func ModuleScope(prog *ir.Node) *Scope {
	s := NewScope(nil)
	for _, stmt := range prog.Values {
		s.declareStmt(stmt)
	}
	return s
}

func (s *Scope) declareStmt(stmt *ir.Node) {
	switch stmt.Type {
	case ir.ImportType:
		for _, spec := range stmt.Values {
			s.Declare(&Binding{
				Name:   spec.Name,
				Kind:   ImportBinding,
				Path:   []string{spec.String},
				Source: stmt.String,
				Decl:   stmt,
			})
		}
	case ir.VarType:
		kind := varKind(stmt.Name)
		for _, d := range stmt.Values {
			src := RequireSource(d.Value)
			s.declarePattern(d.Key, &Binding{Kind: kind, Init: d.Value, Source: src, Decl: stmt})
		}
	case ir.ExportType:
		if x := stmt.X; x != nil && (x.Type.IsStatement() || x.Type == ir.RawType) {
			s.declareStmt(x)
		}
	case ir.RawType:
		if stmt.Name != "" {
			s.Declare(&Binding{Name: stmt.Name, Kind: DeclBinding, Decl: stmt})
		}
	}
}

func (s *Scope) declarePattern(id *ir.Node, proto *Binding) {
	switch id.Type {
	case ir.IdentType:
		b := *proto
		b.Name = id.Name
		s.Declare(&b)
	case ir.PatternType:
		for _, p := range id.Values {
			switch p.Type {
			case ir.PropertyType:
				sub := *proto
				k, ok := p.KeyName()
				if ok {
					sub.Path = append(slices.Clone(proto.Path), k)
				} else {
					sub.Init = nil
				}
				s.declarePattern(p.Value, &sub)
			case ir.SpreadType:
				sub := *proto
				sub.Init = nil
				s.declarePattern(p.X, &sub)
			}
		}
	case ir.RawType:
		for _, name := range id.Refs {
			s.Declare(&Binding{Name: name, Kind: proto.Kind, Decl: proto.Decl})
		}
	}
}

// RequireSource returns the module of a require("source") call, or "".
func RequireSource(n *ir.Node) string {
	if !n.IsCall("require") || len(n.Values) != 1 || n.Values[0].Type != ir.StringType {
		return ""
	}
	return n.Values[0].String
}

// Identifiers returns every identifier name declared or referenced in n,
// sorted.
func Identifiers(n *ir.Node) []string {
	var res []string
	for x := range n.All() {
		switch x.Type {
		case ir.IdentType:
			if p := x.Parent; p != nil && p.Key == x && !p.Computed &&
				(p.Type == ir.MemberType || p.Type == ir.PropertyType && !p.Shorthand) {
				continue
			}
			res = append(res, x.Name)
		case ir.SpecifierType:
			res = append(res, x.Name)
		case ir.RawType:
			res = append(res, x.Refs...)
			if x.Name != "" {
				res = append(res, x.Name)
			}
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}
