package ir

import (
	"strconv"

	"github.com/signadot/lintcfg/token"
)

type Node struct {
	Type   Type
	Parent *Node

	Name   string
	String string
	Number float64
	Bool   bool
	Raw    string
	Refs   []string

	Values []*Node
	Key    *Node
	Value  *Node
	X      *Node
	Y      *Node

	Computed  bool
	Shorthand bool
	Paren     bool
	Spec      SpecKind

	Leading  []Comment
	Trailing []Comment

	// Range is the source span of a parsed node.
	Range *Range
	// Was is the source span of the node this one replaced.
	Was *Range

	dirty bool
}

type Comment struct {
	Text  string
	Block bool
	Range *Range
}

// Source is a parsed document shared by the ranges of its nodes.
type Source struct {
	Text []byte
	Doc  *token.PosDoc
}

func NewSource(d []byte) *Source {
	return &Source{Text: d, Doc: token.NewPosDoc(d)}
}

type Range struct {
	Start, End int
	Src        *Source
}

func (r *Range) Text() string {
	return string(r.Src.Text[r.Start:r.End])
}

func (r *Range) Line() int {
	return r.Src.Doc.Pos(r.Start).Line()
}

func (r *Range) EndLine() int {
	if r.End == r.Start {
		return r.Line()
	}
	return r.Src.Doc.Pos(r.End - 1).Line()
}

func (r *Range) Contains(o *Range) bool {
	return r.Src == o.Src && r.Start <= o.Start && o.End <= r.End
}

func (r *Range) Pos() *token.Pos {
	return r.Src.Doc.Pos(r.Start)
}

// Span returns the source span a node occupies in its parent: its own
// range when parsed, or that of the node it replaced.
func (y *Node) Span() *Range {
	if y.Range != nil {
		return y.Range
	}
	return y.Was
}

// Pristine reports whether y can be printed from its original source.
func (y *Node) Pristine() bool {
	return y.Range != nil && !y.dirty
}

// Dirty reports whether y or one of its descendants was modified.
func (y *Node) Dirty() bool {
	return y.dirty
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromNumber(f float64) *Node {
	return &Node{Type: NumberType, Number: f}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func Ident(name string) *Node {
	return &Node{Type: IdentType, Name: name}
}

func FromSlice(vs ...*Node) *Node {
	res := &Node{Type: ArrayType}
	for _, v := range vs {
		v.Parent = res
	}
	res.Values = vs
	return res
}

func FromProps(ps ...*Node) *Node {
	res := &Node{Type: ObjectType}
	for _, p := range ps {
		p.Parent = res
	}
	res.Values = ps
	return res
}

// Prop builds a property with key name: an identifier key when name is a
// valid identifier name, a string key otherwise.
func Prop(name string, v *Node) *Node {
	var k *Node
	if token.IsIdentifierName(name) {
		k = Ident(name)
	} else {
		k = FromString(name)
	}
	return PropKey(k, v)
}

func PropKey(k, v *Node) *Node {
	res := &Node{Type: PropertyType, Key: k, Value: v}
	k.Parent = res
	v.Parent = res
	return res
}

func Spread(x *Node) *Node {
	res := &Node{Type: SpreadType, X: x}
	x.Parent = res
	return res
}

func Call(callee *Node, args ...*Node) *Node {
	res := &Node{Type: CallType, X: callee, Values: args}
	callee.Parent = res
	for _, a := range args {
		a.Parent = res
	}
	return res
}

// Member builds x.name.
func Member(x *Node, name string) *Node {
	res := &Node{Type: MemberType, X: x, Key: Ident(name)}
	x.Parent = res
	res.Key.Parent = res
	return res
}

func Assign(x, y *Node) *Node {
	res := &Node{Type: AssignType, Name: "=", X: x, Y: y}
	x.Parent = res
	y.Parent = res
	return res
}

func ExprStmt(x *Node) *Node {
	res := &Node{Type: ExprStmtType, X: x}
	x.Parent = res
	return res
}

// ModuleExports builds module.exports = x;
func ModuleExports(x *Node) *Node {
	return ExprStmt(Assign(Member(Ident("module"), "exports"), x))
}

func ExportDefault(x *Node) *Node {
	res := &Node{Type: ExportType, Name: "default", X: x}
	x.Parent = res
	return res
}

func Import(source string, specs ...*Node) *Node {
	res := &Node{Type: ImportType, String: source, Values: specs}
	for _, s := range specs {
		s.Parent = res
	}
	return res
}

// Specifier builds an import specifier binding local to imported.
// imported is ignored for default and namespace specifiers.
func Specifier(kind SpecKind, imported, local string) *Node {
	switch kind {
	case DefaultSpec:
		imported = "default"
	case NamespaceSpec:
		imported = "*"
	}
	return &Node{Type: SpecifierType, Spec: kind, String: imported, Name: local}
}

func Var(kind string, decls ...*Node) *Node {
	res := &Node{Type: VarType, Name: kind, Values: decls}
	for _, d := range decls {
		d.Parent = res
	}
	return res
}

func Declarator(id, init *Node) *Node {
	res := &Node{Type: DeclaratorType, Key: id, Value: init}
	id.Parent = res
	if init != nil {
		init.Parent = res
	}
	return res
}

func Pattern(ps ...*Node) *Node {
	res := &Node{Type: PatternType}
	for _, p := range ps {
		p.Parent = res
	}
	res.Values = ps
	return res
}

// Require builds require(source).
func Require(source string) *Node {
	return Call(Ident("require"), FromString(source))
}

func Program(stmts ...*Node) *Node {
	res := &Node{Type: ProgramType, Values: stmts}
	for _, s := range stmts {
		s.Parent = res
	}
	return res
}

// KeyName returns the static name of a property key: an identifier that
// is not computed, or a string or number literal.
func (y *Node) KeyName() (string, bool) {
	if y.Type != PropertyType && y.Type != MemberType {
		return "", false
	}
	k := y.Key
	if k == nil {
		return "", false
	}
	switch k.Type {
	case IdentType:
		if y.Computed {
			return "", false
		}
		return k.Name, true
	case StringType:
		return k.String, true
	case NumberType:
		return strconv.FormatFloat(k.Number, 'g', -1, 64), true
	}
	return "", false
}

// Prop returns the first property of object y with the static key name.
func (y *Node) Prop(name string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for _, p := range y.Values {
		if p.Type != PropertyType {
			continue
		}
		if k, ok := p.KeyName(); ok && k == name {
			return p
		}
	}
	return nil
}

// IsCall reports whether y is a call of the identifier name.
func (y *Node) IsCall(name string) bool {
	return y != nil && y.Type == CallType && y.X.Type == IdentType && y.X.Name == name
}

// IsMember reports whether y is obj.prop with obj an identifier.
func (y *Node) IsMember(obj, prop string) bool {
	if y == nil || y.Type != MemberType || y.X.Type != IdentType || y.X.Name != obj {
		return false
	}
	k, ok := y.KeyName()
	return ok && k == prop
}

// Clone returns a deep copy of y without source ranges, parented at nil.
func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:      y.Type,
		Name:      y.Name,
		String:    y.String,
		Number:    y.Number,
		Bool:      y.Bool,
		Raw:       y.Raw,
		Refs:      y.Refs,
		Computed:  y.Computed,
		Shorthand: y.Shorthand,
		Paren:     y.Paren,
		Spec:      y.Spec,
	}
	if y.Type == RawType && y.Range != nil {
		res.Raw = y.Range.Text()
	}
	for _, c := range y.Leading {
		res.Leading = append(res.Leading, Comment{Text: c.Text, Block: c.Block})
	}
	for _, c := range y.Trailing {
		res.Trailing = append(res.Trailing, Comment{Text: c.Text, Block: c.Block})
	}
	if len(y.Values) != 0 {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
			res.Values[i].Parent = res
		}
	}
	for _, slot := range []struct{ dst, src **Node }{
		{&res.Key, &y.Key}, {&res.Value, &y.Value}, {&res.X, &y.X}, {&res.Y, &y.Y},
	} {
		if *slot.src != nil {
			*slot.dst = (*slot.src).Clone()
			(*slot.dst).Parent = res
		}
	}
	return res
}
