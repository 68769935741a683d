package parse

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/token"
)

type converter struct {
	opts     *parseOpts
	src      *ir.Source
	comments []ir.Comment
}

func newConverter(o *parseOpts, d []byte) *converter {
	return &converter{opts: o, src: ir.NewSource(d)}
}

func (c *converter) rng(n *sitter.Node) *ir.Range {
	return &ir.Range{Start: int(n.StartByte()), End: int(n.EndByte()), Src: c.src}
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src.Text)
}

func (c *converter) at(n *sitter.Node, y *ir.Node) *ir.Node {
	y.Range = c.rng(n)
	return y
}

// namedChildren returns the named children of n other than comments.
func (c *converter) namedChildren(n *sitter.Node) []*sitter.Node {
	res := make([]*sitter.Node, 0, n.NamedChildCount())
	for i := 0; i < int(n.NamedChildCount()); i++ {
		ch := n.NamedChild(i)
		if ch.Type() == "comment" {
			continue
		}
		res = append(res, ch)
	}
	return res
}

func (c *converter) comment(n *sitter.Node) ir.Comment {
	s := c.text(n)
	res := ir.Comment{Range: c.rng(n)}
	switch {
	case strings.HasPrefix(s, "//"):
		res.Text = strings.TrimSpace(s[2:])
	case strings.HasPrefix(s, "/*"):
		res.Block = true
		res.Text = strings.TrimSpace(strings.TrimSuffix(s[2:], "*/"))
	default:
		res.Text = s
	}
	return res
}

func (c *converter) program(n *sitter.Node) *ir.Node {
	res := c.at(n, &ir.Node{Type: ir.ProgramType})
	for _, ch := range c.namedChildren(n) {
		if ch.Type() == "hash_bang_line" || ch.Type() == "empty_statement" {
			continue
		}
		s := c.stmt(ch)
		s.Parent = res
		res.Values = append(res.Values, s)
	}
	return res
}

func (c *converter) stmt(n *sitter.Node) *ir.Node {
	switch n.Type() {
	case "import_statement":
		return c.importStmt(n)
	case "lexical_declaration", "variable_declaration":
		return c.varDecl(n)
	case "expression_statement":
		kids := c.namedChildren(n)
		if len(kids) != 1 {
			return c.raw(n)
		}
		return c.at(n, ir.ExprStmt(c.expr(kids[0])))
	case "export_statement":
		return c.exportStmt(n)
	case "function_declaration", "generator_function_declaration", "class_declaration":
		res := c.raw(n)
		if name := n.ChildByFieldName("name"); name != nil {
			res.Name = c.text(name)
		}
		return res
	}
	return c.raw(n)
}

func (c *converter) raw(n *sitter.Node) *ir.Node {
	res := c.at(n, &ir.Node{Type: ir.RawType, Raw: c.text(n)})
	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		switch n.Type() {
		case "identifier", "shorthand_property_identifier", "shorthand_property_identifier_pattern":
			res.Refs = append(res.Refs, c.text(n))
			return
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(n)
	return res
}

func (c *converter) importStmt(n *sitter.Node) *ir.Node {
	srcNode := n.ChildByFieldName("source")
	if srcNode == nil {
		return c.raw(n)
	}
	source, err := token.Unquote(c.text(srcNode))
	if err != nil {
		return c.raw(n)
	}
	res := c.at(n, ir.Import(source))
	add := func(ch *sitter.Node, spec *ir.Node) {
		c.at(ch, spec)
		spec.Parent = res
		res.Values = append(res.Values, spec)
	}
	for _, clause := range c.namedChildren(n) {
		if clause.Type() != "import_clause" {
			continue
		}
		for _, ch := range c.namedChildren(clause) {
			switch ch.Type() {
			case "identifier":
				add(ch, ir.Specifier(ir.DefaultSpec, "", c.text(ch)))
			case "namespace_import":
				kids := c.namedChildren(ch)
				if len(kids) == 0 {
					return c.raw(n)
				}
				add(ch, ir.Specifier(ir.NamespaceSpec, "", c.text(kids[len(kids)-1])))
			case "named_imports":
				for _, is := range c.namedChildren(ch) {
					if is.Type() != "import_specifier" {
						continue
					}
					name := is.ChildByFieldName("name")
					if name == nil {
						return c.raw(n)
					}
					imported := c.text(name)
					if name.Type() == "string" {
						if imported, err = token.Unquote(imported); err != nil {
							return c.raw(n)
						}
					}
					local := imported
					if alias := is.ChildByFieldName("alias"); alias != nil {
						local = c.text(alias)
					}
					kind := ir.NamedSpec
					if imported == "default" {
						kind = ir.DefaultSpec
					}
					add(is, ir.Specifier(kind, imported, local))
				}
			default:
				return c.raw(n)
			}
		}
	}
	return res
}

func (c *converter) varDecl(n *sitter.Node) *ir.Node {
	kind := "var"
	if n.ChildCount() > 0 {
		kind = c.text(n.Child(0))
	}
	res := c.at(n, ir.Var(kind))
	for _, ch := range c.namedChildren(n) {
		if ch.Type() != "variable_declarator" {
			return c.raw(n)
		}
		name := ch.ChildByFieldName("name")
		if name == nil {
			return c.raw(n)
		}
		var id *ir.Node
		switch name.Type() {
		case "identifier":
			id = c.at(name, ir.Ident(c.text(name)))
		case "object_pattern":
			id = c.pattern(name)
		default:
			id = c.raw(name)
		}
		var init *ir.Node
		if v := ch.ChildByFieldName("value"); v != nil {
			init = c.expr(v)
		}
		d := c.at(ch, ir.Declarator(id, init))
		d.Parent = res
		res.Values = append(res.Values, d)
	}
	return res
}

func (c *converter) pattern(n *sitter.Node) *ir.Node {
	res := c.at(n, ir.Pattern())
	add := func(p *ir.Node) {
		p.Parent = res
		res.Values = append(res.Values, p)
	}
	for _, ch := range c.namedChildren(n) {
		switch ch.Type() {
		case "shorthand_property_identifier_pattern":
			name := c.text(ch)
			p := c.at(ch, ir.PropKey(c.at(ch, ir.Ident(name)), c.at(ch, ir.Ident(name))))
			p.Shorthand = true
			add(p)
		case "object_assignment_pattern":
			left := ch.ChildByFieldName("left")
			if left == nil {
				add(c.raw(ch))
				continue
			}
			name := c.text(left)
			p := c.at(ch, ir.PropKey(c.at(left, ir.Ident(name)), c.at(left, ir.Ident(name))))
			p.Shorthand = true
			add(p)
		case "pair_pattern":
			k, v := ch.ChildByFieldName("key"), ch.ChildByFieldName("value")
			if k == nil || v == nil {
				add(c.raw(ch))
				continue
			}
			key, computed := c.key(k)
			var val *ir.Node
			switch v.Type() {
			case "identifier":
				val = c.at(v, ir.Ident(c.text(v)))
			case "object_pattern":
				val = c.pattern(v)
			case "assignment_pattern":
				if l := v.ChildByFieldName("left"); l != nil && l.Type() == "identifier" {
					val = c.at(l, ir.Ident(c.text(l)))
				} else {
					val = c.raw(v)
				}
			default:
				val = c.raw(v)
			}
			p := c.at(ch, ir.PropKey(key, val))
			p.Computed = computed
			add(p)
		case "rest_pattern":
			kids := c.namedChildren(ch)
			if len(kids) != 1 || kids[0].Type() != "identifier" {
				add(c.raw(ch))
				continue
			}
			add(c.at(ch, ir.Spread(c.at(kids[0], ir.Ident(c.text(kids[0]))))))
		default:
			add(c.raw(ch))
		}
	}
	return res
}

func (c *converter) exportStmt(n *sitter.Node) *ir.Node {
	isDefault := false
	for i := 0; i < int(n.ChildCount()); i++ {
		if ch := n.Child(i); !ch.IsNamed() && ch.Type() == "default" {
			isDefault = true
			break
		}
	}
	if isDefault {
		if v := n.ChildByFieldName("value"); v != nil {
			return c.at(n, ir.ExportDefault(c.expr(v)))
		}
		if d := n.ChildByFieldName("declaration"); d != nil {
			return c.at(n, ir.ExportDefault(c.stmt(d)))
		}
		return c.raw(n)
	}
	d := n.ChildByFieldName("declaration")
	if d == nil {
		return c.raw(n)
	}
	x := c.stmt(d)
	res := c.at(n, &ir.Node{Type: ir.ExportType, X: x})
	x.Parent = res
	return res
}

// key converts an object key, reporting whether it is computed.
func (c *converter) key(n *sitter.Node) (*ir.Node, bool) {
	switch n.Type() {
	case "property_identifier", "private_property_identifier":
		return c.at(n, ir.Ident(c.text(n))), false
	case "computed_property_name":
		kids := c.namedChildren(n)
		if len(kids) != 1 {
			return c.raw(n), true
		}
		return c.expr(kids[0]), true
	}
	return c.expr(n), false
}

func (c *converter) expr(n *sitter.Node) *ir.Node {
	switch n.Type() {
	case "parenthesized_expression":
		kids := c.namedChildren(n)
		if len(kids) != 1 {
			return c.raw(n)
		}
		x := c.expr(kids[0])
		x.Paren = true
		x.Range = c.rng(n)
		return x
	case "null":
		return c.at(n, &ir.Node{Type: ir.NullType, Raw: "null"})
	case "true", "false":
		return c.at(n, &ir.Node{Type: ir.BoolType, Bool: n.Type() == "true", Raw: n.Type()})
	case "undefined", "identifier":
		return c.at(n, ir.Ident(c.text(n)))
	case "number":
		f, ok := parseNumber(c.text(n))
		if !ok {
			return c.raw(n)
		}
		return c.at(n, &ir.Node{Type: ir.NumberType, Number: f, Raw: c.text(n)})
	case "string", "template_string":
		raw := c.text(n)
		s, err := token.Unquote(raw)
		if err != nil {
			return c.raw(n)
		}
		return c.at(n, &ir.Node{Type: ir.StringType, String: s, Raw: raw})
	case "array":
		res := c.at(n, ir.FromSlice())
		for _, ch := range c.namedChildren(n) {
			x := c.expr(ch)
			x.Parent = res
			res.Values = append(res.Values, x)
		}
		return res
	case "object":
		return c.object(n)
	case "spread_element":
		kids := c.namedChildren(n)
		if len(kids) != 1 {
			return c.raw(n)
		}
		return c.at(n, ir.Spread(c.expr(kids[0])))
	case "call_expression":
		fn, args := n.ChildByFieldName("function"), n.ChildByFieldName("arguments")
		if fn == nil || args == nil || args.Type() != "arguments" {
			return c.raw(n)
		}
		res := c.at(n, ir.Call(c.expr(fn)))
		for _, a := range c.namedChildren(args) {
			x := c.expr(a)
			x.Parent = res
			res.Values = append(res.Values, x)
		}
		return res
	case "member_expression":
		obj, prop := n.ChildByFieldName("object"), n.ChildByFieldName("property")
		if obj == nil || prop == nil {
			return c.raw(n)
		}
		res := c.at(n, ir.Member(c.expr(obj), c.text(prop)))
		c.at(prop, res.Key)
		return res
	case "subscript_expression":
		obj, idx := n.ChildByFieldName("object"), n.ChildByFieldName("index")
		if obj == nil || idx == nil {
			return c.raw(n)
		}
		res := c.at(n, &ir.Node{Type: ir.MemberType, X: c.expr(obj), Key: c.expr(idx), Computed: true})
		res.X.Parent = res
		res.Key.Parent = res
		return res
	case "unary_expression":
		op, arg := n.ChildByFieldName("operator"), n.ChildByFieldName("argument")
		if op == nil || arg == nil {
			return c.raw(n)
		}
		res := c.at(n, &ir.Node{Type: ir.UnaryType, Name: c.text(op), X: c.expr(arg)})
		res.X.Parent = res
		return res
	case "binary_expression":
		l, op, r := n.ChildByFieldName("left"), n.ChildByFieldName("operator"), n.ChildByFieldName("right")
		if l == nil || op == nil || r == nil {
			return c.raw(n)
		}
		res := c.at(n, &ir.Node{Type: ir.BinaryType, Name: c.text(op), X: c.expr(l), Y: c.expr(r)})
		res.X.Parent = res
		res.Y.Parent = res
		return res
	case "assignment_expression":
		l, r := n.ChildByFieldName("left"), n.ChildByFieldName("right")
		if l == nil || r == nil {
			return c.raw(n)
		}
		return c.at(n, ir.Assign(c.expr(l), c.expr(r)))
	}
	return c.raw(n)
}

func (c *converter) object(n *sitter.Node) *ir.Node {
	res := c.at(n, ir.FromProps())
	add := func(p *ir.Node) {
		p.Parent = res
		res.Values = append(res.Values, p)
	}
	for _, ch := range c.namedChildren(n) {
		switch ch.Type() {
		case "pair":
			k, v := ch.ChildByFieldName("key"), ch.ChildByFieldName("value")
			if k == nil || v == nil {
				add(c.raw(ch))
				continue
			}
			key, computed := c.key(k)
			p := c.at(ch, ir.PropKey(key, c.expr(v)))
			p.Computed = computed
			add(p)
		case "shorthand_property_identifier":
			name := c.text(ch)
			p := c.at(ch, ir.PropKey(c.at(ch, ir.Ident(name)), c.at(ch, ir.Ident(name))))
			p.Shorthand = true
			add(p)
		case "spread_element":
			add(c.expr(ch))
		default:
			add(c.raw(ch))
		}
	}
	return res
}

func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(s, "_", "")
	if strings.HasSuffix(s, "n") {
		return 0, false
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(u), true
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
