package encode

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/token"
	"github.com/signadot/lintcfg/value"
)

func (es *EncState) fresh(n *ir.Node, ind string) {
	if n.Paren {
		es.sep("(")
		defer es.sep(")")
	}
	switch n.Type {
	case ir.NullType:
		es.write(n.Type, ValueColor, "null")
	case ir.BoolType:
		es.write(n.Type, ValueColor, strconv.FormatBool(n.Bool))
	case ir.NumberType:
		s := n.Raw
		if s == "" {
			s = formatNumber(n.Number)
		}
		es.write(n.Type, ValueColor, s)
	case ir.StringType:
		es.write(n.Type, ValueColor, token.Quote(n.String, es.quote))
	case ir.IdentType:
		es.write(n.Type, ValueColor, n.Name)
	case ir.ArrayType:
		es.array(n, ind)
	case ir.ObjectType:
		es.object(n, ind)
	case ir.PatternType:
		es.sep("{ ")
		for i, p := range n.Values {
			if i > 0 {
				es.sep(", ")
			}
			es.node(p, ind)
		}
		es.sep(" }")
	case ir.PropertyType:
		es.property(n, ind)
	case ir.SpreadType:
		es.sep("...")
		es.node(n.X, ind)
	case ir.CallType:
		es.node(n.X, ind)
		es.sep("(")
		for i, a := range n.Values {
			if i > 0 {
				es.sep(", ")
			}
			es.node(a, ind)
		}
		es.sep(")")
	case ir.MemberType:
		es.node(n.X, ind)
		if n.Computed || n.Key.Type != ir.IdentType {
			es.sep("[")
			es.node(n.Key, ind)
			es.sep("]")
			break
		}
		es.sep(".")
		es.write(ir.ObjectType, FieldColor, n.Key.Name)
	case ir.UnaryType:
		es.write(n.Type, KeywordColor, n.Name)
		if isWord(n.Name) {
			es.buf.WriteString(" ")
		}
		es.node(n.X, ind)
	case ir.BinaryType, ir.AssignType:
		es.node(n.X, ind)
		es.sep(" " + n.Name + " ")
		es.node(n.Y, ind)
	case ir.ImportType:
		es.importStmt(n)
	case ir.SpecifierType:
		es.specifier(n)
	case ir.VarType:
		es.write(n.Type, KeywordColor, n.Name)
		es.buf.WriteString(" ")
		for i, d := range n.Values {
			if i > 0 {
				es.sep(", ")
			}
			es.node(d, ind)
		}
		es.semicolon()
	case ir.DeclaratorType:
		es.node(n.Key, ind)
		if n.Value != nil {
			es.sep(" = ")
			es.node(n.Value, ind)
		}
	case ir.ExprStmtType:
		es.node(n.X, ind)
		es.semicolon()
	case ir.ExportType:
		es.write(n.Type, KeywordColor, "export ")
		if n.Name == "default" {
			es.write(n.Type, KeywordColor, "default ")
		}
		es.node(n.X, ind)
		if !n.X.Type.IsStatement() && (n.X.Type != ir.RawType || n.X.Name == "") {
			es.semicolon()
		}
	case ir.ProgramType:
		es.program(n)
	case ir.RawType:
		if n.Range != nil {
			es.reindent(n.Range.Text(), indentAt(n.Range), ind)
			break
		}
		es.buf.WriteString(n.Raw)
	}
}

func (es *EncState) program(n *ir.Node) {
	for i, s := range n.Values {
		es.leading(outer(s, s.Leading), "")
		es.node(s, "")
		es.trailing(outer(s, s.Trailing))
		es.buf.WriteString("\n")
		if i+1 < len(n.Values) && isImport(s) && !isImport(n.Values[i+1]) {
			es.buf.WriteString("\n")
		}
	}
}

func isImport(s *ir.Node) bool {
	switch s.Type {
	case ir.ImportType:
		return true
	case ir.VarType:
		for _, d := range s.Values {
			if !d.Value.IsCall("require") {
				return false
			}
		}
		return len(s.Values) != 0
	}
	return false
}

func (es *EncState) array(n *ir.Node, ind string) {
	if len(n.Values) == 0 {
		es.sep("[]")
		return
	}
	if es.row || es.inline(n, ind) {
		es.line(n, ind, "[", "]")
		return
	}
	es.list(n, ind, "[", "]")
}

func (es *EncState) object(n *ir.Node, ind string) {
	if len(n.Values) == 0 {
		es.sep("{}")
		return
	}
	if es.row {
		es.line(n, ind, "{ ", " }")
		return
	}
	es.list(n, ind, "{", "}")
}

// line writes the members of n on one line.
func (es *EncState) line(n *ir.Node, ind, open, close string) {
	defer func(row bool) { es.row = row }(es.row)
	es.row = true
	es.sep(open)
	for i, v := range n.Values {
		if i > 0 {
			es.sep(", ")
		}
		es.member(v, ind, false)
	}
	es.sep(close)
}

// list writes the members of n one per line.
func (es *EncState) list(n *ir.Node, ind, open, close string) {
	inner := ind + es.unit
	es.sep(open)
	for i, v := range n.Values {
		es.buf.WriteString("\n" + inner)
		es.leading(outer(v, v.Leading), inner)
		es.node(v, inner)
		if i+1 < len(n.Values) {
			es.sep(",")
		}
		es.trailing(outer(v, v.Trailing))
	}
	es.buf.WriteString("\n" + ind)
	es.sep(close)
}

func (es *EncState) property(n *ir.Node, ind string) {
	if n.Shorthand && n.Value != nil && n.Value.Type == ir.IdentType {
		es.write(ir.ObjectType, FieldColor, n.Value.Name)
		return
	}
	switch {
	case n.Computed:
		es.sep("[")
		es.node(n.Key, ind)
		es.sep("]")
	case n.Key.Pristine():
		es.node(n.Key, ind)
	case n.Key.Type == ir.IdentType:
		es.write(ir.ObjectType, FieldColor, n.Key.Name)
	case n.Key.Type == ir.StringType:
		es.write(ir.ObjectType, FieldColor, token.Quote(n.Key.String, es.quote))
	default:
		es.node(n.Key, ind)
	}
	if n.Value == nil {
		return
	}
	es.sep(": ")
	es.node(n.Value, ind)
}

func (es *EncState) importStmt(n *ir.Node) {
	es.write(n.Type, KeywordColor, "import ")
	var named []*ir.Node
	first := true
	for _, s := range n.Values {
		if s.Spec == ir.NamedSpec {
			named = append(named, s)
			continue
		}
		if !first {
			es.sep(", ")
		}
		first = false
		es.specifier(s)
	}
	if len(named) != 0 {
		if !first {
			es.sep(", ")
		}
		first = false
		es.sep("{ ")
		for i, s := range named {
			if i > 0 {
				es.sep(", ")
			}
			es.specifier(s)
		}
		es.sep(" }")
	}
	if !first {
		es.write(n.Type, KeywordColor, " from ")
	}
	es.write(ir.StringType, ValueColor, token.Quote(n.String, es.quote))
	es.semicolon()
}

func (es *EncState) specifier(s *ir.Node) {
	switch s.Spec {
	case ir.DefaultSpec:
		es.write(ir.IdentType, ValueColor, s.Name)
	case ir.NamespaceSpec:
		es.sep("* as ")
		es.write(ir.IdentType, ValueColor, s.Name)
	default:
		if s.String != s.Name {
			imported := s.String
			if !token.IsIdentifierName(imported) {
				imported = token.Quote(imported, es.quote)
			}
			es.write(ir.IdentType, ValueColor, imported)
			es.sep(" as ")
		}
		es.write(ir.IdentType, ValueColor, s.Name)
	}
}

// inline reports whether array n prints on one line.
func (es *EncState) inline(n *ir.Node, ind string) bool {
	w := len(ind) + 2
	for _, v := range n.Values {
		if len(outer(v, v.Leading)) != 0 || len(outer(v, v.Trailing)) != 0 || !simple(v) {
			return false
		}
		sub := &EncState{buf: bytes.NewBuffer(nil), unit: es.unit, quote: es.quote, semi: es.semi, row: true}
		sub.node(v, ind)
		if bytes.IndexByte(sub.buf.Bytes(), '\n') != -1 {
			return false
		}
		w += sub.buf.Len() + 2
	}
	return w <= es.width
}

func simple(n *ir.Node) bool {
	switch n.Type {
	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType, ir.IdentType:
		return true
	case ir.SpreadType:
		return simple(n.X)
	case ir.MemberType:
		return simple(n.X) && (n.Key.Type == ir.IdentType || simple(n.Key))
	case ir.UnaryType:
		return simple(n.X)
	case ir.CallType:
		if !simple(n.X) {
			return false
		}
		for _, a := range n.Values {
			if !simple(a) {
				return false
			}
		}
		return true
	}
	return false
}

// outer returns the comments of cs that printing n from its source does
// not write.
func outer(n *ir.Node, cs []ir.Comment) []ir.Comment {
	if n.Range == nil {
		return cs
	}
	var res []ir.Comment
	for _, c := range cs {
		if c.Range == nil || !n.Range.Contains(c.Range) {
			res = append(res, c)
		}
	}
	return res
}

func (es *EncState) leading(cs []ir.Comment, ind string) {
	for _, c := range cs {
		es.comment(c, ind)
		es.buf.WriteString("\n" + ind)
	}
}

func (es *EncState) trailing(cs []ir.Comment) {
	for _, c := range cs {
		es.buf.WriteString(" ")
		if c.Block || strings.Contains(c.Text, "\n") {
			es.write(ir.NullType, CommentColor, blockComment(c))
			continue
		}
		es.write(ir.NullType, CommentColor, lineComment(c.Text))
	}
}

// comment writes c on its own lines.
func (es *EncState) comment(c ir.Comment, ind string) {
	if c.Block {
		es.write(ir.NullType, CommentColor, blockComment(c))
		return
	}
	for i, ln := range strings.Split(c.Text, "\n") {
		if i > 0 {
			es.buf.WriteString("\n" + ind)
		}
		es.write(ir.NullType, CommentColor, lineComment(ln))
	}
}

func lineComment(s string) string {
	if s == "" {
		return "//"
	}
	return "// " + s
}

func blockComment(c ir.Comment) string {
	return "/* " + strings.ReplaceAll(c.Text, "*/", "* /") + " */"
}

func isWord(op string) bool {
	return op != "" && op[0] >= 'a' && op[0] <= 'z'
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return value.FormatNumber(f)
}
