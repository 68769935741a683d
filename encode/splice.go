package encode

import (
	"bytes"

	"github.com/signadot/lintcfg/ir"
)

// anchored reports whether member m has a span in the source of list n.
func anchored(n, m *ir.Node) bool {
	sp := m.Span()
	return sp != nil && sp.Src == n.Range.Src
}

// spliceable reports whether modified node n can be printed by copying
// the source between its children.
func spliceable(n *ir.Node) bool {
	last := n.Range.Start
	members := 0
	for _, c := range n.Children() {
		if !anchored(n, c) {
			if n.Type.IsList() && (n.Type != ir.CallType || c != n.X) {
				continue
			}
			return false
		}
		sp := c.Span()
		if !n.Range.Contains(sp) || sp.Start < last {
			return false
		}
		last = sp.End
		if n.Type != ir.CallType || c != n.X {
			members++
		}
	}
	if n.Type.IsList() {
		return members > 0 || hasInterior(n)
	}
	return true
}

// hasInterior reports whether the brackets of array or object n hold more
// than white space, such as comments.
func hasInterior(n *ir.Node) bool {
	if n.Type != ir.ArrayType && n.Type != ir.ObjectType {
		return false
	}
	in := n.Range.Src.Text[n.Range.Start+1 : n.Range.End-1]
	return len(bytes.TrimSpace(in)) != 0
}

func (es *EncState) splice(n *ir.Node) {
	if n.Type.IsList() {
		es.spliceList(n)
		return
	}
	src := n.Range.Src.Text
	pos := n.Range.Start
	for _, c := range n.Children() {
		sp := c.Span()
		es.buf.Write(src[pos:sp.Start])
		es.node(c, indentAt(sp))
		pos = sp.End
	}
	es.buf.Write(src[pos:n.Range.End])
}

func (es *EncState) spliceList(n *ir.Node) {
	src := n.Range.Src.Text
	pos := n.Range.Start
	if n.Type == ir.CallType {
		sp := n.X.Span()
		es.buf.Write(src[pos:sp.Start])
		es.node(n.X, indentAt(sp))
		pos = sp.End
	}
	members := n.Values
	first, lastA := -1, -1
	for i, m := range members {
		if anchored(n, m) {
			if first == -1 {
				first = i
			}
			lastA = i
		}
	}
	if first == -1 {
		es.spliceInterior(n)
		return
	}
	prog := n.Type == ir.ProgramType
	multi := prog || members[lastA].Span().Line() > n.Range.Line()
	defer func(row bool) { es.row = row }(es.row)
	es.row = !multi
	ind := indentAt(n.Range)
	if multi {
		ind = indentAt(members[lastA].Span())
	}
	newSep := func() {
		switch {
		case prog:
			es.buf.WriteString("\n" + ind)
		case multi:
			es.sep(",")
			es.buf.WriteString("\n" + ind)
		default:
			es.sep(", ")
		}
	}

	firstSp := members[first].Span()
	es.buf.Write(src[pos:firstSp.Start])
	for _, m := range members[:first] {
		es.member(m, ind, multi)
		newSep()
	}
	cursor := firstSp.Start
	var last *ir.Node
	afterNew, trailingComma := false, false
	for i := first; i < len(members); i++ {
		m := members[i]
		if anchored(n, m) {
			sp := m.Span()
			if afterNew && !prog {
				es.sep(",")
			}
			es.buf.Write(src[cursor:sp.Start])
			es.node(m, indentAt(sp))
			cursor = sp.End
			last = m
			afterNew = false
			continue
		}
		if afterNew {
			if !prog {
				es.sep(",")
			}
		} else {
			limit := n.Range.End
			for _, nx := range members[i+1:] {
				if anchored(n, nx) {
					limit = nx.Span().Start
					break
				}
			}
			t, comma := tail(src, last.Span().End, limit)
			if !comma && !prog {
				es.sep(",")
			}
			es.buf.Write(src[cursor:t])
			cursor = t
			trailingComma = comma
		}
		if multi {
			es.buf.WriteString("\n" + ind)
		} else {
			es.buf.WriteString(" ")
		}
		es.member(m, ind, multi)
		afterNew = true
	}
	if afterNew && trailingComma && multi && !prog {
		es.sep(",")
	}
	es.buf.Write(src[cursor:n.Range.End])
}

// spliceInterior writes array or object n, none of whose members come from
// the source, keeping the source between its brackets and adding the
// members before the closing bracket.
func (es *EncState) spliceInterior(n *ir.Node) {
	src := n.Range.Src.Text
	closing := n.Range.End - 1
	t := closing
	for t > n.Range.Start+1 && isSpace(src[t-1]) {
		t--
	}
	es.buf.Write(src[n.Range.Start:t])
	nl := bytes.LastIndexByte(src[n.Range.Start:closing], '\n')
	if nl == -1 {
		defer func(row bool) { es.row = row }(es.row)
		es.row = true
		for i, m := range n.Values {
			if i > 0 {
				es.sep(",")
			}
			es.buf.WriteString(" ")
			es.member(m, "", false)
		}
		if n.Type == ir.ObjectType {
			es.buf.WriteString(" ")
		}
		es.buf.Write(src[closing:n.Range.End])
		return
	}
	ind := indentAt(n.Range) + es.unit
	if bytes.IndexByte(src[n.Range.Start:t], '\n') != -1 {
		ind = n.Range.Src.Doc.Indent(t - 1)
	}
	defer func(row bool) { es.row = row }(es.row)
	es.row = false
	for i, m := range n.Values {
		if i > 0 {
			es.sep(",")
		}
		es.buf.WriteString("\n" + ind)
		es.member(m, ind, true)
	}
	es.buf.Write(src[n.Range.Start+nl : n.Range.End])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// member writes an inserted list member with its comments.
func (es *EncState) member(m *ir.Node, ind string, multi bool) {
	for _, c := range outer(m, m.Leading) {
		if multi {
			es.comment(c, ind)
			es.buf.WriteString("\n" + ind)
			continue
		}
		es.write(ir.NullType, CommentColor, blockComment(c))
		es.buf.WriteString(" ")
	}
	es.node(m, ind)
	for _, c := range outer(m, m.Trailing) {
		es.buf.WriteString(" ")
		es.write(ir.NullType, CommentColor, blockComment(c))
	}
}

// tail returns the end of the separator and same line comments following
// a list member ending at end, and whether the separator holds a comma.
func tail(src []byte, end, limit int) (int, bool) {
	i := end
	for i < limit && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	comma := false
	cut := end
	if i < limit && src[i] == ',' {
		comma = true
		i++
		cut = i
	}
	j := i
	for {
		k := j
		for k < limit && (src[k] == ' ' || src[k] == '\t') {
			k++
		}
		rest := src[k:limit]
		if bytes.HasPrefix(rest, []byte("//")) {
			e := bytes.IndexByte(rest, '\n')
			if e == -1 {
				e = len(rest)
			}
			cut = k + e
			break
		}
		if bytes.HasPrefix(rest, []byte("/*")) {
			e := bytes.Index(rest, []byte("*/"))
			if e == -1 || bytes.IndexByte(rest[:e], '\n') != -1 {
				break
			}
			j = k + e + 2
			cut = j
			continue
		}
		break
	}
	return cut, comma
}
