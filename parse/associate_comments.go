package parse

import (
	"github.com/signadot/lintcfg/ir"
)

func associateComments(root *ir.Node, comments []ir.Comment) {
	for _, cm := range comments {
		attachComment(root, cm)
	}
}

func attachComment(root *ir.Node, cm ir.Comment) {
	if root.Range == nil || !root.Range.Contains(cm.Range) {
		if root.Range != nil && cm.Range.End <= root.Range.Start {
			root.Leading = append(root.Leading, cm)
			return
		}
		root.Trailing = append(root.Trailing, cm)
		return
	}
	list := innermostList(root, cm)
	if list == nil {
		root.Trailing = append(root.Trailing, cm)
		return
	}
	for {
		m := memberContaining(list, cm)
		if m == nil {
			break
		}
		inner := innermostList(m, cm)
		if inner == nil {
			m.Trailing = append(m.Trailing, cm)
			return
		}
		list = inner
	}
	var prev, next *ir.Node
	for _, m := range list.Values {
		if m.Range == nil {
			continue
		}
		if m.Range.Start >= cm.Range.End {
			next = m
			break
		}
		prev = m
	}
	switch {
	case prev != nil && prev.Range.EndLine() == cm.Range.Line():
		prev.Trailing = append(prev.Trailing, cm)
	case next != nil:
		next.Leading = append(next.Leading, cm)
	case prev != nil:
		prev.Trailing = append(prev.Trailing, cm)
	default:
		list.Trailing = append(list.Trailing, cm)
	}
}

func memberContaining(list *ir.Node, cm ir.Comment) *ir.Node {
	for _, m := range list.Values {
		if m.Range != nil && m.Range.Contains(cm.Range) {
			return m
		}
	}
	return nil
}

// innermostList returns the deepest list node at or below n whose range
// contains the comment.
func innermostList(n *ir.Node, cm ir.Comment) *ir.Node {
	var res *ir.Node
	for x := range n.All() {
		if x.Type.IsList() && x.Range != nil && x.Range.Contains(cm.Range) {
			res = x
		}
	}
	return res
}
