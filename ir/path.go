package ir

import (
	"iter"
	"strconv"
)

// Path returns a path from the root to y, such as $.Values[1].Value.
func (y *Node) Path() string {
	p := y.Parent
	if p == nil {
		return "$"
	}
	prefix := p.Path()
	switch y {
	case p.Key:
		return prefix + ".Key"
	case p.Value:
		return prefix + ".Value"
	case p.X:
		return prefix + ".X"
	case p.Y:
		return prefix + ".Y"
	}
	for i, v := range p.Values {
		if v == y {
			return prefix + ".Values[" + strconv.Itoa(i) + "]"
		}
	}
	return prefix + ".?"
}

// All iterates y and its descendants in source order.
func (y *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		y.walk(yield)
	}
}

func (y *Node) walk(yield func(*Node) bool) bool {
	if !yield(y) {
		return false
	}
	for _, c := range y.Children() {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Root returns the topmost ancestor of y.
func (y *Node) Root() *Node {
	for y.Parent != nil {
		y = y.Parent
	}
	return y
}
