package ir

import (
	"fmt"
	"slices"
)

// Touch marks y and all its ancestors as modified.
func (y *Node) Touch() {
	for x := y; x != nil && !x.dirty; x = x.Parent {
		x.dirty = true
	}
}

// Append adds vs to the end of list y.
func (y *Node) Append(vs ...*Node) error {
	return y.InsertAt(len(y.Values), vs...)
}

// InsertAt inserts vs into list y before position i.
func (y *Node) InsertAt(i int, vs ...*Node) error {
	if !y.Type.IsList() && y.Type != VarType && y.Type != ImportType {
		return fmt.Errorf("%w: %s", ErrNotList, y.Type)
	}
	if i < 0 || i > len(y.Values) {
		return fmt.Errorf("index %d out of range [0, %d]", i, len(y.Values))
	}
	for _, v := range vs {
		v.Parent = y
	}
	y.Values = slices.Insert(y.Values, i, vs...)
	y.Touch()
	return nil
}

// SetProp sets property name of object y to v, replacing the value of an
// existing property in place or appending a new one.
func (y *Node) SetProp(name string, v *Node) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: %s", ErrNotObject, y.Type)
	}
	if p := y.Prop(name); p != nil {
		return Replace(p.Value, v)
	}
	return y.Append(Prop(name, v))
}

// Replace puts repl in the place of old within old's parent.
func Replace(old, repl *Node) error {
	p := old.Parent
	if p == nil {
		return ErrNoParent
	}
	found := false
	for _, slot := range []**Node{&p.Key, &p.Value, &p.X, &p.Y} {
		if *slot == old {
			*slot = repl
			found = true
			break
		}
	}
	if !found {
		i := slices.Index(p.Values, old)
		if i == -1 {
			return fmt.Errorf("%w: %s in %s", ErrNotChild, old.Type, p.Type)
		}
		p.Values[i] = repl
	}
	repl.Parent = p
	repl.Was = old.Span()
	if p.Type == PropertyType && p.Shorthand {
		p.Shorthand = false
	}
	old.Parent = nil
	repl.Touch()
	return nil
}

// Children returns the children of y in source order.
func (y *Node) Children() []*Node {
	var res []*Node
	add := func(ns ...*Node) {
		for _, n := range ns {
			if n != nil {
				res = append(res, n)
			}
		}
	}
	switch y.Type {
	case CallType:
		add(y.X)
		add(y.Values...)
	case MemberType, PropertyType, DeclaratorType:
		if y.Type == PropertyType && y.Shorthand {
			add(y.Value)
			break
		}
		if y.Type == MemberType {
			add(y.X, y.Key)
			break
		}
		add(y.Key, y.Value)
	default:
		add(y.X, y.Y)
		add(y.Values...)
	}
	return res
}
