package eval

import (
	"math"
	"strconv"
	"unicode/utf16"

	"github.com/signadot/lintcfg/debug"
	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/value"
)

// Resolve computes the value of n in scope s. The value is one of the
// types of package value. ok is false when n cannot be resolved
// statically.
func Resolve(n *ir.Node, s *Scope) (v any, ok bool) {
	r := &resolver{visiting: map[*Binding]bool{}}
	defer func() {
		if p := recover(); p != nil {
			if debug.Eval() {
				debug.Logf("resolve %v panicked: %v\n", n, p)
			}
			v, ok = nil, false
		}
	}()
	v, ok = r.resolve(n, s)
	if debug.Eval() {
		debug.Logf("resolve %v: %v (ok=%t)\n", n, v, ok)
	}
	return v, ok
}

type resolver struct {
	visiting map[*Binding]bool
}

func (r *resolver) resolve(n *ir.Node, s *Scope) (any, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Type {
	case ir.NullType:
		return nil, true
	case ir.BoolType:
		return n.Bool, true
	case ir.NumberType:
		return n.Number, true
	case ir.StringType:
		return n.String, true
	case ir.IdentType:
		return r.ident(n.Name, s)
	case ir.ArrayType:
		res := make([]any, 0, len(n.Values))
		for _, e := range n.Values {
			if e.Type == ir.SpreadType {
				v, ok := r.resolve(e.X, s)
				if !ok {
					return nil, false
				}
				arr, ok := v.([]any)
				if !ok {
					return nil, false
				}
				res = append(res, arr...)
				continue
			}
			v, ok := r.resolve(e, s)
			if !ok {
				return nil, false
			}
			res = append(res, v)
		}
		return res, true
	case ir.ObjectType:
		res := value.Object{}
		for _, p := range n.Values {
			switch p.Type {
			case ir.SpreadType:
				v, ok := r.resolve(p.X, s)
				if !ok {
					return nil, false
				}
				switch x := v.(type) {
				case value.Object:
					for _, m := range x {
						res.Set(m.Key, m.Value)
					}
				case nil:
				default:
					return nil, false
				}
			case ir.PropertyType:
				k, ok := r.key(p, s)
				if !ok {
					return nil, false
				}
				v, ok := r.resolve(p.Value, s)
				if !ok {
					return nil, false
				}
				res.Set(k, v)
			default:
				return nil, false
			}
		}
		return res, true
	case ir.MemberType:
		return r.member(n, s)
	case ir.UnaryType:
		return r.unary(n, s)
	case ir.BinaryType:
		return r.binary(n, s)
	}
	return nil, false
}

func (r *resolver) ident(name string, s *Scope) (any, bool) {
	if s == nil {
		return nil, false
	}
	b, ok := s.Lookup(name)
	if !ok || b.Kind != ConstBinding || b.Init == nil || r.visiting[b] {
		return nil, false
	}
	r.visiting[b] = true
	defer delete(r.visiting, b)
	v, ok := r.resolve(b.Init, s)
	if !ok {
		return nil, false
	}
	for _, k := range b.Path {
		obj, isObj := v.(value.Object)
		if !isObj {
			return nil, false
		}
		if v, ok = obj.Get(k); !ok {
			return nil, false
		}
	}
	return v, true
}

// key resolves the key of property p.
func (r *resolver) key(p *ir.Node, s *Scope) (string, bool) {
	if !p.Computed {
		return p.KeyName()
	}
	v, ok := r.resolve(p.Key, s)
	if !ok {
		return "", false
	}
	return propertyKey(v)
}

func propertyKey(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return value.FormatNumber(x), true
	case bool:
		return strconv.FormatBool(x), true
	case nil:
		return "null", true
	}
	return "", false
}

func (r *resolver) member(n *ir.Node, s *Scope) (any, bool) {
	obj, ok := r.resolve(n.X, s)
	if !ok {
		return nil, false
	}
	var k string
	if n.Computed {
		kv, ok := r.resolve(n.Key, s)
		if !ok {
			return nil, false
		}
		if k, ok = propertyKey(kv); !ok {
			return nil, false
		}
	} else if k, ok = n.KeyName(); !ok {
		return nil, false
	}
	switch x := obj.(type) {
	case value.Object:
		return x.Get(k)
	case []any:
		if k == "length" {
			return float64(len(x)), true
		}
		if i, err := strconv.Atoi(k); err == nil && i >= 0 && i < len(x) {
			return x[i], true
		}
	case string:
		u := utf16.Encode([]rune(x))
		if k == "length" {
			return float64(len(u)), true
		}
		if i, err := strconv.Atoi(k); err == nil && i >= 0 && i < len(u) {
			return string(utf16.Decode(u[i : i+1])), true
		}
	}
	return nil, false
}

func (r *resolver) unary(n *ir.Node, s *Scope) (any, bool) {
	v, ok := r.resolve(n.X, s)
	if !ok {
		return nil, false
	}
	switch n.Name {
	case "!":
		return !Truthy(v), true
	case "-":
		if f, ok := v.(float64); ok {
			return -f, true
		}
	case "+":
		if f, ok := v.(float64); ok {
			return f, true
		}
	case "typeof":
		switch v.(type) {
		case nil, []any, value.Object:
			return "object", true
		case bool:
			return "boolean", true
		case float64:
			return "number", true
		case string:
			return "string", true
		}
	}
	return nil, false
}

func (r *resolver) binary(n *ir.Node, s *Scope) (any, bool) {
	l, ok := r.resolve(n.X, s)
	if !ok {
		return nil, false
	}
	switch n.Name {
	case "&&":
		if !Truthy(l) {
			return l, true
		}
		return r.resolve(n.Y, s)
	case "||":
		if Truthy(l) {
			return l, true
		}
		return r.resolve(n.Y, s)
	case "??":
		if l != nil {
			return l, true
		}
		return r.resolve(n.Y, s)
	}
	rv, ok := r.resolve(n.Y, s)
	if !ok {
		return nil, false
	}
	v, ok := fold(n.Name, l, rv)
	if f, isNum := v.(float64); ok && isNum && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil, false
	}
	return v, ok
}

// Truthy reports whether v is truthy in JavaScript.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	}
	return true
}
