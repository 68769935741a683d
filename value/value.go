package value

import (
	"encoding/json"
	"slices"
)

type Member struct {
	Key   string
	Value any
}

// Object is an ordered JSON object.
type Object []Member

func (o Object) Get(k string) (any, bool) {
	for i := range o {
		if o[i].Key == k {
			return o[i].Value, true
		}
	}
	return nil, false
}

func (o Object) Has(k string) bool {
	_, ok := o.Get(k)
	return ok
}

// Set replaces the value of k in place or appends it.
func (o *Object) Set(k string, v any) {
	for i := range *o {
		if (*o)[i].Key == k {
			(*o)[i].Value = v
			return
		}
	}
	*o = append(*o, Member{Key: k, Value: v})
}

func (o Object) Keys() []string {
	res := make([]string, len(o))
	for i := range o {
		res[i] = o[i].Key
	}
	return res
}

func (o Object) MarshalJSON() ([]byte, error) {
	return []byte(EncodeJSON(o, "")), nil
}

var _ json.Marshaler = Object(nil)

// Equal reports whether a and b are the same value. Object member order
// is ignored.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case bool, float64, string:
		return a == b
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Object:
		y, ok := b.(Object)
		if !ok || len(x) != len(y) {
			return false
		}
		for _, m := range x {
			w, ok := y.Get(m.Key)
			if !ok || !Equal(m.Value, w) {
				return false
			}
		}
		return true
	}
	return false
}

func Clone(v any) any {
	switch x := v.(type) {
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = Clone(x[i])
		}
		return res
	case Object:
		res := slices.Clone(x)
		for i := range res {
			res[i].Value = Clone(res[i].Value)
		}
		return res
	}
	return v
}

// Strings returns the elements of v when v is a string or an array of
// strings. A string is treated as a one element array.
func Strings(v any) ([]string, bool) {
	switch x := v.(type) {
	case string:
		return []string{x}, true
	case []any:
		res := make([]string, 0, len(x))
		for _, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			res = append(res, s)
		}
		return res, true
	}
	return nil, false
}

func FromStrings(ss []string) []any {
	res := make([]any, len(ss))
	for i, s := range ss {
		res[i] = s
	}
	return res
}
