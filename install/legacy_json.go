package install

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/lintcfg/value"
)

type jsonDoc struct {
	obj value.Object
	nl  bool
}

func newJSONDoc(text string) (*jsonDoc, error) {
	v, err := value.ParseJSON([]byte(text))
	if err != nil {
		return nil, err
	}
	obj, ok := v.(value.Object)
	if !ok {
		return nil, fmt.Errorf("%w: config is not an object", ErrStructure)
	}
	return &jsonDoc{obj: obj, nl: strings.HasSuffix(text, "\n")}, nil
}

func (d *jsonDoc) mergeList(key string, add []string) (bool, error) {
	var list []any
	cur, _ := d.obj.Get(key)
	switch x := cur.(type) {
	case nil:
	case string:
		list = []any{x}
	case []any:
		list = slices.Clone(x)
	default:
		return false, fmt.Errorf("%w: %s is not a string or an array", ErrStructure, key)
	}
	n := len(list)
	for _, a := range add {
		if !slices.Contains(list, any(a)) {
			list = append(list, a)
		}
	}
	if len(list) == n {
		return false, nil
	}
	d.obj.Set(key, list)
	return true, nil
}

func (d *jsonDoc) mergeOverride(o value.Object) (bool, error) {
	var list []any
	cur, _ := d.obj.Get("overrides")
	switch x := cur.(type) {
	case nil:
	case []any:
		list = x
	default:
		return false, fmt.Errorf("%w: overrides is not an array", ErrStructure)
	}
	files := overrideFiles(o)
	for i, e := range list {
		eo, ok := e.(value.Object)
		if !ok {
			continue
		}
		if !slices.Equal(overrideFiles(eo), files) {
			continue
		}
		changed := false
		for _, m := range o {
			if m.Key == "files" {
				continue
			}
			if cur, ok := eo.Get(m.Key); ok && value.Equal(cur, m.Value) {
				continue
			}
			eo.Set(m.Key, m.Value)
			changed = true
		}
		list[i] = eo
		return changed, nil
	}
	d.obj.Set("overrides", append(list, o))
	return true, nil
}

func (d *jsonDoc) String() (string, error) {
	res := value.EncodeJSON(d.obj, "  ")
	if d.nl {
		res += "\n"
	}
	return res, nil
}
