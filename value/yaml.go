package value

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/signadot/lintcfg/token"
)

// FromYAML decodes the native value of a YAML document. An empty document
// decodes to nil.
func FromYAML(d []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		se := token.NewSyntaxError("yaml", nil, yaml.FormatError(err, false, true))
		se.Err = ErrYAML
		return nil, se
	}
	return normalize(v), nil
}

func normalize(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(Object, 0, len(x))
		for _, it := range x {
			res.Set(keyString(it.Key), normalize(it.Value))
		}
		return res
	case map[string]any:
		res := make(Object, 0, len(x))
		for k, e := range x {
			res.Set(k, normalize(e))
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = normalize(x[i])
		}
		return res
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		return x
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case nil, bool, string:
		return x
	}
	return fmt.Sprint(v)
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(k)
}
