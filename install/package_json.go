package install

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/lintcfg/plugin"
	"github.com/signadot/lintcfg/value"
)

// mergePackageJSON adds the dev dependencies of plugins to package.json.
func mergePackageJSON(text string, plugins []*plugin.Descriptor) (string, bool, error) {
	v, err := value.ParseJSON([]byte(text))
	if err != nil {
		return "", false, fmt.Errorf("package.json: %w", err)
	}
	pkg, ok := v.(value.Object)
	if !ok {
		return "", false, fmt.Errorf("%w: package.json is not an object", ErrStructure)
	}
	var deps value.Object
	dv, _ := pkg.Get("devDependencies")
	switch x := dv.(type) {
	case nil:
	case value.Object:
		deps = x
	default:
		return "", false, fmt.Errorf("%w: package.json devDependencies is not an object", ErrStructure)
	}
	changed := false
	for _, p := range plugins {
		for _, k := range slices.Sorted(maps.Keys(p.DevDependencies)) {
			if cur, ok := deps.Get(k); ok && cur == p.DevDependencies[k] {
				continue
			}
			deps.Set(k, p.DevDependencies[k])
			changed = true
		}
	}
	if !changed {
		return text, false, nil
	}
	pkg.Set("devDependencies", deps)
	res := value.EncodeJSON(pkg, "  ")
	if strings.HasSuffix(text, "\n") {
		res += "\n"
	}
	return res, true, nil
}
