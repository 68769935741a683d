package install

import (
	"fmt"

	"github.com/signadot/lintcfg/debug"
	"github.com/signadot/lintcfg/format"
	"github.com/signadot/lintcfg/plugin"
	"github.com/signadot/lintcfg/value"
)

// legacyDoc is a legacy configuration being merged into.
type legacyDoc interface {
	// mergeList adds the strings of add missing from the list valued
	// field key.
	mergeList(key string, add []string) (bool, error)
	// mergeOverride merges o into the override with the same files, or
	// appends it.
	mergeOverride(o value.Object) (bool, error)
	String() (string, error)
}

// Legacy installs plugins into a legacy configuration written in format
// f, and adds their dev dependencies to package.json.
func Legacy(pkgJSON, config string, f format.LegacyFormat, plugins ...*plugin.Descriptor) (*LegacyResult, error) {
	pkg, pkgChanged, err := mergePackageJSON(pkgJSON, plugins)
	if err != nil {
		return nil, err
	}
	var doc legacyDoc
	switch f {
	case format.LegacyJSON:
		doc, err = newJSONDoc(config)
	case format.LegacyYAML:
		doc, err = newYAMLDoc(config)
	case format.LegacyCJS:
		doc, err = newCJSDoc(config)
	default:
		err = fmt.Errorf("%w: legacy format %d", ErrUnsupported, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s config: %w", f, err)
	}
	changed, err := mergeLegacy(doc, plugins)
	if err != nil {
		return nil, fmt.Errorf("%s config: %w", f, err)
	}
	res := &LegacyResult{
		PackageJSON:     pkg,
		Config:          config,
		Changed:         changed || pkgChanged,
		origPackageJSON: pkgJSON,
		origConfig:      config,
	}
	if changed {
		if res.Config, err = doc.String(); err != nil {
			return nil, fmt.Errorf("%s config: %w", f, err)
		}
	}
	if debug.Install() {
		debug.Logf("legacy %s install changed=%t:\n%s", f, res.Changed, res.Diff(nil))
	}
	return res, nil
}

func mergeLegacy(doc legacyDoc, plugins []*plugin.Descriptor) (bool, error) {
	changed := false
	for _, p := range plugins {
		if p.Legacy == nil {
			continue
		}
		lists := []struct {
			key string
			add []string
		}{
			{"plugins", p.Legacy.Plugins},
			{"extends", p.Legacy.Extends},
		}
		for _, l := range lists {
			if len(l.add) == 0 {
				continue
			}
			c, err := doc.mergeList(l.key, l.add)
			if err != nil {
				return false, fmt.Errorf("%s: %w", p.Name, err)
			}
			changed = changed || c
		}
		for i := range p.Legacy.Overrides {
			c, err := doc.mergeOverride(p.Legacy.Overrides[i].Value())
			if err != nil {
				return false, fmt.Errorf("%s: %w", p.Name, err)
			}
			changed = changed || c
		}
	}
	return changed, nil
}

// overrideFiles returns the files of override o.
func overrideFiles(o value.Object) []string {
	v, _ := o.Get("files")
	fs, _ := value.Strings(v)
	return fs
}
