package plugin

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/signadot/lintcfg/debug"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogEntry struct {
	Name            string            `yaml:"name"`
	DevDependencies map[string]string `yaml:"devDependencies"`
	Legacy          *LegacyConfig     `yaml:"legacy"`
	Flat            *Template         `yaml:"flat"`
}

var catalog = sync.OnceValues(func() ([]*Descriptor, error) {
	return decodeCatalog(catalogYAML)
})

func decodeCatalog(d []byte) ([]*Descriptor, error) {
	var entries []catalogEntry
	if err := yaml.Unmarshal(d, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCatalog, yaml.FormatError(err, false, true))
	}
	res := make([]*Descriptor, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrCatalog, i)
		}
		desc := &Descriptor{
			Name:            e.Name,
			DevDependencies: e.DevDependencies,
			Legacy:          e.Legacy,
		}
		if e.Flat != nil {
			desc.Flat = e.Flat
		}
		res = append(res, desc)
	}
	if debug.Install() {
		debug.Logf("plugin catalog: %d entries\n", len(res))
	}
	return res, nil
}

// Catalog returns the built in plugins in catalog order.
func Catalog() ([]*Descriptor, error) {
	return catalog()
}

// Lookup returns the catalog plugins with the given names, in order.
func Lookup(names ...string) ([]*Descriptor, error) {
	all, err := catalog()
	if err != nil {
		return nil, err
	}
	res := make([]*Descriptor, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(all, func(d *Descriptor) bool { return d.Name == name })
		if i == -1 {
			return nil, fmt.Errorf("%w %q", ErrUnknown, name)
		}
		res = append(res, all[i])
	}
	return res, nil
}
