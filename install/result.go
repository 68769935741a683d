package install

import (
	"github.com/signadot/lintcfg/libdiff"
	"github.com/signadot/lintcfg/plugin"
)

// LegacyResult is the result of a legacy installation.
type LegacyResult struct {
	PackageJSON string
	Config      string
	Changed     bool

	origPackageJSON, origConfig string
}

// Diff returns a line diff of package.json followed by one of the
// configuration. c may be nil.
func (r *LegacyResult) Diff(c *libdiff.Colors) string {
	return diff(r.origPackageJSON, r.PackageJSON, c) + diff(r.origConfig, r.Config, c)
}

// FlatResult is the result of a flat installation.
type FlatResult struct {
	Config  string
	Changed bool
	// Bindings holds the local names chosen for each plugin, in plugin
	// order.
	Bindings []plugin.Bindings

	origConfig string
}

// Diff returns a line diff of the configuration. c may be nil.
func (r *FlatResult) Diff(c *libdiff.Colors) string {
	return diff(r.origConfig, r.Config, c)
}

func diff(from, to string, c *libdiff.Colors) string {
	if from == to {
		return ""
	}
	return libdiff.Format(libdiff.DiffLines(from, to), 3, c)
}
