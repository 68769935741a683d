package plugin

import (
	"iter"

	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/value"
)

// Descriptor describes a plugin. Descriptors are shared and must not be
// modified.
type Descriptor struct {
	Name            string
	DevDependencies map[string]string
	Legacy          *LegacyConfig
	Flat            FlatConfig
}

// LegacyConfig is what a plugin adds to a legacy configuration.
type LegacyConfig struct {
	Plugins   []string   `yaml:"plugins,omitempty"`
	Extends   []string   `yaml:"extends,omitempty"`
	Overrides []Override `yaml:"overrides,omitempty"`
}

// Override is an overrides entry of a legacy configuration.
type Override struct {
	Files   []string `yaml:"files"`
	Extends []string `yaml:"extends,omitempty"`
	Parser  string   `yaml:"parser,omitempty"`
}

// Value returns o as a configuration value with fields in the order
// files, extends, parser. Empty fields are omitted.
func (o *Override) Value() value.Object {
	res := value.Object{{Key: "files", Value: value.FromStrings(o.Files)}}
	if len(o.Extends) != 0 {
		res.Set("extends", value.FromStrings(o.Extends))
	}
	if o.Parser != "" {
		res.Set("parser", o.Parser)
	}
	return res
}

// ImportRequest asks for a local binding of a module. Imported is the
// exported name for named imports. Local is the preferred local name.
type ImportRequest struct {
	Source   string      `yaml:"source"`
	Kind     ir.SpecKind `yaml:"kind"`
	Imported string      `yaml:"imported,omitempty"`
	Local    string      `yaml:"local"`
}

// FlatConfig is the flat configuration capability of a plugin.
type FlatConfig interface {
	// Imports yields the bindings the plugin's expressions refer to.
	Imports() iter.Seq[ImportRequest]
	// Expressions yields the elements to append to the configuration
	// array, given the actual local names of the requested bindings.
	Expressions(Bindings) iter.Seq2[*ir.Node, error]
}

// Bindings maps preferred local names to the local names chosen in a
// configuration.
type Bindings map[string]string

// Name returns the local name bound for preferred, or preferred itself.
func (b Bindings) Name(preferred string) string {
	if n, ok := b[preferred]; ok {
		return n
	}
	return preferred
}
