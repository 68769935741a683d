// Package plugin describes linter plugins to install into configurations.
//
// A [Descriptor] carries the package dependencies of a plugin, what it adds
// to a legacy configuration and, through the [FlatConfig] capability, the
// imports and array elements it adds to a flat configuration.
//
// The built in catalog is an embedded YAML document, decoded once on first
// use. Its flat configuration elements are expression templates which
// refer to import bindings as ${name}.
package plugin
