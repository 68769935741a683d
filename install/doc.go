// Package install adds plugins to linter configurations.
//
// [Legacy] merges the plugins, extends and overrides of plugin descriptors
// into a legacy configuration written as JSON, YAML or a CommonJS object
// export, and their dev dependencies into package.json. [Flat] adds the
// imports and configuration array elements of plugins to a flat
// configuration written as an ES module or a CommonJS module.
//
// Installation is idempotent: installing a plugin twice changes nothing
// the second time. It is also all or nothing: on error no text is
// returned.
//
// Module text is rewritten through the expression tree of package ir, so
// code which is not touched keeps its original text, comments and layout.
package install
