// Package lintcfg converts linter configurations between JSON, YAML and
// module export text, and installs plugins into legacy and flat
// configurations.
//
// The functions here never fail: conversion falls back to the input text
// and installation reports failure in its result.
package lintcfg

import (
	"github.com/signadot/lintcfg/convert"
	"github.com/signadot/lintcfg/format"
	"github.com/signadot/lintcfg/install"
	"github.com/signadot/lintcfg/plugin"
)

// Convert converts text from one format to another. When text cannot be
// converted, it is returned unchanged.
func Convert(text string, from, to format.Format) string {
	return convert.Convert(text, from, to)
}

type LegacyResult struct {
	OK          bool   `json:"ok"`
	PackageJSON string `json:"packageJson,omitempty"`
	Config      string `json:"config,omitempty"`
	Message     string `json:"message,omitempty"`
}

// InstallLegacy installs plugins into a legacy configuration and its
// package.json. Both texts are updated or neither is.
func InstallLegacy(pkgJSON, config string, f format.LegacyFormat, plugins []*plugin.Descriptor) LegacyResult {
	res, err := install.Legacy(pkgJSON, config, f, plugins...)
	if err != nil {
		return LegacyResult{Message: err.Error()}
	}
	return LegacyResult{OK: true, PackageJSON: res.PackageJSON, Config: res.Config}
}

type FlatResult struct {
	OK      bool   `json:"ok"`
	Config  string `json:"config,omitempty"`
	Message string `json:"message,omitempty"`
}

// InstallFlat installs plugins into a flat configuration.
func InstallFlat(config string, plugins []*plugin.Descriptor) FlatResult {
	res, err := install.Flat(config, plugins...)
	if err != nil {
		return FlatResult{Message: err.Error()}
	}
	return FlatResult{OK: true, Config: res.Config}
}

// Plugins returns the catalog descriptors with the given names, or the
// whole catalog when no name is given.
func Plugins(names ...string) ([]*plugin.Descriptor, error) {
	if len(names) == 0 {
		return plugin.Catalog()
	}
	return plugin.Lookup(names...)
}
