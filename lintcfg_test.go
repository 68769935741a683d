package lintcfg

import (
	"testing"

	"github.com/signadot/lintcfg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, "module.exports = {\n  a: 1\n};\n", Convert(`{"a": 1}`, format.JSONFormat, format.ModuleFormat))
	assert.Equal(t, "{ oops", Convert("{ oops", format.JSONFormat, format.YAMLFormat))
}

func TestInstallLegacy(t *testing.T) {
	ps, err := Plugins("security")
	require.NoError(t, err)
	res := InstallLegacy("{}\n", "{}\n", format.LegacyJSON, ps)
	require.True(t, res.OK, res.Message)
	assert.Contains(t, res.PackageJSON, `"eslint-plugin-security": "^3.0.1"`)
	assert.Contains(t, res.Config, `"plugin:security/recommended-legacy"`)

	res = InstallLegacy("{}", "module.exports = 1;", format.LegacyCJS, ps)
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Message)
	assert.Empty(t, res.PackageJSON)
	assert.Empty(t, res.Config)
}

func TestInstallFlat(t *testing.T) {
	ps, err := Plugins("astro")
	require.NoError(t, err)
	res := InstallFlat("export default [];\n", ps)
	require.True(t, res.OK, res.Message)
	assert.Equal(t, "import astro from \"eslint-plugin-astro\";\nexport default [...astro.configs.recommended];\n", res.Config)

	res = InstallFlat("export default [", ps)
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Message)
}

func TestPlugins(t *testing.T) {
	all, err := Plugins()
	require.NoError(t, err)
	assert.NotEmpty(t, all)
	_, err = Plugins("no-such-plugin")
	assert.Error(t, err)
}
