package install

import (
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/lintcfg/format"
	"github.com/signadot/lintcfg/plugin"
	"github.com/signadot/lintcfg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var security = &plugin.Descriptor{
	Name: "security",
	Legacy: &plugin.LegacyConfig{
		Plugins: []string{"security"},
		Extends: []string{"plugin:security/recommended"},
	},
}

var react = &plugin.Descriptor{
	Name:            "react",
	DevDependencies: map[string]string{"eslint-plugin-react": "^7.0.0", "eslint-plugin-jsx-a11y": "^6.0.0"},
	Legacy: &plugin.LegacyConfig{
		Plugins: []string{"react", "import"},
		Extends: []string{"plugin:react/recommended"},
		Overrides: []plugin.Override{
			{Files: []string{"*.ts"}, Parser: "@typescript-eslint/parser"},
			{Files: []string{"*.tsx"}, Extends: []string{"x"}},
		},
	},
}

func TestLegacyJSONScenario(t *testing.T) {
	res, err := Legacy(`{"name": "app"}`, `{}`, format.LegacyJSON, security)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, `{"name": "app"}`, res.PackageJSON)
	assert.True(t, jsonpatch.Equal([]byte(`{"plugins":["security"],"extends":["plugin:security/recommended"]}`), []byte(res.Config)), res.Config)

	again, err := Legacy(res.PackageJSON, res.Config, format.LegacyJSON, security)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, res.Config, again.Config)
	assert.Empty(t, again.Diff(nil))
}

func TestLegacyJSON(t *testing.T) {
	config := `{
  "plugins": "import",
  "overrides": [{"files": ["*.ts"], "parser": "old"}]
}
`
	res, err := Legacy("{\"name\": \"app\"}\n", config, format.LegacyJSON, react)
	require.NoError(t, err)
	assert.Equal(t, `{
  "name": "app",
  "devDependencies": {
    "eslint-plugin-jsx-a11y": "^6.0.0",
    "eslint-plugin-react": "^7.0.0"
  }
}
`, res.PackageJSON)
	assert.Equal(t, `{
  "plugins": [
    "import",
    "react"
  ],
  "overrides": [
    {
      "files": [
        "*.ts"
      ],
      "parser": "@typescript-eslint/parser"
    },
    {
      "files": [
        "*.tsx"
      ],
      "extends": [
        "x"
      ]
    }
  ],
  "extends": [
    "plugin:react/recommended"
  ]
}
`, res.Config)
	assert.Contains(t, res.Diff(nil), `+    "react"`)

	again, err := Legacy(res.PackageJSON, res.Config, format.LegacyJSON, react)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, res.PackageJSON, again.PackageJSON)
	assert.Equal(t, res.Config, again.Config)
}

func TestLegacyYAML(t *testing.T) {
	config := `# shared config
plugins: react # the only one
extends:
  - eslint:recommended
`
	res, err := Legacy("{}", config, format.LegacyYAML, react)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Contains(t, res.Config, "# shared config")
	assert.Contains(t, res.Config, "# the only one")

	v, err := value.FromYAML([]byte(res.Config))
	require.NoError(t, err)
	want := value.Object{
		{Key: "plugins", Value: []any{"react", "import"}},
		{Key: "extends", Value: []any{"eslint:recommended", "plugin:react/recommended"}},
		{Key: "overrides", Value: []any{
			value.Object{{Key: "files", Value: []any{"*.ts"}}, {Key: "parser", Value: "@typescript-eslint/parser"}},
			value.Object{{Key: "files", Value: []any{"*.tsx"}}, {Key: "extends", Value: []any{"x"}}},
		}},
	}
	assert.True(t, value.Equal(want, v), value.EncodeJSON(v, "  "))

	again, err := Legacy(res.PackageJSON, res.Config, format.LegacyYAML, react)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, res.Config, again.Config)
}

func TestLegacyYAMLOverrideMerge(t *testing.T) {
	config := `overrides:
  - files: "*.ts"
    parser: old
  - files: ["*.ts"]
    parser: second
`
	res, err := Legacy("{}", config, format.LegacyYAML, react)
	require.NoError(t, err)
	v, err := value.FromYAML([]byte(res.Config))
	require.NoError(t, err)
	ov, _ := v.(value.Object).Get("overrides")
	require.Len(t, ov, 3)
	first := ov.([]any)[0].(value.Object)
	parser, _ := first.Get("parser")
	assert.Equal(t, "@typescript-eslint/parser", parser)
	second := ov.([]any)[1].(value.Object)
	parser, _ = second.Get("parser")
	assert.Equal(t, "second", parser)
}

func TestLegacyYAMLEmpty(t *testing.T) {
	res, err := Legacy("{}", "", format.LegacyYAML, security)
	require.NoError(t, err)
	v, err := value.FromYAML([]byte(res.Config))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.Object{
		{Key: "plugins", Value: []any{"security"}},
		{Key: "extends", Value: []any{"plugin:security/recommended"}},
	}, v))
}

func TestLegacyCJS(t *testing.T) {
	config := `const shared = ["import"];

module.exports = {
  root: true,
  plugins: shared,
  extends: "eslint:recommended",
  overrides: [
    { files: ["*.ts"], parser: "old-parser" },
  ],
};
`
	res, err := Legacy("{}", config, format.LegacyCJS, react)
	require.NoError(t, err)
	assert.Equal(t, `const shared = ["import"];

module.exports = {
  root: true,
  plugins: [shared, "react"].flat(),
  extends: ["eslint:recommended", "plugin:react/recommended"],
  overrides: [
    { files: ["*.ts"], parser: "@typescript-eslint/parser" },
    {
      files: ["*.tsx"],
      extends: ["x"]
    },
  ],
};
`, res.Config)

	again, err := Legacy(res.PackageJSON, res.Config, format.LegacyCJS, react)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, res.Config, again.Config)
}

func TestLegacyCJSAppendInPlace(t *testing.T) {
	config := `// eslint config
module.exports = {
  plugins: [
    'react', // ui
  ],
};
`
	res, err := Legacy("{}", config, format.LegacyCJS, security)
	require.NoError(t, err)
	assert.Equal(t, `// eslint config
module.exports = {
  plugins: [
    'react', // ui
    'security',
  ],
  extends: ['plugin:security/recommended'],
};
`, res.Config)
}

func TestLegacyCJSFlatCollapses(t *testing.T) {
	config := "module.exports = { plugins: [[\"a\"], [\"b\"].flat(), ...[\"c\"]] };\n"
	res, err := Legacy("{}", config, format.LegacyCJS, security)
	require.NoError(t, err)
	assert.Contains(t, res.Config, `plugins: ["a", "b", "c", "security"]`)

	config = "module.exports = { plugins: getPlugins() };\n"
	res, err = Legacy("{}", config, format.LegacyCJS, security)
	require.NoError(t, err)
	assert.Contains(t, res.Config, `plugins: [getPlugins(), "security"].flat()`)
	again, err := Legacy(res.PackageJSON, res.Config, format.LegacyCJS, security)
	require.NoError(t, err)
	assert.False(t, again.Changed)
}

func TestLegacyCJSOneLine(t *testing.T) {
	res, err := Legacy("{}", "module.exports = { root: true, plugins: getPlugins() };\n", format.LegacyCJS, security)
	require.NoError(t, err)
	assert.Equal(t, "module.exports = { root: true, plugins: [getPlugins(), \"security\"].flat(), extends: [\"plugin:security/recommended\"] };\n", res.Config)

	res, err = Legacy("{}", "module.exports = { root: true };\n", format.LegacyCJS, react)
	require.NoError(t, err)
	assert.Equal(t, "module.exports = { root: true, plugins: [\"react\", \"import\"], extends: [\"plugin:react/recommended\"], "+
		"overrides: [{ files: [\"*.ts\"], parser: \"@typescript-eslint/parser\" }, { files: [\"*.tsx\"], extends: [\"x\"] }] };\n", res.Config)
}

func TestLegacyCJSEmptyKeepsComments(t *testing.T) {
	config := `module.exports = {
  // TODO: rules
};
`
	res, err := Legacy("{}", config, format.LegacyCJS, security)
	require.NoError(t, err)
	assert.Equal(t, `module.exports = {
  // TODO: rules
  plugins: ["security"],
  extends: ["plugin:security/recommended"]
};
`, res.Config)

	res, err = Legacy("{}", "module.exports = { /* later */ };\n", format.LegacyCJS, security)
	require.NoError(t, err)
	assert.Equal(t, "module.exports = { /* later */ plugins: [\"security\"], extends: [\"plugin:security/recommended\"] };\n", res.Config)
}

func TestLegacyErrors(t *testing.T) {
	_, err := Legacy("{", "{}", format.LegacyJSON, security)
	assert.Error(t, err)
	_, err = Legacy("[]", "{}", format.LegacyJSON, security)
	assert.ErrorIs(t, err, ErrStructure)
	_, err = Legacy("{}", "[]", format.LegacyJSON, security)
	assert.ErrorIs(t, err, ErrStructure)
	_, err = Legacy("{}", `{"plugins": 1}`, format.LegacyJSON, security)
	assert.ErrorIs(t, err, ErrStructure)
	_, err = Legacy("{}", "- a\n", format.LegacyYAML, security)
	assert.ErrorIs(t, err, ErrStructure)
	_, err = Legacy("{}", "export default {};\n", format.LegacyCJS, security)
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = Legacy("{}", "const a = {};\n", format.LegacyCJS, security)
	assert.ErrorIs(t, err, ErrStructure)
	_, err = Legacy("{}", "module.exports = [];\n", format.LegacyCJS, security)
	assert.ErrorIs(t, err, ErrStructure)
	_, err = Legacy("{}", "{}", format.LegacyFormat(9), security)
	assert.ErrorIs(t, err, ErrUnsupported)
}
