package convert

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/signadot/lintcfg/format"
	"github.com/signadot/lintcfg/token"
	"github.com/signadot/lintcfg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{"extends":["eslint:recommended"],"rules":{"quotes":["error","double"],"no-console":0},"env":{"browser":true}}`

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
}

func assertJSONEqual(t *testing.T, want, got string) {
	t.Helper()
	w, err := value.ParseJSON([]byte(want))
	require.NoError(t, err)
	g, err := value.ParseJSON([]byte(got))
	require.NoError(t, err)
	if !value.Equal(w, g) {
		t.Errorf("json differs:\nwant %s\ngot  %s", want, got)
	}
}

func TestJSONToModule(t *testing.T) {
	got, err := JSONToModule(sample)
	require.NoError(t, err)
	golden(t).Assert(t, "json_to_module", []byte(got))

	back, err := ModuleToJSON(got)
	require.NoError(t, err)
	assertJSONEqual(t, sample, back)
}

func TestModuleToJSON(t *testing.T) {
	src := `// base config
const base = ["eslint:recommended"];
const quotes = "double";

module.exports = {
  root: true,
  extends: [...base, "plugin:react/recommended"],
  rules: {
    quotes: ["error", quotes],
    ["no-" + "console"]: "warn",
    indent: ["error", 2 * 2],
  },
};
`
	got, err := ModuleToJSON(src)
	require.NoError(t, err)
	golden(t).Assert(t, "module_to_json", []byte(got))
}

func TestModuleToJSONExportDefault(t *testing.T) {
	got, err := ModuleToJSON("export default { a: 1 };\n")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", got)
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{
		sample,
		`{}`,
		`[1, "two", null, true, {"x": [1.5, -2]}]`,
		`{"overrides":[{"files":["*.ts"],"parser":"@typescript-eslint/parser"}],"settings":{"react":{"version":"detect"}}}`,
		`{"quoted":"yes","num":"1","empty":"","multi":"a\nb"}`,
	} {
		t.Run(in, func(t *testing.T) {
			y, err := JSONToYAML(in)
			require.NoError(t, err)
			j, err := YAMLToJSON(y)
			require.NoError(t, err)
			assertJSONEqual(t, in, j)

			m, err := JSONToModule(in)
			require.NoError(t, err)
			j, err = ModuleToJSON(m)
			require.NoError(t, err)
			assertJSONEqual(t, in, j)

			y, err = ModuleToYAML(m)
			require.NoError(t, err)
			m, err = YAMLToModule(y)
			require.NoError(t, err)
			j, err = ModuleToJSON(m)
			require.NoError(t, err)
			assertJSONEqual(t, in, j)
		})
	}
}

func TestModuleToYAMLComments(t *testing.T) {
	src := `module.exports = {
  // lint everything
  root: true, // stop here
  plugins: ["react"], // react only
};
`
	y, err := ModuleToYAML(src)
	require.NoError(t, err)
	assert.Contains(t, y, "# lint everything")
	assert.Contains(t, y, "# stop here")
	assert.Contains(t, y, "# react only")

	m, err := YAMLToModule(y)
	require.NoError(t, err)
	assert.Contains(t, m, "// lint everything")
	assert.Contains(t, m, "// stop here")
}

func TestModuleToYAMLNotRepresentable(t *testing.T) {
	for _, src := range []string{
		"module.exports = { ...base };",
		"module.exports = { [key]: 1 };",
		"module.exports = { a: require('x') };",
		"module.exports = [...other];",
	} {
		_, err := ModuleToYAML(src)
		assert.ErrorIs(t, err, errNotRepresentable, src)
		assert.Equal(t, src, Convert(src, format.ModuleFormat, format.YAMLFormat))
	}
}

func TestYAMLToModule(t *testing.T) {
	src := `root: true
extends:
  - eslint:recommended
"plain-key": 1
"name": x
base: &base
  env: browser
merged:
  <<: *base
  extra: 2
`
	m, err := YAMLToModule(src)
	require.NoError(t, err)
	assert.Contains(t, m, "root: true")
	assert.Contains(t, m, `"plain-key": 1`)
	assert.Contains(t, m, `"name": "x"`)

	j, err := ModuleToJSON(m)
	require.NoError(t, err)
	assertJSONEqual(t, `{
  "root": true,
  "extends": ["eslint:recommended"],
  "plain-key": 1,
  "name": "x",
  "base": {"env": "browser"},
  "merged": {"env": "browser", "extra": 2}
}`, j)
}

func TestYAMLToModuleEmpty(t *testing.T) {
	m, err := YAMLToModule("")
	require.NoError(t, err)
	assert.Equal(t, "module.exports = null;\n", m)
}

func TestErrors(t *testing.T) {
	_, err := JSONToYAML(`{"a":}`)
	assert.ErrorIs(t, err, token.ErrSyntax)
	_, err = YAMLToJSON("a: [")
	assert.ErrorIs(t, err, token.ErrSyntax)
	_, err = YAMLToModule("a: [")
	assert.ErrorIs(t, err, token.ErrSyntax)
	_, err = ModuleToJSON("module.exports = {")
	assert.ErrorIs(t, err, token.ErrSyntax)
	_, err = ModuleToJSON("const a = 1;")
	assert.ErrorIs(t, err, ErrNoExport)
	_, err = ModuleToJSON("module.exports = defineConfig({});")
	assert.ErrorIs(t, err, errNotRepresentable)
}

func TestConvert(t *testing.T) {
	assert.Equal(t, "not json", Convert("not json", format.JSONFormat, format.JSONFormat))
	assert.Equal(t, "not json", Convert("not json", format.JSONFormat, format.YAMLFormat))
	assert.Equal(t, "a: 1\n", Convert(`{"a": 1}`, format.JSONFormat, format.YAMLFormat))
	assert.Equal(t, "{\n  \"a\": 1\n}", Convert("a: 1\n", format.YAMLFormat, format.JSONFormat))

	_, err := Text("x", format.Format(42), format.JSONFormat)
	assert.ErrorIs(t, err, format.ErrBadFormat)
}

func TestYAMLTimestamps(t *testing.T) {
	src := "released: 2001-12-14\n"
	j, err := YAMLToJSON(src)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"released\": \"2001-12-14\"\n}", j)

	m, err := YAMLToModule(src)
	require.NoError(t, err)
	assert.Equal(t, "module.exports = {\n  released: \"2001-12-14\"\n};\n", m)
}
