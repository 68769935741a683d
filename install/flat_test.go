package install

import (
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/signadot/lintcfg/eval"
	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/parse"
	"github.com/signadot/lintcfg/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatPlugin(name string, reqs []plugin.ImportRequest, exprs ...string) *plugin.Descriptor {
	return &plugin.Descriptor{
		Name: name,
		Flat: &plugin.Template{Requests: reqs, Exprs: exprs},
	}
}

func defaultImport(source, local string) plugin.ImportRequest {
	return plugin.ImportRequest{Source: source, Kind: ir.DefaultSpec, Local: local}
}

func namedImport(source, imported, local string) plugin.ImportRequest {
	return plugin.ImportRequest{Source: source, Kind: ir.NamedSpec, Imported: imported, Local: local}
}

var astro = flatPlugin("astro",
	[]plugin.ImportRequest{defaultImport("eslint-plugin-astro", "astro")},
	"...${astro}.configs.recommended")

func TestFlatScenario(t *testing.T) {
	config := `import js from "@eslint/js";

export default [js.configs.recommended];
`
	res, err := Flat(config, astro)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, `import js from "@eslint/js";
import astro from "eslint-plugin-astro";

export default [js.configs.recommended, ...astro.configs.recommended];
`, res.Config)
	assert.Equal(t, []plugin.Bindings{{"astro": "astro"}}, res.Bindings)
	assert.Contains(t, res.Diff(nil), `+import astro from "eslint-plugin-astro";`)

	again, err := Flat(res.Config, astro)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, res.Config, again.Config)
	assert.Equal(t, 1, strings.Count(again.Config, "eslint-plugin-astro"))
}

func TestFlatMultiline(t *testing.T) {
	config := `export default [
  js.configs.recommended,
];
`
	res, err := Flat(config, astro)
	require.NoError(t, err)
	assert.Equal(t, `import astro from "eslint-plugin-astro";
export default [
  js.configs.recommended,
  ...astro.configs.recommended,
];
`, res.Config)
}

func TestFlatEmptyKeepsComments(t *testing.T) {
	config := `export default [
  // add configs here
];
`
	res, err := Flat(config, astro)
	require.NoError(t, err)
	assert.Equal(t, `import astro from "eslint-plugin-astro";
export default [
  // add configs here
  ...astro.configs.recommended
];
`, res.Config)

	again, err := Flat(res.Config, astro)
	require.NoError(t, err)
	assert.False(t, again.Changed)

	res, err = Flat("export default [/* none yet */];\n", astro)
	require.NoError(t, err)
	assert.Contains(t, res.Config, "export default [/* none yet */ ...astro.configs.recommended];")
}

func TestFlatPartiallyPresent(t *testing.T) {
	config := `import js from "@eslint/js";

export default [js.configs.recommended];
`
	p := flatPlugin("js",
		[]plugin.ImportRequest{defaultImport("@eslint/js", "js")},
		"${js}.configs.recommended", "${js}.configs.all")
	res, err := Flat(config, p)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, `import js from "@eslint/js";

export default [js.configs.recommended, js.configs.recommended, js.configs.all];
`, res.Config)

	again, err := Flat(res.Config, p)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, res.Config, again.Config)
}

func TestFlatCollision(t *testing.T) {
	config := `const jsdoc = { rules: {} };

export default [jsdoc];
`
	p := flatPlugin("jsdoc",
		[]plugin.ImportRequest{defaultImport("eslint-plugin-jsdoc", "jsdoc")},
		`${jsdoc}.configs["flat/recommended"]`)
	res, err := Flat(config, p)
	require.NoError(t, err)
	assert.Equal(t, `import _jsdoc from "eslint-plugin-jsdoc";
const jsdoc = { rules: {} };

export default [jsdoc, _jsdoc.configs["flat/recommended"]];
`, res.Config)
	assert.Equal(t, "_jsdoc", res.Bindings[0].Name("jsdoc"))
}

func TestFlatReuseImports(t *testing.T) {
	config := `import { configs as tsConfigs } from "typescript-eslint";
import * as regexp from "eslint-plugin-regexp";

export default [];
`
	p := flatPlugin("x",
		[]plugin.ImportRequest{
			namedImport("typescript-eslint", "configs", "configs"),
			{Source: "eslint-plugin-regexp", Kind: ir.NamespaceSpec, Local: "regexpPlugin"},
		},
		"${configs}.recommended", "${regexpPlugin}.configs.recommended")
	res, err := Flat(config, p)
	require.NoError(t, err)
	assert.Equal(t, plugin.Bindings{"configs": "tsConfigs", "regexpPlugin": "regexp"}, res.Bindings[0])
	assert.Contains(t, res.Config, "export default [tsConfigs.recommended, regexp.configs.recommended];")
	assert.Equal(t, 1, strings.Count(res.Config, "import {"))
}

func TestFlatMergeSynthesizedImport(t *testing.T) {
	p := flatPlugin("ts",
		[]plugin.ImportRequest{
			defaultImport("typescript-eslint", "tseslint"),
			namedImport("typescript-eslint", "config", "config"),
		},
		"...${tseslint}.configs.recommended")
	res, err := Flat("export default [];\n", p)
	require.NoError(t, err)
	assert.Equal(t, `import tseslint, { config } from "typescript-eslint";
export default [...tseslint.configs.recommended];
`, res.Config)
}

func TestFlatCJSReuse(t *testing.T) {
	config := `const { configs } = require("eslint-plugin-x");
const js = require("@eslint/js");

module.exports = [js.configs.recommended];
`
	p := flatPlugin("x",
		[]plugin.ImportRequest{
			namedImport("eslint-plugin-x", "configs", "xConfigs"),
			defaultImport("@eslint/js", "js"),
		},
		"${xConfigs}.recommended", "${js}.configs.all")
	res, err := Flat(config, p)
	require.NoError(t, err)
	assert.Equal(t, `const { configs } = require("eslint-plugin-x");
const js = require("@eslint/js");

module.exports = [js.configs.recommended, configs.recommended, js.configs.all];
`, res.Config)
	assert.Equal(t, plugin.Bindings{"xConfigs": "configs", "js": "js"}, res.Bindings[0])
}

func TestFlatCJSRequire(t *testing.T) {
	config := `"use strict";
module.exports = [];
`
	p := flatPlugin("security",
		[]plugin.ImportRequest{
			defaultImport("eslint-plugin-security", "security"),
			namedImport("eslint-plugin-a", "a", "a"),
			namedImport("eslint-plugin-a", "b", "pluginB"),
		},
		"${security}.configs.recommended")
	res, err := Flat(config, p)
	require.NoError(t, err)
	assert.Equal(t, `"use strict";
const security = require("eslint-plugin-security");
const { a, b: pluginB } = require("eslint-plugin-a");
module.exports = [security.configs.recommended];
`, res.Config)

	again, err := Flat(res.Config, p)
	require.NoError(t, err)
	assert.False(t, again.Changed)
}

func TestFlatWrap(t *testing.T) {
	res, err := Flat("export default config;\n", astro)
	require.NoError(t, err)
	assert.Contains(t, res.Config, "export default [...config, ...astro.configs.recommended];")

	res, err = Flat("module.exports = { rules: {} };\n", astro)
	require.NoError(t, err)
	assert.Contains(t, res.Config, `const astro = require("eslint-plugin-astro");`)
	prog, err := parse.ParseProgram([]byte(res.Config))
	require.NoError(t, err)
	exp := eval.FindExport(prog)
	require.NotNil(t, exp)
	require.Equal(t, ir.ArrayType, exp.Value.Type)
	require.Len(t, exp.Value.Values, 2)
	assert.Equal(t, ir.ObjectType, exp.Value.Values[0].Type)
	assert.Equal(t, ir.SpreadType, exp.Value.Values[1].Type)

	// wrapping alone is a change
	res, err = Flat("export default config;\n")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "export default [...config];\n", res.Config)
}

func TestFlatDefineConfig(t *testing.T) {
	config := `import { defineConfig } from "eslint/config";

export default defineConfig([js.configs.recommended]);
`
	res, err := Flat(config, astro)
	require.NoError(t, err)
	assert.Contains(t, res.Config, "export default defineConfig([js.configs.recommended, ...astro.configs.recommended]);")

	res, err = Flat("export default defineConfig(a, b);\n", astro)
	require.NoError(t, err)
	assert.Contains(t, res.Config, "export default defineConfig(a, b, ...astro.configs.recommended);")
}

func TestFlatCatalog(t *testing.T) {
	ps, err := plugin.Lookup("security", "astro")
	require.NoError(t, err)
	res, err := Flat("export default [];\n", ps...)
	require.NoError(t, err)
	assert.Equal(t, `import security from "eslint-plugin-security";
import astro from "eslint-plugin-astro";
export default [security.configs.recommended, ...astro.configs.recommended];
`, res.Config)
}

type panicky struct{ imports bool }

func (p panicky) Imports() iter.Seq[plugin.ImportRequest] {
	if p.imports {
		panic("no imports today")
	}
	return func(func(plugin.ImportRequest) bool) {}
}

func (p panicky) Expressions(plugin.Bindings) iter.Seq2[*ir.Node, error] {
	return func(func(*ir.Node, error) bool) {
		panic("no expressions today")
	}
}

type failing struct{}

func (failing) Imports() iter.Seq[plugin.ImportRequest] {
	return func(func(plugin.ImportRequest) bool) {}
}

func (failing) Expressions(plugin.Bindings) iter.Seq2[*ir.Node, error] {
	return func(yield func(*ir.Node, error) bool) {
		yield(nil, errors.New("broken"))
	}
}

func TestFlatErrors(t *testing.T) {
	for _, fc := range []plugin.FlatConfig{panicky{imports: true}, panicky{}, failing{}} {
		res, err := Flat("export default [];\n", &plugin.Descriptor{Name: "bad", Flat: fc})
		assert.ErrorIs(t, err, ErrPlugin)
		assert.Nil(t, res)
	}

	bad := flatPlugin("bad", []plugin.ImportRequest{defaultImport("m", "not valid")})
	_, err := Flat("export default [];\n", bad)
	assert.ErrorIs(t, err, ErrPlugin)

	bad = flatPlugin("bad", nil, "${x}.(")
	_, err = Flat("export default [];\n", bad)
	assert.ErrorIs(t, err, ErrPlugin)

	_, err = Flat("const a = [];\n", astro)
	assert.ErrorIs(t, err, ErrStructure)
	_, err = Flat("export default [\n", astro)
	assert.Error(t, err)
}
