package parse

import (
	"errors"
	"testing"

	"github.com/signadot/lintcfg/ir"
	"github.com/signadot/lintcfg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlatConfig(t *testing.T) {
	src := `import js from "@eslint/js";
import * as tseslint from "typescript-eslint";
import { a, b as c } from "x";

export default [js.configs.recommended, ...tseslint.configs.recommended];
`
	prog, err := ParseProgram([]byte(src))
	require.NoError(t, err)
	require.Len(t, prog.Values, 4)

	imp := prog.Values[0]
	assert.Equal(t, ir.ImportType, imp.Type)
	assert.Equal(t, "@eslint/js", imp.String)
	require.Len(t, imp.Values, 1)
	assert.Equal(t, ir.DefaultSpec, imp.Values[0].Spec)
	assert.Equal(t, "js", imp.Values[0].Name)

	ns := prog.Values[1].Values[0]
	assert.Equal(t, ir.NamespaceSpec, ns.Spec)
	assert.Equal(t, "tseslint", ns.Name)

	named := prog.Values[2].Values
	require.Len(t, named, 2)
	assert.Equal(t, ir.NamedSpec, named[1].Spec)
	assert.Equal(t, "b", named[1].String)
	assert.Equal(t, "c", named[1].Name)

	exp := prog.Values[3]
	assert.Equal(t, ir.ExportType, exp.Type)
	assert.Equal(t, "default", exp.Name)
	arr := exp.X
	require.Equal(t, ir.ArrayType, arr.Type)
	require.Len(t, arr.Values, 2)
	assert.Equal(t, ir.MemberType, arr.Values[0].Type)
	assert.Equal(t, ir.SpreadType, arr.Values[1].Type)
	assert.Equal(t, "js.configs.recommended", arr.Values[0].Range.Text())
}

func TestParseRequire(t *testing.T) {
	src := "const { configs, rules: r, ...rest } = require('eslint-plugin-x');\nconst y = require(\"y\");\n"
	prog, err := ParseProgram([]byte(src))
	require.NoError(t, err)
	require.Len(t, prog.Values, 2)
	v := prog.Values[0]
	assert.Equal(t, ir.VarType, v.Type)
	assert.Equal(t, "const", v.Name)
	d := v.Values[0]
	require.Equal(t, ir.PatternType, d.Key.Type)
	require.Len(t, d.Key.Values, 3)
	assert.True(t, d.Key.Values[0].Shorthand)
	assert.Equal(t, "r", d.Key.Values[1].Value.Name)
	assert.Equal(t, ir.SpreadType, d.Key.Values[2].Type)
	assert.True(t, d.Value.IsCall("require"))
	assert.Equal(t, "eslint-plugin-x", d.Value.Values[0].String)
	assert.Equal(t, "y", prog.Values[1].Values[0].Key.Name)
}

func TestParseLiterals(t *testing.T) {
	for in, want := range map[string]*ir.Node{
		`0x10`:        ir.FromNumber(16),
		`1_000`:       ir.FromNumber(1000),
		`0b101`:       ir.FromNumber(5),
		`1e3`:         ir.FromNumber(1000),
		`'it\'s'`:     ir.FromString("it's"),
		"`tmpl`":      ir.FromString("tmpl"),
		`null`:        ir.Null(),
		`true`:        ir.FromBool(true),
		`undefined`:   ir.Ident("undefined"),
		`-1`:          {Type: ir.UnaryType, Name: "-", X: ir.FromNumber(1)},
		`("a")`:       ir.FromString("a"),
		`{ "a-b": 1 }`: ir.FromProps(ir.Prop("a-b", ir.FromNumber(1))),
	} {
		got, err := ParseExpression([]byte(in))
		require.NoError(t, err, in)
		assert.True(t, ir.Equal(want, got), "%s parsed as %s", in, got.Type)
	}
}

func TestParseRawKeepsNames(t *testing.T) {
	prog, err := ParseProgram([]byte("function jsdoc() { return other; }\nexport default [];\n"))
	require.NoError(t, err)
	fn := prog.Values[0]
	assert.Equal(t, ir.RawType, fn.Type)
	assert.Equal(t, "jsdoc", fn.Name)
	assert.Contains(t, fn.Refs, "other")
}

func TestComments(t *testing.T) {
	src := `// head
module.exports = {
  // before rules
  rules: {}, // after rules
  env: { node: true },
  // dangling
};
`
	prog, err := ParseProgram([]byte(src))
	require.NoError(t, err)
	stmt := prog.Values[0]
	require.Len(t, stmt.Leading, 1)
	assert.Equal(t, "head", stmt.Leading[0].Text)

	obj := stmt.X.Y
	require.Equal(t, ir.ObjectType, obj.Type)
	rules, env := obj.Values[0], obj.Values[1]
	require.Len(t, rules.Leading, 1)
	assert.Equal(t, "before rules", rules.Leading[0].Text)
	require.Len(t, rules.Trailing, 1)
	assert.Equal(t, "after rules", rules.Trailing[0].Text)
	require.Len(t, env.Trailing, 1)
	assert.Equal(t, "dangling", env.Trailing[0].Text)
}

func TestBlockComment(t *testing.T) {
	x, err := ParseExpression([]byte("[1 /* one */, 2]"))
	require.NoError(t, err)
	require.Len(t, x.Values[0].Trailing, 1)
	assert.True(t, x.Values[0].Trailing[0].Block)
	assert.Equal(t, "one", x.Values[0].Trailing[0].Text)
}

func TestSyntaxError(t *testing.T) {
	for _, in := range []string{
		"module.exports = {",
		"module.exports = { a: };",
		"export default [,,;",
	} {
		_, err := ParseProgram([]byte(in))
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, token.ErrSyntax), in)
		var se *token.SyntaxError
		require.True(t, errors.As(err, &se), in)
		assert.NotNil(t, se.Pos)
	}
	_, err := ParseExpression([]byte("a) + (b"))
	assert.True(t, errors.Is(err, token.ErrSyntax))
}
