package value

import (
	"errors"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/lintcfg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONOrder(t *testing.T) {
	v, err := ParseJSON([]byte(`{"z": 1, "a": [true, null, "x"], "m": {"k": 2.5}, "z": 3}`))
	require.NoError(t, err)
	want := Object{
		{Key: "z", Value: 3.0},
		{Key: "a", Value: []any{true, nil, "x"}},
		{Key: "m", Value: Object{{Key: "k", Value: 2.5}}},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("ParseJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSONErrors(t *testing.T) {
	for _, in := range []string{
		``,
		`{`,
		`{"a": }`,
		`{"a": 1} x`,
		`{a: 1}`,
		`[1, 2,]`,
	} {
		_, err := ParseJSON([]byte(in))
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, token.ErrSyntax), in)
		var se *token.SyntaxError
		assert.True(t, errors.As(err, &se), in)
	}
}

func TestEncodeJSON(t *testing.T) {
	v := Object{
		{Key: "plugins", Value: []any{"security"}},
		{Key: "extends", Value: []any{}},
		{Key: "n", Value: 1e6},
		{Key: "o", Value: Object{}},
		{Key: "s", Value: "<&>\n"},
	}
	assert.Equal(t, `{
  "plugins": [
    "security"
  ],
  "extends": [],
  "n": 1000000,
  "o": {},
  "s": "<&>\n"
}`, EncodeJSON(v, "  "))
	assert.Equal(t, `{"plugins":["security"],"extends":[],"n":1000000,"o":{},"s":"<&>\n"}`, EncodeJSON(v, ""))
}

func TestJSONRoundTrip(t *testing.T) {
	in := `{"extends":["eslint:recommended"],"rules":{"quotes":["error","double"],"max-len":[1,{"code":120}]}}`
	v, err := ParseJSON([]byte(in))
	require.NoError(t, err)
	out := EncodeJSON(v, "  ")
	assert.True(t, jsonpatch.Equal([]byte(in), []byte(out)))
}

func TestFromYAML(t *testing.T) {
	v, err := FromYAML([]byte(`
extends:
  - eslint:recommended
rules:
  semi: [2, always]
  eqeqeq: warn
env:
  node: true
`))
	require.NoError(t, err)
	want := Object{
		{Key: "extends", Value: []any{"eslint:recommended"}},
		{Key: "rules", Value: Object{
			{Key: "semi", Value: []any{2.0, "always"}},
			{Key: "eqeqeq", Value: "warn"},
		}},
		{Key: "env", Value: Object{{Key: "node", Value: true}}},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("FromYAML mismatch (-want +got):\n%s", diff)
	}

	v, err = FromYAML(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = FromYAML([]byte("a: [1, 2\nb: c"))
	assert.True(t, errors.Is(err, ErrYAML))
}

func TestFromTreeTimestamp(t *testing.T) {
	n, err := ParseTree([]byte("day: 2001-12-14\nat: 2001-12-14t21:59:43.10-05:00\n"))
	require.NoError(t, err)
	v, err := FromTree(n)
	require.NoError(t, err)
	want := Object{
		{Key: "day", Value: "2001-12-14"},
		{Key: "at", Value: "2001-12-14t21:59:43.10-05:00"},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("FromTree mismatch (-want +got):\n%s", diff)
	}
}

func TestEqualAndSet(t *testing.T) {
	a := Object{{Key: "a", Value: 1.0}, {Key: "b", Value: []any{"x"}}}
	b := Object{{Key: "b", Value: []any{"x"}}, {Key: "a", Value: 1.0}}
	assert.True(t, Equal(a, b))
	c := Clone(a).(Object)
	c.Set("a", 2.0)
	assert.False(t, Equal(a, c))
	assert.Equal(t, []string{"a", "b"}, c.Keys())

	ss, ok := Strings("x")
	assert.True(t, ok)
	assert.Equal(t, []string{"x"}, ss)
	_, ok = Strings([]any{"x", 1.0})
	assert.False(t, ok)
}
