package ir

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualIgnoresComments(t *testing.T) {
	a := FromProps(Prop("extends", FromSlice(FromString("eslint:recommended"))))
	b := a.Clone()
	b.Values[0].Leading = []Comment{{Text: "base"}}
	assert.True(t, Equal(a, b))
	b.Values[0].Value.Values[0].String = "other"
	assert.False(t, Equal(a, b))
}

func TestPropKeys(t *testing.T) {
	p := Prop("no-console", Null())
	assert.Equal(t, StringType, p.Key.Type)
	p = Prop("rules", Null())
	assert.Equal(t, IdentType, p.Key.Type)
	p = Prop("default", Null())
	assert.Equal(t, IdentType, p.Key.Type)
	name, ok := p.KeyName()
	assert.True(t, ok)
	assert.Equal(t, "default", name)
}

func TestMutationMarksAncestors(t *testing.T) {
	arr := FromSlice(FromString("a"))
	obj := FromProps(Prop("plugins", arr))
	prog := Program(ModuleExports(obj))
	require.False(t, prog.Dirty())

	require.NoError(t, arr.Append(FromString("b")))
	assert.True(t, arr.Dirty())
	assert.True(t, obj.Dirty())
	assert.True(t, prog.Dirty())
	assert.Equal(t, "$.Values[0].X.Y.Values[0].Value", arr.Path())
	assert.Same(t, prog, arr.Root())
}

func TestSetPropAndReplace(t *testing.T) {
	obj := FromProps(Prop("plugins", FromString("a")))
	old := obj.Values[0].Value
	old.Range = &Range{Start: 3, End: 6}

	require.NoError(t, obj.SetProp("plugins", FromSlice(FromString("a"), FromString("b"))))
	require.Len(t, obj.Values, 1)
	repl := obj.Values[0].Value
	assert.Equal(t, ArrayType, repl.Type)
	assert.Same(t, obj.Values[0], repl.Parent)
	assert.Nil(t, old.Parent)
	assert.Same(t, old.Range, repl.Span())

	require.NoError(t, obj.SetProp("extends", FromSlice()))
	assert.Len(t, obj.Values, 2)

	err := Replace(obj, Null())
	assert.True(t, errors.Is(err, ErrNoParent))
	err = FromString("x").Append(Null())
	assert.True(t, errors.Is(err, ErrNotList))
}

func TestAllSourceOrder(t *testing.T) {
	call := Call(Member(Ident("js"), "flat"), FromNumber(1))
	var types []Type
	for n := range call.All() {
		types = append(types, n.Type)
	}
	assert.Equal(t, []Type{CallType, MemberType, IdentType, IdentType, NumberType}, types)
}

func TestTypeText(t *testing.T) {
	for _, ty := range Types() {
		d, err := ty.MarshalText()
		require.NoError(t, err)
		var back Type
		require.NoError(t, back.UnmarshalText(d))
		assert.Equal(t, ty, back)
	}
}
