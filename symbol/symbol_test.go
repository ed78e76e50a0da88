package symbol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassification(t *testing.T) {
	testCases := []struct {
		input        string
		isSymbol     bool
		isName       bool
		isContext    bool
		isRelContext bool
	}{
		// Symbol-like
		{"foo`bar", true, false, false, false},
		{"foo`bar`baz", true, false, false, false},
		{"foo`bar5", true, false, false, false},
		{"foo`5bar", false, false, false, false},
		{"5foo`bar", false, false, false, false},
		{"foo``bar", false, false, false, false},
		{"foo`$bar", true, false, false, false},
		{"$foo`$bar", true, false, false, false},
		{"$foo`$$$", true, false, false, false},
		{"$$$`$$$", true, false, false, false},

		// SymbolName-like
		{"foo", false, true, false, false},
		{"foo5", false, true, false, false},
		{"foo5bar", false, true, false, false},
		{"$foo", false, true, false, false},
		{"5foo", false, false, false, false},
		{"foo_bar", false, false, false, false},
		{"foo-bar", false, false, false, false},
		{"_foo", false, false, false, false},

		// Relative symbols parse as neither of the four value types.
		{"`foo", false, false, false, false},
		{"`foo`bar", false, false, false, false},

		// Context-like
		{"foo`", false, false, true, false},
		{"foo`bar`", false, false, true, false},

		// RelativeContext-like
		{"`foo`", false, false, false, true},
		{"`foo`bar`", false, false, false, true},

		// Degenerate inputs
		{"", false, false, false, false},
		{"`", false, false, false, false},
		{"``", false, false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := NewSymbol(tc.input)
			require.Equal(t, tc.isSymbol, err == nil, "NewSymbol(%q)", tc.input)

			_, err = NewName(tc.input)
			require.Equal(t, tc.isName, err == nil, "NewName(%q)", tc.input)

			_, err = NewContext(tc.input)
			require.Equal(t, tc.isContext, err == nil, "NewContext(%q)", tc.input)

			_, err = NewRelativeContext(tc.input)
			require.Equal(t, tc.isRelContext, err == nil, "NewRelativeContext(%q)", tc.input)
		})
	}
}

func TestNewSymbol_ErrorValue(t *testing.T) {
	_, err := NewSymbol("foo_bar")
	require.ErrorIs(t, err, ErrNotASymbol)
	require.Contains(t, err.Error(), `"foo_bar"`)

	_, err = NewName("foo`bar")
	require.ErrorIs(t, err, ErrNotAName)

	_, err = NewContext("foo")
	require.ErrorIs(t, err, ErrNotAContext)

	_, err = NewRelativeContext("foo`")
	require.ErrorIs(t, err, ErrNotARelativeContext)
}

func TestSymbol_Decomposition(t *testing.T) {
	sym := MustSymbol("MyPackage`Sub`name")

	require.Equal(t, "MyPackage`Sub`", sym.Context().String())
	require.Equal(t, "name", sym.Name().String())

	// Single-context symbol
	sym = MustSymbol("Global`x")
	require.Equal(t, "Global`", sym.Context().String())
	require.Equal(t, "x", sym.Name().String())
}

func TestSymbol_Equality(t *testing.T) {
	a := MustSymbol("System`Plus")
	b := MustSymbol("System`Plus")
	c := MustSymbol("System`Times")

	require.True(t, a == b)
	require.False(t, a == c)
}

func TestMustConstructors_Panic(t *testing.T) {
	require.Panics(t, func() { MustSymbol("not a symbol") })
	require.Panics(t, func() { MustName("a`b") })
	require.Panics(t, func() { MustContext("a`b") })
	require.Panics(t, func() { MustRelativeContext("a`b`") })

	require.NotPanics(t, func() { MustSymbol("A`b") })
	require.NotPanics(t, func() { MustName("b") })
	require.NotPanics(t, func() { MustContext("A`") })
	require.NotPanics(t, func() { MustRelativeContext("`A`") })
}

func TestUncheckedSymbol(t *testing.T) {
	// The trusted-literal path performs no validation.
	sym := UncheckedSymbol("System`Sin")
	require.Equal(t, "System`Sin", sym.String())
	require.Equal(t, MustSymbol("System`Sin"), sym)
}

func TestWellKnownContexts(t *testing.T) {
	require.Equal(t, "Global`", Global().String())
	require.Equal(t, "System`", System().String())

	expected, err := NewContext("System`")
	require.NoError(t, err)
	require.Equal(t, expected, System())
}

func TestContext_Join(t *testing.T) {
	ctx := ContextFromName(MustName("MyContext"))
	require.Equal(t, "MyContext`", ctx.String())

	private := ctx.Join(MustName("Private"))
	require.Equal(t, "MyContext`Private`", private.String())

	// The joined context is itself valid.
	_, err := NewContext(private.String())
	require.NoError(t, err)
}

func TestContext_Qualify(t *testing.T) {
	sym := System().Qualify(MustName("Plus"))
	require.Equal(t, "System`Plus", sym.String())
	require.Equal(t, MustSymbol("System`Plus"), sym)

	nested := MustContext("A`B`").Qualify(MustName("c"))
	require.Equal(t, "A`B`c", nested.String())

	// The qualified symbol is valid by construction.
	_, err := NewSymbol(nested.String())
	require.NoError(t, err)
}

func TestContext_Components(t *testing.T) {
	ctx := MustContext("MyPackage`Sub`Module`")
	components := ctx.Components()

	require.Len(t, components, 3)
	require.Equal(t, "MyPackage", components[0].String())
	require.Equal(t, "Sub", components[1].String())
	require.Equal(t, "Module", components[2].String())
}

func TestRelativeContext_Components(t *testing.T) {
	rel := MustRelativeContext("`Sub`Module`")
	components := rel.Components()

	require.Len(t, components, 2)
	require.Equal(t, "Sub", components[0].String())
	require.Equal(t, "Module", components[1].String())
}

func TestNameSegment_UnicodeLetters(t *testing.T) {
	// Letter characters beyond ASCII are valid identifier characters,
	// digits are ASCII-only.
	_, err := NewName("função")
	require.NoError(t, err)

	_, err = NewSymbol("Gréco`π")
	require.NoError(t, err)
}
