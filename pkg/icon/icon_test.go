package icon

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_ReturnsRegisteredIcon(t *testing.T) {
	ic, ok := Lookup("users")
	require.True(t, ok)
	assert.Equal(t, "users", ic.Name)
	assert.NotEmpty(t, ic.Glyph)
}

func TestLookup_UnknownName(t *testing.T) {
	_, ok := Lookup("no-such-icon")
	assert.False(t, ok)
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	for _, n := range names {
		ic, ok := Lookup(n)
		require.True(t, ok, n)
		assert.Equal(t, n, ic.Name)
		assert.NotEmpty(t, ic.ASCII, "icon %s needs an ASCII form", n)
	}
}

func TestRender(t *testing.T) {
	ic := Icon{Name: "x", Glyph: "✓", ASCII: "+"}
	assert.Equal(t, "✓", ic.Render(false))
	assert.Equal(t, "+", ic.Render(true))

	glyphOnly := Icon{Glyph: "✓"}
	assert.Equal(t, "✓", glyphOnly.Render(true))

	asciiOnly := Icon{ASCII: "+"}
	assert.Equal(t, "+", asciiOnly.Render(false))
}

func TestIsZero(t *testing.T) {
	assert.True(t, Icon{}.IsZero())
	assert.False(t, None.IsZero())
}
