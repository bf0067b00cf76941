package opencorpora

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabmars/russian-tagsets/tagmap"
)

func TestCatalogue(t *testing.T) {
	c := Default()

	rows := c.Grammemes()
	require.Len(t, rows, 108)
	assert.Equal(t, Grammeme{Num: 1, Internal: "POST", External: "ЧР", Description: "часть речи"}, rows[0])

	g, ok := c.Grammeme("femn")
	require.True(t, ok)
	assert.Equal(t, "жр", g.External)
	assert.Equal(t, "женский род", g.Description)
	assert.Equal(t, "GNdr", g.Parent)

	g, ok = c.ByExternal("рд2")
	require.True(t, ok)
	assert.Equal(t, "gen2", g.Internal)

	_, ok = c.Grammeme("femm")
	assert.False(t, ok)
	_, ok = c.ByExternal("zz")
	assert.False(t, ok)
}

func TestCatalogueHierarchy(t *testing.T) {
	c := Default()

	parent, ok := c.Parent("gen2")
	require.True(t, ok)
	assert.Equal(t, "gent", parent.Internal)

	grand, ok := c.Parent(parent.Internal)
	require.True(t, ok)
	assert.Equal(t, "CAse", grand.Internal)

	_, ok = c.Parent("CAse")
	assert.False(t, ok, "roots have no parent")

	names := func(gs []Grammeme) []string {
		out := make([]string, len(gs))
		for i, g := range gs {
			out[i] = g.Internal
		}

		return out
	}
	assert.Equal(t, []string{"masc", "femn", "neut"}, names(c.Children("GNdr")))
	assert.Equal(t, []string{"gen1", "gen2"}, names(c.Children("gent")))
	assert.Empty(t, c.Children("femn"))

	assert.True(t, c.IsCategory("POST"))
	assert.True(t, c.IsCategory("nomn"), "the vocative hangs off the nominative")
	assert.False(t, c.IsCategory("Ms-f"))
}

func TestParseCatalogue(t *testing.T) {
	data := `
grammemes:
  - {num: 1, internal: "NMbr", external: "Число", description: "число"}
  - {num: 2, internal: "sing", external: "ед", description: "единственное число", parent: "NMbr"}
`

	c, err := ParseCatalogue([]byte(data), tagmap.Strict)
	require.NoError(t, err)
	assert.Len(t, c.Grammemes(), 2)
	assert.Equal(t, 2, c.ToInternal().Len())

	_, err = ParseCatalogue([]byte("grammemes: {"), tagmap.LastWins)
	assert.Error(t, err)

	dup := `
grammemes:
  - {num: 1, internal: "sing", external: "ед"}
  - {num: 2, internal: "sing", external: "мн"}
`
	_, err = ParseCatalogue([]byte(dup), tagmap.LastWins)
	assert.ErrorIs(t, err, tagmap.ErrDuplicateKey)

	shared := `
grammemes:
  - {num: 1, internal: "sing", external: "ед"}
  - {num: 2, internal: "Sgtm", external: "ед"}
`
	_, err = ParseCatalogue([]byte(shared), tagmap.Strict)
	assert.ErrorIs(t, err, tagmap.ErrCollision)
}
