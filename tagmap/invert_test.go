package tagmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvertInjective(t *testing.T) {
	tbl := caseTable(t)

	inv, err := Invert(tbl)
	require.NoError(t, err)
	assert.Equal(t, "cases^-1", inv.Name())

	for _, p := range tbl.Pairs() {
		k, ok := inv.Lookup(p.Value)
		require.True(t, ok)
		assert.Equal(t, p.Key, k)
	}

	back, err := Invert(inv, WithPolicy(Strict))
	require.NoError(t, err)
	assert.Equal(t, tbl.Pairs(), back.Pairs(), "double inversion of an injective table is the identity")
}

func TestInvertCollisions(t *testing.T) {
	tbl := MustNew("pos", []Pair{
		{Key: "A", Value: "ADJF"},
		{Key: "S", Value: "NOUN"},
		{Key: "APRO", Value: "ADJF"},
	})

	t.Run("last wins", func(t *testing.T) {
		inv, err := Invert(tbl, WithName("pos-reverse"))
		require.NoError(t, err)
		assert.Equal(t, "pos-reverse", inv.Name())
		assert.Equal(t, 2, inv.Len())

		k, _ := inv.Lookup("ADJF")
		assert.Equal(t, "APRO", k)
		assert.Equal(t, []string{"ADJF", "NOUN"}, inv.Keys(), "order follows first occurrence")
	})

	t.Run("strict", func(t *testing.T) {
		_, err := Invert(tbl, WithPolicy(Strict))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCollision)

		var ce *CollisionError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "ADJF", ce.Value)
		assert.Equal(t, []string{"A", "APRO"}, ce.Keys)

		assert.Panics(t, func() { MustInvert(tbl, WithPolicy(Strict)) })
	})

	t.Run("report", func(t *testing.T) {
		assert.Equal(t, []Collision{{Value: "ADJF", Keys: []string{"A", "APRO"}}}, Collisions(tbl))
		assert.Nil(t, Collisions(caseTable(t)))
	})
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "LastWins", LastWins.String())
	assert.Equal(t, "Strict", Strict.String())
	assert.Equal(t, "Policy(7)", Policy(7).String())
}
