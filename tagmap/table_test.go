package tagmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caseTable(t *testing.T) *Table {
	t.Helper()

	tbl, err := New("cases", []Pair{
		{Key: "им", Value: "nomn"},
		{Key: "род", Value: "gent"},
		{Key: "вин", Value: "accs"},
	})
	require.NoError(t, err)

	return tbl
}

func TestNew(t *testing.T) {
	tbl := caseTable(t)

	assert.Equal(t, "cases", tbl.Name())
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"им", "род", "вин"}, tbl.Keys())
	assert.Equal(t, []string{"nomn", "gent", "accs"}, tbl.Values())
	assert.Equal(t, map[string]string{"им": "nomn", "род": "gent", "вин": "accs"}, tbl.Map())

	v, ok := tbl.Lookup("род")
	assert.True(t, ok)
	assert.Equal(t, "gent", v)

	_, ok = tbl.Lookup("Род")
	assert.False(t, ok, "lookups are exact")
	assert.False(t, tbl.Has("дат"))
}

func TestNewDuplicateKey(t *testing.T) {
	_, err := New("dup", []Pair{{Key: "a", Value: "1"}, {Key: "a", Value: "2"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	assert.Panics(t, func() {
		MustNew("dup", []Pair{{Key: "a", Value: "1"}, {Key: "a", Value: "2"}})
	})
}

func TestPairsIsCopy(t *testing.T) {
	tbl := caseTable(t)

	pairs := tbl.Pairs()
	pairs[0].Value = "changed"

	v, _ := tbl.Lookup("им")
	assert.Equal(t, "nomn", v)
}

func TestTranslate(t *testing.T) {
	tbl := caseTable(t)

	assert.Equal(t, []string{"accs", "gent", "accs"},
		tbl.Translate([]string{"вин", "чушь", "род", "вин"}), "unknown tokens are dropped, repeats kept")
	assert.Empty(t, tbl.Translate(nil))
}

func TestTranslateStrict(t *testing.T) {
	tbl := caseTable(t)

	got, err := tbl.TranslateStrict([]string{" вин", "им "})
	require.NoError(t, err)
	assert.Equal(t, []string{"accs", "nomn"}, got)

	_, err = tbl.TranslateStrict([]string{"им", "ви"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownToken)

	var unk *UnknownTokenError
	require.True(t, errors.As(err, &unk))
	assert.Equal(t, "cases", unk.Table)
	assert.Equal(t, "ви", unk.Token)
	assert.Contains(t, unk.Suggestions, "вин")
	assert.Contains(t, err.Error(), "did you mean")
}
