package mystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tag := ParseTag("S,муж,од=(вин|род)")

	require.Len(t, tag.Clauses, 2)

	head := tag.Clauses[0]
	assert.False(t, head.Grouped())
	assert.Equal(t, []string{"S", "муж", "од"}, head.Tokens)
	assert.Equal(t, "S,муж,од", head.Raw)

	tail := tag.Clauses[1]
	require.True(t, tail.Grouped())
	assert.Equal(t, [][]string{{"вин"}, {"род"}}, tail.Alternatives)
	assert.Equal(t, []string{"вин"}, tail.Live())

	assert.Equal(t, []string{"S", "муж", "од", "вин"}, tag.Tokens())
}

func TestParseTagEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		clauses  int
		expected []string
	}{
		{name: "empty", input: "", clauses: 1, expected: []string{""}},
		{name: "only separator", input: "=", clauses: 2, expected: []string{"", ""}},
		{name: "empty token", input: "S,,жен", clauses: 1, expected: []string{"S", "", "жен"}},
		{name: "plain clauses", input: "V,несов,пе=непрош,ед,изъяв,3-л", clauses: 2,
			expected: []string{"V", "несов", "пе", "непрош", "ед", "изъяв", "3-л"}},
		{name: "multi-token alternative", input: "S,жен,неод=(вин,мн|род,мн)", clauses: 2,
			expected: []string{"S", "жен", "неод", "вин", "мн"}},
		{name: "text outside group is discarded", input: "пр=ед(вин|род)мн", clauses: 2,
			expected: []string{"пр", "вин"}},
		{name: "nested group keeps outer span", input: "(вин(x)|род)", clauses: 1,
			expected: []string{"вин(x)"}},
		{name: "unbalanced open", input: "(вин,мн", clauses: 1, expected: []string{"(вин", "мн"}},
		{name: "close before open", input: "x)(y", clauses: 1, expected: []string{"x)(y"}},
		{name: "empty group", input: "S=()", clauses: 2, expected: []string{"S", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := ParseTag(tt.input)
			assert.Len(t, tag.Clauses, tt.clauses)
			assert.Equal(t, tt.expected, tag.Tokens())
		})
	}
}

func TestParseTagKeepsAllAlternatives(t *testing.T) {
	tag := ParseTag("A=(вин,ед,полн,муж,неод|им,ед,полн,муж|им,ед,полн,сред)")

	require.Len(t, tag.Clauses, 2)
	assert.Len(t, tag.Clauses[1].Alternatives, 3)
	assert.Equal(t, []string{"им", "ед", "полн", "сред"}, tag.Clauses[1].Alternatives[2])
}
