package tagmap

import (
	"fmt"
	"strings"

	"github.com/gabmars/russian-tagsets/internal/match"
)

// suggestionLimit bounds the number of close keys attached to an UnknownTokenError.
const suggestionLimit = 3

// Pair is a single key->value entry of a Table.
type Pair struct {
	Key   string
	Value string
}

// Table is an immutable, ordered token mapping.
type Table struct {
	name  string
	pairs []Pair
	index map[string]int
}

// New builds a table from pairs in the given order. Keys must be unique.
func New(name string, pairs []Pair) (*Table, error) {
	t := &Table{
		name:  name,
		pairs: make([]Pair, 0, len(pairs)),
		index: make(map[string]int, len(pairs)),
	}

	for _, p := range pairs {
		if _, exists := t.index[p.Key]; exists {
			return nil, fmt.Errorf("%s: %w %q", name, ErrDuplicateKey, p.Key)
		}

		t.index[p.Key] = len(t.pairs)
		t.pairs = append(t.pairs, p)
	}

	return t, nil
}

// MustNew is like New but panics on error. Intended for static tables.
func MustNew(name string, pairs []Pair) *Table {
	t, err := New(name, pairs)
	if err != nil {
		panic(err)
	}

	return t
}

// Name returns the table name used in error messages.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of pairs.
func (t *Table) Len() int {
	return len(t.pairs)
}

// Lookup returns the value for key.
func (t *Table) Lookup(key string) (string, bool) {
	i, ok := t.index[key]
	if !ok {
		return "", false
	}

	return t.pairs[i].Value, true
}

// Has returns true if key is in the table.
func (t *Table) Has(key string) bool {
	_, ok := t.index[key]
	return ok
}

// Pairs returns a copy of the table pairs in declaration order.
func (t *Table) Pairs() []Pair {
	return append([]Pair(nil), t.pairs...)
}

// Keys returns the keys in declaration order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.pairs))
	for i, p := range t.pairs {
		keys[i] = p.Key
	}

	return keys
}

// Values returns the values in declaration order, repeats included.
func (t *Table) Values() []string {
	values := make([]string, len(t.pairs))
	for i, p := range t.pairs {
		values[i] = p.Value
	}

	return values
}

// Map returns the table as a plain map.
func (t *Table) Map() map[string]string {
	m := make(map[string]string, len(t.pairs))
	for _, p := range t.pairs {
		m[p.Key] = p.Value
	}

	return m
}

// Translate maps each token through the table, dropping tokens the table
// does not know. Order and repeats are preserved.
func (t *Table) Translate(tokens []string) []string {
	out := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		if v, ok := t.Lookup(tok); ok {
			out = append(out, v)
		}
	}

	return out
}

// TranslateStrict maps each token through the table and fails with an
// *UnknownTokenError on the first token it does not know. Surrounding
// whitespace is trimmed from both the input token and the result, so
// " NOUN" is accepted as "NOUN".
func (t *Table) TranslateStrict(tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)

		v, ok := t.Lookup(tok)
		if !ok {
			return nil, &UnknownTokenError{
				Table:       t.name,
				Token:       tok,
				Suggestions: match.Suggest(tok, t.Keys(), suggestionLimit),
			}
		}

		out = append(out, strings.TrimSpace(v))
	}

	return out, nil
}
