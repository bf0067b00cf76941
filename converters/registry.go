package converters

import (
	"sort"
	"sync"

	"github.com/gabmars/russian-tagsets/internal/match"
)

// suggestionLimit bounds the number of pairs attached to a NotFoundError.
const suggestionLimit = 3

// Func converts a tag string. The word the tag belongs to may be passed for
// future disambiguation; no current conversion uses it.
type Func func(tag, word string) (string, error)

// Pair identifies a conversion direction.
type Pair struct {
	Source string
	Target string
}

// String returns "source->target".
func (p Pair) String() string {
	return p.Source + "->" + p.Target
}

// Registry holds conversion functions and provides lookup.
type Registry struct {
	mu    sync.RWMutex
	funcs map[Pair]Func
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[Pair]Func),
	}
}

// Register stores fn under (source, target), replacing any previous function.
func (r *Registry) Register(source, target string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.funcs[Pair{Source: source, Target: target}] = fn
}

// Lookup returns the function registered for exactly (source, target).
func (r *Registry) Lookup(source, target string) (Func, error) {
	r.mu.RLock()
	fn, ok := r.funcs[Pair{Source: source, Target: target}]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{
			Pair:        Pair{Source: source, Target: target},
			Suggestions: r.suggest(source, target),
		}
	}

	return fn, nil
}

// Has returns true if a function is registered for (source, target).
func (r *Registry) Has(source, target string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.funcs[Pair{Source: source, Target: target}]

	return ok
}

// Convert looks up the (source, target) function and applies it to tag.
func (r *Registry) Convert(source, target, tag, word string) (string, error) {
	fn, err := r.Lookup(source, target)
	if err != nil {
		return "", err
	}

	return fn(tag, word)
}

// Pairs returns all registered pairs sorted by source, then target.
func (r *Registry) Pairs() []Pair {
	r.mu.RLock()
	pairs := make([]Pair, 0, len(r.funcs))
	for p := range r.funcs {
		pairs = append(pairs, p)
	}
	r.mu.RUnlock()

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Source != pairs[j].Source {
			return pairs[i].Source < pairs[j].Source
		}

		return pairs[i].Target < pairs[j].Target
	})

	return pairs
}

// Formats returns the sorted set of format names used by any registered pair.
func (r *Registry) Formats() []string {
	seen := make(map[string]struct{})

	for _, p := range r.Pairs() {
		seen[p.Source] = struct{}{}
		seen[p.Target] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// suggest ranks registered pairs by how close their names are to the missing one.
func (r *Registry) suggest(source, target string) []Pair {
	pairs := r.Pairs()

	byName := make(map[string]Pair, len(pairs))
	names := make([]string, len(pairs))

	for i, p := range pairs {
		names[i] = p.String()
		byName[names[i]] = p
	}

	var out []Pair
	for _, name := range match.Suggest(Pair{Source: source, Target: target}.String(), names, suggestionLimit) {
		out = append(out, byName[name])
	}

	return out
}
