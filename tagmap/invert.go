package tagmap

//go:generate go tool stringer -type=Policy -output=policy_string.go

// Policy selects how Invert resolves values shared by several keys.
type Policy int

const (
	// LastWins keeps the key declared last for a repeated value.
	LastWins Policy = iota
	// Strict fails on the first repeated value.
	Strict
)

// InvertOption configures Invert.
type InvertOption func(*invertConfig)

type invertConfig struct {
	policy Policy
	name   string
}

// WithPolicy sets the collision policy.
func WithPolicy(p Policy) InvertOption {
	return func(c *invertConfig) {
		c.policy = p
	}
}

// WithName sets the name of the inverted table. Defaults to "<name>^-1".
func WithName(name string) InvertOption {
	return func(c *invertConfig) {
		c.name = name
	}
}

// Collision describes one value shared by several keys, keys in declaration order.
type Collision struct {
	Value string
	Keys  []string
}

// Invert returns a value->key table such that inv[t[k]] == k for every key k
// whose value is unique. Order of the inverted table follows the first
// occurrence of each value.
func Invert(t *Table, opts ...InvertOption) (*Table, error) {
	cfg := invertConfig{policy: LastWins, name: t.name + "^-1"}
	for _, opt := range opts {
		opt(&cfg)
	}

	inv := &Table{
		name:  cfg.name,
		pairs: make([]Pair, 0, len(t.pairs)),
		index: make(map[string]int, len(t.pairs)),
	}

	for _, p := range t.pairs {
		if i, seen := inv.index[p.Value]; seen {
			if cfg.policy == Strict {
				return nil, &CollisionError{
					Table: t.name,
					Value: p.Value,
					Keys:  []string{inv.pairs[i].Value, p.Key},
				}
			}

			inv.pairs[i].Value = p.Key

			continue
		}

		inv.index[p.Value] = len(inv.pairs)
		inv.pairs = append(inv.pairs, Pair{Key: p.Value, Value: p.Key})
	}

	return inv, nil
}

// MustInvert is like Invert but panics on error.
func MustInvert(t *Table, opts ...InvertOption) *Table {
	inv, err := Invert(t, opts...)
	if err != nil {
		panic(err)
	}

	return inv
}

// Collisions returns every value that more than one key maps to, in order
// of first occurrence. An injective table has no collisions.
func Collisions(t *Table) []Collision {
	byValue := make(map[string]int)

	var result []Collision

	for _, p := range t.pairs {
		i, seen := byValue[p.Value]
		if !seen {
			byValue[p.Value] = len(result)
			result = append(result, Collision{Value: p.Value, Keys: []string{p.Key}})

			continue
		}

		result[i].Keys = append(result[i].Keys, p.Key)
	}

	collisions := result[:0]
	for _, c := range result {
		if len(c.Keys) > 1 {
			collisions = append(collisions, c)
		}
	}

	if len(collisions) == 0 {
		return nil
	}

	return collisions
}
