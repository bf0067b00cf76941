package opencorpora

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gabmars/russian-tagsets/tagmap"
)

//go:embed data/gram_table.yaml
var gramTableYAML []byte

// Grammeme is one row of the OpenCorpora grammeme table.
type Grammeme struct {
	Num         int    `yaml:"num"`
	Internal    string `yaml:"internal"`
	External    string `yaml:"external"`
	Description string `yaml:"description"`
	// Parent is the internal name of the enclosing category, empty for roots.
	Parent string `yaml:"parent,omitempty"`
}

type gramTable struct {
	Grammemes []Grammeme `yaml:"grammemes"`
}

// Catalogue indexes the grammeme table.
type Catalogue struct {
	rows       []Grammeme
	byInternal map[string]int
	children   map[string][]int

	toExternal *tagmap.Table
	toInternal *tagmap.Table
}

// ParseCatalogue parses a grammeme table and builds the internal<->external
// tables, inverting with the given policy.
func ParseCatalogue(data []byte, policy tagmap.Policy) (*Catalogue, error) {
	var gt gramTable
	if err := yaml.Unmarshal(data, &gt); err != nil {
		return nil, fmt.Errorf("failed to parse grammeme table: %w", err)
	}

	c := &Catalogue{
		rows:       gt.Grammemes,
		byInternal: make(map[string]int, len(gt.Grammemes)),
		children:   make(map[string][]int),
	}

	pairs := make([]tagmap.Pair, 0, len(c.rows))

	for i, g := range c.rows {
		c.byInternal[g.Internal] = i
		if g.Parent != "" {
			c.children[g.Parent] = append(c.children[g.Parent], i)
		}

		pairs = append(pairs, tagmap.Pair{Key: g.Internal, Value: g.External})
	}

	toExternal, err := tagmap.New(Internal+"->"+External, pairs)
	if err != nil {
		return nil, err
	}

	toInternal, err := tagmap.Invert(toExternal,
		tagmap.WithPolicy(policy),
		tagmap.WithName(External+"->"+Internal))
	if err != nil {
		return nil, err
	}

	c.toExternal = toExternal
	c.toInternal = toInternal

	return c, nil
}

// Grammemes returns a copy of all rows in table order.
func (c *Catalogue) Grammemes() []Grammeme {
	return append([]Grammeme(nil), c.rows...)
}

// Grammeme returns the row for an internal grammeme name.
func (c *Catalogue) Grammeme(internal string) (Grammeme, bool) {
	i, ok := c.byInternal[internal]
	if !ok {
		return Grammeme{}, false
	}

	return c.rows[i], true
}

// ByExternal returns the row for an external grammeme name.
func (c *Catalogue) ByExternal(external string) (Grammeme, bool) {
	internal, ok := c.toInternal.Lookup(external)
	if !ok {
		return Grammeme{}, false
	}

	return c.Grammeme(internal)
}

// Parent returns the enclosing category of an internal grammeme.
func (c *Catalogue) Parent(internal string) (Grammeme, bool) {
	g, ok := c.Grammeme(internal)
	if !ok || g.Parent == "" {
		return Grammeme{}, false
	}

	return c.Grammeme(g.Parent)
}

// Children returns the grammemes whose parent is internal, in table order.
func (c *Catalogue) Children(internal string) []Grammeme {
	idx := c.children[internal]

	out := make([]Grammeme, len(idx))
	for i, j := range idx {
		out[i] = c.rows[j]
	}

	return out
}

// IsCategory returns true if any grammeme names internal as its parent.
func (c *Catalogue) IsCategory(internal string) bool {
	return len(c.children[internal]) > 0
}

// Has returns true if internal is a catalogued grammeme.
func (c *Catalogue) Has(internal string) bool {
	_, ok := c.byInternal[internal]
	return ok
}

// ToExternal returns the internal->external table.
func (c *Catalogue) ToExternal() *tagmap.Table {
	return c.toExternal
}

// ToInternal returns the external->internal table.
func (c *Catalogue) ToInternal() *tagmap.Table {
	return c.toInternal
}
