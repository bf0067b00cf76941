package mystem

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/gabmars/russian-tagsets/converters"
	"github.com/gabmars/russian-tagsets/opencorpora"
	"github.com/gabmars/russian-tagsets/tagmap"
)

// Format is the registry name of the Mystem tagset.
const Format = "mystem"

var (
	//go:embed data/grammemes.yaml
	grammemesYAML []byte

	//go:embed data/pos_names.yaml
	posNamesYAML []byte
)

// Converter holds the Mystem tables.
type Converter struct {
	grammemes *tagmap.Table
	posNames  *tagmap.Table
	reverse   *tagmap.Table
}

// New builds the Mystem tables from the embedded data, inverting the
// grammeme table with the given policy.
func New(policy tagmap.Policy) (*Converter, error) {
	grammemes, err := tagmap.Parse(grammemesYAML)
	if err != nil {
		return nil, fmt.Errorf("mystem grammemes: %w", err)
	}

	posNames, err := tagmap.Parse(posNamesYAML)
	if err != nil {
		return nil, fmt.Errorf("mystem part-of-speech names: %w", err)
	}

	return NewFromTables(grammemes, posNames, policy)
}

// NewFromTables builds a Converter from custom tables: grammemes maps Mystem
// tokens to OpenCorpora internal ones, posNames maps long part-of-speech
// names to keys of grammemes.
func NewFromTables(grammemes, posNames *tagmap.Table, policy tagmap.Policy) (*Converter, error) {
	reverse, err := tagmap.Invert(grammemes,
		tagmap.WithPolicy(policy),
		tagmap.WithName(opencorpora.Internal+"->"+Format))
	if err != nil {
		return nil, fmt.Errorf("mystem reverse table: %w", err)
	}

	return &Converter{
		grammemes: grammemes,
		posNames:  posNames,
		reverse:   reverse,
	}, nil
}

var defaultConverter = sync.OnceValue(func() *Converter {
	c, err := New(tagmap.LastWins)
	if err != nil {
		panic(err)
	}

	return c
})

// Default returns a shared Converter built with the LastWins policy.
func Default() *Converter {
	return defaultConverter()
}

// Grammemes returns the Mystem->OpenCorpora grammeme table.
func (c *Converter) Grammemes() *tagmap.Table {
	return c.grammemes
}

// POSNames returns the table of long part-of-speech names to short Mystem tags.
func (c *Converter) POSNames() *tagmap.Table {
	return c.posNames
}

// Reverse returns the OpenCorpora->Mystem table.
func (c *Converter) Reverse() *tagmap.Table {
	return c.reverse
}

// ToOpenCorpora converts a Mystem tag to a comma-separated OpenCorpora
// internal tag. Unknown grammemes are dropped; order and repeats are kept.
func (c *Converter) ToOpenCorpora(tag, _ string) (string, error) {
	tokens := ParseTag(tag).Tokens()

	for i, tok := range tokens {
		if short, ok := c.posNames.Lookup(tok); ok {
			tokens[i] = short
		}
	}

	return strings.Join(c.grammemes.Translate(tokens), tokenSep), nil
}

// FromOpenCorpora converts a comma-separated OpenCorpora internal tag to a
// Mystem grammeme list. Unknown grammemes are dropped.
func (c *Converter) FromOpenCorpora(tag, _ string) (string, error) {
	return strings.Join(c.reverse.Translate(strings.Split(tag, tokenSep)), tokenSep), nil
}

// Register adds the Mystem conversions to r.
func (c *Converter) Register(r *converters.Registry) {
	r.Register(Format, opencorpora.Internal, c.ToOpenCorpora)
	r.Register(opencorpora.Internal, Format, c.FromOpenCorpora)
}

// ToOpenCorpora converts a Mystem tag using the Default converter.
func ToOpenCorpora(tag, word string) (string, error) {
	return Default().ToOpenCorpora(tag, word)
}

// FromOpenCorpora converts an OpenCorpora internal tag using the Default converter.
func FromOpenCorpora(tag, word string) (string, error) {
	return Default().FromOpenCorpora(tag, word)
}
