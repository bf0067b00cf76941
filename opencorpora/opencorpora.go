package opencorpora

import (
	"strings"
	"sync"

	"github.com/gabmars/russian-tagsets/converters"
	"github.com/gabmars/russian-tagsets/tagmap"
)

// Registry names of the tagsets handled by this package.
const (
	Internal = "opencorpora-int"
	External = "opencorpora"
	AOT      = "aot"
)

const tokenSep = ","

// New builds the catalogue from the embedded grammeme table.
func New(policy tagmap.Policy) (*Catalogue, error) {
	return ParseCatalogue(gramTableYAML, policy)
}

var defaultCatalogue = sync.OnceValue(func() *Catalogue {
	c, err := New(tagmap.LastWins)
	if err != nil {
		panic(err)
	}

	return c
})

// Default returns a shared catalogue built from the embedded table.
func Default() *Catalogue {
	return defaultCatalogue()
}

// InternalToExternal converts "NOUN,femn,inan" to "СУЩ,жр,неод".
// Every grammeme must be catalogued. An empty tag converts to "" without error.
func (c *Catalogue) InternalToExternal(tag, _ string) (string, error) {
	return convertStrict(c.toExternal, tag)
}

// ExternalToInternal converts "СУЩ,жр,неод" to "NOUN,femn,inan".
// Every grammeme must be catalogued. An empty tag converts to "" without error.
func (c *Catalogue) ExternalToInternal(tag, _ string) (string, error) {
	return convertStrict(c.toInternal, tag)
}

// ToAOT is not implemented.
func (c *Catalogue) ToAOT(_, _ string) (string, error) {
	return "", converters.NotImplemented(External, AOT)
}

// FromAOT is not implemented.
func (c *Catalogue) FromAOT(_, _ string) (string, error) {
	return "", converters.NotImplemented(AOT, External)
}

// Register adds the OpenCorpora conversions to r.
func (c *Catalogue) Register(r *converters.Registry) {
	r.Register(Internal, External, c.InternalToExternal)
	r.Register(External, Internal, c.ExternalToInternal)
	r.Register(External, AOT, c.ToAOT)
	r.Register(AOT, External, c.FromAOT)
}

// convertStrict translates a comma-separated tag; an empty tag stays empty.
func convertStrict(t *tagmap.Table, tag string) (string, error) {
	if tag == "" {
		return "", nil
	}

	out, err := t.TranslateStrict(strings.Split(tag, tokenSep))
	if err != nil {
		return "", err
	}

	return strings.Join(out, tokenSep), nil
}

// InternalToExternal converts using the Default catalogue.
func InternalToExternal(tag, word string) (string, error) {
	return Default().InternalToExternal(tag, word)
}

// ExternalToInternal converts using the Default catalogue.
func ExternalToInternal(tag, word string) (string, error) {
	return Default().ExternalToInternal(tag, word)
}

// ToAOT is not implemented.
func ToAOT(tag, word string) (string, error) {
	return Default().ToAOT(tag, word)
}

// FromAOT is not implemented.
func FromAOT(tag, word string) (string, error) {
	return Default().FromAOT(tag, word)
}
