// Package tagsets converts Russian morphological tags between the Mystem,
// OpenCorpora internal and OpenCorpora external tagsets.
//
// New builds every table and registers every conversion into one registry:
//
//	set, err := tagsets.New()
//	if err != nil {
//		return err
//	}
//	oc, err := set.Convert(tagsets.Mystem, tagsets.OpenCorporaInternal, "S,жен,неод=(вин,мн|род,мн)")
//	// oc == "NOUN,femn,inan,accs,plur"
//
// The registry does not chain conversions; Mystem to external OpenCorpora
// goes through the internal tagset in two calls (see Chain).
package tagsets

import (
	"fmt"

	"github.com/gabmars/russian-tagsets/converters"
	"github.com/gabmars/russian-tagsets/mystem"
	"github.com/gabmars/russian-tagsets/opencorpora"
	"github.com/gabmars/russian-tagsets/tagmap"
)

// Registry names of the supported tagsets.
const (
	Mystem              = mystem.Format
	OpenCorporaInternal = opencorpora.Internal
	OpenCorpora         = opencorpora.External
	AOT                 = opencorpora.AOT
)

// Set is a fully initialized collection of tagset tables and conversions.
type Set struct {
	Registry    *converters.Registry
	Mystem      *mystem.Converter
	OpenCorpora *opencorpora.Catalogue
}

// Option configures New.
type Option func(*options)

type options struct {
	policy tagmap.Policy
}

// WithInversionPolicy selects how reverse tables resolve shared values.
// With tagmap.Strict, New fails because several Mystem parts of speech share
// an OpenCorpora tag.
func WithInversionPolicy(p tagmap.Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// New builds the OpenCorpora catalogue and the Mystem tables, then registers
// their conversions, in that order.
func New(opts ...Option) (*Set, error) {
	o := options{policy: tagmap.LastWins}
	for _, opt := range opts {
		opt(&o)
	}

	catalogue, err := opencorpora.New(o.policy)
	if err != nil {
		return nil, fmt.Errorf("build opencorpora tables: %w", err)
	}

	ms, err := mystem.New(o.policy)
	if err != nil {
		return nil, fmt.Errorf("build mystem tables: %w", err)
	}

	r := converters.NewRegistry()
	ms.Register(r)
	catalogue.Register(r)

	return &Set{
		Registry:    r,
		Mystem:      ms,
		OpenCorpora: catalogue,
	}, nil
}

// Convert converts tag from one registered format to another.
func (s *Set) Convert(from, to, tag string) (string, error) {
	return s.Registry.Convert(from, to, tag, "")
}

// Chain applies the conversions between consecutive formats in order,
// e.g. Chain(tag, Mystem, OpenCorporaInternal, OpenCorpora).
func (s *Set) Chain(tag string, formats ...string) (string, error) {
	for i := 0; i+1 < len(formats); i++ {
		out, err := s.Registry.Convert(formats[i], formats[i+1], tag, "")
		if err != nil {
			return "", err
		}

		tag = out
	}

	return tag, nil
}
