package audit

import (
	"fmt"
	"strings"

	"github.com/gabmars/russian-tagsets/internal/diagnostic"
	"github.com/gabmars/russian-tagsets/internal/match"
	"github.com/gabmars/russian-tagsets/mystem"
	"github.com/gabmars/russian-tagsets/opencorpora"
	"github.com/gabmars/russian-tagsets/tagmap"
)

// Diagnostic codes.
const (
	CodeUnknownTargetToken = "unknown_target_token"
	CodeInverseCollision   = "inverse_collision"
	CodeUnknownParent      = "unknown_parent"
	CodeTableSize          = "table_size"
)

const suggestionLimit = 3

// Run audits the Mystem tables against the OpenCorpora catalogue.
func Run(ms *mystem.Converter, oc *opencorpora.Catalogue) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	internals := oc.ToExternal().Keys()

	checkTargets(res, ms.Grammemes(), oc.Has, internals)
	checkTargets(res, ms.POSNames(), ms.Grammemes().Has, ms.Grammemes().Keys())

	checkCollisions(res, ms.Grammemes(), ms.Reverse())
	checkCollisions(res, oc.ToExternal(), oc.ToInternal())

	checkParents(res, oc, internals)

	for _, t := range []*tagmap.Table{ms.Grammemes(), ms.POSNames(), ms.Reverse(), oc.ToExternal(), oc.ToInternal()} {
		res.AddInfo(CodeTableSize, fmt.Sprintf("%d pairs", t.Len()), t.Name(), "")
	}

	return res
}

// checkTargets reports values of t that known rejects.
func checkTargets(res *diagnostic.Diagnostics, t *tagmap.Table, known func(string) bool, vocabulary []string) {
	for _, p := range t.Pairs() {
		if known(p.Value) {
			continue
		}

		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityError,
			Code:        CodeUnknownTargetToken,
			Message:     fmt.Sprintf("value of %q is not in the destination vocabulary", p.Key),
			Table:       t.Name(),
			Token:       p.Value,
			Suggestions: match.Suggest(p.Value, vocabulary, suggestionLimit),
		})
	}
}

// checkCollisions warns about every value of t whose reverse picks one key among several.
func checkCollisions(res *diagnostic.Diagnostics, t, reverse *tagmap.Table) {
	for _, c := range tagmap.Collisions(t) {
		kept, _ := reverse.Lookup(c.Value)
		res.AddWarning(CodeInverseCollision,
			fmt.Sprintf("shared by %s; %s maps it back to %q", strings.Join(c.Keys, ", "), reverse.Name(), kept),
			t.Name(), c.Value)
	}
}

func checkParents(res *diagnostic.Diagnostics, oc *opencorpora.Catalogue, internals []string) {
	for _, g := range oc.Grammemes() {
		if g.Parent == "" || oc.Has(g.Parent) {
			continue
		}

		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityError,
			Code:        CodeUnknownParent,
			Message:     fmt.Sprintf("parent of %q is not catalogued", g.Internal),
			Table:       oc.ToExternal().Name(),
			Token:       g.Parent,
			Suggestions: match.Suggest(g.Parent, internals, suggestionLimit),
		})
	}
}
