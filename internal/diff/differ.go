// Package diff computes expected-vs-actual ACE deviations for permaudit.
package diff

import (
	"sort"

	"golang.org/x/text/cases"

	"github.com/permaudit-project/permaudit/pkg/model"
)

// Matching selects how ACE fields are compared.
type Matching string

const (
	// MatchingExact compares strings byte for byte. This matches the
	// original tool: template authors must reproduce the vocabulary's
	// exact casing.
	MatchingExact Matching = "exact"
	// MatchingFold compares strings case-insensitively (Unicode case
	// folding).
	MatchingFold Matching = "fold"
)

// Differ computes the set difference between expected and actual
// canonical ACEs.
type Differ struct {
	fold bool
}

// NewDiffer creates a Differ for the given matching mode.
func NewDiffer(m Matching) *Differ {
	return &Differ{fold: m == MatchingFold}
}

// key returns the membership key for an ACE under the configured matching
// mode. AccessType is a closed enum and needs no folding.
func (d *Differ) key(a model.CanonicalAce) model.CanonicalAce {
	if !d.fold {
		return a
	}
	c := cases.Fold()
	return model.CanonicalAce{
		Principal:  c.String(a.Principal),
		RightName:  c.String(a.RightName),
		AccessType: a.AccessType,
		AppliesTo:  c.String(a.AppliesTo),
	}
}

// Diff returns one Missing record per expected ACE absent from actual and
// one Unexpected record per actual ACE absent from expected, sorted by
// principal, then kind (missing first), then right name. The records carry
// the original casing of the side they came from. A folder is deviant iff
// the returned sequence is non-empty.
func (d *Differ) Diff(expected, actual []model.CanonicalAce) []model.DeviationRecord {
	exp := make(map[model.CanonicalAce]model.CanonicalAce, len(expected))
	for _, ace := range expected {
		exp[d.key(ace)] = ace
	}
	act := make(map[model.CanonicalAce]model.CanonicalAce, len(actual))
	for _, ace := range actual {
		act[d.key(ace)] = ace
	}

	var out []model.DeviationRecord
	for k, ace := range exp {
		if _, ok := act[k]; !ok {
			out = append(out, model.DeviationRecord{
				Principal: ace.Principal,
				RightName: ace.RightName,
				Kind:      model.DeviationMissing,
			})
		}
	}
	for k, ace := range act {
		if _, ok := exp[k]; !ok {
			out = append(out, model.DeviationRecord{
				Principal: ace.Principal,
				RightName: ace.RightName,
				Kind:      model.DeviationUnexpected,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Principal != out[j].Principal {
			return out[i].Principal < out[j].Principal
		}
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == model.DeviationMissing
		}
		return out[i].RightName < out[j].RightName
	})
	return out
}
