package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permaudit-project/permaudit/pkg/model"
)

func ace(principal, right string) model.CanonicalAce {
	return model.CanonicalAce{
		Principal:  principal,
		RightName:  right,
		AccessType: model.AccessAllow,
		AppliesTo:  "This folder, subfolders and files",
	}
}

func TestDiff_EqualSetsAreNotDeviant(t *testing.T) {
	d := NewDiffer(MatchingExact)
	e := []model.CanonicalAce{ace("NT AUTHORITY\\SYSTEM", "FullControl"), ace("DOMAIN\\Finance", "Modify")}
	a := []model.CanonicalAce{ace("DOMAIN\\Finance", "Modify"), ace("NT AUTHORITY\\SYSTEM", "FullControl")}

	assert.Empty(t, d.Diff(e, a))
}

func TestDiff_MissingAndUnexpected(t *testing.T) {
	d := NewDiffer(MatchingExact)
	expected := []model.CanonicalAce{ace("NT AUTHORITY\\SYSTEM", "FullControl")}
	actual := []model.CanonicalAce{ace("NT AUTHORITY\\SYSTEM", "Modify")}

	got := d.Diff(expected, actual)
	require.Len(t, got, 2)
	assert.Equal(t, model.DeviationRecord{Principal: "NT AUTHORITY\\SYSTEM", RightName: "FullControl", Kind: model.DeviationMissing}, got[0])
	assert.Equal(t, model.DeviationRecord{Principal: "NT AUTHORITY\\SYSTEM", RightName: "Modify", Kind: model.DeviationUnexpected}, got[1])
}

func TestDiff_Completeness(t *testing.T) {
	d := NewDiffer(MatchingExact)
	expected := []model.CanonicalAce{
		ace("A", "Read"), ace("B", "Modify"), ace("C", "FullControl"),
	}
	actual := []model.CanonicalAce{
		ace("B", "Modify"), ace("D", "Write"), ace("E", "Read"),
	}

	got := d.Diff(expected, actual)
	require.Len(t, got, 4) // |E\A| + |A\E| = 2 + 2

	missing, unexpected := 0, 0
	for _, rec := range got {
		switch rec.Kind {
		case model.DeviationMissing:
			missing++
		case model.DeviationUnexpected:
			unexpected++
		}
	}
	assert.Equal(t, 2, missing)
	assert.Equal(t, 2, unexpected)
}

func TestDiff_DeterministicOrdering(t *testing.T) {
	d := NewDiffer(MatchingExact)
	expected := []model.CanonicalAce{ace("B", "Read"), ace("A", "Write"), ace("A", "Read")}
	actual := []model.CanonicalAce{ace("C", "Modify"), ace("A", "FullControl")}

	first := d.Diff(expected, actual)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, d.Diff(expected, actual))
	}

	// Sorted by principal, then kind (missing first), then right name.
	want := []model.DeviationRecord{
		{Principal: "A", RightName: "Read", Kind: model.DeviationMissing},
		{Principal: "A", RightName: "Write", Kind: model.DeviationMissing},
		{Principal: "A", RightName: "FullControl", Kind: model.DeviationUnexpected},
		{Principal: "B", RightName: "Read", Kind: model.DeviationMissing},
		{Principal: "C", RightName: "Modify", Kind: model.DeviationUnexpected},
	}
	assert.Equal(t, want, first)
}

func TestDiff_ExactMatchingIsCaseSensitive(t *testing.T) {
	d := NewDiffer(MatchingExact)
	got := d.Diff(
		[]model.CanonicalAce{ace("DOMAIN\\finance", "Modify")},
		[]model.CanonicalAce{ace("DOMAIN\\Finance", "Modify")},
	)
	assert.Len(t, got, 2)
}

func TestDiff_FoldMatchingIgnoresCase(t *testing.T) {
	d := NewDiffer(MatchingFold)
	got := d.Diff(
		[]model.CanonicalAce{ace("DOMAIN\\finance", "modify")},
		[]model.CanonicalAce{ace("DOMAIN\\Finance", "Modify")},
	)
	assert.Empty(t, got)
}

func TestDiff_BothEmpty(t *testing.T) {
	assert.Empty(t, NewDiffer(MatchingExact).Diff(nil, nil))
}
