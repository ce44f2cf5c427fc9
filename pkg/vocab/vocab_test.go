package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/permaudit-project/permaudit/pkg/model"
)

func TestRightName_KnownEncodings(t *testing.T) {
	tests := []struct {
		rights model.RightsValue
		want   string
	}{
		{"FullControl", "FullControl"},
		{"Modify, Synchronize", "Modify"},
		{"ReadAndExecute, Synchronize", "ReadAndExecute"},
		{"268435456", "FullControl"},
		{"-536805376", "Modify"},
		{"-1610612736", "ReadAndExecute"},
		{"1179785", "Read"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RightName(tt.rights), "rights %q", tt.rights)
	}
}

func TestRightName_UnknownPassesThrough(t *testing.T) {
	// Totality: encodings outside the table come back unchanged.
	for _, raw := range []model.RightsValue{"", "31337", "TakeOwnership, Synchronize", "some future right"} {
		assert.Equal(t, string(raw), RightName(raw))
	}
}

func TestAppliesTo_KnownCombinations(t *testing.T) {
	tests := []struct {
		flags model.AceFlags
		want  string
	}{
		{0, "This folder only"},
		{model.FlagContainerInherit, "This folder and subfolders"},
		{model.FlagFileInherit, "This folder and files"},
		{model.FlagContainerInherit | model.FlagFileInherit, "This folder, subfolders and files"},
		{model.FlagInheritOnly | model.FlagContainerInherit, "Subfolders only"},
		{model.FlagInheritOnly | model.FlagFileInherit, "Files only"},
		{model.FlagInheritOnly | model.FlagContainerInherit | model.FlagFileInherit, "Subfolders and files only"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AppliesTo(tt.flags), "flags %s", tt.flags)
	}
}

func TestAppliesTo_NoPropagateKeepsScope(t *testing.T) {
	// NoPropagate limits depth, not which children the ACE applies to.
	assert.Equal(t, "This folder and subfolders",
		AppliesTo(model.FlagContainerInherit|model.FlagNoPropagate))
}

func TestAppliesTo_UnknownFallsBackToFlagString(t *testing.T) {
	// InheritOnly alone is not a meaningful scope; it degrades to the
	// literal flag form rather than an error.
	assert.Equal(t, "InheritOnly", AppliesTo(model.FlagInheritOnly))
}
