package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/permaudit-project/permaudit/pkg/model"
)

func TestNormalize(t *testing.T) {
	got := Normalize(model.RawAce{
		Identity:  "NT AUTHORITY\\SYSTEM",
		Rights:    "Modify, Synchronize",
		Type:      model.AccessAllow,
		Flags:     model.FlagContainerInherit | model.FlagFileInherit,
		Inherited: true,
	})
	assert.Equal(t, model.CanonicalAce{
		Principal:  "NT AUTHORITY\\SYSTEM",
		RightName:  "Modify",
		AccessType: model.AccessAllow,
		AppliesTo:  "This folder, subfolders and files",
	}, got)
}

func TestNormalize_Totality(t *testing.T) {
	// Unknown encodings degrade to literal labels instead of failing.
	weird := []model.RawAce{
		{Identity: "S-1-5-21-1-2-3-1001", Rights: "31337", Type: model.AccessDeny, Flags: 0},
		{Identity: "", Rights: "", Type: model.AccessAllow, Flags: model.FlagInheritOnly},
		{Identity: "X", Rights: "Some Future Right", Type: model.AccessAllow, Flags: 0xF},
	}
	for _, raw := range weird {
		got := Normalize(raw)
		assert.Equal(t, raw.Identity, got.Principal)
		assert.NotPanics(t, func() { Normalize(raw) })
	}

	// Exact identity passthrough, no case folding.
	got := Normalize(model.RawAce{Identity: "domain\\finance", Rights: "FullControl", Type: model.AccessAllow})
	assert.Equal(t, "domain\\finance", got.Principal)
}
