package pathutil

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permaudit-project/permaudit/pkg/errclass"
)

func TestValidateParent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ValidateParent(dir))

	err := ValidateParent(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, errclass.ErrPathInvalid))

	assert.True(t, errors.Is(ValidateParent(""), errclass.ErrPathInvalid))
}

func TestAncestors_NearestFirst(t *testing.T) {
	got := Ancestors(filepath.Join(string(filepath.Separator), "srv", "shares", "Finance"))
	want := []string{
		filepath.Join(string(filepath.Separator), "srv", "shares"),
		filepath.Join(string(filepath.Separator), "srv"),
		string(filepath.Separator),
	}
	assert.Equal(t, want, got)
}

func TestAncestors_RootHasNone(t *testing.T) {
	assert.Empty(t, Ancestors(string(filepath.Separator)))
}

func TestNormalizeFolderName(t *testing.T) {
	// NFD "é" (e + combining acute) normalizes to the NFC single rune.
	assert.Equal(t, "Résumé", NormalizeFolderName("Résumé"))
	assert.Equal(t, "Finance", NormalizeFolderName("Finance"))
}
