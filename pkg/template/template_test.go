package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permaudit-project/permaudit/pkg/errclass"
	"github.com/permaudit-project/permaudit/pkg/model"
)

const validTemplate = `{
  "Description": "Department share baseline",
  "RequiredPermissions": [
    { "Principal": "NT AUTHORITY\\SYSTEM", "Rights": "FullControl", "Type": "Allow", "AppliesTo": "This folder, subfolders and files" },
    { "Principal": "DOMAIN\\%%FolderName%%", "Rights": "Modify", "Type": "Allow", "AppliesTo": "This folder, subfolders and files" },
    { "Principal": "DOMAIN\\%%FolderName%%-RO", "Rights": "ReadAndExecute", "Type": "Allow", "AppliesTo": "This folder, subfolders and files" }
  ]
}`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "perms.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	tmpl, err := Load(writeTemplate(t, validTemplate))
	require.NoError(t, err)
	assert.Equal(t, "Department share baseline", tmpl.Description)
	assert.Len(t, tmpl.RequiredPermissions, 3)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, errclass.ErrTemplateNotFound))
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := Load(writeTemplate(t, "{not json"))
	assert.True(t, errors.Is(err, errclass.ErrTemplateInvalid))
}

func TestLoad_RejectsBadAccessType(t *testing.T) {
	_, err := Load(writeTemplate(t, `{
  "RequiredPermissions": [
    { "Principal": "X", "Rights": "Read", "Type": "Maybe", "AppliesTo": "This folder only" }
  ]
}`))
	assert.True(t, errors.Is(err, errclass.ErrTemplateInvalid))
}

func TestLoad_RejectsEmptyRequirements(t *testing.T) {
	_, err := Load(writeTemplate(t, `{"RequiredPermissions": []}`))
	assert.True(t, errors.Is(err, errclass.ErrTemplateInvalid))
}

func TestExpand_SubstitutesToken(t *testing.T) {
	tmpl, err := Load(writeTemplate(t, validTemplate))
	require.NoError(t, err)

	expected := tmpl.Expand("Finance")
	require.Len(t, expected, 3)

	principals := make([]string, 0, len(expected))
	for _, ace := range expected {
		principals = append(principals, ace.Principal)
	}
	assert.Contains(t, principals, "NT AUTHORITY\\SYSTEM")
	assert.Contains(t, principals, "DOMAIN\\Finance")
	assert.Contains(t, principals, "DOMAIN\\Finance-RO")
}

func TestExpand_LeavesTokenlessRequirementsUnchanged(t *testing.T) {
	tmpl := &Template{RequiredPermissions: []Requirement{
		{Principal: "BUILTIN\\Administrators", Rights: "FullControl", Type: "Allow", AppliesTo: "This folder, subfolders and files"},
	}}
	expected := tmpl.Expand("Finance")
	require.Len(t, expected, 1)
	assert.Equal(t, "BUILTIN\\Administrators", expected[0].Principal)
}

func TestExpand_DuplicatesCollapse(t *testing.T) {
	req := Requirement{Principal: "DOMAIN\\%%FolderName%%", Rights: "Modify", Type: "Allow", AppliesTo: "This folder only"}
	tmpl := &Template{RequiredPermissions: []Requirement{req, req}}

	expected := tmpl.Expand("HR")
	require.Len(t, expected, 1)
	assert.Equal(t, model.CanonicalAce{
		Principal:  "DOMAIN\\HR",
		RightName:  "Modify",
		AccessType: model.AccessAllow,
		AppliesTo:  "This folder only",
	}, expected[0])
}
