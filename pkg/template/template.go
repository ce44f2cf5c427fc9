// Package template loads and expands the declarative permission template
// used in audit mode.
package template

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/permaudit-project/permaudit/pkg/errclass"
	"github.com/permaudit-project/permaudit/pkg/model"
)

// FolderNameToken is the placeholder in a requirement's Principal that is
// replaced with the concrete folder name during expansion.
const FolderNameToken = "%%FolderName%%"

// Requirement is one required ACE in the template. Rights and AppliesTo are
// already-friendly names matching the vocabulary's output format, so
// expected/actual comparison is apples-to-apples.
type Requirement struct {
	Principal string `json:"Principal" validate:"required"`
	Rights    string `json:"Rights" validate:"required"`
	Type      string `json:"Type" validate:"required,oneof=Allow Deny"`
	AppliesTo string `json:"AppliesTo" validate:"required"`
}

// Template is the declarative, folder-name-parameterized specification of
// required ACEs. Loaded once per audit run; immutable afterwards.
type Template struct {
	Description         string        `json:"Description"`
	RequiredPermissions []Requirement `json:"RequiredPermissions" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Load reads and validates a template file. Any failure here is a fatal
// configuration error for audit mode: the caller must abort the run before
// processing any folder.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errclass.ErrTemplateNotFound.WithMessagef("%s: %v", path, err)
	}
	if err != nil {
		return nil, errclass.ErrTemplateInvalid.WithMessagef("read %s: %v", path, err)
	}

	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, errclass.ErrTemplateInvalid.WithMessagef("parse %s: %v", path, err)
	}
	if err := validate.Struct(&t); err != nil {
		return nil, errclass.ErrTemplateInvalid.WithMessagef("validate %s: %v", path, err)
	}
	return &t, nil
}

// Expand produces the concrete set of expected canonical ACEs for one
// folder: every literal occurrence of FolderNameToken in a requirement's
// Principal is replaced with folderName. Duplicate requirements collapse;
// order is not significant because the differ re-sorts its output.
func (t *Template) Expand(folderName string) []model.CanonicalAce {
	seen := make(map[model.CanonicalAce]struct{}, len(t.RequiredPermissions))
	out := make([]model.CanonicalAce, 0, len(t.RequiredPermissions))
	for _, req := range t.RequiredPermissions {
		ace := model.CanonicalAce{
			Principal:  strings.ReplaceAll(req.Principal, FolderNameToken, folderName),
			RightName:  req.Rights,
			AccessType: model.AccessType(req.Type),
			AppliesTo:  req.AppliesTo,
		}
		if _, dup := seen[ace]; dup {
			continue
		}
		seen[ace] = struct{}{}
		out = append(out, ace)
	}
	return out
}
