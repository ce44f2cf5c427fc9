// Package pathutil provides path validation and ancestor-walk helpers for
// permaudit.
package pathutil

import (
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"

	"github.com/permaudit-project/permaudit/pkg/errclass"
)

// ValidateParent checks that path names an existing, readable directory.
func ValidateParent(path string) error {
	if path == "" {
		return errclass.ErrPathInvalid.WithMessage("path must not be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return errclass.ErrPathInvalid.WithMessagef("cannot stat %s: %v", path, err)
	}
	if !info.IsDir() {
		return errclass.ErrPathInvalid.WithMessagef("not a directory: %s", path)
	}
	return nil
}

// Ancestors returns the chain of ancestor directories of path, nearest
// first, ending at the filesystem root. The path itself is not included.
func Ancestors(path string) []string {
	var out []string
	p := filepath.Clean(path)
	for {
		parent := filepath.Dir(p)
		if parent == p {
			return out
		}
		out = append(out, parent)
		p = parent
	}
}

// NormalizeFolderName NFC-normalizes a folder name so that token
// substitution and principal comparison see one canonical spelling
// regardless of how the filesystem encoded the name.
func NormalizeFolderName(name string) string {
	return norm.NFC.String(name)
}
