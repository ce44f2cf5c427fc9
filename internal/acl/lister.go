package acl

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/permaudit-project/permaudit/pkg/model"
	"github.com/permaudit-project/permaudit/pkg/pathutil"
)

// DirLister lists subfolders via the local filesystem.
type DirLister struct{}

// NewDirLister creates a Lister backed by os.ReadDir.
func NewDirLister() *DirLister {
	return &DirLister{}
}

// ListSubfolders returns the direct subdirectories of parent, sorted by
// name. Symlinks are not followed.
func (l *DirLister) ListSubfolders(parent string) ([]model.FolderInfo, error) {
	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil, fmt.Errorf("list subfolders of %s: %w", parent, err)
	}

	var out []model.FolderInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info; treat as absent.
			continue
		}
		out = append(out, model.FolderInfo{
			Path:         filepath.Join(parent, entry.Name()),
			Name:         pathutil.NormalizeFolderName(entry.Name()),
			LastModified: info.ModTime(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
