// Package acl abstracts the platform capabilities the audit engine
// consumes: directory listing and raw ACL acquisition. Platform adapters
// translate native encodings into the model's canonical forms before the
// engine ever sees them.
package acl

import "github.com/permaudit-project/permaudit/pkg/model"

// Provider returns the raw ACL snapshot for a path. GetAcl may fail with
// an access-denied or not-found condition; the engine treats such failures
// as local to the folder or ancestor being inspected.
type Provider interface {
	GetAcl(path string) (*model.Acl, error)
}

// Lister enumerates the direct subfolders of a parent directory.
type Lister interface {
	ListSubfolders(parent string) ([]model.FolderInfo, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(path string) (*model.Acl, error)

// GetAcl calls f.
func (f ProviderFunc) GetAcl(path string) (*model.Acl, error) { return f(path) }
