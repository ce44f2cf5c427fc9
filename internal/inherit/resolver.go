package inherit

import (
	"github.com/permaudit-project/permaudit/internal/acl"
	"github.com/permaudit-project/permaudit/pkg/model"
	"github.com/permaudit-project/permaudit/pkg/pathutil"
)

// Sentinel values returned instead of an ancestor path.
const (
	// SourceLocal marks an ACE set directly on the folder.
	SourceLocal = "<none (this folder)>"
	// SourceUnknown means the walk reached the filesystem root without a
	// matching inheritable ancestor ACE.
	SourceUnknown = "<source unknown>"
	// SourceNotAccessible means an ancestor's ACL could not be read. The
	// walk stops there: a failure at one level says nothing about levels
	// above it.
	SourceNotAccessible = "<source not accessible>"
)

// Resolver finds the nearest ancestor whose own ACL carries a matching,
// inheritable ACE.
type Resolver struct {
	provider acl.Provider
	cache    *Cache
}

// NewResolver creates a Resolver sharing the run-wide cache.
func NewResolver(provider acl.Provider, cache *Cache) *Resolver {
	return &Resolver{provider: provider, cache: cache}
}

// Source returns the path of the ancestor directory that introduced ace,
// or a sentinel. For a non-inherited ACE it answers immediately without
// touching the cache or provider.
//
// An ancestor ACE matches when its identity and access type equal the
// inherited ACE's and its own flags propagate to children. An ancestor may
// carry the same identity/type pair declared "this folder only"; that entry
// cannot be the source of a child's inherited ACE and is skipped.
func (r *Resolver) Source(folderPath string, ace model.RawAce) string {
	if !ace.Inherited {
		return SourceLocal
	}

	for _, ancestor := range pathutil.Ancestors(folderPath) {
		snap, err := r.cache.Get(ancestor, r.provider.GetAcl)
		if err != nil {
			return SourceNotAccessible
		}
		for _, entry := range snap.Entries {
			if entry.Identity == ace.Identity && entry.Type == ace.Type && entry.Flags.Inheritable() {
				return ancestor
			}
		}
	}
	return SourceUnknown
}
