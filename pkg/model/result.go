package model

import "time"

// DeviationKind classifies a single expected-vs-actual difference.
type DeviationKind string

const (
	// DeviationMissing means the template expects the ACE but the folder
	// does not carry it.
	DeviationMissing DeviationKind = "missing"
	// DeviationUnexpected means the folder carries an ACE the template
	// does not expect.
	DeviationUnexpected DeviationKind = "unexpected"
)

// DeviationRecord is one itemized difference between a folder's actual ACL
// and its template-derived expected ACL.
type DeviationRecord struct {
	Principal string        `json:"principal"`
	RightName string        `json:"right_name"`
	Kind      DeviationKind `json:"kind"`
}

// ResolvedAce pairs a normalized ACE with the ancestor path that introduced
// it, or one of the resolver's sentinel strings.
type ResolvedAce struct {
	Ace           CanonicalAce `json:"ace"`
	InheritedFrom string       `json:"inherited_from"`
}

// FolderAuditResult is the per-folder outcome of an audit run. It is
// constructed once by the orchestrator and never mutated afterward. A
// non-empty Error means the folder's ACL could not be read; all other
// fields except Path are then zero.
type FolderAuditResult struct {
	Path               string            `json:"path"`
	Owner              string            `json:"owner,omitempty"`
	LastModified       time.Time         `json:"last_modified"`
	InheritanceEnabled bool              `json:"inheritance_enabled"`
	Deviant            bool              `json:"deviant"`
	Deviations         []DeviationRecord `json:"deviations,omitempty"`
	Aces               []ResolvedAce     `json:"aces,omitempty"`
	Error              string            `json:"error,omitempty"`
}
