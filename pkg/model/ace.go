package model

import "time"

// RawAce is an access-control entry as supplied by the platform ACL
// provider, after native values have been translated into the model's
// canonical forms.
type RawAce struct {
	Identity  string     `json:"identity"`
	Rights    RightsValue `json:"rights"`
	Type      AccessType `json:"type"`
	Flags     AceFlags   `json:"flags"`
	Inherited bool       `json:"inherited"`
}

// CanonicalAce is the normalized, comparable form of an ACE. Two values are
// equal iff all four fields are equal; Inherited is intentionally dropped so
// that expected/actual comparison is policy-based, not provenance-based.
type CanonicalAce struct {
	Principal  string     `json:"principal"`
	RightName  string     `json:"right_name"`
	AccessType AccessType `json:"access_type"`
	AppliesTo  string     `json:"applies_to"`
}

// Acl is a snapshot of one filesystem object's discretionary ACL.
type Acl struct {
	Owner     string   `json:"owner"`
	Protected bool     `json:"protected"`
	Entries   []RawAce `json:"entries"`
}

// FolderInfo describes one subfolder as reported by the directory lister.
type FolderInfo struct {
	Path         string    `json:"path"`
	Name         string    `json:"name"`
	LastModified time.Time `json:"last_modified"`
}
