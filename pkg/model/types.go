// Package model defines the data types shared across the permaudit engine.
package model

import "strings"

// AccessType says whether an ACE grants or denies its rights.
type AccessType string

const (
	AccessAllow AccessType = "Allow"
	AccessDeny  AccessType = "Deny"
)

// RightsValue is the canonical string form of a native rights encoding, as
// emitted by the platform ACL adapter. It is either a named combination
// (e.g. "Modify, Synchronize") or a decimal access mask for encodings the
// adapter does not recognize. The engine never sees raw platform bits.
type RightsValue string

// AceFlags is the platform-independent inheritance flag set for an ACE.
// Platform adapters translate native flag bits into this type before the
// engine sees them.
type AceFlags uint8

const (
	// FlagFileInherit propagates the ACE to child files.
	FlagFileInherit AceFlags = 1 << 0
	// FlagContainerInherit propagates the ACE to child folders.
	FlagContainerInherit AceFlags = 1 << 1
	// FlagNoPropagate stops propagation past direct children.
	FlagNoPropagate AceFlags = 1 << 2
	// FlagInheritOnly excludes the ACE from the object it is set on.
	FlagInheritOnly AceFlags = 1 << 3
)

// Inheritable reports whether the ACE propagates to children at all.
// A "this folder only" ACE (no inherit bits) is never the source of a
// child's inherited ACE.
func (f AceFlags) Inheritable() bool {
	return f&(FlagFileInherit|FlagContainerInherit) != 0
}

// String returns the literal flag combination, e.g.
// "ContainerInherit, FileInherit". Zero flags stringify as "None".
func (f AceFlags) String() string {
	if f == 0 {
		return "None"
	}
	var parts []string
	if f&FlagContainerInherit != 0 {
		parts = append(parts, "ContainerInherit")
	}
	if f&FlagFileInherit != 0 {
		parts = append(parts, "FileInherit")
	}
	if f&FlagNoPropagate != 0 {
		parts = append(parts, "NoPropagate")
	}
	if f&FlagInheritOnly != 0 {
		parts = append(parts, "InheritOnly")
	}
	return strings.Join(parts, ", ")
}
