// Package vocab maps native rights encodings and inheritance flags to the
// human-readable names used in templates and reports.
//
// Both lookups are total: an encoding not present in the tables passes
// through unchanged, so future or platform-specific encodings degrade to a
// literal label instead of aborting an audit.
package vocab

import "github.com/permaudit-project/permaudit/pkg/model"

// rightNames maps the canonical string forms of native rights encodings to
// friendly right names. Keys cover the named flag combinations produced by
// NTFS tooling plus the decimal generic-mask values some native APIs emit
// for inherit-only entries.
var rightNames = map[model.RightsValue]string{
	"FullControl":                        "FullControl",
	"Modify, Synchronize":                "Modify",
	"ReadAndExecute, Synchronize":        "ReadAndExecute",
	"Read, Synchronize":                  "Read",
	"Write, Synchronize":                 "Write",
	"Write, ReadAndExecute, Synchronize": "Write, ReadAndExecute",
	"Read, Write, Synchronize":           "Read, Write",

	// Generic access masks (decimal, as stringified by the adapter).
	"268435456":   "FullControl",    // GENERIC_ALL
	"-536805376":  "Modify",         // GENERIC_READ | GENERIC_WRITE | GENERIC_EXECUTE | DELETE
	"-1610612736": "ReadAndExecute", // GENERIC_READ | GENERIC_EXECUTE
	"-2147483648": "Read",           // GENERIC_READ
	"1073741824":  "Write",          // GENERIC_WRITE
	"536870912":   "Execute",        // GENERIC_EXECUTE

	// Fully-expanded specific masks.
	"2032127": "FullControl",
	"1245631": "Modify",
	"1179817": "ReadAndExecute",
	"1179785": "Read",
	"1180063": "Read, Write",
	"278":     "Write",
}

// RightName returns the friendly name for a rights encoding. Unknown
// encodings are returned unchanged.
func RightName(rights model.RightsValue) string {
	if name, ok := rightNames[rights]; ok {
		return name
	}
	return string(rights)
}

// appliesTo maps inheritance-flag combinations to the phrases the Windows
// security UI uses. NoPropagate limits depth, not scope, so it is masked
// out before lookup.
var appliesTo = map[model.AceFlags]string{
	0:                                                  "This folder only",
	model.FlagContainerInherit:                         "This folder and subfolders",
	model.FlagFileInherit:                              "This folder and files",
	model.FlagContainerInherit | model.FlagFileInherit: "This folder, subfolders and files",
	model.FlagInheritOnly | model.FlagContainerInherit:                         "Subfolders only",
	model.FlagInheritOnly | model.FlagFileInherit:                              "Files only",
	model.FlagInheritOnly | model.FlagContainerInherit | model.FlagFileInherit: "Subfolders and files only",
}

// AppliesTo returns the friendly scope phrase for an inheritance flag set.
// Combinations outside the table fall back to the literal flag string.
func AppliesTo(flags model.AceFlags) string {
	if phrase, ok := appliesTo[flags&^model.FlagNoPropagate]; ok {
		return phrase
	}
	return flags.String()
}
