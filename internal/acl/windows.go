//go:build windows

package acl

import (
	"strconv"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/permaudit-project/permaudit/pkg/errclass"
	"github.com/permaudit-project/permaudit/pkg/model"
)

// WindowsProvider reads DACLs through the Win32 security APIs.
type WindowsProvider struct{}

// NewDefaultProvider returns the native ACL provider for this platform.
func NewDefaultProvider() Provider {
	return &WindowsProvider{}
}

// GetAcl fetches the owner, protection state and ACE list for path.
func (p *WindowsProvider) GetAcl(path string) (*model.Acl, error) {
	sd, err := windows.GetNamedSecurityInfo(
		path,
		windows.SE_FILE_OBJECT,
		windows.OWNER_SECURITY_INFORMATION|windows.DACL_SECURITY_INFORMATION,
	)
	if err != nil {
		return nil, errclass.ErrAclUnavailable.WithMessagef("%s: %v", path, err)
	}

	out := &model.Acl{}

	if owner, _, err := sd.Owner(); err == nil && owner != nil {
		out.Owner = accountName(owner)
	}

	if control, _, err := sd.Control(); err == nil {
		out.Protected = control&windows.SE_DACL_PROTECTED != 0
	}

	dacl, _, err := sd.DACL()
	if err != nil || dacl == nil {
		// A nil DACL grants everyone full access; report it as an empty
		// entry list rather than failing the folder.
		return out, nil
	}

	for i := uint32(0); i < uint32(dacl.AceCount); i++ {
		var ace *windows.ACCESS_ALLOWED_ACE
		if err := windows.GetAce(dacl, i, &ace); err != nil {
			return nil, errclass.ErrAclUnavailable.WithMessagef("%s: ace %d: %v", path, i, err)
		}

		accessType := model.AccessAllow
		switch ace.Header.AceType {
		case windows.ACCESS_ALLOWED_ACE_TYPE:
			accessType = model.AccessAllow
		case windows.ACCESS_DENIED_ACE_TYPE:
			accessType = model.AccessDeny
		default:
			// Audit/object ACEs are not part of the discretionary policy.
			continue
		}

		sid := (*windows.SID)(unsafe.Pointer(&ace.SidStart))
		out.Entries = append(out.Entries, model.RawAce{
			Identity:  accountName(sid),
			Rights:    rightsFromMask(uint32(ace.Mask)),
			Type:      accessType,
			Flags:     flagsFromNative(ace.Header.AceFlags),
			Inherited: ace.Header.AceFlags&windows.INHERITED_ACE != 0,
		})
	}
	return out, nil
}

// accountName resolves a SID to DOMAIN\Name, falling back to the SID's
// string form for orphaned or foreign identities.
func accountName(sid *windows.SID) string {
	account, domain, _, err := sid.LookupAccount("")
	if err != nil {
		return sid.String()
	}
	if domain == "" {
		return account
	}
	return domain + "\\" + account
}

// flagsFromNative translates Win32 ACE header flag bits into the model's
// inheritance flag set. INHERITED_ACE is carried separately on RawAce.
func flagsFromNative(native uint8) model.AceFlags {
	var f model.AceFlags
	if native&windows.OBJECT_INHERIT_ACE != 0 {
		f |= model.FlagFileInherit
	}
	if native&windows.CONTAINER_INHERIT_ACE != 0 {
		f |= model.FlagContainerInherit
	}
	if native&windows.NO_PROPAGATE_INHERIT_ACE != 0 {
		f |= model.FlagNoPropagate
	}
	if native&windows.INHERIT_ONLY_ACE != 0 {
		f |= model.FlagInheritOnly
	}
	return f
}

// Named FileSystemRights combinations; everything else degrades to the
// signed decimal mask, which is how the generic bits show up in native
// tooling.
var maskNames = map[uint32]model.RightsValue{
	0x001F01FF: "FullControl",
	0x001301BF: "Modify, Synchronize",
	0x001200A9: "ReadAndExecute, Synchronize",
	0x00120089: "Read, Synchronize",
	0x00100116: "Write, Synchronize",
	0x0012019F: "Read, Write, Synchronize",
}

func rightsFromMask(mask uint32) model.RightsValue {
	if name, ok := maskNames[mask]; ok {
		return name
	}
	return model.RightsValue(strconv.FormatInt(int64(int32(mask)), 10))
}
