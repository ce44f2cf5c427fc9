//go:build !windows

package acl

import (
	"os"
	"os/user"
	"strconv"
	"syscall"

	"github.com/permaudit-project/permaudit/pkg/errclass"
	"github.com/permaudit-project/permaudit/pkg/model"
)

// PosixProvider synthesizes ACL snapshots from POSIX mode bits so the tool
// runs outside Windows. There is no DACL inheritance in this model: every
// entry is direct and non-propagating, and the ACL reports as protected.
type PosixProvider struct{}

// NewDefaultProvider returns the native ACL provider for this platform.
func NewDefaultProvider() Provider {
	return &PosixProvider{}
}

// GetAcl builds owner/group/other entries from the file mode.
func (p *PosixProvider) GetAcl(path string) (*model.Acl, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errclass.ErrAclUnavailable.WithMessagef("%s: %v", path, err)
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, errclass.ErrProviderUnsupported.WithMessagef("no stat data for %s", path)
	}

	ownerName := lookupUser(stat.Uid)
	groupName := lookupGroup(stat.Gid)
	mode := info.Mode().Perm()

	out := &model.Acl{Owner: ownerName, Protected: true}
	for _, class := range []struct {
		principal string
		bits      os.FileMode
	}{
		{ownerName, mode >> 6 & 7},
		{groupName, mode >> 3 & 7},
		{"Everyone", mode & 7},
	} {
		if class.bits == 0 {
			continue
		}
		out.Entries = append(out.Entries, model.RawAce{
			Identity: class.principal,
			Rights:   rightsFromBits(class.bits),
			Type:     model.AccessAllow,
		})
	}
	return out, nil
}

var bitsNames = map[os.FileMode]model.RightsValue{
	7: "FullControl",
	6: "Modify",
	5: "ReadAndExecute",
	4: "Read",
	3: "Write, Execute",
	2: "Write",
	1: "Execute",
}

func rightsFromBits(bits os.FileMode) model.RightsValue {
	if name, ok := bitsNames[bits]; ok {
		return name
	}
	return model.RightsValue(strconv.FormatUint(uint64(bits), 10))
}

func lookupUser(uid uint32) string {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "uid:" + strconv.FormatUint(uint64(uid), 10)
	}
	return u.Username
}

func lookupGroup(gid uint32) string {
	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		return "gid:" + strconv.FormatUint(uint64(gid), 10)
	}
	return g.Name
}
