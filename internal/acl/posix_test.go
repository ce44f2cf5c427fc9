//go:build !windows

package acl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permaudit-project/permaudit/pkg/errclass"
	"github.com/permaudit-project/permaudit/pkg/model"
)

func TestPosixProvider_GetAcl(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0750))

	snap, err := NewDefaultProvider().GetAcl(dir)
	require.NoError(t, err)

	assert.NotEmpty(t, snap.Owner)
	assert.True(t, snap.Protected)
	require.Len(t, snap.Entries, 2) // other class has no bits set

	owner := snap.Entries[0]
	assert.Equal(t, snap.Owner, owner.Identity)
	assert.Equal(t, model.RightsValue("FullControl"), owner.Rights)
	assert.Equal(t, model.AccessAllow, owner.Type)
	assert.False(t, owner.Inherited)

	group := snap.Entries[1]
	assert.Equal(t, model.RightsValue("ReadAndExecute"), group.Rights)
}

func TestPosixProvider_Missing(t *testing.T) {
	_, err := NewDefaultProvider().GetAcl(filepath.Join(t.TempDir(), "gone"))
	assert.True(t, errors.Is(err, errclass.ErrAclUnavailable))
}
