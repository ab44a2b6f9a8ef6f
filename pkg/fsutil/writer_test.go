package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webship/provision/pkg/fsutil"
)

func TestTryWriteFile_CreatesFileAndParentDirs(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "nested", "dir", "file.conf")

	written, err := fsutil.TryWriteFile("content", target, false, 0o644)

	require.NoError(t, err)
	assert.True(t, written)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "content", string(got))
}

func TestTryWriteFile_KeepsExistingFileWithoutForce(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "file.conf")
	require.NoError(t, os.WriteFile(target, []byte("original"), 0o600))

	written, err := fsutil.TryWriteFile("replacement", target, false, 0o600)

	require.NoError(t, err)
	assert.False(t, written)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
}

func TestTryWriteFile_OverwritesWithForce(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "file.conf")
	require.NoError(t, os.WriteFile(target, []byte("original"), 0o644))

	written, err := fsutil.TryWriteFile("replacement", target, true, 0o644)

	require.NoError(t, err)
	assert.True(t, written)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "replacement", string(got))
}

func TestTryWriteFile_EmptyOutputPath(t *testing.T) {
	t.Parallel()

	written, err := fsutil.TryWriteFile("content", "", false, 0o644)

	require.ErrorIs(t, err, fsutil.ErrEmptyOutputPath)
	assert.False(t, written)
}

func TestTryWriteFile_AppliesRequestedPermissions(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "secret.env")

	written, err := fsutil.TryWriteFile("JWT_SECRET=", target, false, 0o600)

	require.NoError(t, err)
	require.True(t, written)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
