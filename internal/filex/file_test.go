package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureStateDir_ExplicitDir(t *testing.T) {
	want := filepath.Join(t.TempDir(), "state")

	got, err := EnsureStateDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}
}

func TestEnsureStateDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	first, err := EnsureStateDir(dir)
	require.NoError(t, err)
	second, err := EnsureStateDir(dir)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureStateDir_FailsIfFileWithSameNameExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := EnsureStateDir(path)
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestEnsureStateDir_DefaultUnderUserConfigDir(t *testing.T) {
	tmp := t.TempDir()
	switch runtime.GOOS {
	case "windows":
		t.Setenv("AppData", tmp)
	case "darwin":
		t.Skip("darwin resolves the user config dir under $HOME")
	default:
		t.Setenv("XDG_CONFIG_HOME", tmp)
	}

	got, err := EnsureStateDir("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "mxradar"), got)
}
