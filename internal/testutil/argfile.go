// Package testutil holds helpers shared by the argfile and inspector
// tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteArgfile writes src into a fresh temp directory under the given file
// name and returns the file's path. The directory is cleaned up with the
// test.
func WriteArgfile(t *testing.T, name, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600), "failed to write argfile fixture")
	return path
}

// WriteArgfileTree writes several argfiles into one fresh temp directory.
// Keys are paths relative to the directory root; nested directories are
// created as needed. Returns the directory.
func WriteArgfileTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, src := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(src), 0o600), "failed to write argfile fixture %s", name)
	}
	return dir
}
