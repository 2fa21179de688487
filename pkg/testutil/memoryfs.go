package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cascade/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// MemoryFS returns an in-memory filesystem seeded with files, keyed by
// absolute path. The afero handle is returned alongside so tests can mutate
// the tree after the code under test has read it.
func MemoryFS(t *testing.T, files map[string]string) (afero.Fs, filesystem.FS) {
	t.Helper()

	mem := afero.NewMemMapFs()
	for path, content := range files {
		WriteMemFile(t, mem, path, content)
	}
	return mem, filesystem.NewAferoFS(mem)
}

// WriteMemFile writes content to path in mem, creating parent directories.
func WriteMemFile(t *testing.T, mem afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, mem.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
}
