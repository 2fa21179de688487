package discovery

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/filesystem"
	"github.com/arthur-debert/cascade/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memTree(t *testing.T, files ...string) filesystem.FS {
	t.Helper()
	tree := make(map[string]string, len(files))
	for _, f := range files {
		tree[f] = "{}"
	}
	_, fsys := testutil.MemoryFS(t, tree)
	return fsys
}

func filePaths(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestFindAllNearestFirst(t *testing.T) {
	fsys := memTree(t,
		"/.cascaderc",
		"/work/package.json",
		"/work/.cascaderc",
		"/work/.cascaderc.lua",
		"/work/project/docs/.cascaderc",
		"/work/project/docs/readme.md",
		"/work/sibling/.cascaderc",
	)

	files, err := New(fsys).FindAll(context.Background(),
		[]string{".cascaderc", ".cascaderc.lua", "package.json"}, "/work/project/docs")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/work/project/docs/.cascaderc",
		"/work/.cascaderc",
		"/work/.cascaderc.lua",
		"/work/package.json",
		"/.cascaderc",
	}, filePaths(files))
}

func TestFindAllDescribesFiles(t *testing.T) {
	fsys := memTree(t, "/a/.cascaderc", "/a/.cascaderc.lua", "/a/package.json")

	files, err := New(fsys).FindAll(context.Background(),
		[]string{".cascaderc", ".cascaderc.lua", "package.json"}, "/a")
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, File{Path: "/a/.cascaderc", Stem: ".cascaderc", Extension: ""}, files[0])
	assert.Equal(t, File{Path: "/a/.cascaderc.lua", Stem: ".cascaderc", Extension: "lua"}, files[1])
	assert.Equal(t, File{Path: "/a/package.json", Stem: "package", Extension: "json"}, files[2])
	assert.Equal(t, "package.json", files[2].Name())
}

func TestFindAllSkipsDirectories(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/a/b/.cascaderc", 0755))
	require.NoError(t, afero.WriteFile(mem, "/a/.cascaderc", []byte("{}"), 0644))

	files, err := New(filesystem.NewAferoFS(mem)).FindAll(context.Background(), []string{".cascaderc"}, "/a/b")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/.cascaderc"}, filePaths(files))
}

func TestFindAllNoMatches(t *testing.T) {
	files, err := New(memTree(t, "/a/b/readme.md")).FindAll(context.Background(), []string{".cascaderc"}, "/a/b")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(memTree(t)).FindAll(ctx, []string{".cascaderc"}, "/a")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDiscoveryIO))
	assert.ErrorIs(t, err, context.Canceled)
}

type failingFS struct{}

func (failingFS) Stat(name string) (fs.FileInfo, error) {
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrPermission}
}

func (failingFS) ReadFile(name string) ([]byte, error) {
	return nil, fs.ErrPermission
}

func TestFindAllStatFailure(t *testing.T) {
	_, err := New(failingFS{}).FindAll(context.Background(), []string{".cascaderc"}, "/locked")
	require.Error(t, err)
	assert.Equal(t, errors.ErrDiscoveryIO, errors.GetErrorCode(err))
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "/locked/.cascaderc", errors.GetErrorDetails(err)["path"])
}

func TestFindAllWithRealFilesystem(t *testing.T) {
	root := t.TempDir()
	fsys := filesystem.NewOS()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	files, err := New(fsys).FindAll(ctx, []string{"definitely-not-a-config-file-name"}, root)
	require.NoError(t, err)
	assert.Empty(t, files)
}
