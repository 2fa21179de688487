// Package discovery finds configuration files by walking from a directory
// up to the filesystem root.
package discovery

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/filesystem"
	"github.com/arthur-debert/cascade/pkg/logging"
	"github.com/arthur-debert/cascade/pkg/paths"
)

// File is one matched configuration file.
type File struct {
	// Path is the absolute location of the file.
	Path string
	// Stem is the base name without its extension (".cascaderc", "package").
	Stem string
	// Extension has no leading dot and is empty for plain rc files.
	Extension string
}

// Name returns the base name of the file.
func (f File) Name() string {
	return filepath.Base(f.Path)
}

// Finder locates configuration files.
type Finder interface {
	// FindAll returns every file named in names found in dir or any of its
	// ancestors, nearest directory first and, within one directory, in the
	// order of names.
	FindAll(ctx context.Context, names []string, dir string) ([]File, error)
}

// Walker is the filesystem-backed Finder.
type Walker struct {
	fs filesystem.FS
}

// New creates a Walker over fsys.
func New(fsys filesystem.FS) *Walker {
	return &Walker{fs: fsys}
}

// FindAll implements Finder. Directories and missing entries are skipped;
// any other stat failure aborts the walk with ErrDiscoveryIO, as does a
// cancelled context.
func (w *Walker) FindAll(ctx context.Context, names []string, dir string) ([]File, error) {
	logger := logging.GetLogger("discovery")

	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscoveryIO, "cannot resolve directory %s", dir)
	}

	var files []File
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrDiscoveryIO, "configuration search interrupted").
				WithDetail("directory", dir)
		}

		for _, name := range names {
			path := filepath.Join(dir, name)
			info, err := w.fs.Stat(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, errors.Wrapf(err, errors.ErrDiscoveryIO, "cannot check %s", path).
					WithDetail("path", path)
			}
			if info.IsDir() {
				continue
			}

			stem, ext := paths.SplitName(name)
			files = append(files, File{Path: path, Stem: stem, Extension: ext})
			logger.Trace().Str("path", path).Msg("Found configuration file")
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return files, nil
}
