package loader

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/cascade/pkg/config"
	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/filesystem"
	"github.com/arthur-debert/cascade/pkg/logging"
	"github.com/arthur-debert/cascade/pkg/paths"
	"github.com/arthur-debert/cascade/pkg/registry"
)

// Parser decodes the contents of one file into a root configuration map.
// name is used in error messages only.
type Parser func(name string, data []byte) (map[string]any, error)

// DefaultLuaTimeout bounds the evaluation of a Lua configuration module.
const DefaultLuaTimeout = 2 * time.Second

// Loader reads configuration files through a filesystem.
type Loader struct {
	fs         filesystem.FS
	formats    registry.Registry[Parser]
	plain      string
	luaTimeout time.Duration
}

// Option configures a Loader.
type Option func(*Loader)

// WithLuaTimeout bounds how long a Lua module may run.
func WithLuaTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.luaTimeout = d
	}
}

// WithPlainFormat selects the format used for files without an extension.
// The default is "json".
func WithPlainFormat(ext string) Option {
	return func(l *Loader) {
		l.plain = ext
	}
}

// New creates a Loader with the built-in formats registered.
func New(fsys filesystem.FS, opts ...Option) *Loader {
	l := &Loader{
		fs:         fsys,
		formats:    registry.New[Parser](),
		plain:      "json",
		luaTimeout: DefaultLuaTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}

	registry.MustRegister(l.formats, "json", parseJSON)
	registry.MustRegister(l.formats, "yaml", parseYAML)
	registry.MustRegister(l.formats, "yml", parseYAML)
	registry.MustRegister(l.formats, "toml", parseTOML)
	registry.MustRegister(l.formats, "lua", newLuaParser(l.luaTimeout))

	return l
}

// Register adds or replaces the parser for an extension (without the dot).
func (l *Loader) Register(ext string, parser Parser) error {
	return l.formats.Set(strings.ToLower(ext), parser)
}

// Formats lists the registered extensions.
func (l *Loader) Formats() []string {
	return l.formats.List()
}

// Load reads and parses the configuration file at path. Every error names
// the file; a missing file is reported as ErrFileNotFound and still
// satisfies errors.Is(err, fs.ErrNotExist).
func (l *Loader) Load(path string) (config.Config, error) {
	logger := logging.GetLogger("loader")

	_, ext := paths.SplitName(filepath.Base(path))
	ext = strings.ToLower(ext)
	if ext == "" {
		ext = l.plain
	}

	parser, err := l.formats.Get(ext)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrUnsupportedFormat, "cannot read configuration file %s", path).
			WithDetail("path", path).
			WithDetail("formats", l.formats.List())
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		code := errors.ErrConfigLoad
		if errors.Is(err, fs.ErrNotExist) {
			code = errors.ErrFileNotFound
		}
		return nil, errors.Wrapf(err, code, "cannot read configuration file %s", path).
			WithDetail("path", path)
	}

	raw, err := parser(path, data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot read configuration file %s", path).
			WithDetail("path", path).
			WithDetail("format", ext)
	}

	logger.Trace().Str("path", path).Str("format", ext).Int("keys", len(raw)).Msg("Loaded configuration file")
	return config.FromMap(raw), nil
}
