package resolver

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/arthur-debert/cascade/pkg/config"
	"github.com/arthur-debert/cascade/pkg/discovery"
	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/filesystem"
	"github.com/arthur-debert/cascade/pkg/loader"
	"github.com/arthur-debert/cascade/pkg/logging"
	"github.com/arthur-debert/cascade/pkg/paths"
	"github.com/rs/zerolog"
)

// Callback receives the outcome of a resolution. On failure cfg is nil.
// A successful cfg may be shared with other callers and must be treated as
// read-only.
type Callback func(cfg config.Config, err error)

// slot is the cache entry of one directory: pending while waiters is
// non-nil, resolved once cfg is set.
type slot struct {
	waiters  []Callback
	cfg      config.Config
	resolved bool
}

// Resolver resolves and caches configuration per directory.
type Resolver struct {
	opts Options

	fs         filesystem.FS
	finder     discovery.Finder
	loader     Loader
	homeDir    string
	homeDirSet bool
	logger     zerolog.Logger
	loggerSet  bool

	override config.Config
	explicit config.Config

	mu    sync.Mutex
	cache map[string]*slot
}

// New creates a Resolver. When opts.RCPath is set the override file is
// loaded now; a failure returns an ErrOverrideLoad error naming the path.
func New(opts Options, options ...Option) (*Resolver, error) {
	r := &Resolver{
		opts:  opts,
		cache: make(map[string]*slot),
	}
	for _, option := range options {
		option(r)
	}

	if r.fs == nil {
		r.fs = filesystem.NewOS()
	}
	if r.finder == nil {
		r.finder = discovery.New(r.fs)
	}
	if r.loader == nil {
		r.loader = loader.New(r.fs)
	}
	if !r.homeDirSet {
		r.homeDir = paths.HomeDir()
	}
	if !r.loggerSet {
		r.logger = logging.GetLogger("resolver")
	}

	// An empty Cwd becomes the process working directory. Cache keys are
	// always absolute.
	cwd, err := filepath.Abs(r.opts.Cwd)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot determine working directory %q", r.opts.Cwd)
	}
	r.opts.Cwd = cwd
	r.opts.Settings = cloneSettings(r.opts.Settings)
	r.opts.Plugins = cloneRaw(r.opts.Plugins)
	r.opts.Output = cloneRaw(r.opts.Output)

	r.override = config.Config{}
	if r.opts.RCPath != "" {
		path := paths.Resolve(r.opts.Cwd, r.opts.RCPath)
		r.logger.Debug().Str("path", path).Msg("Using command line configuration")

		override, err := r.loader.Load(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrOverrideLoad, "cannot load override configuration %s", path).
				WithDetail("path", path)
		}
		r.override = override
	}

	r.explicit = explicitConfig(r.opts)

	return r, nil
}

// Options returns a copy of the options the resolver runs with, with Cwd
// made absolute.
func (r *Resolver) Options() Options {
	opts := r.opts
	opts.Settings = cloneSettings(opts.Settings)
	opts.Plugins = cloneRaw(opts.Plugins)
	opts.Output = cloneRaw(opts.Output)
	return opts
}

// Resolve computes the configuration for filePath and passes it to cb.
// Relative paths are taken from Options.Cwd. cb runs on the caller's
// goroutine when the directory is already resolved, and on the discovery
// goroutine otherwise.
func (r *Resolver) Resolve(filePath string, cb Callback) {
	dir := r.directoryOf(filePath)
	r.logger.Debug().Str("file", filePath).Msg("Constructing configuration")

	r.mu.Lock()
	s, ok := r.cache[dir]
	switch {
	case ok && s.resolved:
		cfg := s.cfg
		r.mu.Unlock()
		r.logger.Debug().Str("directory", dir).Msg("Using configuration from cache")
		cb(cfg, nil)
		return
	case ok:
		s.waiters = append(s.waiters, cb)
		r.mu.Unlock()
		return
	}
	r.cache[dir] = &slot{waiters: []Callback{cb}}
	r.mu.Unlock()

	go r.resolveDirectory(dir)
}

// Get is a blocking Resolve. ctx bounds only the wait: a walk already in
// progress keeps running and still fills the cache.
func (r *Resolver) Get(ctx context.Context, filePath string) (config.Config, error) {
	type result struct {
		cfg config.Config
		err error
	}

	done := make(chan result, 1)
	r.Resolve(filePath, func(cfg config.Config, err error) {
		done <- result{cfg: cfg, err: err}
	})

	select {
	case res := <-done:
		return res.cfg, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Directories returns the directories with a resolved configuration, sorted.
func (r *Resolver) Directories() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	dirs := make([]string, 0, len(r.cache))
	for dir, s := range r.cache {
		if s.resolved {
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs
}

func (r *Resolver) directoryOf(filePath string) string {
	return filepath.Dir(paths.Resolve(r.opts.Cwd, filePath))
}

// resolveDirectory runs discovery for dir, settles its slot and drains the
// queue in arrival order.
func (r *Resolver) resolveDirectory(dir string) {
	defer logging.LogOperationStart(r.logger, "resolve "+dir)()

	var cfg config.Config
	discovered, err := r.discover(context.Background(), dir)
	if err == nil {
		cfg = config.Merge(config.Config{}, discovered)
		config.Merge(cfg, r.override)
		config.Merge(cfg, r.explicit)
	} else {
		r.logger.Debug().Err(err).Str("directory", dir).Msg("Discovery failed")
	}

	r.mu.Lock()
	s := r.cache[dir]
	waiters := s.waiters
	if err != nil {
		delete(r.cache, dir)
	} else {
		s.cfg = cfg
		s.resolved = true
		s.waiters = nil
	}
	r.mu.Unlock()

	for _, cb := range waiters {
		cb(cfg, err)
	}
}

// explicitConfig builds the highest-precedence layer from the options,
// leaving out whatever was not given.
func explicitConfig(opts Options) config.Config {
	raw := make(map[string]any, 3)
	if opts.Settings != nil {
		raw["settings"] = opts.Settings
	}
	if opts.Plugins != nil {
		raw[config.PluginKey] = opts.Plugins
	}
	if opts.Output != nil {
		raw["output"] = opts.Output
	}
	return config.FromMap(raw)
}
