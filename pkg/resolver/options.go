package resolver

import (
	"github.com/arthur-debert/cascade/pkg/config"
	"github.com/arthur-debert/cascade/pkg/discovery"
	"github.com/arthur-debert/cascade/pkg/filesystem"
	"github.com/mitchellh/copystructure"
	"github.com/rs/zerolog"
)

// Options configures a Resolver. It is copied by New and never changes
// afterwards.
type Options struct {
	// Cwd anchors relative file and override paths. Empty means the process
	// working directory.
	Cwd string `koanf:"cwd"`

	// DetectConfig enables the upward search for configuration files.
	DetectConfig bool `koanf:"detect_config"`

	// RCName is the rc file base name, e.g. ".cascaderc". Its module form
	// RCName+".lua" is searched too.
	RCName string `koanf:"rc_name"`

	// RCPath is an override file loaded once by New.
	RCPath string `koanf:"rc_path"`

	// PackageField names the package.json field holding configuration.
	PackageField string `koanf:"package_field"`

	// Settings, Plugins and Output take precedence over every file.
	Settings map[string]any `koanf:"settings"`
	Plugins  any            `koanf:"plugins"`
	Output   any            `koanf:"output"`
}

// cloneRaw deep-copies decoded settings data so callers cannot reach the
// resolver's copy. Values copystructure cannot copy are returned as is.
func cloneRaw(v any) any {
	if v == nil {
		return nil
	}
	out, err := copystructure.Copy(v)
	if err != nil {
		return v
	}
	return out
}

func cloneSettings(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out, _ := cloneRaw(m).(map[string]any)
	return out
}

// Loader reads one configuration file.
type Loader interface {
	Load(path string) (config.Config, error)
}

// Option customizes the collaborators of a Resolver.
type Option func(*Resolver)

// WithFS sets the filesystem used by the default finder and loader.
func WithFS(fsys filesystem.FS) Option {
	return func(r *Resolver) {
		r.fs = fsys
	}
}

// WithFinder replaces the directory walker.
func WithFinder(finder discovery.Finder) Option {
	return func(r *Resolver) {
		r.finder = finder
	}
}

// WithLoader replaces the file loader.
func WithLoader(l Loader) Option {
	return func(r *Resolver) {
		r.loader = l
	}
}

// WithHomeDir sets where the personal configuration is looked up.
func WithHomeDir(dir string) Option {
	return func(r *Resolver) {
		r.homeDir = dir
		r.homeDirSet = true
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
		r.loggerSet = true
	}
}
