// Package settings assembles resolver options from layered sources.
//
// Layers, lowest to highest precedence:
//
//  1. built-in defaults
//  2. a settings file (the --config path, or config.toml under
//     XDG_CONFIG_HOME/cascade when present), TOML unless it ends in
//     .yaml or .yml
//  3. CASCADE_* environment variables
//  4. command line flags
package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/logging"
	"github.com/arthur-debert/cascade/pkg/paths"
	"github.com/arthur-debert/cascade/pkg/resolver"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read as settings.
const EnvPrefix = "CASCADE_"

// Setting keys.
const (
	KeyCwd          = "cwd"
	KeyDetectConfig = "detect_config"
	KeyRCName       = "rc_name"
	KeyRCPath       = "rc_path"
	KeyPackageField = "package_field"
	KeySettings     = "settings"
	KeyPlugins      = "plugins"
	KeyOutput       = "output"
)

// Defaults are the values used when no other layer sets a key.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyDetectConfig: true,
		KeyRCName:       ".cascaderc",
		KeyPackageField: "cascadeConfig",
	}
}

// Sources describes where Load reads from.
type Sources struct {
	// File is an explicit settings file. It must exist. When empty, the
	// default settings file is used if present.
	File string

	// Flags are command line values keyed by setting key. Dotted keys such
	// as "settings.bullet" address nested values.
	Flags map[string]interface{}
}

// Load merges every layer and decodes the result into resolver options.
func Load(src Sources) (resolver.Options, error) {
	logger := logging.GetLogger("settings")
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return resolver.Options{}, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load default settings")
	}

	settingsFile, err := settingsFilePath(src.File)
	if err != nil {
		return resolver.Options{}, err
	}
	if settingsFile != "" {
		logger.Debug().Str("path", settingsFile).Msg("Loading settings file")
		if err := k.Load(file.Provider(settingsFile), parserFor(settingsFile)); err != nil {
			return resolver.Options{}, errors.Wrapf(err, errors.ErrSettingsLoad, "failed to load settings from %s", settingsFile).
				WithDetail("path", settingsFile)
		}
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return resolver.Options{}, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load environment settings")
	}

	if len(src.Flags) > 0 {
		if err := k.Load(confmap.Provider(src.Flags, "."), nil); err != nil {
			return resolver.Options{}, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load flag settings")
		}
	}

	var opts resolver.Options
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &opts,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &opts, unmarshalConf); err != nil {
		return resolver.Options{}, errors.Wrap(err, errors.ErrSettingsLoad, "failed to decode settings")
	}

	logger.Debug().
		Bool("detectConfig", opts.DetectConfig).
		Str("rcName", opts.RCName).
		Str("rcPath", opts.RCPath).
		Str("packageField", opts.PackageField).
		Msg("Settings loaded")

	return opts, nil
}

// parserFor picks the koanf parser from the file extension.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return toml.Parser()
	}
}

// settingsFilePath picks the settings file to read, or "" for none.
func settingsFilePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrSettingsLoad, "cannot read settings file %s", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	path := paths.SettingsFilePath()
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}
