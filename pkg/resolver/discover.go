package resolver

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/cascade/pkg/config"
	"github.com/arthur-debert/cascade/pkg/discovery"
	"github.com/arthur-debert/cascade/pkg/errors"
)

const (
	packageStem      = "package"
	packageExtension = "json"
	packageFilename  = packageStem + "." + packageExtension
	moduleExtension  = "lua"
)

// searchNames lists the file names to look for, in priority order within a
// single directory.
func (r *Resolver) searchNames() []string {
	var names []string
	if r.opts.RCName != "" {
		r.logger.Debug().Str("rcName", r.opts.RCName).Msg("Looking for rc files")
		names = append(names, r.opts.RCName, r.opts.RCName+"."+moduleExtension)
	}
	if r.opts.PackageField != "" {
		r.logger.Debug().Str("field", r.opts.PackageField).Msg("Looking for fields in package.json files")
		names = append(names, packageFilename)
	}
	return names
}

// discover merges every configuration file from the filesystem root down to
// dir, nearer files winning. With no usable file it falls back to the
// personal configuration.
func (r *Resolver) discover(ctx context.Context, dir string) (config.Config, error) {
	names := r.searchNames()
	if len(names) == 0 || !r.opts.DetectConfig {
		r.logger.Debug().Msg("Not looking for configuration files")
		return config.Config{}, nil
	}

	files, err := r.finder.FindAll(ctx, names, dir)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrDiscoveryIO) {
			return nil, err
		}
		return nil, errors.Wrapf(err, errors.ErrDiscoveryIO, "cannot search for configuration from %s", dir).
			WithDetail("directory", dir)
	}

	cfg := config.Config{}
	found := false
	for i := len(files) - 1; i >= 0; i-- {
		file := files[i]

		local, err := r.loader.Load(file.Path)
		if err != nil {
			return nil, loadError(err, file.Path)
		}

		if r.isPackageFile(file) {
			// A present null field still counts as a match and blocks the
			// personal fallback. Other non-mapping values are skipped.
			field, present := local[r.opts.PackageField]
			switch {
			case !present:
				continue
			case field.IsAbsent():
				local = config.Config{}
			case field.Kind() != config.KindMapping:
				continue
			default:
				local = field.Mapping()
			}
		}

		found = true
		r.logger.Debug().Str("path", file.Path).Msg("Using configuration file")
		config.Merge(cfg, local)
	}

	if !found {
		r.logger.Debug().Msg("Using personal configuration")
		personal, err := r.personal()
		if err != nil {
			return nil, err
		}
		config.Merge(cfg, personal)
	}

	return cfg, nil
}

func (r *Resolver) isPackageFile(file discovery.File) bool {
	return r.opts.PackageField != "" && file.Stem == packageStem && file.Extension == packageExtension
}

// personal loads the rc file and its module form from the home directory.
// Missing files are skipped.
func (r *Resolver) personal() (config.Config, error) {
	cfg := config.Config{}
	if r.homeDir == "" || r.opts.RCName == "" {
		return cfg, nil
	}

	for _, name := range []string{r.opts.RCName, r.opts.RCName + "." + moduleExtension} {
		path := filepath.Join(r.homeDir, name)
		local, err := r.loader.Load(path)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrFileNotFound) {
				continue
			}
			return nil, loadError(err, path)
		}
		r.logger.Debug().Str("path", path).Msg("Using personal configuration file")
		config.Merge(cfg, local)
	}

	return cfg, nil
}

func loadError(err error, path string) error {
	return errors.Wrapf(err, errors.ErrDiscoveredFileLoad, "cannot load discovered configuration %s", path).
		WithDetail("path", path)
}
