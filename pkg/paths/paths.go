// Package paths locates the per-user directories cascade reads from and
// writes to. Home and state locations come from the XDG Base Directory
// specification via github.com/adrg/xdg.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppName is the directory name used under XDG locations
	AppName = "cascade"

	// LogFileName is the name of the log file
	LogFileName = "cascade.log"

	// SettingsFileName is the name of the optional settings file
	SettingsFileName = "config.toml"
)

// HomeDir returns the current user's home directory, or "" when unknown.
func HomeDir() string {
	return xdg.Home
}

// LogFilePath returns the log file location under XDG_STATE_HOME.
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppName, LogFileName)
}

// Reload re-reads the XDG environment variables. Tests that change HOME or
// XDG_* through t.Setenv must call it before resolving locations.
func Reload() {
	xdg.Reload()
}

// Resolve returns p as an absolute, cleaned path, interpreting relative
// paths against base.
func Resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// SplitName splits a base name into stem and extension (without the dot).
// A leading dot belongs to the stem, so ".cascaderc" has no extension and
// ".cascaderc.lua" has stem ".cascaderc" and extension "lua".
func SplitName(base string) (stem, ext string) {
	prefix := ""
	rest := base
	if strings.HasPrefix(rest, ".") {
		prefix, rest = ".", rest[1:]
	}

	i := strings.LastIndex(rest, ".")
	if i <= 0 {
		return base, ""
	}
	return prefix + rest[:i], rest[i+1:]
}

// SettingsFilePath returns the default settings file under XDG_CONFIG_HOME.
func SettingsFilePath() string {
	return filepath.Join(xdg.ConfigHome, AppName, SettingsFileName)
}
