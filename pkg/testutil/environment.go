package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/cascade/pkg/paths"
	"github.com/stretchr/testify/require"
)

// EnvPrefix is the prefix of every environment variable cascade reads.
const EnvPrefix = "CASCADE_"

// TestEnvironment is an isolated process environment rooted in a
// temporary directory.
type TestEnvironment struct {
	Root       string
	HomeDir    string
	WorkDir    string
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment points HOME and the XDG directories into a fresh
// temporary tree and clears every CASCADE_ variable. Everything is restored
// when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		HomeDir:    filepath.Join(root, "home"),
		WorkDir:    filepath.Join(root, "work"),
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
		t:          t,
	}
	for _, dir := range []string{env.HomeDir, env.WorkDir} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	// Registered first so it runs after t.Setenv restores the variables.
	t.Cleanup(paths.Reload)

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	ClearEnv(t, EnvPrefix)

	paths.Reload()
	return env
}

// Path returns rel joined onto the work directory.
func (e *TestEnvironment) Path(rel string) string {
	return filepath.Join(e.WorkDir, rel)
}

// WriteFile writes content to rel under the work directory and returns the
// absolute path.
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.t.Helper()
	path := e.Path(rel)
	WriteFile(e.t, path, content)
	return path
}

// SettingsFile writes the user settings file and returns its path.
func (e *TestEnvironment) SettingsFile(content string) string {
	e.t.Helper()
	path := paths.SettingsFilePath()
	WriteFile(e.t, path, content)
	return path
}

// WriteFile writes content to an absolute path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// ClearEnv unsets every variable starting with prefix for the rest of the
// test.
func ClearEnv(t *testing.T, prefix string) {
	t.Helper()
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}
