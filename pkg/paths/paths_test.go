package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomeDirFollowsEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Cleanup(Reload)
	t.Setenv("HOME", home)
	Reload()

	assert.Equal(t, home, HomeDir())
}

func TestLogFilePath(t *testing.T) {
	state := t.TempDir()
	t.Cleanup(Reload)
	t.Setenv("XDG_STATE_HOME", state)
	Reload()

	assert.Equal(t, filepath.Join(state, "cascade", "cascade.log"), LogFilePath())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"relative", "/work", "src/a.md", "/work/src/a.md"},
		{"parent_segments", "/work/sub", "../a.md", "/work/a.md"},
		{"absolute_ignores_base", "/work", "/other/./b.md", "/other/b.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), Resolve(filepath.FromSlash(tt.base), filepath.FromSlash(tt.path)))
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		base string
		stem string
		ext  string
	}{
		{".cascaderc", ".cascaderc", ""},
		{".cascaderc.lua", ".cascaderc", "lua"},
		{"package.json", "package", "json"},
		{"archive.tar.gz", "archive.tar", "gz"},
		{"README", "README", ""},
		{"trailing.", "trailing", ""},
		{".", ".", ""},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			stem, ext := SplitName(tt.base)
			assert.Equal(t, tt.stem, stem)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestSettingsFilePath(t *testing.T) {
	configHome := t.TempDir()
	t.Cleanup(Reload)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	Reload()

	assert.Equal(t, filepath.Join(configHome, "cascade", "config.toml"), SettingsFilePath())
}
