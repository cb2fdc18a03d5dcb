package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/tpick/pkg/errors"
	"github.com/arthur-debert/tpick/pkg/paths"
	"github.com/arthur-debert/tpick/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare tilde", "~", home},
		{"tilde slash", "~/notes.md", home + "/notes.md"},
		{"not cleaned", "~/a/../b/", home + "/a/../b/"},
		{"other user untouched", "~bob/file", "~bob/file"},
		{"tilde in middle untouched", "a/~/b", "a/~/b"},
		{"absolute untouched", "/etc/hosts", "/etc/hosts"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ExpandHome(tt.in))
		})
	}
}

func TestWorkDir(t *testing.T) {
	t.Run("configured wins", func(t *testing.T) {
		t.Setenv(paths.EnvWorkDir, "/from/env")
		dir, err := paths.WorkDir("/from/config")
		require.NoError(t, err)
		assert.Equal(t, "/from/config", dir)
	})

	t.Run("env when not configured", func(t *testing.T) {
		t.Setenv(paths.EnvWorkDir, "/from/env")
		dir, err := paths.WorkDir("")
		require.NoError(t, err)
		assert.Equal(t, "/from/env", dir)
	})

	t.Run("defaults to cwd", func(t *testing.T) {
		t.Setenv(paths.EnvWorkDir, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)

		dir, err := paths.WorkDir("")
		require.NoError(t, err)
		assert.Equal(t, cwd, dir)
	})
}

func TestResolvePath(t *testing.T) {
	workDir := t.TempDir()
	existing := filepath.Join(workDir, "test.txt")
	require.NoError(t, os.WriteFile(existing, nil, 0644))

	t.Run("absolute path unchanged", func(t *testing.T) {
		assert.Equal(t, "/absolute/path/to/file.txt", paths.ResolvePath("/absolute/path/to/file.txt", workDir))
	})

	t.Run("relative path that exists", func(t *testing.T) {
		assert.Equal(t, existing, paths.ResolvePath("test.txt", workDir))
	})

	t.Run("relative path that does not exist", func(t *testing.T) {
		assert.Equal(t, "nonexistent.txt", paths.ResolvePath("nonexistent.txt", workDir))
	})

	t.Run("empty work dir", func(t *testing.T) {
		assert.Equal(t, "test.txt", paths.ResolvePath("test.txt", ""))
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv(paths.EnvPatternConfig, "/env/config.toml")
		got, err := paths.FindConfigFile("/flag/config.toml")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.toml", got)
	})

	t.Run("env path expands tilde", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv(paths.EnvPatternConfig, "~/.config/tpick.toml")

		got, err := paths.FindConfigFile("")
		require.NoError(t, err)
		assert.Equal(t, home+"/.config/tpick.toml", got)
	})

	t.Run("xdg config home search", func(t *testing.T) {
		env := testutil.IsolateEnv(t)
		target := testutil.CreateFile(t, env.ConfigHome, "tpick/config.yaml", "patterns: []\n")

		got, err := paths.FindConfigFile("")
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("toml preferred over yaml", func(t *testing.T) {
		env := testutil.IsolateEnv(t)
		testutil.CreateFile(t, env.ConfigHome, "tpick/config.yaml", "patterns: []\n")
		target := testutil.CreateFile(t, env.ConfigHome, "tpick/config.toml", "")

		got, err := paths.FindConfigFile("")
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("nothing found", func(t *testing.T) {
		testutil.IsolateEnv(t)

		_, err := paths.FindConfigFile("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestDefaultConfigPath(t *testing.T) {
	env := testutil.IsolateEnv(t)

	got, err := paths.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, env.ConfigPath("config.toml"), got)
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "tpick", "config.toml"), got)
}
