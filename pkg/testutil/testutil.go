// pkg/testutil/testutil.go
// DEPENDENCIES: adrg/xdg
// PURPOSE: Isolate tests from the user's configuration and state directories

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// Env describes the isolated directories set up by IsolateEnv
type Env struct {
	ConfigHome string
	StateHome  string
	WorkDir    string
}

// isolatedVars are cleared so a developer's shell cannot leak into tests
var isolatedVars = []string{
	"PATTERN_CONFIG",
	"WORK_DIR",
	"TPICK_SHELL",
	"TPICK_TIMEOUT",
	"TPICK_WORK_DIR",
}

// IsolateEnv points the XDG base directories at fresh temp dirs, clears
// tpick's environment variables and reloads xdg. Everything is restored when
// the test completes.
func IsolateEnv(t *testing.T) Env {
	t.Helper()

	env := Env{
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		WorkDir:    t.TempDir(),
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")
	for _, name := range isolatedVars {
		unsetenv(t, name)
	}

	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

// unsetenv removes name for the duration of the test. t.Setenv registers the
// restore of the previous value.
func unsetenv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	if err := os.Unsetenv(name); err != nil {
		t.Fatalf("Failed to unset %s: %v", name, err)
	}
}

// ConfigPath returns where the XDG search expects name for tpick
func (e Env) ConfigPath(name string) string {
	return filepath.Join(e.ConfigHome, "tpick", name)
}

// CreateFile creates a file with the given content in the specified directory.
// Parent directories are created as needed. It fails the test on error.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}
