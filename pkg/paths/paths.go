package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/tpick/pkg/errors"
)

// Environment variable names
const (
	// EnvPatternConfig points at the configuration file
	EnvPatternConfig = "PATTERN_CONFIG"

	// EnvWorkDir is the base directory for relative path resolution
	EnvWorkDir = "WORK_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// AppDirName is the directory name used under the XDG base directories
const AppDirName = "tpick"

// ConfigFileNames are the file names searched under $XDG_CONFIG_HOME/tpick,
// in order.
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome expands a leading ~ to the home directory.
// Only "~" and "~/..." are expanded; "~user" forms and paths whose home
// cannot be determined are returned unchanged. The rest of the path is not
// cleaned.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	return homeDir + path[1:]
}

// WorkDir returns the base directory for relative path resolution:
// the configured value if set, then $WORK_DIR, then the current directory.
func WorkDir(configured string) (string, error) {
	if configured != "" {
		return ExpandHome(configured), nil
	}

	if dir := os.Getenv(EnvWorkDir); dir != "" {
		return ExpandHome(dir), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, nil
}

// ResolvePath joins a relative path with workDir when the joined path exists.
// Absolute paths, and relative paths that do not exist under workDir, are
// returned unchanged.
func ResolvePath(path, workDir string) string {
	if path == "" || filepath.IsAbs(path) || workDir == "" {
		return path
	}

	candidate := filepath.Join(workDir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return path
}

// FindConfigFile locates the configuration file using the following priority:
// 1. explicit (the --config flag), if non-empty
// 2. PATTERN_CONFIG environment variable
// 3. $XDG_CONFIG_HOME/tpick/config.{toml,yaml,yml}, first that exists
//
// Only the XDG search checks for existence; an explicit or env path is
// returned as given (after ~ expansion) so the loader reports read errors.
func FindConfigFile(explicit string) (string, error) {
	if explicit != "" {
		return ExpandHome(explicit), nil
	}

	if envPath := os.Getenv(EnvPatternConfig); envPath != "" {
		return ExpandHome(envPath), nil
	}

	for _, name := range ConfigFileNames {
		if path, err := xdg.SearchConfigFile(filepath.Join(AppDirName, name)); err == nil {
			return path, nil
		}
	}

	return "", errors.Newf(errors.ErrConfigLoad,
		"%s environment variable not set and no config file found", EnvPatternConfig)
}

// DefaultConfigPath returns where gen-config --write places a new config file
func DefaultConfigPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(AppDirName, ConfigFileNames[0]))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve config path")
	}
	return path, nil
}
