package config

import "time"

// Config is the loaded configuration. It is built once per invocation and
// must not be mutated after Load returns.
type Config struct {
	Patterns []Pattern
	Actions  map[string]Action
	Settings Settings
}

// Pattern is a named, enableable regular expression plus the action it triggers
type Pattern struct {
	Name        string
	Regex       string
	Description string
	Action      string
	Enabled     bool
}

// Action is a command template plus an optional fallback template.
// Both templates use the {value} placeholder.
type Action struct {
	Command     string
	Fallback    string
	Description string

	// ResolveRelativePath joins relative values with the work dir when the
	// resulting path exists
	ResolveRelativePath bool

	// Shell runs the rendered command through Settings.Shell. When false the
	// command is split into words and executed directly.
	Shell bool
}

// HasFallback reports whether a fallback template is configured
func (a Action) HasFallback() bool {
	return a.Fallback != ""
}

// Settings holds the process-wide knobs
type Settings struct {
	// Shell is the interpreter invoked as `<shell> -c <command>`
	Shell string

	// Timeout bounds each command attempt. Zero waits forever.
	Timeout time.Duration

	// WorkDir is the base for relative path resolution. Empty means
	// $WORK_DIR, then the current directory.
	WorkDir string
}

// FindPattern returns the first pattern with the given name.
// Names are not required to be unique; configuration order decides.
func (c *Config) FindPattern(name string) (Pattern, bool) {
	for _, p := range c.Patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// FindAction returns the action registered under name
func (c *Config) FindAction(name string) (Action, bool) {
	a, ok := c.Actions[name]
	return a, ok
}

// EnabledPatterns returns the enabled patterns in configuration order
func (c *Config) EnabledPatterns() []Pattern {
	enabled := make([]Pattern, 0, len(c.Patterns))
	for _, p := range c.Patterns {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	return enabled
}
