package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/tpick/pkg/config"
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// PatternView is a pattern as written in a configuration file
type PatternView struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Regex       string `json:"regex" yaml:"regex" toml:"regex"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Action      string `json:"action" yaml:"action" toml:"action"`
	Enabled     bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
}

// ActionView is an action as written in a configuration file
type ActionView struct {
	Command             string `json:"command" yaml:"command" toml:"command"`
	Fallback            string `json:"fallback,omitempty" yaml:"fallback,omitempty" toml:"fallback,omitempty"`
	Description         string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	ResolveRelativePath bool   `json:"resolve_relative_path,omitempty" yaml:"resolve_relative_path,omitempty" toml:"resolve_relative_path,omitempty"`
	Shell               bool   `json:"shell" yaml:"shell" toml:"shell"`
}

// SettingsView is the [settings] table
type SettingsView struct {
	Shell   string `json:"shell" yaml:"shell" toml:"shell"`
	Timeout string `json:"timeout" yaml:"timeout" toml:"timeout"`
	WorkDir string `json:"work_dir,omitempty" yaml:"work_dir,omitempty" toml:"work_dir,omitempty"`
}

// ConfigView is the serializable form of a loaded configuration. Its TOML and
// YAML renderings load back into an equivalent config.Config.
type ConfigView struct {
	Settings SettingsView          `json:"settings" yaml:"settings" toml:"settings"`
	Patterns []PatternView         `json:"patterns" yaml:"patterns" toml:"patterns"`
	Actions  map[string]ActionView `json:"actions" yaml:"actions" toml:"actions"`
}

// NewConfigView converts cfg for rendering
func NewConfigView(cfg *config.Config) ConfigView {
	view := ConfigView{
		Settings: SettingsView{
			Shell:   cfg.Settings.Shell,
			Timeout: cfg.Settings.Timeout.String(),
			WorkDir: cfg.Settings.WorkDir,
		},
		Patterns: make([]PatternView, 0, len(cfg.Patterns)),
		Actions:  make(map[string]ActionView, len(cfg.Actions)),
	}

	for _, p := range cfg.Patterns {
		view.Patterns = append(view.Patterns, PatternView{
			Name:        p.Name,
			Regex:       p.Regex,
			Description: p.Description,
			Action:      p.Action,
			Enabled:     p.Enabled,
		})
	}

	for name, a := range cfg.Actions {
		view.Actions[name] = ActionView{
			Command:             a.Command,
			Fallback:            a.Fallback,
			Description:         a.Description,
			ResolveRelativePath: a.ResolveRelativePath,
			Shell:               a.Shell,
		}
	}

	return view
}

// RenderPatterns writes the configured patterns and their actions to w.
// FormatAuto is resolved against w first.
func RenderPatterns(w io.Writer, cfg *config.Config, format Format) error {
	switch Resolve(format, w) {
	case FormatTerminal:
		return renderMarkdown(w, cfg)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(NewConfigView(cfg))
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(NewConfigView(cfg)); err != nil {
			return err
		}
		return encoder.Close()
	case FormatTOML:
		encoder := toml.NewEncoder(w)
		encoder.SetIndentTables(false)
		return encoder.Encode(NewConfigView(cfg))
	default:
		return renderText(w, cfg)
	}
}

// renderText prints one aligned line per pattern: name, action, regex
func renderText(w io.Writer, cfg *config.Config) error {
	if len(cfg.Patterns) == 0 {
		_, err := fmt.Fprintln(w, "No patterns configured")
		return err
	}

	nameWidth, actionWidth := len("NAME"), len("ACTION")
	for _, p := range cfg.Patterns {
		nameWidth = max(nameWidth, runewidth.StringWidth(p.Name))
		actionWidth = max(actionWidth, runewidth.StringWidth(p.Action))
	}

	header := runewidth.FillRight("NAME", nameWidth) + "  " + runewidth.FillRight("ACTION", actionWidth) + "  REGEX"
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, p := range cfg.Patterns {
		line := runewidth.FillRight(p.Name, nameWidth) + "  " +
			runewidth.FillRight(p.Action, actionWidth) + "  " + p.Regex
		if !p.Enabled {
			line += "  (disabled)"
		} else if _, ok := cfg.FindAction(p.Action); !ok {
			line += "  (no action)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// PatternsMarkdown builds the markdown document rendered for FormatTerminal
func PatternsMarkdown(cfg *config.Config) string {
	var b strings.Builder

	b.WriteString("# Patterns\n\n")
	if len(cfg.Patterns) == 0 {
		b.WriteString("_No patterns configured._\n")
	} else {
		b.WriteString("| Name | Regex | Action | Enabled |\n")
		b.WriteString("|------|-------|--------|---------|\n")
		for _, p := range cfg.Patterns {
			enabled := "yes"
			if !p.Enabled {
				enabled = "no"
			}
			fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n",
				escapeCell(p.Name), escapeCell(p.Regex), escapeCell(p.Action), enabled)
		}
	}

	names := make([]string, 0, len(cfg.Actions))
	for name := range cfg.Actions {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) > 0 {
		b.WriteString("\n# Actions\n\n")
		b.WriteString("| Name | Command | Fallback |\n")
		b.WriteString("|------|---------|----------|\n")
		for _, name := range names {
			a := cfg.Actions[name]
			fallback := ""
			if a.HasFallback() {
				fallback = "`" + escapeCell(a.Fallback) + "`"
			}
			fmt.Fprintf(&b, "| %s | `%s` | %s |\n", escapeCell(name), escapeCell(a.Command), fallback)
		}
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func renderMarkdown(w io.Writer, cfg *config.Config) error {
	content := PatternsMarkdown(cfg)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		// Fall back to the raw markdown
		_, err = io.WriteString(w, content)
		return err
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		rendered = content
	}

	_, err = io.WriteString(w, rendered)
	return err
}
