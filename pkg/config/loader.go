package config

import (
	stderrors "errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/tpick/pkg/errors"
	"github.com/arthur-debert/tpick/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// KeyDelim separates nested keys. Action names are free-form and may
// contain dots, so the koanf default "." is not usable.
const KeyDelim = "::"

// EnvPrefix is the prefix of environment variables that override [settings]
const EnvPrefix = "TPICK_"

// DefaultShell is used when the configuration leaves settings.shell empty
const DefaultShell = "sh"

// Format identifies the configuration file syntax
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the parser from the file extension.
// .yaml and .yml are YAML, everything else is TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func (f Format) parser() koanf.Parser {
	if f == FormatYAML {
		return yaml.Parser()
	}
	return toml.Parser()
}

// SettingsKey builds the koanf key for a [settings] field, for use in
// LoadOptions.Overrides
func SettingsKey(name string) string {
	return "settings" + KeyDelim + name
}

// LoadOptions controls Load
type LoadOptions struct {
	// Path of the configuration file
	Path string

	// Overrides are applied last, keyed with SettingsKey
	Overrides map[string]interface{}
}

type fileConfig struct {
	Patterns []filePattern        `koanf:"patterns"`
	Actions  map[string]fileAction `koanf:"actions"`
	Settings fileSettings          `koanf:"settings"`
}

type filePattern struct {
	Name        string `koanf:"name"`
	Regex       string `koanf:"regex"`
	Description string `koanf:"description"`
	Action      string `koanf:"action"`
	Enabled     *bool  `koanf:"enabled"`
}

type fileAction struct {
	Command             string `koanf:"command"`
	Fallback            string `koanf:"fallback"`
	Description         string `koanf:"description"`
	ResolveRelativePath bool   `koanf:"resolve_relative_path"`
	Shell               *bool  `koanf:"shell"`
}

type fileSettings struct {
	Shell   string        `koanf:"shell"`
	Timeout time.Duration `koanf:"timeout"`
	WorkDir string        `koanf:"work_dir"`
}

// Load reads the configuration file at opts.Path and layers, in order:
// embedded defaults, the file, TPICK_* environment variables, opts.Overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config").With().Str("path", opts.Path).Logger()

	if opts.Path == "" {
		return nil, errors.New(errors.ErrConfigLoad, "no configuration file given")
	}

	if _, err := os.Stat(opts.Path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"cannot read configuration %s", opts.Path).WithDetail("path", opts.Path)
	}

	k, err := newDefaults()
	if err != nil {
		return nil, err
	}

	if err := k.Load(file.Provider(opts.Path), FormatForPath(opts.Path).parser()); err != nil {
		code := errors.ErrConfigParse
		if stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, fs.ErrPermission) {
			code = errors.ErrConfigLoad
		}
		return nil, errors.Wrapf(err, code, "failed to load configuration %s", opts.Path).
			WithDetail("path", opts.Path)
	}

	cfg, err := finish(k, opts.Overrides)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("patterns", len(cfg.Patterns)).
		Int("actions", len(cfg.Actions)).
		Msg("Configuration loaded")

	return cfg, nil
}

// LoadFromBytes parses configuration content directly. Environment overrides
// still apply.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	k, err := newDefaults()
	if err != nil {
		return nil, err
	}

	if err := k.Load(&rawBytesProvider{bytes: data}, format.parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s configuration", format)
	}

	return finish(k, nil)
}

func newDefaults() (*koanf.Koanf, error) {
	k := koanf.New(KeyDelim)
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}
	return k, nil
}

func finish(k *koanf.Koanf, overrides map[string]interface{}) (*Config, error) {
	err := k.Load(env.ProviderWithValue(EnvPrefix, KeyDelim, envToKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, KeyDelim), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var fc fileConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &fc,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				durationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &fc, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return build(fc)
}

// envToKey maps TPICK_SHELL, TPICK_TIMEOUT and TPICK_WORK_DIR onto
// [settings]. Other TPICK_ variables and empty values are ignored.
func envToKey(s, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}

	name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch name {
	case "shell", "timeout", "work_dir":
		return SettingsKey(name), value
	default:
		return "", nil
	}
}

// durationHookFunc decodes durations from strings such as "1.5s". Bare
// numbers, as TOML/YAML numbers or numeric strings, count seconds.
func durationHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		if d, ok := data.(time.Duration); ok {
			return d, nil
		}

		v := reflect.ValueOf(data)
		switch v.Kind() {
		case reflect.String:
			if secs, err := strconv.ParseFloat(v.String(), 64); err == nil && !math.IsInf(secs, 0) && !math.IsNaN(secs) {
				return seconds(secs), nil
			}
			return time.ParseDuration(v.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return seconds(float64(v.Int())), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return seconds(float64(v.Uint())), nil
		case reflect.Float32, reflect.Float64:
			return seconds(v.Float()), nil
		}
		return data, nil
	}
}

func seconds(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}

func build(fc fileConfig) (*Config, error) {
	logger := logging.GetLogger("config")

	cfg := &Config{
		Patterns: make([]Pattern, 0, len(fc.Patterns)),
		Actions:  make(map[string]Action, len(fc.Actions)),
		Settings: Settings{
			Shell:   fc.Settings.Shell,
			Timeout: fc.Settings.Timeout,
			WorkDir: fc.Settings.WorkDir,
		},
	}

	if cfg.Settings.Shell == "" {
		cfg.Settings.Shell = DefaultShell
	}
	if cfg.Settings.Timeout < 0 {
		return nil, errors.Newf(errors.ErrConfigValid,
			"settings.timeout must not be negative, got %s", cfg.Settings.Timeout)
	}

	seen := make(map[string]bool, len(fc.Patterns))
	for i, p := range fc.Patterns {
		if p.Name == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "pattern %d has no name", i)
		}
		if seen[p.Name] {
			logger.Debug().Str("pattern", p.Name).Msg("Duplicate pattern name, first definition wins")
		}
		seen[p.Name] = true

		enabled := true
		if p.Enabled != nil {
			enabled = *p.Enabled
		}
		cfg.Patterns = append(cfg.Patterns, Pattern{
			Name:        p.Name,
			Regex:       p.Regex,
			Description: p.Description,
			Action:      p.Action,
			Enabled:     enabled,
		})
	}

	for name, a := range fc.Actions {
		if a.Command == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "action %q has no command", name)
		}
		shell := true
		if a.Shell != nil {
			shell = *a.Shell
		}
		cfg.Actions[name] = Action{
			Command:             a.Command,
			Fallback:            a.Fallback,
			Description:         a.Description,
			ResolveRelativePath: a.ResolveRelativePath,
			Shell:               shell,
		}
	}

	for _, p := range cfg.Patterns {
		if _, ok := cfg.Actions[p.Action]; !ok {
			logger.Debug().
				Str("pattern", p.Name).
				Str("action", p.Action).
				Msg("Pattern refers to an unregistered action")
		}
	}

	return cfg, nil
}
