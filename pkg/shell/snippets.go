// Package shell renders the integration snippets printed by `tpick snippet`.
//
// The tmux snippet binds a key that captures the current pane, lets fzf pick
// a mention and executes it. The shell snippets define a `tp` function that
// does the same for piped input.
package shell

import (
	"embed"
	"strings"
	"text/template"

	"github.com/arthur-debert/tpick/pkg/errors"
)

//go:embed snippets/*.tmpl
var snippetFS embed.FS

// Supported snippet targets
const (
	TargetTmux = "tmux"
	TargetBash = "bash"
	TargetZsh  = "zsh"
	TargetFish = "fish"
)

// Targets lists the accepted targets in help order
var Targets = []string{TargetTmux, TargetBash, TargetZsh, TargetFish}

// DefaultKey is the tmux key bound by the tmux snippet
const DefaultKey = "u"

// Options fill in the snippet templates
type Options struct {
	// Binary is the command used to invoke tpick
	Binary string

	// Key is the tmux key binding, used by the tmux target only
	Key string
}

var templates = template.Must(template.ParseFS(snippetFS, "snippets/*.tmpl"))

// Snippet returns the integration snippet for target
func Snippet(target string, opts Options) (string, error) {
	if opts.Binary == "" {
		opts.Binary = "tpick"
	}
	if opts.Key == "" {
		opts.Key = DefaultKey
	}

	var name string
	switch target {
	case TargetTmux:
		name = "tmux.tmpl"
	case TargetBash, TargetZsh:
		name = "posix.tmpl"
	case TargetFish:
		name = "fish.tmpl"
	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"unknown snippet target %q, expected one of %s", target, strings.Join(Targets, ", "))
	}

	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, opts); err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to render %s snippet", target)
	}
	return b.String(), nil
}
