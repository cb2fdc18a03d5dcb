// Package resolver maps a selection token to the action configured for its type.
package resolver

import (
	"github.com/arthur-debert/tpick/pkg/config"
	"github.com/arthur-debert/tpick/pkg/errors"
	"github.com/arthur-debert/tpick/pkg/logging"
	"github.com/arthur-debert/tpick/pkg/selection"
)

// Resolution is the result of a successful lookup
type Resolution struct {
	Action     config.Action
	ActionName string
	Pattern    config.Pattern
	Value      string
}

// Resolve decodes token and looks up its action. It reports false when the
// token does not decode, the value is empty, no pattern has the decoded type,
// or the pattern's action is not registered.
func Resolve(token string, cfg *config.Config) (Resolution, bool) {
	res, err := resolve(token, cfg)
	return res, err == nil
}

// Explain returns nil if token resolves, otherwise an INVALID_SELECTION or
// UNRESOLVED_ACTION error describing the first failed step.
func Explain(token string, cfg *config.Config) error {
	_, err := resolve(token, cfg)
	return err
}

func resolve(token string, cfg *config.Config) (Resolution, error) {
	logger := logging.GetLogger("resolver")

	sel, ok := selection.Decode(token)
	if !ok {
		logger.Debug().Str("token", token).Msg("Token does not decode")
		return Resolution{}, errors.New(errors.ErrInvalidSelection,
			"selection must contain exactly one tab").WithDetail("token", token)
	}

	if sel.Value == "" {
		logger.Debug().Str("type", sel.Type).Msg("Selection has an empty value")
		return Resolution{}, errors.New(errors.ErrUnresolvedAction,
			"selection has an empty value").WithDetail("type", sel.Type)
	}

	pattern, ok := cfg.FindPattern(sel.Type)
	if !ok {
		logger.Debug().Str("type", sel.Type).Msg("No pattern for type")
		return Resolution{}, errors.Newf(errors.ErrUnresolvedAction,
			"no pattern named %q", sel.Type).WithDetail("type", sel.Type)
	}

	action, ok := cfg.FindAction(pattern.Action)
	if !ok {
		logger.Debug().
			Str("type", sel.Type).
			Str("action", pattern.Action).
			Msg("Pattern action is not registered")
		return Resolution{}, errors.Newf(errors.ErrUnresolvedAction,
			"action %q is not registered", pattern.Action).
			WithDetail("type", sel.Type).
			WithDetail("action", pattern.Action)
	}

	logger.Debug().
		Str("type", sel.Type).
		Str("action", pattern.Action).
		Msg("Selection resolved")

	return Resolution{
		Action:     action,
		ActionName: pattern.Action,
		Pattern:    pattern,
		Value:      sel.Value,
	}, nil
}
