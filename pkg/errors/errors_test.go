// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/tpick/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_selection_error",
			code:    errors.ErrInvalidSelection,
			message: "token has no delimiter",
			wantStr: "[INVALID_SELECTION] token has no delimiter",
		},
		{
			name:    "config_invalid_error",
			code:    errors.ErrConfigValid,
			message: "pattern 0 has no name",
			wantStr: "[CONFIG_INVALID] pattern 0 has no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnresolvedAction, "action %q is not registered", "open_url")
	if err.Message != `action "open_url" is not registered` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("exit status 1")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrCommandFailed, "could not execute action")

		if err.Code != errors.ErrCommandFailed {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrCommandFailed)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[COMMAND_FAILED] could not execute action: exit status 1"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error")
		if err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConfigLoad, "cannot read").
		WithDetail("path", "/test/config.toml").
		WithDetail("source", "PATTERN_CONFIG")

	if err.Details["path"] != "/test/config.toml" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}

	if err.Details["source"] != "PATTERN_CONFIG" {
		t.Errorf("WithDetail() source = %v", err.Details["source"])
	}

	if got := errors.GetErrorDetails(err); got["path"] != "/test/config.toml" {
		t.Errorf("GetErrorDetails() = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrInvalidSelection, "error 1")
	err2 := errors.New(errors.ErrInvalidSelection, "error 2")
	err3 := errors.New(errors.ErrUnresolvedAction, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with TpickError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrFallbackFailed, "both failed"),
			code:     errors.ErrFallbackFailed,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrFallbackFailed, "both failed"),
			code:     errors.ErrCommandFailed,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "non_tpick_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "tpick_error",
			err:      errors.New(errors.ErrConfigParse, "bad toml"),
			expected: errors.ErrConfigParse,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	primary := errors.Wrap(stderrors.New("exit status 127"), errors.ErrCommandFailed, "command failed")
	err := errors.Wrap(primary, errors.ErrFallbackFailed, "could not execute action")

	if got := errors.Message(err); got != "could not execute action: command failed: exit status 127" {
		t.Errorf("Message() = %q", got)
	}

	if got := errors.Message(stderrors.New("plain")); got != "plain" {
		t.Errorf("Message() = %q, want %q", got, "plain")
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var tpickErr *errors.TpickError
		if stderrors.As(configErr.Unwrap(), &tpickErr) {
			if !errors.IsErrorCode(tpickErr, errors.ErrFileAccess) {
				t.Error("Middle error should have ErrFileAccess code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
