package executor

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"time"

	"github.com/arthur-debert/tpick/pkg/config"
	"github.com/arthur-debert/tpick/pkg/errors"
	"github.com/arthur-debert/tpick/pkg/logging"
	"github.com/arthur-debert/tpick/pkg/paths"
	"github.com/rs/zerolog"
)

// waitDelay bounds how long Wait blocks on output pipes after a timed out
// child is killed. Grandchildren started by the shell may hold them open.
const waitDelay = 500 * time.Millisecond

// Options contains configuration for the executor
type Options struct {
	Settings config.Settings

	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger

	// Stdio for the child process. Nil means the executor's own process stdio.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Shell and Direct override the runners picked by Action.Shell
	Shell  Runner
	Direct Runner
}

// Executor runs actions
type Executor struct {
	settings config.Settings
	logger   zerolog.Logger
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	shell    Runner
	direct   Runner
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	e := &Executor{
		settings: opts.Settings,
		logger:   logger,
		stdin:    opts.Stdin,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		shell:    opts.Shell,
		direct:   opts.Direct,
	}

	if e.stdin == nil {
		e.stdin = os.Stdin
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	if e.shell == nil {
		e.shell = ShellRunner{Shell: opts.Settings.Shell}
	}
	if e.direct == nil {
		e.direct = DirectRunner{}
	}

	return e
}

// Execute runs action with value. If the command fails and the action has a
// fallback, the fallback runs once. The returned error is COMMAND_FAILED when
// there was no fallback and FALLBACK_FAILED when the fallback failed too; both
// wrap the primary failure.
func (e *Executor) Execute(ctx context.Context, action config.Action, value string) error {
	done := logging.LogOperationStart(e.logger, "execute")
	defer done()

	value = e.prepareValue(action, value)

	primaryErr := e.run(ctx, action, action.Command, value)
	if primaryErr == nil {
		return nil
	}

	if !action.HasFallback() {
		return errors.Wrap(primaryErr, errors.ErrCommandFailed, "could not execute action")
	}

	e.logger.Info().
		Err(primaryErr).
		Str("fallback", action.Fallback).
		Msg("Command failed, trying fallback")

	fallbackErr := e.run(ctx, action, action.Fallback, value)
	if fallbackErr == nil {
		return nil
	}

	return errors.Wrap(primaryErr, errors.ErrFallbackFailed, "could not execute action").
		WithDetail("fallback_error", fallbackErr.Error())
}

// prepareValue expands ~ and, if the action asks for it, resolves relative
// paths against the work dir
func (e *Executor) prepareValue(action config.Action, value string) string {
	value = paths.ExpandHome(value)

	if !action.ResolveRelativePath {
		return value
	}

	workDir, err := paths.WorkDir(e.settings.WorkDir)
	if err != nil {
		e.logger.Debug().Err(err).Msg("No work dir, leaving value unresolved")
		return value
	}

	resolved := paths.ResolvePath(value, workDir)
	if resolved != value {
		e.logger.Debug().
			Str("value", value).
			Str("resolved", resolved).
			Msg("Resolved relative path")
	}
	return resolved
}

// run renders and runs a single attempt
func (e *Executor) run(ctx context.Context, action config.Action, template, value string) error {
	rendered := Render(template, value)

	if e.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.settings.Timeout)
		defer cancel()
	}

	runner := e.direct
	if action.Shell {
		runner = e.shell
	}

	cmd, err := runner.Command(ctx, rendered)
	if err != nil {
		return err
	}
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	cmd.WaitDelay = waitDelay

	logging.LogCommand(e.logger, cmd.Path, cmd.Args[1:])

	if err := cmd.Run(); err != nil {
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return errors.Wrapf(ctx.Err(), errors.ErrCommandFailed,
				"command %q timed out", rendered).WithDetail("timeout", e.settings.Timeout.String())
		}
		return errors.Wrapf(err, errors.ErrCommandFailed, "command %q failed", rendered)
	}

	e.logger.Debug().Str("command", rendered).Msg("Command executed successfully")
	return nil
}
