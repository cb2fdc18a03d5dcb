package executor

import (
	"context"
	"os/exec"

	"github.com/arthur-debert/tpick/pkg/errors"
	"github.com/mattn/go-shellwords"
)

// Runner turns a rendered command line into a process
type Runner interface {
	Command(ctx context.Context, rendered string) (*exec.Cmd, error)
}

// ShellRunner runs commands as `<Shell> -c <rendered>`
type ShellRunner struct {
	Shell string
}

// Command implements Runner
func (r ShellRunner) Command(ctx context.Context, rendered string) (*exec.Cmd, error) {
	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}
	return exec.CommandContext(ctx, shell, "-c", rendered), nil
}

// DirectRunner splits the rendered command into words using POSIX shell
// quoting rules and executes the first word directly. Pipes, redirections and
// other shell syntax are not interpreted.
type DirectRunner struct{}

// Command implements Runner
func (DirectRunner) Command(ctx context.Context, rendered string) (*exec.Cmd, error) {
	parser := shellwords.NewParser()
	parser.ParseBacktick = false
	parser.ParseEnv = false

	args, err := parser.Parse(rendered)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot split command %q", rendered)
	}
	if len(args) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "empty command")
	}

	return exec.CommandContext(ctx, args[0], args[1:]...), nil
}
