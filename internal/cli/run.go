package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/tpick/pkg/errors"
	"github.com/arthur-debert/tpick/pkg/ui/styles"
	"github.com/spf13/cobra"
)

// exitError ends the process with Code without printing anything further.
// Commands return it after writing their own diagnostics.
type exitError struct {
	Code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Execute runs cmd and returns the process exit code. Errors are printed to
// the command's error stream as "Error: <message>".
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var exit *exitError
	if stderrors.As(err, &exit) {
		return exit.Code
	}

	fmt.Fprintln(cmd.ErrOrStderr(), styles.Render("Error", "Error: "+errors.Message(err)))
	return 1
}
