package cli

import (
	"fmt"

	"github.com/arthur-debert/tpick/pkg/selection"
	"github.com/spf13/cobra"
)

func newValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "value <selection>",
		Short:   MsgValueShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		Example: "  tpick extract < log.txt | fzf | xargs -0 tpick value | pbcopy",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, ok := selection.Decode(args[0])
			if !ok {
				// Hand the input back so the caller can still use it
				fmt.Fprintln(cmd.ErrOrStderr(), args[0])
				return &exitError{Code: 1}
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), sel.Value)
			return err
		},
	}
}
