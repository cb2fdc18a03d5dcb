package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/tpick/pkg/errors"
	"github.com/arthur-debert/tpick/pkg/matcher"
	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "extract",
		Short:   MsgExtractShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		Example: "  tmux capture-pane -p | tpick extract",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			text, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "failed to read stdin")
			}

			out := cmd.OutOrStdout()
			for _, token := range matcher.Scan(string(text), cfg) {
				if _, err := fmt.Fprintln(out, token); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
