package cli

import (
	"github.com/arthur-debert/tpick/pkg/errors"
	"github.com/arthur-debert/tpick/pkg/ui"
	"github.com/spf13/cobra"
)

func newPatternsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "patterns",
		Short:   MsgPatternsShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}

			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			return ui.RenderPatterns(cmd.OutOrStdout(), cfg, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
