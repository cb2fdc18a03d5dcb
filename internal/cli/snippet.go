package cli

import (
	"fmt"

	"github.com/arthur-debert/tpick/pkg/shell"
	"github.com/spf13/cobra"
)

func newSnippetCmd() *cobra.Command {
	var opts shell.Options
	var target string

	cmd := &cobra.Command{
		Use:     "snippet",
		Short:   MsgSnippetShort,
		Long:    MsgSnippetLong,
		Example: MsgSnippetExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, err := shell.Snippet(target, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), snippet)
			return err
		},
	}

	cmd.Flags().StringVarP(&target, "shell", "s", shell.TargetTmux, MsgFlagSnippetShell)
	cmd.Flags().StringVar(&opts.Key, "key", shell.DefaultKey, MsgFlagSnippetKey)
	cmd.Flags().StringVar(&opts.Binary, "binary", "tpick", MsgFlagSnippetBinary)
	_ = cmd.RegisterFlagCompletionFunc("shell", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return shell.Targets, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
