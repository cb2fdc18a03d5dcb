package cli

import (
	"time"

	"github.com/arthur-debert/tpick/pkg/config"
	"github.com/arthur-debert/tpick/pkg/errors"
	"github.com/arthur-debert/tpick/pkg/executor"
	"github.com/arthur-debert/tpick/pkg/logging"
	"github.com/arthur-debert/tpick/pkg/resolver"
	"github.com/spf13/cobra"
)

func newExecuteCmd() *cobra.Command {
	var (
		shell   string
		timeout time.Duration
		workDir string
	)

	cmd := &cobra.Command{
		Use:     "execute <selection>",
		Short:   MsgExecuteShort,
		Long:    MsgExecuteLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		Example: "  tpick execute \"$(tpick extract < log.txt | fzf)\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.execute")

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("shell") {
				overrides[config.SettingsKey("shell")] = shell
			}
			if cmd.Flags().Changed("timeout") {
				overrides[config.SettingsKey("timeout")] = timeout.String()
			}
			if cmd.Flags().Changed("work-dir") {
				overrides[config.SettingsKey("work_dir")] = workDir
			}

			cfg, err := loadConfig(cmd, overrides)
			if err != nil {
				return err
			}

			res, ok := resolver.Resolve(args[0], cfg)
			if !ok {
				// Both failure kinds read the same to the user
				reason := resolver.Explain(args[0], cfg)
				logger.Debug().Err(reason).Msg("Selection did not resolve")
				return errors.New(errors.GetErrorCode(reason), MsgErrInvalidSelection).
					WithDetail("reason", errors.Message(reason))
			}

			logger.Info().
				Str("type", res.Pattern.Name).
				Str("action", res.ActionName).
				Str("value", res.Value).
				Msg("Executing action")

			ex := executor.New(executor.Options{
				Settings: cfg.Settings,
				Stdin:    cmd.InOrStdin(),
				Stdout:   cmd.OutOrStdout(),
				Stderr:   cmd.ErrOrStderr(),
			})
			return ex.Execute(cmd.Context(), res.Action, res.Value)
		},
	}

	cmd.Flags().StringVar(&shell, "shell", "", MsgFlagShell)
	cmd.Flags().DurationVar(&timeout, "timeout", 0, MsgFlagTimeout)
	cmd.Flags().StringVar(&workDir, "work-dir", "", MsgFlagWorkDir)

	return cmd
}
