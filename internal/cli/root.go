package cli

import (
	"fmt"

	"github.com/arthur-debert/tpick/internal/version"
	"github.com/arthur-debert/tpick/pkg/config"
	"github.com/arthur-debert/tpick/pkg/logging"
	"github.com/arthur-debert/tpick/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "tpick",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "Misc:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newExecuteCmd())
	rootCmd.AddCommand(newValueCmd())
	rootCmd.AddCommand(newPatternsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig finds and loads the configuration for cmd. overrides are keyed
// with config.SettingsKey.
func loadConfig(cmd *cobra.Command, overrides map[string]interface{}) (*config.Config, error) {
	explicit, _ := cmd.Root().PersistentFlags().GetString("config")

	path, err := paths.FindConfigFile(explicit)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Msg("Using configuration")

	return config.Load(config.LoadOptions{
		Path:      path,
		Overrides: overrides,
	})
}
