package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/tpick/pkg/config"
	"github.com/arthur-debert/tpick/pkg/errors"
	"github.com/arthur-debert/tpick/pkg/logging"
	"github.com/arthur-debert/tpick/pkg/paths"
	"github.com/arthur-debert/tpick/pkg/ui/styles"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path, err := paths.DefaultConfigPath()
			if err != nil {
				return err
			}

			if err := writeConfigFile(path, content, force); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), styles.Render("Success", fmt.Sprintf(MsgConfigWritten, path)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func writeConfigFile(path, content string, force bool) error {
	logger := logging.GetLogger("cli.gen-config")

	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrFileAccess, MsgErrConfigExists, path).WithDetail("path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to create %s", filepath.Dir(path))
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}

	logger.Info().Str("path", path).Bool("force", force).Msg("Configuration written")
	return nil
}
