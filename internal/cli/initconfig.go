package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/importglob/pkg/config"
	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/paths"
	"github.com/arthur-debert/importglob/pkg/style"
	"github.com/spf13/cobra"
)

func newInitConfigCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:     "init-config [path]",
		Short:   MsgInitConfigShort,
		Long:    MsgInitConfigLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(config.Sample())
			if err != nil {
				return err
			}
			if stdout {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			path := paths.ProjectConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrConfigExists, path).
					WithDetail("path", path)
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.Render(fmt.Sprintf(MsgConfigWritten, path)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&stdout, "stdout", false, MsgFlagStdout)

	return cmd
}
