package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/arthur-debert/importglob/pkg/ui"
	"github.com/spf13/cobra"
)

// defaultFrom is the file name assumed when --from is not given
const defaultFrom = "index.js"

func newResolveCmd(g *globalOptions) *cobra.Command {
	var (
		from   string
		format string
	)

	cmd := &cobra.Command{
		Use:     "resolve <glob>",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == ui.FormatAuto {
				f = detectFormat(cmd.OutOrStdout())
			}

			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			plugin, err := g.buildPlugin(cfg)
			if err != nil {
				return err
			}

			fromAbs, err := filepath.Abs(from)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "invalid file %s", from)
			}
			source, withMetas := types.SplitMetas(args[0])
			req := &types.Request{
				Kind:      types.KindImport,
				Source:    source,
				From:      fromAbs,
				WithMetas: withMetas,
			}

			resolved, files, err := plugin.Find(req)
			if err != nil {
				return err
			}
			return ui.RenderResolution(cmd.OutOrStdout(), ui.Resolution{
				Source:  source,
				From:    fromAbs,
				Pattern: resolved,
				Files:   files,
			}, f)
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", defaultFrom, MsgFlagFrom)
	cmd.Flags().StringVarP(&format, "format", "o", "auto", MsgFlagFormat)

	return cmd
}

func detectFormat(w io.Writer) ui.Format {
	if f, ok := w.(*os.File); ok {
		return ui.DetectFormat(f)
	}
	return ui.FormatText
}
