package cli

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/filesystem"
	"github.com/arthur-debert/importglob/pkg/jshost"
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/style"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/arthur-debert/importglob/pkg/walker"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// skippedDir is never descended into when expanding directories
const skippedDir = "node_modules"

type transformOptions struct {
	write bool
	diff  bool
}

type fileResult struct {
	path     string
	original []byte
	output   []byte
	stats    jshost.Stats
}

func (r fileResult) changed() bool {
	return r.stats.Replaced > 0 && string(r.original) != string(r.output)
}

func newTransformCmd(g *globalOptions) *cobra.Command {
	opts := &transformOptions{}

	cmd := &cobra.Command{
		Use:     "transform <path>...",
		Short:   MsgTransformShort,
		Long:    MsgTransformLong,
		Example: MsgTransformExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, g, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVarP(&opts.diff, "diff", "d", false, MsgFlagDiff)

	return cmd
}

func runTransform(cmd *cobra.Command, g *globalOptions, opts *transformOptions, args []string) error {
	logger := logging.GetLogger("cli.transform")

	if opts.write && opts.diff {
		return errors.New(errors.ErrInvalidInput, MsgErrWriteExclusive)
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	plugin, err := g.buildPlugin(cfg)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()
	files, err := collectFiles(fsys, args, cfg.Extensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New(errors.ErrNotFound, MsgErrNoFiles).WithDetail("paths", args)
	}

	logger.Info().
		Int("files", len(files)).
		Int("concurrency", cfg.Concurrency).
		Bool("write", opts.write).
		Msg("Transforming files")

	host := jshost.New(plugin)
	results := make([]fileResult, len(files))

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(cfg.Concurrency)
	for i, path := range files {
		group.Go(func() error {
			src, err := fsys.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
			}
			out, stats, err := host.Transform(ctx, path, src)
			if err != nil {
				return err
			}
			results[i] = fileResult{path: path, original: src, output: out, stats: stats}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	return reportTransform(cmd, fsys, opts, results)
}

func reportTransform(cmd *cobra.Command, fsys types.FS, opts *transformOptions, results []fileResult) error {
	out := cmd.OutOrStdout()
	var occurrences, replaced int

	for _, r := range results {
		occurrences += r.stats.Occurrences
		replaced += r.stats.Replaced

		switch {
		case opts.write:
			if !r.changed() {
				fmt.Fprintln(out, style.PendingIndicator(), style.Render(fmt.Sprintf(MsgFileUnchanged, r.path)))
				continue
			}
			if err := writeFile(fsys, r.path, r.output); err != nil {
				return err
			}
			fmt.Fprintln(out, style.SuccessIndicator(), style.Render(fmt.Sprintf(MsgFileWritten, r.path, r.stats.Replaced)))
		case opts.diff:
			if r.changed() {
				fmt.Fprint(out, renderDiff(r.path, r.original, r.output))
			}
		default:
			if len(results) > 1 {
				fmt.Fprintln(out, style.Render(fmt.Sprintf(MsgFileHeader, r.path)))
			}
			if _, err := out.Write(r.output); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
			}
		}
	}

	fmt.Fprintln(cmd.ErrOrStderr(), style.Render(fmt.Sprintf(MsgTransformSummary, len(results), replaced, occurrences)))
	return nil
}

func writeFile(fsys types.FS, path string, data []byte) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	if err := fsys.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("file", path)
	}
	return nil
}

// collectFiles expands args into absolute file paths. Directories are walked
// and filtered by extension; files named explicitly are always kept.
func collectFiles(fsys types.FS, args []string, extensions []string) ([]string, error) {
	w := walker.New(fsys)
	seen := map[string]bool{}
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid path %s", arg)
		}
		info, err := fsys.Stat(abs)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", arg).
				WithDetail("path", arg)
		}
		if !info.IsDir() {
			add(abs)
			continue
		}

		listed, err := w.Walk(abs)
		if err != nil {
			return nil, err
		}
		for _, path := range listed {
			if hasExtension(path, extensions) && !inSkippedDir(abs, path) {
				add(path)
			}
		}
	}
	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(path)))
}

func inSkippedDir(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return slices.Contains(strings.Split(filepath.ToSlash(rel), "/"), skippedDir)
}
