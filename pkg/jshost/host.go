package jshost

import (
	"context"
	"path/filepath"
	"sort"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/arthur-debert/importglob/pkg/ast"
	"github.com/arthur-debert/importglob/pkg/engine"
	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/rs/zerolog"
)

// Stats counts what a transform did to one file
type Stats struct {
	Occurrences int
	Replaced    int
}

// Host transforms source files with a plugin
type Host struct {
	plugin *engine.Plugin
	logger zerolog.Logger
}

// New creates a host for plugin. A host is safe for concurrent use when the
// plugin is.
func New(plugin *engine.Plugin) *Host {
	return &Host{
		plugin: plugin,
		logger: logging.GetLogger("jshost"),
	}
}

type edit struct {
	start, end uint
	text       string
}

// TransformFile reads filename from fsys and transforms it
func (h *Host) TransformFile(ctx context.Context, fsys types.FS, filename string) ([]byte, Stats, error) {
	src, err := fsys.ReadFile(filename)
	if err != nil {
		return nil, Stats{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", filename).
			WithDetail("file", filename)
	}
	return h.Transform(ctx, filename, src)
}

// Transform rewrites the occurrences of src. filename selects the grammar
// and anchors relative sources. The first resolution error aborts the file.
func (h *Host) Transform(ctx context.Context, filename string, src []byte) ([]byte, Stats, error) {
	from, err := filepath.Abs(filename)
	if err != nil {
		return nil, Stats{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid file name %s", filename)
	}

	grammar := GrammarFor(filename)
	parser := sitter.NewParser()
	parser.SetLanguage(language(grammar))
	tree, err := parser.ParseString(ctx, nil, src)
	if err != nil {
		return nil, Stats{}, errors.Wrapf(err, errors.ErrParse, "failed to parse %s", filename).
			WithDetail("grammar", grammar)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, Stats{}, errors.Newf(errors.ErrParse, "empty syntax tree for %s", filename)
	}

	occurrences := scan(root, src)
	stats := Stats{Occurrences: len(occurrences)}
	edits := make([]edit, 0, len(occurrences))
	for _, occ := range occurrences {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		e, replaced, err := h.resolve(occ, from)
		if err != nil {
			if globErr, ok := err.(*errors.GlobError); ok {
				globErr.WithDetail("file", from).WithDetail("line", occ.line)
			}
			return nil, stats, err
		}
		if replaced {
			edits = append(edits, e)
			stats.Replaced++
		}
	}

	h.logger.Debug().
		Str("file", from).
		Str("grammar", grammar).
		Int("occurrences", stats.Occurrences).
		Int("replaced", stats.Replaced).
		Msg("File transformed")

	return apply(src, edits), stats, nil
}

func (h *Host) resolve(occ occurrence, from string) (edit, bool, error) {
	if occ.decl != nil {
		res, err := h.plugin.ResolveImport(occ.decl, from, occ.marker)
		if err != nil || !res.Replaced {
			return edit{}, false, err
		}
		return edit{start: occ.start, end: occ.end, text: ast.Print(res.Statements)}, true, nil
	}

	res, err := h.plugin.ResolveRequire(occ.call, from, occ.marker)
	if err != nil || !res.Replaced {
		return edit{}, false, err
	}
	if expr, ok := res.Expression(); ok {
		return edit{start: occ.start, end: occ.end, text: ast.PrintNode(expr)}, true, nil
	}
	if occ.statement {
		return edit{start: occ.stmtStart, end: occ.stmtEnd, text: ast.Print(res.Statements)}, true, nil
	}
	return edit{}, false, errors.Newf(errors.ErrInvalidInput,
		"replacement of %s is not an expression and the call is not a statement", ast.PrintNode(occ.call)).
		WithDetail("rule", res.Rule.Label())
}

// apply splices edits into src. Edits never overlap.
func apply(src []byte, edits []edit) []byte {
	if len(edits) == 0 {
		return src
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].start > edits[j].start })

	out := append([]byte(nil), src...)
	for _, e := range edits {
		tail := append([]byte(e.text), out[e.end:]...)
		out = append(out[:e.start], tail...)
	}
	return out
}
