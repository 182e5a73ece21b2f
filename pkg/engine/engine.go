package engine

import (
	"path/filepath"

	"github.com/arthur-debert/importglob/pkg/ast"
	"github.com/arthur-debert/importglob/pkg/debugtrace"
	"github.com/arthur-debert/importglob/pkg/filesystem"
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/paths"
	"github.com/arthur-debert/importglob/pkg/pattern"
	"github.com/arthur-debert/importglob/pkg/request"
	"github.com/arthur-debert/importglob/pkg/rules"
	"github.com/arthur-debert/importglob/pkg/synth"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/arthur-debert/importglob/pkg/walker"
	"github.com/rs/zerolog"
)

// Options configures a build
type Options struct {
	// Debug traces every occurrence unless a marker or rule says otherwise
	Debug bool

	// RemoveAliases rewrites non-relative sources, may be nil
	RemoveAliases func(source string) string

	// FS is read by the default walker. Defaults to the OS filesystem.
	FS types.FS

	// Walker overrides the directory lister
	Walker walker.Lister

	// CacheSize enables a build-scoped listing cache of that many root
	// directories when positive
	CacheSize int

	// Emitter receives traces. Defaults to the global logger.
	Emitter *debugtrace.Emitter
}

// Result is the outcome of resolving one occurrence
type Result struct {
	// Statements replace the occurrence when Replaced is set
	Statements []ast.Statement

	// Replaced is false for a no-op
	Replaced bool

	// Rule is the rule that produced or declined the replacement
	Rule *rules.Rule
}

// Expression returns the replacement as a single expression when it
// consists of exactly one expression statement. Hosts use it to substitute
// a require call in place.
func (r Result) Expression() (ast.Expression, bool) {
	if len(r.Statements) != 1 {
		return nil, false
	}
	stmt, ok := r.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		return nil, false
	}
	return stmt.Expression, true
}

// Plugin resolves occurrences for one build. Its rules and options are
// read-only; a Plugin may be shared by goroutines processing different
// files when the walker is safe for concurrent use.
type Plugin struct {
	opts     Options
	rules    *rules.Engine
	resolver *paths.Resolver
	walker   walker.Lister
	fs       types.FS
	emitter  *debugtrace.Emitter
	logger   zerolog.Logger
}

// Build creates a plugin from options and an ordered rule list
func Build(opts Options, ruleList []rules.Rule) *Plugin {
	logger := logging.GetLogger("engine")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	lister := opts.Walker
	if lister == nil {
		lister = walker.New(fs)
	}
	if opts.CacheSize > 0 {
		cached, err := walker.NewCached(lister, opts.CacheSize)
		if err != nil {
			logger.Warn().Err(err).Int("size", opts.CacheSize).Msg("Listing cache disabled")
		} else {
			lister = cached
		}
	}

	emitter := opts.Emitter
	if emitter == nil {
		emitter = debugtrace.Default()
	}

	logger.Debug().
		Int("rules", len(ruleList)).
		Bool("debug", opts.Debug).
		Bool("aliases", opts.RemoveAliases != nil).
		Int("cacheSize", opts.CacheSize).
		Msg("Plugin built")

	return &Plugin{
		opts:     opts,
		rules:    rules.NewEngine(ruleList),
		resolver: paths.NewResolver(opts.RemoveAliases),
		walker:   lister,
		fs:       fs,
		emitter:  emitter,
		logger:   logger,
	}
}

// Rules returns the rule list in priority order
func (p *Plugin) Rules() []rules.Rule {
	return p.rules.Rules()
}

// ResolveRequire resolves a call expression. Calls other than a single
// string literal require are a no-op. marker is the per-occurrence debug
// marker, nil when absent.
func (p *Plugin) ResolveRequire(call *ast.CallExpression, from string, marker *bool) (Result, error) {
	req, ok := request.FromRequire(call, from)
	if !ok {
		return Result{}, nil
	}
	return p.Resolve(req, ast.PrintNode(call), marker)
}

// ResolveImport resolves an import declaration
func (p *Plugin) ResolveImport(decl *ast.ImportDeclaration, from string, marker *bool) (Result, error) {
	req := request.FromImport(decl, from)
	return p.Resolve(req, ast.PrintNode(decl), marker)
}

// Resolve runs the pipeline for a normalized request. original is the
// occurrence source text used in traces.
func (p *Plugin) Resolve(req *types.Request, original string, marker *bool) (Result, error) {
	rule, selected := p.rules.Select(req)
	trace := debugtrace.Trace{Original: original, Request: req, Rule: rule}
	emit := func(res Result) {
		if debugtrace.Enabled(marker, rule, p.opts.Debug) {
			trace.Replacement = res.Statements
			trace.Replaced = res.Replaced
			p.emitter.Report(trace)
		}
	}

	if !selected && !req.IsGlob() {
		emit(Result{})
		return Result{}, nil
	}

	resolved, files, err := p.Find(req)
	if err != nil {
		p.logger.Error().
			Err(err).
			Str("source", req.Source).
			Str("from", req.From).
			Msg("Failed to resolve glob")
		return Result{}, err
	}
	trace.Pattern = resolved
	trace.Files = files

	if selected {
		if stmts, ok := rule.Transformer.Replace(req, files); ok {
			res := Result{Statements: stmts, Replaced: true, Rule: rule}
			emit(res)
			return res, nil
		}
		p.logger.Debug().
			Str("rule", rule.Label()).
			Str("source", req.Source).
			Msg("Rule deferred to default synthesis")

		if !req.IsGlob() {
			emit(Result{Rule: rule})
			return Result{Rule: rule}, nil
		}
	}

	res := Result{Statements: synth.Synthesize(req, files), Replaced: true, Rule: rule}
	emit(res)
	return res, nil
}

// Find resolves the request source and returns the resolved path and the
// matching files. A source without a wildcard matches the file it names, if
// that file exists.
func (p *Plugin) Find(req *types.Request) (string, []types.FileMatch, error) {
	resolved := p.resolver.Resolve(req)

	if !req.IsGlob() {
		if !filepath.IsAbs(resolved) {
			return resolved, []types.FileMatch{}, nil
		}
		info, err := p.fs.Stat(resolved)
		if err != nil || info.IsDir() {
			return resolved, []types.FileMatch{}, nil
		}
		return resolved, []types.FileMatch{{Filename: resolved, Segments: []types.Segment{}}}, nil
	}

	compiled, err := pattern.Compile(resolved)
	if err != nil {
		return resolved, nil, err
	}
	files, err := pattern.Find(p.walker, compiled)
	if err != nil {
		return resolved, nil, err
	}
	if files == nil {
		files = []types.FileMatch{}
	}
	return resolved, files, nil
}
