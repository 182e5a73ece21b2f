// Test Type: Integration Test
// Description: Tests for the resolution pipeline from occurrence to replacement

package engine_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/importglob/pkg/ast"
	"github.com/arthur-debert/importglob/pkg/debugtrace"
	"github.com/arthur-debert/importglob/pkg/engine"
	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/filesystem"
	"github.com/arthur-debert/importglob/pkg/paths"
	"github.com/arthur-debert/importglob/pkg/rules"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryFS(t *testing.T) types.FS {
	t.Helper()
	fs := filesystem.NewMemory()
	require.NoError(t, filesystem.WriteTree(fs, map[string]string{
		"/app/mail.ts":            "",
		"/app/emails/welcome.hbs": "",
		"/app/emails/bye.hbs":     "",
		"/app/fixed/file.ts":      "",
		"/routes/users/auth.ts":   "",
	}))
	return fs
}

func defaultImport(local, source string) *ast.ImportDeclaration {
	return &ast.ImportDeclaration{
		Specifiers: []ast.ImportSpecifier{&ast.ImportDefaultSpecifier{Local: local}},
		Source:     source,
	}
}

func TestResolve_ScenarioA_DefaultImport(t *testing.T) {
	plugin := engine.Build(engine.Options{FS: memoryFS(t)}, nil)

	res, err := plugin.ResolveImport(defaultImport("templates", "./emails/*.hbs"), "/app/mail.ts", nil)
	require.NoError(t, err)
	require.True(t, res.Replaced)
	require.Len(t, res.Statements, 3)

	locals := map[string]string{}
	for _, stmt := range res.Statements[:2] {
		decl := stmt.(*ast.ImportDeclaration)
		locals[decl.Source] = decl.Specifiers[0].(*ast.ImportDefaultSpecifier).Local
	}
	require.Len(t, locals, 2)
	welcome := locals["/app/emails/welcome.hbs"]
	bye := locals["/app/emails/bye.hbs"]
	assert.NotEmpty(t, welcome)
	assert.NotEmpty(t, bye)
	assert.NotEqual(t, welcome, bye)

	aggregate := res.Statements[2].(*ast.VariableDeclaration)
	assert.Equal(t, "templates", aggregate.Name)
	keys := map[string]ast.Expression{}
	for _, prop := range aggregate.Init.(*ast.ObjectExpression).Properties {
		keys[prop.Key] = prop.Value
	}
	assert.Equal(t, map[string]ast.Expression{
		"welcome": ast.Ident(welcome),
		"bye":     ast.Ident(bye),
	}, keys)
}

func TestResolve_DefaultWithNamedImport(t *testing.T) {
	plugin := engine.Build(engine.Options{FS: memoryFS(t)}, nil)

	decl := &ast.ImportDeclaration{
		Specifiers: []ast.ImportSpecifier{
			&ast.ImportDefaultSpecifier{Local: "templates"},
			&ast.ImportNamedSpecifier{Imported: "welcome", Local: "welcome"},
		},
		Source: "./emails/*.hbs",
	}
	res, err := plugin.ResolveImport(decl, "/app/mail.ts", nil)
	require.NoError(t, err)
	require.True(t, res.Replaced)

	assert.Equal(t, `import _templates_bye_1 from "/app/emails/bye.hbs";
import welcome from "/app/emails/welcome.hbs";
const templates = {
  bye: _templates_bye_1
};`, ast.Print(res.Statements))
}

func TestResolve_ScenarioB_RequireWithMetas(t *testing.T) {
	aliases := paths.AliasMap{"@/": "/"}
	plugin := engine.Build(engine.Options{FS: memoryFS(t), RemoveAliases: aliases.Remove}, nil)

	res, err := plugin.ResolveRequire(ast.Require("metas:@/routes/**/*.ts"), "/app/index.ts", nil)
	require.NoError(t, err)
	require.True(t, res.Replaced)

	expr, ok := res.Expression()
	require.True(t, ok)
	arr := expr.(*ast.ArrayExpression)
	require.Len(t, arr.Elements, 1)

	assert.Equal(t, &ast.ObjectExpression{Properties: []ast.Property{
		{Key: "filename", Value: ast.String("/routes/users/auth.ts")},
		{Key: "matches", Value: &ast.ArrayExpression{Elements: []ast.Expression{
			ast.String("users"), ast.String("auth"),
		}}},
		{Key: "exports", Value: ast.Require("/routes/users/auth.ts")},
	}}, arr.Elements[0])
}

func TestResolve_ScenarioD_NoWildcardIsNoop(t *testing.T) {
	plugin := engine.Build(engine.Options{FS: memoryFS(t)}, nil)

	res, err := plugin.ResolveImport(defaultImport("file", "./fixed/file.ts"), "/app/mail.ts", nil)
	require.NoError(t, err)
	assert.False(t, res.Replaced)
	assert.Empty(t, res.Statements)

	res, err = plugin.ResolveRequire(ast.Require("lodash"), "/app/mail.ts", nil)
	require.NoError(t, err)
	assert.False(t, res.Replaced)
}

func TestResolve_NonRequireCallIsNoop(t *testing.T) {
	plugin := engine.Build(engine.Options{FS: memoryFS(t)}, nil)

	call := &ast.CallExpression{Callee: ast.Ident("load"), Arguments: []ast.Expression{ast.String("./*.ts")}}
	res, err := plugin.ResolveRequire(call, "/app/mail.ts", nil)
	require.NoError(t, err)
	assert.False(t, res.Replaced)
}

func TestResolve_SelfExclusion(t *testing.T) {
	plugin := engine.Build(engine.Options{FS: memoryFS(t)}, nil)

	res, err := plugin.ResolveRequire(ast.Require("./*.ts"), "/app/mail.ts", nil)
	require.NoError(t, err)
	require.True(t, res.Replaced)
	assert.Equal(t, "[];", ast.Print(res.Statements))
}

func constRule(name, text string) rules.Rule {
	return rules.Rule{
		Name: name,
		Transformer: rules.TransformerFuncs{
			TestFunc: func(*types.Request) bool { return true },
			ReplaceFunc: func(*types.Request, []types.FileMatch) ([]ast.Statement, bool) {
				return []ast.Statement{ast.Const(text, &ast.NullLiteral{})}, true
			},
		},
	}
}

func TestResolve_FirstMatchPrecedence(t *testing.T) {
	plugin := engine.Build(engine.Options{FS: memoryFS(t)}, []rules.Rule{
		constRule("first", "first"),
		constRule("second", "second"),
	})

	res, err := plugin.ResolveImport(defaultImport("t", "./emails/*.hbs"), "/app/mail.ts", nil)
	require.NoError(t, err)
	require.True(t, res.Replaced)
	assert.Equal(t, "const first = null;", ast.Print(res.Statements))
	assert.Equal(t, "first", res.Rule.Name)
}

func TestResolve_RuleReceivesMatches(t *testing.T) {
	var got []types.FileMatch
	var gotReq *types.Request
	rule := rules.Rule{
		Name: "capture",
		Transformer: rules.TransformerFuncs{
			TestFunc: func(req *types.Request) bool { return strings.HasSuffix(req.Source, ".hbs") },
			ReplaceFunc: func(req *types.Request, files []types.FileMatch) ([]ast.Statement, bool) {
				gotReq, got = req, files
				return nil, true
			},
		},
	}
	plugin := engine.Build(engine.Options{FS: memoryFS(t)}, []rules.Rule{rule})

	res, err := plugin.ResolveImport(defaultImport("t", "metas:./emails/*.hbs"), "/app/mail.ts", nil)
	require.NoError(t, err)
	assert.True(t, res.Replaced)
	assert.Empty(t, res.Statements)

	assert.True(t, gotReq.WithMetas)
	assert.Equal(t, types.DefaultBinding{Name: "t"}, gotReq.Imported)
	assert.Equal(t, []types.FileMatch{
		{Filename: "/app/emails/bye.hbs", Segments: []types.Segment{types.Some("bye")}},
		{Filename: "/app/emails/welcome.hbs", Segments: []types.Segment{types.Some("welcome")}},
	}, got)
}

func TestResolve_RuleDeclines(t *testing.T) {
	declining := rules.Rule{
		Name:        "decline",
		Transformer: rules.TransformerFuncs{TestFunc: func(*types.Request) bool { return true }},
	}
	plugin := engine.Build(engine.Options{FS: memoryFS(t)}, []rules.Rule{declining, constRule("later", "later")})

	res, err := plugin.ResolveRequire(ast.Require("./emails/*.hbs"), "/app/mail.ts", nil)
	require.NoError(t, err)
	require.True(t, res.Replaced)
	assert.Equal(t, `[require("/app/emails/bye.hbs"), require("/app/emails/welcome.hbs")];`, ast.Print(res.Statements))
	assert.Equal(t, "decline", res.Rule.Name)
}

func TestResolve_AnyPathRule(t *testing.T) {
	var got []types.FileMatch
	rule := rules.Rule{
		Name:    "fixed",
		AnyPath: true,
		Transformer: rules.TransformerFuncs{
			TestFunc: func(req *types.Request) bool { return strings.Contains(req.Source, "fixed") },
			ReplaceFunc: func(_ *types.Request, files []types.FileMatch) ([]ast.Statement, bool) {
				got = files
				return []ast.Statement{ast.SideEffectImport("/polyfill.js")}, true
			},
		},
	}

	t.Run("replaces_non_glob_source", func(t *testing.T) {
		plugin := engine.Build(engine.Options{FS: memoryFS(t)}, []rules.Rule{rule})
		res, err := plugin.ResolveImport(defaultImport("f", "./fixed/file.ts"), "/app/mail.ts", nil)
		require.NoError(t, err)
		assert.True(t, res.Replaced)
		assert.Equal(t, []types.FileMatch{{Filename: "/app/fixed/file.ts", Segments: []types.Segment{}}}, got)
	})

	t.Run("glob_only_rule_ignores_non_glob", func(t *testing.T) {
		globOnly := rule
		globOnly.AnyPath = false
		plugin := engine.Build(engine.Options{FS: memoryFS(t)}, []rules.Rule{globOnly})
		res, err := plugin.ResolveImport(defaultImport("f", "./fixed/file.ts"), "/app/mail.ts", nil)
		require.NoError(t, err)
		assert.False(t, res.Replaced)
	})

	t.Run("declining_on_non_glob_is_noop", func(t *testing.T) {
		declining := rule
		declining.Transformer = rules.TransformerFuncs{TestFunc: rule.Transformer.Test}
		plugin := engine.Build(engine.Options{FS: memoryFS(t)}, []rules.Rule{declining})
		res, err := plugin.ResolveImport(defaultImport("f", "./fixed/file.ts"), "/app/mail.ts", nil)
		require.NoError(t, err)
		assert.False(t, res.Replaced)
	})
}

func TestResolve_Errors(t *testing.T) {
	plugin := engine.Build(engine.Options{FS: memoryFS(t)}, nil)

	t.Run("missing_root_directory", func(t *testing.T) {
		_, err := plugin.ResolveRequire(ast.Require("./nope/*.ts"), "/app/mail.ts", nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})

	t.Run("malformed_pattern", func(t *testing.T) {
		_, err := plugin.ResolveRequire(ast.Require("./emails/[a-*.hbs"), "/app/mail.ts", nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
	})
}

type countingLister struct {
	calls int
	files []string
}

func (c *countingLister) Walk(string) ([]string, error) {
	c.calls++
	return c.files, nil
}

func TestResolve_CachedWalker(t *testing.T) {
	lister := &countingLister{files: []string{"/app/emails/welcome.hbs"}}
	plugin := engine.Build(engine.Options{FS: memoryFS(t), Walker: lister, CacheSize: 8}, nil)

	for i := 0; i < 3; i++ {
		res, err := plugin.ResolveRequire(ast.Require("./emails/*.hbs"), "/app/mail.ts", nil)
		require.NoError(t, err)
		require.True(t, res.Replaced)
	}
	assert.Equal(t, 1, lister.calls)

	uncached := &countingLister{files: lister.files}
	plugin = engine.Build(engine.Options{FS: memoryFS(t), Walker: uncached}, nil)
	for i := 0; i < 3; i++ {
		_, err := plugin.ResolveRequire(ast.Require("./emails/*.hbs"), "/app/mail.ts", nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, uncached.calls)
}

func TestResolve_DebugTrace(t *testing.T) {
	on, off := true, false

	tests := []struct {
		name   string
		global bool
		marker *bool
		source string
		traced bool
	}{
		{"global_traces_glob", true, nil, "./emails/*.hbs", true},
		{"global_traces_noop", true, nil, "./fixed/file.ts", true},
		{"marker_enables", false, &on, "./emails/*.hbs", true},
		{"marker_disables", true, &off, "./emails/*.hbs", false},
		{"silent_by_default", false, nil, "./emails/*.hbs", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			plugin := engine.Build(engine.Options{
				FS:      memoryFS(t),
				Debug:   tt.global,
				Emitter: debugtrace.NewEmitter(zerolog.New(&buf)),
			}, nil)

			_, err := plugin.ResolveRequire(ast.Require(tt.source), "/app/mail.ts", tt.marker)
			require.NoError(t, err)

			if !tt.traced {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), "Import glob resolved")
			assert.Contains(t, buf.String(), tt.source)
		})
	}

	t.Run("rule_debug_flag", func(t *testing.T) {
		var buf bytes.Buffer
		rule := constRule("loud", "loud")
		rule.Debug = true
		plugin := engine.Build(engine.Options{
			FS:      memoryFS(t),
			Emitter: debugtrace.NewEmitter(zerolog.New(&buf)),
		}, []rules.Rule{rule})

		_, err := plugin.ResolveRequire(ast.Require("./emails/*.hbs"), "/app/mail.ts", nil)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"rule":"loud"`)
		assert.Contains(t, buf.String(), "const loud = null;")
	})

	t.Run("noop_reports_nothing", func(t *testing.T) {
		var buf bytes.Buffer
		plugin := engine.Build(engine.Options{
			FS:      memoryFS(t),
			Emitter: debugtrace.NewEmitter(zerolog.New(&buf)),
		}, nil)

		_, err := plugin.ResolveRequire(ast.Require("./fixed/file.ts"), "/app/mail.ts", &on)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), debugtrace.Nothing)
	})
}
