// Test Type: Unit Test
// Description: Tests for default statement synthesis over matched files

package synth_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/importglob/pkg/ast"
	"github.com/arthur-debert/importglob/pkg/synth"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func match(filename string, segments ...string) types.FileMatch {
	m := types.FileMatch{Filename: filename}
	for _, s := range segments {
		m.Segments = append(m.Segments, types.Some(s))
	}
	return m
}

var emails = []types.FileMatch{
	match("/app/emails/welcome.hbs", "welcome"),
	match("/app/emails/bye.hbs", "bye"),
}

func importReq(binding types.Binding, withMetas bool) *types.Request {
	return &types.Request{
		Kind:      types.KindImport,
		Source:    "./emails/*.hbs",
		From:      "/app/mail.ts",
		WithMetas: withMetas,
		Imported:  binding,
	}
}

func TestSynthesize_DefaultImport(t *testing.T) {
	out := synth.Synthesize(importReq(types.DefaultBinding{Name: "templates"}, false), emails)
	require.Len(t, out, 3)

	first, ok := out[0].(*ast.ImportDeclaration)
	require.True(t, ok)
	second, ok := out[1].(*ast.ImportDeclaration)
	require.True(t, ok)
	assert.Equal(t, "/app/emails/welcome.hbs", first.Source)
	assert.Equal(t, "/app/emails/bye.hbs", second.Source)

	id1 := first.Specifiers[0].(*ast.ImportDefaultSpecifier).Local
	id2 := second.Specifiers[0].(*ast.ImportDefaultSpecifier).Local
	assert.NotEqual(t, id1, id2)

	decl, ok := out[2].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "templates", decl.Name)
	assert.Equal(t, &ast.ObjectExpression{Properties: []ast.Property{
		{Key: "welcome", Value: ast.Ident(id1)},
		{Key: "bye", Value: ast.Ident(id2)},
	}}, decl.Init)

	assert.Equal(t, `import _templates_welcome_1 from "/app/emails/welcome.hbs";
import _templates_bye_2 from "/app/emails/bye.hbs";
const templates = {
  welcome: _templates_welcome_1,
  bye: _templates_bye_2
};`, ast.Print(out))
}

func TestSynthesize_NamespaceImport(t *testing.T) {
	out := synth.Synthesize(importReq(types.NamespaceBinding{Name: "all"}, false), emails)
	require.Len(t, out, 3)

	for _, stmt := range out[:2] {
		decl := stmt.(*ast.ImportDeclaration)
		_, ok := decl.Specifiers[0].(*ast.ImportNamespaceSpecifier)
		assert.True(t, ok)
	}
	assert.Equal(t, "all", out[2].(*ast.VariableDeclaration).Name)
}

func TestSynthesize_DefaultImportWithMetas(t *testing.T) {
	files := []types.FileMatch{{
		Filename: "/routes/index.ts",
		Segments: []types.Segment{types.Absent(), types.Some("index")},
	}}
	req := importReq(types.DefaultBinding{Name: "routes"}, true)
	req.Source = "./routes/**/*.ts"

	out := synth.Synthesize(req, files)
	require.Len(t, out, 2)

	assert.Equal(t, `import _routes_index_1 from "/routes/index.ts";
const routes = {
  index: {
    filename: "/routes/index.ts",
    matches: [null, "index"],
    exports: _routes_index_1
  }
};`, ast.Print(out))
}

func TestSynthesize_NamedImport(t *testing.T) {
	out := synth.Synthesize(importReq(types.NamedBinding{Names: []string{"welcome"}}, false), emails)

	assert.Equal(t, []ast.Statement{
		ast.DefaultImport("welcome", "/app/emails/welcome.hbs"),
	}, out)
}

func TestSynthesize_NamedImportJoinsSegments(t *testing.T) {
	files := []types.FileMatch{match("/routes/users/auth.ts", "users", "auth")}
	req := importReq(types.NamedBinding{Names: []string{"auth"}}, false)

	out := synth.Synthesize(req, files)
	assert.Equal(t, `import users_auth from "/routes/users/auth.ts";`, ast.Print(out))
}

func TestSynthesize_DefaultWithNamed(t *testing.T) {
	pages := []types.FileMatch{
		match("/app/pages/about.js", "about"),
		match("/app/pages/home.js", "home"),
		match("/app/pages/team.js", "team"),
	}
	req := importReq(types.DefaultBinding{Name: "d", Named: []string{"home"}}, false)
	req.Source = "./pages/*.js"

	assert.Equal(t, `import _d_about_1 from "/app/pages/about.js";
import home from "/app/pages/home.js";
import _d_team_2 from "/app/pages/team.js";
const d = {
  about: _d_about_1,
  team: _d_team_2
};`, ast.Print(synth.Synthesize(req, pages)))
}

func TestSynthesize_DuplicateExportKeyWarns(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = saved })

	files := []types.FileMatch{
		match("/src/a/b_c.ts", "a", "b_c"),
		match("/src/a_b/c.ts", "a_b", "c"),
	}
	req := importReq(types.DefaultBinding{Name: "all"}, false)
	req.Source = "./src/**/*.ts"

	out := synth.Synthesize(req, files)
	require.Len(t, out, 3)

	assert.Contains(t, buf.String(), "Duplicate export key")
	assert.Contains(t, buf.String(), `"key":"a_b_c"`)
	assert.Contains(t, buf.String(), `"shadows":"/src/a/b_c.ts"`)
}

func TestSynthesize_SideEffectImport(t *testing.T) {
	out := synth.Synthesize(importReq(nil, false), emails)

	assert.Equal(t, `import "/app/emails/welcome.hbs";
import "/app/emails/bye.hbs";`, ast.Print(out))
}

func TestSynthesize_Require(t *testing.T) {
	req := &types.Request{Kind: types.KindRequire, Source: "./emails/*.hbs", From: "/app/mail.ts"}

	out := synth.Synthesize(req, emails)
	assert.Equal(t, `[require("/app/emails/welcome.hbs"), require("/app/emails/bye.hbs")];`, ast.Print(out))
}

func TestSynthesize_RequireWithMetas(t *testing.T) {
	req := &types.Request{
		Kind:      types.KindRequire,
		Source:    "@/routes/**/*.ts",
		From:      "/app/index.ts",
		WithMetas: true,
	}
	files := []types.FileMatch{match("/routes/users/auth.ts", "users", "auth")}

	out := synth.Synthesize(req, files)
	require.Len(t, out, 1)

	arr := out[0].(*ast.ExpressionStatement).Expression.(*ast.ArrayExpression)
	require.Len(t, arr.Elements, 1)
	assert.Equal(t, synth.MetadataRecord(files[0], ast.Require("/routes/users/auth.ts")), arr.Elements[0])

	assert.Equal(t, `[
  {
    filename: "/routes/users/auth.ts",
    matches: ["users", "auth"],
    exports: require("/routes/users/auth.ts")
  }
];`, ast.Print(out))
}

func TestSynthesize_MetadataShape(t *testing.T) {
	req := &types.Request{Kind: types.KindRequire, Source: "./*.ts", From: "/x/index.ts", WithMetas: true}
	files := []types.FileMatch{match("/x/a.ts", "a"), match("/x/b.ts", "b")}

	out := synth.Synthesize(req, files)
	arr := out[0].(*ast.ExpressionStatement).Expression.(*ast.ArrayExpression)
	for i, el := range arr.Elements {
		record := el.(*ast.ObjectExpression)
		require.Len(t, record.Properties, 3)
		assert.Equal(t, synth.KeyFilename, record.Properties[0].Key)
		assert.Equal(t, synth.KeyMatches, record.Properties[1].Key)
		assert.Equal(t, synth.KeyExports, record.Properties[2].Key)
		assert.Equal(t, &ast.ArrayExpression{Elements: []ast.Expression{ast.String(files[i].Segments[0].Value)}},
			record.Properties[1].Value)
	}
}

func TestSynthesize_SelfExclusion(t *testing.T) {
	files := []types.FileMatch{
		match("/app/mail.ts", "mail"),
		match("/app/other.ts", "other"),
	}

	for _, binding := range []types.Binding{
		nil,
		types.DefaultBinding{Name: "mods"},
		types.NamespaceBinding{Name: "mods"},
		types.NamedBinding{Names: []string{"mail", "other"}},
	} {
		t.Run(types.ShapeName(binding), func(t *testing.T) {
			req := &types.Request{Kind: types.KindImport, Source: "./*.ts", From: "/app/mail.ts", Imported: binding}
			printed := ast.Print(synth.Synthesize(req, files))
			assert.NotContains(t, printed, `"/app/mail.ts"`)
			assert.Contains(t, printed, `"/app/other.ts"`)
		})
	}

	t.Run("require", func(t *testing.T) {
		req := &types.Request{Kind: types.KindRequire, Source: "./*.ts", From: "/app/mail.ts"}
		printed := ast.Print(synth.Synthesize(req, files))
		assert.Equal(t, `[require("/app/other.ts")];`, printed)
	})
}

func TestSynthesize_UniqueIdentifiers(t *testing.T) {
	// Keys that sanitize to the same text still get distinct locals
	files := []types.FileMatch{
		match("/a/x-y.js", "x-y"),
		match("/a/x_y.js", "x_y"),
		match("/a/x y.js", "x y"),
		match("/a/1.js", "1"),
	}
	req := &types.Request{
		Kind:     types.KindImport,
		Source:   "./a/*.js",
		From:     "/index.js",
		Imported: types.DefaultBinding{Name: "mods"},
	}

	out := synth.Synthesize(req, files)
	require.Len(t, out, 5)

	seen := map[string]bool{}
	for _, stmt := range out[:4] {
		local := stmt.(*ast.ImportDeclaration).Specifiers[0].(*ast.ImportDefaultSpecifier).Local
		assert.True(t, ast.IsValidIdentifier(local), local)
		assert.Equal(t, byte('_'), local[0])
		assert.False(t, seen[local], "duplicate identifier %s", local)
		seen[local] = true
	}
}

func TestSynthesize_NoMatches(t *testing.T) {
	t.Run("require_gives_empty_array", func(t *testing.T) {
		req := &types.Request{Kind: types.KindRequire, Source: "./*.ts", From: "/x.ts"}
		assert.Equal(t, "[];", ast.Print(synth.Synthesize(req, nil)))
	})

	t.Run("default_gives_empty_object", func(t *testing.T) {
		out := synth.Synthesize(importReq(types.DefaultBinding{Name: "templates"}, false), nil)
		assert.Equal(t, "const templates = {};", ast.Print(out))
	})

	t.Run("side_effect_gives_nothing", func(t *testing.T) {
		assert.Empty(t, synth.Synthesize(importReq(nil, false), nil))
	})
}

func TestIdentGenerator(t *testing.T) {
	var gen synth.IdentGenerator
	assert.Equal(t, "_a_1", gen.Next("a"))
	assert.Equal(t, "_a_2", gen.Next("a"))
	assert.Equal(t, "__9lives_3", gen.Next("9lives"))
	assert.Equal(t, "_a_b_4", gen.Next("a/b"))
}
