// Package synth generates the default replacement for a glob import or
// require when no rule supplied one.
package synth

import (
	"slices"

	"github.com/arthur-debert/importglob/pkg/ast"
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/types"
)

// ExportSeparator joins segments into export keys and binding names
const ExportSeparator = "_"

// Metadata record keys
const (
	KeyFilename = "filename"
	KeyMatches  = "matches"
	KeyExports  = "exports"
)

// Synthesize builds the replacement statements for req over files. Matches
// of the requesting file itself are skipped.
func Synthesize(req *types.Request, files []types.FileMatch) []ast.Statement {
	logger := logging.GetLogger("synth")

	files = withoutSelf(files, req.From)

	var out []ast.Statement
	switch req.Kind {
	case types.KindRequire:
		out = synthesizeRequire(req, files)
	default:
		out = synthesizeImport(req, files)
	}

	logger.Debug().
		Str("source", req.Source).
		Str("binding", types.ShapeName(req.Imported)).
		Bool("withMetas", req.WithMetas).
		Int("files", len(files)).
		Int("statements", len(out)).
		Msg("Synthesized replacement")

	return out
}

func withoutSelf(files []types.FileMatch, from string) []types.FileMatch {
	out := make([]types.FileMatch, 0, len(files))
	for _, f := range files {
		if f.Filename == from {
			continue
		}
		out = append(out, f)
	}
	return out
}

func synthesizeRequire(req *types.Request, files []types.FileMatch) []ast.Statement {
	elements := make([]ast.Expression, 0, len(files))
	for _, f := range files {
		var ref ast.Expression = ast.Require(f.Filename)
		if req.WithMetas {
			ref = MetadataRecord(f, ref)
		}
		elements = append(elements, ref)
	}
	return []ast.Statement{
		&ast.ExpressionStatement{Expression: &ast.ArrayExpression{Elements: elements}},
	}
}

func synthesizeImport(req *types.Request, files []types.FileMatch) []ast.Statement {
	switch b := req.Imported.(type) {
	case nil:
		return sideEffectImports(files)
	case types.NamedBinding:
		return namedImports(b, files)
	case types.DefaultBinding:
		return aggregateImports(req, b.Name, false, files)
	case types.NamespaceBinding:
		return aggregateImports(req, b.Name, true, files)
	default:
		// unreachable while Binding stays sealed
		return nil
	}
}

func sideEffectImports(files []types.FileMatch) []ast.Statement {
	out := make([]ast.Statement, 0, len(files))
	for _, f := range files {
		out = append(out, ast.SideEffectImport(f.Filename))
	}
	return out
}

func namedImports(b types.NamedBinding, files []types.FileMatch) []ast.Statement {
	var out []ast.Statement
	for _, f := range files {
		if !b.Has(f.BaseName()) {
			continue
		}
		out = append(out, namedImport(f))
	}
	return out
}

// namedImport binds a file requested by base name to its joined segments
func namedImport(f types.FileMatch) ast.Statement {
	return ast.DefaultImport(ast.SanitizeIdentifier(f.JoinSegments(ExportSeparator)), f.Filename)
}

// aggregateImports imports every file under a synthetic identifier and
// collects them in `const name = {...}`. Files whose base name is also
// requested by a named specifier get their own import instead, in walk
// order.
func aggregateImports(req *types.Request, name string, namespace bool, files []types.FileMatch) []ast.Statement {
	logger := logging.GetLogger("synth")
	named := types.RequestedNames(req.Imported)

	var gen IdentGenerator
	imported := make([]types.ImportedFile, 0, len(files))
	out := make([]ast.Statement, 0, len(files)+1)
	keys := make(map[string]string, len(files))

	for _, f := range files {
		if slices.Contains(named, f.BaseName()) {
			out = append(out, namedImport(f))
			continue
		}

		key := f.JoinSegments(ExportSeparator)
		if prev, dup := keys[key]; dup {
			logger.Warn().
				Str("source", req.Source).
				Str("key", key).
				Str("file", f.Filename).
				Str("shadows", prev).
				Msg("Duplicate export key, the later file wins")
		}
		keys[key] = f.Filename

		local := gen.Next(name + ExportSeparator + key)
		imported = append(imported, types.ImportedFile{FileMatch: f, Local: local, ExportName: key})

		if namespace {
			out = append(out, ast.NamespaceImport(local, f.Filename))
		} else {
			out = append(out, ast.DefaultImport(local, f.Filename))
		}
	}

	props := make([]ast.Property, 0, len(imported))
	for _, file := range imported {
		var value ast.Expression = ast.Ident(file.Local)
		if req.WithMetas {
			value = MetadataRecord(file.FileMatch, value)
		}
		props = append(props, ast.Property{Key: file.ExportName, Value: value})
	}

	return append(out, ast.Const(name, &ast.ObjectExpression{Properties: props}))
}

// MetadataRecord builds `{ filename, matches, exports }` for a file. Absent
// segments become null.
func MetadataRecord(f types.FileMatch, exports ast.Expression) *ast.ObjectExpression {
	matches := make([]ast.Expression, 0, len(f.Segments))
	for _, s := range f.Segments {
		if s.Present {
			matches = append(matches, ast.String(s.Value))
		} else {
			matches = append(matches, &ast.NullLiteral{})
		}
	}

	return &ast.ObjectExpression{Properties: []ast.Property{
		{Key: KeyFilename, Value: ast.String(f.Filename)},
		{Key: KeyMatches, Value: &ast.ArrayExpression{Elements: matches}},
		{Key: KeyExports, Value: exports},
	}}
}
