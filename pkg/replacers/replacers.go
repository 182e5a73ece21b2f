// Package replacers holds the named replacement functions that declarative
// rules refer to.
//
// Built-ins:
//
//   - default: declines, so the default synthesis runs
//   - skip: removes the occurrence
//   - side-effects: one bare import per matched file
//   - lazy: dynamic import thunks, `() => import("<file>")`
package replacers

import (
	"github.com/arthur-debert/importglob/pkg/ast"
	"github.com/arthur-debert/importglob/pkg/registry"
	"github.com/arthur-debert/importglob/pkg/synth"
	"github.com/arthur-debert/importglob/pkg/types"
)

// Replacer produces the replacement for a request. Returning false defers
// to the default synthesis.
type Replacer func(req *types.Request, files []types.FileMatch) ([]ast.Statement, bool)

// Built-in replacer names
const (
	Default     = "default"
	Skip        = "skip"
	SideEffects = "side-effects"
	Lazy        = "lazy"
)

var builtins = registry.New[Replacer]("replacer")

func init() {
	registry.MustRegister(builtins, Default, Replacer(deferToDefault))
	registry.MustRegister(builtins, Skip, Replacer(skip))
	registry.MustRegister(builtins, SideEffects, Replacer(sideEffects))
	registry.MustRegister(builtins, Lazy, Replacer(lazy))
}

// Registry returns the registry of built-in replacers. Programs embedding
// the engine may register their own.
func Registry() *registry.Registry[Replacer] {
	return builtins
}

// Get looks a replacer up by name
func Get(name string) (Replacer, error) {
	return builtins.Get(name)
}

func deferToDefault(*types.Request, []types.FileMatch) ([]ast.Statement, bool) {
	return nil, false
}

func skip(*types.Request, []types.FileMatch) ([]ast.Statement, bool) {
	return []ast.Statement{}, true
}

func sideEffects(req *types.Request, files []types.FileMatch) ([]ast.Statement, bool) {
	out := make([]ast.Statement, 0, len(files))
	for _, f := range files {
		if f.Filename == req.From {
			continue
		}
		out = append(out, ast.SideEffectImport(f.Filename))
	}
	return out, true
}

// lazy defers loading of every matched file. Requires become an array of
// thunks; default and namespace imports bind an object of thunks keyed like
// the default synthesis. Other import shapes cannot be made lazy and defer.
func lazy(req *types.Request, files []types.FileMatch) ([]ast.Statement, bool) {
	thunk := func(f types.FileMatch) ast.Expression {
		var ref ast.Expression = &ast.ArrowFunction{Body: &ast.ImportExpression{Source: f.Filename}}
		if req.WithMetas {
			ref = synth.MetadataRecord(f, ref)
		}
		return ref
	}

	if req.Kind == types.KindRequire {
		elements := make([]ast.Expression, 0, len(files))
		for _, f := range files {
			if f.Filename == req.From {
				continue
			}
			elements = append(elements, thunk(f))
		}
		return []ast.Statement{
			&ast.ExpressionStatement{Expression: &ast.ArrayExpression{Elements: elements}},
		}, true
	}

	name, ok := types.AggregateName(req.Imported)
	if !ok {
		return nil, false
	}
	props := make([]ast.Property, 0, len(files))
	for _, f := range files {
		if f.Filename == req.From {
			continue
		}
		props = append(props, ast.Property{Key: f.JoinSegments(synth.ExportSeparator), Value: thunk(f)})
	}
	return []ast.Statement{ast.Const(name, &ast.ObjectExpression{Properties: props})}, true
}
