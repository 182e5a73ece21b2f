// Package request turns import and require occurrences into canonical
// Requests. It only classifies the occurrence; whether the source is
// glob-capable is decided later by the rule engine.
package request

import (
	"github.com/arthur-debert/importglob/pkg/ast"
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/types"
)

// FromRequire builds a Request from a call expression. It reports false
// unless the call is `require` with exactly one string literal argument.
func FromRequire(call *ast.CallExpression, from string) (*types.Request, bool) {
	if call == nil {
		return nil, false
	}
	callee, ok := call.Callee.(*ast.Identifier)
	if !ok || callee.Name != "require" || len(call.Arguments) != 1 {
		return nil, false
	}
	lit, ok := call.Arguments[0].(*ast.StringLiteral)
	if !ok {
		return nil, false
	}

	source, withMetas := types.SplitMetas(lit.Value)
	return &types.Request{
		Kind:      types.KindRequire,
		Source:    source,
		From:      from,
		WithMetas: withMetas,
	}, true
}

// FromImport builds a Request from an import declaration. Specifiers of an
// unknown shape are logged and ignored.
func FromImport(decl *ast.ImportDeclaration, from string) *types.Request {
	source, withMetas := types.SplitMetas(decl.Source)
	return &types.Request{
		Kind:      types.KindImport,
		Source:    source,
		From:      from,
		WithMetas: withMetas,
		Imported:  bindingFor(decl, from),
	}
}

func bindingFor(decl *ast.ImportDeclaration, from string) types.Binding {
	var (
		def   *types.DefaultBinding
		ns    *types.NamespaceBinding
		names []string
	)

	for _, spec := range decl.Specifiers {
		switch s := spec.(type) {
		case *ast.ImportDefaultSpecifier:
			def = &types.DefaultBinding{Name: s.Local}
		case *ast.ImportNamespaceSpecifier:
			ns = &types.NamespaceBinding{Name: s.Local}
		case *ast.ImportNamedSpecifier:
			names = append(names, s.Local)
		default:
			logger := logging.GetLogger("request")
			ev := logger.Warn().
				Str("source", decl.Source).
				Str("from", from)
			if u, ok := s.(*ast.UnknownSpecifier); ok {
				ev = ev.Str("kind", u.Kind).Str("text", u.Text)
			}
			ev.Msg("Ignoring unsupported import specifier")
		}
	}

	// Named specifiers ride along with an aggregate. A namespace wins over
	// a default when both are present.
	switch {
	case ns != nil:
		ns.Named = names
		return *ns
	case def != nil:
		def.Named = names
		return *def
	case len(names) > 0:
		return types.NamedBinding{Names: names}
	default:
		return nil
	}
}
