package jshost

import (
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/arthur-debert/importglob/pkg/ast"
)

const (
	grammarJavaScript = "javascript"
	grammarTypeScript = "typescript"
	grammarTSX        = "tsx"
)

var grammarFuncs = map[string]func() unsafe.Pointer{
	grammarJavaScript: javascript.GetLanguage,
	grammarTypeScript: typescript.GetLanguage,
	grammarTSX:        tsx.GetLanguage,
}

var grammarCache sync.Map

// GrammarFor returns the grammar name used to parse filename
func GrammarFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ts", ".mts", ".cts":
		return grammarTypeScript
	case ".tsx":
		return grammarTSX
	default:
		return grammarJavaScript
	}
}

func language(name string) *sitter.Language {
	if cached, ok := grammarCache.Load(name); ok {
		return cached.(*sitter.Language)
	}
	lang := sitter.NewLanguage(grammarFuncs[name]())
	grammarCache.Store(name, lang)
	return lang
}

// occurrence is an import declaration or require call found in a file
type occurrence struct {
	decl *ast.ImportDeclaration
	call *ast.CallExpression

	start, end uint

	// statement is the range of the expression statement made of the call
	// alone, if any
	statement bool
	stmtStart uint
	stmtEnd   uint
	marker    *bool
	line      int
}

type scanner struct {
	src   []byte
	found []occurrence
}

func scan(root sitter.Node, src []byte) []occurrence {
	s := &scanner{src: src}
	s.walk(root, nil)
	return s.found
}

// walk visits the named children of n. A marker comment applies to the
// next sibling and to everything nested in it.
func (s *scanner) walk(n sitter.Node, inherited *bool) {
	var pending *bool
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			if m, ok := ParseMarker(child.Content(s.src)); ok {
				pending = &m
			}
			continue
		}
		marker := inherited
		if pending != nil {
			marker, pending = pending, nil
		}
		s.visit(child, n, marker)
	}
}

func (s *scanner) visit(n, parent sitter.Node, marker *bool) {
	switch n.Type() {
	case "import_statement":
		if parent.Type() != "program" {
			return
		}
		if decl, ok := importDeclaration(n, s.src); ok {
			s.found = append(s.found, occurrence{
				decl:   decl,
				start:  n.StartByte(),
				end:    n.EndByte(),
				marker: marker,
				line:   int(n.StartPoint().Row) + 1,
			})
		}
		return
	case "call_expression":
		if call, ok := requireCall(n, s.src); ok {
			occ := occurrence{
				call:   call,
				start:  n.StartByte(),
				end:    n.EndByte(),
				marker: marker,
				line:   int(n.StartPoint().Row) + 1,
			}
			if parent.Type() == "expression_statement" {
				occ.statement = true
				occ.stmtStart, occ.stmtEnd = parent.StartByte(), parent.EndByte()
			}
			s.found = append(s.found, occ)
			if isLiteralRequire(call) {
				return
			}
		}
	}
	s.walk(n, marker)
}

// importDeclaration converts a value import. Type-only imports and
// TypeScript import-equals declarations are skipped.
func importDeclaration(n sitter.Node, src []byte) (*ast.ImportDeclaration, bool) {
	source := n.ChildByFieldName("source")
	if source.IsNull() || source.Type() != "string" {
		return nil, false
	}
	if strings.HasPrefix(n.Content(src), "import type ") {
		return nil, false
	}

	decl := &ast.ImportDeclaration{
		Specifiers: []ast.ImportSpecifier{},
		Source:     stringValue(source.Content(src)),
	}
	for i := range n.NamedChildCount() {
		clause := n.NamedChild(i)
		if clause.Type() != "import_clause" {
			continue
		}
		for j := range clause.NamedChildCount() {
			decl.Specifiers = append(decl.Specifiers, specifiers(clause.NamedChild(j), src)...)
		}
	}
	return decl, true
}

func specifiers(n sitter.Node, src []byte) []ast.ImportSpecifier {
	switch n.Type() {
	case "identifier":
		return []ast.ImportSpecifier{&ast.ImportDefaultSpecifier{Local: n.Content(src)}}
	case "namespace_import":
		for i := range n.NamedChildCount() {
			if id := n.NamedChild(i); id.Type() == "identifier" {
				return []ast.ImportSpecifier{&ast.ImportNamespaceSpecifier{Local: id.Content(src)}}
			}
		}
	case "named_imports":
		var out []ast.ImportSpecifier
		for i := range n.NamedChildCount() {
			spec := n.NamedChild(i)
			if spec.Type() != "import_specifier" {
				continue
			}
			name := spec.ChildByFieldName("name")
			if name.IsNull() {
				out = append(out, &ast.UnknownSpecifier{Kind: spec.Type(), Text: spec.Content(src)})
				continue
			}
			imported := name.Content(src)
			if name.Type() == "string" {
				imported = stringValue(imported)
			}
			local := imported
			if alias := spec.ChildByFieldName("alias"); !alias.IsNull() {
				local = alias.Content(src)
			}
			out = append(out, &ast.ImportNamedSpecifier{Imported: imported, Local: local})
		}
		return out
	case "comment":
		return nil
	}
	return []ast.ImportSpecifier{&ast.UnknownSpecifier{Kind: n.Type(), Text: n.Content(src)}}
}

// requireCall converts a call whose callee is the bare identifier require.
// Arguments other than string literals are carried as opaque identifiers so
// the engine can reject the call.
func requireCall(n sitter.Node, src []byte) (*ast.CallExpression, bool) {
	callee := n.ChildByFieldName("function")
	if callee.IsNull() || callee.Type() != "identifier" || callee.Content(src) != "require" {
		return nil, false
	}
	call := &ast.CallExpression{Callee: ast.Ident("require"), Arguments: []ast.Expression{}}
	args := n.ChildByFieldName("arguments")
	if args.IsNull() {
		return call, true
	}
	for i := range args.NamedChildCount() {
		arg := args.NamedChild(i)
		switch arg.Type() {
		case "comment":
			continue
		case "string":
			call.Arguments = append(call.Arguments, ast.String(stringValue(arg.Content(src))))
		default:
			call.Arguments = append(call.Arguments, ast.Ident(arg.Content(src)))
		}
	}
	return call, true
}

// isLiteralRequire reports whether the call has exactly one string
// argument. Other calls are never rewritten, so their arguments are scanned
// for nested occurrences.
func isLiteralRequire(call *ast.CallExpression) bool {
	if len(call.Arguments) != 1 {
		return false
	}
	_, ok := call.Arguments[0].(*ast.StringLiteral)
	return ok
}

// stringValue strips the quotes of a string literal and decodes its escapes
func stringValue(literal string) string {
	if len(literal) < 2 {
		return literal
	}
	return unescape(literal[1 : len(literal)-1])
}
