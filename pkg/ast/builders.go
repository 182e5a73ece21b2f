package ast

import (
	"regexp"
	"strings"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var nonIdentifierRe = regexp.MustCompile(`[^A-Za-z0-9_$]`)

// Ident builds an identifier
func Ident(name string) *Identifier {
	return &Identifier{Name: name}
}

// String builds a string literal
func String(value string) *StringLiteral {
	return &StringLiteral{Value: value}
}

// Require builds `require("<path>")`
func Require(path string) *CallExpression {
	return &CallExpression{
		Callee:    Ident("require"),
		Arguments: []Expression{String(path)},
	}
}

// SideEffectImport builds `import "<path>"`
func SideEffectImport(path string) *ImportDeclaration {
	return &ImportDeclaration{Source: path}
}

// DefaultImport builds `import <local> from "<path>"`
func DefaultImport(local, path string) *ImportDeclaration {
	return &ImportDeclaration{
		Specifiers: []ImportSpecifier{&ImportDefaultSpecifier{Local: local}},
		Source:     path,
	}
}

// NamespaceImport builds `import * as <local> from "<path>"`
func NamespaceImport(local, path string) *ImportDeclaration {
	return &ImportDeclaration{
		Specifiers: []ImportSpecifier{&ImportNamespaceSpecifier{Local: local}},
		Source:     path,
	}
}

// Const builds `const <name> = <init>`
func Const(name string, init Expression) *VariableDeclaration {
	return &VariableDeclaration{Kind: "const", Name: name, Init: init}
}

// IsValidIdentifier reports whether name can be used as a bare identifier
func IsValidIdentifier(name string) bool {
	return identifierRe.MatchString(name)
}

// SanitizeIdentifier replaces every character not allowed in an identifier
// with an underscore and prefixes names starting with a digit
func SanitizeIdentifier(name string) string {
	out := nonIdentifierRe.ReplaceAllString(name, "_")
	if out == "" || strings.ContainsAny(out[:1], "0123456789") {
		out = "_" + out
	}
	return out
}
