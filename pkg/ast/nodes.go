package ast

// Node is implemented by every syntax node
type Node interface {
	node()
}

// Statement is a top-level or block-level statement
type Statement interface {
	Node
	statementNode()
}

// Expression is any value-producing node
type Expression interface {
	Node
	expressionNode()
}

// ImportSpecifier is one binding inside an import declaration
type ImportSpecifier interface {
	Node
	specifierNode()
}

// ImportDeclaration is `import <specifiers> from "<source>"`
type ImportDeclaration struct {
	Specifiers []ImportSpecifier
	Source     string
}

// VariableDeclaration is `<kind> <name> = <init>`
type VariableDeclaration struct {
	Kind string
	Name string
	Init Expression
}

// ExpressionStatement wraps an expression used as a statement
type ExpressionStatement struct {
	Expression Expression
}

// ImportDefaultSpecifier is the `name` in `import name from`
type ImportDefaultSpecifier struct {
	Local string
}

// ImportNamespaceSpecifier is the `* as name` in `import * as name from`
type ImportNamespaceSpecifier struct {
	Local string
}

// ImportNamedSpecifier is the `imported as local` in `import { ... } from`
type ImportNamedSpecifier struct {
	Imported string
	Local    string
}

// UnknownSpecifier carries a specifier shape the host could not classify
type UnknownSpecifier struct {
	Kind string
	Text string
}

// Identifier is a reference to a binding
type Identifier struct {
	Name string
}

// StringLiteral is a quoted string
type StringLiteral struct {
	Value string
}

// NullLiteral is `null`
type NullLiteral struct{}

// ArrayExpression is `[a, b]`
type ArrayExpression struct {
	Elements []Expression
}

// Property is one `key: value` entry of an object literal
type Property struct {
	Key   string
	Value Expression
}

// ObjectExpression is `{ key: value }`
type ObjectExpression struct {
	Properties []Property
}

// CallExpression is `callee(args...)`
type CallExpression struct {
	Callee    Expression
	Arguments []Expression
}

// ImportExpression is the dynamic `import("<source>")`
type ImportExpression struct {
	Source string
}

// ArrowFunction is a parameterless `() => body`
type ArrowFunction struct {
	Body Expression
}

func (*ImportDeclaration) node()   {}
func (*VariableDeclaration) node() {}
func (*ExpressionStatement) node() {}

func (*ImportDeclaration) statementNode()   {}
func (*VariableDeclaration) statementNode() {}
func (*ExpressionStatement) statementNode() {}

func (*ImportDefaultSpecifier) node()   {}
func (*ImportNamespaceSpecifier) node() {}
func (*ImportNamedSpecifier) node()     {}
func (*UnknownSpecifier) node()         {}

func (*ImportDefaultSpecifier) specifierNode()   {}
func (*ImportNamespaceSpecifier) specifierNode() {}
func (*ImportNamedSpecifier) specifierNode()     {}
func (*UnknownSpecifier) specifierNode()         {}

func (*Identifier) node()       {}
func (*StringLiteral) node()    {}
func (*NullLiteral) node()      {}
func (*ArrayExpression) node()  {}
func (*ObjectExpression) node() {}
func (*CallExpression) node()   {}
func (*ImportExpression) node() {}
func (*ArrowFunction) node()    {}

func (*Identifier) expressionNode()       {}
func (*StringLiteral) expressionNode()    {}
func (*NullLiteral) expressionNode()      {}
func (*ArrayExpression) expressionNode()  {}
func (*ObjectExpression) expressionNode() {}
func (*CallExpression) expressionNode()   {}
func (*ImportExpression) expressionNode() {}
func (*ArrowFunction) expressionNode()    {}
