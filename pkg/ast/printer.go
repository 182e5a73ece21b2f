package ast

import (
	"fmt"
	"strconv"
	"strings"
)

const indentUnit = "  "

// Print renders statements as JavaScript source, one statement per line
func Print(stmts []Statement) string {
	p := &printer{}
	for i, stmt := range stmts {
		if i > 0 {
			p.sb.WriteString("\n")
		}
		p.statement(stmt)
	}
	return p.sb.String()
}

// PrintNode renders a single node
func PrintNode(n Node) string {
	p := &printer{}
	switch v := n.(type) {
	case Statement:
		p.statement(v)
	case Expression:
		p.expression(v)
	case ImportSpecifier:
		p.specifier(v)
	default:
		panic(fmt.Sprintf("ast: cannot print %T", n))
	}
	return p.sb.String()
}

type printer struct {
	sb     strings.Builder
	indent int
}

func (p *printer) newline() {
	p.sb.WriteString("\n")
	p.sb.WriteString(strings.Repeat(indentUnit, p.indent))
}

func (p *printer) statement(stmt Statement) {
	switch s := stmt.(type) {
	case *ImportDeclaration:
		p.importDeclaration(s)
	case *VariableDeclaration:
		p.sb.WriteString(s.Kind)
		p.sb.WriteString(" ")
		p.sb.WriteString(s.Name)
		p.sb.WriteString(" = ")
		p.expression(s.Init)
		p.sb.WriteString(";")
	case *ExpressionStatement:
		p.expression(s.Expression)
		p.sb.WriteString(";")
	default:
		panic(fmt.Sprintf("ast: unknown statement %T", stmt))
	}
}

func (p *printer) importDeclaration(s *ImportDeclaration) {
	p.sb.WriteString("import ")
	if len(s.Specifiers) == 0 {
		p.sb.WriteString(strconv.Quote(s.Source))
		p.sb.WriteString(";")
		return
	}

	var named []ImportSpecifier
	wrote := false
	for _, spec := range s.Specifiers {
		switch spec.(type) {
		case *ImportNamedSpecifier:
			named = append(named, spec)
			continue
		}
		if wrote {
			p.sb.WriteString(", ")
		}
		p.specifier(spec)
		wrote = true
	}
	if len(named) > 0 {
		if wrote {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString("{ ")
		for i, spec := range named {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.specifier(spec)
		}
		p.sb.WriteString(" }")
	}
	p.sb.WriteString(" from ")
	p.sb.WriteString(strconv.Quote(s.Source))
	p.sb.WriteString(";")
}

func (p *printer) specifier(spec ImportSpecifier) {
	switch s := spec.(type) {
	case *ImportDefaultSpecifier:
		p.sb.WriteString(s.Local)
	case *ImportNamespaceSpecifier:
		p.sb.WriteString("* as ")
		p.sb.WriteString(s.Local)
	case *ImportNamedSpecifier:
		p.sb.WriteString(s.Imported)
		if s.Local != "" && s.Local != s.Imported {
			p.sb.WriteString(" as ")
			p.sb.WriteString(s.Local)
		}
	case *UnknownSpecifier:
		p.sb.WriteString(s.Text)
	default:
		panic(fmt.Sprintf("ast: unknown specifier %T", spec))
	}
}

func (p *printer) expression(expr Expression) {
	switch e := expr.(type) {
	case *Identifier:
		p.sb.WriteString(e.Name)
	case *StringLiteral:
		p.sb.WriteString(strconv.Quote(e.Value))
	case *NullLiteral:
		p.sb.WriteString("null")
	case *CallExpression:
		p.expression(e.Callee)
		p.sb.WriteString("(")
		for i, arg := range e.Arguments {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.expression(arg)
		}
		p.sb.WriteString(")")
	case *ImportExpression:
		p.sb.WriteString("import(")
		p.sb.WriteString(strconv.Quote(e.Source))
		p.sb.WriteString(")")
	case *ArrowFunction:
		p.sb.WriteString("() => ")
		p.expression(e.Body)
	case *ArrayExpression:
		p.array(e)
	case *ObjectExpression:
		p.object(e)
	default:
		panic(fmt.Sprintf("ast: unknown expression %T", expr))
	}
}

func (p *printer) array(e *ArrayExpression) {
	if len(e.Elements) == 0 {
		p.sb.WriteString("[]")
		return
	}
	if !hasComposite(e.Elements) {
		p.sb.WriteString("[")
		for i, el := range e.Elements {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.expression(el)
		}
		p.sb.WriteString("]")
		return
	}

	p.sb.WriteString("[")
	p.indent++
	for i, el := range e.Elements {
		p.newline()
		p.expression(el)
		if i < len(e.Elements)-1 {
			p.sb.WriteString(",")
		}
	}
	p.indent--
	p.newline()
	p.sb.WriteString("]")
}

func (p *printer) object(e *ObjectExpression) {
	if len(e.Properties) == 0 {
		p.sb.WriteString("{}")
		return
	}
	p.sb.WriteString("{")
	p.indent++
	for i, prop := range e.Properties {
		p.newline()
		if IsValidIdentifier(prop.Key) {
			p.sb.WriteString(prop.Key)
		} else {
			p.sb.WriteString(strconv.Quote(prop.Key))
		}
		p.sb.WriteString(": ")
		p.expression(prop.Value)
		if i < len(e.Properties)-1 {
			p.sb.WriteString(",")
		}
	}
	p.indent--
	p.newline()
	p.sb.WriteString("}")
}

func hasComposite(elements []Expression) bool {
	for _, el := range elements {
		switch el.(type) {
		case *ObjectExpression, *ArrayExpression:
			return true
		}
	}
	return false
}
