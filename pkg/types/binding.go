package types

import (
	"encoding/json"
	"slices"
)

// Binding is the closed set of import binding shapes. The unexported marker
// method keeps the set sealed so consumers can switch over it exhaustively:
// DefaultBinding, NamespaceBinding and NamedBinding. A nil Binding is the
// "none" shape.
type Binding interface {
	bindingShape() string
}

// DefaultBinding is `import name from "..."`. Named lists the specifiers
// of `import name, { a, b } from "..."`.
type DefaultBinding struct {
	Name  string
	Named []string
}

// NamespaceBinding is `import * as name from "..."`
type NamespaceBinding struct {
	Name  string
	Named []string
}

// NamedBinding is `import { a, b } from "..."`
type NamedBinding struct {
	Names []string
}

func (DefaultBinding) bindingShape() string   { return "default" }
func (NamespaceBinding) bindingShape() string { return "namespace" }
func (NamedBinding) bindingShape() string     { return "named" }

// Has reports whether name was requested
func (b NamedBinding) Has(name string) bool {
	return slices.Contains(b.Names, name)
}

// ShapeName returns "none", "default", "namespace" or "named"
func ShapeName(b Binding) string {
	if b == nil {
		return "none"
	}
	return b.bindingShape()
}

// AggregateName returns the identifier a default or namespace binding
// introduces, and false for the other shapes
func AggregateName(b Binding) (string, bool) {
	switch v := b.(type) {
	case DefaultBinding:
		return v.Name, true
	case NamespaceBinding:
		return v.Name, true
	default:
		return "", false
	}
}

// RequestedNames returns the base names requested next to or instead of an
// aggregate
func RequestedNames(b Binding) []string {
	switch v := b.(type) {
	case DefaultBinding:
		return v.Named
	case NamespaceBinding:
		return v.Named
	case NamedBinding:
		return v.Names
	default:
		return nil
	}
}

type bindingJSON struct {
	Type  string   `json:"type" yaml:"type"`
	Name  string   `json:"name,omitempty" yaml:"name,omitempty"`
	Names []string `json:"names,omitempty" yaml:"names,omitempty"`
}

func (b DefaultBinding) MarshalJSON() ([]byte, error) {
	return json.Marshal(bindingJSON{Type: b.bindingShape(), Name: b.Name, Names: b.Named})
}

func (b NamespaceBinding) MarshalJSON() ([]byte, error) {
	return json.Marshal(bindingJSON{Type: b.bindingShape(), Name: b.Name, Names: b.Named})
}

func (b NamedBinding) MarshalJSON() ([]byte, error) {
	return json.Marshal(bindingJSON{Type: b.bindingShape(), Names: b.Names})
}
