package types

import (
	"strings"
)

// ImportKind distinguishes the two statement forms the engine understands
type ImportKind string

const (
	KindImport  ImportKind = "import"
	KindRequire ImportKind = "require"
)

// MetasPrefix marks a module path that requests metadata-wrapped output
const MetasPrefix = "metas:"

// Wildcard is the token that makes a module path glob-capable
const Wildcard = "*"

// Request is the canonical description of one import/require occurrence.
// It is built once per occurrence and never mutated afterwards.
type Request struct {
	// Kind is either KindImport or KindRequire
	Kind ImportKind `json:"type" yaml:"type"`

	// Source is the module path as written, without the metas: prefix
	Source string `json:"source" yaml:"source"`

	// From is the absolute path of the file containing the occurrence
	From string `json:"from" yaml:"from"`

	// WithMetas requests structured {filename, matches, exports} records
	WithMetas bool `json:"withMetas" yaml:"withMetas"`

	// Imported is the binding shape; nil means no shape (bare require or
	// side-effect import)
	Imported Binding `json:"imported,omitempty" yaml:"imported,omitempty"`
}

// IsGlob reports whether the source contains a wildcard
func (r *Request) IsGlob() bool {
	return strings.Contains(r.Source, Wildcard)
}

// SplitMetas strips the metadata marker from a raw module path
func SplitMetas(raw string) (source string, withMetas bool) {
	if strings.HasPrefix(raw, MetasPrefix) {
		return strings.TrimPrefix(raw, MetasPrefix), true
	}
	return raw, false
}
