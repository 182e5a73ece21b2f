package types

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// Segment is one semantic capture for a wildcard position. An absent segment
// corresponds to a wildcard that matched nothing (e.g. "**/" over zero
// directories).
type Segment struct {
	Value   string
	Present bool
}

// Some builds a present segment
func Some(value string) Segment {
	return Segment{Value: value, Present: true}
}

// Absent builds an absent segment
func Absent() Segment {
	return Segment{}
}

// MarshalJSON encodes absent segments as null
func (s Segment) MarshalJSON() ([]byte, error) {
	if !s.Present {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// MarshalYAML encodes absent segments as null
func (s Segment) MarshalYAML() (interface{}, error) {
	if !s.Present {
		return nil, nil
	}
	return s.Value, nil
}

// FileMatch is a file matched by a glob together with its semantic captures,
// aligned left to right with the wildcard positions of the pattern
type FileMatch struct {
	Filename string    `json:"filename" yaml:"filename"`
	Segments []Segment `json:"matches" yaml:"matches"`
}

// JoinSegments joins the present segments with sep
func (m FileMatch) JoinSegments(sep string) string {
	parts := make([]string, 0, len(m.Segments))
	for _, s := range m.Segments {
		if s.Present {
			parts = append(parts, s.Value)
		}
	}
	return strings.Join(parts, sep)
}

// BaseName returns the filename without directory and extension
func (m FileMatch) BaseName() string {
	base := filepath.Base(m.Filename)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		return strings.TrimSuffix(base, ext)
	}
	return base
}

// ImportedFile is a FileMatch bound to a synthetic local identifier
type ImportedFile struct {
	FileMatch

	// Local is the synthetic identifier, unique within one replacement
	Local string

	// ExportName is the key used in the aggregate object
	ExportName string
}
