// Package types defines the core data model shared by the resolution pipeline:
// the canonical Request built from an import/require occurrence, the Binding
// sum type describing how files are bound to identifiers, and the FileMatch
// records produced by glob resolution.
package types
