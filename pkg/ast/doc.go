// Package ast is the small JavaScript statement model the engine produces and
// consumes. Hosts convert their own syntax nodes into these types when handing
// an occurrence over, and splice printed replacements back. Nodes are plain
// values: the engine replaces whole statements and never mutates a host tree.
package ast
