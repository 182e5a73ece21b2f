// Package paths turns raw module paths into absolute, glob-capable paths and
// locates the per-user directories importglob reads and writes.
//
// # Module paths
//
// A source that starts with "." is resolved against the directory of the
// file containing the occurrence. Any other source is handed to the
// configured alias remover, if there is one, and is otherwise used verbatim.
// Bare package names are therefore never treated as glob-capable.
//
// Alias removers are plain functions. AliasMap builds one from a prefix
// table, replacing the longest matching prefix:
//
//	aliases := paths.AliasMap{"@/": "/project/src/", "~": "/project"}
//	r := paths.NewResolver(aliases.Remove)
//	r.Resolve(req) // "@/routes/*.ts" -> "/project/src/routes/*.ts"
//
// # User directories
//
// ConfigDir and StateDir follow the XDG base directory layout, with the
// IMPORTGLOB_CONFIG_DIR and IMPORTGLOB_STATE_DIR environment variables
// taking precedence.
package paths
