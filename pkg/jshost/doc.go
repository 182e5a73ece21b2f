// Package jshost applies the resolution engine to JavaScript and TypeScript
// source files.
//
// A file is parsed with tree-sitter. Top-level import declarations and
// require calls anywhere in the file are converted to occurrences and handed
// to an engine.Plugin one at a time, in source order. Replacements are
// printed and spliced back over the byte range of the occurrence; everything
// else in the file is kept byte for byte.
//
// An occurrence can force or silence its debug trace with a comment placed
// directly before it, or before the statement that encloses it:
//
//	/* @importglob-debug */
//	import pages from "./pages/*.tsx";
//
//	// @importglob-debug off
//	const routes = require("./routes/**/*.ts");
package jshost
