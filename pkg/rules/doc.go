// Package rules selects the caller-supplied transformation for a request.
//
// A Rule pairs a Transformer with a little metadata. Transformers are the
// only extension point of the engine: Test decides whether the rule applies
// to a request and Replace produces the replacement statements. Replace may
// decline by returning false, in which case the default synthesis runs.
//
// # Rule Priority
//
// Rules are evaluated in list order and the first candidate wins. A rule is
// a candidate when Test holds and either the rule sets AnyPath or the
// request source contains a wildcard. Callers control priority purely by
// ordering the list.
//
// # Configuration
//
// Rules can also be declared in configuration and bound to named replacers:
//
//	[[rules]]
//	name = "lazy-pages"
//	source = "^@/pages/"
//	kind = "import"
//	replacer = "lazy"
//
//	[[rules]]
//	name = "drop-fixtures"
//	source = "fixtures"
//	any_path = true
//	replacer = "skip"
package rules
