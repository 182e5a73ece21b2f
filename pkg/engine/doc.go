// Package engine wires the resolution pipeline together.
//
// Build takes the options and ordered rules of a build and returns a Plugin.
// A host hands the Plugin one occurrence at a time, an import declaration or
// a require call together with the absolute path of its file, and splices
// back the returned statements. A Result with Replaced unset is a no-op and
// the occurrence must be left untouched.
//
// Each occurrence goes through the same steps: the request is normalized,
// a rule is selected, the source is resolved to an absolute glob, the root
// directory is walked and matched, and finally the selected rule or the
// default synthesizer produces the replacement. Filesystem and pattern
// errors abort the occurrence and are returned to the host.
package engine
