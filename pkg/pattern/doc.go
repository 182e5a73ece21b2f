// Package pattern compiles glob module paths into capturing matchers and
// repairs the raw captures into semantic path segments.
//
// # Wildcard Grammar
//
//   - `*` matches within one path segment
//   - `**` matches across segments; `**/` also matches zero directories, in
//     which case its capture is absent
//   - `?` matches one character
//   - `[abc]`, `[!abc]`, `[a-z]` match one character from a class
//   - `{a,b}` matches one of the alternatives
//   - `\x` escapes x
//
// Every wildcard token produces exactly one capture group, so raw captures
// align positionally with the tokens as written. Dot-prefixed files and
// directories are only matched when the pattern itself names a dot segment.
package pattern
