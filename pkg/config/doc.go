// Package config loads importglob configuration.
//
// Configuration is layered, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config, $XDG_CONFIG_HOME/importglob/config.toml
//  3. the project config, .importglob.toml in the project directory, or
//     the file given explicitly
//  4. IMPORTGLOB_* environment variables, for example IMPORTGLOB_DEBUG=true
//     or IMPORTGLOB_CACHE_SIZE=64
//
// A project config looks like:
//
//	debug = false
//	cache_size = 64
//
//	[aliases]
//	"@/" = "src/"
//
//	[[rules]]
//	name = "lazy-pages"
//	source = "^@/pages/"
//	kind = "import"
//	replacer = "lazy"
package config
