package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Expand wildcard imports into concrete statements"
	MsgTransformShort  = "Rewrite glob imports and requires in source files"
	MsgResolveShort    = "List the files a glob resolves to"
	MsgInitConfigShort = "Write a sample configuration file"
	MsgInitConfigLong  = "Write a sample .importglob.toml with aliases and rules to the current directory, or to the given path."
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgFileWritten      = "[path]%s[/path] [muted](%d replaced)[/muted]"
	MsgFileUnchanged    = "[muted]%s (unchanged)[/muted]"
	MsgTransformSummary = "[bold]%d[/bold] file(s), [bold]%d[/bold] of %d occurrence(s) replaced"
	MsgFileHeader       = "[muted]==> %s <==[/muted]"
	MsgConfigWritten    = "[success]✓[/success] Wrote sample configuration to [path]%s[/path]"
	MsgManWritten       = "[success]✓[/success] Wrote man pages to [path]%s[/path]"
	MsgVersionFormat    = "importglob version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrConfigExists   = "%s already exists, use --force to overwrite"
	MsgErrWriteExclusive = "--write and --diff cannot be combined"
	MsgErrNoFiles        = "no source files found"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file to use instead of ./.importglob.toml"
	MsgFlagProject = "Project directory holding .importglob.toml and the alias root"
	MsgFlagDebug   = "Trace every resolution"
	MsgFlagWrite   = "Write results back to the files"
	MsgFlagDiff    = "Print a diff instead of the rewritten source"
	MsgFlagFrom    = "File the glob is resolved for"
	MsgFlagFormat  = "Output format: auto, table, text, json or yaml"
	MsgFlagForce   = "Overwrite an existing file"
	MsgFlagStdout  = "Print the sample configuration instead of writing it"
	MsgFlagManDir  = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/transform-long.txt
	msgTransformLongRaw string
	MsgTransformLong    = strings.TrimSpace(msgTransformLongRaw)

	//go:embed msgs/transform-example.txt
	msgTransformExampleRaw string
	MsgTransformExample    = strings.TrimRight(msgTransformExampleRaw, "\n")

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
