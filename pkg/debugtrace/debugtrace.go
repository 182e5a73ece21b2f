// Package debugtrace reports how individual occurrences were resolved.
//
// Tracing is decided per occurrence. An explicit marker on the occurrence
// wins, then the debug flag of the selected rule, then the global option.
package debugtrace

import (
	"github.com/arthur-debert/importglob/pkg/ast"
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/rules"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/rs/zerolog"
)

// Nothing is reported as the replacement of a no-op resolution
const Nothing = "<nothing>"

// Enabled applies the marker > rule > global precedence. A nil marker or
// rule does not take part.
func Enabled(marker *bool, rule *rules.Rule, global bool) bool {
	if marker != nil {
		return *marker
	}
	if rule != nil && rule.Debug {
		return true
	}
	return global
}

// Trace is everything known about one resolution
type Trace struct {
	// Original is the source text of the occurrence
	Original string

	Request *types.Request

	// Rule is the selected rule, nil for default synthesis
	Rule *rules.Rule

	// Pattern is the resolved glob
	Pattern string

	Files []types.FileMatch

	// Replacement is nil for a no-op
	Replacement []ast.Statement

	Replaced bool
}

// ReplacementText renders the replacement, or Nothing for a no-op
func (t Trace) ReplacementText() string {
	if !t.Replaced {
		return Nothing
	}
	return ast.Print(t.Replacement)
}

// Emitter writes traces as log events
type Emitter struct {
	logger zerolog.Logger
}

// NewEmitter creates an emitter writing to logger
func NewEmitter(logger zerolog.Logger) *Emitter {
	return &Emitter{logger: logger}
}

// Default returns an emitter on the global logger
func Default() *Emitter {
	return NewEmitter(logging.GetLogger("debug"))
}

// Report writes t regardless of the configured log level
func (e *Emitter) Report(t Trace) {
	ev := e.logger.Log().
		Str("original", t.Original).
		Str("replacement", t.ReplacementText()).
		Bool("replaced", t.Replaced)

	if t.Request != nil {
		ev = ev.Interface("request", t.Request)
	}
	if t.Rule != nil {
		ev = ev.Str("rule", t.Rule.Label())
	}
	if t.Pattern != "" {
		ev = ev.Str("pattern", t.Pattern)
	}
	if t.Files != nil {
		ev = ev.Interface("files", t.Files)
	}

	ev.Msg("Import glob resolved")
}
