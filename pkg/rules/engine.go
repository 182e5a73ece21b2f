package rules

import (
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/rs/zerolog"
)

// Engine holds the ordered, read-only rule list of a build
type Engine struct {
	rules  []Rule
	logger zerolog.Logger
}

// NewEngine creates an engine over a copy of rules
func NewEngine(rules []Rule) *Engine {
	return &Engine{
		rules:  append([]Rule(nil), rules...),
		logger: logging.GetLogger("rules.engine"),
	}
}

// Rules returns the rules in priority order
func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Select returns the first rule that is a candidate for req
func (e *Engine) Select(req *types.Request) (*Rule, bool) {
	glob := req.IsGlob()

	for i := range e.rules {
		rule := &e.rules[i]
		if rule.Transformer == nil {
			continue
		}
		if !rule.AnyPath && !glob {
			continue
		}
		if !rule.Transformer.Test(req) {
			continue
		}

		e.logger.Debug().
			Str("rule", rule.Label()).
			Str("source", req.Source).
			Str("from", req.From).
			Msg("Rule selected")
		return rule, true
	}

	return nil, false
}
