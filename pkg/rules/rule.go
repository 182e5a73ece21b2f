package rules

import (
	"github.com/arthur-debert/importglob/pkg/ast"
	"github.com/arthur-debert/importglob/pkg/types"
)

// Transformer is the capability a rule contributes to the engine
type Transformer interface {
	// Test reports whether the rule applies to the request
	Test(req *types.Request) bool

	// Replace returns the statements replacing the occurrence. Returning
	// false defers to the default synthesis.
	Replace(req *types.Request, files []types.FileMatch) ([]ast.Statement, bool)
}

// TransformerFuncs adapts a pair of functions to the Transformer interface.
// A nil ReplaceFunc always defers.
type TransformerFuncs struct {
	TestFunc    func(req *types.Request) bool
	ReplaceFunc func(req *types.Request, files []types.FileMatch) ([]ast.Statement, bool)
}

// Test calls TestFunc
func (f TransformerFuncs) Test(req *types.Request) bool {
	if f.TestFunc == nil {
		return false
	}
	return f.TestFunc(req)
}

// Replace calls ReplaceFunc
func (f TransformerFuncs) Replace(req *types.Request, files []types.FileMatch) ([]ast.Statement, bool) {
	if f.ReplaceFunc == nil {
		return nil, false
	}
	return f.ReplaceFunc(req, files)
}

// Rule is one entry of the ordered rule list
type Rule struct {
	// Name identifies the rule in logs and traces
	Name string

	Transformer Transformer

	// AnyPath lets the rule apply to sources without a wildcard
	AnyPath bool

	// Debug enables tracing for occurrences this rule handles
	Debug bool
}

// Label returns the rule name, or a placeholder for anonymous rules
func (r *Rule) Label() string {
	if r == nil {
		return ""
	}
	if r.Name == "" {
		return "<anonymous>"
	}
	return r.Name
}
