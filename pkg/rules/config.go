package rules

import (
	"regexp"

	"github.com/arthur-debert/importglob/pkg/ast"
	"github.com/arthur-debert/importglob/pkg/config"
	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/replacers"
	"github.com/arthur-debert/importglob/pkg/types"
)

// declared is a rule from configuration bound to a named replacer
type declared struct {
	source   *regexp.Regexp
	kind     types.ImportKind
	replacer replacers.Replacer
}

func (d *declared) Test(req *types.Request) bool {
	if d.kind != "" && req.Kind != d.kind {
		return false
	}
	return d.source.MatchString(req.Source)
}

func (d *declared) Replace(req *types.Request, files []types.FileMatch) ([]ast.Statement, bool) {
	return d.replacer(req, files)
}

// FromConfig builds rules from configuration, keeping their order
func FromConfig(decls []config.Rule) ([]Rule, error) {
	logger := logging.GetLogger("rules.config")

	out := make([]Rule, 0, len(decls))
	for i, decl := range decls {
		if err := decl.Validate(); err != nil {
			return nil, errors.Wrapf(err, errors.ErrRuleInvalid, "invalid rule %d", i).
				WithDetail("rule", decl.Name)
		}

		replacer, err := replacers.Get(decl.Replacer)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrRuleInvalid, "rule %d uses an unknown replacer", i).
				WithDetail("rule", decl.Name).
				WithDetail("replacer", decl.Replacer)
		}

		name := decl.Name
		if name == "" {
			name = decl.Replacer
		}
		out = append(out, Rule{
			Name: name,
			Transformer: &declared{
				source:   regexp.MustCompile(decl.Source),
				kind:     types.ImportKind(decl.Kind),
				replacer: replacer,
			},
			AnyPath: decl.AnyPath,
			Debug:   decl.Debug,
		})
	}

	logger.Debug().Int("rules", len(out)).Msg("Loaded rules from configuration")
	return out, nil
}
