package config

import (
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/paths"
)

// Config is the effective configuration of a run
type Config struct {
	Debug       bool              `koanf:"debug" toml:"debug" json:"debug" yaml:"debug"`
	CacheSize   int               `koanf:"cache_size" toml:"cache_size" json:"cacheSize" yaml:"cacheSize"`
	Root        string            `koanf:"root" toml:"root" json:"root" yaml:"root"`
	Extensions  []string          `koanf:"extensions" toml:"extensions" json:"extensions" yaml:"extensions"`
	Concurrency int               `koanf:"concurrency" toml:"concurrency" json:"concurrency" yaml:"concurrency"`
	Aliases     map[string]string `koanf:"aliases" toml:"aliases" json:"aliases" yaml:"aliases"`
	Rules       []Rule            `koanf:"rules" toml:"rules" json:"rules" yaml:"rules"`

	// Sources lists the files that contributed, in load order
	Sources []string `koanf:"-" toml:"-" json:"sources" yaml:"sources"`
}

// Rule declares a rule bound to a named replacer
type Rule struct {
	Name string `koanf:"name" toml:"name" json:"name" yaml:"name"`

	// Source is a regular expression tested against the module path
	Source string `koanf:"source" toml:"source" json:"source" yaml:"source"`

	// Kind restricts the rule to "import" or "require"; empty means both
	Kind string `koanf:"kind" toml:"kind,omitempty" json:"kind,omitempty" yaml:"kind,omitempty"`

	AnyPath  bool   `koanf:"any_path" toml:"any_path,omitempty" json:"anyPath,omitempty" yaml:"anyPath,omitempty"`
	Debug    bool   `koanf:"debug" toml:"debug,omitempty" json:"debug,omitempty" yaml:"debug,omitempty"`
	Replacer string `koanf:"replacer" toml:"replacer" json:"replacer" yaml:"replacer"`
}

// AliasMap returns the aliases with relative targets anchored at the
// configured root, itself relative to projectDir
func (c *Config) AliasMap(projectDir string) paths.AliasMap {
	root := c.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(projectDir, root)
	}
	return paths.AliasMap(c.Aliases).Rooted(root)
}

// Validate checks values that cannot be expressed by the decoder
func (c *Config) Validate() error {
	if c.CacheSize < 0 {
		return errors.Newf(errors.ErrConfigValid, "cache_size must not be negative, got %d", c.CacheSize)
	}
	if c.Concurrency < 1 {
		return errors.Newf(errors.ErrConfigValid, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	for i, rule := range c.Rules {
		if err := rule.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid rule %d", i).
				WithDetail("rule", rule.Name)
		}
	}
	return nil
}

// Validate checks a single declared rule
func (r Rule) Validate() error {
	if r.Replacer == "" {
		return errors.New(errors.ErrRuleInvalid, "rule has no replacer")
	}
	switch r.Kind {
	case "", "import", "require":
	default:
		return errors.Newf(errors.ErrRuleInvalid, "unknown rule kind %q", r.Kind)
	}
	if _, err := regexp.Compile(r.Source); err != nil {
		return errors.Wrapf(err, errors.ErrRuleInvalid, "invalid source expression %q", r.Source)
	}
	return nil
}
