package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of configuration environment variables
const EnvPrefix = "IMPORTGLOB_"

// LoadOptions controls which layers are read
type LoadOptions struct {
	// ProjectDir is searched for .importglob.toml. Defaults to ".".
	ProjectDir string

	// ConfigFile replaces the project config lookup and must exist
	ConfigFile string

	// SkipUserConfig ignores the per-user config file
	SkipUserConfig bool

	// Overrides are applied last, keyed like the TOML file
	Overrides map[string]interface{}
}

// Load reads and validates the layered configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUserConfig {
		userPath := paths.ConfigFilePath()
		if loaded, err := loadIfExists(k, userPath); err != nil {
			return nil, err
		} else if loaded {
			sources = append(sources, userPath)
		}
	}

	// 3. Project config
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		if _, err := loadIfExists(k, opts.ConfigFile); err != nil {
			return nil, err
		}
		sources = append(sources, opts.ConfigFile)
	} else {
		projectDir := opts.ProjectDir
		if projectDir == "" {
			projectDir = "."
		}
		projectPath := filepath.Join(projectDir, paths.ProjectConfigFile)
		if loaded, err := loadIfExists(k, projectPath); err != nil {
			return nil, err
		} else if loaded {
			sources = append(sources, projectPath)
		}
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("sources", sources).
		Int("rules", len(cfg.Rules)).
		Int("aliases", len(cfg.Aliases)).
		Msg("Configuration loaded")

	return &cfg, nil
}

func loadIfExists(k *koanf.Koanf, path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return true, nil
}
