// Test Type: Unit Test
// Description: Tests for layered configuration loading, validation and sample generation

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/importglob/pkg/config"
	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(paths.EnvConfigDir, filepath.Join(home, "config"))
	t.Setenv("IMPORTGLOB_DEBUG", "")
	t.Setenv("IMPORTGLOB_CACHE_SIZE", "")
	os.Unsetenv("IMPORTGLOB_DEBUG")
	os.Unsetenv("IMPORTGLOB_CACHE_SIZE")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.LoadOptions{ProjectDir: t.TempDir()})
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, 0, cfg.CacheSize)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Contains(t, cfg.Extensions, ".ts")
	assert.Contains(t, cfg.Extensions, ".jsx")
	assert.Empty(t, cfg.Rules)
	assert.Empty(t, cfg.Aliases)
	assert.Empty(t, cfg.Sources)
}

func TestLoad_Layers(t *testing.T) {
	home := isolate(t)
	project := t.TempDir()

	userPath := filepath.Join(home, "config", "config.toml")
	writeFile(t, userPath, `
cache_size = 16

[aliases]
"~/" = "lib/"
`)
	projectPath := filepath.Join(project, ".importglob.toml")
	writeFile(t, projectPath, `
debug = true

[aliases]
"@/" = "src/"

[[rules]]
name = "lazy-pages"
source = "^@/pages/"
kind = "import"
replacer = "lazy"
`)

	cfg, err := config.Load(config.LoadOptions{ProjectDir: project})
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 16, cfg.CacheSize)
	assert.Equal(t, map[string]string{"~/": "lib/", "@/": "src/"}, cfg.Aliases)
	assert.Equal(t, []config.Rule{{
		Name:     "lazy-pages",
		Source:   "^@/pages/",
		Kind:     "import",
		Replacer: "lazy",
	}}, cfg.Rules)
	assert.Equal(t, []string{userPath, projectPath}, cfg.Sources)
}

func TestLoad_EnvAndOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("IMPORTGLOB_CACHE_SIZE", "32")
	t.Setenv("IMPORTGLOB_EXTENSIONS", ".vue,.svelte")

	cfg, err := config.Load(config.LoadOptions{
		ProjectDir: t.TempDir(),
		Overrides:  map[string]interface{}{"debug": true},
	})
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.CacheSize)
	assert.Equal(t, []string{".vue", ".svelte"}, cfg.Extensions)
	assert.True(t, cfg.Debug)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)

	t.Run("missing", func(t *testing.T) {
		_, err := config.Load(config.LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		writeFile(t, path, "debug = = true")

		_, err := config.Load(config.LoadOptions{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid_rule", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.toml")
		writeFile(t, path, `
[[rules]]
name = "broken"
source = "("
replacer = "skip"
`)

		_, err := config.Load(config.LoadOptions{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestRule_Validate(t *testing.T) {
	tests := []struct {
		name string
		rule config.Rule
		ok   bool
	}{
		{"valid", config.Rule{Source: "^@/", Replacer: "lazy"}, true},
		{"valid_kind", config.Rule{Source: ".", Kind: "require", Replacer: "skip"}, true},
		{"missing_replacer", config.Rule{Source: "x"}, false},
		{"unknown_kind", config.Rule{Source: "x", Kind: "export", Replacer: "skip"}, false},
		{"bad_expression", config.Rule{Source: "[", Replacer: "skip"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, errors.ErrRuleInvalid))
		})
	}
}

func TestConfig_AliasMap(t *testing.T) {
	cfg := &config.Config{
		Root:    "web",
		Aliases: map[string]string{"@/": "src/", "#": "/abs/"},
	}

	aliases := cfg.AliasMap("/project")
	assert.Equal(t, "/project/web/src/pages/*.tsx", aliases.Remove("@/pages/*.tsx"))
	assert.Equal(t, "/abs/x", aliases.Remove("#x"))
}

func TestMarshal_SampleRoundTrip(t *testing.T) {
	isolate(t)

	data, err := config.Marshal(config.Sample())
	require.NoError(t, err)
	assert.Contains(t, string(data), "# importglob project configuration")
	assert.Contains(t, string(data), "[[rules]]")

	path := filepath.Join(t.TempDir(), "sample.toml")
	writeFile(t, path, string(data))

	cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, config.Sample().Rules, cfg.Rules)
	assert.Equal(t, config.Sample().Aliases, cfg.Aliases)
	assert.Equal(t, 64, cfg.CacheSize)
}
