package config

import (
	"bytes"

	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const sampleHeader = `# importglob project configuration
#
# Rules are tried in order and the first one whose source expression
# matches the module path wins. Built-in replacers: default, lazy, skip,
# side-effects.

`

// Sample returns an example project configuration
func Sample() *Config {
	return &Config{
		Debug:       false,
		CacheSize:   64,
		Root:        ".",
		Extensions:  []string{".js", ".jsx", ".ts", ".tsx"},
		Concurrency: 4,
		Aliases: map[string]string{
			"@/": "src/",
		},
		Rules: []Rule{
			{
				Name:     "lazy-pages",
				Source:   "^@/pages/",
				Kind:     "import",
				Replacer: "lazy",
			},
			{
				Name:     "drop-fixtures",
				Source:   "/fixtures/",
				AnyPath:  true,
				Replacer: "skip",
			},
		},
	}
}

// Marshal encodes cfg as TOML, prefixed with an explanatory header
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(sampleHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}
