package paths

import (
	"path/filepath"
	"sort"
	"strings"
)

// AliasMap maps alias prefixes to their replacement
type AliasMap map[string]string

// Remove replaces the longest alias prefix of source. Sources without a
// known alias are returned unchanged.
func (m AliasMap) Remove(source string) string {
	for _, alias := range m.byLength() {
		if strings.HasPrefix(source, alias) {
			return m[alias] + strings.TrimPrefix(source, alias)
		}
	}
	return source
}

// Rooted returns a copy of m with relative replacements anchored at root
func (m AliasMap) Rooted(root string) AliasMap {
	out := make(AliasMap, len(m))
	for alias, target := range m {
		if filepath.IsAbs(target) || target == "" {
			out[alias] = target
			continue
		}
		joined := filepath.Join(root, target)
		if strings.HasSuffix(target, "/") {
			joined += string(filepath.Separator)
		}
		out[alias] = joined
	}
	return out
}

func (m AliasMap) byLength() []string {
	aliases := make([]string, 0, len(m))
	for alias := range m {
		aliases = append(aliases, alias)
	}
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i]) != len(aliases[j]) {
			return len(aliases[i]) > len(aliases[j])
		}
		return aliases[i] < aliases[j]
	})
	return aliases
}
