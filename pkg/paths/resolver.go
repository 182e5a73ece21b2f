package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/importglob/pkg/types"
)

// AliasRemover rewrites a leading alias token of a module path
type AliasRemover func(source string) string

// Resolver turns request sources into absolute candidate paths
type Resolver struct {
	removeAliases AliasRemover
}

// NewResolver creates a resolver. removeAliases may be nil.
func NewResolver(removeAliases AliasRemover) *Resolver {
	return &Resolver{removeAliases: removeAliases}
}

// Resolve returns the candidate path for req. The result may still contain
// wildcard tokens.
func (r *Resolver) Resolve(req *types.Request) string {
	return r.ResolveSource(req.Source, req.From)
}

// ResolveSource resolves source as written in the file at from
func (r *Resolver) ResolveSource(source, from string) string {
	if strings.HasPrefix(source, ".") {
		return filepath.Join(filepath.Dir(from), source)
	}
	if r.removeAliases != nil {
		return r.removeAliases(source)
	}
	return source
}
