package synth

import (
	"strconv"

	"github.com/arthur-debert/importglob/pkg/ast"
)

// IdentGenerator hands out synthetic identifiers for one replacement.
// Every identifier starts with "_" and ends with "_<n>" where n is a
// counter, so two identifiers from the same generator never collide.
type IdentGenerator struct {
	next int
}

// Next returns a fresh identifier derived from hint
func (g *IdentGenerator) Next(hint string) string {
	g.next++
	return "_" + ast.SanitizeIdentifier(hint) + "_" + strconv.Itoa(g.next)
}
