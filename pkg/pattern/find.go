package pattern

import (
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/arthur-debert/importglob/pkg/walker"
)

// Find walks the pattern's root directory and returns every matching file
// with its merged segments, in walk order
func Find(lister walker.Lister, p *Pattern) ([]types.FileMatch, error) {
	logger := logging.GetLogger("pattern.find")

	files, err := lister.Walk(p.RootDir())
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("pattern", p.Glob()).
		Str("rootDir", p.RootDir()).
		Int("candidates", len(files)).
		Msg("Searching for files matching pattern")

	var matches []types.FileMatch
	for _, file := range files {
		raw, ok := p.Match(file)
		if !ok {
			continue
		}
		matches = append(matches, types.FileMatch{
			Filename: file,
			Segments: Merge(p.Relative(file), raw),
		})
	}

	logger.Debug().
		Str("pattern", p.Glob()).
		Int("matches", len(matches)).
		Msg("Pattern search complete")

	return matches, nil
}
