// Package walker lists the files reachable from a directory. It performs an
// unrestricted recursive descent and reports only leaf files; all filtering
// is left to the pattern matcher.
package walker

import (
	"path/filepath"

	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/filesystem"
	"github.com/arthur-debert/importglob/pkg/logging"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/rs/zerolog"
)

// Lister returns every file path below dir
type Lister interface {
	Walk(dir string) ([]string, error)
}

// Walker lists files through a types.FS
type Walker struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a walker over fs. A nil fs uses the OS filesystem.
func New(fs types.FS) *Walker {
	if fs == nil {
		fs = filesystem.NewOS()
	}
	return &Walker{
		fs:     fs,
		logger: logging.GetLogger("walker"),
	}
}

// Walk returns the absolute paths of all files below dir, in directory-entry
// order, depth first
func (w *Walker) Walk(dir string) ([]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve directory %s", dir)
	}

	var files []string
	if err := w.walk(absDir, &files); err != nil {
		return nil, err
	}

	w.logger.Trace().
		Str("dir", absDir).
		Int("files", len(files)).
		Msg("Walked directory")

	return files, nil
}

func (w *Walker) walk(dir string, files *[]string) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot list directory %s", dir).
			WithDetail("dir", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := w.walk(path, files); err != nil {
				return err
			}
			continue
		}
		*files = append(*files, path)
	}
	return nil
}
