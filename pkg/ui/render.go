package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/synth"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// AbsentMarker stands for a segment that matched nothing in tables and text
const AbsentMarker = "-"

// Resolution is the outcome of resolving a glob outside of any source file
type Resolution struct {
	Source  string            `json:"source" yaml:"source"`
	From    string            `json:"from" yaml:"from"`
	Pattern string            `json:"pattern" yaml:"pattern"`
	Files   []types.FileMatch `json:"files" yaml:"files"`
}

// RenderResolution writes r to w in format. FormatAuto must be resolved by
// the caller.
func RenderResolution(w io.Writer, r Resolution, format Format) error {
	if r.Files == nil {
		r.Files = []types.FileMatch{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode JSON")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		return enc.Close()
	case FormatText:
		for _, f := range r.Files {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", f.Filename, f.JoinSegments(synth.ExportSeparator)); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
			}
		}
		return nil
	case FormatTable:
		return renderTable(w, r)
	default:
		return errors.Newf(errors.ErrInvalidInput, "cannot render format %s", format)
	}
}

func renderTable(w io.Writer, r Resolution) error {
	if len(r.Files) == 0 {
		_, err := fmt.Fprintf(w, "No files match %s\n", r.Pattern)
		return err
	}

	data := pterm.TableData{{"File", "Key", "Segments"}}
	for _, f := range r.Files {
		data = append(data, []string{f.Filename, f.JoinSegments(synth.ExportSeparator), segmentList(f.Segments)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	_, err = fmt.Fprintf(w, "%s\n%d file(s) match %s\n", table, len(r.Files), r.Pattern)
	return err
}

func segmentList(segments []types.Segment) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		if s.Present {
			parts[i] = s.Value
		} else {
			parts[i] = AbsentMarker
		}
	}
	return strings.Join(parts, ", ")
}
