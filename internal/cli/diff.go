package cli

import (
	"strings"

	"github.com/arthur-debert/importglob/pkg/style"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines kept around each change
const diffContext = 2

// renderDiff returns a line diff of before and after with a few lines of
// context. Skipped runs of unchanged lines are shown as "...".
func renderDiff(path string, before, after []byte) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	sb.WriteString(style.MutedStyle.Render("--- "+path) + "\n")
	sb.WriteString(style.MutedStyle.Render("+++ "+path) + "\n")

	for i, d := range diffs {
		text := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			for _, line := range text {
				sb.WriteString(style.InsertStyle.Render("+"+line) + "\n")
			}
		case diffmatchpatch.DiffDelete:
			for _, line := range text {
				sb.WriteString(style.DeleteStyle.Render("-"+line) + "\n")
			}
		default:
			writeContext(&sb, text, i > 0, i < len(diffs)-1)
		}
	}
	return sb.String()
}

// writeContext writes the unchanged lines adjacent to the changes before
// and after them
func writeContext(sb *strings.Builder, text []string, afterChange, beforeChange bool) {
	var keep []string
	skipped := false
	for j, line := range text {
		nearPrev := afterChange && j < diffContext
		nearNext := beforeChange && j >= len(text)-diffContext
		if nearPrev || nearNext {
			keep = append(keep, " "+line)
			continue
		}
		if !skipped {
			keep = append(keep, style.MutedStyle.Render("..."))
			skipped = true
		}
	}
	for _, line := range keep {
		sb.WriteString(line + "\n")
	}
}

func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\n")
	}
	return lines
}
