package topics

import "strings"

// Renderer turns raw topic text into terminal output. format is the
// topic's file extension including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim, normalizing the trailing newline.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
