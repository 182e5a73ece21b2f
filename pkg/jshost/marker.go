package jshost

import "strings"

// MarkerTag is the comment tag that forces the debug trace of the next
// occurrence. Followed by "off" it silences the trace instead.
const MarkerTag = "@importglob-debug"

// ParseMarker reads a debug marker from the text of a comment
func ParseMarker(comment string) (enabled bool, ok bool) {
	text := strings.TrimSpace(comment)
	switch {
	case strings.HasPrefix(text, "//"):
		text = text[2:]
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimSuffix(text[2:], "*/")
	default:
		return false, false
	}

	fields := strings.Fields(strings.TrimLeft(text, "*"))
	if len(fields) == 0 || fields[0] != MarkerTag {
		return false, false
	}
	switch {
	case len(fields) == 1:
		return true, true
	case len(fields) == 2 && fields[1] == "on":
		return true, true
	case len(fields) == 2 && fields[1] == "off":
		return false, true
	}
	return false, false
}
