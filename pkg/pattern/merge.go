package pattern

import (
	"strings"

	"github.com/arthur-debert/importglob/pkg/types"
)

type span struct {
	start int
	end   int
	value string
}

// Merge reduces raw, possibly fragmented, captures into semantic segments.
//
// Captures are located in filename left to right. A capture found right at
// the end of the current segment extends it; one found further on starts a
// new segment. A capture that only occurs inside the current segment means
// the current one was an enclosing group, and the finer capture replaces it.
// Absent captures are kept as absent segments so positions stay aligned.
func Merge(filename string, raw []types.Segment) []types.Segment {
	segments := make([]types.Segment, 0, len(raw))
	var cur *span
	offset := 0

	flush := func() {
		if cur != nil {
			segments = append(segments, types.Some(cur.value))
			cur = nil
		}
	}

	for _, capture := range raw {
		if !capture.Present {
			flush()
			segments = append(segments, types.Absent())
			continue
		}

		pos := indexFrom(filename, capture.Value, offset)
		if pos < 0 && cur != nil {
			inner := indexFrom(filename, capture.Value, cur.start)
			if inner >= 0 && inner+len(capture.Value) <= cur.end {
				cur = &span{start: inner, end: inner + len(capture.Value), value: capture.Value}
				offset = cur.end
				continue
			}
		}
		if pos < 0 {
			flush()
			segments = append(segments, types.Some(capture.Value))
			continue
		}

		end := pos + len(capture.Value)
		if cur != nil && pos <= cur.end {
			if end > cur.end {
				cur.value += filename[cur.end:end]
				cur.end = end
			}
			offset = cur.end
			continue
		}

		flush()
		cur = &span{start: pos, end: end, value: capture.Value}
		offset = end
	}
	flush()

	return segments
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	idx := strings.Index(s[from:], substr)
	if idx < 0 {
		return -1
	}
	return from + idx
}
