package jshost

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var simpleEscapes = map[byte]string{
	'n': "\n", 't': "\t", 'r': "\r", 'b': "\b", 'f': "\f", 'v': "\v",
}

// unescape decodes the escape sequences of a JavaScript string literal body.
// Malformed escapes are kept verbatim; the parser has already reported
// syntax errors.
func unescape(body string) string {
	if !strings.Contains(body, `\`) {
		return body
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			sb.WriteByte(c)
			i++
			continue
		}

		next := body[i+1]
		switch {
		case simpleEscapes[next] != "":
			sb.WriteString(simpleEscapes[next])
			i += 2
		case next == '0' && (i+2 == len(body) || !isDigit(body[i+2])):
			sb.WriteByte(0)
			i += 2
		case next == '\n':
			i += 2
		case next == '\r':
			i += 2
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case next == 'x':
			r, n := hexRune(body[i+2:], 2)
			if n == 0 {
				sb.WriteByte(next)
				i += 2
				continue
			}
			sb.WriteRune(r)
			i += 2 + n
		case next == 'u':
			r, n := unicodeEscape(body[i+2:])
			if n == 0 {
				sb.WriteByte(next)
				i += 2
				continue
			}
			i += 2 + n
			if utf16.IsSurrogate(r) && strings.HasPrefix(body[i:], `\u`) {
				if low, m := unicodeEscape(body[i+2:]); m > 0 {
					if pair := utf16.DecodeRune(r, low); pair != utf8.RuneError {
						r = pair
						i += 2 + m
					}
				}
			}
			sb.WriteRune(r)
		default:
			// a backslash before a line or paragraph separator continues the line
			r, size := utf8.DecodeRuneInString(body[i+1:])
			if r != '\u2028' && r != '\u2029' {
				sb.WriteRune(r)
			}
			i += 1 + size
		}
	}
	return sb.String()
}

// unicodeEscape reads the part of a \u escape after the u: four hex digits
// or a braced code point
func unicodeEscape(s string) (rune, int) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0
		}
		return rune(v), end + 1
	}
	return hexRune(s, 4)
}

func hexRune(s string, digits int) (rune, int) {
	if len(s) < digits {
		return 0, 0
	}
	v, err := strconv.ParseUint(s[:digits], 16, 32)
	if err != nil {
		return 0, 0
	}
	return rune(v), digits
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
