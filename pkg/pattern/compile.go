package pattern

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/importglob/pkg/errors"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

// Pattern is a compiled glob
type Pattern struct {
	glob     string
	root     string
	re       *regexp.Regexp
	groups   int
	allowDot bool
}

// Option configures compilation
type Option func(*Pattern)

// WithDot lets wildcards match dot-prefixed names
func WithDot() Option {
	return func(p *Pattern) {
		p.allowDot = true
	}
}

// Compile translates an absolute glob into a capturing matcher. Malformed
// globs fail with ErrPatternInvalid.
func Compile(glob string, opts ...Option) (*Pattern, error) {
	slashed := filepath.ToSlash(glob)
	if !doublestar.ValidatePattern(slashed) {
		return nil, errors.Newf(errors.ErrPatternInvalid, "malformed glob pattern %q", glob).
			WithDetail("pattern", glob)
	}

	root, rest := doublestar.SplitPattern(slashed)

	expr, groups, err := translate(slashed)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "cannot compile glob pattern %q", glob).
			WithDetail("pattern", glob)
	}

	p := &Pattern{
		glob:     glob,
		root:     filepath.FromSlash(root),
		re:       re,
		groups:   groups,
		allowDot: strings.HasPrefix(rest, ".") || strings.Contains(rest, "/."),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Glob returns the pattern as given
func (p *Pattern) Glob() string {
	return p.glob
}

// RootDir returns the static directory prefix that has to be walked
func (p *Pattern) RootDir() string {
	return p.root
}

// Groups returns the number of capture groups, one per wildcard token
func (p *Pattern) Groups() int {
	return p.groups
}

// Expr returns the compiled regular expression source
func (p *Pattern) Expr() string {
	return p.re.String()
}

// Match matches filename against the pattern and returns the raw captures,
// one per wildcard token. A capture whose group did not participate in the
// match is absent.
func (p *Pattern) Match(filename string) ([]types.Segment, bool) {
	slashed := filepath.ToSlash(filename)
	idx := p.re.FindStringSubmatchIndex(slashed)
	if idx == nil {
		return nil, false
	}
	if !p.allowDot && p.hasDotComponent(slashed) {
		return nil, false
	}

	raw := make([]types.Segment, 0, p.groups)
	for g := 1; g <= p.groups; g++ {
		start, end := idx[2*g], idx[2*g+1]
		if start < 0 {
			raw = append(raw, types.Absent())
			continue
		}
		raw = append(raw, types.Some(slashed[start:end]))
	}
	return raw, true
}

// Relative returns the slash-separated part of filename below the root
// directory. Every capture lies within it.
func (p *Pattern) Relative(filename string) string {
	return strings.TrimPrefix(filepath.ToSlash(filename), filepath.ToSlash(p.root))
}

func (p *Pattern) hasDotComponent(slashed string) bool {
	for _, part := range strings.Split(p.Relative(slashed), "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// translate converts a slash-separated glob into a regular expression and
// returns the number of capture groups it introduced
func translate(glob string) (string, int, error) {
	var sb strings.Builder
	groups := 0

	for i := 0; i < len(glob); i++ {
		c := glob[i]
		switch c {
		case '*':
			if i+1 < len(glob) && glob[i+1] == '*' {
				i++
				if i+1 < len(glob) && glob[i+1] == '/' {
					i++
					sb.WriteString(`(?:(.*)/)?`)
				} else {
					sb.WriteString(`(.*?)`)
				}
			} else {
				sb.WriteString(`([^/]*?)`)
			}
			groups++
		case '?':
			sb.WriteString(`([^/])`)
			groups++
		case '[':
			end := classEnd(glob, i)
			if end < 0 {
				return "", 0, errors.Newf(errors.ErrPatternInvalid, "unterminated character class in %q", glob)
			}
			sb.WriteString("(")
			sb.WriteString(translateClass(glob[i+1 : end]))
			sb.WriteString(")")
			groups++
			i = end
		case '{':
			end := strings.IndexByte(glob[i:], '}')
			if end < 0 {
				return "", 0, errors.Newf(errors.ErrPatternInvalid, "unterminated alternation in %q", glob)
			}
			end += i
			alts := strings.Split(glob[i+1:end], ",")
			for j, alt := range alts {
				alts[j] = regexp.QuoteMeta(alt)
			}
			sb.WriteString("(" + strings.Join(alts, "|") + ")")
			groups++
			i = end
		case '\\':
			if i+1 < len(glob) {
				i++
				sb.WriteString(regexp.QuoteMeta(glob[i : i+1]))
			}
		default:
			sb.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}

	return sb.String(), groups, nil
}

// classEnd returns the index of the bracket closing the class opened at start
func classEnd(glob string, start int) int {
	i := start + 1
	if i < len(glob) && (glob[i] == '!' || glob[i] == '^') {
		i++
	}
	if i < len(glob) && glob[i] == ']' {
		i++
	}
	for ; i < len(glob); i++ {
		switch glob[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}
	return -1
}

func translateClass(body string) string {
	var sb strings.Builder
	sb.WriteString("[")
	if strings.HasPrefix(body, "!") || strings.HasPrefix(body, "^") {
		sb.WriteString("^/")
		body = body[1:]
	}
	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '\\':
			if i+1 < len(body) {
				i++
				sb.WriteString(regexp.QuoteMeta(body[i : i+1]))
			}
		case '[', ']', '^':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteString("]")
	return sb.String()
}
