package pattern

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// Matcher is a compiled route pattern.
type Matcher struct {
	pattern *Pattern
	// regexp is nil for patterns without tokens, which match by equality.
	regexp *regexp.Regexp
	// prefix is the literal text before the first token.
	prefix string
}

// Compile parses raw and compiles it into an anchored matcher.
func Compile(raw string) (*Matcher, error) {
	p, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return p.Compile()
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(raw string) *Matcher {
	m, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return m
}

// Compile builds an anchored matcher from a parsed pattern.
func (p *Pattern) Compile() (*Matcher, error) {
	m := &Matcher{
		pattern: p,
		prefix:  p.Prefix(),
	}
	if !p.HasParams() {
		return m, nil
	}

	for _, param := range p.params {
		// Options are checked alone so that a stray ')' cannot escape its
		// group and break the anchoring of the whole pattern.
		if _, err := regexp.Compile(Fragment(param)); err != nil {
			return nil, compileError(p.raw, param.String(), fmt.Errorf("%w: %w", ErrInvalidRegexp, err))
		}
	}

	re, err := regexp.Compile(p.Regexp())
	if err != nil {
		return nil, compileError(p.raw, "", fmt.Errorf("%w: %w", ErrInvalidRegexp, err))
	}
	m.regexp = re

	return m, nil
}

// Regexp returns the anchored regular expression source for the pattern.
// Literal text is quoted and each token becomes a named group.
func (p *Pattern) Regexp() string {
	var pattern bytes.Buffer

	pattern.WriteByte('^')
	for _, el := range p.elements {
		if el.Kind == KindLiteral {
			pattern.WriteString(regexp.QuoteMeta(el.Literal))
			continue
		}
		fmt.Fprintf(&pattern, "(?P<%s>%s)", el.Param.Name, Fragment(el.Param))
	}
	pattern.WriteByte('$')

	return pattern.String()
}

// Pattern returns the parsed pattern the matcher was built from.
func (m *Matcher) Pattern() *Pattern {
	return m.pattern
}

// Regexp returns the compiled regexp, or nil for token-free patterns.
func (m *Matcher) Regexp() *regexp.Regexp {
	return m.regexp
}

// AllowsMethod reports whether a request with the given method may match.
func (m *Matcher) AllowsMethod(method string) bool {
	return m.pattern.AllowsMethod(method)
}

// Match reports whether the normalized path matches and returns the
// extracted parameters. Token-free patterns return a nil map on success.
func (m *Matcher) Match(path string) (map[string]string, bool) {
	if m.regexp == nil {
		return nil, path == m.pattern.path
	}

	// Cheap rejection before running the regexp.
	if !strings.HasPrefix(path, m.prefix) {
		return nil, false
	}

	matches := m.regexp.FindStringSubmatch(path)
	if matches == nil {
		return nil, false
	}

	params := make(map[string]string, len(m.pattern.params))
	for _, param := range m.pattern.params {
		if i := m.regexp.SubexpIndex(param.Name); i > 0 && i < len(matches) {
			params[param.Name] = matches[i]
		}
	}

	return params, true
}
