package pattern

import (
	"fmt"
	"strings"
)

// ElementKind distinguishes literal text from parameter tokens.
type ElementKind int

const (
	KindLiteral ElementKind = iota
	KindParam
)

func (k ElementKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindParam:
		return "param"
	default:
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
}

// Param is a parsed parameter token.
type Param struct {
	Name    string
	Type    ParamType
	Options string
}

// String returns the token in pattern syntax.
func (p Param) String() string {
	if p.Options != "" {
		return "{" + p.Name + ":" + string(p.Type) + "(" + p.Options + ")}"
	}
	return "{" + p.Name + ":" + string(p.Type) + "}"
}

// Element is one piece of a parsed pattern path: literal text or a token.
type Element struct {
	Kind    ElementKind
	Literal string
	Param   Param
}

// Pattern is a parsed route pattern.
type Pattern struct {
	raw      string
	method   string
	path     string
	elements []Element
	params   []Param
}

// Parse parses a raw route pattern of the form [METHOD]path into a typed
// element list. The path is normalized with NormalizePath.
func Parse(raw string) (*Pattern, error) {
	method, path, err := splitMethod(raw)
	if err != nil {
		return nil, compileError(raw, "", err)
	}
	path = NormalizePath(path)

	idxs, err := braceIndices(path)
	if err != nil {
		return nil, compileError(raw, "", err)
	}

	p := &Pattern{
		raw:    raw,
		method: method,
		path:   path,
	}

	seen := make(map[string]bool, len(idxs)/2)
	end := 0
	for i := 0; i < len(idxs); i += 2 {
		if lit := path[end:idxs[i]]; lit != "" {
			p.elements = append(p.elements, Element{Kind: KindLiteral, Literal: lit})
		}
		end = idxs[i+1]

		token := path[idxs[i]:end]
		param, err := parseToken(token)
		if err != nil {
			return nil, compileError(raw, token, err)
		}
		if seen[param.Name] {
			return nil, compileError(raw, token, ErrDuplicateParamName)
		}
		seen[param.Name] = true

		p.elements = append(p.elements, Element{Kind: KindParam, Param: param})
		p.params = append(p.params, param)
	}
	if lit := path[end:]; lit != "" {
		p.elements = append(p.elements, Element{Kind: KindLiteral, Literal: lit})
	}

	return p, nil
}

// Raw returns the pattern as it was given to Parse.
func (p *Pattern) Raw() string {
	return p.raw
}

// Method returns the upper-cased method restriction, or "" if the pattern
// accepts any method.
func (p *Pattern) Method() string {
	return p.method
}

// Path returns the normalized pattern path without the method prefix.
func (p *Pattern) Path() string {
	return p.path
}

// Elements returns the parsed element list.
func (p *Pattern) Elements() []Element {
	return append([]Element(nil), p.elements...)
}

// Params returns the parameter tokens in order of appearance.
func (p *Pattern) Params() []Param {
	return append([]Param(nil), p.params...)
}

// Names returns the parameter names in order of appearance.
func (p *Pattern) Names() []string {
	names := make([]string, len(p.params))
	for i, param := range p.params {
		names[i] = param.Name
	}
	return names
}

// HasParams reports whether the pattern contains parameter tokens.
func (p *Pattern) HasParams() bool {
	return len(p.params) > 0
}

// Prefix returns the literal text before the first token, or the whole
// path when there are no tokens.
func (p *Pattern) Prefix() string {
	if len(p.elements) == 0 || p.elements[0].Kind != KindLiteral {
		return ""
	}
	return p.elements[0].Literal
}

// AllowsMethod reports whether a request with the given method may match.
func (p *Pattern) AllowsMethod(method string) bool {
	return p.method == "" || strings.EqualFold(p.method, method)
}

// Expand substitutes params into the pattern. It fails when a supplied name
// has no token, when a token is left without a value or when the result
// still contains a '{'. Values are otherwise inserted as given.
func (p *Pattern) Expand(params map[string]string) (string, bool) {
	for name := range params {
		if !p.hasParam(name) {
			return "", false
		}
	}
	// Names are unique, so equal counts mean every token has a value.
	if len(params) != len(p.params) {
		return "", false
	}

	var b strings.Builder
	for _, el := range p.elements {
		if el.Kind == KindLiteral {
			b.WriteString(el.Literal)
			continue
		}
		b.WriteString(params[el.Param.Name])
	}

	out := b.String()
	if strings.ContainsRune(out, '{') {
		return "", false
	}
	return "/" + strings.TrimLeft(out, "/"), true
}

func (p *Pattern) hasParam(name string) bool {
	for _, param := range p.params {
		if param.Name == name {
			return true
		}
	}
	return false
}

// NormalizePath trims trailing slashes and ensures exactly one leading slash.
// The empty path normalizes to "/".
func NormalizePath(path string) string {
	return "/" + strings.Trim(path, "/")
}

// splitMethod separates an optional [METHOD] prefix from the path.
func splitMethod(raw string) (string, string, error) {
	if !strings.HasPrefix(raw, "[") {
		return "", raw, nil
	}
	end := strings.IndexByte(raw, ']')
	if end < 0 {
		return "", "", fmt.Errorf("%w: unterminated method prefix", ErrMalformedToken)
	}
	method := strings.TrimSpace(raw[1:end])
	if method == "" {
		return "", "", fmt.Errorf("%w: empty method prefix", ErrMalformedToken)
	}
	return strings.ToUpper(method), raw[end+1:], nil
}

// parseToken parses a {name:type} or {name:type(options)} token.
func parseToken(token string) (Param, error) {
	body := token[1 : len(token)-1]

	name, rest, ok := strings.Cut(body, ":")
	if !ok {
		return Param{}, fmt.Errorf("%w: missing type", ErrMalformedToken)
	}
	if !validName(name) {
		return Param{}, fmt.Errorf("%w: invalid name %q", ErrMalformedToken, name)
	}

	typ := rest
	var (
		options    string
		hasOptions bool
	)
	if i := strings.IndexByte(rest, '('); i >= 0 {
		if !strings.HasSuffix(rest, ")") {
			return Param{}, fmt.Errorf("%w: unterminated options", ErrMalformedToken)
		}
		typ = rest[:i]
		options = rest[i+1 : len(rest)-1]
		hasOptions = true
	}

	t := ParamType(typ)
	switch {
	case !t.Valid():
		return Param{}, ErrUnknownParamType
	case t.TakesOptions() && options == "":
		return Param{}, ErrMissingOptions
	case !t.TakesOptions() && hasOptions:
		return Param{}, ErrUnexpectedOptions
	}

	return Param{Name: name, Type: t, Options: options}, nil
}

// validName reports whether name can be used as a regexp group name.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// braceIndices returns the start and end+1 indices of each {...} pair in s.
// Tokens cannot nest, so a second '{' before '}' is an error, as is any
// unbalanced brace.
func braceIndices(s string) ([]int, error) {
	var (
		idxs []int
		open = -1
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if open >= 0 {
				return nil, fmt.Errorf("%w: nested braces", ErrMalformedToken)
			}
			open = i
		case '}':
			if open < 0 {
				return nil, fmt.Errorf("%w: unbalanced braces", ErrMalformedToken)
			}
			idxs = append(idxs, open, i+1)
			open = -1
		}
	}
	if open >= 0 {
		return nil, fmt.Errorf("%w: unbalanced braces", ErrMalformedToken)
	}
	return idxs, nil
}
