// Package pattern compiles route patterns into anchored matchers.
//
// A route pattern is a path with optional typed parameter tokens and an
// optional HTTP method prefix:
//
//	/user/{id:num}
//	[POST]/users
//	/tag/{name:enum(red|blue)}
//	/files/{file:regex([a-z0-9._-]+)}
//
// # Parameter Types
//
//	num    - decimal digits (e.g. 42)
//	alpha  - ASCII letters (e.g. hello)
//	alnum  - ASCII letters and digits (e.g. abc123)
//	enum   - alternation given in options (e.g. enum(red|blue))
//	regex  - regular expression given in options (e.g. regex([a-z]{2}))
//
// enum and regex require options; the other types reject them. Options
// must not contain braces.
//
// # Parsing and Compiling
//
// Parse turns a raw pattern into a typed element list. Compile builds an
// anchored matcher from it:
//
//	m, err := pattern.Compile("/user/{id:num}")
//	params, ok := m.Match("/user/42") // map[id:42], true
//
// Patterns without tokens compile to a literal equality check.
//
// # Expanding
//
// Expand substitutes parameter values back into a pattern. It succeeds only
// when the supplied parameter names are exactly the pattern's token names:
//
//	p, _ := pattern.Parse("/user/{id:num}")
//	path, ok := p.Expand(map[string]string{"id": "7"}) // "/user/7", true
//
// # Caching
//
// Cache memoises compiled matchers by raw pattern string and is safe for
// concurrent use.
package pattern
