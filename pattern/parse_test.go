package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBraceIndices(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  []int
		expectErr bool
	}{
		{name: "no braces", input: "/foo/bar", expected: nil},
		{name: "single token", input: "/foo/{id:num}", expected: []int{5, 13}},
		{name: "two tokens", input: "/{a:num}/{b:num}", expected: []int{1, 8, 9, 16}},
		{name: "nested braces", input: "/{id:{nested}}", expectErr: true},
		{name: "unbalanced open", input: "/{id", expectErr: true},
		{name: "unbalanced close", input: "/id}", expectErr: true},
		{name: "empty string", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idxs, err := braceIndices(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrMalformedToken)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, idxs)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: "/"},
		{input: "/", expected: "/"},
		{input: "//", expected: "/"},
		{input: "users", expected: "/users"},
		{input: "/users/", expected: "/users"},
		{input: "//users//", expected: "/users"},
		{input: "/a/b", expected: "/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePath(tt.input))
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("literal pattern", func(t *testing.T) {
		p, err := Parse("/users")
		require.NoError(t, err)
		assert.Equal(t, "/users", p.Raw())
		assert.Equal(t, "/users", p.Path())
		assert.Empty(t, p.Method())
		assert.False(t, p.HasParams())
		assert.Equal(t, "/users", p.Prefix())
		assert.Equal(t, []Element{{Kind: KindLiteral, Literal: "/users"}}, p.Elements())
	})

	t.Run("method prefix", func(t *testing.T) {
		p, err := Parse("[post]/users/")
		require.NoError(t, err)
		assert.Equal(t, "POST", p.Method())
		assert.Equal(t, "/users", p.Path())
		assert.True(t, p.AllowsMethod("POST"))
		assert.True(t, p.AllowsMethod("post"))
		assert.False(t, p.AllowsMethod("GET"))
	})

	t.Run("no method prefix allows any method", func(t *testing.T) {
		p, err := Parse("/users")
		require.NoError(t, err)
		assert.True(t, p.AllowsMethod("DELETE"))
	})

	t.Run("typed element list", func(t *testing.T) {
		p, err := Parse("/user/{id:num}/tag/{name:enum(red|blue)}")
		require.NoError(t, err)
		assert.Equal(t, []Element{
			{Kind: KindLiteral, Literal: "/user/"},
			{Kind: KindParam, Param: Param{Name: "id", Type: TypeNum}},
			{Kind: KindLiteral, Literal: "/tag/"},
			{Kind: KindParam, Param: Param{Name: "name", Type: TypeEnum, Options: "red|blue"}},
		}, p.Elements())
		assert.Equal(t, []string{"id", "name"}, p.Names())
		assert.Equal(t, "/user/", p.Prefix())
	})

	t.Run("leading token keeps root prefix", func(t *testing.T) {
		p, err := Parse("{lang:alpha}/about")
		require.NoError(t, err)
		assert.Equal(t, "/{lang:alpha}/about", p.Path())
		assert.Equal(t, "/", p.Prefix())
	})

	t.Run("regex options may contain colons", func(t *testing.T) {
		p, err := Parse("/t/{at:regex([0-9]+:[0-9]+)}")
		require.NoError(t, err)
		assert.Equal(t, []Param{{Name: "at", Type: TypeRegex, Options: "[0-9]+:[0-9]+"}}, p.Params())
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
		token    string
	}{
		{name: "duplicate name", input: "/{id:num}/{id:alpha}", expected: ErrDuplicateParamName, token: "{id:alpha}"},
		{name: "unknown type", input: "/{id:int}", expected: ErrUnknownParamType, token: "{id:int}"},
		{name: "enum without options", input: "/{c:enum}", expected: ErrMissingOptions, token: "{c:enum}"},
		{name: "regex with empty options", input: "/{c:regex()}", expected: ErrMissingOptions, token: "{c:regex()}"},
		{name: "num with options", input: "/{c:num(1|2)}", expected: ErrUnexpectedOptions, token: "{c:num(1|2)}"},
		{name: "missing type", input: "/{id}", expected: ErrMalformedToken, token: "{id}"},
		{name: "empty name", input: "/{:num}", expected: ErrMalformedToken, token: "{:num}"},
		{name: "invalid name", input: "/{my-id:num}", expected: ErrMalformedToken, token: "{my-id:num}"},
		{name: "unterminated options", input: "/{c:enum(a|b}", expected: ErrMalformedToken, token: "{c:enum(a|b}"},
		{name: "braces in options", input: "/{y:regex([0-9]{4})}", expected: ErrMalformedToken},
		{name: "unterminated method", input: "[GET/users", expected: ErrMalformedToken},
		{name: "empty method", input: "[]/users", expected: ErrMalformedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)

			var cerr *CompileError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.input, cerr.Pattern)
			assert.Equal(t, tt.token, cerr.Token)
		})
	}
}

func TestParamString(t *testing.T) {
	assert.Equal(t, "{id:num}", Param{Name: "id", Type: TypeNum}.String())
	assert.Equal(t, "{c:enum(a|b)}", Param{Name: "c", Type: TypeEnum, Options: "a|b"}.String())
}

func TestElementKindString(t *testing.T) {
	assert.Equal(t, "literal", KindLiteral.String())
	assert.Equal(t, "param", KindParam.String())
	assert.Equal(t, "ElementKind(7)", ElementKind(7).String())
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		params   map[string]string
		expected string
		ok       bool
	}{
		{name: "single token", pattern: "/user/{id:num}", params: map[string]string{"id": "7"}, expected: "/user/7", ok: true},
		{name: "method prefix ignored", pattern: "[POST]/user/{id:num}", params: map[string]string{"id": "7"}, expected: "/user/7", ok: true},
		{name: "two tokens", pattern: "/{a:alpha}/x/{b:num}", params: map[string]string{"a": "foo", "b": "1"}, expected: "/foo/x/1", ok: true},
		{name: "literal without params", pattern: "/users", params: nil, expected: "/users", ok: true},
		{name: "root", pattern: "/", params: map[string]string{}, expected: "/", ok: true},
		{name: "missing value", pattern: "/user/{id:num}", params: map[string]string{}, ok: false},
		{name: "extra param", pattern: "/user/{id:num}", params: map[string]string{"id": "1", "x": "2"}, ok: false},
		{name: "params for literal pattern", pattern: "/users", params: map[string]string{"id": "1"}, ok: false},
		{name: "partially filled", pattern: "/{a:num}/{b:num}", params: map[string]string{"a": "1"}, ok: false},
		{name: "raw values are not validated", pattern: "/user/{id:num}", params: map[string]string{"id": "abc"}, expected: "/user/abc", ok: true},
		{name: "value with token", pattern: "/user/{id:num}", params: map[string]string{"id": "{id:num}"}, ok: false},
		{name: "value with brace", pattern: "/file/{p:regex(.+)}", params: map[string]string{"p": "a{b"}, ok: false},
		{name: "single leading slash", pattern: "/{p:regex(.+)}", params: map[string]string{"p": "//x"}, expected: "/x", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.pattern)
			require.NoError(t, err)

			path, ok := p.Expand(tt.params)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, path)
			assert.NotContains(t, path, "{")
		})
	}
}
