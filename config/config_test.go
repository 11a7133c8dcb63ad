package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("preserves mapping order", func(t *testing.T) {
		store, err := Parse([]byte("routes:\n  Z/Z: /z\n  A/A: /a\n  M/M: /m\n"))
		require.NoError(t, err)

		v, ok := store.Get("routes")
		require.True(t, ok)
		sec, ok := v.(Section)
		require.True(t, ok)
		assert.Equal(t, []string{"Z/Z", "A/A", "M/M"}, sec.Keys())
	})

	t.Run("scalars and sequences", func(t *testing.T) {
		store, err := Parse([]byte(`
name: waypoint
port: 8080
debug: true
missing: ~
list: [a, "[GET]/users", 3]
`))
		require.NoError(t, err)

		assert.Equal(t, Section{
			{Key: "name", Value: "waypoint"},
			{Key: "port", Value: 8080},
			{Key: "debug", Value: true},
			{Key: "missing", Value: nil},
			{Key: "list", Value: []any{"a", "[GET]/users", 3}},
		}, store.Root())
	})

	t.Run("aliases", func(t *testing.T) {
		store, err := Parse([]byte("base: &b /users\nroutes:\n  User/List: *b\n"))
		require.NoError(t, err)

		v, ok := store.Get("routes.User/List")
		assert.True(t, ok)
		assert.Equal(t, "/users", v)
	})

	t.Run("empty document", func(t *testing.T) {
		store, err := Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, store.Root())

		_, ok := store.Get("routes")
		assert.False(t, ok)
	})

	t.Run("root must be a mapping", func(t *testing.T) {
		_, err := Parse([]byte("- a\n- b\n"))
		assert.ErrorIs(t, err, ErrNotMapping)
	})

	t.Run("duplicate keys", func(t *testing.T) {
		_, err := Parse([]byte("a: 1\na: 2\n"))
		assert.Error(t, err)
	})

	t.Run("non-scalar key", func(t *testing.T) {
		_, err := Parse([]byte("? [a, b]\n: c\n"))
		assert.ErrorIs(t, err, ErrUnsupportedNode)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("a: [b\n"))
		assert.Error(t, err)
	})
}

func TestStoreGet(t *testing.T) {
	store, err := Parse([]byte(`
languages:
  default: en
  usable: [en, fr]
`))
	require.NoError(t, err)

	tests := []struct {
		key      string
		expected any
		ok       bool
	}{
		{key: "languages.default", expected: "en", ok: true},
		{key: "languages.usable", expected: []any{"en", "fr"}, ok: true},
		{key: "languages.missing", ok: false},
		{key: "languages.default.deeper", ok: false},
		{key: "nope", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := store.Get(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestSection(t *testing.T) {
	sec := Section{{Key: "a", Value: 1}, {Key: "b", Value: "x"}}

	v, ok := sec.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = sec.Get("c")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, sec.Keys())
}

func TestLoad(t *testing.T) {
	store, err := Load(strings.NewReader("a: 1\n"))
	require.NoError(t, err)
	v, ok := store.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestLoadFile(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "routes.yaml")
		require.NoError(t, os.WriteFile(path, []byte("routes:\n  User/List: /users\n"), 0o600))

		store, err := LoadFile(path)
		require.NoError(t, err)
		v, ok := store.Get("routes.User/List")
		assert.True(t, ok)
		assert.Equal(t, "/users", v)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
