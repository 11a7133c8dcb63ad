package pattern

import "sync"

// Cache memoises compiled matchers by raw pattern string. Compile errors
// are cached too, since compiling the same pattern again yields the same
// error. The zero value is ready to use.
type Cache struct {
	entries sync.Map // map[string]cacheEntry
}

type cacheEntry struct {
	matcher *Matcher
	err     error
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Compile returns a cached matcher for raw, compiling and caching it on
// first use.
func (c *Cache) Compile(raw string) (*Matcher, error) {
	if v, ok := c.entries.Load(raw); ok {
		e := v.(cacheEntry)
		return e.matcher, e.err
	}

	m, err := Compile(raw)
	actual, _ := c.entries.LoadOrStore(raw, cacheEntry{matcher: m, err: err})

	e := actual.(cacheEntry)
	return e.matcher, e.err
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
