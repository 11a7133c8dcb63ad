package router

import (
	"slices"
	"strings"
)

// Entry is one row of a route table: a "Controller/Action" key and its
// alternative patterns, tried in order.
type Entry struct {
	Key      string
	Patterns []string
}

// Routes returns an entry for key with the given patterns.
func Routes(key string, patterns ...string) Entry {
	return Entry{Key: key, Patterns: patterns}
}

// Table is an ordered, immutable mapping from "Controller/Action" keys to
// route patterns.
type Table struct {
	keys     []string
	patterns map[string][]string
}

// NewTable builds a table from entries, keeping their order. Keys must be
// unique and of the form "Controller/Action", and each entry needs at least
// one pattern.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		keys:     make([]string, 0, len(entries)),
		patterns: make(map[string][]string, len(entries)),
	}
	for _, e := range entries {
		if _, _, err := splitKey(e.Key); err != nil {
			return nil, err
		}
		if _, ok := t.patterns[e.Key]; ok {
			return nil, configError(e.Key, "duplicated route key", nil)
		}
		if len(e.Patterns) == 0 {
			return nil, configError(e.Key, "route has no patterns", nil)
		}
		t.keys = append(t.keys, e.Key)
		t.patterns[e.Key] = slices.Clone(e.Patterns)
	}
	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	return slices.Clone(t.keys)
}

// Patterns returns the patterns registered for key.
func (t *Table) Patterns(key string) ([]string, bool) {
	p, ok := t.patterns[key]
	return slices.Clone(p), ok
}

// Entries returns the table rows in insertion order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, len(t.keys))
	for i, key := range t.keys {
		entries[i] = Entry{Key: key, Patterns: slices.Clone(t.patterns[key])}
	}
	return entries
}

// withShared returns a table holding t's entries followed by the entries of
// shared whose keys t does not define.
func (t *Table) withShared(shared *Table) *Table {
	if shared == nil || shared.Len() == 0 {
		return t
	}
	merged := &Table{
		keys:     slices.Clone(t.keys),
		patterns: make(map[string][]string, len(t.keys)+len(shared.keys)),
	}
	for _, key := range t.keys {
		merged.patterns[key] = t.patterns[key]
	}
	for _, key := range shared.keys {
		if _, ok := merged.patterns[key]; ok {
			continue
		}
		merged.keys = append(merged.keys, key)
		merged.patterns[key] = shared.patterns[key]
	}
	return merged
}

// splitKey splits a route key once on '/'.
func splitKey(key string) (string, string, error) {
	controller, action, ok := strings.Cut(key, "/")
	if !ok || controller == "" || action == "" {
		return "", "", configError(key, `route key must be "Controller/Action"`, nil)
	}
	return controller, action, nil
}
