package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotMapping is returned when the document root is not a mapping.
	ErrNotMapping = errors.New("config: document root must be a mapping")

	// ErrDuplicateKey is returned when a mapping defines a key twice.
	ErrDuplicateKey = errors.New("config: duplicated key")

	// ErrUnsupportedNode is returned for mapping keys that are not scalars.
	ErrUnsupportedNode = errors.New("config: unsupported node")
)

// Item is one key/value pair of a Section.
type Item struct {
	Key   string
	Value any
}

// Section is an ordered mapping.
type Section []Item

// Get returns the value stored under key.
func (s Section) Get(key string) (any, bool) {
	for _, item := range s {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in document order.
func (s Section) Keys() []string {
	keys := make([]string, len(s))
	for i, item := range s {
		keys[i] = item.Key
	}
	return keys
}

// Store is a read-only configuration tree.
type Store struct {
	root Section
}

// New returns a store with the given root section.
func New(root Section) *Store {
	return &Store{root: root}
}

// Parse decodes a YAML document. An empty document yields an empty store.
func Parse(data []byte) (*Store, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	v, err := decodeNode(&doc)
	if err != nil {
		return nil, err
	}
	switch root := v.(type) {
	case nil:
		return New(nil), nil
	case Section:
		return New(root), nil
	default:
		return nil, ErrNotMapping
	}
}

// Load reads and decodes a YAML document from r.
func Load(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// LoadFile reads and decodes the YAML file at path.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Root returns the top-level section.
func (s *Store) Root() Section {
	return s.root
}

// Get returns the value at a dotted key path such as "languages.default".
func (s *Store) Get(key string) (any, bool) {
	var cur any = s.root
	for _, part := range strings.Split(key, ".") {
		sec, ok := cur.(Section)
		if !ok {
			return nil, false
		}
		if cur, ok = sec.Get(part); !ok {
			return nil, false
		}
	}
	return cur, true
}

// decodeNode converts a YAML node into Section, []any or a scalar value.
func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decodeNode(node.Content[0])
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := decodeNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.MappingNode:
		return decodeMapping(node)
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("config: line %d: %w", node.Line, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: kind %d at line %d", ErrUnsupportedNode, node.Kind, node.Line)
	}
}

func decodeMapping(node *yaml.Node) (Section, error) {
	sec := make(Section, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: non-scalar key at line %d", ErrUnsupportedNode, k.Line)
		}
		if seen[k.Value] {
			return nil, fmt.Errorf("%w: %q at line %d", ErrDuplicateKey, k.Value, k.Line)
		}
		seen[k.Value] = true

		val, err := decodeNode(v)
		if err != nil {
			return nil, err
		}
		sec = append(sec, Item{Key: k.Value, Value: val})
	}

	return sec, nil
}
