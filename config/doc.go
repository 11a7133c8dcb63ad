// Package config provides an ordered, read-only configuration store loaded
// from YAML.
//
// Mapping order matters for route tables, so mappings decode to Section,
// an ordered list of key/value items, instead of Go maps. Sequences decode
// to []any and scalars to their natural Go type.
//
//	store, err := config.LoadFile("routes.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	routes, ok := store.Get("routes")
//
// Nested values are addressed with dotted keys:
//
//	def, ok := store.Get("languages.default")
package config
