package ngmodule

import (
	"fmt"

	"moduledef-generator/internal/output"
)

//go:generate go tool stringer -type=DefinitionKey -linecomment -output=definitionkey_string.go

// DefinitionKey is a key of a module definition literal map.
type DefinitionKey int

const (
	KeyType         DefinitionKey = iota // type
	KeyBootstrap                         // bootstrap
	KeyDeclarations                      // declarations
	KeyImports                           // imports
	KeyExports                           // exports
	KeySchemas                           // schemas
	KeyID                                // id
	KeyMinVersion                        // minVersion
	KeyVersion                           // version
	KeyNgImport                          // ngImport
)

type definitionEntry struct {
	key   DefinitionKey
	value output.Expression
}

// DefinitionMap accumulates definition keys in insertion order.
// Each key may be set at most once.
type DefinitionMap struct {
	entries []definitionEntry
}

// NewDefinitionMap creates an empty DefinitionMap.
func NewDefinitionMap() *DefinitionMap {
	return &DefinitionMap{}
}

// Set records value under key. A nil value leaves the key unset.
// Setting the same key twice panics.
func (m *DefinitionMap) Set(key DefinitionKey, value output.Expression) {
	if value == nil {
		return
	}

	if m.Has(key) {
		panic(fmt.Sprintf("ngmodule: definition key %q set twice", key))
	}

	m.entries = append(m.entries, definitionEntry{key: key, value: value})
}

// Has reports whether key was set.
func (m *DefinitionMap) Has(key DefinitionKey) bool {
	return m.Get(key) != nil
}

// Get returns the value recorded under key, or nil.
func (m *DefinitionMap) Get(key DefinitionKey) output.Expression {
	for _, e := range m.entries {
		if e.key == key {
			return e.value
		}
	}

	return nil
}

// IsEmpty reports whether no key was set.
func (m *DefinitionMap) IsEmpty() bool {
	return len(m.entries) == 0
}

// Keys returns the set keys in insertion order.
func (m *DefinitionMap) Keys() []DefinitionKey {
	keys := make([]DefinitionKey, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}

	return keys
}

// ToLiteralMap builds the object literal.
func (m *DefinitionMap) ToLiteralMap() *output.LiteralMapExpr {
	entries := make([]output.LiteralMapEntry, len(m.entries))
	for i, e := range m.entries {
		entries[i] = output.LiteralMapEntry{Key: e.key.String(), Value: e.value}
	}

	return &output.LiteralMapExpr{Entries: entries}
}
