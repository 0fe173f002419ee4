package output

import (
	"strconv"
	"strings"
)

// importSpec represents a namespace import statement.
type importSpec struct {
	Alias string
	Path  string
}

// ImportManager assigns namespace aliases (i0, i1, ...) to imported modules
// in first-use order.
type ImportManager struct {
	aliases map[string]string
	specs   []importSpec
}

// NewImportManager creates an empty ImportManager.
func NewImportManager() *ImportManager {
	return &ImportManager{aliases: make(map[string]string)}
}

// Alias returns the namespace alias for moduleName, allocating one on first use.
func (m *ImportManager) Alias(moduleName string) string {
	if alias, ok := m.aliases[moduleName]; ok {
		return alias
	}

	alias := "i" + strconv.Itoa(len(m.specs))
	m.aliases[moduleName] = alias
	m.specs = append(m.specs, importSpec{Alias: alias, Path: moduleName})

	return alias
}

// Len returns the number of imported modules.
func (m *ImportManager) Len() int {
	return len(m.specs)
}

// Render returns the import block, one statement per line.
func (m *ImportManager) Render() string {
	var sb strings.Builder

	for _, spec := range m.specs {
		sb.WriteString("import * as ")
		sb.WriteString(spec.Alias)
		sb.WriteString(" from ")
		sb.WriteString(QuoteString(spec.Path))
		sb.WriteString(";\n")
	}

	return sb.String()
}
