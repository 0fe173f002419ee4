package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
modules:
  - name: AppModule
    scope_mode: side-effect
    id: app
    bootstrap: AppComponent
    declarations: [AppComponent, HeaderComponent]
    imports:
      - CommonModule
      - value: SharedModule
        type: SharedModuleType
        from: ./shared
    exports: [HeaderComponent]
    schemas: [CUSTOM_ELEMENTS_SCHEMA]
    forward_refs: false
  - name: SharedModule
declared:
  - name: LegacyModule
    type: LegacyModule
    imports: "function () { return [CommonModule]; }"
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Modules, 2)

	app := f.Modules[0]
	assert.Equal(t, "AppModule", app.Name)
	assert.Equal(t, "side-effect", app.ScopeMode)
	require.NotNil(t, app.ID)
	assert.Equal(t, "app", *app.ID)

	// Single reference in place of a list
	assert.Equal(t, RefSpecArray{{Value: "AppComponent"}}, app.Bootstrap)
	assert.Equal(t, []string{"AppComponent", "HeaderComponent"}, app.Declarations.Values())

	require.Len(t, app.Imports, 2)
	assert.True(t, app.Imports[0].IsLocal())
	assert.Equal(t, RefSpec{Value: "SharedModule", Type: "SharedModuleType", From: "./shared"}, app.Imports[1])
	assert.Equal(t, "SharedModuleType", app.Imports[1].TypeName())

	require.NotNil(t, app.ForwardRefs)
	assert.False(t, *app.ForwardRefs)

	// Defaults
	shared := f.Modules[1]
	require.NotNil(t, shared.Type)
	assert.Equal(t, "SharedModule", shared.Type.Value)
	assert.Equal(t, "SharedModule", shared.Type.TypeName())
	assert.Equal(t, "SharedModule", shared.InternalType)
	assert.Equal(t, "SharedModule", shared.AdjacentType)
	assert.Nil(t, shared.ID)
	assert.Nil(t, shared.ForwardRefs)
	assert.Empty(t, shared.Bootstrap)

	require.Len(t, f.Declared, 1)
	d := f.Declared[0]
	assert.Equal(t, "LegacyModule", d.Name)
	require.NotNil(t, d.Imports)
	assert.Equal(t, "function () { return [CommonModule]; }", *d.Imports)
	assert.Nil(t, d.Exports)
}

func TestParse_DefaultVersion(t *testing.T) {
	f, err := Parse([]byte("modules: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
}

func TestParse_InvalidReference(t *testing.T) {
	_, err := Parse([]byte(`
modules:
  - name: A
    imports: [[B]]
`))
	assert.Error(t, err)
}

func TestParseTOML(t *testing.T) {
	doc := `
version = "1"

[[modules]]
name = "AppModule"
scope_mode = "omit"
imports = ["CommonModule", { value = "SharedModule", from = "./shared" }]

[[declared]]
name = "LegacyModule"
type = "LegacyModule"
`

	f, err := ParseTOML([]byte(doc))
	require.NoError(t, err)

	require.Len(t, f.Modules, 1)
	m := f.Modules[0]
	assert.Equal(t, "omit", m.ScopeMode)
	assert.Equal(t, RefSpecArray{
		{Value: "CommonModule"},
		{Value: "SharedModule", From: "./shared"},
	}, m.Imports)
	assert.Equal(t, "AppModule", m.InternalType)

	require.Len(t, f.Declared, 1)
	require.NotNil(t, f.Declared[0].Type)
	assert.Equal(t, "LegacyModule", *f.Declared[0].Type)
}

func TestParseTOML_Invalid(t *testing.T) {
	_, err := ParseTOML([]byte("modules = [[["))
	assert.Error(t, err)
}

func TestLoadFile_ByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("modules:\n  - name: A\n"), 0o644))

	tomlPath := filepath.Join(dir, "app.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[[modules]]\nname = \"B\"\n"), 0o644))

	f, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "A", f.Modules[0].Name)

	f, err = LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "B", f.Modules[0].Name)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	id := "app"
	f := &File{
		Version: "1",
		Modules: []Module{{
			Name:    "AppModule",
			ID:      &id,
			Imports: RefSpecArray{{Value: "CommonModule"}, {Value: "Shared", From: "./shared"}},
		}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- CommonModule")
	assert.Contains(t, string(data), "from: ./shared")

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(f, path))

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f.Modules[0].Imports, back.Modules[0].Imports)
	assert.Equal(t, "app", *back.Modules[0].ID)
}
