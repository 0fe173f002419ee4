package metadata

// File represents the root of a module description file.
type File struct {
	// Version of the description schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Modules are compiled from full metadata.
	Modules []Module `yaml:"modules,omitempty"`

	// Declared are pre-expanded declarations re-emitted verbatim.
	Declared []Declared `yaml:"declared,omitempty"`
}

// Module describes one module to compile.
type Module struct {
	// Name is the class name the definition is attached to.
	Name string `yaml:"name"`

	// Type is the module's own type reference. Defaults to Name.
	Type *RefSpec `yaml:"type,omitempty"`

	// InternalType spells the type inside the defining scope. Defaults to Name.
	InternalType string `yaml:"internal_type,omitempty"`

	// AdjacentType spells the type beside the defining scope. Defaults to Name.
	AdjacentType string `yaml:"adjacent_type,omitempty"`

	Bootstrap    RefSpecArray `yaml:"bootstrap,omitempty"`
	Declarations RefSpecArray `yaml:"declarations,omitempty"`
	Imports      RefSpecArray `yaml:"imports,omitempty"`
	Exports      RefSpecArray `yaml:"exports,omitempty"`
	Schemas      RefSpecArray `yaml:"schemas,omitempty"`

	// ID is the unique module id, emitted as a string literal.
	ID *string `yaml:"id,omitempty"`

	// ScopeMode is one of inline, side-effect or omit. Empty means the
	// configured default.
	ScopeMode string `yaml:"scope_mode,omitempty"`

	// ForwardRefs overrides forward reference detection when set.
	ForwardRefs *bool `yaml:"forward_refs,omitempty"`
}

// RefSpec is a reference to a unit.
// YAML formats supported:
//   - Simple string: "HeaderComponent"
//   - Mapping: {value: SharedModule, type: SharedModuleType, from: ./shared}
type RefSpec struct {
	// Value is the runtime symbol.
	Value string `yaml:"value"`
	// Type is the compile-time symbol. Defaults to Value.
	Type string `yaml:"type,omitempty"`
	// From is the module the symbols are imported from. Empty means in scope.
	From string `yaml:"from,omitempty"`
}

// TypeName returns the compile-time symbol.
func (r RefSpec) TypeName() string {
	if r.Type != "" {
		return r.Type
	}

	return r.Value
}

// IsLocal returns true if the reference names a symbol already in scope.
func (r RefSpec) IsLocal() bool {
	return r.From == ""
}

// String returns the reference in its textual form.
func (r RefSpec) String() string {
	if r.From == "" {
		return r.Value
	}

	return r.Value + " from " + r.From
}

// RefSpecArray is an ordered list of references.
type RefSpecArray []RefSpec

// Values returns the runtime symbols of the references, in order.
func (a RefSpecArray) Values() []string {
	out := make([]string, len(a))
	for i, r := range a {
		out[i] = r.Value
	}

	return out
}

// Declared is a pre-expanded module declaration. Every field holds source
// text; an absent field is nil.
type Declared struct {
	// Name is the class name the definition is attached to.
	Name string `yaml:"name"`

	Type         *string `yaml:"type,omitempty"`
	Bootstrap    *string `yaml:"bootstrap,omitempty"`
	Declarations *string `yaml:"declarations,omitempty"`
	Imports      *string `yaml:"imports,omitempty"`
	Exports      *string `yaml:"exports,omitempty"`
	Schemas      *string `yaml:"schemas,omitempty"`
	ID           *string `yaml:"id,omitempty"`
}
