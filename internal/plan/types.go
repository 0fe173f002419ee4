package plan

import (
	"moduledef-generator/internal/diagnostic"
	"moduledef-generator/internal/ngmodule"
)

// ResolvedFile is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type ResolvedFile struct {
	// Modules in emission order.
	Modules []ResolvedModule
	// Declared holds pre-expanded declarations in file order.
	Declared []ResolvedDeclaration
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// ResolvedModule is a module ready for compilation.
type ResolvedModule struct {
	// Name is the class the definition is attached to.
	Name string
	// Metadata is passed to the emitter.
	Metadata ngmodule.Metadata
	// ForwardRefsDetected is true when ContainsForwardDecls was set by
	// detection rather than pinned in the description file.
	ForwardRefsDetected bool
}

// ResolvedDeclaration is a pre-expanded declaration ready for re-expansion.
type ResolvedDeclaration struct {
	// Name is the class the definition is attached to.
	Name string
	// Metadata is passed to the declaration path emitter.
	Metadata ngmodule.DeclarationMetadata
}
