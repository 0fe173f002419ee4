package ngmodule

import (
	"moduledef-generator/internal/identifiers"
	"moduledef-generator/internal/output"
)

// MinimumPartialLinkerVersion is the oldest linker able to re-expand a
// partial module declaration.
const MinimumPartialLinkerVersion = "14.0.0"

// EmitterConfig holds configuration for module definition emission.
type EmitterConfig struct {
	// Identifiers resolves runtime symbols. Nil means identifiers.Default().
	Identifiers *identifiers.Table
	// Version is stamped into partial declarations.
	Version string
}

// DefaultEmitterConfig returns the default emitter configuration.
func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		Identifiers: identifiers.Default(),
		Version:     "0.0.0-PLACEHOLDER",
	}
}

// Emitter compiles module metadata. It holds no per-call state and is safe
// for concurrent use.
type Emitter struct {
	ids     *identifiers.Table
	version string
}

// NewEmitter creates a new Emitter with the given configuration.
func NewEmitter(config EmitterConfig) *Emitter {
	ids := config.Identifiers
	if ids == nil {
		ids = identifiers.Default()
	}

	return &Emitter{ids: ids, version: config.Version}
}

var defaultEmitter = NewEmitter(DefaultEmitterConfig())

// CompileNgModule compiles meta with the default emitter.
func CompileNgModule(meta *Metadata) CompiledDefinition {
	return defaultEmitter.CompileNgModule(meta)
}

// CompileNgModuleDeclarationExpression re-expands meta with the default emitter.
func CompileNgModuleDeclarationExpression(meta *DeclarationMetadata) *output.InvokeFunctionExpr {
	return defaultEmitter.CompileNgModuleDeclarationExpression(meta)
}
