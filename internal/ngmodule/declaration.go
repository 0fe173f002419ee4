package ngmodule

import (
	"moduledef-generator/internal/identifiers"
	"moduledef-generator/internal/output"
)

// DeclarationMetadata is pre-expanded module metadata, as read back from a
// partial declaration. Every field holds source text for a ready-made
// expression; nil means the field is absent.
type DeclarationMetadata struct {
	Type         *string
	Bootstrap    *string
	Declarations *string
	Imports      *string
	Exports      *string
	Schemas      *string
	ID           *string
}

// CompileNgModuleDeclarationExpression re-expands meta into a definition call.
// Present fields are copied verbatim in a fixed order. No scope mode, forward
// reference wrapping, statements or type are produced.
func (e *Emitter) CompileNgModuleDeclarationExpression(meta *DeclarationMetadata) *output.InvokeFunctionExpr {
	definitionMap := NewDefinitionMap()

	for _, field := range []struct {
		key   DefinitionKey
		value *string
	}{
		{KeyType, meta.Type},
		{KeyBootstrap, meta.Bootstrap},
		{KeyDeclarations, meta.Declarations},
		{KeyImports, meta.Imports},
		{KeyExports, meta.Exports},
		{KeySchemas, meta.Schemas},
		{KeyID, meta.ID},
	} {
		if field.value != nil {
			definitionMap.Set(field.key, output.Wrapped(*field.value))
		}
	}

	return output.Call(e.ids.Expr(identifiers.DefineNgModule), definitionMap.ToLiteralMap())
}
