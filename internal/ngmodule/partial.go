package ngmodule

import (
	"moduledef-generator/internal/identifiers"
	"moduledef-generator/internal/output"
)

// CompileDeclareNgModuleFromMetadata produces the partial declaration of meta:
//
//	ngDeclareNgModule({minVersion, version, ngImport, type, ...})
//
// Scope lists are always included regardless of the selector scope mode, and
// no statements are produced; a linker re-expands the declaration later.
func (e *Emitter) CompileDeclareNgModuleFromMetadata(meta *Metadata) CompiledDefinition {
	definitionMap := e.createNgModuleDefinitionMap(meta)

	return CompiledDefinition{
		Expression: output.Call(e.ids.Expr(identifiers.DeclareNgModule), definitionMap.ToLiteralMap()),
		Type:       e.CreateNgModuleType(meta),
	}
}

func (e *Emitter) createNgModuleDefinitionMap(meta *Metadata) *DefinitionMap {
	definitionMap := NewDefinitionMap()

	definitionMap.Set(KeyMinVersion, output.Literal(MinimumPartialLinkerVersion))
	definitionMap.Set(KeyVersion, output.Literal(e.version))
	definitionMap.Set(KeyNgImport, e.ids.Expr(identifiers.Core))
	definitionMap.Set(KeyType, meta.Type.Value)

	if len(meta.Bootstrap) > 0 {
		definitionMap.Set(KeyBootstrap, RefsToArray(meta.Bootstrap, meta.ContainsForwardDecls).Expr())
	}

	setScopeKeys(definitionMap, meta)

	if len(meta.Schemas) > 0 {
		definitionMap.Set(KeySchemas, output.LiteralArr(refValues(meta.Schemas)))
	}

	if meta.ID != nil {
		definitionMap.Set(KeyID, meta.ID)
	}

	return definitionMap
}
