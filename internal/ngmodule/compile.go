package ngmodule

import (
	"fmt"

	"moduledef-generator/internal/identifiers"
	"moduledef-generator/internal/output"
)

// CompileNgModule lowers meta into a module definition call, its type and
// any top-level statements that must follow it.
func (e *Emitter) CompileNgModule(meta *Metadata) CompiledDefinition {
	var statements []output.Statement

	definitionMap := NewDefinitionMap()
	definitionMap.Set(KeyType, meta.InternalType)

	if len(meta.Bootstrap) > 0 {
		definitionMap.Set(KeyBootstrap, RefsToArray(meta.Bootstrap, meta.ContainsForwardDecls).Expr())
	}

	switch meta.SelectorScopeMode {
	case ScopeInline:
		// Units referenced here can never be tree-shaken.
		setScopeKeys(definitionMap, meta)

	case ScopeSideEffect:
		if stmt := e.GenerateSetNgModuleScopeCall(meta); stmt != nil {
			statements = append(statements, stmt)
		}

	case ScopeOmit:

	default:
		panic(fmt.Sprintf("ngmodule: unknown selector scope mode %s", meta.SelectorScopeMode))
	}

	if len(meta.Schemas) > 0 {
		definitionMap.Set(KeySchemas, output.LiteralArr(refValues(meta.Schemas)))
	}

	if meta.ID != nil {
		definitionMap.Set(KeyID, meta.ID)

		// Unguarded: ids are registered in every build mode.
		statements = append(statements, output.ToStmt(output.Call(
			e.ids.Expr(identifiers.RegisterNgModuleType),
			meta.AdjacentType,
			meta.ID,
		)))
	}

	expression := output.PureCall(e.ids.Expr(identifiers.DefineNgModule), definitionMap.ToLiteralMap())

	return CompiledDefinition{
		Expression: expression,
		Type:       e.CreateNgModuleType(meta),
		Statements: statements,
	}
}
