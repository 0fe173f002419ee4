package ngmodule

import (
	"moduledef-generator/internal/identifiers"
	"moduledef-generator/internal/output"
)

// GenerateSetNgModuleScopeCall builds
//
//	(function () { (typeof ngJitMode === "undefined" || ngJitMode) && setNgModuleScope(AdjacentType, {...}); })();
//
// It returns nil when declarations, imports and exports are all empty.
func (e *Emitter) GenerateSetNgModuleScopeCall(meta *Metadata) output.Statement {
	scopeMap := NewDefinitionMap()
	setScopeKeys(scopeMap, meta)

	if scopeMap.IsEmpty() {
		return nil
	}

	fnCall := output.Call(
		e.ids.Expr(identifiers.SetNgModuleScope),
		meta.AdjacentType,
		scopeMap.ToLiteralMap(),
	)
	guardedCall := e.jitOnlyGuardedExpression(fnCall)

	iife := output.Fn(nil, []output.Statement{output.ToStmt(guardedCall)})

	return output.ToStmt(output.Call(iife))
}

// setScopeKeys sets each non-empty scope list on m.
func setScopeKeys(m *DefinitionMap, meta *Metadata) {
	if len(meta.Declarations) > 0 {
		m.Set(KeyDeclarations, RefsToArray(meta.Declarations, meta.ContainsForwardDecls).Expr())
	}

	if len(meta.Imports) > 0 {
		m.Set(KeyImports, RefsToArray(meta.Imports, meta.ContainsForwardDecls).Expr())
	}

	if len(meta.Exports) > 0 {
		m.Set(KeyExports, RefsToArray(meta.Exports, meta.ContainsForwardDecls).Expr())
	}
}

// jitOnlyGuardedExpression returns `(typeof guard === "undefined" || guard) && expr`.
func (e *Emitter) jitOnlyGuardedExpression(expr output.Expression) output.Expression {
	guard := e.ids.JitGuard()
	guardNotDefined := output.Identical(output.Typeof(guard), output.Literal("undefined"))

	return output.And(output.Or(guardNotDefined, guard), expr)
}
