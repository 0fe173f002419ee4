package ngmodule

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moduledef-generator/internal/identifiers"
	"moduledef-generator/internal/output"
)

func ref(name string) Reference {
	return Reference{Value: output.Variable(name), Type: output.Variable(name)}
}

func refs(names ...string) []Reference {
	out := make([]Reference, len(names))
	for i, n := range names {
		out[i] = ref(n)
	}

	return out
}

func baseMetadata(mode SelectorScopeMode) *Metadata {
	return &Metadata{
		Type:              ref("AppModule"),
		InternalType:      output.Variable("AppModule"),
		AdjacentType:      output.Variable("AppModule"),
		SelectorScopeMode: mode,
	}
}

// callMap returns the literal map passed as the sole argument of a definition call.
func callMap(t *testing.T, expr output.Expression) *output.LiteralMapExpr {
	t.Helper()

	call, ok := expr.(*output.InvokeFunctionExpr)
	require.True(t, ok, "expected call, got %s", spew.Sdump(expr))
	require.Len(t, call.Args, 1)

	m, ok := call.Args[0].(*output.LiteralMapExpr)
	require.True(t, ok, "expected literal map, got %s", spew.Sdump(call.Args[0]))

	return m
}

func mapKeys(m *output.LiteralMapExpr) []string {
	keys := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		keys[i] = e.Key
	}

	return keys
}

func mapValue(m *output.LiteralMapExpr, key string) output.Expression {
	for _, e := range m.Entries {
		if e.Key == key {
			return e.Value
		}
	}

	return nil
}

func printStmts(stmts []output.Statement) []string {
	p := output.NewPrinter(nil)

	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = p.Statement(s)
	}

	return out
}

func TestCompileNgModule_MinimalModule(t *testing.T) {
	def := CompileNgModule(baseMetadata(ScopeInline))

	m := callMap(t, def.Expression)
	assert.Equal(t, []string{"type"}, mapKeys(m))
	assert.Empty(t, def.Statements)

	call := def.Expression.(*output.InvokeFunctionExpr)
	assert.True(t, call.Pure)

	fn, ok := call.Fn.(*output.ExternalExpr)
	require.True(t, ok)
	assert.Equal(t, "ɵɵdefineNgModule", fn.Ref.Name)
	assert.Equal(t, identifiers.DefaultCoreModule, fn.Ref.ModuleName)
}

func TestCompileNgModule_TypeUsesInternalType(t *testing.T) {
	meta := baseMetadata(ScopeInline)
	meta.InternalType = output.Variable("AppModule_1")

	m := callMap(t, CompileNgModule(meta).Expression)
	assert.Equal(t, output.Variable("AppModule_1"), mapValue(m, "type"))
}

func TestCompileNgModule_EmptyBootstrapOmitted(t *testing.T) {
	for _, mode := range []SelectorScopeMode{ScopeInline, ScopeSideEffect, ScopeOmit} {
		t.Run(mode.String(), func(t *testing.T) {
			meta := baseMetadata(mode)
			meta.Bootstrap = []Reference{}
			meta.Declarations = refs("A")

			m := callMap(t, CompileNgModule(meta).Expression)
			assert.NotContains(t, mapKeys(m), "bootstrap")
		})
	}
}

func TestCompileNgModule_BootstrapSet(t *testing.T) {
	meta := baseMetadata(ScopeOmit)
	meta.Bootstrap = refs("AppComponent")

	m := callMap(t, CompileNgModule(meta).Expression)
	assert.Equal(t, []string{"type", "bootstrap"}, mapKeys(m))
}

func TestCompileNgModule_InlineScope(t *testing.T) {
	meta := baseMetadata(ScopeInline)
	meta.Declarations = refs("A", "B")
	meta.Exports = refs("A")

	def := CompileNgModule(meta)
	m := callMap(t, def.Expression)

	assert.Equal(t, []string{"type", "declarations", "exports"}, mapKeys(m))
	assert.Equal(t, output.LiteralArr([]output.Expression{output.Variable("A"), output.Variable("B")}),
		mapValue(m, "declarations"))
	assert.Empty(t, def.Statements)
}

func TestCompileNgModule_OmitScope(t *testing.T) {
	meta := baseMetadata(ScopeOmit)
	meta.Declarations = refs("A")
	meta.Imports = refs("B")
	meta.Exports = refs("C")

	def := CompileNgModule(meta)
	m := callMap(t, def.Expression)

	assert.Equal(t, []string{"type"}, mapKeys(m))
	assert.Empty(t, def.Statements)
}

func TestCompileNgModule_SideEffectScope(t *testing.T) {
	meta := baseMetadata(ScopeSideEffect)
	meta.Declarations = refs("A")

	def := CompileNgModule(meta)
	m := callMap(t, def.Expression)

	assert.Equal(t, []string{"type"}, mapKeys(m))
	require.Len(t, def.Statements, 1)
	assert.Equal(t,
		`(function () { (typeof ngJitMode === "undefined" || ngJitMode) && `+
			`ɵɵsetNgModuleScope(AppModule, { declarations: [A] }); })();`,
		printStmts(def.Statements)[0])
}

func TestCompileNgModule_SideEffectScopeAllEmpty(t *testing.T) {
	def := CompileNgModule(baseMetadata(ScopeSideEffect))

	assert.Empty(t, def.Statements)
}

func TestCompileNgModule_SideEffectUsesAdjacentType(t *testing.T) {
	meta := baseMetadata(ScopeSideEffect)
	meta.AdjacentType = output.Variable("AppModule_adjacent")
	meta.Imports = refs("CommonModule")

	def := CompileNgModule(meta)
	require.Len(t, def.Statements, 1)
	assert.Contains(t, printStmts(def.Statements)[0], "ɵɵsetNgModuleScope(AppModule_adjacent, { imports: [CommonModule] })")
}

func TestCompileNgModule_ForwardDeclsDeferImports(t *testing.T) {
	meta := baseMetadata(ScopeInline)
	meta.Imports = refs("B", "A")
	meta.ContainsForwardDecls = true

	m := callMap(t, CompileNgModule(meta).Expression)

	arrow, ok := mapValue(m, "imports").(*output.ArrowFunctionExpr)
	require.True(t, ok, spew.Sdump(mapValue(m, "imports")))
	assert.Empty(t, arrow.Params)
	assert.Equal(t, output.LiteralArr([]output.Expression{output.Variable("B"), output.Variable("A")}), arrow.Body)
}

func TestCompileNgModule_SchemasNeverDeferred(t *testing.T) {
	meta := baseMetadata(ScopeInline)
	meta.Schemas = refs("CUSTOM_ELEMENTS_SCHEMA")
	meta.ContainsForwardDecls = true

	m := callMap(t, CompileNgModule(meta).Expression)

	_, ok := mapValue(m, "schemas").(*output.LiteralArrayExpr)
	assert.True(t, ok)
}

func TestCompileNgModule_EmptySchemasOmitted(t *testing.T) {
	meta := baseMetadata(ScopeInline)
	meta.Schemas = []Reference{}

	m := callMap(t, CompileNgModule(meta).Expression)
	assert.NotContains(t, mapKeys(m), "schemas")
}

func TestCompileNgModule_ID(t *testing.T) {
	meta := baseMetadata(ScopeSideEffect)
	meta.AdjacentType = output.Variable("AppModule_adj")
	meta.Declarations = refs("A")
	meta.ID = output.Literal("app")

	def := CompileNgModule(meta)
	m := callMap(t, def.Expression)

	assert.Equal(t, []string{"type", "id"}, mapKeys(m))
	require.Len(t, def.Statements, 2)

	stmts := printStmts(def.Statements)
	assert.Contains(t, stmts[0], "ɵɵsetNgModuleScope")
	assert.Equal(t, `ɵɵregisterNgModuleType(AppModule_adj, "app");`, stmts[1])
}

func TestCompileNgModule_NoID(t *testing.T) {
	def := CompileNgModule(baseMetadata(ScopeInline))

	m := callMap(t, def.Expression)
	assert.NotContains(t, mapKeys(m), "id")

	for _, s := range printStmts(def.Statements) {
		assert.NotContains(t, s, "ɵɵregisterNgModuleType")
	}
}

func TestCompileNgModule_FullKeyOrder(t *testing.T) {
	meta := baseMetadata(ScopeInline)
	meta.Bootstrap = refs("AppComponent")
	meta.Declarations = refs("AppComponent")
	meta.Imports = refs("CommonModule")
	meta.Exports = refs("AppComponent")
	meta.Schemas = refs("NO_ERRORS_SCHEMA")
	meta.ID = output.Literal("app")

	m := callMap(t, CompileNgModule(meta).Expression)
	assert.Equal(t,
		[]string{"type", "bootstrap", "declarations", "imports", "exports", "schemas", "id"},
		mapKeys(m))
}

func TestCompileNgModule_UnknownModePanics(t *testing.T) {
	assert.Panics(t, func() {
		CompileNgModule(baseMetadata(SelectorScopeMode(42)))
	})
}

func TestCompileNgModule_CustomIdentifiers(t *testing.T) {
	e := NewEmitter(EmitterConfig{Identifiers: identifiers.New("@acme/core", "acmeDev")})

	meta := baseMetadata(ScopeSideEffect)
	meta.Exports = refs("X")

	def := e.CompileNgModule(meta)

	call := def.Expression.(*output.InvokeFunctionExpr)
	assert.Equal(t, "@acme/core", call.Fn.(*output.ExternalExpr).Ref.ModuleName)
	require.Len(t, def.Statements, 1)
	assert.Contains(t, printStmts(def.Statements)[0], `(typeof acmeDev === "undefined" || acmeDev)`)
}
