package ngmodule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moduledef-generator/internal/output"
)

func strPtr(s string) *string { return &s }

func TestCompileNgModuleDeclarationExpression_TypeAndImports(t *testing.T) {
	expr := CompileNgModuleDeclarationExpression(&DeclarationMetadata{
		Type:    strPtr("AppModule"),
		Imports: strPtr("[CommonModule]"),
	})

	assert.False(t, expr.Pure)

	m := callMap(t, expr)
	assert.Equal(t, []string{"type", "imports"}, mapKeys(m))
	assert.Equal(t, output.Wrapped("[CommonModule]"), mapValue(m, "imports"))
}

func TestCompileNgModuleDeclarationExpression_FixedOrder(t *testing.T) {
	expr := CompileNgModuleDeclarationExpression(&DeclarationMetadata{
		ID:           strPtr(`"app"`),
		Schemas:      strPtr("[CUSTOM_ELEMENTS_SCHEMA]"),
		Exports:      strPtr("[A]"),
		Imports:      strPtr("function () { return [B]; }"),
		Declarations: strPtr("[A]"),
		Bootstrap:    strPtr("[A]"),
		Type:         strPtr("AppModule"),
	})

	m := callMap(t, expr)
	assert.Equal(t,
		[]string{"type", "bootstrap", "declarations", "imports", "exports", "schemas", "id"},
		mapKeys(m))

	assert.Equal(t,
		`ɵɵdefineNgModule({ type: AppModule, bootstrap: [A], declarations: [A], imports: function () { return [B]; }, `+
			`exports: [A], schemas: [CUSTOM_ELEMENTS_SCHEMA], id: "app" })`,
		output.NewPrinter(nil).Expression(expr))
}

func TestCompileNgModuleDeclarationExpression_PresenceNotEmptiness(t *testing.T) {
	expr := CompileNgModuleDeclarationExpression(&DeclarationMetadata{
		Type:      strPtr("AppModule"),
		Bootstrap: strPtr("[]"),
	})

	m := callMap(t, expr)
	require.Equal(t, []string{"type", "bootstrap"}, mapKeys(m))
	assert.Equal(t, output.Wrapped("[]"), mapValue(m, "bootstrap"))
}

func TestCompileDeclareNgModuleFromMetadata(t *testing.T) {
	e := NewEmitter(EmitterConfig{Version: "17.0.0"})

	meta := baseMetadata(ScopeOmit)
	meta.Declarations = refs("A")
	meta.Imports = refs("B")
	meta.Bootstrap = []Reference{}
	meta.Schemas = refs("S")
	meta.ID = output.Literal("app")
	meta.ContainsForwardDecls = true

	def := e.CompileDeclareNgModuleFromMetadata(meta)

	assert.Empty(t, def.Statements)
	assert.NotNil(t, def.Type)

	call := def.Expression.(*output.InvokeFunctionExpr)
	assert.False(t, call.Pure)

	m := callMap(t, def.Expression)
	assert.Equal(t,
		[]string{"minVersion", "version", "ngImport", "type", "declarations", "imports", "schemas", "id"},
		mapKeys(m))

	imports := output.NewImportManager()
	assert.Equal(t,
		`i0.ɵɵngDeclareNgModule({ minVersion: "14.0.0", version: "17.0.0", ngImport: i0, type: AppModule, `+
			`declarations: () => [A], imports: () => [B], schemas: [S], id: "app" })`,
		output.NewPrinter(imports).Expression(def.Expression))
}
