package ngmodule

import (
	"moduledef-generator/internal/identifiers"
	"moduledef-generator/internal/output"
)

// TupleTypeOf returns `[typeof A, typeof B, ...]` for refs, or the none type
// when refs is empty.
func TupleTypeOf(refs []Reference) output.Type {
	if len(refs) == 0 {
		return output.NoneType
	}

	types := make([]output.Expression, len(refs))
	for i, ref := range refs {
		types[i] = output.Typeof(ref.Type)
	}

	return output.NewExpressionType(output.LiteralArr(types))
}

// CreateNgModuleType returns
// `NgModuleDeclaration<Type, Declarations, Imports, Exports>`.
// Bootstrap and schemas are not part of the declared type.
func (e *Emitter) CreateNgModuleType(meta *Metadata) output.Type {
	return output.NewExpressionType(
		e.ids.Expr(identifiers.NgModuleDeclaration),
		output.NewExpressionType(meta.Type.Type),
		TupleTypeOf(meta.Declarations),
		TupleTypeOf(meta.Imports),
		TupleTypeOf(meta.Exports),
	)
}
