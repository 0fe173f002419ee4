package output

// Statement is a node of an emitted JavaScript statement list.
type Statement interface{ isStatement() }

func (*ExpressionStatement) isStatement() {}
func (*ReturnStatement) isStatement()     {}

// ExpressionStatement evaluates Expr for its side effects.
type ExpressionStatement struct {
	Expr Expression
}

// ReturnStatement returns Value from the enclosing function.
type ReturnStatement struct {
	Value Expression
}

// ToStmt turns expr into a statement.
func ToStmt(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{Expr: expr}
}

// Type is a compile-time type annotation.
type Type interface{ isType() }

func (*ExpressionType) isType() {}
func (*BuiltinType) isType()    {}

// ExpressionType is a type spelled by an expression, optionally
// parametrized: `Value<TypeParams...>`.
type ExpressionType struct {
	Value      Expression
	TypeParams []Type
}

// BuiltinTypeName enumerates the built-in types.
type BuiltinTypeName int

const (
	BuiltinNone BuiltinTypeName = iota
	BuiltinDynamic
)

// BuiltinType is a language-level type.
type BuiltinType struct {
	Name BuiltinTypeName
}

// NoneType is the bottom type, printed as `never`.
var NoneType = &BuiltinType{Name: BuiltinNone}

// DynamicType is the top type, printed as `any`.
var DynamicType = &BuiltinType{Name: BuiltinDynamic}

// NewExpressionType builds an ExpressionType.
func NewExpressionType(value Expression, params ...Type) *ExpressionType {
	return &ExpressionType{Value: value, TypeParams: params}
}
