package output

// Expression is a node of an emitted JavaScript expression tree.
//
// The set of node types is closed; printers switch over it exhaustively.
type Expression interface{ isExpression() }

func (*ReadVarExpr) isExpression()        {}
func (*ExternalExpr) isExpression()       {}
func (*LiteralExpr) isExpression()        {}
func (*LiteralArrayExpr) isExpression()   {}
func (*LiteralMapExpr) isExpression()     {}
func (*InvokeFunctionExpr) isExpression() {}
func (*FunctionExpr) isExpression()       {}
func (*ArrowFunctionExpr) isExpression()  {}
func (*BinaryOperatorExpr) isExpression() {}
func (*TypeofExpr) isExpression()         {}
func (*WrappedNodeExpr) isExpression()    {}

// ReadVarExpr reads a variable that is in scope at the emission site.
type ReadVarExpr struct {
	Name string
}

// ExternalReference names a symbol exported by another module.
// An empty ModuleName means a global. An empty Name refers to the module
// namespace itself.
type ExternalReference struct {
	ModuleName string
	Name       string
}

// ExternalExpr reads a symbol through an import.
type ExternalExpr struct {
	Ref ExternalReference
}

// LiteralExpr is a primitive literal: nil, bool, string, int, int64 or float64.
type LiteralExpr struct {
	Value any
}

// LiteralArrayExpr is an array literal.
type LiteralArrayExpr struct {
	Entries []Expression
}

// LiteralMapEntry is a single key of an object literal.
type LiteralMapEntry struct {
	Key    string
	Value  Expression
	Quoted bool
}

// LiteralMapExpr is an object literal. Entries are printed in slice order.
type LiteralMapExpr struct {
	Entries []LiteralMapEntry
}

// InvokeFunctionExpr calls Fn with Args.
type InvokeFunctionExpr struct {
	Fn   Expression
	Args []Expression
	// Pure marks the call as free of side effects so bundlers may drop it
	// when the result is unused.
	Pure bool
}

// FunctionExpr is a `function` expression with a statement body.
type FunctionExpr struct {
	Params     []string
	Statements []Statement
}

// ArrowFunctionExpr is an arrow function with an expression body.
type ArrowFunctionExpr struct {
	Params []string
	Body   Expression
}

// BinaryOperator enumerates the binary operators the emitter needs.
type BinaryOperator int

const (
	BinaryIdentical BinaryOperator = iota
	BinaryAnd
	BinaryOr
)

// Token returns the JavaScript spelling of the operator.
func (op BinaryOperator) Token() string {
	switch op {
	case BinaryIdentical:
		return "==="
	case BinaryAnd:
		return "&&"
	case BinaryOr:
		return "||"
	default:
		return "?"
	}
}

// precedence follows the JavaScript operator precedence table.
func (op BinaryOperator) precedence() int {
	switch op {
	case BinaryOr:
		return 3
	case BinaryAnd:
		return 4
	case BinaryIdentical:
		return 8
	default:
		return 0
	}
}

// BinaryOperatorExpr applies Operator to Lhs and Rhs.
type BinaryOperatorExpr struct {
	Operator BinaryOperator
	Lhs      Expression
	Rhs      Expression
}

// TypeofExpr is `typeof Expr`. In a type position it denotes the type of a value.
type TypeofExpr struct {
	Expr Expression
}

// WrappedNodeExpr carries already-built source text that is emitted verbatim.
type WrappedNodeExpr struct {
	Source string
}

// Variable returns a read of the named variable.
func Variable(name string) *ReadVarExpr {
	return &ReadVarExpr{Name: name}
}

// Import returns a read of an imported symbol.
func Import(moduleName, name string) *ExternalExpr {
	return &ExternalExpr{Ref: ExternalReference{ModuleName: moduleName, Name: name}}
}

// Literal wraps a primitive value.
func Literal(value any) *LiteralExpr {
	return &LiteralExpr{Value: value}
}

// LiteralArr builds an array literal.
func LiteralArr(entries []Expression) *LiteralArrayExpr {
	return &LiteralArrayExpr{Entries: entries}
}

// Call invokes fn with args.
func Call(fn Expression, args ...Expression) *InvokeFunctionExpr {
	return &InvokeFunctionExpr{Fn: fn, Args: args}
}

// PureCall invokes fn with args and marks the call as pure.
func PureCall(fn Expression, args ...Expression) *InvokeFunctionExpr {
	return &InvokeFunctionExpr{Fn: fn, Args: args, Pure: true}
}

// Fn builds a function expression.
func Fn(params []string, statements []Statement) *FunctionExpr {
	return &FunctionExpr{Params: params, Statements: statements}
}

// ArrowFn builds an arrow function returning body.
func ArrowFn(params []string, body Expression) *ArrowFunctionExpr {
	return &ArrowFunctionExpr{Params: params, Body: body}
}

// And builds `lhs && rhs`.
func And(lhs, rhs Expression) *BinaryOperatorExpr {
	return &BinaryOperatorExpr{Operator: BinaryAnd, Lhs: lhs, Rhs: rhs}
}

// Or builds `lhs || rhs`.
func Or(lhs, rhs Expression) *BinaryOperatorExpr {
	return &BinaryOperatorExpr{Operator: BinaryOr, Lhs: lhs, Rhs: rhs}
}

// Identical builds `lhs === rhs`.
func Identical(lhs, rhs Expression) *BinaryOperatorExpr {
	return &BinaryOperatorExpr{Operator: BinaryIdentical, Lhs: lhs, Rhs: rhs}
}

// Typeof builds `typeof expr`.
func Typeof(expr Expression) *TypeofExpr {
	return &TypeofExpr{Expr: expr}
}

// Wrapped emits source verbatim.
func Wrapped(source string) *WrappedNodeExpr {
	return &WrappedNodeExpr{Source: source}
}
