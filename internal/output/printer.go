package output

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const pureAnnotation = "/*@__PURE__*/ "

var identifierRe = regexp.MustCompile(`^[A-Za-z_$\p{L}][A-Za-z0-9_$\p{L}\p{N}]*$`)

// Printer renders output trees as JavaScript/TypeScript source text.
//
// External references are rendered through the ImportManager. A Printer
// without one prints bare symbol names.
type Printer struct {
	imports *ImportManager
}

// NewPrinter creates a Printer that allocates import aliases from imports.
func NewPrinter(imports *ImportManager) *Printer {
	return &Printer{imports: imports}
}

// Expression renders e.
func (p *Printer) Expression(e Expression) string {
	var sb strings.Builder
	p.writeExpr(&sb, e)

	return sb.String()
}

// Statement renders s, including the trailing semicolon.
func (p *Printer) Statement(s Statement) string {
	var sb strings.Builder
	p.writeStmt(&sb, s)

	return sb.String()
}

// Type renders t.
func (p *Printer) Type(t Type) string {
	var sb strings.Builder
	p.writeType(&sb, t)

	return sb.String()
}

func (p *Printer) writeExpr(sb *strings.Builder, e Expression) {
	switch e := e.(type) {
	case *ReadVarExpr:
		sb.WriteString(e.Name)

	case *ExternalExpr:
		p.writeExternal(sb, e.Ref)

	case *LiteralExpr:
		sb.WriteString(literalString(e.Value))

	case *LiteralArrayExpr:
		sb.WriteString("[")

		for i, entry := range e.Entries {
			if i > 0 {
				sb.WriteString(", ")
			}

			p.writeExpr(sb, entry)
		}

		sb.WriteString("]")

	case *LiteralMapExpr:
		if len(e.Entries) == 0 {
			sb.WriteString("{}")
			return
		}

		sb.WriteString("{ ")

		for i, entry := range e.Entries {
			if i > 0 {
				sb.WriteString(", ")
			}

			if entry.Quoted || !identifierRe.MatchString(entry.Key) {
				sb.WriteString(QuoteString(entry.Key))
			} else {
				sb.WriteString(entry.Key)
			}

			sb.WriteString(": ")
			p.writeExpr(sb, entry.Value)
		}

		sb.WriteString(" }")

	case *InvokeFunctionExpr:
		if e.Pure {
			sb.WriteString(pureAnnotation)
		}

		p.writeOperand(sb, e.Fn, needsCalleeParens(e.Fn))
		sb.WriteString("(")

		for i, arg := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			p.writeExpr(sb, arg)
		}

		sb.WriteString(")")

	case *FunctionExpr:
		sb.WriteString("function (")
		sb.WriteString(strings.Join(e.Params, ", "))
		sb.WriteString(") {")

		for _, stmt := range e.Statements {
			sb.WriteString(" ")
			p.writeStmt(sb, stmt)
		}

		if len(e.Statements) > 0 {
			sb.WriteString(" ")
		}

		sb.WriteString("}")

	case *ArrowFunctionExpr:
		sb.WriteString("(")
		sb.WriteString(strings.Join(e.Params, ", "))
		sb.WriteString(") => ")

		_, isMap := e.Body.(*LiteralMapExpr)
		p.writeOperand(sb, e.Body, isMap)

	case *BinaryOperatorExpr:
		prec := e.Operator.precedence()

		p.writeOperand(sb, e.Lhs, operandNeedsParens(e.Lhs, prec, false))
		sb.WriteString(" ")
		sb.WriteString(e.Operator.Token())
		sb.WriteString(" ")
		p.writeOperand(sb, e.Rhs, operandNeedsParens(e.Rhs, prec, true))

	case *TypeofExpr:
		sb.WriteString("typeof ")
		p.writeOperand(sb, e.Expr, operandNeedsParens(e.Expr, 100, false))

	case *WrappedNodeExpr:
		sb.WriteString(e.Source)

	default:
		panic(fmt.Sprintf("output: unsupported expression %T", e))
	}
}

func (p *Printer) writeOperand(sb *strings.Builder, e Expression, parens bool) {
	if parens {
		sb.WriteString("(")
	}

	p.writeExpr(sb, e)

	if parens {
		sb.WriteString(")")
	}
}

func (p *Printer) writeExternal(sb *strings.Builder, ref ExternalReference) {
	if ref.ModuleName == "" || p.imports == nil {
		sb.WriteString(ref.Name)
		return
	}

	sb.WriteString(p.imports.Alias(ref.ModuleName))

	if ref.Name != "" {
		sb.WriteString(".")
		sb.WriteString(ref.Name)
	}
}

func (p *Printer) writeStmt(sb *strings.Builder, s Statement) {
	switch s := s.(type) {
	case *ExpressionStatement:
		p.writeExpr(sb, s.Expr)
		sb.WriteString(";")

	case *ReturnStatement:
		sb.WriteString("return")

		if s.Value != nil {
			sb.WriteString(" ")
			p.writeExpr(sb, s.Value)
		}

		sb.WriteString(";")

	default:
		panic(fmt.Sprintf("output: unsupported statement %T", s))
	}
}

func (p *Printer) writeType(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case *ExpressionType:
		p.writeExpr(sb, t.Value)

		if len(t.TypeParams) == 0 {
			return
		}

		sb.WriteString("<")

		for i, param := range t.TypeParams {
			if i > 0 {
				sb.WriteString(", ")
			}

			p.writeType(sb, param)
		}

		sb.WriteString(">")

	case *BuiltinType:
		switch t.Name {
		case BuiltinNone:
			sb.WriteString("never")
		case BuiltinDynamic:
			sb.WriteString("any")
		default:
			panic(fmt.Sprintf("output: unsupported builtin type %d", t.Name))
		}

	default:
		panic(fmt.Sprintf("output: unsupported type %T", t))
	}
}

func needsCalleeParens(e Expression) bool {
	switch e.(type) {
	case *FunctionExpr, *ArrowFunctionExpr, *BinaryOperatorExpr, *TypeofExpr:
		return true
	default:
		return false
	}
}

// operandNeedsParens reports whether e must be parenthesized when it appears
// as an operand of an operator with the given precedence.
func operandNeedsParens(e Expression, parentPrec int, right bool) bool {
	switch e := e.(type) {
	case *BinaryOperatorExpr:
		prec := e.Operator.precedence()
		return prec < parentPrec || (right && prec == parentPrec)
	case *FunctionExpr, *ArrowFunctionExpr:
		return true
	default:
		return false
	}
}

func literalString(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return QuoteString(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		panic(fmt.Sprintf("output: unsupported literal %T", v))
	}
}
