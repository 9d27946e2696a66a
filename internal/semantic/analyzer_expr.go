package semantic

import (
	"fmt"

	"confucio/internal/ast"
	"confucio/internal/errors"
	"confucio/internal/types"
)

// analyzeExpr infers an expression's type, records it in the Info, and
// returns it. Every rule the code generator depends on lives here.
func (a *Analyzer) analyzeExpr(expr ast.Expr) (types.Type, *errors.CompilerError) {
	typ, err := a.inferExpr(expr)
	if err != nil {
		return types.Unknown, err
	}
	a.info.ExprTypes[expr] = typ
	return typ, nil
}

func (a *Analyzer) inferExpr(expr ast.Expr) (types.Type, *errors.CompilerError) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Type, nil
	case *ast.VarRefExpr:
		return a.inferVarRef(e)
	case *ast.BinaryExpr:
		return a.inferBinary(e)
	case *ast.UnaryExpr:
		return a.inferUnary(e)
	case *ast.CallExpr:
		return a.inferCall(e)
	default:
		panic(fmt.Sprintf("semantic: unknown expression node %T", expr))
	}
}

func (a *Analyzer) inferVarRef(ref *ast.VarRefExpr) (types.Type, *errors.CompilerError) {
	sym := a.symbols.Lookup(ref.Name)
	if sym == nil {
		return types.Unknown, errors.UndeclaredVariable(ref.Name, ref.Pos)
	}
	if !sym.Initialized {
		return types.Unknown, errors.UseBeforeInit(ref.Name, ref.Pos)
	}
	return sym.Type, nil
}

func (a *Analyzer) inferBinary(bin *ast.BinaryExpr) (types.Type, *errors.CompilerError) {
	left, err := a.analyzeExpr(bin.Left)
	if err != nil {
		return types.Unknown, err
	}
	right, err := a.analyzeExpr(bin.Right)
	if err != nil {
		return types.Unknown, err
	}

	switch {
	case bin.Op.IsArithmetic():
		// The addition-category operator is the one type-directed
		// operator in the language: Text + Text concatenates. Every
		// other arithmetic pairing must be numeric and identical.
		if bin.Op.IsConcatCandidate() && left == types.Text && right == types.Text {
			return types.Text, nil
		}
		if left.IsNumeric() && left == right {
			return left, nil
		}
		return types.Unknown, errors.BinaryOperandMismatch(bin.Op, left, right, bin.Pos)

	case bin.Op.IsOrdering():
		if left.IsNumeric() && left == right {
			return types.Boolean, nil
		}
		return types.Unknown, errors.BinaryOperandMismatch(bin.Op, left, right, bin.Pos)

	default: // equality
		if left == right && left.IsValue() {
			return types.Boolean, nil
		}
		return types.Unknown, errors.BinaryOperandMismatch(bin.Op, left, right, bin.Pos)
	}
}

func (a *Analyzer) inferUnary(un *ast.UnaryExpr) (types.Type, *errors.CompilerError) {
	operand, err := a.analyzeExpr(un.Operand)
	if err != nil {
		return types.Unknown, err
	}
	if !operand.IsNumeric() {
		return types.Unknown, errors.UnaryOperandMismatch(un.Op, operand, un.Pos)
	}
	return operand, nil
}

func (a *Analyzer) inferCall(call *ast.CallExpr) (types.Type, *errors.CompilerError) {
	fn := a.symbols.Function(call.Name)
	if fn == nil {
		return types.Unknown, errors.UndefinedFunction(call.Name, call.Pos)
	}

	if len(call.Args) != len(fn.Params) {
		return types.Unknown, errors.ArityMismatch(call.Name, len(fn.Params), len(call.Args), call.Pos)
	}

	for i, arg := range call.Args {
		argType, err := a.analyzeExpr(arg)
		if err != nil {
			return types.Unknown, err
		}
		if argType != fn.Params[i].Type {
			return types.Unknown, errors.TypeMismatch(
				fmt.Sprintf("argument %d of call to '%s'", i+1, call.Name),
				fn.Params[i].Type, argType, arg.NodePos())
		}
	}

	return fn.Return, nil
}
