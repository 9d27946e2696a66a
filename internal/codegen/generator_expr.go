package codegen

import (
	"fmt"

	"confucio/internal/ast"
	"confucio/internal/ir"
	"confucio/internal/types"
)

func (g *Generator) lowerExpr(expr ast.Expr) *ir.Value {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return g.lowerLiteral(e)
	case *ast.VarRefExpr:
		return g.builder.EmitLoad(g.slot(e.Name))
	case *ast.BinaryExpr:
		return g.lowerBinary(e)
	case *ast.UnaryExpr:
		return g.builder.EmitUnary(e.Op, g.lowerExpr(e.Operand))
	case *ast.CallExpr:
		return g.lowerCall(e)
	default:
		panic(fmt.Sprintf("codegen: unknown expression node %T", expr))
	}
}

func (g *Generator) lowerLiteral(lit *ast.LiteralExpr) *ir.Value {
	switch lit.Type {
	case types.Integer:
		return g.builder.EmitConstant(lit.Int, types.Integer)
	case types.Real:
		return g.builder.EmitConstant(lit.Real, types.Real)
	case types.Text:
		return g.builder.EmitConstant(lit.Text, types.Text)
	case types.Boolean:
		return g.builder.EmitConstant(lit.Bool, types.Boolean)
	default:
		panic(fmt.Sprintf("codegen: literal with type %s", lit.Type))
	}
}

// lowerBinary is the one place lowering is type-directed rather than
// symbol-directed: Text addition and Text equality go through the
// runtime, everything else is a plain IR operation.
func (g *Generator) lowerBinary(bin *ast.BinaryExpr) *ir.Value {
	left := g.lowerExpr(bin.Left)
	right := g.lowerExpr(bin.Right)
	result := g.info.TypeOf(bin)

	if bin.Op.IsConcatCandidate() && result == types.Text {
		return g.lowerConcat(left, right)
	}
	if bin.Op == types.Equal && g.info.TypeOf(bin.Left) == types.Text {
		return g.lowerTextEquality(left, right)
	}
	return g.builder.EmitBinary(bin.Op, left, right, result)
}

// lowerConcat allocates length(l) + length(r) + 1 bytes, copies the left
// operand in, and appends the right.
func (g *Generator) lowerConcat(left, right *ir.Value) *ir.Value {
	leftLen := g.builder.EmitCall(ir.RuntimeTextLength, []*ir.Value{left}, types.Integer)
	rightLen := g.builder.EmitCall(ir.RuntimeTextLength, []*ir.Value{right}, types.Integer)
	sum := g.builder.EmitBinary(types.Add, leftLen, rightLen, types.Integer)
	one := g.builder.EmitConstant(int64(1), types.Integer)
	size := g.builder.EmitBinary(types.Add, sum, one, types.Integer)

	buffer := g.builder.EmitCall(ir.RuntimeAllocBytes, []*ir.Value{size}, types.Text)
	copied := g.builder.EmitCall(ir.RuntimeTextCopy, []*ir.Value{buffer, left}, types.Text)
	return g.builder.EmitCall(ir.RuntimeTextConcat, []*ir.Value{copied, right}, types.Text)
}

// lowerTextEquality compares content: text_compare returns zero iff the
// operands are equal.
func (g *Generator) lowerTextEquality(left, right *ir.Value) *ir.Value {
	compared := g.builder.EmitCall(ir.RuntimeTextCompare, []*ir.Value{left, right}, types.Integer)
	zero := g.builder.EmitConstant(int64(0), types.Integer)
	return g.builder.EmitBinary(types.Equal, compared, zero, types.Boolean)
}

func (g *Generator) lowerCall(call *ast.CallExpr) *ir.Value {
	args := make([]*ir.Value, len(call.Args))
	for i, arg := range call.Args {
		args[i] = g.lowerExpr(arg)
	}
	return g.builder.EmitCall(symbolName(call.Name), args, g.info.TypeOf(call))
}
