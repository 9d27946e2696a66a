package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"confucio/internal/types"
)

func TestPrintRendersConventionalSyntax(t *testing.T) {
	program := &Program{
		Functions: []*FunctionDef{
			{
				Name:   "side",
				Return: types.Integer,
				Body: []Stmt{
					&VarDecl{
						Name: "x",
						Type: types.Integer,
						Init: &BinaryExpr{
							Op:    types.Add,
							Left:  &LiteralExpr{Type: types.Integer, Int: 1},
							Right: &LiteralExpr{Type: types.Integer, Int: 2},
						},
					},
					&PrintStmt{Values: []Expr{&VarRefExpr{Name: "x"}}},
					&ReturnStmt{Value: &VarRefExpr{Name: "x"}},
				},
			},
		},
	}

	rendered := Print(program)
	assert.Contains(t, rendered, "FunctionDef Integer side()")
	assert.Contains(t, rendered, "VarDecl Integer x = (1 + 2)",
		"operators print conventionally, not in surface spelling")
	assert.Contains(t, rendered, "Print x")
	assert.Contains(t, rendered, "Return x")
}

func TestExprStringNestsAndQuotes(t *testing.T) {
	expr := &BinaryExpr{
		Op:   types.Equal,
		Left: &LiteralExpr{Type: types.Text, Text: "a"},
		Right: &CallExpr{
			Name: "pick",
			Args: []Expr{
				&UnaryExpr{Op: types.Neg, Operand: &LiteralExpr{Type: types.Integer, Int: 3}},
				&LiteralExpr{Type: types.Real, Real: 2.5},
			},
		},
	}

	assert.Equal(t, `("a" == pick((-3), 2.5))`, ExprString(expr))
}

func TestPrintStatementVariants(t *testing.T) {
	program := &Program{
		Functions: []*FunctionDef{
			{
				Name:   "side",
				Return: types.Integer,
				Body: []Stmt{
					&InputStmt{Name: "x"},
					&IfStmt{
						Cond: &LiteralExpr{Type: types.Boolean, Bool: true},
						Then: []Stmt{&AssignStmt{Name: "x", Value: &LiteralExpr{Type: types.Integer, Int: 1}}},
						Else: []Stmt{&AssignStmt{Name: "x", Value: &LiteralExpr{Type: types.Integer, Int: 2}}},
					},
					&WhileStmt{
						Cond: &LiteralExpr{Type: types.Boolean, Bool: false},
						Body: []Stmt{&ReturnStmt{}},
					},
				},
			},
		},
	}

	rendered := Print(program)
	assert.Contains(t, rendered, "Input x")
	assert.Contains(t, rendered, "If true")
	assert.Contains(t, rendered, "Else")
	assert.Contains(t, rendered, "While false")
	assert.Contains(t, rendered, "Return\n")
}
