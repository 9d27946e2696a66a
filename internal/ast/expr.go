package ast

import "confucio/internal/types"

// LiteralExpr is a constant with its value already parsed into a native
// representation. Type is one of Integer, Real, Text, Boolean; exactly one
// of the value fields is meaningful, selected by Type.
// Example: "5", "3.14", "\"hi\"", "true"
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Type   types.Type
	Int    int64
	Real   float64
	Text   string
	Bool   bool
}

// VarRefExpr reads a variable or parameter.
type VarRefExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// BinaryExpr applies a binary operator. Op carries the conventional
// meaning; the surface spelling is gone by the time the tree is built.
// Example: "x / y" (addition)
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     types.BinaryOp
	Left   Expr
	Right  Expr
}

// UnaryExpr applies a unary operator to a numeric operand.
// Example: "~x" (negation)
type UnaryExpr struct {
	Pos     Position
	EndPos  Position
	Op      types.UnaryOp
	Operand Expr
}

// CallExpr calls a module-local function.
// Example: "add{x, y]"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Name   string
	Args   []Expr
}

func (l *LiteralExpr) NodePos() Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() Position { return l.EndPos }
func (*LiteralExpr) NodeType() NodeType     { return LITERAL_EXPR }

func (v *VarRefExpr) NodePos() Position    { return v.Pos }
func (v *VarRefExpr) NodeEndPos() Position { return v.EndPos }
func (*VarRefExpr) NodeType() NodeType     { return VAR_REF_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }
