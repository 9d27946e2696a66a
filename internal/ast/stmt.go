package ast

import "confucio/internal/types"

// VarDecl declares one variable, optionally initializing it.
// Example: "Float x @ 5" or "Float x"
type VarDecl struct {
	Pos    Position
	EndPos Position
	Name   string
	Type   types.Type
	Init   Expr // nil when the declaration has no initializer
}

// AssignStmt assigns a value to an already-declared variable.
// Example: "x @ x / 1"
type AssignStmt struct {
	Pos    Position
	EndPos Position
	Name   string
	Value  Expr
}

// PrintStmt writes each value to the console in order.
// Example: "FileInputStream{x, "done"]"
type PrintStmt struct {
	Pos    Position
	EndPos Position
	Values []Expr
}

// InputStmt reads one console value into a declared variable.
// Example: "deleteSystem32{x]"
type InputStmt struct {
	Pos    Position
	EndPos Position
	Name   string
}

// IfStmt branches on a Boolean condition. Else is nil when the source has
// no else branch.
// Example: "func {x = 3] [ ... ) else [ ... )"
type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   []Stmt
	Else   []Stmt
}

// WhileStmt loops while a Boolean condition holds.
// Example: "return {x # 10] [ x @ x / 1 )"
type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   []Stmt
}

// ForStmt is a counted loop. Init, Cond, and Update are each optional;
// Init declares into the same single global scope as every other
// declaration.
// Example: "if {Float i @ 0; i # 10; i @ i / 1] [ ... )"
type ForStmt struct {
	Pos    Position
	EndPos Position
	Init   *VarDecl    // nil when absent
	Cond   Expr        // nil when absent
	Update *AssignStmt // nil when absent
	Body   []Stmt
}

// ReturnStmt leaves the enclosing function. Value is nil for a bare
// return out of a void function.
// Example: "* x" or "*"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// ExprStmt evaluates an expression for its effect, discarding the result.
// Example: "log{x]"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

func (v *VarDecl) NodePos() Position    { return v.Pos }
func (v *VarDecl) NodeEndPos() Position { return v.EndPos }
func (*VarDecl) NodeType() NodeType     { return VAR_DECL }

func (a *AssignStmt) NodePos() Position    { return a.Pos }
func (a *AssignStmt) NodeEndPos() Position { return a.EndPos }
func (*AssignStmt) NodeType() NodeType     { return ASSIGN_STMT }

func (p *PrintStmt) NodePos() Position    { return p.Pos }
func (p *PrintStmt) NodeEndPos() Position { return p.EndPos }
func (*PrintStmt) NodeType() NodeType     { return PRINT_STMT }

func (i *InputStmt) NodePos() Position    { return i.Pos }
func (i *InputStmt) NodeEndPos() Position { return i.EndPos }
func (*InputStmt) NodeType() NodeType     { return INPUT_STMT }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (w *WhileStmt) NodePos() Position    { return w.Pos }
func (w *WhileStmt) NodeEndPos() Position { return w.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (f *ForStmt) NodePos() Position    { return f.Pos }
func (f *ForStmt) NodeEndPos() Position { return f.EndPos }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }
