package ast

// Node is the common interface of every tree node. The pipeline owns the
// tree for the duration of a compilation and never mutates it.
type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
}

// Stmt is the closed set of statement nodes. The marker method keeps the
// union closed so a switch over statement kinds is exhaustive.
type Stmt interface {
	Node
	isStmt()
}

func (*VarDecl) isStmt()    {}
func (*AssignStmt) isStmt() {}
func (*PrintStmt) isStmt()  {}
func (*InputStmt) isStmt()  {}
func (*IfStmt) isStmt()     {}
func (*WhileStmt) isStmt()  {}
func (*ForStmt) isStmt()    {}
func (*ReturnStmt) isStmt() {}
func (*ExprStmt) isStmt()   {}

// Expr is the closed set of expression nodes.
type Expr interface {
	Node
	isExpr()
}

func (*LiteralExpr) isExpr() {}
func (*VarRefExpr) isExpr()  {}
func (*BinaryExpr) isExpr()  {}
func (*UnaryExpr) isExpr()   {}
func (*CallExpr) isExpr()    {}
