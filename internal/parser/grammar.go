package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar structs for participle. These mirror the Confuc-IO surface
// syntax exactly as written; the builder in builder.go converts them to
// the core tree with all surface spellings mapped to conventional tags.
//
// Surface delimiter reminder: "{ ... ]" is an argument/condition list,
// "[ ... )" is a block.

type Program struct {
	Pos       lexer.Position
	Functions []*FunctionDef `@@*`
	EndPos    lexer.Position
}

// FunctionDef. A definition with no leading type is void.
// Example: `Float side {] [ * 0 )`
type FunctionDef struct {
	Pos    lexer.Position
	Return *string        `@("Float" | "String" | "int" | "While")?`
	Name   string         `@Ident`
	Params []*Param       `"{" [ @@ { "," @@ } ] "]"`
	Body   []*Statement   `"[" @@* ")"`
	EndPos lexer.Position
}

type Param struct {
	Pos    lexer.Position
	Type   string         `@("Float" | "String" | "int" | "While")`
	Name   string         `@Ident`
	EndPos lexer.Position
}

type Statement struct {
	If      *IfStmt      `  @@`
	While   *WhileStmt   `| @@`
	For     *ForStmt     `| @@`
	Print   *PrintStmt   `| @@`
	Input   *InputStmt   `| @@`
	Return  *ReturnStmt  `| @@`
	VarDecl *VarDeclStmt `| @@`
	Assign  *AssignStmt  `| @@`
	Expr    *ExprStmt    `| @@`
}

// VarDeclStmt. Example: `Float x @ 5`
type VarDeclStmt struct {
	Pos    lexer.Position
	Type   string         `@("Float" | "String" | "int" | "While")`
	Name   string         `@Ident`
	Init   *Expr          `[ "@" @@ ]`
	EndPos lexer.Position
}

// AssignStmt. Example: `x @ x / 1`
type AssignStmt struct {
	Pos    lexer.Position
	Name   string         `@Ident`
	Value  *Expr          `"@" @@`
	EndPos lexer.Position
}

// IfStmt: the surface keyword is "func". Example:
// `func {x = 3] [ ... ) else [ ... )`
type IfStmt struct {
	Pos    lexer.Position
	Cond   *Expr          `"func" "{" @@ "]"`
	Then   []*Statement   `"[" @@* ")"`
	Else   *ElseClause    `[ @@ ]`
	EndPos lexer.Position
}

type ElseClause struct {
	Body []*Statement `"else" "[" @@* ")"`
}

// WhileStmt: the surface keyword is "return". Example:
// `return {x # 10] [ x @ x / 1 )`
type WhileStmt struct {
	Pos    lexer.Position
	Cond   *Expr          `"return" "{" @@ "]"`
	Body   []*Statement   `"[" @@* ")"`
	EndPos lexer.Position
}

// ForStmt: the surface keyword is "if". Example:
// `if {Float i @ 0; i # 10; i @ i / 1] [ ... )`
type ForStmt struct {
	Pos    lexer.Position
	Init   *VarDeclStmt   `"if" "{" [ @@ ] ";"`
	Cond   *Expr          `[ @@ ] ";"`
	Update *AssignStmt    `[ @@ ] "]"`
	Body   []*Statement   `"[" @@* ")"`
	EndPos lexer.Position
}

// PrintStmt. Example: `FileInputStream{x, "done"]`
type PrintStmt struct {
	Pos    lexer.Position
	Values []*Expr        `"FileInputStream" "{" @@ { "," @@ } "]"`
	EndPos lexer.Position
}

// InputStmt. Example: `deleteSystem32{x]`
type InputStmt struct {
	Pos    lexer.Position
	Name   string         `"deleteSystem32" "{" @Ident "]"`
	EndPos lexer.Position
}

// ReturnStmt: the surface keyword is "*". Example: `* x / y`
type ReturnStmt struct {
	Pos    lexer.Position
	Value  *Expr          `"*" [ @@ ]`
	EndPos lexer.Position
}

type ExprStmt struct {
	Pos    lexer.Position
	Expr   *Expr          `@@`
	EndPos lexer.Position
}

// Expression precedence, loosest first: equality, ordering, additive,
// multiplicative, unary, primary. Each level folds left-associatively.

type Expr struct {
	Pos      lexer.Position
	Equality *EqualityExpr  `@@`
	EndPos   lexer.Position
}

type EqualityExpr struct {
	Left *ComparisonExpr `@@`
	Ops  []*EqualityOp   `@@*`
}

type EqualityOp struct {
	Op    string          `@"@@"`
	Right *ComparisonExpr `@@`
}

type ComparisonExpr struct {
	Left *AdditiveExpr   `@@`
	Ops  []*ComparisonOp `@@*`
}

type ComparisonOp struct {
	Op    string        `@("=" | "#")`
	Right *AdditiveExpr `@@`
}

type AdditiveExpr struct {
	Left *MultiplicativeExpr `@@`
	Ops  []*AdditiveOp       `@@*`
}

type AdditiveOp struct {
	Op    string              `@("/" | "~")`
	Right *MultiplicativeExpr `@@`
}

type MultiplicativeExpr struct {
	Left *UnaryExpr          `@@`
	Ops  []*MultiplicativeOp `@@*`
}

type MultiplicativeOp struct {
	Op    string     `@("+" | "Bool")`
	Right *UnaryExpr `@@`
}

type UnaryExpr struct {
	Pos     lexer.Position
	Neg     *UnaryExpr     `  "~" @@`
	Primary *PrimaryExpr   `| @@`
	EndPos  lexer.Position
}

type PrimaryExpr struct {
	Pos    lexer.Position
	Float  *float64       `  @Float`
	Int    *int64         `| @Int`
	Str    *string        `| @String`
	Bool   *string        `| @("true" | "false")`
	Call   *CallExpr      `| @@`
	Ident  *string        `| @Ident`
	Parens *Expr          `| "{" @@ "]"`
	EndPos lexer.Position
}

// CallExpr. Example: `add{x, y]`
type CallExpr struct {
	Pos    lexer.Position
	Name   string         `@Ident`
	Args   []*Expr        `"{" [ @@ { "," @@ } ] "]"`
	EndPos lexer.Position
}
