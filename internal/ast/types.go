package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	// High-level constructs
	PROGRAM
	FUNCTION_DEF
	PARAMETER

	// Statements
	VAR_DECL
	ASSIGN_STMT
	PRINT_STMT
	INPUT_STMT
	IF_STMT
	WHILE_STMT
	FOR_STMT
	RETURN_STMT
	EXPR_STMT

	// Expressions
	LITERAL_EXPR
	VAR_REF_EXPR
	BINARY_EXPR
	UNARY_EXPR
	CALL_EXPR
)

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}
