package errors

import (
	"fmt"

	"confucio/internal/ast"
	"confucio/internal/types"
)

// Constructors for the semantic error vocabulary. Analysis is fail-fast,
// so each of these produces the single error a compilation run reports.

func newError(code, message string, pos ast.Position, length int) *CompilerError {
	return &CompilerError{
		Level:    Error,
		Code:     code,
		Message:  message,
		Position: pos,
		Length:   length,
	}
}

// DuplicateDeclaration reports a second declaration of a name anywhere in
// the program's single global scope.
func DuplicateDeclaration(name string, pos ast.Position) *CompilerError {
	err := newError(ErrorDuplicateDeclaration,
		fmt.Sprintf("'%s' is already declared", name), pos, len(name))
	err.Notes = append(err.Notes,
		"Confuc-IO has a single global scope; shadowing is not allowed")
	return err
}

// UndeclaredVariable reports a use of a name with no prior declaration.
func UndeclaredVariable(name string, pos ast.Position) *CompilerError {
	return newError(ErrorUndeclaredVariable,
		fmt.Sprintf("variable '%s' used before declaration", name), pos, len(name))
}

// UseBeforeInit reports a read of a declared but never-assigned variable.
func UseBeforeInit(name string, pos ast.Position) *CompilerError {
	err := newError(ErrorUseBeforeInit,
		fmt.Sprintf("variable '%s' used before initialization", name), pos, len(name))
	err.HelpText = fmt.Sprintf("assign a value to '%s' before reading it", name)
	return err
}

// TypeMismatch reports any combination of types the language never
// converts between. The context string names the construct at fault.
func TypeMismatch(context string, expected, actual types.Type, pos ast.Position) *CompilerError {
	return newError(ErrorTypeMismatch,
		fmt.Sprintf("type mismatch in %s: expected %s, got %s", context, expected, actual), pos, 1)
}

// BinaryOperandMismatch reports incompatible operand types on a binary
// operator.
func BinaryOperandMismatch(op types.BinaryOp, left, right types.Type, pos ast.Position) *CompilerError {
	return newError(ErrorTypeMismatch,
		fmt.Sprintf("operator '%s' cannot combine %s and %s", op, left, right), pos, 1)
}

// UnaryOperandMismatch reports a non-numeric operand on a unary operator.
func UnaryOperandMismatch(op types.UnaryOp, operand types.Type, pos ast.Position) *CompilerError {
	return newError(ErrorTypeMismatch,
		fmt.Sprintf("operator '%s' requires a numeric operand, got %s", op, operand), pos, 1)
}

// ConditionNotBoolean reports a branch or loop condition of the wrong type.
func ConditionNotBoolean(construct string, actual types.Type, pos ast.Position) *CompilerError {
	err := newError(ErrorConditionNotBoolean,
		fmt.Sprintf("%s condition must be Boolean, got %s", construct, actual), pos, 1)
	err.Notes = append(err.Notes,
		"Booleans are produced only by the comparison operators")
	return err
}

// ArityMismatch reports a call with the wrong number of arguments.
func ArityMismatch(fn string, want, got int, pos ast.Position) *CompilerError {
	return newError(ErrorArityMismatch,
		fmt.Sprintf("function '%s' expects %d arguments, got %d", fn, want, got), pos, len(fn))
}

// InvalidInputType reports an input statement targeting a Boolean.
func InvalidInputType(name string, actual types.Type, pos ast.Position) *CompilerError {
	return newError(ErrorInvalidInputType,
		fmt.Sprintf("cannot read console input into '%s' of type %s", name, actual), pos, len(name))
}

// MissingEntryPoint reports a program with no entry function.
func MissingEntryPoint(entryName string) *CompilerError {
	return newError(ErrorMissingEntryPoint,
		fmt.Sprintf("program must have a function named '%s'", entryName), ast.Position{}, 1)
}

// InvalidEntryPointSignature reports an entry function with the wrong shape.
func InvalidEntryPointSignature(entryName, reason string, pos ast.Position) *CompilerError {
	return newError(ErrorInvalidEntryPointSignature,
		fmt.Sprintf("entry function '%s' %s", entryName, reason), pos, len(entryName))
}

// UndefinedFunction reports a call to a function that does not exist.
func UndefinedFunction(name string, pos ast.Position) *CompilerError {
	return newError(ErrorUndefinedFunction,
		fmt.Sprintf("function '%s' is not defined", name), pos, len(name))
}

// SyntaxError wraps a parse failure into the common error shape.
func SyntaxError(message string, pos ast.Position) *CompilerError {
	return newError(ErrorSyntax, message, pos, 1)
}
