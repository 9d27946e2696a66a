package errors

// Error codes for the Confuc-IO compiler
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: Semantic analysis errors
// E0100-E0199: Parser errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0001: A name declared twice. The language has a single global scope
	// with no shadowing, so the second declaration is rejected regardless
	// of where it occurs.
	ErrorDuplicateDeclaration = "E0001"

	// E0002: A name used before any declaration
	ErrorUndeclaredVariable = "E0002"

	// E0003: A variable read before it was ever assigned
	ErrorUseBeforeInit = "E0003"

	// E0004: Operand, initializer, argument, or return type incompatibility
	ErrorTypeMismatch = "E0004"

	// E0005: An if/while/for condition that is not Boolean
	ErrorConditionNotBoolean = "E0005"

	// E0006: A call with the wrong number of arguments
	ErrorArityMismatch = "E0006"

	// E0007: An input statement targeting a Boolean variable
	ErrorInvalidInputType = "E0007"

	// E0008: No zero-parameter "side" function in the program
	ErrorMissingEntryPoint = "E0008"

	// E0009: A "side" function with parameters or a non-Integer return type
	ErrorInvalidEntryPointSignature = "E0009"

	// E0010: A call to a function that does not exist
	ErrorUndefinedFunction = "E0010"

	// Parser errors (reserved range: E0100-E0199)

	// E0100: Generic syntax error from the grammar
	ErrorSyntax = "E0100"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorDuplicateDeclaration:
		return "a name was declared more than once; Confuc-IO has a single global scope with no shadowing"
	case ErrorUndeclaredVariable:
		return "a variable was used before being declared"
	case ErrorUseBeforeInit:
		return "a variable was read before it was assigned a value"
	case ErrorTypeMismatch:
		return "two types were combined that are never implicitly convertible"
	case ErrorConditionNotBoolean:
		return "a branch or loop condition did not produce a Boolean"
	case ErrorArityMismatch:
		return "a function was called with the wrong number of arguments"
	case ErrorInvalidInputType:
		return "console input cannot target a Boolean variable"
	case ErrorMissingEntryPoint:
		return "every program needs a zero-parameter function named 'side'"
	case ErrorInvalidEntryPointSignature:
		return "'side' must take no parameters and return Float"
	case ErrorUndefinedFunction:
		return "a function was called that is not defined anywhere in the program"
	case ErrorSyntax:
		return "the source text does not match the Confuc-IO grammar"
	default:
		return "unknown error"
	}
}
