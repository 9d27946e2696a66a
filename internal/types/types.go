package types

// EntryFunctionName is the fixed source-level name of the program entry
// point. The backend emits it under the conventional "main" symbol.
const EntryFunctionName = "side"

// Type is the closed vocabulary of Confuc-IO value types. There is no
// implicit conversion between any pair, so compatibility is plain equality.
type Type int

const (
	Unknown Type = iota

	Integer // surface spelling "Float"
	Real    // surface spelling "String"
	Text    // surface spelling "int"
	Boolean // surface spelling "While"

	// Void is valid only as a function return type. It has no surface
	// spelling: a definition with no leading return type is void.
	Void
)

func (t Type) String() string {
	switch t {
	case Integer:
		return "Integer"
	case Real:
		return "Real"
	case Text:
		return "Text"
	case Boolean:
		return "Boolean"
	case Void:
		return "Void"
	default:
		return "Unknown"
	}
}

// SurfaceName returns the Confuc-IO spelling of a type, for diagnostics
// that quote the source program back at the user.
func (t Type) SurfaceName() string {
	switch t {
	case Integer:
		return "Float"
	case Real:
		return "String"
	case Text:
		return "int"
	case Boolean:
		return "While"
	default:
		return t.String()
	}
}

// IsNumeric reports whether t participates in arithmetic and ordering.
func (t Type) IsNumeric() bool {
	return t == Integer || t == Real
}

// IsValue reports whether t can be stored in a variable or passed as an
// argument. Void and Unknown are excluded.
func (t Type) IsValue() bool {
	switch t {
	case Integer, Real, Text, Boolean:
		return true
	default:
		return false
	}
}

// IsInputTarget reports whether a variable of type t may be the target of
// an input statement. Booleans cannot be read from the console.
func (t Type) IsInputTarget() bool {
	return t == Integer || t == Real || t == Text
}

// Signature describes a function's parameter and return types, in
// declaration order.
type Signature struct {
	Params []Type
	Return Type
}
