package ir

import (
	"confucio/internal/types"
)

// The runtime ABI: the fixed set of native symbols lowered code may
// call. Changing any signature here is a breaking change to the backend
// contract.
const (
	RuntimeWriteFormatted = "write_formatted"
	RuntimeReadFormatted  = "read_formatted"
	RuntimeTextLength     = "text_length"
	RuntimeTextCopy       = "text_copy"
	RuntimeTextConcat     = "text_concat"
	RuntimeTextCompare    = "text_compare"
	RuntimeAllocBytes     = "alloc_bytes"
)

// Format tags passed as the first argument of write_formatted and
// read_formatted. Output and input tags differ for Real and Text, which
// is the runtime's quirk, not ours.
const (
	FormatInteger   = "%d"
	FormatReal      = "%f"
	FormatText      = "%s"
	FormatNewline   = "\n"
	FormatRealInput = "%lf"
	FormatTextInput = "%255s"
)

// TextInputBufferSize is the fixed allocation for reading Text input.
const TextInputBufferSize = 256

// RuntimeSignature describes one ABI symbol. Slots marks parameters that
// take a slot address rather than a loaded value.
type RuntimeSignature struct {
	Params []types.Type
	Slots  []bool
	Return types.Type
}

// RuntimeABI maps each runtime symbol to its fixed signature.
var RuntimeABI = map[string]RuntimeSignature{
	RuntimeWriteFormatted: {
		Params: []types.Type{types.Text, types.Unknown},
		Return: types.Void,
	},
	RuntimeReadFormatted: {
		Params: []types.Type{types.Text, types.Unknown},
		Slots:  []bool{false, true},
		Return: types.Void,
	},
	RuntimeTextLength: {
		Params: []types.Type{types.Text},
		Return: types.Integer,
	},
	RuntimeTextCopy: {
		Params: []types.Type{types.Text, types.Text},
		Return: types.Text,
	},
	RuntimeTextConcat: {
		Params: []types.Type{types.Text, types.Text},
		Return: types.Text,
	},
	RuntimeTextCompare: {
		Params: []types.Type{types.Text, types.Text},
		Return: types.Integer,
	},
	RuntimeAllocBytes: {
		Params: []types.Type{types.Integer},
		Return: types.Text,
	},
}

// IsRuntimeSymbol reports whether name is part of the runtime ABI.
func IsRuntimeSymbol(name string) bool {
	_, ok := RuntimeABI[name]
	return ok
}

// OutputFormat returns the write_formatted tag for a value type.
func OutputFormat(typ types.Type) string {
	switch typ {
	case types.Integer, types.Boolean:
		return FormatInteger
	case types.Real:
		return FormatReal
	case types.Text:
		return FormatText
	default:
		panic("ir: no output format for type " + typ.String())
	}
}

// InputFormat returns the read_formatted tag for a target type.
func InputFormat(typ types.Type) string {
	switch typ {
	case types.Integer:
		return FormatInteger
	case types.Real:
		return FormatRealInput
	case types.Text:
		return FormatTextInput
	default:
		panic("ir: no input format for type " + typ.String())
	}
}
