package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"confucio/internal/errors"
)

// ConvertError turns a compiler error into an LSP diagnostic. Positions
// move from the compiler's 1-based lines and columns to the protocol's
// 0-based ones; the error's marker length becomes the range span.
func ConvertError(err *errors.CompilerError) protocol.Diagnostic {
	line := uint32(0)
	if err.Position.Line > 0 {
		line = uint32(err.Position.Line - 1)
	}
	column := uint32(0)
	if err.Position.Column > 0 {
		column = uint32(err.Position.Column - 1)
	}
	length := uint32(1)
	if err.Length > 0 {
		length = uint32(err.Length)
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: column},
			End:   protocol.Position{Line: line, Character: column + length},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: err.Code},
		Source:   ptrString("confucio"),
		Message:  err.Message,
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
