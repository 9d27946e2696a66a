package parser

import (
	"github.com/alecthomas/participle/v2"

	"confucio/internal/ast"
	"confucio/internal/errors"
)

var confucioParser = participle.MustBuild[Program](
	participle.Lexer(ConfucIOLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(3),
)

// ParseSource parses Confuc-IO source text into the core program tree.
// All surface spellings (types, operators, keywords) are mapped to their
// conventional tags before the tree is returned, so the rest of the
// pipeline never sees them.
func ParseSource(filename, source string) (*ast.Program, *errors.CompilerError) {
	parsed, err := confucioParser.ParseString(filename, source)
	if err != nil {
		return nil, convertParseError(filename, err)
	}
	return buildProgram(parsed), nil
}

func convertParseError(filename string, err error) *errors.CompilerError {
	if pe, ok := err.(participle.Error); ok {
		pos := pe.Position()
		return errors.SyntaxError(pe.Message(), ast.Position{
			Filename: filename,
			Offset:   pos.Offset,
			Line:     pos.Line,
			Column:   pos.Column,
		})
	}
	return errors.SyntaxError(err.Error(), ast.Position{Filename: filename, Line: 1, Column: 1})
}
