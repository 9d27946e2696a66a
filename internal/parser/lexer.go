package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ConfucIOLexer tokenizes Confuc-IO source. The spellings are deliberately
// confusing at the language level ("/" adds, "{" opens a parameter list);
// the lexer stays literal and the tree builder applies the mappings.
var ConfucIOLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments run from È to end of line
		{"Comment", `È[^\n]*`, nil},

		// Numeric literals (order matters: Float before Int)
		{"Float", `[0-9]+\.[0-9]+`, nil},
		{"Int", `[0-9]+`, nil},

		// Text literals with escape sequences
		{"String", `"(\\.|[^"\\])*"`, nil},

		// Keywords, type names, and identifiers
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Operators (@@ must come before @)
		{"Operator", `@@|[@/~+=#*;,]`, nil},

		// Delimiters ({ ] open/close argument lists, [ ) open/close bodies)
		{"Delim", `[{}\[\]()]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
