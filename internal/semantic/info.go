package semantic

import (
	"fmt"

	"confucio/internal/ast"
	"confucio/internal/types"
)

// Info is the product of a successful analysis: every typing decision the
// code generator needs, computed once here and trusted there. The code
// generator never re-derives a rule; it only looks types up.
type Info struct {
	// ExprTypes records the inferred type of every expression node.
	ExprTypes map[ast.Expr]types.Type

	// Variables maps every declared variable name to its type. Global
	// names are unique program-wide; parameter names are not, and a
	// recurring parameter keeps only its last declaration here. Callers
	// that care about a specific function's parameter must resolve it
	// another way.
	Variables map[string]types.Type

	// Functions maps every function name to its signature.
	Functions map[string]*types.Signature
}

func newInfo() *Info {
	return &Info{
		ExprTypes: make(map[ast.Expr]types.Type),
		Variables: make(map[string]types.Type),
		Functions: make(map[string]*types.Signature),
	}
}

// TypeOf returns the recorded type of expr. Asking for a node that was
// never analyzed means the validated-tree contract is broken, which is a
// compiler bug, not user input.
func (info *Info) TypeOf(expr ast.Expr) types.Type {
	typ, ok := info.ExprTypes[expr]
	if !ok {
		panic(fmt.Sprintf("semantic: no type recorded for %T node", expr))
	}
	return typ
}

// VarType returns the declared type of a global variable.
func (info *Info) VarType(name string) types.Type {
	typ, ok := info.Variables[name]
	if !ok {
		panic(fmt.Sprintf("semantic: no type recorded for variable %q", name))
	}
	return typ
}
