package semantic

import (
	"confucio/internal/ast"
	"confucio/internal/errors"
	"confucio/internal/types"
)

// Symbol is one entry in the variable table.
type Symbol struct {
	Name        string
	Type        types.Type
	Initialized bool
	IsParam     bool
	Pos         ast.Position
}

// SymbolTable models Confuc-IO's single global scope: one flat variable
// map for the whole program, plus the function map. The only scoping
// exception is function parameters, which are inserted when analysis
// enters a function body and removed when it leaves.
type SymbolTable struct {
	vars      map[string]*Symbol
	functions map[string]*ast.FunctionDef
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		vars:      make(map[string]*Symbol),
		functions: make(map[string]*ast.FunctionDef),
	}
}

// Declare adds a variable. It fails if the name exists anywhere in the
// global map: there is no shadowing, regardless of which function body
// the second declaration appears in.
func (st *SymbolTable) Declare(name string, typ types.Type, pos ast.Position) *errors.CompilerError {
	if _, exists := st.vars[name]; exists {
		return errors.DuplicateDeclaration(name, pos)
	}
	st.vars[name] = &Symbol{Name: name, Type: typ, Pos: pos}
	return nil
}

// Lookup returns the symbol for name, or nil when undeclared.
func (st *SymbolTable) Lookup(name string) *Symbol {
	return st.vars[name]
}

// MarkInitialized records that name has been assigned a value.
func (st *SymbolTable) MarkInitialized(name string) {
	if sym, exists := st.vars[name]; exists {
		sym.Initialized = true
	}
}

// IsInitialized reports whether name has been assigned a value.
func (st *SymbolTable) IsInitialized(name string) bool {
	sym, exists := st.vars[name]
	return exists && sym.Initialized
}

// EnterFunctionScope inserts parameter bindings, already initialized.
// Parameters share the global namespace, so a parameter colliding with
// any declared variable is a duplicate declaration.
func (st *SymbolTable) EnterFunctionScope(params []*ast.Parameter) *errors.CompilerError {
	for _, param := range params {
		if _, exists := st.vars[param.Name]; exists {
			return errors.DuplicateDeclaration(param.Name, param.Pos)
		}
		st.vars[param.Name] = &Symbol{
			Name:        param.Name,
			Type:        param.Type,
			Initialized: true,
			IsParam:     true,
			Pos:         param.Pos,
		}
	}
	return nil
}

// ExitFunctionScope removes parameter bindings without touching the
// persistent global declarations.
func (st *SymbolTable) ExitFunctionScope(params []*ast.Parameter) {
	for _, param := range params {
		if sym, exists := st.vars[param.Name]; exists && sym.IsParam {
			delete(st.vars, param.Name)
		}
	}
}

// DeclareFunction registers a function definition by name.
func (st *SymbolTable) DeclareFunction(fn *ast.FunctionDef) *errors.CompilerError {
	if _, exists := st.functions[fn.Name]; exists {
		return errors.DuplicateDeclaration(fn.Name, fn.Pos)
	}
	st.functions[fn.Name] = fn
	return nil
}

// Function returns the definition for name, or nil when undefined.
func (st *SymbolTable) Function(name string) *ast.FunctionDef {
	return st.functions[name]
}
