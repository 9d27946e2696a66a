package semantic

import (
	"confucio/internal/ast"
	"confucio/internal/errors"
	"confucio/internal/types"
)

// Analyzer walks the program tree and decides whether it is well-typed
// and well-scoped. Analysis is eager and fail-fast: the first error
// aborts the walk and becomes the compilation's single diagnostic.
type Analyzer struct {
	symbols *SymbolTable
	info    *Info
	current *ast.FunctionDef
}

// Analyze validates a program tree. On success it returns the typing
// Info the code generator lowers against; on failure, the first error.
func Analyze(program *ast.Program) (*Info, *errors.CompilerError) {
	a := &Analyzer{
		symbols: NewSymbolTable(),
		info:    newInfo(),
	}
	if err := a.analyzeProgram(program); err != nil {
		return nil, err
	}
	return a.info, nil
}

func (a *Analyzer) analyzeProgram(program *ast.Program) *errors.CompilerError {
	// First pass: register every function so bodies can call forward.
	var entry *ast.FunctionDef
	for _, fn := range program.Functions {
		if err := a.symbols.DeclareFunction(fn); err != nil {
			return err
		}
		sig := &types.Signature{Return: fn.Return}
		for _, param := range fn.Params {
			sig.Params = append(sig.Params, param.Type)
		}
		a.info.Functions[fn.Name] = sig

		if fn.Name == types.EntryFunctionName {
			entry = fn
		}
	}

	if entry == nil {
		return errors.MissingEntryPoint(types.EntryFunctionName)
	}
	if len(entry.Params) > 0 {
		return errors.InvalidEntryPointSignature(types.EntryFunctionName,
			"must not take parameters", entry.Pos)
	}
	if entry.Return != types.Integer {
		return errors.InvalidEntryPointSignature(types.EntryFunctionName,
			"must return Float", entry.Pos)
	}

	// Second pass: check every body in program order. Declarations land
	// in the one global table as they are visited, which is exactly how
	// declare-before-use falls out.
	for _, fn := range program.Functions {
		if err := a.analyzeFunction(fn); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeFunction(fn *ast.FunctionDef) *errors.CompilerError {
	a.current = fn

	if err := a.symbols.EnterFunctionScope(fn.Params); err != nil {
		return err
	}
	defer a.symbols.ExitFunctionScope(fn.Params)

	for _, param := range fn.Params {
		a.info.Variables[param.Name] = param.Type
	}

	for _, stmt := range fn.Body {
		if err := a.analyzeStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}
