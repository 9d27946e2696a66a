package semantic

import (
	"fmt"

	"confucio/internal/ast"
	"confucio/internal/errors"
	"confucio/internal/types"
)

func (a *Analyzer) analyzeStmt(stmt ast.Stmt) *errors.CompilerError {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return a.analyzeVarDecl(s)
	case *ast.AssignStmt:
		return a.analyzeAssign(s)
	case *ast.PrintStmt:
		return a.analyzePrint(s)
	case *ast.InputStmt:
		return a.analyzeInput(s)
	case *ast.IfStmt:
		return a.analyzeIf(s)
	case *ast.WhileStmt:
		return a.analyzeWhile(s)
	case *ast.ForStmt:
		return a.analyzeFor(s)
	case *ast.ReturnStmt:
		return a.analyzeReturn(s)
	case *ast.ExprStmt:
		_, err := a.analyzeExpr(s.Expr)
		return err
	default:
		panic(fmt.Sprintf("semantic: unknown statement node %T", stmt))
	}
}

func (a *Analyzer) analyzeVarDecl(decl *ast.VarDecl) *errors.CompilerError {
	// The initializer is checked before the name exists, so
	// "Float x @ x" is an undeclared-variable error, not a cycle.
	var initType types.Type
	if decl.Init != nil {
		var err *errors.CompilerError
		initType, err = a.analyzeExpr(decl.Init)
		if err != nil {
			return err
		}
		if initType != decl.Type {
			return errors.TypeMismatch(
				fmt.Sprintf("declaration of '%s'", decl.Name),
				decl.Type, initType, decl.Pos)
		}
	}

	if err := a.symbols.Declare(decl.Name, decl.Type, decl.Pos); err != nil {
		return err
	}
	a.info.Variables[decl.Name] = decl.Type

	if decl.Init != nil {
		a.symbols.MarkInitialized(decl.Name)
	}
	return nil
}

func (a *Analyzer) analyzeAssign(assign *ast.AssignStmt) *errors.CompilerError {
	sym := a.symbols.Lookup(assign.Name)
	if sym == nil {
		return errors.UndeclaredVariable(assign.Name, assign.Pos)
	}

	valueType, err := a.analyzeExpr(assign.Value)
	if err != nil {
		return err
	}
	if valueType != sym.Type {
		return errors.TypeMismatch(
			fmt.Sprintf("assignment to '%s'", assign.Name),
			sym.Type, valueType, assign.Pos)
	}

	// An assignment always counts as initialization.
	a.symbols.MarkInitialized(assign.Name)
	return nil
}

func (a *Analyzer) analyzePrint(print *ast.PrintStmt) *errors.CompilerError {
	for _, value := range print.Values {
		typ, err := a.analyzeExpr(value)
		if err != nil {
			return err
		}
		if !typ.IsValue() {
			return errors.TypeMismatch("print value", types.Text, typ, value.NodePos())
		}
	}
	return nil
}

func (a *Analyzer) analyzeInput(input *ast.InputStmt) *errors.CompilerError {
	sym := a.symbols.Lookup(input.Name)
	if sym == nil {
		return errors.UndeclaredVariable(input.Name, input.Pos)
	}
	if !sym.Type.IsInputTarget() {
		return errors.InvalidInputType(input.Name, sym.Type, input.Pos)
	}

	// Reading input initializes the target.
	a.symbols.MarkInitialized(input.Name)
	return nil
}

func (a *Analyzer) analyzeIf(stmt *ast.IfStmt) *errors.CompilerError {
	if err := a.analyzeCondition("if", stmt.Cond); err != nil {
		return err
	}
	for _, inner := range stmt.Then {
		if err := a.analyzeStmt(inner); err != nil {
			return err
		}
	}
	for _, inner := range stmt.Else {
		if err := a.analyzeStmt(inner); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeWhile(stmt *ast.WhileStmt) *errors.CompilerError {
	if err := a.analyzeCondition("while", stmt.Cond); err != nil {
		return err
	}
	for _, inner := range stmt.Body {
		if err := a.analyzeStmt(inner); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeFor(stmt *ast.ForStmt) *errors.CompilerError {
	// The init declaration lands in the same global table as everything
	// else; the loop does not open a scope.
	if stmt.Init != nil {
		if err := a.analyzeVarDecl(stmt.Init); err != nil {
			return err
		}
	}
	if stmt.Cond != nil {
		if err := a.analyzeCondition("for", stmt.Cond); err != nil {
			return err
		}
	}
	if stmt.Update != nil {
		if err := a.analyzeAssign(stmt.Update); err != nil {
			return err
		}
	}
	for _, inner := range stmt.Body {
		if err := a.analyzeStmt(inner); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeReturn(ret *ast.ReturnStmt) *errors.CompilerError {
	want := a.current.Return

	if ret.Value == nil {
		if want != types.Void {
			return errors.TypeMismatch(
				fmt.Sprintf("return from '%s'", a.current.Name),
				want, types.Void, ret.Pos)
		}
		return nil
	}

	got, err := a.analyzeExpr(ret.Value)
	if err != nil {
		return err
	}
	if got != want {
		return errors.TypeMismatch(
			fmt.Sprintf("return from '%s'", a.current.Name),
			want, got, ret.Pos)
	}
	return nil
}

func (a *Analyzer) analyzeCondition(construct string, cond ast.Expr) *errors.CompilerError {
	typ, err := a.analyzeExpr(cond)
	if err != nil {
		return err
	}
	if typ != types.Boolean {
		return errors.ConditionNotBoolean(construct, typ, cond.NodePos())
	}
	return nil
}
