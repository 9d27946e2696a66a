package parser

import (
	"github.com/alecthomas/participle/v2/lexer"

	"confucio/internal/ast"
	"confucio/internal/types"
)

// The tree builder converts the participle parse tree into the core
// program tree, applying the Confuc-IO surface mappings on the way. Past
// this point "Float" is Integer, "/" is addition, and so on.

var surfaceTypes = map[string]types.Type{
	"Float":  types.Integer,
	"String": types.Real,
	"int":    types.Text,
	"While":  types.Boolean,
}

var surfaceBinaryOps = map[string]types.BinaryOp{
	"/":    types.Add,
	"~":    types.Sub,
	"Bool": types.Mul,
	"+":    types.Div,
	"=":    types.Greater,
	"#":    types.Less,
	"@@":   types.Equal,
}

func position(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func buildProgram(parsed *Program) *ast.Program {
	program := &ast.Program{
		Pos:    position(parsed.Pos),
		EndPos: position(parsed.EndPos),
	}
	for _, fn := range parsed.Functions {
		program.Functions = append(program.Functions, buildFunction(fn))
	}
	return program
}

func buildFunction(fn *FunctionDef) *ast.FunctionDef {
	ret := types.Void
	if fn.Return != nil {
		ret = surfaceTypes[*fn.Return]
	}

	def := &ast.FunctionDef{
		Pos:    position(fn.Pos),
		EndPos: position(fn.EndPos),
		Name:   fn.Name,
		Return: ret,
	}
	for _, p := range fn.Params {
		def.Params = append(def.Params, &ast.Parameter{
			Pos:    position(p.Pos),
			EndPos: position(p.EndPos),
			Name:   p.Name,
			Type:   surfaceTypes[p.Type],
		})
	}
	def.Body = buildStatements(fn.Body)
	return def
}

func buildStatements(stmts []*Statement) []ast.Stmt {
	built := make([]ast.Stmt, 0, len(stmts))
	for _, stmt := range stmts {
		built = append(built, buildStatement(stmt))
	}
	return built
}

func buildStatement(stmt *Statement) ast.Stmt {
	switch {
	case stmt.If != nil:
		return buildIf(stmt.If)
	case stmt.While != nil:
		return buildWhile(stmt.While)
	case stmt.For != nil:
		return buildFor(stmt.For)
	case stmt.Print != nil:
		return buildPrint(stmt.Print)
	case stmt.Input != nil:
		return &ast.InputStmt{
			Pos:    position(stmt.Input.Pos),
			EndPos: position(stmt.Input.EndPos),
			Name:   stmt.Input.Name,
		}
	case stmt.Return != nil:
		return buildReturn(stmt.Return)
	case stmt.VarDecl != nil:
		return buildVarDecl(stmt.VarDecl)
	case stmt.Assign != nil:
		return buildAssign(stmt.Assign)
	default:
		return &ast.ExprStmt{
			Pos:    position(stmt.Expr.Pos),
			EndPos: position(stmt.Expr.EndPos),
			Expr:   buildExpr(stmt.Expr.Expr),
		}
	}
}

func buildVarDecl(decl *VarDeclStmt) *ast.VarDecl {
	built := &ast.VarDecl{
		Pos:    position(decl.Pos),
		EndPos: position(decl.EndPos),
		Name:   decl.Name,
		Type:   surfaceTypes[decl.Type],
	}
	if decl.Init != nil {
		built.Init = buildExpr(decl.Init)
	}
	return built
}

func buildAssign(assign *AssignStmt) *ast.AssignStmt {
	return &ast.AssignStmt{
		Pos:    position(assign.Pos),
		EndPos: position(assign.EndPos),
		Name:   assign.Name,
		Value:  buildExpr(assign.Value),
	}
}

func buildIf(stmt *IfStmt) *ast.IfStmt {
	built := &ast.IfStmt{
		Pos:    position(stmt.Pos),
		EndPos: position(stmt.EndPos),
		Cond:   buildExpr(stmt.Cond),
		Then:   buildStatements(stmt.Then),
	}
	if stmt.Else != nil {
		built.Else = buildStatements(stmt.Else.Body)
	}
	return built
}

func buildWhile(stmt *WhileStmt) *ast.WhileStmt {
	return &ast.WhileStmt{
		Pos:    position(stmt.Pos),
		EndPos: position(stmt.EndPos),
		Cond:   buildExpr(stmt.Cond),
		Body:   buildStatements(stmt.Body),
	}
}

func buildFor(stmt *ForStmt) *ast.ForStmt {
	built := &ast.ForStmt{
		Pos:    position(stmt.Pos),
		EndPos: position(stmt.EndPos),
		Body:   buildStatements(stmt.Body),
	}
	if stmt.Init != nil {
		built.Init = buildVarDecl(stmt.Init)
	}
	if stmt.Cond != nil {
		built.Cond = buildExpr(stmt.Cond)
	}
	if stmt.Update != nil {
		built.Update = buildAssign(stmt.Update)
	}
	return built
}

func buildPrint(stmt *PrintStmt) *ast.PrintStmt {
	built := &ast.PrintStmt{Pos: position(stmt.Pos), EndPos: position(stmt.EndPos)}
	for _, value := range stmt.Values {
		built.Values = append(built.Values, buildExpr(value))
	}
	return built
}

func buildReturn(stmt *ReturnStmt) *ast.ReturnStmt {
	built := &ast.ReturnStmt{Pos: position(stmt.Pos), EndPos: position(stmt.EndPos)}
	if stmt.Value != nil {
		built.Value = buildExpr(stmt.Value)
	}
	return built
}

func buildExpr(expr *Expr) ast.Expr {
	return buildEquality(expr.Equality)
}

// foldBinary builds a left-associative chain out of one precedence level.
func foldBinary(left ast.Expr, op string, right ast.Expr) ast.Expr {
	return &ast.BinaryExpr{
		Pos:    left.NodePos(),
		EndPos: right.NodeEndPos(),
		Op:     surfaceBinaryOps[op],
		Left:   left,
		Right:  right,
	}
}

func buildEquality(expr *EqualityExpr) ast.Expr {
	result := buildComparison(expr.Left)
	for _, op := range expr.Ops {
		result = foldBinary(result, op.Op, buildComparison(op.Right))
	}
	return result
}

func buildComparison(expr *ComparisonExpr) ast.Expr {
	result := buildAdditive(expr.Left)
	for _, op := range expr.Ops {
		result = foldBinary(result, op.Op, buildAdditive(op.Right))
	}
	return result
}

func buildAdditive(expr *AdditiveExpr) ast.Expr {
	result := buildMultiplicative(expr.Left)
	for _, op := range expr.Ops {
		result = foldBinary(result, op.Op, buildMultiplicative(op.Right))
	}
	return result
}

func buildMultiplicative(expr *MultiplicativeExpr) ast.Expr {
	result := buildUnary(expr.Left)
	for _, op := range expr.Ops {
		result = foldBinary(result, op.Op, buildUnary(op.Right))
	}
	return result
}

func buildUnary(expr *UnaryExpr) ast.Expr {
	if expr.Neg != nil {
		return &ast.UnaryExpr{
			Pos:     position(expr.Pos),
			EndPos:  position(expr.EndPos),
			Op:      types.Neg,
			Operand: buildUnary(expr.Neg),
		}
	}
	return buildPrimary(expr.Primary)
}

func buildPrimary(expr *PrimaryExpr) ast.Expr {
	pos := position(expr.Pos)
	end := position(expr.EndPos)
	switch {
	case expr.Float != nil:
		return &ast.LiteralExpr{Pos: pos, EndPos: end, Type: types.Real, Real: *expr.Float}
	case expr.Int != nil:
		return &ast.LiteralExpr{Pos: pos, EndPos: end, Type: types.Integer, Int: *expr.Int}
	case expr.Str != nil:
		return &ast.LiteralExpr{Pos: pos, EndPos: end, Type: types.Text, Text: *expr.Str}
	case expr.Bool != nil:
		return &ast.LiteralExpr{Pos: pos, EndPos: end, Type: types.Boolean, Bool: *expr.Bool == "true"}
	case expr.Call != nil:
		call := &ast.CallExpr{
			Pos:    position(expr.Call.Pos),
			EndPos: position(expr.Call.EndPos),
			Name:   expr.Call.Name,
		}
		for _, arg := range expr.Call.Args {
			call.Args = append(call.Args, buildExpr(arg))
		}
		return call
	case expr.Ident != nil:
		return &ast.VarRefExpr{Pos: pos, EndPos: end, Name: *expr.Ident}
	default:
		return buildExpr(expr.Parens)
	}
}
