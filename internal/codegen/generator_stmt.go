package codegen

import (
	"fmt"

	"confucio/internal/ast"
	"confucio/internal/ir"
	"confucio/internal/types"
)

func (g *Generator) lowerStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		g.lowerVarDecl(s)
	case *ast.AssignStmt:
		g.lowerAssign(s)
	case *ast.PrintStmt:
		g.lowerPrint(s)
	case *ast.InputStmt:
		g.lowerInput(s)
	case *ast.IfStmt:
		g.lowerIf(s)
	case *ast.WhileStmt:
		g.lowerWhile(s)
	case *ast.ForStmt:
		g.lowerFor(s)
	case *ast.ReturnStmt:
		g.lowerReturn(s)
	case *ast.ExprStmt:
		g.lowerExpr(s.Expr)
	default:
		panic(fmt.Sprintf("codegen: unknown statement node %T", stmt))
	}
}

func (g *Generator) lowerVarDecl(decl *ast.VarDecl) {
	slot := g.builder.EmitAlloca(decl.Name, decl.Type)
	g.slots[decl.Name] = slot
	if decl.Init != nil {
		g.builder.EmitStore(slot, g.lowerExpr(decl.Init))
	}
}

func (g *Generator) lowerAssign(assign *ast.AssignStmt) {
	g.builder.EmitStore(g.slot(assign.Name), g.lowerExpr(assign.Value))
}

// lowerPrint writes each value with the format its inferred type selects,
// then one trailing newline for the whole statement.
func (g *Generator) lowerPrint(print *ast.PrintStmt) {
	for _, value := range print.Values {
		format := ir.OutputFormat(g.info.TypeOf(value))
		tag := g.builder.EmitConstant(format, types.Text)
		g.builder.EmitCall(ir.RuntimeWriteFormatted, []*ir.Value{tag, g.lowerExpr(value)}, types.Void)
	}
	tag := g.builder.EmitConstant(ir.FormatText, types.Text)
	newline := g.builder.EmitConstant("\n", types.Text)
	g.builder.EmitCall(ir.RuntimeWriteFormatted, []*ir.Value{tag, newline}, types.Void)
}

// lowerInput reads into the target's slot. Text targets get a fresh
// fixed-size buffer first; the runtime fills the buffer and the buffer
// pointer becomes the variable's value.
//
// The slot carries the declared type. Resolving through the analyzer's
// variable table would be wrong here: parameter names recur across
// functions and the table keeps only the last declaration.
func (g *Generator) lowerInput(input *ast.InputStmt) {
	slot := g.slot(input.Name)
	target := slot.Type
	format := g.builder.EmitConstant(ir.InputFormat(target), types.Text)

	if target == types.Text {
		size := g.builder.EmitConstant(int64(ir.TextInputBufferSize), types.Integer)
		buffer := g.builder.EmitCall(ir.RuntimeAllocBytes, []*ir.Value{size}, types.Text)
		g.builder.EmitCall(ir.RuntimeReadFormatted, []*ir.Value{format, buffer}, types.Void)
		g.builder.EmitStore(slot, buffer)
		return
	}

	g.builder.EmitCall(ir.RuntimeReadFormatted, []*ir.Value{format, slot}, types.Void)
}

// lowerIf emits the two-or-three block diamond: then and merge always,
// an else block only when the source has an else branch.
func (g *Generator) lowerIf(stmt *ast.IfStmt) {
	cond := g.lowerExpr(stmt.Cond)

	thenBlock := g.builder.NewBlock("then")
	var elseBlock *ir.BasicBlock
	if stmt.Else != nil {
		elseBlock = g.builder.NewBlock("else")
	}
	mergeBlock := g.builder.NewBlock("merge")

	if elseBlock != nil {
		g.builder.EmitCondBranch(cond, thenBlock, elseBlock)
	} else {
		g.builder.EmitCondBranch(cond, thenBlock, mergeBlock)
	}

	g.builder.PositionAt(thenBlock)
	g.lowerBody(stmt.Then)
	if !g.builder.Terminated() {
		g.builder.EmitJump(mergeBlock)
	}

	if elseBlock != nil {
		g.builder.PositionAt(elseBlock)
		g.lowerBody(stmt.Else)
		if !g.builder.Terminated() {
			g.builder.EmitJump(mergeBlock)
		}
	}

	g.builder.PositionAt(mergeBlock)
}

func (g *Generator) lowerWhile(stmt *ast.WhileStmt) {
	g.lowerLoop(stmt.Cond, stmt.Body, nil)
}

// lowerFor reuses the while shape: the init declaration runs before the
// loop, and the update lands at the end of the body before the
// back-branch.
func (g *Generator) lowerFor(stmt *ast.ForStmt) {
	if stmt.Init != nil {
		g.lowerVarDecl(stmt.Init)
	}
	g.lowerLoop(stmt.Cond, stmt.Body, stmt.Update)
}

func (g *Generator) lowerLoop(cond ast.Expr, body []ast.Stmt, update *ast.AssignStmt) {
	condBlock := g.builder.NewBlock("cond")
	bodyBlock := g.builder.NewBlock("body")
	endBlock := g.builder.NewBlock("end")

	g.builder.EmitJump(condBlock)

	g.builder.PositionAt(condBlock)
	var condValue *ir.Value
	if cond != nil {
		condValue = g.lowerExpr(cond)
	} else {
		// A headless loop runs until a return breaks out.
		condValue = g.builder.EmitConstant(true, types.Boolean)
	}
	g.builder.EmitCondBranch(condValue, bodyBlock, endBlock)

	g.builder.PositionAt(bodyBlock)
	g.lowerBody(body)
	if !g.builder.Terminated() {
		if update != nil {
			g.lowerAssign(update)
		}
		g.builder.EmitJump(condBlock)
	}

	g.builder.PositionAt(endBlock)
}

func (g *Generator) lowerReturn(ret *ast.ReturnStmt) {
	if ret.Value == nil {
		g.builder.EmitReturn(nil)
		return
	}
	g.builder.EmitReturn(g.lowerExpr(ret.Value))
}

func (g *Generator) lowerBody(body []ast.Stmt) {
	for _, stmt := range body {
		if g.builder.Terminated() {
			// Statements after a return are unreachable; emitting them
			// would violate the builder contract.
			return
		}
		g.lowerStmt(stmt)
	}
}
