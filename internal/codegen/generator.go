package codegen

import (
	"fmt"

	"confucio/internal/ast"
	"confucio/internal/ir"
	"confucio/internal/semantic"
	"confucio/internal/types"
)

// entrySymbol is the name the backend recognizes as the program entry.
// The source-level entry function is emitted under it.
const entrySymbol = "main"

// Generator lowers a validated program tree into an IR module. It trusts
// the typing recorded in semantic.Info completely: any inconsistency it
// trips over is a compiler bug and panics.
type Generator struct {
	builder *ir.Builder
	info    *semantic.Info
	slots   map[string]*ir.Value
}

// Generate lowers program into a fresh IR module. The program must have
// passed semantic analysis; info is the analysis result for it.
func Generate(moduleName string, program *ast.Program, info *semantic.Info) *ir.Module {
	g := &Generator{
		builder: ir.NewBuilder(moduleName),
		info:    info,
		slots:   make(map[string]*ir.Value),
	}
	for _, fn := range program.Functions {
		g.lowerFunction(fn)
	}
	return g.builder.Module()
}

// symbolName maps a source function name to its emitted symbol.
func symbolName(name string) string {
	if name == types.EntryFunctionName {
		return entrySymbol
	}
	return name
}

func (g *Generator) lowerFunction(fn *ast.FunctionDef) {
	params := make([]*ir.Parameter, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = &ir.Parameter{Name: param.Name, Type: param.Type}
	}
	lowered := g.builder.NewFunction(symbolName(fn.Name), fn.Return, params)

	// Parameters get a slot each, so the body addresses every variable
	// the same way.
	for _, param := range params {
		slot := g.builder.EmitAlloca(param.Name, param.Type)
		g.builder.EmitStore(slot, param.Value)
		g.slots[param.Name] = slot
	}

	g.lowerBody(fn.Body)

	// A body that falls off the end gets the default return.
	if !g.builder.Terminated() {
		g.emitDefaultReturn(fn.Return)
	}

	pruneUnreachable(lowered)

	// Parameter names may recur in other functions; their slots must not.
	for _, param := range params {
		delete(g.slots, param.Name)
	}
}

// pruneUnreachable drops blocks no path from the entry reaches. Lowering
// leaves them behind when both arms of a conditional return: the merge
// block is created up front but never becomes a branch target.
func pruneUnreachable(fn *ir.Function) {
	reachable := make(map[*ir.BasicBlock]bool)
	var walk func(block *ir.BasicBlock)
	walk = func(block *ir.BasicBlock) {
		if reachable[block] {
			return
		}
		reachable[block] = true
		for _, succ := range block.Terminator.Successors() {
			walk(succ)
		}
	}
	walk(fn.Entry)

	kept := fn.Blocks[:0]
	for _, block := range fn.Blocks {
		if reachable[block] {
			kept = append(kept, block)
		}
	}
	fn.Blocks = kept
}

func (g *Generator) emitDefaultReturn(ret types.Type) {
	switch ret {
	case types.Void:
		g.builder.EmitReturn(nil)
	case types.Integer:
		g.builder.EmitReturn(g.builder.EmitConstant(int64(0), types.Integer))
	case types.Real:
		g.builder.EmitReturn(g.builder.EmitConstant(float64(0), types.Real))
	case types.Text:
		g.builder.EmitReturn(g.builder.EmitConstant("", types.Text))
	case types.Boolean:
		g.builder.EmitReturn(g.builder.EmitConstant(false, types.Boolean))
	default:
		panic(fmt.Sprintf("codegen: no default return for type %s", ret))
	}
}

// slot returns the stack slot for a variable the analyzer has already
// resolved. A miss means lowering ran ahead of declaration, which the
// analyzer rules out.
func (g *Generator) slot(name string) *ir.Value {
	slot, ok := g.slots[name]
	if !ok {
		panic(fmt.Sprintf("codegen: no slot for variable %q", name))
	}
	return slot
}
