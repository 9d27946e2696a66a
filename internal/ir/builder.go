package ir

import (
	"fmt"

	"confucio/internal/types"
)

// Builder is the imperative construction API for IR modules: create
// functions and blocks, position an insertion point, emit instructions.
// It knows nothing about source semantics; the code generator supplies
// every result type explicitly.
//
// The one invariant the builder enforces itself: a terminated block
// accepts no further emission. Breaking it is a code generator bug, so
// it panics rather than returning an error.
type Builder struct {
	module       *Module
	currentFunc  *Function
	currentBlock *BasicBlock
	valueCounter int
	blockCounter int
}

func NewBuilder(moduleName string) *Builder {
	return &Builder{
		module: &Module{Name: moduleName},
	}
}

// Module returns the module under construction.
func (b *Builder) Module() *Module {
	return b.module
}

// NewFunction opens a function, creates its entry block, and positions
// the insertion point there.
func (b *Builder) NewFunction(name string, ret types.Type, params []*Parameter) *Function {
	fn := &Function{
		Name:   name,
		Return: ret,
		Params: params,
	}
	for _, param := range params {
		param.Value = b.newValue(param.Name, param.Type, false)
	}
	b.module.Functions = append(b.module.Functions, fn)
	b.currentFunc = fn

	entry := b.NewBlock("entry")
	fn.Entry = entry
	b.PositionAt(entry)
	return fn
}

// NewBlock creates an empty block in the current function. The name is
// made unique with a counter so lowering can reuse "then", "merge" and
// friends freely.
func (b *Builder) NewBlock(name string) *BasicBlock {
	b.blockCounter++
	block := &BasicBlock{Label: fmt.Sprintf("%s.%d", name, b.blockCounter)}
	b.currentFunc.Blocks = append(b.currentFunc.Blocks, block)
	return block
}

// PositionAt moves the insertion point; subsequent emits append to block.
func (b *Builder) PositionAt(block *BasicBlock) {
	b.currentBlock = block
}

// CurrentBlock returns the insertion point.
func (b *Builder) CurrentBlock() *BasicBlock {
	return b.currentBlock
}

// Terminated reports whether the insertion point already has a
// terminator. Lowering checks this before sealing branch arms so a body
// ending in a return is left alone.
func (b *Builder) Terminated() bool {
	return b.currentBlock.Terminator != nil
}

func (b *Builder) newValue(name string, typ types.Type, slot bool) *Value {
	b.valueCounter++
	return &Value{ID: b.valueCounter, Name: name, Type: typ, Slot: slot}
}

func (b *Builder) emit(inst Instruction) {
	if b.currentBlock == nil {
		panic("ir: emit with no insertion point")
	}
	if b.currentBlock.Terminator != nil {
		panic(fmt.Sprintf("ir: emit into terminated block %s", b.currentBlock.Label))
	}
	b.currentBlock.Instructions = append(b.currentBlock.Instructions, inst)
}

func (b *Builder) terminate(term Terminator) {
	if b.currentBlock == nil {
		panic("ir: terminator with no insertion point")
	}
	if b.currentBlock.Terminator != nil {
		panic(fmt.Sprintf("ir: second terminator in block %s", b.currentBlock.Label))
	}
	b.currentBlock.Terminator = term
}

// EmitAlloca reserves a stack slot for varName and returns its address.
func (b *Builder) EmitAlloca(varName string, typ types.Type) *Value {
	dest := b.newValue(varName+".slot", typ, true)
	b.emit(&AllocaInstruction{Dest: dest, VarName: varName, Type: typ})
	return dest
}

// EmitLoad reads a slot.
func (b *Builder) EmitLoad(slot *Value) *Value {
	dest := b.newValue("", slot.Type, false)
	b.emit(&LoadInstruction{Dest: dest, Slot: slot})
	return dest
}

// EmitStore writes value into slot.
func (b *Builder) EmitStore(slot, value *Value) {
	b.emit(&StoreInstruction{Slot: slot, Value: value})
}

// EmitBinary applies op; result carries the type the caller inferred.
func (b *Builder) EmitBinary(op types.BinaryOp, left, right *Value, result types.Type) *Value {
	dest := b.newValue("", result, false)
	b.emit(&BinaryInstruction{Dest: dest, Op: op, Left: left, Right: right})
	return dest
}

// EmitUnary applies op to operand.
func (b *Builder) EmitUnary(op types.UnaryOp, operand *Value) *Value {
	dest := b.newValue("", operand.Type, false)
	b.emit(&UnaryInstruction{Dest: dest, Op: op, Operand: operand})
	return dest
}

// EmitCall calls a function or runtime symbol. A Void result returns nil.
func (b *Builder) EmitCall(callee string, args []*Value, result types.Type) *Value {
	var dest *Value
	if result != types.Void {
		dest = b.newValue("", result, false)
	}
	b.emit(&CallInstruction{Dest: dest, Callee: callee, Args: args})
	return dest
}

// EmitConstant materializes a literal value of the given type.
func (b *Builder) EmitConstant(value interface{}, typ types.Type) *Value {
	dest := b.newValue("", typ, false)
	b.emit(&ConstantInstruction{Dest: dest, Type: typ, Value: value})
	return dest
}

// EmitJump seals the current block with an unconditional branch.
func (b *Builder) EmitJump(target *BasicBlock) {
	b.terminate(&JumpTerminator{Target: target})
}

// EmitCondBranch seals the current block with a two-way branch.
func (b *Builder) EmitCondBranch(cond *Value, trueBlock, falseBlock *BasicBlock) {
	b.terminate(&BranchTerminator{Condition: cond, TrueBlock: trueBlock, FalseBlock: falseBlock})
}

// EmitReturn seals the current block with a return; value may be nil.
func (b *Builder) EmitReturn(value *Value) {
	b.terminate(&ReturnTerminator{Value: value})
}
