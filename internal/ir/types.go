package ir

import (
	"fmt"
	"strings"

	"confucio/internal/types"
)

// The IR is a control-flow graph of basic blocks over stack slots: every
// variable lives in a slot created by alloca and is touched only through
// load and store. No SSA, no phi nodes; a backend that wants them can run
// mem2reg itself.

// Module is the unit handed to the backend: all lowered functions of one
// compilation, entry function first.
type Module struct {
	Name      string
	Functions []*Function
}

// Function is one lowered function. Blocks holds every block in creation
// order; Entry is always Blocks[0].
type Function struct {
	Name   string
	Return types.Type
	Params []*Parameter
	Blocks []*BasicBlock
	Entry  *BasicBlock
}

// Parameter pairs a source-level parameter with the incoming IR value.
type Parameter struct {
	Name  string
	Type  types.Type
	Value *Value
}

// BasicBlock is a straight-line instruction sequence ending in exactly
// one terminator. A nil Terminator means the block is still under
// construction; the validator rejects it in a finished module.
type BasicBlock struct {
	Label        string
	Instructions []Instruction
	Terminator   Terminator
}

// Value is one IR operand: an instruction result, an incoming parameter,
// or a slot address. Slot values are addresses produced by alloca and are
// consumed only by load, store, and the runtime input call.
type Value struct {
	ID   int
	Name string
	Type types.Type
	Slot bool
}

func (v *Value) String() string {
	if v.Name != "" {
		return "%" + v.Name
	}
	return fmt.Sprintf("%%t%d", v.ID)
}

// Instruction is the closed set of things a block may contain.
type Instruction interface {
	Result() *Value
	Operands() []*Value
	IsTerminator() bool
	String() string
}

// Terminator ends a basic block and names its successors.
type Terminator interface {
	Instruction
	Successors() []*BasicBlock
}

// AllocaInstruction reserves one stack slot for a variable.
type AllocaInstruction struct {
	Dest    *Value
	VarName string
	Type    types.Type
}

// LoadInstruction reads the current value out of a slot.
type LoadInstruction struct {
	Dest *Value
	Slot *Value
}

// StoreInstruction writes a value into a slot.
type StoreInstruction struct {
	Slot  *Value
	Value *Value
}

// BinaryInstruction applies one binary operator. Comparison results are
// Boolean; everything else carries the operand type.
type BinaryInstruction struct {
	Dest  *Value
	Op    types.BinaryOp
	Left  *Value
	Right *Value
}

// UnaryInstruction applies one unary operator.
type UnaryInstruction struct {
	Dest    *Value
	Op      types.UnaryOp
	Operand *Value
}

// CallInstruction calls a module-local function or a runtime symbol.
// Dest is nil for void calls.
type CallInstruction struct {
	Dest   *Value
	Callee string
	Args   []*Value
}

// ConstantInstruction materializes a literal.
type ConstantInstruction struct {
	Dest  *Value
	Type  types.Type
	Value interface{}
}

// JumpTerminator is an unconditional branch.
type JumpTerminator struct {
	Target *BasicBlock
}

// BranchTerminator branches on a Boolean value.
type BranchTerminator struct {
	Condition  *Value
	TrueBlock  *BasicBlock
	FalseBlock *BasicBlock
}

// ReturnTerminator leaves the function. Value is nil for void returns.
type ReturnTerminator struct {
	Value *Value
}

func (a *AllocaInstruction) Result() *Value     { return a.Dest }
func (a *AllocaInstruction) Operands() []*Value { return nil }
func (a *AllocaInstruction) IsTerminator() bool { return false }
func (a *AllocaInstruction) String() string {
	return fmt.Sprintf("%s = alloca %s", a.Dest, a.Type)
}

func (l *LoadInstruction) Result() *Value     { return l.Dest }
func (l *LoadInstruction) Operands() []*Value { return []*Value{l.Slot} }
func (l *LoadInstruction) IsTerminator() bool { return false }
func (l *LoadInstruction) String() string {
	return fmt.Sprintf("%s = load %s", l.Dest, l.Slot)
}

func (s *StoreInstruction) Result() *Value     { return nil }
func (s *StoreInstruction) Operands() []*Value { return []*Value{s.Value, s.Slot} }
func (s *StoreInstruction) IsTerminator() bool { return false }
func (s *StoreInstruction) String() string {
	return fmt.Sprintf("store %s, %s", s.Value, s.Slot)
}

func (b *BinaryInstruction) Result() *Value     { return b.Dest }
func (b *BinaryInstruction) Operands() []*Value { return []*Value{b.Left, b.Right} }
func (b *BinaryInstruction) IsTerminator() bool { return false }
func (b *BinaryInstruction) String() string {
	return fmt.Sprintf("%s = %s %s, %s", b.Dest, b.Op.Mnemonic(), b.Left, b.Right)
}

func (u *UnaryInstruction) Result() *Value     { return u.Dest }
func (u *UnaryInstruction) Operands() []*Value { return []*Value{u.Operand} }
func (u *UnaryInstruction) IsTerminator() bool { return false }
func (u *UnaryInstruction) String() string {
	return fmt.Sprintf("%s = %s %s", u.Dest, u.Op.Mnemonic(), u.Operand)
}

func (c *CallInstruction) Result() *Value     { return c.Dest }
func (c *CallInstruction) Operands() []*Value { return c.Args }
func (c *CallInstruction) IsTerminator() bool { return false }
func (c *CallInstruction) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	call := fmt.Sprintf("call %s(%s)", c.Callee, strings.Join(args, ", "))
	if c.Dest == nil {
		return call
	}
	return fmt.Sprintf("%s = %s", c.Dest, call)
}

func (c *ConstantInstruction) Result() *Value     { return c.Dest }
func (c *ConstantInstruction) Operands() []*Value { return nil }
func (c *ConstantInstruction) IsTerminator() bool { return false }
func (c *ConstantInstruction) String() string {
	if c.Type == types.Text {
		return fmt.Sprintf("%s = const %s %q", c.Dest, c.Type, c.Value)
	}
	return fmt.Sprintf("%s = const %s %v", c.Dest, c.Type, c.Value)
}

func (j *JumpTerminator) Result() *Value     { return nil }
func (j *JumpTerminator) Operands() []*Value { return nil }
func (j *JumpTerminator) IsTerminator() bool { return true }
func (j *JumpTerminator) String() string {
	return fmt.Sprintf("jump %s", j.Target.Label)
}
func (j *JumpTerminator) Successors() []*BasicBlock { return []*BasicBlock{j.Target} }

func (b *BranchTerminator) Result() *Value     { return nil }
func (b *BranchTerminator) Operands() []*Value { return []*Value{b.Condition} }
func (b *BranchTerminator) IsTerminator() bool { return true }
func (b *BranchTerminator) String() string {
	return fmt.Sprintf("br %s, %s, %s", b.Condition, b.TrueBlock.Label, b.FalseBlock.Label)
}
func (b *BranchTerminator) Successors() []*BasicBlock {
	return []*BasicBlock{b.TrueBlock, b.FalseBlock}
}

func (r *ReturnTerminator) Result() *Value { return nil }
func (r *ReturnTerminator) Operands() []*Value {
	if r.Value == nil {
		return nil
	}
	return []*Value{r.Value}
}
func (r *ReturnTerminator) IsTerminator() bool { return true }
func (r *ReturnTerminator) String() string {
	if r.Value == nil {
		return "ret"
	}
	return fmt.Sprintf("ret %s", r.Value)
}
func (r *ReturnTerminator) Successors() []*BasicBlock { return nil }
