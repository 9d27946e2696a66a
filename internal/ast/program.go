package ast

import "confucio/internal/types"

// Program is the root of the tree the pipeline operates on: an ordered
// sequence of function definitions, exactly one of which must be the
// zero-parameter entry function "side".
// Example: "Float side {] [ Float x @ 5 * x )"
type Program struct {
	Pos       Position
	EndPos    Position
	Functions []*FunctionDef
}

// FunctionDef is a function definition. Return is types.Void when the
// source definition carries no leading return type.
// Example: "Float add {Float a, Float b] [ * a / b )"
type FunctionDef struct {
	Pos    Position
	EndPos Position
	Name   string
	Return types.Type
	Params []*Parameter
	Body   []Stmt
}

// Parameter is a single typed function parameter.
// Example: "Float a"
type Parameter struct {
	Pos    Position
	EndPos Position
	Name   string
	Type   types.Type
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (f *FunctionDef) NodePos() Position    { return f.Pos }
func (f *FunctionDef) NodeEndPos() Position { return f.EndPos }
func (*FunctionDef) NodeType() NodeType     { return FUNCTION_DEF }

func (p *Parameter) NodePos() Position    { return p.Pos }
func (p *Parameter) NodeEndPos() Position { return p.EndPos }
func (*Parameter) NodeType() NodeType     { return PARAMETER }
