package ir

import (
	"fmt"
	"strings"
)

// Printer pretty-prints an IR module as a flat listing, one instruction
// per line, blocks introduced by their labels.
type Printer struct {
	indent int
	output strings.Builder
}

func NewPrinter() *Printer {
	return &Printer{}
}

// Print returns the listing for a whole module.
func Print(module *Module) string {
	p := NewPrinter()
	p.printModule(module)
	return p.output.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printModule(module *Module) {
	p.writeLine("MODULE %s", module.Name)
	for _, fn := range module.Functions {
		p.writeLine("")
		p.printFunction(fn)
	}
}

func (p *Printer) printFunction(fn *Function) {
	params := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = fmt.Sprintf("%s %s", param.Value, param.Type)
	}
	p.writeLine("func %s(%s) %s {", fn.Name, strings.Join(params, ", "), fn.Return)
	for _, block := range fn.Blocks {
		p.printBlock(block)
	}
	p.writeLine("}")
}

func (p *Printer) printBlock(block *BasicBlock) {
	p.writeLine("%s:", block.Label)
	p.indent++
	for _, inst := range block.Instructions {
		p.writeLine("%s", inst)
	}
	if block.Terminator != nil {
		p.writeLine("%s", block.Terminator)
	} else {
		p.writeLine("<unterminated>")
	}
	p.indent--
}
