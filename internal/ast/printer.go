package ast

import (
	"fmt"
	"strconv"
	"strings"

	"confucio/internal/types"
)

// Printer renders a tree in an indented, human-readable form for
// debugging and for the CLI's AST dump.
type Printer struct {
	indent int
	output strings.Builder
}

// Print returns the string representation of a program tree.
func Print(program *Program) string {
	p := &Printer{}
	p.printProgram(program)
	return p.output.String()
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printProgram(program *Program) {
	p.writeLine("Program")
	p.indent++
	for _, fn := range program.Functions {
		p.printFunction(fn)
	}
	p.indent--
}

func (p *Printer) printFunction(fn *FunctionDef) {
	params := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = fmt.Sprintf("%s %s", param.Type, param.Name)
	}
	p.writeLine("FunctionDef %s %s(%s)", fn.Return, fn.Name, strings.Join(params, ", "))
	p.indent++
	for _, stmt := range fn.Body {
		p.printStmt(stmt)
	}
	p.indent--
}

func (p *Printer) printStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *VarDecl:
		if s.Init != nil {
			p.writeLine("VarDecl %s %s = %s", s.Type, s.Name, ExprString(s.Init))
		} else {
			p.writeLine("VarDecl %s %s", s.Type, s.Name)
		}
	case *AssignStmt:
		p.writeLine("Assign %s = %s", s.Name, ExprString(s.Value))
	case *PrintStmt:
		values := make([]string, len(s.Values))
		for i, v := range s.Values {
			values[i] = ExprString(v)
		}
		p.writeLine("Print %s", strings.Join(values, ", "))
	case *InputStmt:
		p.writeLine("Input %s", s.Name)
	case *IfStmt:
		p.writeLine("If %s", ExprString(s.Cond))
		p.indent++
		for _, inner := range s.Then {
			p.printStmt(inner)
		}
		p.indent--
		if s.Else != nil {
			p.writeLine("Else")
			p.indent++
			for _, inner := range s.Else {
				p.printStmt(inner)
			}
			p.indent--
		}
	case *WhileStmt:
		p.writeLine("While %s", ExprString(s.Cond))
		p.indent++
		for _, inner := range s.Body {
			p.printStmt(inner)
		}
		p.indent--
	case *ForStmt:
		p.writeLine("For")
		p.indent++
		if s.Init != nil {
			p.printStmt(s.Init)
		}
		if s.Cond != nil {
			p.writeLine("Cond %s", ExprString(s.Cond))
		}
		if s.Update != nil {
			p.printStmt(s.Update)
		}
		for _, inner := range s.Body {
			p.printStmt(inner)
		}
		p.indent--
	case *ReturnStmt:
		if s.Value != nil {
			p.writeLine("Return %s", ExprString(s.Value))
		} else {
			p.writeLine("Return")
		}
	case *ExprStmt:
		p.writeLine("ExprStmt %s", ExprString(s.Expr))
	}
}

// ExprString renders an expression on a single line.
func ExprString(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		return literalString(e)
	case *VarRefExpr:
		return e.Name
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", ExprString(e.Left), e.Op, ExprString(e.Right))
	case *UnaryExpr:
		return fmt.Sprintf("(%s%s)", e.Op, ExprString(e.Operand))
	case *CallExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = ExprString(arg)
		}
		return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
	default:
		return "<unknown expr>"
	}
}

func literalString(l *LiteralExpr) string {
	switch l.Type {
	case types.Integer:
		return strconv.FormatInt(l.Int, 10)
	case types.Real:
		return strconv.FormatFloat(l.Real, 'g', -1, 64)
	case types.Text:
		return strconv.Quote(l.Text)
	case types.Boolean:
		return strconv.FormatBool(l.Bool)
	default:
		return "<invalid literal>"
	}
}
