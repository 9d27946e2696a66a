package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confucio/internal/ast"
	"confucio/internal/errors"
	"confucio/internal/types"
)

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := ParseSource("test.cio", source)
	require.Nil(t, err, "source should parse")
	require.NotNil(t, program)
	return program
}

func TestParseSimpleProgram(t *testing.T) {
	program := parse(t, `Float side {] [
    Float x @ 5
    FileInputStream{x]
    * x
)`)

	require.Len(t, program.Functions, 1)
	fn := program.Functions[0]
	assert.Equal(t, "side", fn.Name)
	assert.Equal(t, types.Integer, fn.Return)
	assert.Empty(t, fn.Params)

	require.Len(t, fn.Body, 3)
	assert.IsType(t, &ast.VarDecl{}, fn.Body[0])
	assert.IsType(t, &ast.PrintStmt{}, fn.Body[1])
	assert.IsType(t, &ast.ReturnStmt{}, fn.Body[2])
}

func TestSurfaceTypeKeywordsMapToCoreTypes(t *testing.T) {
	program := parse(t, `Float side {] [
    Float a
    String b
    int c
    While d
    * 0
)`)

	body := program.Functions[0].Body
	expected := []types.Type{types.Integer, types.Real, types.Text, types.Boolean}
	for i, want := range expected {
		decl := body[i].(*ast.VarDecl)
		assert.Equal(t, want, decl.Type)
	}
}

func TestVoidFunctionHasNoReturnType(t *testing.T) {
	program := parse(t, `greet {] [
    FileInputStream{"hi"]
)

Float side {] [
    * 0
)`)

	assert.Equal(t, types.Void, program.Functions[0].Return)
	assert.Equal(t, types.Integer, program.Functions[1].Return)
}

func TestParameterList(t *testing.T) {
	program := parse(t, `Float addup { Float a, String b ] [
    * 0
)`)

	params := program.Functions[0].Params
	require.Len(t, params, 2)
	assert.Equal(t, "a", params[0].Name)
	assert.Equal(t, types.Integer, params[0].Type)
	assert.Equal(t, "b", params[1].Name)
	assert.Equal(t, types.Real, params[1].Type)
}

func TestSurfaceOperatorsMapToConventionalOnes(t *testing.T) {
	program := parse(t, `Float side {] [
    Float a @ 1 / 2
    Float b @ 1 ~ 2
    Float c @ 1 Bool 2
    Float d @ 1 + 2
    * 0
)`)

	body := program.Functions[0].Body
	expected := []types.BinaryOp{types.Add, types.Sub, types.Mul, types.Div}
	for i, want := range expected {
		bin := body[i].(*ast.VarDecl).Init.(*ast.BinaryExpr)
		assert.Equal(t, want, bin.Op)
	}
}

func TestComparisonOperators(t *testing.T) {
	program := parse(t, `Float side {] [
    While a @ 1 = 2
    While b @ 1 # 2
    While c @ 1 @@ 2
    * 0
)`)

	body := program.Functions[0].Body
	expected := []types.BinaryOp{types.Greater, types.Less, types.Equal}
	for i, want := range expected {
		bin := body[i].(*ast.VarDecl).Init.(*ast.BinaryExpr)
		assert.Equal(t, want, bin.Op)
	}
}

func TestMultiplicativeBindsTighterThanAdditive(t *testing.T) {
	program := parse(t, `Float side {] [
    Float x @ 1 / 2 Bool 3
    * 0
)`)

	decl := program.Functions[0].Body[0].(*ast.VarDecl)
	add := decl.Init.(*ast.BinaryExpr)
	require.Equal(t, types.Add, add.Op)

	mul := add.Right.(*ast.BinaryExpr)
	assert.Equal(t, types.Mul, mul.Op)
}

func TestParenthesesGroup(t *testing.T) {
	program := parse(t, `Float side {] [
    Float x @ {1 / 2] Bool 3
    * 0
)`)

	decl := program.Functions[0].Body[0].(*ast.VarDecl)
	mul := decl.Init.(*ast.BinaryExpr)
	require.Equal(t, types.Mul, mul.Op)

	add := mul.Left.(*ast.BinaryExpr)
	assert.Equal(t, types.Add, add.Op)
}

func TestAdditiveFoldsLeftAssociative(t *testing.T) {
	program := parse(t, `Float side {] [
    Float x @ 1 ~ 2 ~ 3
    * 0
)`)

	decl := program.Functions[0].Body[0].(*ast.VarDecl)
	outer := decl.Init.(*ast.BinaryExpr)
	require.Equal(t, types.Sub, outer.Op)

	inner := outer.Left.(*ast.BinaryExpr)
	assert.Equal(t, types.Sub, inner.Op, "1 ~ 2 ~ 3 should parse as (1 - 2) - 3")
}

func TestUnaryNegation(t *testing.T) {
	program := parse(t, `Float side {] [
    Float x @ ~5
    * 0
)`)

	decl := program.Functions[0].Body[0].(*ast.VarDecl)
	neg := decl.Init.(*ast.UnaryExpr)
	assert.Equal(t, types.Neg, neg.Op)
	assert.IsType(t, &ast.LiteralExpr{}, neg.Operand)
}

func TestLiteralKinds(t *testing.T) {
	program := parse(t, `Float side {] [
    Float a @ 42
    String b @ 2.5
    int c @ "hello"
    While d @ true
    * 0
)`)

	body := program.Functions[0].Body

	intLit := body[0].(*ast.VarDecl).Init.(*ast.LiteralExpr)
	assert.Equal(t, types.Integer, intLit.Type)
	assert.Equal(t, int64(42), intLit.Int)

	realLit := body[1].(*ast.VarDecl).Init.(*ast.LiteralExpr)
	assert.Equal(t, types.Real, realLit.Type)
	assert.Equal(t, 2.5, realLit.Real)

	textLit := body[2].(*ast.VarDecl).Init.(*ast.LiteralExpr)
	assert.Equal(t, types.Text, textLit.Type)
	assert.Equal(t, "hello", textLit.Text, "the literal should arrive unquoted")

	boolLit := body[3].(*ast.VarDecl).Init.(*ast.LiteralExpr)
	assert.Equal(t, types.Boolean, boolLit.Type)
	assert.True(t, boolLit.Bool)
}

func TestControlFlowKeywords(t *testing.T) {
	// "func" is if, "return" is while, "if" is for, "*" is return.
	program := parse(t, `Float side {] [
    Float x @ 0
    func {x @@ 0] [
        x @ 1
    ) else [
        x @ 2
    )
    return {x # 5] [
        x @ x / 1
    )
    if {Float i @ 0; i # 3; i @ i / 1] [
        x @ x / i
    )
    * x
)`)

	body := program.Functions[0].Body
	require.Len(t, body, 5)

	ifStmt := body[1].(*ast.IfStmt)
	assert.Len(t, ifStmt.Then, 1)
	assert.Len(t, ifStmt.Else, 1)

	whileStmt := body[2].(*ast.WhileStmt)
	assert.NotNil(t, whileStmt.Cond)
	assert.Len(t, whileStmt.Body, 1)

	forStmt := body[3].(*ast.ForStmt)
	require.NotNil(t, forStmt.Init)
	assert.Equal(t, "i", forStmt.Init.Name)
	assert.NotNil(t, forStmt.Cond)
	require.NotNil(t, forStmt.Update)
	assert.Equal(t, "i", forStmt.Update.Name)
}

func TestForHeaderPartsAreOptional(t *testing.T) {
	program := parse(t, `Float side {] [
    if {; ;] [
        * 1
    )
    * 0
)`)

	forStmt := program.Functions[0].Body[0].(*ast.ForStmt)
	assert.Nil(t, forStmt.Init)
	assert.Nil(t, forStmt.Cond)
	assert.Nil(t, forStmt.Update)
}

func TestPrintAndInputStatements(t *testing.T) {
	program := parse(t, `Float side {] [
    Float x
    deleteSystem32{x]
    FileInputStream{x, "and", 2.5]
    * 0
)`)

	body := program.Functions[0].Body

	input := body[1].(*ast.InputStmt)
	assert.Equal(t, "x", input.Name)

	print := body[2].(*ast.PrintStmt)
	assert.Len(t, print.Values, 3)
}

func TestFunctionCallArguments(t *testing.T) {
	program := parse(t, `Float side {] [
    Float x @ addup{1, 2]
    * x
)`)

	decl := program.Functions[0].Body[0].(*ast.VarDecl)
	call := decl.Init.(*ast.CallExpr)
	assert.Equal(t, "addup", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestCommentsAreElided(t *testing.T) {
	program := parse(t, `È program entry
Float side {] [
    È the answer
    Float x @ 42
    * x
)`)

	require.Len(t, program.Functions, 1)
	assert.Len(t, program.Functions[0].Body, 2)
}

func TestBareReturn(t *testing.T) {
	program := parse(t, `greet {] [
    *
)

Float side {] [
    * 0
)`)

	ret := program.Functions[0].Body[0].(*ast.ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestSyntaxErrorCarriesPosition(t *testing.T) {
	_, err := ParseSource("test.cio", `Float side {] [`)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorSyntax, err.Code)
	assert.Equal(t, "test.cio", err.Position.Filename)
	assert.Greater(t, err.Position.Line, 0)
}

func TestNodeSpansCoverTheirSource(t *testing.T) {
	program := parse(t, `Float side {] [
    Float x @ 5
    x @ x / 1
)`)

	fn := program.Functions[0]
	assert.Equal(t, 1, fn.NodePos().Line)
	assert.Equal(t, 4, fn.NodeEndPos().Line)

	decl := fn.Body[0].(*ast.VarDecl)
	assert.Equal(t, 2, decl.NodePos().Line)
	assert.Greater(t, decl.NodeEndPos().Column, decl.NodePos().Column)

	assign := fn.Body[1].(*ast.AssignStmt)
	sum := assign.Value.(*ast.BinaryExpr)
	assert.Equal(t, sum.Right.NodeEndPos(), sum.NodeEndPos())
	assert.Greater(t, sum.NodeEndPos().Offset, sum.NodePos().Offset)
}

func TestExampleProgramsParse(t *testing.T) {
	entries, err := os.ReadDir("../../examples")
	require.NoError(t, err)

	var checked int
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".cio" {
			continue
		}
		checked++

		source, err := os.ReadFile(filepath.Join("../../examples", entry.Name()))
		require.NoError(t, err)

		_, parseErr := ParseSource(entry.Name(), string(source))
		assert.Nil(t, parseErr, "example %s should parse: %v", entry.Name(), parseErr)
	}
	require.NotZero(t, checked, "shipped example programs should exist")
}
