package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confucio/internal/ast"
	"confucio/internal/errors"
	"confucio/internal/parser"
	"confucio/internal/types"
)

func analyzeSource(t *testing.T, source string) (*Info, *errors.CompilerError) {
	t.Helper()
	program, parseErr := parser.ParseSource("test.cio", source)
	require.Nil(t, parseErr, "source should parse")
	require.NotNil(t, program, "program should be built")
	return Analyze(program)
}

func TestWellTypedProgram(t *testing.T) {
	source := `Float side {] [
    Float x @ 5
    Float y @ 3
    FileInputStream{x / y]
    * 0
)`

	info, err := analyzeSource(t, source)
	assert.Nil(t, err, "should have no semantic error")
	assert.Equal(t, types.Integer, info.VarType("x"))
	assert.Equal(t, types.Integer, info.VarType("y"))
	assert.Equal(t, types.Integer, info.Functions["side"].Return)
}

func TestDuplicateDeclarationInOneBody(t *testing.T) {
	source := `Float side {] [
    Float x @ 1
    String x @ 2.0
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err, "should report a semantic error")
	assert.Equal(t, errors.ErrorDuplicateDeclaration, err.Code)
	assert.Contains(t, err.Message, "'x' is already declared")
}

func TestNoShadowingAcrossFunctions(t *testing.T) {
	// One global scope: a name declared in one body blocks every
	// later body, including parameters.
	source := `Float side {] [
    Float x @ 1
    * 0
)

trip { Float x ] [
    FileInputStream{x]
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorDuplicateDeclaration, err.Code)
	assert.Contains(t, err.Message, "'x' is already declared")
}

func TestParameterScopeIsTemporary(t *testing.T) {
	// Parameters leave the table with their function, so two
	// functions may name a parameter identically.
	source := `Float twice { Float n ] [
    * n / n
)

Float thrice { Float n ] [
    * n / n / n
)

Float side {] [
    * twice{1] / thrice{2]
)`

	_, err := analyzeSource(t, source)
	assert.Nil(t, err, "parameter names should not persist across bodies")
}

func TestUndeclaredVariable(t *testing.T) {
	source := `Float side {] [
    x @ 5
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUndeclaredVariable, err.Code)
	assert.Contains(t, err.Message, "'x' used before declaration")
}

func TestDeclarationInitializerCheckedFirst(t *testing.T) {
	// "Float x @ x" reads x before the declaration takes effect.
	source := `Float side {] [
    Float x @ x
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUndeclaredVariable, err.Code)
}

func TestUseBeforeInit(t *testing.T) {
	source := `Float side {] [
    Float x
    Float y @ x
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUseBeforeInit, err.Code)
	assert.Contains(t, err.Message, "'x' used before initialization")
}

func TestAssignmentInitializes(t *testing.T) {
	source := `Float side {] [
    Float x
    x @ 4
    Float y @ x
    * y
)`

	_, err := analyzeSource(t, source)
	assert.Nil(t, err, "assignment should count as initialization")
}

func TestInputInitializes(t *testing.T) {
	source := `Float side {] [
    Float x
    deleteSystem32{x]
    FileInputStream{x]
    * 0
)`

	_, err := analyzeSource(t, source)
	assert.Nil(t, err, "reading input should count as initialization")
}

func TestNoImplicitConversion(t *testing.T) {
	source := `Float side {] [
    Float x @ 2.5
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "expected Integer, got Real")
}

func TestMixedArithmeticRejected(t *testing.T) {
	source := `Float side {] [
    Float x @ 1
    String y @ 2.0
    FileInputStream{x / y]
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "cannot combine Integer and Real")
}

func TestTextConcatenation(t *testing.T) {
	source := `Float side {] [
    int greeting @ "hello, " / "world"
    FileInputStream{greeting]
    * 0
)`

	info, err := analyzeSource(t, source)
	assert.Nil(t, err, "addition on two Text values should concatenate")
	assert.Equal(t, types.Text, info.VarType("greeting"))
}

func TestTextSubtractionRejected(t *testing.T) {
	source := `Float side {] [
    int s @ "a" ~ "b"
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "cannot combine Text and Text")
}

func TestOrderingIsNumericOnly(t *testing.T) {
	source := `Float side {] [
    func {"a" = "b"] [
        FileInputStream{"yes"]
    )
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "cannot combine Text and Text")
}

func TestEqualityOnText(t *testing.T) {
	source := `Float side {] [
    func {"a" @@ "b"] [
        FileInputStream{"equal"]
    )
    * 0
)`

	_, err := analyzeSource(t, source)
	assert.Nil(t, err, "equality should accept two Text operands")
}

func TestEqualityRejectsMixedTypes(t *testing.T) {
	source := `Float side {] [
    func {1 @@ 1.0] [
        FileInputStream{"equal"]
    )
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "cannot combine Integer and Real")
}

func TestConditionMustBeBoolean(t *testing.T) {
	source := `Float side {] [
    Float x @ 1
    func {x] [
        FileInputStream{x]
    )
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorConditionNotBoolean, err.Code)
	assert.Contains(t, err.Message, "if condition must be Boolean, got Integer")
}

func TestWhileConditionMustBeBoolean(t *testing.T) {
	source := `Float side {] [
    return {1 / 2] [
        FileInputStream{"loop"]
    )
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorConditionNotBoolean, err.Code)
	assert.Contains(t, err.Message, "while condition")
}

func TestUnaryNegationNumericOnly(t *testing.T) {
	source := `Float side {] [
    While b @ ~true
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "requires a numeric operand, got Boolean")
}

func TestInputRejectsBoolean(t *testing.T) {
	source := `Float side {] [
    While flag @ true
    deleteSystem32{flag]
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorInvalidInputType, err.Code)
	assert.Contains(t, err.Message, "cannot read console input into 'flag' of type Boolean")
}

func TestMissingEntryPoint(t *testing.T) {
	source := `Float helper {] [
    * 1
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorMissingEntryPoint, err.Code)
	assert.Contains(t, err.Message, "function named 'side'")
}

func TestEntryPointTakesNoParameters(t *testing.T) {
	source := `Float side { Float n ] [
    * n
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorInvalidEntryPointSignature, err.Code)
	assert.Contains(t, err.Message, "must not take parameters")
}

func TestEntryPointMustReturnInteger(t *testing.T) {
	source := `side {] [
    FileInputStream{"hello"]
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorInvalidEntryPointSignature, err.Code)
	assert.Contains(t, err.Message, "must return Float")
}

func TestUndefinedFunctionCall(t *testing.T) {
	source := `Float side {] [
    Float x @ boom{]
    * x
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUndefinedFunction, err.Code)
	assert.Contains(t, err.Message, "'boom' is not defined")
}

func TestCallArityChecked(t *testing.T) {
	source := `Float twice { Float n ] [
    * n / n
)

Float side {] [
    * twice{1, 2]
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorArityMismatch, err.Code)
	assert.Contains(t, err.Message, "expects 1 arguments, got 2")
}

func TestCallArgumentTypesChecked(t *testing.T) {
	source := `Float twice { Float n ] [
    * n / n
)

Float side {] [
    * twice{"one"]
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "argument 1 of call to 'twice'")
}

func TestForwardCallAllowed(t *testing.T) {
	// Functions are registered before bodies are checked, so the
	// entry may call something defined below it.
	source := `Float side {] [
    * later{]
)

Float later {] [
    * 7
)`

	_, err := analyzeSource(t, source)
	assert.Nil(t, err, "calls may reference functions defined later")
}

func TestReturnTypeChecked(t *testing.T) {
	source := `Float side {] [
    * "done"
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "return from 'side'")
	assert.Contains(t, err.Message, "expected Integer, got Text")
}

func TestVoidFunctionRejectsValueReturn(t *testing.T) {
	source := `shout {] [
    * 1
)

Float side {] [
    * 0
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "return from 'shout'")
}

func TestBareReturnInValueFunctionRejected(t *testing.T) {
	source := `Float side {] [
    *
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "expected Integer, got Void")
}

func TestForLoopVariableIsGlobal(t *testing.T) {
	source := `Float side {] [
    if {Float i @ 0; i # 3; i @ i / 1] [
        FileInputStream{i]
    )
    Float i @ 9
    * i
)`

	_, err := analyzeSource(t, source)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorDuplicateDeclaration, err.Code)
	assert.Contains(t, err.Message, "'i' is already declared")
}

func TestForLoopVariableSurvivesLoop(t *testing.T) {
	source := `Float side {] [
    if {Float i @ 0; i # 3; i @ i / 1] [
        FileInputStream{i]
    )
    * i
)`

	_, err := analyzeSource(t, source)
	assert.Nil(t, err, "the loop variable should remain visible after the loop")
}

func TestExpressionTypesRecorded(t *testing.T) {
	source := `Float side {] [
    Float x @ 5
    func {x = 3] [
        FileInputStream{x]
    )
    * x
)`

	program, parseErr := parser.ParseSource("test.cio", source)
	require.Nil(t, parseErr)

	info, err := Analyze(program)
	require.Nil(t, err)

	// Every expression node must carry a recorded type.
	fn := program.Functions[0]
	decl := fn.Body[0].(*ast.VarDecl)
	assert.Equal(t, types.Integer, info.TypeOf(decl.Init))

	cond := fn.Body[1].(*ast.IfStmt).Cond
	assert.Equal(t, types.Boolean, info.TypeOf(cond))
}
