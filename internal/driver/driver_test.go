package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confucio/internal/config"
	"confucio/internal/errors"
)

const helloSource = `Float side {] [
    FileInputStream{"hello"]
    * 0
)`

func TestCompileProducesValidatedModule(t *testing.T) {
	result, err := Compile("hello.cio", helloSource, config.Default())
	require.Nil(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "hello", result.Module.Name)
	assert.NotNil(t, result.Program)
	assert.NotNil(t, result.Info)
	require.NotEmpty(t, result.Module.Functions)
	assert.Equal(t, "main", result.Module.Functions[0].Name)
}

func TestCompileBranchesThatBothReturn(t *testing.T) {
	result, err := Compile("branches.cio", `Float side {] [
    func {1 = 0] [
        * 1
    ) else [
        * 2
    )
)`, config.Default())
	require.Nil(t, err)
	require.NotNil(t, result.Module)
}

func TestCompileStopsOnParseError(t *testing.T) {
	_, err := Compile("broken.cio", `Float side {] [`, config.Default())
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorSyntax, err.Code)
}

func TestCompileStopsOnSemanticError(t *testing.T) {
	_, err := Compile("bad.cio", `Float side {] [
    x @ 1
    * 0
)`, config.Default())
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUndeclaredVariable, err.Code)
}

func TestCompileFileReadsManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, config.DefaultFile)
	require.NoError(t, os.WriteFile(manifest, []byte("[dump]\nast = true\n"), 0o644))

	result, cfg, err := CompileFile(filepath.Join(dir, "hello.cio"), helloSource)
	require.Nil(t, err)
	require.NotNil(t, result)
	assert.True(t, cfg.Dump.AST)
}

func TestCompileFileDefaultsWithoutManifest(t *testing.T) {
	result, cfg, err := CompileFile(filepath.Join(t.TempDir(), "hello.cio"), helloSource)
	require.Nil(t, err)
	require.NotNil(t, result)
	assert.Equal(t, config.Default(), cfg)
}
