package driver

import (
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"confucio/internal/ast"
	"confucio/internal/codegen"
	"confucio/internal/config"
	"confucio/internal/errors"
	"confucio/internal/ir"
	"confucio/internal/parser"
	"confucio/internal/semantic"
)

var log = commonlog.GetLogger("confucio.driver")

// Result holds the artifacts of one successful compilation.
type Result struct {
	Program *ast.Program
	Info    *semantic.Info
	Module  *ir.Module
}

// Compile runs the whole pipeline on one source file: parse, analyze,
// lower, validate. The first user-facing error stops it. A validation
// failure after lowering means the compiler itself produced a broken
// module and panics with the validator's report.
func Compile(filename, source string, cfg config.Config) (*Result, *errors.CompilerError) {
	log.Debugf("parsing %s", filename)
	program, parseErr := parser.ParseSource(filename, source)
	if parseErr != nil {
		return nil, parseErr
	}

	log.Debugf("analyzing %s (%d functions)", filename, len(program.Functions))
	info, semErr := semantic.Analyze(program)
	if semErr != nil {
		return nil, semErr
	}

	log.Debugf("lowering %s (opt-level %d)", filename, cfg.Build.OptLevel)
	module := codegen.Generate(moduleName(filename), program, info)

	if err := ir.Validate(module); err != nil {
		log.Criticalf("invalid module out of lowering: %s", err)
		panic(err)
	}

	log.Infof("compiled %s", filename)
	return &Result{Program: program, Info: info, Module: module}, nil
}

// CompileFile is Compile plus the manifest lookup next to the source.
func CompileFile(filename, source string) (*Result, config.Config, *errors.CompilerError) {
	cfg, err := config.Load(filepath.Join(filepath.Dir(filename), config.DefaultFile))
	if err != nil {
		log.Warningf("ignoring manifest: %s", err)
		cfg = config.Default()
	}
	result, compileErr := Compile(filename, source, cfg)
	return result, cfg, compileErr
}

// moduleName derives the IR module name from the source filename.
func moduleName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
