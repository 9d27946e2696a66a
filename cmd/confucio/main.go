// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"confucio/internal/ast"
	"confucio/internal/driver"
	"confucio/internal/errors"
	"confucio/internal/ir"
)

func main() {
	args, verbose := splitFlags(os.Args[1:])
	if len(args) < 1 {
		fmt.Println("Usage: confucio [--verbose] [--dump-ast] [--dump-ir] <file.cio>")
		os.Exit(1)
	}

	verbosity := 0
	if verbose["--verbose"] {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	startTime := time.Now()
	path := args[0]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	result, cfg, compileErr := driver.CompileFile(path, string(source))
	duration := formatDuration(time.Since(startTime))

	if compileErr != nil {
		reporter := errors.NewErrorReporter(path, string(source))
		fmt.Print(reporter.FormatError(compileErr))
		color.Red("Compilation failed after %s", duration)
		os.Exit(1)
	}

	if cfg.Dump.AST || verbose["--dump-ast"] {
		fmt.Println(ast.Print(result.Program))
	}
	if cfg.Dump.IR || verbose["--dump-ir"] {
		fmt.Println(ir.Print(result.Module))
	}

	color.Green("Successfully compiled %s in %s", path, duration)
}

// splitFlags separates leading/trailing flags from positional arguments.
func splitFlags(argv []string) ([]string, map[string]bool) {
	flags := make(map[string]bool)
	var args []string
	for _, arg := range argv {
		switch arg {
		case "--verbose", "--dump-ast", "--dump-ir":
			flags[arg] = true
		default:
			args = append(args, arg)
		}
	}
	return args, flags
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
