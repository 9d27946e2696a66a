package ir

import (
	"fmt"
)

// Validate checks the output contract a finished module must satisfy
// before it is handed to a backend: every function has at least one
// block, every block ends in exactly one terminator, every branch target
// belongs to the same function, and every block is reachable from entry.
//
// A validation failure is a compiler bug, not user input, but it is
// returned as an error so the driver can abort with full context instead
// of shipping a broken module.
func Validate(module *Module) error {
	for _, fn := range module.Functions {
		if err := validateFunction(fn); err != nil {
			return fmt.Errorf("ir: function %s: %w", fn.Name, err)
		}
	}
	return nil
}

func validateFunction(fn *Function) error {
	if len(fn.Blocks) == 0 {
		return fmt.Errorf("has no blocks")
	}
	if fn.Entry == nil || fn.Entry != fn.Blocks[0] {
		return fmt.Errorf("entry block is not the first block")
	}

	owned := make(map[*BasicBlock]bool, len(fn.Blocks))
	for _, block := range fn.Blocks {
		owned[block] = true
	}

	for _, block := range fn.Blocks {
		if block.Terminator == nil {
			return fmt.Errorf("block %s has no terminator", block.Label)
		}
		for _, inst := range block.Instructions {
			if inst.IsTerminator() {
				return fmt.Errorf("block %s has a terminator in its instruction body", block.Label)
			}
		}
		for _, succ := range block.Terminator.Successors() {
			if !owned[succ] {
				return fmt.Errorf("block %s branches to foreign block %s", block.Label, succ.Label)
			}
		}
	}

	reachable := make(map[*BasicBlock]bool, len(fn.Blocks))
	worklist := []*BasicBlock{fn.Entry}
	for len(worklist) > 0 {
		block := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if reachable[block] {
			continue
		}
		reachable[block] = true
		worklist = append(worklist, block.Terminator.Successors()...)
	}
	for _, block := range fn.Blocks {
		if !reachable[block] {
			return fmt.Errorf("block %s is unreachable from entry", block.Label)
		}
	}
	return nil
}
