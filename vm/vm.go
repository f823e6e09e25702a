// Package vm evaluates a parsed program against a turtle and its surface.
package vm

import (
	"git.sr.ht/~mango/logo/ast"
	"git.sr.ht/~mango/logo/canvas"
	"git.sr.ht/~mango/logo/literal"
	"git.sr.ht/~mango/logo/pkg/stack"
	"git.sr.ht/~mango/logo/turtle"
	"git.sr.ht/~mango/logo/vm/vars"
)

// Vm owns all mutable state of one run.  It must not be used from more than
// one goroutine.
type Vm struct {
	vars   *vars.Table
	reg    map[string]callable
	turtle *turtle.Turtle
	frames stack.Stack[frame] // Procedure calls in progress
}

// New returns a Vm whose turtle starts in the centre of s.
func New(s canvas.Surface) *Vm {
	return &Vm{
		vars:   vars.New(),
		reg:    make(map[string]callable, 32),
		turtle: turtle.New(s),
		frames: stack.New[frame](16),
	}
}

// Run executes prog from top to bottom, stopping at the first error.
func (vm *Vm) Run(prog ast.Program) error {
	return vm.execBlock(prog)
}

// Var returns the current value of the variable name.
func (vm *Vm) Var(name string) (literal.Literal, bool) {
	return vm.vars.Get(name)
}

func (vm *Vm) Turtle() *turtle.Turtle {
	return vm.turtle
}
