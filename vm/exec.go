package vm

import (
	"fmt"
	"strings"

	"git.sr.ht/~mango/logo/ast"
	"git.sr.ht/~mango/logo/literal"
	"git.sr.ht/~mango/logo/log"
	"git.sr.ht/~mango/logo/pkg/suggest"
)

func (vm *Vm) execBlock(body []ast.Statement) error {
	for _, s := range body {
		if err := vm.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (vm *Vm) exec(s ast.Statement) error {
	if log.Trace {
		head, _, _ := strings.Cut(s.String(), "\n")
		log.Tracef("%s%s", vm.indent(), head)
	}

	switch s := s.(type) {
	case ast.Call:
		_, err := vm.call(s)
		return err
	case ast.Assign:
		return vm.execAssign(s)
	case ast.If:
		return vm.execIf(s)
	case ast.While:
		return vm.execWhile(s)
	case ast.ProcDecl:
		vm.declare(s)
		return nil
	}
	panic("unreachable")
}

func (vm *Vm) execAssign(a ast.Assign) error {
	v, err := vm.eval(a.Rhs)
	if err != nil {
		return err
	}

	if a.Op == ast.AssignAdd {
		old, ok := vm.vars.Get(a.Name)
		if !ok {
			return vm.undefinedVar(a.Name)
		}
		if v, err = literal.Add(old, v); err != nil {
			return err
		}
	}

	vm.vars.Set(a.Name, v)
	return nil
}

func (vm *Vm) execIf(i ast.If) error {
	ok, err := vm.evalCond("IF", i.Cond)
	if err != nil || !ok {
		return err
	}
	return vm.execBlock(i.Body)
}

func (vm *Vm) execWhile(w ast.While) error {
	for {
		ok, err := vm.evalCond("WHILE", w.Cond)
		if err != nil || !ok {
			return err
		}
		if err := vm.execBlock(w.Body); err != nil {
			return err
		}
	}
}

// call invokes c.  The result is nil for commands and procedures.
func (vm *Vm) call(c ast.Call) (*literal.Literal, error) {
	name := c.Callee.Name()
	cl, err := vm.lookup(c.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]literal.Literal, len(c.Args))
	for i, a := range c.Args {
		if args[i], err = vm.eval(a); err != nil {
			return nil, err
		}
	}

	switch cl.kind {
	case ast.CalleeCommand:
		return nil, vm.execCommand(cl.command, args)
	case ast.CalleeQuery:
		v := vm.query(cl.query)
		return &v, nil
	case ast.CalleeProc:
		return nil, vm.callProc(name, cl.proc, args)
	}
	panic("unreachable")
}

// frame records the variables a procedure call displaced
type frame struct {
	name  string
	saved map[string]literal.Literal
}

// callProc runs a procedure body with its parameters bound.  Variables that
// share a name with a parameter are set aside for the duration of the call
// and restored afterwards, even if the body fails.  Parameters that did not
// shadow anything stay defined once the call returns.
func (vm *Vm) callProc(name string, p *procedure, args []literal.Literal) error {
	f := frame{name: name, saved: make(map[string]literal.Literal, len(p.params))}
	for _, s := range p.params {
		if v, ok := vm.vars.Remove(s); ok {
			f.saved[s] = v
		}
	}

	vm.frames.Push(f)
	defer func() {
		vm.frames.Pop()
		for s, v := range f.saved {
			vm.vars.Set(s, v)
		}
		log.Tracef("%sleave %s", vm.indent(), name)
	}()

	n := min(len(p.params), len(args))
	for i := 0; i < n; i++ {
		vm.vars.Set(p.params[i], args[i])
	}
	if log.Trace {
		log.Tracef("%senter %s %v", vm.indent(), name, args[:n])
	}

	if err := vm.execBlock(p.body); err != nil {
		return fmt.Errorf("in procedure ‘%s’: %w", name, err)
	}
	return nil
}

func (vm *Vm) indent() string {
	return strings.Repeat("  ", vm.frames.Len())
}

func (vm *Vm) undefinedVar(name string) error {
	return UndefinedVariableError{
		Name:       name,
		Suggestion: suggest.Closest(name, vm.vars.Names()),
	}
}
