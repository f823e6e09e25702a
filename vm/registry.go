package vm

import (
	"git.sr.ht/~mango/logo/ast"
	"git.sr.ht/~mango/logo/pkg/suggest"
)

// callable is an entry in the registry.  Built-ins are identified by their
// enum value; procedures carry their definition.
type callable struct {
	kind    ast.CalleeKind
	command ast.Command
	query   ast.Query
	proc    *procedure
}

type procedure struct {
	params []string
	body   []ast.Statement
}

// lookup resolves c by name.  Built-ins are registered the first time they
// are looked up, so a procedure declared under the same name takes their
// place for every later call.
func (vm *Vm) lookup(c ast.Callee) (callable, error) {
	name := c.Name()
	if cl, ok := vm.reg[name]; ok {
		return cl, nil
	}

	var cl callable
	switch c.Kind {
	case ast.CalleeCommand:
		cl = callable{kind: ast.CalleeCommand, command: c.Command}
	case ast.CalleeQuery:
		cl = callable{kind: ast.CalleeQuery, query: c.Query}
	default:
		return callable{}, UndefinedCallableError{
			Name:       name,
			Suggestion: suggest.Closest(name, vm.procNames()),
		}
	}

	vm.reg[name] = cl
	return cl, nil
}

// declare registers p, replacing whatever was registered under its name.
func (vm *Vm) declare(p ast.ProcDecl) {
	vm.reg[p.Name] = callable{
		kind: ast.CalleeProc,
		proc: &procedure{params: p.Params, body: p.Body},
	}
}

func (vm *Vm) procNames() []string {
	var xs []string
	for name, cl := range vm.reg {
		if cl.kind == ast.CalleeProc {
			xs = append(xs, name)
		}
	}
	return xs
}
