package vm

import (
	"errors"

	"git.sr.ht/~mango/logo/ast"
	"git.sr.ht/~mango/logo/literal"
)

func (vm *Vm) eval(v ast.Value) (literal.Literal, error) {
	switch v := v.(type) {
	case ast.Lit:
		return v.Val, nil
	case ast.VarRef:
		if x, ok := vm.vars.Get(string(v)); ok {
			return x, nil
		}
		return literal.Literal{}, vm.undefinedVar(string(v))
	case ast.Call:
		res, err := vm.call(v)
		if err != nil {
			return literal.Literal{}, err
		}
		if res == nil {
			return literal.Literal{}, MissingResultError{v.Callee.Name()}
		}
		return *res, nil
	case ast.Binary:
		return vm.evalBinary(v)
	}
	panic("unreachable")
}

// evalBinary always evaluates both operands, left first.
func (vm *Vm) evalBinary(b ast.Binary) (literal.Literal, error) {
	x, err := vm.eval(b.Lhs)
	if err != nil {
		return literal.Literal{}, err
	}
	y, err := vm.eval(b.Rhs)
	if err != nil {
		return literal.Literal{}, err
	}

	switch b.Op {
	case ast.OpAdd:
		return literal.Add(x, y)
	case ast.OpSub:
		return literal.Sub(x, y)
	case ast.OpMul:
		return literal.Mul(x, y)
	case ast.OpDiv:
		return literal.Div(x, y)
	}

	var ok bool
	switch b.Op {
	case ast.OpEq:
		ok, err = literal.Equal(x, y)
	case ast.OpNe:
		ok, err = literal.Equal(x, y)
		ok = !ok
		var te TypeError
		if errors.As(err, &te) {
			te.Op = b.Op.String()
			err = te
		}
	case ast.OpGt:
		ok, err = literal.Greater(x, y)
	case ast.OpLt:
		ok, err = literal.Less(x, y)
	case ast.OpAnd, ast.OpOr:
		p, pok := x.AsBool()
		q, qok := y.AsBool()
		if !pok || !qok {
			return literal.Literal{}, TypeError{
				Op:       b.Op.String(),
				Operands: []literal.Kind{x.Kind(), y.Kind()},
			}
		}
		if b.Op == ast.OpAnd {
			ok = p && q
		} else {
			ok = p || q
		}
	}
	if err != nil {
		return literal.Literal{}, err
	}
	return literal.Bool(ok), nil
}

// evalCond evaluates the condition of the IF or WHILE named kw.
func (vm *Vm) evalCond(kw string, v ast.Value) (bool, error) {
	x, err := vm.eval(v)
	if err != nil {
		return false, err
	}
	b, ok := x.AsBool()
	if !ok {
		return false, TypeError{Op: kw, Operands: []literal.Kind{x.Kind()}}
	}
	return b, nil
}
