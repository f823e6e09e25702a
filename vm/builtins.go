package vm

import (
	"errors"

	"git.sr.ht/~mango/logo/ast"
	"git.sr.ht/~mango/logo/canvas"
	"git.sr.ht/~mango/logo/literal"
)

func (vm *Vm) execCommand(c ast.Command, args []literal.Literal) error {
	if len(args) != c.Arity() {
		return ArgumentError{c.String(), "wrong number of arguments"}
	}

	t := vm.turtle
	switch c {
	case ast.PenUp:
		t.PenUp()
		return nil
	case ast.PenDown:
		t.PenDown()
		return nil
	}

	switch c {
	case ast.Forward, ast.Back, ast.Left, ast.Right, ast.SetX, ast.SetY:
		f, err := floatArg(c, args[0])
		if err != nil {
			return err
		}
		switch c {
		case ast.Forward:
			err = t.Forward(f)
		case ast.Back:
			err = t.Back(f)
		case ast.Left:
			err = t.Left(f)
		case ast.Right:
			err = t.Right(f)
		case ast.SetX:
			t.SetX(f)
		case ast.SetY:
			t.SetY(f)
		}
		if errors.Is(err, canvas.ErrBadColor) {
			return ArgumentError{c.String(), err.Error()}
		}
		return err
	default:
		i, err := intArg(c, args[0])
		if err != nil {
			return err
		}
		switch c {
		case ast.SetPenColor:
			t.SetColor(i)
		case ast.Turn:
			t.Turn(i)
		case ast.SetHeading:
			t.SetHeading(i)
		}
		return nil
	}
}

func floatArg(c ast.Command, x literal.Literal) (float32, error) {
	f, ok := x.AsFloat()
	if !ok {
		return 0, TypeError{Op: c.String(), Operands: []literal.Kind{x.Kind()}}
	}
	return f, nil
}

func intArg(c ast.Command, x literal.Literal) (int32, error) {
	if !x.IsNumeric() {
		return 0, TypeError{Op: c.String(), Operands: []literal.Kind{x.Kind()}}
	}
	i, ok := x.AsInt()
	if !ok {
		return 0, ArgumentError{c.String(), "expected a whole number but got " + x.String()}
	}
	return i, nil
}

func (vm *Vm) query(q ast.Query) literal.Literal {
	t := vm.turtle
	switch q {
	case ast.XCor:
		return literal.Float(t.X)
	case ast.YCor:
		return literal.Float(t.Y)
	case ast.Heading:
		return literal.Int(t.Heading)
	case ast.Color:
		return literal.Int(t.Color)
	}
	panic("unreachable")
}
