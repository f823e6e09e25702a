package literal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivideByZero is returned when an Int is divided by Int(0).
var ErrDivideByZero = errors.New("integer division by zero")

// TypeError reports an operator applied to operands it does not accept.
type TypeError struct {
	Op       string
	Operands []Kind
}

func (e TypeError) Error() string {
	ks := make([]string, len(e.Operands))
	for i, k := range e.Operands {
		ks[i] = k.String()
	}
	return fmt.Sprintf("‘%s’ cannot be applied to %s", e.Op,
		strings.Join(ks, " and "))
}

type arith struct {
	op   string
	ints func(a, b int32) (int32, error)
	flts func(a, b float32) float32
}

var (
	add = arith{
		op:   "+",
		ints: func(a, b int32) (int32, error) { return a + b, nil },
		flts: func(a, b float32) float32 { return a + b },
	}
	sub = arith{
		op:   "-",
		ints: func(a, b int32) (int32, error) { return a - b, nil },
		flts: func(a, b float32) float32 { return a - b },
	}
	mul = arith{
		op:   "*",
		ints: func(a, b int32) (int32, error) { return a * b, nil },
		flts: func(a, b float32) float32 { return a * b },
	}
	div = arith{
		op: "/",
		ints: func(a, b int32) (int32, error) {
			if b == 0 {
				return 0, ErrDivideByZero
			}
			return a / b, nil
		},
		flts: func(a, b float32) float32 { return a / b },
	}
)

func (ar arith) apply(x, y Literal) (Literal, error) {
	if !x.IsNumeric() || !y.IsNumeric() {
		return Literal{}, TypeError{ar.op, []Kind{x.kind, y.kind}}
	}
	if x.kind == KindInt && y.kind == KindInt {
		n, err := ar.ints(x.i, y.i)
		if err != nil {
			return Literal{}, err
		}
		return Int(n), nil
	}
	a, _ := x.AsFloat()
	b, _ := y.AsFloat()
	return Float(ar.flts(a, b)), nil
}

// Add, Sub, Mul and Div keep Int⊕Int as Int and widen to Float as soon as
// either side is a Float.
func Add(x, y Literal) (Literal, error) { return add.apply(x, y) }
func Sub(x, y Literal) (Literal, error) { return sub.apply(x, y) }
func Mul(x, y Literal) (Literal, error) { return mul.apply(x, y) }
func Div(x, y Literal) (Literal, error) { return div.apply(x, y) }

// Equal compares two numbers (widening Int to Float when the kinds differ)
// or two booleans.
func Equal(x, y Literal) (bool, error) {
	switch {
	case x.kind == KindBool && y.kind == KindBool:
		return x.b == y.b, nil
	case x.kind == KindInt && y.kind == KindInt:
		return x.i == y.i, nil
	case x.IsNumeric() && y.IsNumeric():
		a, _ := x.AsFloat()
		b, _ := y.AsFloat()
		return a == b, nil
	}
	return false, TypeError{"EQ", []Kind{x.kind, y.kind}}
}

func Less(x, y Literal) (bool, error) {
	return order("LT", x, y, func(a, b float32) bool { return a < b },
		func(a, b int32) bool { return a < b })
}

func Greater(x, y Literal) (bool, error) {
	return order("GT", x, y, func(a, b float32) bool { return a > b },
		func(a, b int32) bool { return a > b })
}

func order(op string, x, y Literal, flts func(a, b float32) bool,
	ints func(a, b int32) bool) (bool, error) {
	switch {
	case x.kind == KindInt && y.kind == KindInt:
		return ints(x.i, y.i), nil
	case x.IsNumeric() && y.IsNumeric():
		a, _ := x.AsFloat()
		b, _ := y.AsFloat()
		return flts(a, b), nil
	}
	return false, TypeError{op, []Kind{x.kind, y.kind}}
}
