// Package literal implements the runtime values of the language: 32-bit
// integers, 32-bit floats and booleans.
package literal

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	}
	panic("unreachable")
}

// Literal is an immutable tagged value.  The zero value is Int(0).
type Literal struct {
	kind Kind
	i    int32
	f    float32
	b    bool
}

func Int(i int32) Literal     { return Literal{kind: KindInt, i: i} }
func Float(f float32) Literal { return Literal{kind: KindFloat, f: f} }
func Bool(b bool) Literal     { return Literal{kind: KindBool, b: b} }

func (l Literal) Kind() Kind { return l.kind }

// Parse reads s as an Int, failing that as a Float, failing that as a
// case-insensitive Bool.
func Parse(s string) (Literal, bool) {
	if i, err := strconv.ParseInt(s, 10, 32); err == nil {
		return Int(int32(i)), true
	}
	if !isHex(s) {
		// Out of range values saturate to ±Inf rather than failing
		f, err := strconv.ParseFloat(s, 32)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return Float(float32(f)), true
		}
	}
	switch strings.ToLower(s) {
	case "true":
		return Bool(true), true
	case "false":
		return Bool(false), true
	}
	return Literal{}, false
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// AsFloat returns the numeric value of l, widening integers.
func (l Literal) AsFloat() (float32, bool) {
	switch l.kind {
	case KindInt:
		return float32(l.i), true
	case KindFloat:
		return l.f, true
	}
	return 0, false
}

// AsInt returns the integer value of l.  Floats are accepted only when
// they hold an integral value.
func (l Literal) AsInt() (int32, bool) {
	switch l.kind {
	case KindInt:
		return l.i, true
	case KindFloat:
		f := float64(l.f)
		if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
			return 0, false
		}
		if i := int32(f); float64(i) == f {
			return i, true
		}
	}
	return 0, false
}

func (l Literal) AsBool() (bool, bool) {
	if l.kind != KindBool {
		return false, false
	}
	return l.b, true
}

func (l Literal) IsNumeric() bool {
	return l.kind == KindInt || l.kind == KindFloat
}

func (l Literal) String() string {
	switch l.kind {
	case KindInt:
		return strconv.FormatInt(int64(l.i), 10)
	case KindFloat:
		return strconv.FormatFloat(float64(l.f), 'g', -1, 32)
	case KindBool:
		if l.b {
			return "TRUE"
		}
		return "FALSE"
	}
	panic("unreachable")
}
