package ast

type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpGt
	OpLt
	OpAnd
	OpOr
)

var binaryOpNames = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpEq:  "EQ",
	OpNe:  "NE",
	OpGt:  "GT",
	OpLt:  "LT",
	OpAnd: "AND",
	OpOr:  "OR",
}

func (op BinaryOp) String() string { return binaryOpNames[op] }

// IsLogical reports whether op yields a Bool.
func (op BinaryOp) IsLogical() bool { return op >= OpEq }

func LookupBinaryOp(name string) (BinaryOp, bool) {
	for i, s := range binaryOpNames {
		if s == name {
			return BinaryOp(i), true
		}
	}
	return 0, false
}

type AssignOp int

const (
	AssignMake AssignOp = iota
	AssignAdd
)

func (op AssignOp) String() string {
	switch op {
	case AssignMake:
		return "MAKE"
	case AssignAdd:
		return "ADDASSIGN"
	}
	panic("unreachable")
}

func LookupAssignOp(name string) (AssignOp, bool) {
	switch name {
	case "MAKE":
		return AssignMake, true
	case "ADDASSIGN":
		return AssignAdd, true
	}
	return 0, false
}
