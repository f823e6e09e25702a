// Package ast holds the tree the parser builds and the evaluator walks.
package ast

import (
	"fmt"

	"git.sr.ht/~mango/logo/literal"
)

// Program is a complete script
type Program []Statement

// Statement is anything that can appear on its own in a program or a block
type Statement interface {
	fmt.Stringer
	isStatement()
}

// Value is anything that evaluates to a literal.  Values are evaluated anew
// every time they are read.
type Value interface {
	fmt.Stringer
	isValue()
}

// Call invokes a command, query or procedure.  As a Value it is a nested
// call whose result is the callee’s result.
type Call struct {
	Callee Callee
	Args   []Value
}

// Assign is MAKE or ADDASSIGN
type Assign struct {
	Op   AssignOp
	Name string
	Rhs  Value
}

type If struct {
	Cond Value
	Body []Statement
}

type While struct {
	Cond Value
	Body []Statement
}

// ProcDecl declares (or redeclares) a procedure
type ProcDecl struct {
	Name   string
	Params []string
	Body   []Statement
}

// Lit is a literal written in the source
type Lit struct {
	Val literal.Literal
}

// VarRef reads a variable
type VarRef string

// Binary is a prefix binary operation; both operands are always present
type Binary struct {
	Op       BinaryOp
	Lhs, Rhs Value
}

func (_ Call) isStatement()     {}
func (_ Assign) isStatement()   {}
func (_ If) isStatement()       {}
func (_ While) isStatement()    {}
func (_ ProcDecl) isStatement() {}

func (_ Call) isValue()   {}
func (_ Lit) isValue()    {}
func (_ VarRef) isValue() {}
func (_ Binary) isValue() {}
