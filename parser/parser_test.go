package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"git.sr.ht/~mango/logo/ast"
	"git.sr.ht/~mango/logo/literal"
)

func mustParse(t *testing.T, src string) ast.Program {
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Failed to parse ‘%s’: %s", src, err)
	}
	return prog
}

func assertSyntaxError(t *testing.T, src, substr string) {
	_, err := Parse(src)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Expected a syntax error parsing ‘%s’ but got ‘%v’", src, err)
	}
	if !strings.Contains(se.Msg, substr) {
		t.Fatalf("Expected error containing ‘%s’ but got ‘%s’", substr, se.Msg)
	}
}

func lit(i int32) ast.Value { return ast.Lit{Val: literal.Int(i)} }

func TestNestedBinary(t *testing.T) {
	prog := mustParse(t, `MAKE "x EQ EQ "10 "10 EQ "10 "10`)
	want := ast.Program{ast.Assign{
		Op:   ast.AssignMake,
		Name: "x",
		Rhs: ast.Binary{
			Op:  ast.OpEq,
			Lhs: ast.Binary{Op: ast.OpEq, Lhs: lit(10), Rhs: lit(10)},
			Rhs: ast.Binary{Op: ast.OpEq, Lhs: lit(10), Rhs: lit(10)},
		},
	}}

	if !reflect.DeepEqual(prog, want) {
		t.Fatalf("Expected ‘%s’ but got ‘%s’", want, prog)
	}
}

func TestDeterministic(t *testing.T) {
	src := `
	TO BOX :len
		FORWARD :len
		IF GT :len "1 [
			BOX / :len "2
		]
	END
	MAKE "i "0
	WHILE LT :i "4 [
		BOX "100
		ADDASSIGN "i "1
	]`

	if a, b := mustParse(t, src), mustParse(t, src); !reflect.DeepEqual(a, b) {
		t.Fatalf("Expected equal programs but got\n%s\nand\n%s", a, b)
	}
}

func TestArity(t *testing.T) {
	assertSyntaxError(t, `PENUP "1`, "takes 0 arguments")
	assertSyntaxError(t, "FORWARD", "takes 1 argument but was given 0")
	assertSyntaxError(t, `FORWARD "1 "2`, "was given more")
	assertSyntaxError(t, `XCOR "1`, "takes 0 arguments")
	assertSyntaxError(t, `FORWARD SETX "1`, "cannot be used as a value")
}

func TestBlocks(t *testing.T) {
	prog := mustParse(t, `
	IF EQ "1 "1 [
		PENDOWN
		WHILE "FALSE [ ]
		FORWARD "5
	]
	IF "TRUE [ BACK "2 ]
	PENUP`)

	if len(prog) != 3 {
		t.Fatalf("Expected 3 statements but got %d:\n%s", len(prog), prog)
	}
	i, ok := prog[0].(ast.If)
	if !ok {
		t.Fatalf("Expected an If but got ‘%s’", prog[0])
	}
	if len(i.Body) != 3 {
		t.Fatalf("Expected 3 statements in body but got %d", len(i.Body))
	}
	if w, ok := i.Body[1].(ast.While); !ok || len(w.Body) != 0 {
		t.Fatalf("Expected an empty While but got ‘%s’", i.Body[1])
	}
	if s := prog[1].String(); s != "IF \"TRUE [\n\tBACK \"2\n]" {
		t.Fatalf("Unexpected one-line block ‘%s’", s)
	}
}

func TestBracketOnNextLine(t *testing.T) {
	prog := mustParse(t, "MAKE \"x \"1\nIF EQ :x \"1\n[\n\tFORWARD \"10\n]\n"+
		"WHILE EQ\n:x \"2\n[ PENDOWN ]")
	want := ast.Program{
		ast.Assign{Op: ast.AssignMake, Name: "x", Rhs: lit(1)},
		ast.If{
			Cond: ast.Binary{Op: ast.OpEq, Lhs: ast.VarRef("x"), Rhs: lit(1)},
			Body: []ast.Statement{ast.Call{
				Callee: ast.CommandCallee(ast.Forward),
				Args:   []ast.Value{lit(10)},
			}},
		},
		ast.While{
			Cond: ast.Binary{Op: ast.OpEq, Lhs: ast.VarRef("x"), Rhs: lit(2)},
			Body: []ast.Statement{ast.Call{Callee: ast.CommandCallee(ast.PenDown)}},
		},
	}
	if !reflect.DeepEqual(prog, want) {
		t.Fatalf("Expected ‘%s’ but got ‘%s’", want, prog)
	}
}

func TestBlockErrors(t *testing.T) {
	assertSyntaxError(t, "IF TRUE [\nPENDOWN", "never closed")
	assertSyntaxError(t, "WHILE \"TRUE\nPENDOWN", "expected ‘[’")
	assertSyntaxError(t, "IF \"1 \"2 [ ]", "after condition")
	assertSyntaxError(t, "IF [ ]", "expected value")
	assertSyntaxError(t, "]", "expected statement")
	assertSyntaxError(t, "TO A\nPENDOWN", "no matching ‘END’")
	assertSyntaxError(t, "TO A\nTO B\nEND", "no matching ‘END’")
	assertSyntaxError(t, `MAKE "x "1 "2`, "after assignment")
	assertSyntaxError(t, `MAKE "1 "2`, "variable name")
}

func TestProcedures(t *testing.T) {
	prog := mustParse(t, `
	TO NOP END
	TO LINE :a "b
		FORWARD + :a :b
		LINE :a
	END
	LINE "1 "2 "3
	NOP`)

	want := ast.Program{
		ast.ProcDecl{Name: "NOP"},
		ast.ProcDecl{
			Name:   "LINE",
			Params: []string{"a", "b"},
			Body: []ast.Statement{
				ast.Call{
					Callee: ast.CommandCallee(ast.Forward),
					Args: []ast.Value{
						ast.Binary{Op: ast.OpAdd, Lhs: ast.VarRef("a"), Rhs: ast.VarRef("b")},
					},
				},
				ast.Call{Callee: ast.ProcCallee("LINE"), Args: []ast.Value{ast.VarRef("a")}},
			},
		},
		ast.Call{Callee: ast.ProcCallee("LINE"), Args: []ast.Value{lit(1), lit(2), lit(3)}},
		ast.Call{Callee: ast.ProcCallee("NOP")},
	}

	if !reflect.DeepEqual(prog, want) {
		t.Fatalf("Expected\n%s\nbut got\n%s", want, prog)
	}
}

func TestUnknownProcedure(t *testing.T) {
	assertSyntaxError(t, "TO BOX\nEND\nBOXX", "did you mean ‘BOX’?")
	assertSyntaxError(t, "forward \"10", "did you mean ‘FORWARD’?")
	assertSyntaxError(t, "BOX\nTO BOX\nEND", "unknown procedure ‘BOX’")
}

func TestValuePosition(t *testing.T) {
	prog := mustParse(t, "TO P END\nSETX + XCOR P\nSETY PENUP")
	want := ast.Program{
		ast.ProcDecl{Name: "P"},
		ast.Call{
			Callee: ast.CommandCallee(ast.SetX),
			Args: []ast.Value{ast.Binary{
				Op:  ast.OpAdd,
				Lhs: ast.Call{Callee: ast.QueryCallee(ast.XCor)},
				Rhs: ast.Call{Callee: ast.ProcCallee("P")},
			}},
		},
		ast.Call{
			Callee: ast.CommandCallee(ast.SetY),
			Args:   []ast.Value{ast.Call{Callee: ast.CommandCallee(ast.PenUp)}},
		},
	}

	if !reflect.DeepEqual(prog, want) {
		t.Fatalf("Expected\n%s\nbut got\n%s", want, prog)
	}
}

func TestSyntaxErrorLine(t *testing.T) {
	_, err := Parse("PENDOWN\n\n// comment\nFORWARD")
	var se *SyntaxError
	if !errors.As(err, &se) || se.Line != 4 {
		t.Fatalf("Expected a syntax error on line 4 but got ‘%v’", err)
	}
}

func TestEmpty(t *testing.T) {
	if prog := mustParse(t, "\n// nothing\n"); len(prog) != 0 {
		t.Fatalf("Expected no statements but got %d", len(prog))
	}
}
