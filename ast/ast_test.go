package ast

import (
	"testing"

	"git.sr.ht/~mango/logo/literal"
	"gopkg.in/yaml.v3"
)

func lit(i int32) Value { return Lit{literal.Int(i)} }

func TestString(t *testing.T) {
	tests := []struct {
		node Statement
		want string
	}{
		{
			Call{CommandCallee(Forward), []Value{lit(10)}},
			`FORWARD "10`,
		},
		{
			Call{CommandCallee(PenUp), nil},
			"PENUP",
		},
		{
			Assign{AssignAdd, "i", Binary{OpMul, VarRef("x"), Lit{literal.Float(1.5)}}},
			`ADDASSIGN "i * :x "1.5`,
		},
		{
			If{Binary{OpEq, Call{QueryCallee(XCor), nil}, lit(1)}, []Statement{
				Call{ProcCallee("BOX"), []Value{Lit{literal.Bool(true)}}},
			}},
			"IF EQ XCOR \"1 [\n\tBOX \"TRUE\n]",
		},
		{
			ProcDecl{"BOX", []string{"a", "b"}, []Statement{
				While{VarRef("a"), []Statement{Call{CommandCallee(PenDown), nil}}},
			}},
			"TO BOX :a :b\n\tWHILE :a [\n\t\tPENDOWN\n\t]\nEND",
		},
	}

	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Fatalf("Expected ‘%s’ but got ‘%s’", tt.want, got)
		}
	}
}

func TestLookup(t *testing.T) {
	for i, s := range commandNames {
		if c, ok := LookupCommand(s); !ok || c != Command(i) {
			t.Fatalf("Expected ‘%s’ to look up as command %d", s, i)
		}
	}
	if _, ok := LookupCommand("forward"); ok {
		t.Fatalf("Command lookup must be case-sensitive")
	}
	if q, ok := LookupQuery("HEADING"); !ok || q != Heading {
		t.Fatalf("Expected HEADING to look up as a query")
	}
	if op, ok := LookupBinaryOp("/"); !ok || op != OpDiv {
		t.Fatalf("Expected ‘/’ to look up as OpDiv")
	}
	if PenDown.Arity() != 0 || SetY.Arity() != 1 {
		t.Fatalf("Unexpected command arity")
	}
}

func TestMarshalYAML(t *testing.T) {
	prog := Program{
		Call{CommandCallee(Forward), []Value{Binary{OpAdd, lit(1), VarRef("x")}}},
	}

	b, err := yaml.Marshal(prog)
	if err != nil {
		t.Fatal(err)
	}

	var got []struct {
		Call string `yaml:"call"`
		Kind string `yaml:"kind"`
		Args []struct {
			Op  string            `yaml:"op"`
			Lhs map[string]string `yaml:"lhs"`
			Rhs map[string]string `yaml:"rhs"`
		} `yaml:"args"`
	}
	if err := yaml.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 || got[0].Call != "FORWARD" || got[0].Kind != "command" {
		t.Fatalf("Unexpected document:\n%s", b)
	}
	a := got[0].Args[0]
	if a.Op != "+" || a.Lhs["literal"] != "1" || a.Lhs["kind"] != "Int" ||
		a.Rhs["var"] != "x" {
		t.Fatalf("Unexpected argument in document:\n%s", b)
	}
}
