package ast

type Command int

const (
	PenUp Command = iota
	PenDown
	Forward
	Back
	Left
	Right
	SetPenColor
	Turn
	SetHeading
	SetX
	SetY
)

var commandNames = [...]string{
	PenUp:       "PENUP",
	PenDown:     "PENDOWN",
	Forward:     "FORWARD",
	Back:        "BACK",
	Left:        "LEFT",
	Right:       "RIGHT",
	SetPenColor: "SETPENCOLOR",
	Turn:        "TURN",
	SetHeading:  "SETHEADING",
	SetX:        "SETX",
	SetY:        "SETY",
}

func (c Command) String() string { return commandNames[c] }

// Arity returns the exact number of arguments c takes.
func (c Command) Arity() int {
	if c == PenUp || c == PenDown {
		return 0
	}
	return 1
}

type Query int

const (
	XCor Query = iota
	YCor
	Heading
	Color
)

var queryNames = [...]string{
	XCor:    "XCOR",
	YCor:    "YCOR",
	Heading: "HEADING",
	Color:   "COLOR",
}

func (q Query) String() string { return queryNames[q] }

// LookupCommand returns the command spelled name.
func LookupCommand(name string) (Command, bool) {
	for i, s := range commandNames {
		if s == name {
			return Command(i), true
		}
	}
	return 0, false
}

// LookupQuery returns the query spelled name.
func LookupQuery(name string) (Query, bool) {
	for i, s := range queryNames {
		if s == name {
			return Query(i), true
		}
	}
	return 0, false
}

type CalleeKind int

const (
	CalleeCommand CalleeKind = iota
	CalleeQuery
	CalleeProc
)

func (k CalleeKind) String() string {
	switch k {
	case CalleeCommand:
		return "command"
	case CalleeQuery:
		return "query"
	case CalleeProc:
		return "procedure"
	}
	panic("unreachable")
}

// Callee identifies what a Call invokes.  Only the field matching Kind is
// meaningful.
type Callee struct {
	Kind    CalleeKind
	Command Command
	Query   Query
	Proc    string
}

func CommandCallee(c Command) Callee { return Callee{Kind: CalleeCommand, Command: c} }
func QueryCallee(q Query) Callee     { return Callee{Kind: CalleeQuery, Query: q} }
func ProcCallee(name string) Callee  { return Callee{Kind: CalleeProc, Proc: name} }

// Name returns the name the callee is registered under.
func (c Callee) Name() string {
	switch c.Kind {
	case CalleeCommand:
		return c.Command.String()
	case CalleeQuery:
		return c.Query.String()
	}
	return c.Proc
}
