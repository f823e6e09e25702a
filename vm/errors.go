package vm

import (
	"fmt"

	"git.sr.ht/~mango/logo/literal"
)

// TypeError reports an operator or condition applied to values of the
// wrong kind.
type TypeError = literal.TypeError

type UndefinedVariableError struct {
	Name       string
	Suggestion string
}

func (e UndefinedVariableError) Error() string {
	s := fmt.Sprintf("variable ‘%s’ is not defined", e.Name)
	if e.Suggestion != "" {
		s += fmt.Sprintf("; did you mean ‘%s’?", e.Suggestion)
	}
	return s
}

type UndefinedCallableError struct {
	Name       string
	Suggestion string
}

func (e UndefinedCallableError) Error() string {
	s := fmt.Sprintf("‘%s’ is not a command, query or procedure", e.Name)
	if e.Suggestion != "" {
		s += fmt.Sprintf("; did you mean ‘%s’?", e.Suggestion)
	}
	return s
}

// MissingResultError is returned when something that produces no value is
// used as one.
type MissingResultError struct {
	Callee string
}

func (e MissingResultError) Error() string {
	return fmt.Sprintf("‘%s’ does not return a value", e.Callee)
}

type ArgumentError struct {
	Callee string
	Msg    string
}

func (e ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Callee, e.Msg)
}
