package parser

import (
	"fmt"

	"git.sr.ht/~mango/logo/lexer"
)

// SyntaxError is returned for any script that does not parse.  Line is the
// 1-based source line the error was detected on.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error on line %d: %s", e.Line, e.Msg)
	}
	return "syntax error: " + e.Msg
}

type errExpected struct {
	want string
	got  lexer.Token
}

func (e errExpected) Error() string {
	return fmt.Sprintf("expected %s but got %s", e.want, e.got)
}

func expected(want string, got lexer.Token) error {
	return &SyntaxError{Line: got.Line, Msg: errExpected{want, got}.Error()}
}

func errorf(line int, format string, args ...any) error {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
