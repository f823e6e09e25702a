package lexer

import (
	"fmt"

	"git.sr.ht/~mango/logo/literal"
)

type TokenType int

const (
	TokEof     TokenType = iota // End of input
	TokEndStmt                  // End of a non-empty source line

	TokBracketOpen  // The ‘[’ token
	TokBracketClose // The ‘]’ token

	TokLiteral // A quoted value that parsed as an Int, Float or Bool
	TokVarRef  // A ‘:name’ reference, or a quoted word that is no literal

	TokCommand  // A built-in command such as FORWARD
	TokQuery    // A built-in query such as XCOR
	TokAssign   // MAKE or ADDASSIGN
	TokKeyword  // IF, WHILE, TO or END
	TokOperator // A prefix binary operator

	TokIdent // Anything else; a candidate procedure name
)

// Token is a single lexical unit.  Val holds the name for every kind except
// TokLiteral, where it holds the source text and Lit holds the value.
type Token struct {
	Kind TokenType
	Val  string
	Lit  literal.Literal
	Line int
}

// Maximum length of a name before truncation in diagnostics
const maxStrLen = 20

func (t Token) String() string {
	switch t.Kind {
	case TokEof:
		return "end of file"
	case TokEndStmt:
		return "end of line"
	case TokBracketOpen:
		return "‘[’"
	case TokBracketClose:
		return "‘]’"
	case TokLiteral:
		return fmt.Sprintf("‘\"%s’", truncate(t.Val))
	case TokVarRef:
		return fmt.Sprintf("‘:%s’", truncate(t.Val))
	case TokCommand, TokQuery, TokAssign, TokKeyword, TokOperator, TokIdent:
		return "‘" + truncate(t.Val) + "’"
	}

	panic("unreachable")
}

func truncate(s string) string {
	if len(s) > maxStrLen {
		return fmt.Sprintf("%.*s…", maxStrLen, s)
	}
	return s
}

func (k TokenType) String() string {
	switch k {
	case TokEof:
		return "end of file"
	case TokEndStmt:
		return "end of line"
	case TokBracketOpen:
		return "opening bracket"
	case TokBracketClose:
		return "closing bracket"
	case TokLiteral:
		return "literal"
	case TokVarRef:
		return "variable"
	case TokCommand:
		return "command"
	case TokQuery:
		return "query"
	case TokAssign:
		return "assignment"
	case TokKeyword:
		return "keyword"
	case TokOperator:
		return "operator"
	case TokIdent:
		return "procedure name"
	}
	panic("unreachable")
}

// Is reports whether t is of kind k and, if vals are given, holds one of
// them.
func (t Token) Is(k TokenType, vals ...string) bool {
	if t.Kind != k {
		return false
	}
	if len(vals) == 0 {
		return true
	}
	for _, v := range vals {
		if t.Val == v {
			return true
		}
	}
	return false
}
