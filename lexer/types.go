package lexer

// CommentPrefix starts a line that is ignored entirely.
const CommentPrefix = "//"

var names = map[string]TokenType{
	"PENUP":       TokCommand,
	"PENDOWN":     TokCommand,
	"FORWARD":     TokCommand,
	"BACK":        TokCommand,
	"LEFT":        TokCommand,
	"RIGHT":       TokCommand,
	"SETPENCOLOR": TokCommand,
	"TURN":        TokCommand,
	"SETHEADING":  TokCommand,
	"SETX":        TokCommand,
	"SETY":        TokCommand,

	"XCOR":    TokQuery,
	"YCOR":    TokQuery,
	"HEADING": TokQuery,
	"COLOR":   TokQuery,

	"MAKE":      TokAssign,
	"ADDASSIGN": TokAssign,

	"IF":    TokKeyword,
	"WHILE": TokKeyword,
	"TO":    TokKeyword,
	"END":   TokKeyword,

	"EQ":  TokOperator,
	"NE":  TokOperator,
	"GT":  TokOperator,
	"LT":  TokOperator,
	"AND": TokOperator,
	"OR":  TokOperator,
}

var structural = map[string]TokenType{
	"[": TokBracketOpen,
	"]": TokBracketClose,
	"+": TokOperator,
	"-": TokOperator,
	"*": TokOperator,
	"/": TokOperator,
}

// Names returns every reserved name of kind k.
func Names(k TokenType) []string {
	var xs []string
	for n, kind := range names {
		if kind == k {
			xs = append(xs, n)
		}
	}
	for n, kind := range structural {
		if kind == k {
			xs = append(xs, n)
		}
	}
	return xs
}

func isSpace(r rune) bool {
	return r == ' ' ||
		r == '\t' ||
		r == '\n' ||
		r == '\f' ||
		r == '\r'
}
