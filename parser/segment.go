package parser

import (
	"git.sr.ht/~mango/logo/lexer"
	"git.sr.ht/~mango/logo/pkg/stack"
)

// split groups toks into one token slice per statement.  Statement
// separators are removed; those inside bracketed blocks are kept so that the
// block can be split again when its body is parsed.
func split(toks []lexer.Token) ([][]lexer.Token, error) {
	var groups [][]lexer.Token

	for i := 0; i < len(toks); {
		var n int
		var err error

		switch t := toks[i]; {
		case t.Kind == lexer.TokEof:
			return groups, nil
		case t.Kind == lexer.TokEndStmt:
			i++
			continue
		case t.Is(lexer.TokKeyword, "IF", "WHILE"):
			n, err = splitBlock(toks[i:])
		case t.Is(lexer.TokKeyword, "TO"):
			n, err = splitProc(toks[i:])
		default:
			n = splitLine(toks[i:])
		}

		if err != nil {
			return nil, err
		}

		g := toks[i : i+n]
		if k := g[len(g)-1].Kind; k == lexer.TokEndStmt || k == lexer.TokEof {
			g = g[:len(g)-1]
		}
		groups = append(groups, g)
		i += n
	}

	return groups, nil
}

// splitLine returns the length of the statement at the start of toks
// including its terminating separator.
func splitLine(toks []lexer.Token) int {
	for i, t := range toks {
		if t.Kind == lexer.TokEndStmt || t.Kind == lexer.TokEof {
			return i + 1
		}
	}
	return len(toks)
}

// splitBlock handles IF and WHILE: a condition up to the first ‘[’ and a
// body up to the matching ‘]’.  The condition may span lines.
func splitBlock(toks []lexer.Token) (int, error) {
	i := 1
	for ; toks[i-1].Kind != lexer.TokBracketOpen; i++ {
		if i == len(toks) {
			return 0, expected("‘[’", lexer.Token{
				Kind: lexer.TokEof,
				Line: toks[i-1].Line,
			})
		}
		if toks[i].Kind == lexer.TokEof {
			return 0, expected("‘[’", toks[i])
		}
	}

	open := stack.New[lexer.Token](4)
	open.Push(toks[i-1])
	for ; open.Len() > 0; i++ {
		if i == len(toks) || toks[i].Kind == lexer.TokEof {
			return 0, errorf(open.Peek().Line, "‘[’ is never closed")
		}
		switch toks[i].Kind {
		case lexer.TokBracketOpen:
			open.Push(toks[i])
		case lexer.TokBracketClose:
			open.Pop()
		}
	}

	return dropSeparator(toks, i), nil
}

// splitProc handles TO … END.
func splitProc(toks []lexer.Token) (int, error) {
	for i := 1; i < len(toks); i++ {
		switch t := toks[i]; {
		case t.Is(lexer.TokKeyword, "END"):
			return dropSeparator(toks, i+1), nil
		case t.Is(lexer.TokKeyword, "TO"):
			return 0, errorf(t.Line, "‘TO’ on line %d has no matching ‘END’",
				toks[0].Line)
		case t.Kind == lexer.TokEof:
			return 0, errorf(toks[0].Line, "‘TO’ has no matching ‘END’")
		}
	}
	return 0, errorf(toks[0].Line, "‘TO’ has no matching ‘END’")
}

// dropSeparator extends a group of length n over the separator directly
// after it, if there is one.
func dropSeparator(toks []lexer.Token, n int) int {
	if n < len(toks) && toks[n].Kind == lexer.TokEndStmt {
		return n + 1
	}
	return n
}
