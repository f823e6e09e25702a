// Package lexer turns Logo source text into a stream of tokens.  Lexing is
// line oriented: blank lines and comment lines are skipped, every other line
// is split on ASCII whitespace and terminated by a TokEndStmt.
package lexer

import (
	"strings"
	"unicode/utf8"

	"git.sr.ht/~mango/logo/literal"
	"git.sr.ht/~mango/logo/pkg/stringsx"
)

const eof rune = -1

type lexer struct {
	lines []string   // The source lines left to lex
	line  int        // The 1-based number of the current line
	input string     // The current line, trimmed
	start int        // The start of the current token in input
	pos   int        // The pos of the cursor in input
	width int        // Width of the last rune lexed
	Out   chan Token // Token output channel
}

func New(input string) *lexer {
	return &lexer{
		lines: stringsx.Lines(input),
		Out:   make(chan Token),
	}
}

func (l *lexer) Run() {
	for state := lexLine; state != nil; {
		state = state(l)
	}
	close(l.Out)
}

// Tokens lexes input to completion.  The final token is always TokEof.
func Tokens(input string) []Token {
	l := New(input)
	go l.Run()

	var toks []Token
	for t := range l.Out {
		toks = append(toks, t)
	}
	return toks
}

func (l *lexer) emit(t TokenType) {
	l.Out <- Token{Kind: t, Line: l.line}
	l.start = l.pos
}

func (l *lexer) emitWord() {
	w := l.input[l.start:l.pos]
	l.Out <- classify(w, l.line)
	l.start = l.pos
}

func classify(w string, line int) Token {
	t := Token{Val: w, Line: line}

	if k, ok := names[w]; ok {
		t.Kind = k
		return t
	}

	switch {
	case strings.HasPrefix(w, ":"):
		t.Kind, t.Val = TokVarRef, w[1:]
	case strings.HasPrefix(w, `"`):
		// A quoted word that is not a value names a variable
		if lit, ok := literal.Parse(w[1:]); ok {
			t.Kind, t.Val, t.Lit = TokLiteral, w[1:], lit
		} else {
			t.Kind, t.Val = TokVarRef, w[1:]
		}
	default:
		if k, ok := structural[w]; ok {
			t.Kind = k
		} else {
			t.Kind = TokIdent
		}
	}
	return t
}

func (l *lexer) next() rune {
	var r rune

	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}
