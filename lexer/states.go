package lexer

import "strings"

type lexFn func(*lexer) lexFn

func lexLine(l *lexer) lexFn {
	for l.line < len(l.lines) {
		s := strings.TrimSpace(l.lines[l.line])
		l.line++
		if s == "" || strings.HasPrefix(s, CommentPrefix) {
			continue
		}

		l.input, l.start, l.pos, l.width = s, 0, 0, 0
		return lexSpace
	}

	l.emit(TokEof)
	return nil
}

func lexSpace(l *lexer) lexFn {
	for {
		switch r := l.peek(); {
		case r == eof:
			l.emit(TokEndStmt)
			return lexLine
		case isSpace(r):
			l.next()
		default:
			l.start = l.pos
			return lexWord
		}
	}
}

func lexWord(l *lexer) lexFn {
	for {
		if r := l.next(); r == eof || isSpace(r) {
			l.backup()
			l.emitWord()
			return lexSpace
		}
	}
}
