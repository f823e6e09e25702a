// Package parser turns a token stream into an ast.Program.  Statements are
// first grouped by the segmenter and each group is then parsed on its own
// with one token of lookahead.
package parser

import (
	"git.sr.ht/~mango/logo/ast"
	"git.sr.ht/~mango/logo/lexer"
)

type parser struct {
	toks  []lexer.Token
	pos   int
	end   lexer.Token         // Returned once toks is exhausted
	procs map[string]struct{} // Procedures declared so far
}

// Parse lexes and parses src.  The error, if any, is a *SyntaxError.
func Parse(src string) (ast.Program, error) {
	return ParseTokens(lexer.Tokens(src))
}

// ParseTokens parses an already lexed script.
func ParseTokens(toks []lexer.Token) (ast.Program, error) {
	p := parser{procs: make(map[string]struct{})}
	body, err := p.parseBlock(toks)
	if err != nil {
		return nil, err
	}
	return ast.Program(body), nil
}

// sub returns a parser over the tokens of one group.
func (p *parser) sub(toks []lexer.Token, end lexer.Token) *parser {
	return &parser{toks: toks, end: end, procs: p.procs}
}

func (p *parser) next() lexer.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) peek() lexer.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return p.end
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) declared(name string) bool {
	_, ok := p.procs[name]
	return ok
}

// endOf returns the token reported when a group ends prematurely.
func endOf(g []lexer.Token) lexer.Token {
	return lexer.Token{Kind: lexer.TokEndStmt, Line: g[len(g)-1].Line}
}
