package parser

import (
	"fmt"

	"git.sr.ht/~mango/logo/ast"
	"git.sr.ht/~mango/logo/lexer"
	"git.sr.ht/~mango/logo/pkg/suggest"
)

func (p *parser) parseBlock(toks []lexer.Token) ([]ast.Statement, error) {
	groups, err := split(toks)
	if err != nil {
		return nil, err
	}

	var stmts []ast.Statement
	for _, g := range groups {
		s, err := p.sub(g, endOf(g)).parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	switch t := p.peek(); {
	case t.Kind == lexer.TokAssign:
		return p.parseAssign()
	case t.Kind == lexer.TokCommand:
		return p.parseCommand()
	case t.Kind == lexer.TokQuery:
		return p.parseQuery()
	case t.Is(lexer.TokKeyword, "IF", "WHILE"):
		return p.parseCond()
	case t.Is(lexer.TokKeyword, "TO"):
		return p.parseProcDecl()
	case t.Kind == lexer.TokIdent:
		if !p.declared(t.Val) {
			return nil, p.unknownProc(t)
		}
		return p.parseProcCall()
	default:
		return nil, expected("statement", t)
	}
}

func (p *parser) parseAssign() (ast.Statement, error) {
	t := p.next()
	op, _ := ast.LookupAssignOp(t.Val)

	name := p.next()
	if name.Kind != lexer.TokVarRef {
		return nil, expected("variable name after ‘"+t.Val+"’", name)
	}

	rhs, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, expected("end of line after assignment", p.peek())
	}

	return ast.Assign{Op: op, Name: name.Val, Rhs: rhs}, nil
}

func (p *parser) parseCommand() (ast.Statement, error) {
	t := p.next()
	c, _ := ast.LookupCommand(t.Val)

	n := c.Arity()
	var args []ast.Value
	for i := 0; i < n; i++ {
		if p.atEnd() {
			return nil, arityError(t, n, i)
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	if !p.atEnd() {
		return nil, arityError(t, n, n+1)
	}

	return ast.Call{Callee: ast.CommandCallee(c), Args: args}, nil
}

func arityError(t lexer.Token, want, got int) error {
	s := fmt.Sprintf("‘%s’ takes %d argument", t.Val, want)
	if want != 1 {
		s += "s"
	}
	if got > want {
		return errorf(t.Line, "%s but was given more", s)
	}
	return errorf(t.Line, "%s but was given %d", s, got)
}

func (p *parser) parseQuery() (ast.Statement, error) {
	t := p.next()
	q, _ := ast.LookupQuery(t.Val)
	if !p.atEnd() {
		return nil, arityError(t, 0, 1)
	}
	return ast.Call{Callee: ast.QueryCallee(q)}, nil
}

func (p *parser) parseCond() (ast.Statement, error) {
	kw := p.next()

	var i int
	var ctoks []lexer.Token
	for i = p.pos; p.toks[i].Kind != lexer.TokBracketOpen; i++ {
		if p.toks[i].Kind != lexer.TokEndStmt {
			ctoks = append(ctoks, p.toks[i])
		}
	}
	cond, err := p.sub(ctoks, p.toks[i]).parseCondition()
	if err != nil {
		return nil, err
	}

	// The group ends with the ‘]’ matching toks[i]
	body, err := p.parseBlock(p.toks[i+1 : len(p.toks)-1])
	if err != nil {
		return nil, err
	}
	p.pos = len(p.toks)

	if kw.Val == "IF" {
		return ast.If{Cond: cond, Body: body}, nil
	}
	return ast.While{Cond: cond, Body: body}, nil
}

func (p *parser) parseCondition() (ast.Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, expected("‘[’ after condition", p.peek())
	}
	return v, nil
}

func (p *parser) parseProcDecl() (ast.Statement, error) {
	p.next() // Consume ‘TO’

	name := p.next()
	switch name.Kind {
	case lexer.TokIdent, lexer.TokCommand, lexer.TokQuery:
	default:
		return nil, expected("procedure name", name)
	}

	var params []string
	for {
		t := p.next()
		if t.Kind == lexer.TokEndStmt || t.Is(lexer.TokKeyword, "END") {
			if t.Kind == lexer.TokKeyword {
				p.pos--
			}
			break
		}
		if t.Kind != lexer.TokVarRef {
			return nil, expected("parameter name", t)
		}
		params = append(params, t.Val)
	}

	// Declared before the body is parsed so that recursion works
	p.procs[name.Val] = struct{}{}

	body, err := p.parseBlock(p.toks[p.pos : len(p.toks)-1])
	if err != nil {
		return nil, err
	}
	p.pos = len(p.toks)

	return ast.ProcDecl{Name: name.Val, Params: params, Body: body}, nil
}

func (p *parser) parseProcCall() (ast.Statement, error) {
	t := p.next()

	var args []ast.Value
	for !p.atEnd() {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	return ast.Call{Callee: ast.ProcCallee(t.Val), Args: args}, nil
}

// parseValue parses one value.  Operators are prefix and binary, so the
// kind of the next token alone decides what to parse.
func (p *parser) parseValue() (ast.Value, error) {
	switch t := p.next(); t.Kind {
	case lexer.TokLiteral:
		return ast.Lit{Val: t.Lit}, nil
	case lexer.TokVarRef:
		return ast.VarRef(t.Val), nil
	case lexer.TokQuery:
		q, _ := ast.LookupQuery(t.Val)
		return ast.Call{Callee: ast.QueryCallee(q)}, nil
	case lexer.TokCommand:
		c, _ := ast.LookupCommand(t.Val)
		if c.Arity() > 0 {
			return nil, errorf(t.Line, "‘%s’ takes arguments and cannot be used as a value", t.Val)
		}
		return ast.Call{Callee: ast.CommandCallee(c)}, nil
	case lexer.TokIdent:
		if !p.declared(t.Val) {
			return nil, p.unknownProc(t)
		}
		return ast.Call{Callee: ast.ProcCallee(t.Val)}, nil
	case lexer.TokOperator:
		op, _ := ast.LookupBinaryOp(t.Val)
		lhs, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		rhs, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		return ast.Binary{Op: op, Lhs: lhs, Rhs: rhs}, nil
	default:
		return nil, expected("value", t)
	}
}

func (p *parser) unknownProc(t lexer.Token) error {
	cands := make([]string, 0, len(p.procs))
	for name := range p.procs {
		cands = append(cands, name)
	}
	cands = append(cands, lexer.Names(lexer.TokCommand)...)
	cands = append(cands, lexer.Names(lexer.TokQuery)...)

	msg := fmt.Sprintf("unknown procedure %s", t)
	if s := suggest.Closest(t.Val, cands); s != "" {
		msg += fmt.Sprintf("; did you mean ‘%s’?", s)
	}
	return errorf(t.Line, "%s", msg)
}
