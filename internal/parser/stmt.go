package parser

import (
	"minic/internal/ast"
	"minic/internal/token"
)

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Kind {
	case token.Semicolon:
		return ast.NewEmpty(p.advance().Pos)
	case token.LBrace:
		return p.parseCompound()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwReturn:
		return p.parseReturn()
	case token.Ident:
		return p.parseAssignOrCall()
	default:
		p.errorf(p.cur.Pos, "unexpected %s at start of statement", p.cur.Kind)
		p.resyncStmt()
		return ast.NewEmpty(p.cur.Pos)
	}
}

func (p *Parser) parseCompound() *ast.StmtList {
	pos := p.expect(token.LBrace).Pos
	list := ast.NewStmtList(pos)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		list.Append(p.parseStmt())
	}
	p.expect(token.RBrace)
	return list
}

func (p *Parser) parseIf() ast.Stmt {
	pos := p.expect(token.KwIf).Pos
	cond := p.parseCond()
	p.expect(token.KwThen)
	then := p.parseStmt()
	var els ast.Stmt
	if p.at(token.KwElse) {
		p.advance()
		els = p.parseStmt()
	}
	return ast.NewIf(pos, cond, then, els)
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.expect(token.KwWhile).Pos
	cond := p.parseCond()
	p.expect(token.KwDo)
	body := p.parseStmt()
	return ast.NewWhile(pos, cond, body)
}

func (p *Parser) parseReturn() ast.Stmt {
	pos := p.expect(token.KwReturn).Pos
	var e ast.Expr
	if !p.at(token.Semicolon) {
		e = p.parseExpr()
	}
	p.expect(token.Semicolon)
	return ast.NewReturn(pos, e)
}

// parseAssignOrCall handles the three statement forms that begin with
// a bare identifier: "id <- expr;", "id[expr] <- expr;", and
// "id(args);" (a call used for its side effect).
func (p *Parser) parseAssignOrCall() ast.Stmt {
	pos := p.cur.Pos
	name := p.expect(token.Ident).Text
	switch p.cur.Kind {
	case token.LParen:
		call := p.parseCallTail(pos, name)
		p.expect(token.Semicolon)
		return ast.NewProcCall(pos, call)
	case token.LBracket:
		p.advance()
		idx := p.parseExpr()
		p.expect(token.RBracket)
		p.expect(token.Assign)
		rhs := p.parseExpr()
		p.expect(token.Semicolon)
		return ast.NewLet(pos, ast.NewArrayAccess(pos, name, idx), rhs)
	case token.Assign:
		p.advance()
		rhs := p.parseExpr()
		p.expect(token.Semicolon)
		return ast.NewLet(pos, ast.NewId(pos, name), rhs)
	default:
		p.errorf(p.cur.Pos, "expected '(', '[', or '<-' after %q", name)
		p.resyncStmt()
		return ast.NewEmpty(pos)
	}
}
