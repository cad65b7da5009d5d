package parser

import (
	"minic/internal/ast"
	"minic/internal/source"
	"minic/internal/token"
)

// parseExpr parses the additive level: term (('+'|'-') term)*.
func (p *Parser) parseExpr() ast.Expr {
	left := p.parseTerm()
	for p.at(token.Plus) || p.at(token.Minus) {
		pos := p.cur.Pos
		op := ast.BinAdd
		if p.cur.Kind == token.Minus {
			op = ast.BinSub
		}
		p.advance()
		left = ast.NewBinOp(pos, op, left, p.parseTerm())
	}
	return left
}

// parseTerm parses the multiplicative level.
func (p *Parser) parseTerm() ast.Expr {
	left := p.parseFactor()
	for p.at(token.Star) || p.at(token.Slash) || p.at(token.Percent) {
		pos := p.cur.Pos
		var op ast.BinOpKind
		switch p.cur.Kind {
		case token.Star:
			op = ast.BinMul
		case token.Slash:
			op = ast.BinDiv
		default:
			op = ast.BinMod
		}
		p.advance()
		left = ast.NewBinOp(pos, op, left, p.parseFactor())
	}
	return left
}

func (p *Parser) parseFactor() ast.Expr {
	if p.at(token.Plus) || p.at(token.Minus) {
		pos := p.cur.Pos
		op := ast.UnPlus
		if p.cur.Kind == token.Minus {
			op = ast.UnMinus
		}
		p.advance()
		return ast.NewUnOp(pos, op, p.parseFactor())
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	pos := p.cur.Pos
	switch p.cur.Kind {
	case token.IntLit:
		return ast.NewIntConst(pos, p.advance().IntVal)
	case token.CharLit:
		return ast.NewCharConst(pos, p.advance().CharVal)
	case token.StringLit:
		return ast.NewStringConst(pos, p.advance().StrVal)
	case token.LParen:
		p.advance()
		e := p.parseExpr()
		p.expect(token.RParen)
		return e
	case token.Ident:
		name := p.advance().Text
		switch p.cur.Kind {
		case token.LParen:
			return p.parseCallTail(pos, name)
		case token.LBracket:
			p.advance()
			idx := p.parseExpr()
			p.expect(token.RBracket)
			return ast.NewArrayAccess(pos, name, idx)
		default:
			return ast.NewId(pos, name)
		}
	default:
		p.errorf(pos, "unexpected %s in expression", p.cur.Kind)
		p.advance()
		return ast.NewIntConst(pos, 0)
	}
}

func (p *Parser) parseCallTail(pos source.Position, name string) *ast.FuncCall {
	p.expect(token.LParen)
	var args []ast.Expr
	if !p.at(token.RParen) {
		args = append(args, p.parseExpr())
		for p.at(token.Comma) {
			p.advance()
			args = append(args, p.parseExpr())
		}
	}
	p.expect(token.RParen)
	return ast.NewFuncCall(pos, name, args)
}

// parseCond parses a condition at the lowest ('|') precedence.
// & binds tighter than |, ! binds tightest, matching the usual
// boolean-operator precedence; a condition atom other than true/false
// is always a single comparison, so parenthesizing a sub-condition is
// not part of the grammar — '(' inside a condition only ever opens a
// grouped arithmetic expression on one side of a comparison.
func (p *Parser) parseCond() ast.Cond {
	left := p.parseCondAnd()
	for p.at(token.Pipe) {
		pos := p.advance().Pos
		left = ast.NewCondBoolOp(pos, ast.BoolOr, left, p.parseCondAnd())
	}
	return left
}

func (p *Parser) parseCondAnd() ast.Cond {
	left := p.parseCondNot()
	for p.at(token.Amp) {
		pos := p.advance().Pos
		left = ast.NewCondBoolOp(pos, ast.BoolAnd, left, p.parseCondNot())
	}
	return left
}

func (p *Parser) parseCondNot() ast.Cond {
	if p.at(token.Bang) {
		pos := p.advance().Pos
		return ast.NewCondUnOp(pos, p.parseCondNot())
	}
	return p.parseCondAtom()
}

func (p *Parser) parseCondAtom() ast.Cond {
	pos := p.cur.Pos
	switch p.cur.Kind {
	case token.KwTrue:
		p.advance()
		return ast.NewBoolConst(pos, true)
	case token.KwFalse:
		p.advance()
		return ast.NewBoolConst(pos, false)
	default:
		left := p.parseExpr()
		op := p.parseCompareOp()
		right := p.parseExpr()
		return ast.NewCondCompOp(pos, op, left, right)
	}
}

func (p *Parser) parseCompareOp() ast.CompareOp {
	switch p.cur.Kind {
	case token.Eq:
		p.advance()
		return ast.CmpEq
	case token.Neq:
		p.advance()
		return ast.CmpNeq
	case token.Lt:
		p.advance()
		return ast.CmpLt
	case token.Le:
		p.advance()
		return ast.CmpLe
	case token.Gt:
		p.advance()
		return ast.CmpGt
	case token.Ge:
		p.advance()
		return ast.CmpGe
	default:
		p.errorf(p.cur.Pos, "expected a comparison operator, got %s", p.cur.Kind)
		return ast.CmpEq
	}
}
