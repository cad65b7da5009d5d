// Package parser is a hand-written recursive-descent parser producing
// exactly the internal/ast shape from a internal/token stream. It sits
// below the AST contract named in spec.md §3 and is swappable without
// touching internal/sem or internal/codegen.
package parser

import (
	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/lexer"
	"minic/internal/source"
	"minic/internal/token"
	"minic/internal/types"
)

// Parser holds one file's parse state: a single-token lookahead cursor
// over the lexer's stream and the diagnostic sink syntax errors go to.
type Parser struct {
	lx   *lexer.Lexer
	file string
	bag  *diag.Bag
	cur  token.Token
}

// ParseFile lexes and parses src, returning the top-level function.
// Syntax errors are appended to bag; the returned tree may be partial
// or contain placeholder nodes when errors occurred, matching sem's
// contract of running only after bag.HasErrors() is checked by the
// caller (spec.md §7's early-abort policy).
func ParseFile(file string, src []byte, bag *diag.Bag) *ast.FuncDef {
	lx := lexer.New(file, src, bag)
	p := &Parser{lx: lx, file: file, bag: bag}
	p.cur = p.lx.Next()

	top := p.parseFuncDef()
	if !p.at(token.EOF) {
		p.errorf(p.cur.Pos, "unexpected %s after top-level function", p.cur.Kind)
	}
	return top
}

func (p *Parser) advance() token.Token {
	t := p.cur
	p.cur = p.lx.Next()
	return t
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

// expect consumes the current token, reporting a syntax error first if
// its kind does not match k. It always advances, guaranteeing forward
// progress even on a mismatch.
func (p *Parser) expect(k token.Kind) token.Token {
	if !p.at(k) {
		p.errorf(p.cur.Pos, "expected %s, got %s", k, p.cur.Kind)
	}
	return p.advance()
}

func (p *Parser) errorf(pos source.Position, format string, args ...any) {
	p.bag.Add(diag.Errorf(diag.CodeSyntaxError, p.file, pos, format, args...))
}

// resyncStmt discards tokens up to and including the next semicolon,
// or up to (not including) the block's closing brace, so one malformed
// statement does not cascade into every statement after it.
func (p *Parser) resyncStmt() {
	for !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		p.advance()
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func (p *Parser) parseFuncDef() *ast.FuncDef {
	pos := p.expect(token.KwFun).Pos
	name := p.expect(token.Ident).Text
	p.expect(token.LParen)
	var fpars []*ast.Fpar
	if !p.at(token.RParen) {
		fpars = p.parseFparList()
	}
	p.expect(token.RParen)
	p.expect(token.Colon)
	ret := p.parseRetType()
	locals, body := p.parseFuncBody()
	return ast.NewFuncDef(pos, name, ret, fpars, locals, body)
}

// parseFuncBody parses "{ (local-def | stmt)* }" — local definitions
// may sit before, between, or after statements; they are collected in
// declaration order, and sem inserts every one of them before
// analyzing any statement (spec.md §4.2).
func (p *Parser) parseFuncBody() ([]ast.Def, ast.Stmt) {
	p.expect(token.LBrace)
	var locals []ast.Def
	body := ast.NewStmtList(p.cur.Pos)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		switch {
		case p.at(token.KwVar):
			locals = append(locals, p.parseVarDef())
		case p.at(token.KwFun):
			locals = append(locals, p.parseFuncDef())
		default:
			body.Append(p.parseStmt())
		}
	}
	p.expect(token.RBrace)
	return locals, body
}

func (p *Parser) parseVarDef() *ast.VarDef {
	pos := p.expect(token.KwVar).Pos
	name := p.expect(token.Ident).Text
	p.expect(token.Colon)
	elem := p.parseScalarType()
	isArray := false
	size := 0
	if p.at(token.LBracket) {
		p.advance()
		size = p.expect(token.IntLit).IntVal
		p.expect(token.RBracket)
		isArray = true
	}
	p.expect(token.Semicolon)
	return ast.NewVarDef(pos, name, elem, isArray, size)
}

func (p *Parser) parseScalarType() types.Type {
	switch p.cur.Kind {
	case token.KwInt:
		p.advance()
		return types.TInt
	case token.KwChar:
		p.advance()
		return types.TChar
	default:
		p.errorf(p.cur.Pos, "expected a type, got %s", p.cur.Kind)
		p.advance()
		return types.TInt
	}
}

func (p *Parser) parseRetType() types.Type {
	if p.at(token.KwNothing) {
		p.advance()
		return types.TVoid
	}
	return p.parseScalarType()
}

func (p *Parser) parseFparList() []*ast.Fpar {
	out := []*ast.Fpar{p.parseFpar()}
	for p.at(token.Comma) {
		p.advance()
		out = append(out, p.parseFpar())
	}
	return out
}

func (p *Parser) parseFpar() *ast.Fpar {
	pos := p.cur.Pos
	mode := ast.ByValue
	if p.at(token.KwRef) {
		p.advance()
		mode = ast.ByReference
	}
	name := p.expect(token.Ident).Text
	p.expect(token.Colon)
	elem := p.parseScalarType()
	t := elem
	if p.at(token.LBracket) {
		p.advance()
		p.expect(token.RBracket) // parameters only ever declare the unknown-size form
		t = types.NewArray(elem, types.UnknownSize)
	}
	return ast.NewFpar(pos, name, t, mode)
}
