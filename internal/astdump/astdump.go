// Package astdump renders a parsed, sem-decorated FuncDef tree for the
// `minic ast` subcommand, either as indented text or as msgpack for
// tooling that wants the tree without linking this compiler in. It
// never runs inside the normal build; it exists purely for inspection,
// the same role the teacher's diagfmt token/AST dumpers play.
package astdump

import (
	"fmt"
	"io"
	"strings"

	"minic/internal/ast"
)

// Node is the flattened, serialization-friendly mirror of one ast.Node.
// msgpack needs concrete struct tags, not the ast package's sealed
// interfaces, so dumping walks the real tree once and rebuilds it here.
type Node struct {
	Kind     string `msgpack:"kind"`
	Name     string `msgpack:"name,omitempty"`
	Type     string `msgpack:"type,omitempty"`
	Value    string `msgpack:"value,omitempty"`
	Line     int    `msgpack:"line"`
	Column   int    `msgpack:"column"`
	Children []Node `msgpack:"children,omitempty"`
}

// FromFuncDef walks f (and its nested locals, recursively) into the
// serializable Node tree.
func FromFuncDef(f *ast.FuncDef) Node {
	n := Node{Kind: "FuncDef", Name: f.Name, Type: f.RetType.String(), Line: f.Position().Line, Column: f.Position().Column}
	for _, p := range f.Fpars {
		mode := "val"
		if p.Mode == ast.ByReference {
			mode = "ref"
		}
		n.Children = append(n.Children, Node{Kind: "Fpar", Name: p.Name, Type: p.Type.String(), Value: mode, Line: p.Position().Line, Column: p.Position().Column})
	}
	for _, c := range f.Captured {
		n.Children = append(n.Children, Node{Kind: "Captured", Name: c.Name, Type: c.Type.String()})
	}
	for _, l := range f.Locals {
		switch v := l.(type) {
		case *ast.VarDef:
			typ := v.Type.String()
			if v.IsArray {
				typ = fmt.Sprintf("%s[%d]", typ, v.Size)
			}
			n.Children = append(n.Children, Node{Kind: "VarDef", Name: v.Name, Type: typ, Line: v.Position().Line, Column: v.Position().Column})
		case *ast.FuncDef:
			n.Children = append(n.Children, FromFuncDef(v))
		}
	}
	n.Children = append(n.Children, fromStmt(f.Body))
	return n
}

func fromStmt(s ast.Stmt) Node {
	switch s := s.(type) {
	case *ast.StmtList:
		n := Node{Kind: "StmtList", Line: s.Position().Line, Column: s.Position().Column}
		for _, child := range s.Stmts {
			n.Children = append(n.Children, fromStmt(child))
		}
		return n
	case *ast.Let:
		return Node{Kind: "Let", Line: s.Position().Line, Column: s.Position().Column, Children: []Node{fromExpr(s.Left), fromExpr(s.Right)}}
	case *ast.ProcCall:
		return fromExpr(s.Call)
	case *ast.If:
		n := Node{Kind: "If", Line: s.Position().Line, Column: s.Position().Column}
		n.Children = append(n.Children, fromCond(s.Cond), fromStmt(s.Then))
		if s.Else != nil {
			n.Children = append(n.Children, fromStmt(s.Else))
		}
		return n
	case *ast.While:
		return Node{Kind: "While", Line: s.Position().Line, Column: s.Position().Column, Children: []Node{fromCond(s.Cond), fromStmt(s.Body)}}
	case *ast.Return:
		n := Node{Kind: "Return", Line: s.Position().Line, Column: s.Position().Column}
		if s.Expr != nil {
			n.Children = append(n.Children, fromExpr(s.Expr))
		}
		return n
	case *ast.Empty:
		return Node{Kind: "Empty", Line: s.Position().Line, Column: s.Position().Column}
	default:
		return Node{Kind: "Unknown"}
	}
}

func fromExpr(e ast.Expr) Node {
	pos := e.Position()
	base := Node{Line: pos.Line, Column: pos.Column, Type: e.Type().String()}
	switch e := e.(type) {
	case *ast.IntConst:
		base.Kind, base.Value = "IntConst", fmt.Sprint(e.Value)
	case *ast.CharConst:
		base.Kind, base.Value = "CharConst", fmt.Sprintf("%q", e.Value)
	case *ast.StringConst:
		base.Kind, base.Value = "StringConst", e.Value
	case *ast.Id:
		base.Kind, base.Name = "Id", e.Name
	case *ast.ArrayAccess:
		base.Kind, base.Name = "ArrayAccess", e.Name
		base.Children = []Node{fromExpr(e.Index)}
	case *ast.UnOp:
		base.Kind = "UnOp"
		base.Children = []Node{fromExpr(e.Expr)}
	case *ast.BinOp:
		base.Kind = "BinOp"
		base.Children = []Node{fromExpr(e.Left), fromExpr(e.Right)}
	case *ast.FuncCall:
		base.Kind, base.Name = "FuncCall", e.Name
		for _, arg := range e.Args {
			base.Children = append(base.Children, fromExpr(arg))
		}
	default:
		base.Kind = "Unknown"
	}
	return base
}

func fromCond(c ast.Cond) Node {
	switch c := c.(type) {
	case *ast.BoolConst:
		return Node{Kind: "BoolConst", Value: fmt.Sprint(c.Value), Line: c.Position().Line, Column: c.Position().Column}
	case *ast.CondCompOp:
		return Node{Kind: "CondCompOp", Line: c.Position().Line, Column: c.Position().Column, Children: []Node{fromExpr(c.Left), fromExpr(c.Right)}}
	case *ast.CondBoolOp:
		return Node{Kind: "CondBoolOp", Line: c.Position().Line, Column: c.Position().Column, Children: []Node{fromCond(c.Left), fromCond(c.Right)}}
	case *ast.CondUnOp:
		return Node{Kind: "CondUnOp", Line: c.Position().Line, Column: c.Position().Column, Children: []Node{fromCond(c.Cond)}}
	default:
		return Node{Kind: "Unknown"}
	}
}

// WriteText renders n as indented text, one node per line.
func WriteText(w io.Writer, n Node) {
	writeIndented(w, n, 0)
}

func writeIndented(w io.Writer, n Node, depth int) {
	prefix := strings.Repeat("  ", depth)
	label := n.Kind
	if n.Name != "" {
		label += " " + n.Name
	}
	if n.Value != "" {
		label += " = " + n.Value
	}
	if n.Type != "" {
		label += " : " + n.Type
	}
	fmt.Fprintf(w, "%s%s (%d:%d)\n", prefix, label, n.Line, n.Column)
	for _, child := range n.Children {
		writeIndented(w, child, depth+1)
	}
}
