// Package ast defines the fixed set of tagged AST node kinds required
// by spec.md §3. Every node owns its children directly (a tree, no
// sharing); sem decorates nodes in place by writing into the Typ /
// HasReturn / Captured fields declared alongside each node's syntactic
// fields.
package ast

import (
	"minic/internal/source"
	"minic/internal/types"
)

// Node is implemented by every AST node; it carries the (line, column)
// spec.md §3 requires on every node.
type Node interface {
	Position() source.Position
}

// Expr is an expression: a value-producing node of scalar or array type.
type Expr interface {
	Node
	exprNode()
	// Type returns the annotation sem attaches; zero value before sem runs.
	Type() types.Type
	SetType(types.Type)
}

// Cond is a condition: a Bool-producing node used only in If/While tests
// and boolean combinators, never as a first-class value (spec.md §3
// keeps Bool out of the scalar variable types).
type Cond interface {
	Node
	condNode()
}

// Stmt is a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Def is a top-level or local definition: VarDef or a nested FuncDef.
type Def interface {
	Node
	defNode()
}

// base carries the position field shared by every node.
type base struct {
	Pos source.Position
}

func (b base) Position() source.Position { return b.Pos }

// exprBase adds the sem-assigned type annotation shared by all
// expression kinds.
type exprBase struct {
	base
	Typ types.Type
}

func (e *exprBase) Type() types.Type     { return e.Typ }
func (e *exprBase) SetType(t types.Type) { e.Typ = t }
