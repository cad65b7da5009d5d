package symbols

import "fmt"

// RedeclarationError reports a name already present in the current
// scope (spec.md §7).
type RedeclarationError struct{ Name string }

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf("%q already declared in this scope", e.Name)
}

// UndeclaredError reports a name unresolved after walking every
// enclosing scope (spec.md §7).
type UndeclaredError struct{ Name string }

func (e *UndeclaredError) Error() string {
	return fmt.Sprintf("%q is not declared", e.Name)
}

// Table is the compiler's symbol table: a stack of scopes, opened and
// closed in lockstep with sem's traversal of the AST.
type Table struct {
	current *Scope
}

// NewTable opens the outermost (global) scope, where internal/builtins
// installs the runtime declarations before sem sees the user program.
func NewTable() *Table {
	return &Table{current: newScope(ScopeGlobal, "", nil)}
}

// OpenBlock pushes an ordinary nested scope (an if/while body, or any
// braced statement list).
func (t *Table) OpenBlock() {
	t.current = newScope(ScopeBlock, t.current.Owner, t.current)
}

// OpenFunction pushes a function scope, the boundary capture analysis
// walks past. owner is the enclosing FuncDef's name, stored as the
// scope's Owner and inherited by its block scopes; no pass reads it.
func (t *Table) OpenFunction(owner string) {
	t.current = newScope(ScopeFunction, owner, t.current)
}

// Close pops the current scope. It is a programmer error to call this
// more times than Open*, so it panics rather than returning an error —
// sem's traversal always closes exactly what it opened.
func (t *Table) Close() {
	if t.current.Parent == nil {
		panic("symbols: Close called on the global scope")
	}
	t.current = t.current.Parent
}

// Current exposes the innermost open scope, e.g. so sem can attach
// diagnostics naming the enclosing function.
func (t *Table) Current() *Scope { return t.current }

// Insert adds e under e.Name in the current scope, failing with
// RedeclarationError on collision (spec.md §4.1).
func (t *Table) Insert(e *Entry) error {
	if _, exists := t.current.entries[e.Name]; exists {
		return &RedeclarationError{Name: e.Name}
	}
	t.current.entries[e.Name] = e
	return nil
}

// Lookup walks outward from the current scope. crossed is the number
// of ScopeFunction boundaries passed before the name was found — the
// count of enclosing functions that must add name to their capture set
// (spec.md §4.2: capture propagates to "every intervening function").
// crossed is 0 when the name resolves inside the innermost function's
// own domain (its top scope or any of its nested blocks).
func (t *Table) Lookup(name string) (entry *Entry, crossed int, err error) {
	scope := t.current
	for scope != nil {
		if e, ok := scope.entries[name]; ok {
			return e, crossed, nil
		}
		if scope.Kind == ScopeFunction {
			crossed++
		}
		scope = scope.Parent
	}
	return nil, 0, &UndeclaredError{Name: name}
}
