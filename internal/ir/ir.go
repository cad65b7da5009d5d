// Package ir is the SSA-oriented in-memory model spec.md §2 calls
// "GenScope(SSA slots)": named allocas, typed basic blocks, and
// function/module containers that internal/codegen builds and
// internal/codegen/lltext prints as textual LLVM IR. Keeping this
// model separate from the printer is what lets Verify run before any
// text is emitted (spec.md §4.3's verifyFunction).
package ir

import "fmt"

// Param is one LLVM-level function parameter.
type Param struct {
	Name string // without the leading '%'
	Type string // LLVM type, e.g. "i32", "i8*", "[4 x i8]*"
}

// Block is one basic block: a label, a straight-line instruction list,
// and exactly one terminator once Terminate has been called.
type Block struct {
	Label      string
	Instrs     []string
	Term       string
	Terminated bool
}

// Emit appends a non-terminator instruction line. Once the block is
// terminated, further instructions are silently dropped — this is the
// "dead-code sink that still type-checks" spec.md §4.3 describes for
// statements following a Return.
func (b *Block) Emit(line string) {
	if b.Terminated {
		return
	}
	b.Instrs = append(b.Instrs, line)
}

// Terminate sets the block's single terminator, a no-op if already set.
func (b *Block) Terminate(line string) {
	if b.Terminated {
		return
	}
	b.Term = line
	b.Terminated = true
}

// Function is one emitted LLVM function (user-defined or, for
// externs, signature-only — see Extern).
type Function struct {
	Name    string
	Params  []Param
	RetType string
	Blocks  []*Block
	Entry   *Block

	blockSeq int
	valueSeq int
}

// NewBlock allocates a fresh, empty block with an auto-numbered label
// built from hint (e.g. "if.then" becomes "if.then.3") and appends it
// to f.Blocks.
func (f *Function) NewBlock(hint string) *Block {
	b := &Block{Label: fmt.Sprintf("%s.%d", hint, f.blockSeq)}
	f.blockSeq++
	f.Blocks = append(f.Blocks, b)
	return b
}

// NewTemp returns a fresh SSA value name ("%t0", "%t1", ...), unique
// within this function.
func (f *Function) NewTemp() string {
	name := fmt.Sprintf("%%t%d", f.valueSeq)
	f.valueSeq++
	return name
}

// Extern is an externally-defined function the module declares but
// does not emit a body for (spec.md §4.4's builtin runtime).
type Extern struct {
	Name    string
	RetType string
	Params  []string
}

// Global is a module-level constant, used for string literals
// (spec.md §4.3: "emit a private unnamed constant [N x i8]").
type Global struct {
	Name string
	Type string
	Init string
}

// Module is the top-level IR container for one compiled source file.
type Module struct {
	Name      string
	Externs   []Extern
	Globals   []Global
	Functions []*Function

	globalSeq int
}

func NewModule(name string) *Module {
	return &Module{Name: name}
}

func (m *Module) NewFunction(name, retType string, params []Param) *Function {
	f := &Function{Name: name, RetType: retType, Params: params}
	m.Functions = append(m.Functions, f)
	return f
}

func (m *Module) DeclareExtern(name, retType string, params []string) {
	m.Externs = append(m.Externs, Extern{Name: name, RetType: retType, Params: params})
}

// NewStringGlobal interns a private string constant and returns its
// global name.
func (m *Module) NewStringGlobal(init string) string {
	name := fmt.Sprintf("@.str.%d", m.globalSeq)
	m.globalSeq++
	m.Globals = append(m.Globals, Global{Name: name, Init: init})
	return name
}
