// Package builtins declares the fixed runtime library signatures of
// spec.md §4.4 and installs them into the outermost symbol scope
// before semantic analysis of the user program.
package builtins

import (
	"minic/internal/symbols"
	"minic/internal/types"
)

// Install populates tbl's global scope with the builtin runtime
// signatures. It panics on a name collision, which would indicate a
// bug in this table, not a user error.
func Install(tbl *symbols.Table) {
	for _, b := range signatures {
		if err := tbl.Insert(b.entry()); err != nil {
			panic("builtins: " + err.Error())
		}
	}
}

type sig struct {
	name    string
	ret     types.Type
	params  []symbols.ParamInfo
	irname  string // linker-visible external symbol name
}

func (s sig) entry() *symbols.Entry {
	return &symbols.Entry{
		Kind:    symbols.KindFunction,
		Name:    s.name,
		RetType: s.ret,
		Params:  s.params,
		IRName:  s.irname,
	}
}

func value(t types.Type) symbols.ParamInfo {
	return symbols.ParamInfo{Type: t, Mode: symbols.ByValue}
}

func ref(t types.Type) symbols.ParamInfo {
	return symbols.ParamInfo{Type: t, Mode: symbols.ByReference}
}

// Lookup returns the declared signature of the builtin whose
// linker-visible name is irName, for codegen call-site emission
// (ast.CallTarget.BuiltinName is always one of these names).
func Lookup(irName string) (ret types.Type, params []symbols.ParamInfo, ok bool) {
	for _, b := range signatures {
		if b.irname == irName {
			return b.ret, b.params, true
		}
	}
	return types.Type{}, nil, false
}

// Sig is the exported view of one builtin's signature, for codegen's
// module-header extern declarations.
type Sig struct {
	IRName string
	Ret    types.Type
	Params []symbols.ParamInfo
}

// All lists every builtin runtime signature, in declaration order.
func All() []Sig {
	out := make([]Sig, len(signatures))
	for i, b := range signatures {
		out[i] = Sig{IRName: b.irname, Ret: b.ret, Params: b.params}
	}
	return out
}

var signatures = []sig{
	{"writeInteger", types.TVoid, []symbols.ParamInfo{value(types.TInt)}, "writeInteger"},
	{"writeChar", types.TVoid, []symbols.ParamInfo{value(types.TChar)}, "writeChar"},
	{"writeString", types.TVoid, []symbols.ParamInfo{ref(types.NewArray(types.TChar, types.UnknownSize))}, "writeString"},
	{"readInteger", types.TInt, nil, "readInteger"},
	{"readChar", types.TChar, nil, "readChar"},
	{"readString", types.TVoid, []symbols.ParamInfo{
		value(types.TInt),
		ref(types.NewArray(types.TChar, types.UnknownSize)),
	}, "readString"},
	{"ascii", types.TInt, []symbols.ParamInfo{value(types.TChar)}, "ascii"},
	{"chr", types.TChar, []symbols.ParamInfo{value(types.TInt)}, "chr"},
	{"strlen", types.TInt, []symbols.ParamInfo{ref(types.NewArray(types.TChar, types.UnknownSize))}, "strlen"},
	{"strcmp", types.TInt, []symbols.ParamInfo{
		ref(types.NewArray(types.TChar, types.UnknownSize)),
		ref(types.NewArray(types.TChar, types.UnknownSize)),
	}, "strcmp"},
	{"strcpy", types.TVoid, []symbols.ParamInfo{
		ref(types.NewArray(types.TChar, types.UnknownSize)),
		ref(types.NewArray(types.TChar, types.UnknownSize)),
	}, "strcpy"},
	{"strcat", types.TVoid, []symbols.ParamInfo{
		ref(types.NewArray(types.TChar, types.UnknownSize)),
		ref(types.NewArray(types.TChar, types.UnknownSize)),
	}, "strcat"},
}
