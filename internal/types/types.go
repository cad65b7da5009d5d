// Package types implements the closed type set of spec.md §3: Int,
// Char, Bool, Void, Array(elem, size?), and Reference(T).
package types

import "fmt"

type Kind uint8

const (
	Invalid Kind = iota
	Int
	Char
	Bool
	Void
	Array
	Reference
)

// UnknownSize marks an array parameter's unknown trailing dimension
// ("[]" in the surface syntax) as opposed to a local array's fixed,
// declaration-time size.
const UnknownSize = -1

// Type is a small value type: structural equality, no interning. The
// type set is closed and shallow (arrays are one-dimensional, at most
// one Reference wrapper), so there is no benefit to hash-consing it.
type Type struct {
	Kind int32
	Elem *Type // Array element type, or Reference target
	Size int   // Array only: element count, or UnknownSize
}

func (k Kind) k() int32 { return int32(k) }

var (
	TInt  = Type{Kind: Int.k()}
	TChar = Type{Kind: Char.k()}
	TBool = Type{Kind: Bool.k()}
	TVoid = Type{Kind: Void.k()}
)

func NewArray(elem Type, size int) Type {
	e := elem
	return Type{Kind: Array.k(), Elem: &e, Size: size}
}

func NewReference(target Type) Type {
	t := target
	return Type{Kind: Reference.k(), Elem: &t}
}

func (t Type) IsKind(k Kind) bool { return t.Kind == k.k() }

func (t Type) IsScalar() bool {
	return t.IsKind(Int) || t.IsKind(Char) || t.IsKind(Bool)
}

func (t Type) IsArray() bool     { return t.IsKind(Array) }
func (t Type) IsReference() bool { return t.IsKind(Reference) }
func (t Type) IsVoid() bool      { return t.IsKind(Void) }

// Deref strips a single Reference wrapper, if present. Invariant 3/4 in
// spec.md §3: a Reference(T) is not equal to T for matching purposes,
// but the callee dereferences it transparently once inside the body.
func (t Type) Deref() Type {
	if t.IsReference() {
		return *t.Elem
	}
	return t
}

// Equal implements the structural value-equality spec.md §3 demands:
// Reference(T) != T, but two Array types compare equal element-wise,
// with an unknown trailing dimension accepting any concrete size.
func Equal(a, b Type) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch Kind(a.Kind) {
	case Array:
		if !Equal(*a.Elem, *b.Elem) {
			return false
		}
		if a.Size == UnknownSize || b.Size == UnknownSize {
			return true
		}
		return a.Size == b.Size
	case Reference:
		return Equal(*a.Elem, *b.Elem)
	default:
		return true
	}
}

func (t Type) String() string {
	switch Kind(t.Kind) {
	case Int:
		return "int"
	case Char:
		return "char"
	case Bool:
		return "bool"
	case Void:
		return "nothing"
	case Array:
		if t.Size == UnknownSize {
			return fmt.Sprintf("%s[]", t.Elem)
		}
		return fmt.Sprintf("%s[%d]", t.Elem, t.Size)
	case Reference:
		return fmt.Sprintf("ref %s", t.Elem)
	default:
		return "<invalid>"
	}
}
