package wexpr

import (
	"encoding/binary"
	"unsafe"

	"github.com/termlab/wexpr/internal/hash"
)

// ExprRef wraps an Expr with reference (allocation identity) comparison
// semantics.
//
// Expr itself uses value semantics: two handles are Equal iff the trees they
// denote are structurally the same, even when they are different
// allocations. ExprRef instead compares and hashes by the address of the
// reference-counted allocation, so independently-built but value-equal
// expressions remain distinct. This is what collaborators like
// source-position maps need to keep one entry per occurrence.
//
// ExprRef is comparable with ==, which agrees with Equal, so it can be used
// directly as a map key.
type ExprRef struct {
	expr Expr
}

// NewExprRef wraps an expression handle, taking ownership of it.
func NewExprRef(expr Expr) ExprRef {
	return ExprRef{expr: expr}
}

// Expr returns the wrapped handle as a borrowed view; Clone it to retain an
// additional owner.
func (r ExprRef) Expr() Expr {
	return r.expr
}

// Equal reports whether both wrappers point at the same allocation. Two
// wrappers around independently-constructed, value-equal expressions are not
// Equal.
func (r ExprRef) Equal(other ExprRef) bool {
	return r.expr.node == other.expr.node
}

// Hash returns a 64-bit hash of the allocation address. It is stable for the
// lifetime of the expression and consistent with Equal.
func (r ExprRef) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(uintptr(unsafe.Pointer(r.expr.node))))

	return hash.Sum(buf[:])
}
