// Package wexpr models symbolic expressions of a Lisp-like term language:
// atoms (64-bit integers, non-NaN reals, strings, namespace-qualified
// symbols) and "normal" forms (a head expression applied to an ordered
// argument list).
//
// # Expression handles
//
// Expr is an immutable, reference-counted handle to an expression node.
// Cloning an Expr is O(1) — it increments a reference count and never copies
// the underlying tree — so large shared subtrees are cheap to pass around:
//
//	sin := wexpr.NewSymbol(symbol.MustSymbol("System`Sin"))
//	call := wexpr.NewNormal(sin, []wexpr.Expr{wexpr.NewInteger(1)})
//	fmt.Println(call) // System`Sin[1]
//
// Two Expr values are equal (Equal, Hash) iff their trees are structurally
// equal, regardless of allocation identity. ExprRef is the companion type
// whose equality and hash are defined over the allocation address instead,
// for callers that need allocation-level deduplication.
//
// # Copy-on-write
//
// Mutation goes through KindMut, which clones the underlying node only when
// more than one owner holds it. Accessors such as Kind, Head and NormalPart
// return borrowed views that do not add ownership; call Clone on a handle to
// register an additional owner before storing it elsewhere.
//
// # Serialization
//
// The wxf package encodes any Expr into the WXF binary format, optionally
// zlib-compressed. Encoding is deterministic: identical trees always produce
// identical bytes.
package wexpr

import (
	"sync/atomic"

	"github.com/termlab/wexpr/symbol"
)

// Expr is an immutable, reference-counted handle to an expression node.
//
// An Expr is one pointer wide; passing it by value copies only the handle.
// The zero Expr is invalid — obtain instances through the constructors.
type Expr struct {
	node *exprNode
}

type exprNode struct {
	refs atomic.Int64
	kind ExprKind
}

func newExpr(kind ExprKind) Expr {
	node := &exprNode{kind: kind}
	node.refs.Store(1)

	return Expr{node: node}
}

// New creates an expression from an already-constructed kind, taking
// ownership of any handles the kind contains.
func New(kind ExprKind) Expr {
	return newExpr(kind)
}

// NewInteger creates an integer atom.
func NewInteger(value int64) Expr {
	return newExpr(IntegerKind(value))
}

// NewReal creates a real atom.
//
// Panics if value is NaN; the Real domain excludes NaN by construction, and
// passing one is a contract violation by the caller, not a runtime
// condition.
func NewReal(value float64) Expr {
	return newExpr(RealKind(value))
}

// NewString creates a string atom.
func NewString(s string) Expr {
	return newExpr(StringKind(s))
}

// NewSymbol creates a symbol atom.
func NewSymbol(sym symbol.Symbol) Expr {
	return newExpr(SymbolKind(sym))
}

// NewNormal creates a normal (head applied to arguments) expression, taking
// ownership of the passed handles. Clone any handle that is also retained
// elsewhere.
//
// The head may itself be any expression, including another normal, which is
// how curried applications like f[x][y] arise.
func NewNormal(head Expr, contents []Expr) Expr {
	return newExpr(NormalKind(head, contents))
}

// List creates a System`List expression of the given elements.
func List(elements ...Expr) Expr {
	return NewNormal(NewSymbol(symList), elements)
}

// Rule creates the expression System`Rule[lhs, rhs].
func Rule(lhs, rhs Expr) Expr {
	return NewNormal(NewSymbol(symRule), []Expr{lhs, rhs})
}

// RuleDelayed creates the expression System`RuleDelayed[lhs, rhs].
func RuleDelayed(lhs, rhs Expr) Expr {
	return NewNormal(NewSymbol(symRuleDelayed), []Expr{lhs, rhs})
}

// Null returns the System`Null symbol expression.
func Null() Expr {
	return NewSymbol(symNull)
}

// Clone registers a new owner of the underlying node and returns a handle to
// it. The tree is never copied; the operation is a single atomic increment.
func (e Expr) Clone() Expr {
	e.node.refs.Add(1)

	return Expr{node: e.node}
}

// RefCount returns the current number of registered owners of the underlying
// node. It is exposed for sharing-sensitive callers and tests; ordinary code
// has no reason to look at it.
func (e Expr) RefCount() int64 {
	return e.node.refs.Load()
}

// Kind returns a read-only view of the underlying tagged union.
//
// The returned value must be treated as read-only; use KindMut to mutate.
func (e Expr) Kind() *ExprKind {
	return &e.node.kind
}

// KindMut returns a mutable view of the underlying tagged union, cloning the
// node first if more than one owner currently holds it. Mutation through the
// returned pointer is therefore never observable through other handles.
func (e *Expr) KindMut() *ExprKind {
	if e.node.refs.Load() > 1 {
		node := &exprNode{kind: e.node.kind.clone()}
		node.refs.Store(1)
		e.node.refs.Add(-1)
		e.node = node
	}

	return &e.node.kind
}

// TakeKind consumes the handle and returns the owned kind.
//
// If this handle is the sole owner the allocation is reused without cloning,
// making the operation very cheap; otherwise the kind is cloned. The handle
// must not be used after the call.
func (e Expr) TakeKind() ExprKind {
	if e.node.refs.Load() == 1 {
		return e.node.kind
	}

	e.node.refs.Add(-1)

	return e.node.kind.clone()
}

// Tag classifies the expression by its outermost functional symbol: a symbol
// atom is its own tag, a normal recurses into its head, and the remaining
// atoms have none. Currying is peeled only through head positions, so
// f[x][y] has tag f, while 10[x] has no tag.
func (e Expr) Tag() (symbol.Symbol, bool) {
	switch kind := &e.node.kind; kind.kind {
	case KindSymbol:
		return kind.sym, true
	case KindNormal:
		return kind.norm.head.Tag()
	default:
		return symbol.Symbol{}, false
	}
}

// Head returns the conceptual type of the expression: the literal head for a
// normal, and the canonical System symbol (System`Integer, System`Real,
// System`String, System`Symbol) for atoms.
func (e Expr) Head() Expr {
	if kind := &e.node.kind; kind.kind == KindNormal {
		return kind.norm.head
	}

	sym, _ := e.SymbolHead()

	return NewSymbol(sym)
}

// SymbolHead returns the head of the expression as a symbol: the canonical
// type symbol for atoms, or the literal head of a normal when that head is a
// symbol. It reports false for normals whose head is not a symbol (such as
// curried forms f[x][y]).
func (e Expr) SymbolHead() (symbol.Symbol, bool) {
	switch kind := &e.node.kind; kind.kind {
	case KindInteger:
		return symInteger, true
	case KindReal:
		return symReal, true
	case KindString:
		return symString, true
	case KindSymbol:
		return symSymbol, true
	case KindNormal:
		return kind.norm.head.AsSymbol()
	default:
		return symbol.Symbol{}, false
	}
}

// NormalHead returns the head expression if this is a normal, reporting
// false otherwise.
func (e Expr) NormalHead() (Expr, bool) {
	if kind := &e.node.kind; kind.kind == KindNormal {
		return kind.norm.head, true
	}

	return Expr{}, false
}

// NormalPart returns the argument at the given zero-based index of a normal
// expression. The 0th part is the first argument, not the head. It reports
// false for non-normal expressions and out-of-bounds indices; it never
// panics.
func (e Expr) NormalPart(index int) (Expr, bool) {
	if kind := &e.node.kind; kind.kind == KindNormal {
		return kind.norm.Part(index)
	}

	return Expr{}, false
}

// HasNormalHead reports whether the expression is a normal whose head is
// exactly sym. It does not recurse through curried heads.
func (e Expr) HasNormalHead(sym symbol.Symbol) bool {
	if kind := &e.node.kind; kind.kind == KindNormal {
		return kind.norm.HasHead(sym)
	}

	return false
}

// IsSymbol reports whether the expression is the symbol atom sym.
func (e Expr) IsSymbol(sym symbol.Symbol) bool {
	if kind := &e.node.kind; kind.kind == KindSymbol {
		return kind.sym == sym
	}

	return false
}

// AsInteger returns the integer value if this is an integer atom.
func (e Expr) AsInteger() (int64, bool) {
	return e.node.kind.AsInteger()
}

// AsReal returns the real value if this is a real atom.
func (e Expr) AsReal() (float64, bool) {
	return e.node.kind.AsReal()
}

// AsString returns the text if this is a string atom.
func (e Expr) AsString() (string, bool) {
	return e.node.kind.AsString()
}

// AsSymbol returns the symbol if this is a symbol atom.
func (e Expr) AsSymbol() (symbol.Symbol, bool) {
	return e.node.kind.AsSymbol()
}

// AsNormal returns the normal node if this is a normal expression.
//
// The returned value is a borrowed read-only view; use KindMut for mutation.
func (e Expr) AsNormal() (*Normal, bool) {
	return e.node.kind.AsNormal()
}

// AsBool interprets the System`True and System`False symbols as booleans,
// reporting false for every other expression.
func (e Expr) AsBool() (bool, bool) {
	sym, ok := e.AsSymbol()
	if !ok {
		return false, false
	}

	switch sym {
	case symTrue:
		return true, true
	case symFalse:
		return false, true
	default:
		return false, false
	}
}

// Equal reports structural equality over the full recursive tree, regardless
// of allocation identity. Expressions that compare equal also hash equal.
func (e Expr) Equal(other Expr) bool {
	if e.node == other.node {
		return true
	}

	return e.node.kind.equal(&other.node.kind)
}
