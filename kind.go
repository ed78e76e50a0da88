package wexpr

import (
	"math"

	"github.com/termlab/wexpr/symbol"
)

// Kind discriminates the variants of ExprKind.
type Kind uint8

const (
	KindInteger Kind = iota + 1 // KindInteger is a signed 64-bit integer atom.
	KindReal                    // KindReal is a non-NaN IEEE-754 double atom.
	KindString                  // KindString is a UTF-8 string atom.
	KindSymbol                  // KindSymbol is a namespace-qualified symbol atom.
	KindNormal                  // KindNormal is a head applied to ordered arguments.
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindString:
		return "String"
	case KindSymbol:
		return "Symbol"
	case KindNormal:
		return "Normal"
	default:
		return "Unknown"
	}
}

// ExprKind is the tagged union behind every expression node: exactly one of
// Integer, Real, String, Symbol or Normal, discriminated by Kind().
//
// Consumers dispatch with a switch on Kind() and read the payload through
// the As* accessors; every consumption site in this module (encoder,
// display, queries) covers all five variants.
type ExprKind struct {
	kind Kind
	num  uint64 // Integer: int64 bits; Real: float64 bits
	str  string
	sym  symbol.Symbol
	norm *Normal
}

// IntegerKind creates the kind of an integer atom.
func IntegerKind(value int64) ExprKind {
	return ExprKind{kind: KindInteger, num: uint64(value)}
}

// RealKind creates the kind of a real atom.
//
// Panics if value is NaN: the Real domain excludes NaN by construction.
func RealKind(value float64) ExprKind {
	if math.IsNaN(value) {
		panic("wexpr: RealKind called with NaN")
	}

	return ExprKind{kind: KindReal, num: math.Float64bits(value)}
}

// StringKind creates the kind of a string atom.
func StringKind(s string) ExprKind {
	return ExprKind{kind: KindString, str: s}
}

// SymbolKind creates the kind of a symbol atom.
func SymbolKind(sym symbol.Symbol) ExprKind {
	return ExprKind{kind: KindSymbol, sym: sym}
}

// NormalKind creates the kind of a normal expression, taking ownership of
// the passed handles.
func NormalKind(head Expr, contents []Expr) ExprKind {
	return ExprKind{kind: KindNormal, norm: &Normal{head: head, contents: contents}}
}

// Kind returns the variant discriminator.
func (k *ExprKind) Kind() Kind {
	return k.kind
}

// AsInteger returns the integer value if this is the Integer variant.
func (k *ExprKind) AsInteger() (int64, bool) {
	if k.kind != KindInteger {
		return 0, false
	}

	return int64(k.num), true
}

// AsReal returns the real value if this is the Real variant.
func (k *ExprKind) AsReal() (float64, bool) {
	if k.kind != KindReal {
		return 0, false
	}

	return math.Float64frombits(k.num), true
}

// AsString returns the text if this is the String variant.
func (k *ExprKind) AsString() (string, bool) {
	if k.kind != KindString {
		return "", false
	}

	return k.str, true
}

// AsSymbol returns the symbol if this is the Symbol variant.
func (k *ExprKind) AsSymbol() (symbol.Symbol, bool) {
	if k.kind != KindSymbol {
		return symbol.Symbol{}, false
	}

	return k.sym, true
}

// AsNormal returns the normal node if this is the Normal variant.
func (k *ExprKind) AsNormal() (*Normal, bool) {
	if k.kind != KindNormal {
		return nil, false
	}

	return k.norm, true
}

// clone produces an owned copy of the kind. For normals this copies the node
// one level deep, registering this copy as a new owner of every child
// handle.
func (k *ExprKind) clone() ExprKind {
	c := *k
	if k.kind == KindNormal {
		c.norm = k.norm.clone()
	}

	return c
}

func (k *ExprKind) equal(other *ExprKind) bool {
	if k.kind != other.kind {
		return false
	}

	switch k.kind {
	case KindInteger:
		return k.num == other.num
	case KindReal:
		// Compare as floats so 0.0 and -0.0 are equal; NaN is excluded by
		// construction.
		return math.Float64frombits(k.num) == math.Float64frombits(other.num)
	case KindString:
		return k.str == other.str
	case KindSymbol:
		return k.sym == other.sym
	case KindNormal:
		return k.norm.equal(other.norm)
	default:
		return false
	}
}
