package wexpr

import "github.com/termlab/wexpr/symbol"

// Normal is a compound expression node: a head applied to an ordered
// argument list, head[arg1, arg2, ...]. Argument order is semantically
// significant and preserved exactly by every operation and by the encoder.
type Normal struct {
	head     Expr
	contents []Expr
}

// Head returns the head expression as a borrowed view.
func (n *Normal) Head() Expr {
	return n.head
}

// Contents returns the ordered argument list as a borrowed view. The
// returned slice must be treated as read-only.
func (n *Normal) Contents() []Expr {
	return n.contents
}

// Len returns the number of arguments.
func (n *Normal) Len() int {
	return len(n.contents)
}

// Part returns the argument at the given zero-based index, reporting false
// when the index is out of bounds. It never panics.
func (n *Normal) Part(index int) (Expr, bool) {
	if index < 0 || index >= len(n.contents) {
		return Expr{}, false
	}

	return n.contents[index], true
}

// HasHead reports whether the head is exactly the symbol sym.
func (n *Normal) HasHead(sym symbol.Symbol) bool {
	return n.head.IsSymbol(sym)
}

// SetHead replaces the head expression, taking ownership of the handle.
// Only call this on a node obtained through KindMut.
func (n *Normal) SetHead(head Expr) {
	n.head = head
}

// SetPart replaces the argument at the given zero-based index, taking
// ownership of the handle. It reports false and leaves the node unchanged
// when the index is out of bounds. Only call this on a node obtained through
// KindMut.
func (n *Normal) SetPart(index int, value Expr) bool {
	if index < 0 || index >= len(n.contents) {
		return false
	}

	n.contents[index] = value

	return true
}

// Append adds an argument at the end of the list, taking ownership of the
// handle. Only call this on a node obtained through KindMut.
func (n *Normal) Append(value Expr) {
	n.contents = append(n.contents, value)
}

// clone copies the node one level deep, registering the copy as an owner of
// the head and of every argument.
func (n *Normal) clone() *Normal {
	contents := make([]Expr, len(n.contents))
	for i, el := range n.contents {
		contents[i] = el.Clone()
	}

	return &Normal{head: n.head.Clone(), contents: contents}
}

func (n *Normal) equal(other *Normal) bool {
	if n == other {
		return true
	}
	if len(n.contents) != len(other.contents) {
		return false
	}
	if !n.head.Equal(other.head) {
		return false
	}
	for i := range n.contents {
		if !n.contents[i].Equal(other.contents[i]) {
			return false
		}
	}

	return true
}
