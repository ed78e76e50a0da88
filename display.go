package wexpr

import (
	"strconv"
	"strings"
)

// String renders the expression so that an equivalent reader can
// unambiguously reconstruct it: symbols always include their contexts,
// strings escape embedded quotes and control characters, and reals always
// carry a decimal point or exponent so they re-parse as reals.
func (e Expr) String() string {
	var sb strings.Builder
	e.node.kind.writeDisplay(&sb)

	return sb.String()
}

// String renders the kind with the same rules as Expr.String.
func (k ExprKind) String() string {
	var sb strings.Builder
	k.writeDisplay(&sb)

	return sb.String()
}

// String renders the node as head[arg1, arg2, ...].
func (n *Normal) String() string {
	var sb strings.Builder
	n.writeDisplay(&sb)

	return sb.String()
}

func (k *ExprKind) writeDisplay(sb *strings.Builder) {
	switch k.kind {
	case KindInteger:
		v, _ := k.AsInteger()
		sb.WriteString(strconv.FormatInt(v, 10))
	case KindReal:
		v, _ := k.AsReal()
		sb.WriteString(formatReal(v))
	case KindString:
		sb.WriteString(strconv.Quote(k.str))
	case KindSymbol:
		sb.WriteString(k.sym.String())
	case KindNormal:
		k.norm.writeDisplay(sb)
	default:
		sb.WriteString("Unknown")
	}
}

func (n *Normal) writeDisplay(sb *strings.Builder) {
	n.head.node.kind.writeDisplay(sb)
	sb.WriteByte('[')
	for i, el := range n.contents {
		if i > 0 {
			sb.WriteString(", ")
		}
		el.node.kind.writeDisplay(sb)
	}
	sb.WriteByte(']')
}

// formatReal renders v with the shortest representation that still reads
// back as a real: bare integer forms get a trailing '.' appended.
func formatReal(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEI") {
		s += "."
	}

	return s
}
