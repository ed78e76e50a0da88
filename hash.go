package wexpr

import (
	"encoding/binary"
	"math"

	"github.com/termlab/wexpr/internal/hash"
)

// Hash returns a 64-bit structural hash of the expression: a xxHash64 digest
// over the same canonical pre-order walk the encoder performs. Expressions
// that are Equal hash identically, so Hash/Equal together support use as
// mapping keys.
func (e Expr) Hash() uint64 {
	d := hash.New()
	e.node.kind.hashInto(d)

	return d.Sum64()
}

func (k *ExprKind) hashInto(d *hash.Digest) {
	var scratch [1 + binary.MaxVarintLen64]byte

	// Digest writes never fail.
	switch k.kind {
	case KindInteger:
		buf := append(scratch[:0], byte(KindInteger))
		_, _ = d.Write(binary.LittleEndian.AppendUint64(buf, k.num))
	case KindReal:
		// Normalize -0.0 to 0.0: the two compare equal and must hash equal.
		bits := k.num
		if math.Float64frombits(bits) == 0 {
			bits = 0
		}
		buf := append(scratch[:0], byte(KindReal))
		_, _ = d.Write(binary.LittleEndian.AppendUint64(buf, bits))
	case KindString:
		buf := append(scratch[:0], byte(KindString))
		_, _ = d.Write(binary.AppendUvarint(buf, uint64(len(k.str))))
		_, _ = d.WriteString(k.str)
	case KindSymbol:
		text := k.sym.String()
		buf := append(scratch[:0], byte(KindSymbol))
		_, _ = d.Write(binary.AppendUvarint(buf, uint64(len(text))))
		_, _ = d.WriteString(text)
	case KindNormal:
		buf := append(scratch[:0], byte(KindNormal))
		_, _ = d.Write(binary.AppendUvarint(buf, uint64(len(k.norm.contents))))
		k.norm.head.node.kind.hashInto(d)
		for _, el := range k.norm.contents {
			el.node.kind.hashInto(d)
		}
	}
}
