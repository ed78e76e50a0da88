// Package wxf serializes expressions into the WXF binary format.
//
// An export is a magic header followed by the pre-order encoding of the
// tree: "8:" for the plain form, "8C:" for the form whose body is the same
// byte stream compressed with zlib at the highest level. Every node is a
// single-byte token followed by its payload; multi-byte integers are
// little-endian and lengths are unsigned LEB128 varints. Encoding is
// deterministic, so equal expressions always export to equal bytes.
package wxf

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/termlab/wexpr"
	"github.com/termlab/wexpr/compress"
	"github.com/termlab/wexpr/endian"
	"github.com/termlab/wexpr/format"
	"github.com/termlab/wexpr/internal/pool"
)

// Export encodes the expression into the uncompressed WXF form, starting
// with the "8:" header.
func Export(expr wexpr.Expr) []byte {
	return export(expr, format.CompressionNone)
}

// ExportCompressed encodes the expression into the compressed WXF form: the
// "8C:" header followed by the zlib-compressed body.
func ExportCompressed(expr wexpr.Expr) []byte {
	return export(expr, format.CompressionZlib)
}

func export(expr wexpr.Expr, compression format.CompressionType) []byte {
	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	enc := encoder{buf: buf, engine: endian.GetLittleEndianEngine()}
	enc.writeExpr(expr)

	// Both compression types are covered above, and an in-memory deflate of
	// an already-encoded buffer cannot fail on valid input; a failure here is
	// a fault in the runtime environment, not a condition callers can handle.
	codec, err := compress.CreateCodec(compression, "wxf export")
	if err != nil {
		panic(fmt.Sprintf("wxf: %v", err))
	}

	body, err := codec.Compress(buf.Bytes())
	if err != nil {
		panic(fmt.Sprintf("wxf: compress export body: %v", err))
	}

	header := format.HeaderUncompressed
	if compression == format.CompressionZlib {
		header = format.HeaderCompressed
	}

	out := make([]byte, 0, len(header)+len(body))
	out = append(out, header...)

	return append(out, body...)
}

// encoder writes the header-less body into a pooled buffer. The buffer's
// append-style API keeps the whole encode allocation-free apart from buffer
// growth.
type encoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

func (e *encoder) writeExpr(expr wexpr.Expr) {
	kind := expr.Kind()
	switch kind.Kind() {
	case wexpr.KindInteger:
		v, _ := kind.AsInteger()
		_ = e.buf.WriteByte(byte(format.TokenInteger64))
		e.buf.B = e.engine.AppendUint64(e.buf.B, uint64(v))

	case wexpr.KindReal:
		v, _ := kind.AsReal()
		_ = e.buf.WriteByte(byte(format.TokenReal64))
		e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))

	case wexpr.KindString:
		s, _ := kind.AsString()
		e.writeText(format.TokenString, s)

	case wexpr.KindSymbol:
		sym, _ := kind.AsSymbol()
		e.writeText(format.TokenSymbol, sym.String())

	case wexpr.KindNormal:
		norm, _ := kind.AsNormal()
		_ = e.buf.WriteByte(byte(format.TokenFunction))
		e.buf.B = binary.AppendUvarint(e.buf.B, uint64(norm.Len()))
		e.writeExpr(norm.Head())
		for _, el := range norm.Contents() {
			e.writeExpr(el)
		}
	}
}

func (e *encoder) writeText(tok format.Token, text string) {
	_ = e.buf.WriteByte(byte(tok))
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(len(text)))
	e.buf.B = append(e.buf.B, text...)
}
