package wxf

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termlab/wexpr"
	"github.com/termlab/wexpr/compress"
	"github.com/termlab/wexpr/symbol"
)

func sinCall() wexpr.Expr {
	return wexpr.NewNormal(
		wexpr.NewSymbol(symbol.MustSymbol("System`Sin")),
		[]wexpr.Expr{wexpr.NewInteger(1)},
	)
}

func TestExportGoldenBytes(t *testing.T) {
	le := func(v uint64) []byte {
		return binary.LittleEndian.AppendUint64(nil, v)
	}

	tests := []struct {
		name string
		expr wexpr.Expr
		want []byte
	}{
		{
			name: "integer",
			expr: wexpr.NewInteger(1),
			want: append([]byte("8:L"), le(1)...),
		},
		{
			name: "negative integer",
			expr: wexpr.NewInteger(-2),
			want: append([]byte("8:L"), le(^uint64(1))...),
		},
		{
			name: "real",
			expr: wexpr.NewReal(2.5),
			want: append([]byte("8:r"), le(math.Float64bits(2.5))...),
		},
		{
			name: "string",
			expr: wexpr.NewString("hello"),
			want: []byte("8:S\x05hello"),
		},
		{
			name: "empty string",
			expr: wexpr.NewString(""),
			want: []byte("8:S\x00"),
		},
		{
			name: "symbol",
			expr: wexpr.NewSymbol(symbol.MustSymbol("Global`x")),
			want: []byte("8:s\x08Global`x"),
		},
		{
			name: "normal",
			expr: sinCall(),
			want: append([]byte("8:f\x01s\x0aSystem`Sin"), append([]byte{'L'}, le(1)...)...),
		},
		{
			name: "empty list",
			expr: wexpr.List(),
			want: []byte("8:f\x00s\x0bSystem`List"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Export(tt.expr))
		})
	}
}

func TestExportCurriedHeads(t *testing.T) {
	le := binary.LittleEndian.AppendUint64

	// Sin[1][2]: the outer function's head is itself a full function node.
	curried := wexpr.NewNormal(sinCall(), []wexpr.Expr{wexpr.NewInteger(2)})
	require.Equal(t, "System`Sin[1][2]", curried.String())

	want := []byte("8:f\x01f\x01s\x0aSystem`Sin")
	want = le(append(want, 'L'), 1)
	want = le(append(want, 'L'), 2)
	assert.Equal(t, want, Export(curried))

	// One more level: Sin[1][2][3].
	deeper := wexpr.NewNormal(curried.Clone(), []wexpr.Expr{wexpr.NewInteger(3)})
	require.Equal(t, "System`Sin[1][2][3]", deeper.String())

	want = append([]byte("8:f\x01"), Export(curried)[2:]...)
	want = le(append(want, 'L'), 3)
	assert.Equal(t, want, Export(deeper))
}

func TestExportVarintLengths(t *testing.T) {
	// 200 bytes needs a two-byte varint length: 0xC8 0x01.
	text := strings.Repeat("a", 200)
	got := Export(wexpr.NewString(text))

	want := append([]byte("8:S\xc8\x01"), text...)
	assert.Equal(t, want, got)
}

func TestExportDeterministic(t *testing.T) {
	expr := wexpr.List(
		sinCall(),
		wexpr.NewReal(1.5),
		wexpr.NewString("x"),
		wexpr.Rule(wexpr.NewString("k"), wexpr.NewInteger(2)),
	)

	first := Export(expr)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Export(expr))
	}

	// Structurally equal trees built independently export identically.
	again := wexpr.List(
		sinCall(),
		wexpr.NewReal(1.5),
		wexpr.NewString("x"),
		wexpr.Rule(wexpr.NewString("k"), wexpr.NewInteger(2)),
	)
	assert.Equal(t, first, Export(again))
}

func TestExportCompressed(t *testing.T) {
	expr := wexpr.List(
		sinCall(),
		wexpr.NewString(strings.Repeat("compressible ", 100)),
	)

	out := ExportCompressed(expr)
	require.True(t, len(out) > 3)
	assert.Equal(t, []byte("8C:"), out[:3])

	// The compressed body restores to exactly the uncompressed body.
	restored, err := compress.NewZlibCompressor().Decompress(out[3:])
	require.NoError(t, err)
	assert.Equal(t, Export(expr)[2:], restored)

	// Level 9 actually shrinks a repetitive payload.
	assert.Less(t, len(out), len(Export(expr)))
}

func TestExportCompressedDeterministic(t *testing.T) {
	expr := wexpr.List(wexpr.NewString(strings.Repeat("abc", 500)))

	first := ExportCompressed(expr)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExportCompressed(expr))
	}
}

func TestExportConcurrent(t *testing.T) {
	expr := wexpr.List(sinCall(), wexpr.NewInteger(7))
	want := Export(expr)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				if !assert.Equal(t, want, Export(expr)) {
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
