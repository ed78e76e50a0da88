package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// ZlibCompressor provides zlib compression at the highest level (9).
//
// This is the codec of the compressed WXF container: the bytes following the
// "8C:" header are exactly the zlib stream this codec produces. Level 9 is
// part of the wire contract, not a tuning knob.
type ZlibCompressor struct{}

var _ Codec = (*ZlibCompressor)(nil)

// zlibWriterPool pools zlib writers for reuse; writer construction allocates
// the full deflate state, which dominates the cost of small payloads.
var zlibWriterPool = sync.Pool{
	New: func() any {
		w, err := zlib.NewWriterLevel(io.Discard, zlib.BestCompression)
		if err != nil {
			// BestCompression is a valid level; this cannot happen.
			panic(fmt.Sprintf("failed to create zlib writer for pool: %v", err))
		}
		return w
	},
}

// NewZlibCompressor creates a new zlib codec at compression level 9.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{}
}

// Compress compresses the input data as a single zlib stream.
//
// The returned slice is newly allocated and owned by the caller; the input
// slice is not modified.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	w := zlibWriterPool.Get().(*zlib.Writer)
	defer zlibWriterPool.Put(w)

	var buf bytes.Buffer
	buf.Grow(len(data) / 2)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib stream finalization failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress restores a zlib-compressed payload.
//
// Returns an error if the input is not a valid zlib stream.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	defer r.Close()

	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}

	return decompressed, nil
}
