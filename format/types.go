// Package format defines the wire-level constants of the WXF binary format:
// node tokens, magic headers and the compression type enum.
package format

// Token is the single-byte type tag that precedes every encoded node.
type Token byte

const (
	TokenInteger64 Token = 'L' // TokenInteger64 tags a little-endian signed 64-bit integer atom.
	TokenReal64    Token = 'r' // TokenReal64 tags a little-endian IEEE-754 double atom.
	TokenString    Token = 'S' // TokenString tags a varint-length-prefixed UTF-8 string atom.
	TokenSymbol    Token = 's' // TokenSymbol tags a varint-length-prefixed fully-qualified symbol atom.
	TokenFunction  Token = 'f' // TokenFunction tags a varint-arity-prefixed normal (head + arguments) node.
)

func (t Token) String() string {
	switch t {
	case TokenInteger64:
		return "Integer64"
	case TokenReal64:
		return "Real64"
	case TokenString:
		return "String"
	case TokenSymbol:
		return "Symbol"
	case TokenFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Magic version headers. Everything after HeaderCompressed is the
// zlib-compressed byte stream of the uncompressed encoding.
var (
	HeaderUncompressed = []byte("8:")
	HeaderCompressed   = []byte("8C:")
)

// CompressionType selects the payload compression of an export.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZlib CompressionType = 0x2 // CompressionZlib represents zlib (level 9) compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZlib:
		return "Zlib"
	default:
		return "Unknown"
	}
}
