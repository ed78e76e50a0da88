package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.ByteOrder(binary.LittleEndian), binary.ByteOrder(engine))

	buf := engine.AppendUint64(nil, 1)
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, buf)
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	buf := engine.AppendUint64(nil, 1)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, buf)
}

func TestEngineRoundTrip(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint64(nil, 0xDEADBEEF)
	require.Equal(t, uint64(0xDEADBEEF), engine.Uint64(buf))
}
