// Package endian provides byte order utilities for the WXF encode path.
//
// It combines the standard library's ByteOrder and AppendByteOrder
// interfaces into a single EndianEngine interface, so encoders can write
// fixed-width payloads with the append-style API. The WXF wire format is
// defined little-endian; GetLittleEndianEngine is the engine every encoder
// in this module runs on.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian,
// making it fully compatible with existing code while providing access to
// both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
