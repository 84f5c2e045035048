// Package endian provides byte order utilities for binary serialization.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so callers can both
// write into fixed offsets and append through one value.
//
// The emstr checksum encoder serializes digests big-endian so the hex
// rendering reads most significant byte first:
//
//	engine := endian.GetBigEndianEngine()
//	engine.PutUint64(buf[:8], digest)
//
// All returned engines are immutable and stateless, safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations. It is
// satisfied by binary.LittleEndian and binary.BigEndian.
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
