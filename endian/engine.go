// Package endian provides byte order utilities for binary decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from the standard
// encoding/binary package into a single EndianEngine interface so that fixed
// layout structures can be parsed and serialized through one value.
//
// The IFC artifact format is little-endian; GetLittleEndianEngine is the
// engine the reader uses throughout. The big-endian engine exists for tools
// that want to inspect foreign byte orders with the same section types.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian,
// so any standard-library byte order value can be used directly.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the LSB (0x00) is stored first,
	// on a big-endian host the MSB (0x01) is.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers little-endian.
//
// The zero-copy partition views cast blob bytes directly into record structs,
// which is only faithful to the artifact's little-endian layout on a
// little-endian host.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
