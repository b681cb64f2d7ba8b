package ope

import "encoding/binary"

// All fixed-width scalars are serialized big-endian, so that unsigned
// lexicographic byte comparison equals unsigned integer comparison
// regardless of host endianness.

func putUint32BE(dst []byte, v uint32) {
	binary.BigEndian.PutUint32(dst, v)
}

func getUint32BE(src []byte) uint32 {
	return binary.BigEndian.Uint32(src)
}

func putUint64BE(dst []byte, v uint64) {
	binary.BigEndian.PutUint64(dst, v)
}

func getUint64BE(src []byte) uint64 {
	return binary.BigEndian.Uint64(src)
}
