package ope

import "math"

const (
	signBit32 uint32 = 0x80000000
	mask32    uint32 = 0x7FFFFFFF

	signBit64 uint64 = 0x8000000000000000
	mask64    uint64 = 0x7FFFFFFFFFFFFFFF

	allOnes64 uint64 = 0xFFFFFFFFFFFFFFFF
)

// EncodeInt32 writes the order-preserving encoding of a signed 32-bit
// integer to dst[:4]. Ascending flips the sign bit so the most negative
// value maps to 0x00000000 and the most positive to 0xFFFFFFFF; descending
// flips every non-sign bit, inverting that order.
func EncodeInt32(dst []byte, v int32, dir Direction) {
	u := uint32(v)
	if dir == Asc {
		u ^= signBit32
	} else {
		u ^= mask32
	}
	putUint32BE(dst, u)
}

// DecodeInt32 reverses EncodeInt32.
func DecodeInt32(src []byte, dir Direction) int32 {
	u := getUint32BE(src)
	if dir == Asc {
		u ^= signBit32
	} else {
		u ^= mask32
	}
	return int32(u)
}

// EncodeInt64 writes the order-preserving encoding of a signed 64-bit
// integer to dst[:8]. DATE uses this encoding directly (it is a signed
// 64-bit millisecond count).
func EncodeInt64(dst []byte, v int64, dir Direction) {
	u := uint64(v)
	if dir == Asc {
		u ^= signBit64
	} else {
		u ^= mask64
	}
	putUint64BE(dst, u)
}

// DecodeInt64 reverses EncodeInt64.
func DecodeInt64(src []byte, dir Direction) int64 {
	u := getUint64BE(src)
	if dir == Asc {
		u ^= signBit64
	} else {
		u ^= mask64
	}
	return int64(u)
}

// EncodeTimestamp writes the order-preserving encoding of an unsigned
// 64-bit nanosecond timestamp to dst[:8]. Ascending is a plain big-endian
// serialization; descending inverts every bit.
func EncodeTimestamp(dst []byte, v uint64, dir Direction) {
	u := v
	if dir == Desc {
		u ^= allOnes64
	}
	putUint64BE(dst, u)
}

// DecodeTimestamp reverses EncodeTimestamp.
func DecodeTimestamp(src []byte, dir Direction) uint64 {
	u := getUint64BE(src)
	if dir == Desc {
		u ^= allOnes64
	}
	return u
}

// EncodeFloat64 writes the order-preserving encoding of an IEEE-754
// binary64 value to dst[:8]. NaN bit patterns round-trip but their
// position in the order is unspecified.
func EncodeFloat64(dst []byte, v float64, dir Direction) {
	u := math.Float64bits(v)
	negative := u&signBit64 != 0
	if dir == Asc {
		if negative {
			u ^= allOnes64
		} else {
			u ^= signBit64
		}
	} else {
		if !negative {
			u ^= mask64
		}
	}
	putUint64BE(dst, u)
}

// DecodeFloat64 reverses EncodeFloat64. The branch is selected by the sign
// bit of the transformed bits, which after the inverse XOR is the sign bit
// of the original value.
func DecodeFloat64(src []byte, dir Direction) float64 {
	u := getUint64BE(src)
	if dir == Asc {
		if u&signBit64 != 0 {
			u ^= signBit64
		} else {
			u ^= allOnes64
		}
	} else {
		if u&signBit64 == 0 {
			u ^= mask64
		}
	}
	return math.Float64frombits(u)
}

// EncodeBool writes a single byte to dst[:1]: 0x00 for false and 0x01 for
// true under ascending order, inverted under descending.
func EncodeBool(dst []byte, v bool, dir Direction) {
	b := byte(0)
	if v {
		b = 1
	}
	if dir == Desc {
		b ^= 1
	}
	dst[0] = b
}

// DecodeBool reverses EncodeBool. Any nonzero byte decodes to true.
func DecodeBool(src []byte, dir Direction) bool {
	b := src[0]
	if dir == Desc {
		b ^= 1
	}
	return b != 0
}
