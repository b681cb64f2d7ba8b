package ope

// Strings are logically byte sequences that must not contain an embedded
// NUL byte (ascending) or 0xFF byte (descending). Encoding is not
// validated against that precondition; callers that need arbitrary bytes
// must use the BINARY codec instead.

// CalcStringEncodedLen returns the encoded length of a STRING payload of
// the given length, so callers can pre-size a destination buffer.
func CalcStringEncodedLen(payloadLen int) int {
	return payloadLen + stringPadLen
}

// EncodeString writes the order-preserving encoding of s to dst and
// returns the number of bytes written, which equals
// CalcStringEncodedLen(len(s)). dst must have at least that much room.
func EncodeString(dst []byte, s []byte, dir Direction) int {
	n := len(s)
	if dir == Asc {
		copy(dst, s)
		dst[n] = 0x00
		dst[n+1] = 0x00
	} else {
		for i, b := range s {
			dst[i] = b ^ 0xFF
		}
		dst[n] = 0xFF
		dst[n+1] = 0xFF
	}
	return n + stringPadLen
}

// ScanStringLen scans forward from the start of an encoded STRING field
// and returns the length of its encoded form (payload plus terminator),
// without decoding the payload. Used to discover a field's width when the
// schema alone does not give it.
func ScanStringLen(src []byte, dir Direction) int {
	term := byte(0x00)
	if dir == Desc {
		term = 0xFF
	}
	i := 0
	for {
		if src[i] != term {
			i++
			continue
		}
		if src[i+1] == term {
			return i + stringPadLen
		}
		i++
	}
}

// DecodeString decodes an encoded STRING field from src into dst (which
// must be at least as large as the payload) and returns the payload
// length. It does not require the caller to already know the encoded
// length; it stops at the terminator pair itself.
func DecodeString(dst []byte, src []byte, dir Direction) int {
	if dir == Asc {
		n := 0
		for {
			if src[n] != 0x00 {
				dst[n] = src[n]
				n++
				continue
			}
			if src[n+1] == 0x00 {
				return n
			}
			dst[n] = src[n]
			n++
		}
	}
	n := 0
	for {
		if src[n] != 0xFF {
			dst[n] = src[n] ^ 0xFF
			n++
			continue
		}
		if src[n+1] == 0xFF {
			return n
		}
		dst[n] = src[n] ^ 0xFF
		n++
	}
}
