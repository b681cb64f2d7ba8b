//go:build fuzz
// +build fuzz

package ope

import (
	"bytes"
	"testing"
)

// FuzzEncodeInt32_RoundTrip checks that every int32 bit pattern round-trips
// through the scalar codec under both directions.
func FuzzEncodeInt32_RoundTrip(f *testing.F) {
	f.Add(int32(0))
	f.Add(int32(-1))
	f.Add(int32(1))
	f.Add(int32(-2147483648))
	f.Add(int32(2147483647))

	f.Fuzz(func(t *testing.T, v int32) {
		for _, dir := range []Direction{Asc, Desc} {
			buf := make([]byte, LenInt)
			EncodeInt32(buf, v, dir)
			if got := DecodeInt32(buf, dir); got != v {
				t.Fatalf("round-trip(%d, %s) = %d", v, dir, got)
			}
		}
	})
}

// FuzzEncodeFloat64_RoundTrip checks that every float64 bit pattern
// round-trips, excluding NaN whose sort position is unspecified.
func FuzzEncodeFloat64_RoundTrip(f *testing.F) {
	f.Add(0.0)
	f.Add(-0.0)
	f.Add(1234.5678)
	f.Add(-1234.5678)

	f.Fuzz(func(t *testing.T, v float64) {
		if v != v { // NaN
			t.Skip("NaN sort position is unspecified")
		}
		for _, dir := range []Direction{Asc, Desc} {
			buf := make([]byte, LenDouble)
			EncodeFloat64(buf, v, dir)
			if got := DecodeFloat64(buf, dir); got != v {
				t.Fatalf("round-trip(%v, %s) = %v", v, dir, got)
			}
		}
	})
}

// FuzzEncodeString_SelfDelimiting checks that the encoded length the
// encoder reports always matches the length the decoder's forward scan
// discovers, for strings containing no embedded terminator byte.
func FuzzEncodeString_SelfDelimiting(f *testing.F) {
	f.Add("")
	f.Add("a")
	f.Add("This is a string")

	f.Fuzz(func(t *testing.T, s string) {
		if bytes.IndexByte([]byte(s), 0x00) >= 0 {
			t.Skip("embedded NUL violates the STRING precondition")
		}
		for _, dir := range []Direction{Asc, Desc} {
			if dir == Desc && bytes.IndexByte([]byte(s), 0xFF) >= 0 {
				continue
			}
			encLen := CalcStringEncodedLen(len(s))
			buf := make([]byte, encLen)
			n := EncodeString(buf, []byte(s), dir)
			if n != encLen {
				t.Fatalf("EncodeString(%q, %s) wrote %d, want %d", s, dir, n, encLen)
			}
			if scanned := ScanStringLen(buf, dir); scanned != encLen {
				t.Fatalf("ScanStringLen(%q, %s) = %d, want %d", s, dir, scanned, encLen)
			}
			dst := make([]byte, len(s))
			if n := DecodeString(dst, buf, dir); n != len(s) || string(dst[:n]) != s {
				t.Fatalf("DecodeString(%q, %s) = %q", s, dir, dst[:n])
			}
		}
	})
}

// FuzzEncodeBinary_EscapeCorrectness checks that arbitrary byte payloads
// (including embedded 0x00 and 0xFF bytes) round-trip exactly through the
// escape-and-terminate BINARY codec.
func FuzzEncodeBinary_EscapeCorrectness(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xFF})
	f.Add([]byte{0x11, 0x22, 0x00, 0x33})

	f.Fuzz(func(t *testing.T, payload []byte) {
		if len(payload) > 10000 {
			t.Skip("input too large for fuzz test")
		}
		for _, dir := range []Direction{Asc, Desc} {
			encLen := CalcBinaryEncodedLen(payload)
			buf := make([]byte, encLen)
			n := EncodeBinary(buf, payload, dir)
			if n != encLen {
				t.Fatalf("EncodeBinary(%x, %s) wrote %d, want %d", payload, dir, n, encLen)
			}
			dst := make([]byte, len(payload))
			consumed, decodedLen := DecodeBinary(dst, buf, dir)
			if consumed != n {
				t.Fatalf("DecodeBinary(%s) consumed %d, want %d", dir, consumed, n)
			}
			if decodedLen != len(payload) || !bytes.Equal(dst[:decodedLen], payload) {
				t.Fatalf("DecodeBinary(%x, %s) = %x", payload, dir, dst[:decodedLen])
			}
		}
	})
}
