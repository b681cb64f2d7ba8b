package ope

import (
	"bytes"
	"encoding/hex"
	"math"
	"testing"
)

func TestEncodeInt32_OrderingScenarioS1(t *testing.T) {
	// spec.md §8 S1: -10, 10, 100 asc -> 7FFFFFF6, 8000000A, 80000064
	cases := []struct {
		v    int32
		want string
	}{
		{-10, "7ffffff6"},
		{10, "8000000a"},
		{100, "80000064"},
	}
	var encoded [][]byte
	for _, c := range cases {
		buf := make([]byte, LenInt)
		EncodeInt32(buf, c.v, Asc)
		if got := hex.EncodeToString(buf); got != c.want {
			t.Errorf("EncodeInt32(%d) = %s, want %s", c.v, got, c.want)
		}
		encoded = append(encoded, buf)
	}
	for i := 1; i < len(encoded); i++ {
		if bytes.Compare(encoded[i-1], encoded[i]) >= 0 {
			t.Errorf("expected strictly increasing byte order, got %x then %x", encoded[i-1], encoded[i])
		}
	}
}

func TestEncodeInt32_RoundTrip(t *testing.T) {
	vs := []int32{math.MinInt32, -1, 0, 1, math.MaxInt32, -12345, 98765}
	for _, dir := range []Direction{Asc, Desc} {
		for _, v := range vs {
			buf := make([]byte, LenInt)
			EncodeInt32(buf, v, dir)
			if got := DecodeInt32(buf, dir); got != v {
				t.Errorf("round-trip(%d, %s) = %d", v, dir, got)
			}
		}
	}
}

func TestEncodeInt32_OrderPreservation(t *testing.T) {
	pairs := [][2]int32{{-10, 10}, {math.MinInt32, math.MaxInt32}, {-1, 0}, {0, 1}}
	for _, p := range pairs {
		a, b := make([]byte, LenInt), make([]byte, LenInt)
		EncodeInt32(a, p[0], Asc)
		EncodeInt32(b, p[1], Asc)
		if bytes.Compare(a, b) >= 0 {
			t.Errorf("asc: encode(%d) should be < encode(%d)", p[0], p[1])
		}
		EncodeInt32(a, p[0], Desc)
		EncodeInt32(b, p[1], Desc)
		if bytes.Compare(a, b) <= 0 {
			t.Errorf("desc: encode(%d) should be > encode(%d)", p[0], p[1])
		}
	}
}

func TestEncodeInt64_RoundTrip(t *testing.T) {
	vs := []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}
	for _, dir := range []Direction{Asc, Desc} {
		for _, v := range vs {
			buf := make([]byte, LenLong)
			EncodeInt64(buf, v, dir)
			if got := DecodeInt64(buf, dir); got != v {
				t.Errorf("round-trip(%d, %s) = %d", v, dir, got)
			}
		}
	}
}

func TestEncodeTimestamp_AscIsPlainBigEndian(t *testing.T) {
	buf := make([]byte, LenTimestamp)
	EncodeTimestamp(buf, 0x0102030405060708, Asc)
	want, _ := hex.DecodeString("0102030405060708")
	if !bytes.Equal(buf, want) {
		t.Errorf("asc timestamp encoding = %x, want %x", buf, want)
	}
}

func TestEncodeTimestamp_RoundTrip(t *testing.T) {
	vs := []uint64{0, 1, math.MaxUint64, 1 << 40}
	for _, dir := range []Direction{Asc, Desc} {
		for _, v := range vs {
			buf := make([]byte, LenTimestamp)
			EncodeTimestamp(buf, v, dir)
			if got := DecodeTimestamp(buf, dir); got != v {
				t.Errorf("round-trip(%d, %s) = %d", v, dir, got)
			}
		}
	}
}

func TestEncodeTimestamp_OrderPreservation(t *testing.T) {
	a, b := make([]byte, LenTimestamp), make([]byte, LenTimestamp)
	EncodeTimestamp(a, 100, Asc)
	EncodeTimestamp(b, 200, Asc)
	if bytes.Compare(a, b) >= 0 {
		t.Error("asc: smaller timestamp should encode smaller")
	}
	EncodeTimestamp(a, 100, Desc)
	EncodeTimestamp(b, 200, Desc)
	if bytes.Compare(a, b) <= 0 {
		t.Error("desc: smaller timestamp should encode larger")
	}
}

func TestEncodeFloat64_RoundTrip(t *testing.T) {
	vs := []float64{0, -0.0, 1, -1, 1234.5678, -1234.5678, math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64}
	for _, dir := range []Direction{Asc, Desc} {
		for _, v := range vs {
			buf := make([]byte, LenDouble)
			EncodeFloat64(buf, v, dir)
			got := DecodeFloat64(buf, dir)
			if got != v {
				t.Errorf("round-trip(%v, %s) = %v", v, dir, got)
			}
		}
	}
}

func TestEncodeFloat64_SignBoundary(t *testing.T) {
	// spec.md §8 S6: -1.0 < -0.0 <= +0.0 < 1.0 under memcmp, asc.
	vals := []float64{-1.0, math.Copysign(0, -1), 0.0, 1.0}
	var encoded [][]byte
	for _, v := range vals {
		buf := make([]byte, LenDouble)
		EncodeFloat64(buf, v, Asc)
		encoded = append(encoded, buf)
	}
	if bytes.Compare(encoded[0], encoded[1]) >= 0 {
		t.Error("-1.0 should encode strictly less than -0.0")
	}
	if bytes.Compare(encoded[1], encoded[2]) > 0 {
		t.Error("-0.0 should encode <= +0.0")
	}
	if bytes.Compare(encoded[2], encoded[3]) >= 0 {
		t.Error("+0.0 should encode strictly less than 1.0")
	}
}

func TestEncodeFloat64_OrderPreservation(t *testing.T) {
	pairs := [][2]float64{{-1234.5678, 1234.5678}, {-1, 0}, {0, 1}, {-100, -1}, {1, 100}}
	for _, p := range pairs {
		a, b := make([]byte, LenDouble), make([]byte, LenDouble)
		EncodeFloat64(a, p[0], Asc)
		EncodeFloat64(b, p[1], Asc)
		if bytes.Compare(a, b) >= 0 {
			t.Errorf("asc: encode(%v) should be < encode(%v)", p[0], p[1])
		}
		EncodeFloat64(a, p[0], Desc)
		EncodeFloat64(b, p[1], Desc)
		if bytes.Compare(a, b) <= 0 {
			t.Errorf("desc: encode(%v) should be > encode(%v)", p[0], p[1])
		}
	}
}

func TestEncodeBool(t *testing.T) {
	buf := make([]byte, LenBool)
	EncodeBool(buf, false, Asc)
	if buf[0] != 0x00 {
		t.Errorf("asc false = %x, want 0x00", buf[0])
	}
	EncodeBool(buf, true, Asc)
	if buf[0] != 0x01 {
		t.Errorf("asc true = %x, want 0x01", buf[0])
	}
	EncodeBool(buf, false, Desc)
	if buf[0] != 0x01 {
		t.Errorf("desc false = %x, want 0x01", buf[0])
	}
	EncodeBool(buf, true, Desc)
	if buf[0] != 0x00 {
		t.Errorf("desc true = %x, want 0x00", buf[0])
	}
}

func TestEncodeBool_RoundTrip(t *testing.T) {
	for _, dir := range []Direction{Asc, Desc} {
		for _, v := range []bool{true, false} {
			buf := make([]byte, LenBool)
			EncodeBool(buf, v, dir)
			if got := DecodeBool(buf, dir); got != v {
				t.Errorf("round-trip(%v, %s) = %v", v, dir, got)
			}
		}
	}
}
