package cmd

import (
	"fmt"

	"github.com/ssargent/freyja-ope/pkg/ope"
)

// encodeScalar encodes a single typed value with the pure scalar codec and
// returns the encoded bytes.
func encodeScalar(t ope.Type, dir ope.Direction, v ope.Value) ([]byte, error) {
	switch t {
	case ope.TypeInt:
		dst := make([]byte, ope.LenInt)
		ope.EncodeInt32(dst, v.I32, dir)
		return dst, nil
	case ope.TypeLong, ope.TypeDate:
		dst := make([]byte, ope.LenLong)
		ope.EncodeInt64(dst, v.I64, dir)
		return dst, nil
	case ope.TypeTimestamp:
		dst := make([]byte, ope.LenTimestamp)
		ope.EncodeTimestamp(dst, uint64(v.I64), dir)
		return dst, nil
	case ope.TypeDouble:
		dst := make([]byte, ope.LenDouble)
		ope.EncodeFloat64(dst, v.F64, dir)
		return dst, nil
	case ope.TypeBool:
		dst := make([]byte, ope.LenBool)
		ope.EncodeBool(dst, v.B, dir)
		return dst, nil
	case ope.TypeString:
		dst := make([]byte, ope.CalcStringEncodedLen(len(v.Str)))
		ope.EncodeString(dst, v.Str, dir)
		return dst, nil
	case ope.TypeBinary, ope.TypeObject:
		dst := make([]byte, ope.CalcBinaryEncodedLen(v.Str))
		ope.EncodeBinary(dst, v.Str, dir)
		return dst, nil
	default:
		return nil, fmt.Errorf("cannot encode type %s as a bare scalar", t)
	}
}

// decodeScalar is encodeScalar's inverse.
func decodeScalar(t ope.Type, dir ope.Direction, src []byte) (ope.Value, error) {
	switch t {
	case ope.TypeInt:
		if len(src) < ope.LenInt {
			return ope.Value{}, fmt.Errorf("INT encoding needs %d bytes, got %d", ope.LenInt, len(src))
		}
		return ope.Value{Type: t, I32: ope.DecodeInt32(src, dir)}, nil
	case ope.TypeLong, ope.TypeDate:
		if len(src) < ope.LenLong {
			return ope.Value{}, fmt.Errorf("LONG/DATE encoding needs %d bytes, got %d", ope.LenLong, len(src))
		}
		return ope.Value{Type: t, I64: ope.DecodeInt64(src, dir)}, nil
	case ope.TypeTimestamp:
		if len(src) < ope.LenTimestamp {
			return ope.Value{}, fmt.Errorf("TIMESTAMP encoding needs %d bytes, got %d", ope.LenTimestamp, len(src))
		}
		return ope.Value{Type: t, I64: int64(ope.DecodeTimestamp(src, dir))}, nil
	case ope.TypeDouble:
		if len(src) < ope.LenDouble {
			return ope.Value{}, fmt.Errorf("DOUBLE encoding needs %d bytes, got %d", ope.LenDouble, len(src))
		}
		return ope.Value{Type: t, F64: ope.DecodeFloat64(src, dir)}, nil
	case ope.TypeBool:
		if len(src) < ope.LenBool {
			return ope.Value{}, fmt.Errorf("BOOL encoding needs %d byte, got %d", ope.LenBool, len(src))
		}
		return ope.Value{Type: t, B: ope.DecodeBool(src, dir)}, nil
	case ope.TypeString:
		encLen := ope.ScanStringLen(src, dir)
		dst := make([]byte, encLen)
		n := ope.DecodeString(dst, src, dir)
		return ope.Value{Type: t, Str: dst[:n]}, nil
	case ope.TypeBinary, ope.TypeObject:
		dst := make([]byte, len(src))
		_, decodedLen := ope.DecodeBinary(dst, src, dir)
		return ope.Value{Type: t, Str: dst[:decodedLen]}, nil
	default:
		return ope.Value{}, fmt.Errorf("cannot decode type %s as a bare scalar", t)
	}
}
