package ope_test

import (
	"fmt"

	"github.com/ssargent/freyja-ope/pkg/ope"
)

// ExampleEncodeInt32 demonstrates order-preserving integer encoding.
func ExampleEncodeInt32() {
	buf := make([]byte, ope.LenInt)
	ope.EncodeInt32(buf, -10, ope.Asc)
	fmt.Printf("%x\n", buf)

	// Output:
	// 7ffffff6
}

// ExampleRecord_basic demonstrates writing and reading a small tuple.
func ExampleRecord_basic() {
	r := ope.NewRecord(32)
	r.PutNotNullIndicator(ope.Asc)
	r.PutInt32(42, ope.Asc)
	r.PutNotNullIndicator(ope.Asc)
	r.PutString([]byte("hello"), ope.Asc)
	r.MarkEnd()

	fmt.Printf("Encoded %d bytes\n", r.EndPos())

	r.ResetCursor()
	r.CheckNullIndicator(ope.Asc)
	n := r.GetInt32(ope.Asc)
	r.CheckNullIndicator(ope.Asc)
	s := r.GetString(ope.Asc)
	fmt.Printf("int32: %d\n", n)
	fmt.Printf("string: %s\n", s)

	// Output:
	// Encoded 13 bytes
	// int32: 42
	// string: hello
}

// ExampleRecord_null demonstrates that a NULL field is a single indicator
// byte and sorts before any non-NULL value at the same position.
func ExampleRecord_null() {
	withNull := ope.NewRecord(8)
	withNull.PutNullIndicator(ope.Asc)
	withNull.MarkEnd()

	withValue := ope.NewRecord(8)
	withValue.PutNotNullIndicator(ope.Asc)
	withValue.PutInt32(-2147483648, ope.Asc)
	withValue.MarkEnd()

	fmt.Println(ope.Compare(withNull, withValue) < 0)

	// Output:
	// true
}

// ExampleEncodeBinary demonstrates the escape-and-terminate encoding of a
// payload that contains an embedded zero byte.
func ExampleEncodeBinary() {
	payload := []byte{0x11, 0x22, 0x00, 0x33}
	buf := make([]byte, ope.CalcBinaryEncodedLen(payload))
	ope.EncodeBinary(buf, payload, ope.Asc)
	fmt.Printf("%x\n", buf)

	// Output:
	// 112200ff330000
}
