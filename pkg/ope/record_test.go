package ope

import "testing"

func buildTuple(i32 int32, s string, f64 float64) *Record {
	r := NewRecord(64)
	r.PutNotNullIndicator(Asc)
	r.PutInt32(i32, Asc)
	r.PutNotNullIndicator(Asc)
	r.PutString([]byte(s), Asc)
	r.PutNotNullIndicator(Asc)
	r.PutFloat64(f64, Asc)
	r.MarkEnd()
	return r
}

func TestRecord_TupleOrderingScenarioS2(t *testing.T) {
	t1 := buildTuple(10, "This is a string", 1234.5678)
	tuples := []*Record{
		buildTuple(-10, "This is a string", 12345.6789),
		buildTuple(100, "This is a string", 1234.5678),
		buildTuple(10, "This is a string1", 1234.5678),
		buildTuple(10, "This is a strin", 1234.5678),
		buildTuple(10, "This is a string", -1234.5678),
		buildTuple(10, "This is a string", 1234.5678),
	}
	wantSign := []int{1, -1, -1, 1, 1, 0}

	for i, tk := range tuples {
		got := Compare(t1, tk)
		switch {
		case wantSign[i] > 0 && got <= 0:
			t.Errorf("Compare(t1, t%d) = %d, want > 0", i+2, got)
		case wantSign[i] < 0 && got >= 0:
			t.Errorf("Compare(t1, t%d) = %d, want < 0", i+2, got)
		case wantSign[i] == 0 && got != 0:
			t.Errorf("Compare(t1, t%d) = %d, want 0", i+2, got)
		}
	}
}

func TestRecord_NullSortsFirstScenarioS5(t *testing.T) {
	// spec.md §3/§8 S5: desc indicator bytes are 0xF8 (null) and 0xF0
	// (not-null); 0xF8 > 0xF0 byte-wise, which is the documented inversion
	// that still realizes "NULL sorts first" for the caller under desc.
	nullRec := NewRecord(8)
	nullRec.PutNullIndicator(Desc)
	nullRec.MarkEnd()

	notNullRec := NewRecord(8)
	notNullRec.PutNotNullIndicator(Desc)
	notNullRec.PutInt32(0, Desc)
	notNullRec.MarkEnd()

	if nullRec.Bytes()[0] != 0xF8 {
		t.Fatalf("desc null indicator = %x, want 0xF8", nullRec.Bytes()[0])
	}
	if notNullRec.Bytes()[0] != 0xF0 {
		t.Fatalf("desc not-null indicator = %x, want 0xF0", notNullRec.Bytes()[0])
	}
	if nullRec.Bytes()[0] <= notNullRec.Bytes()[0] {
		t.Fatalf("expected desc null indicator byte (0xF8) > not-null indicator byte (0xF0)")
	}

	ascNullRec := NewRecord(8)
	ascNullRec.PutNullIndicator(Asc)
	ascNullRec.MarkEnd()
	ascNotNullRec := NewRecord(8)
	ascNotNullRec.PutNotNullIndicator(Asc)
	ascNotNullRec.PutInt32(0, Asc)
	ascNotNullRec.MarkEnd()
	if ascNullRec.Bytes()[0] != 0x07 {
		t.Fatalf("asc null indicator = %x, want 0x07", ascNullRec.Bytes()[0])
	}
	if ascNotNullRec.Bytes()[0] != 0x0F {
		t.Fatalf("asc not-null indicator = %x, want 0x0F", ascNotNullRec.Bytes()[0])
	}
	if Compare(ascNullRec, ascNotNullRec) >= 0 {
		t.Fatalf("asc: null record should sort before not-null record")
	}
}

func TestRecord_WriteMarkEndResetReadRoundTrip(t *testing.T) {
	r := NewRecord(32)
	r.PutNotNullIndicator(Asc)
	r.PutInt32(-42, Asc)
	r.PutNotNullIndicator(Asc)
	r.PutString([]byte("hello"), Asc)
	r.PutNullIndicator(Asc)
	r.PutNotNullIndicator(Asc)
	r.PutBool(true, Asc)
	r.MarkEnd()

	endPos := r.EndPos()
	r.ResetCursor()
	if r.Pos() != 0 {
		t.Fatalf("ResetCursor left Pos() = %d, want 0", r.Pos())
	}

	if r.CheckNullIndicator(Asc) {
		t.Fatal("field 1: expected not-null")
	}
	if got := r.GetInt32(Asc); got != -42 {
		t.Errorf("field 1: got %d, want -42", got)
	}

	if r.CheckNullIndicator(Asc) {
		t.Fatal("field 2: expected not-null")
	}
	if got := r.GetString(Asc); string(got) != "hello" {
		t.Errorf("field 2: got %q, want hello", got)
	}

	if !r.CheckNullIndicator(Asc) {
		t.Fatal("field 3: expected null")
	}

	if r.CheckNullIndicator(Asc) {
		t.Fatal("field 4: expected not-null")
	}
	if got := r.GetBool(Asc); got != true {
		t.Errorf("field 4: got %v, want true", got)
	}

	if r.Pos() != endPos {
		t.Errorf("after reading all fields, Pos() = %d, want EndPos() = %d", r.Pos(), endPos)
	}
}

func TestRecord_WrapRecordIsSealedAndReadable(t *testing.T) {
	src := NewRecord(16)
	src.PutNotNullIndicator(Asc)
	src.PutInt64(7, Asc)
	src.MarkEnd()

	wrapped := WrapRecord(src.Bytes())
	if wrapped.Pos() != 0 {
		t.Fatalf("WrapRecord: Pos() = %d, want 0", wrapped.Pos())
	}
	if wrapped.EndPos() != len(src.Bytes()) {
		t.Fatalf("WrapRecord: EndPos() = %d, want %d", wrapped.EndPos(), len(src.Bytes()))
	}
	if wrapped.CheckNullIndicator(Asc) {
		t.Fatal("expected not-null")
	}
	if got := wrapped.GetInt64(Asc); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestRecord_GrowPreservesContents(t *testing.T) {
	r := NewRecord(2)
	r.PutNotNullIndicator(Asc)
	r.PutInt64(123456789, Asc)
	r.MarkEnd()
	r.ResetCursor()
	if r.CheckNullIndicator(Asc) {
		t.Fatal("expected not-null")
	}
	if got := r.GetInt64(Asc); got != 123456789 {
		t.Errorf("got %d, want 123456789", got)
	}
}

func TestRecord_PutFieldGetFieldRoundTrip(t *testing.T) {
	r := NewRecord(64)
	fields := []Value{
		{Type: TypeInt, I32: -7},
		{Type: TypeLong, I64: 99999},
		{Type: TypeDouble, F64: 3.5},
		{Type: TypeBool, B: true},
		{Type: TypeString, Str: []byte("abc")},
		{Type: TypeBinary, Str: []byte{0x00, 0x01}},
		{Type: TypeInt, Null: true},
	}
	for _, f := range fields {
		r.PutField(f, Asc)
	}
	r.MarkEnd()
	r.ResetCursor()

	types := []Type{TypeInt, TypeLong, TypeDouble, TypeBool, TypeString, TypeBinary, TypeInt}
	for i, typ := range types {
		got := r.GetField(typ, Asc)
		want := fields[i]
		if got.Null != want.Null {
			t.Fatalf("field %d: Null = %v, want %v", i, got.Null, want.Null)
		}
		if got.Null {
			continue
		}
		switch typ {
		case TypeInt:
			if got.I32 != want.I32 {
				t.Errorf("field %d: I32 = %d, want %d", i, got.I32, want.I32)
			}
		case TypeLong:
			if got.I64 != want.I64 {
				t.Errorf("field %d: I64 = %d, want %d", i, got.I64, want.I64)
			}
		case TypeDouble:
			if got.F64 != want.F64 {
				t.Errorf("field %d: F64 = %v, want %v", i, got.F64, want.F64)
			}
		case TypeBool:
			if got.B != want.B {
				t.Errorf("field %d: B = %v, want %v", i, got.B, want.B)
			}
		case TypeString, TypeBinary:
			if string(got.Str) != string(want.Str) {
				t.Errorf("field %d: Str = %x, want %x", i, got.Str, want.Str)
			}
		}
	}
}
