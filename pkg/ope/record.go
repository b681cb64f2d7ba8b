package ope

import "fmt"

// recordState models the cursor's lifecycle: a record is written in one
// pass, sealed, then read back in another pass. It exists purely for
// documentation/assertions; Record does not branch on it in the hot path.
type recordState int

const (
	stateEmpty recordState = iota
	stateWriting
	stateSealed
	stateReading
)

// Record is a cursor-addressed byte buffer: the caller appends
// null-indicator-prefixed fields in schema order with the Put* methods,
// seals it with MarkEnd, then decodes the same fields back in order with
// the Get* methods after ResetCursor.
//
// A Record constructed with NewRecord owns its buffer and grows it on
// demand. A Record constructed with WrapRecord borrows an
// externally-owned byte slice and never reallocates or frees it; only its
// lazily-allocated scratch decode buffer is owned and released.
type Record struct {
	data   []byte
	curPos int
	endPos int
	state  recordState

	owned   bool
	scratch []byte
}

// NewRecord allocates an owning Record with the given initial buffer
// capacity. The buffer grows automatically (via Grow) if a write would
// overflow it.
func NewRecord(initialCapacity int) *Record {
	r := &Record{owned: true}
	r.Alloc(initialCapacity)
	return r
}

// WrapRecord constructs a borrowing Record over an externally-owned byte
// slice, ready for reading; its logical length is len(buf). The caller
// retains ownership of buf; Record never mutates or frees it through this
// constructor's lifetime of Get* calls.
func WrapRecord(buf []byte) *Record {
	return &Record{
		data:   buf,
		curPos: 0,
		endPos: len(buf),
		state:  stateSealed,
		owned:  false,
	}
}

// Alloc replaces the Record's buffer with a freshly allocated one of the
// given size and resets the cursor to zero. Only valid on an owning
// Record.
func (r *Record) Alloc(size int) {
	if !r.owned {
		panic("ope: Alloc called on a borrowed Record")
	}
	r.data = make([]byte, size)
	r.curPos = 0
	r.endPos = 0
	r.state = stateWriting
}

// Grow expands the buffer in place, preserving existing contents, so that
// it has room for at least minSize bytes. It never shrinks the buffer and
// never mutates the cursor. Only valid on an owning Record.
func (r *Record) Grow(minSize int) {
	if !r.owned {
		panic("ope: Grow called on a borrowed Record")
	}
	if minSize <= len(r.data) {
		return
	}
	next := make([]byte, minSize)
	copy(next, r.data)
	r.data = next
}

// ensure grows the buffer, if owning, so that at least n more bytes can be
// written starting at curPos. Borrowed records are the caller's
// responsibility to size correctly; buffer overflow on write to a
// borrowed record is undefined at the codec level.
func (r *Record) ensure(n int) {
	need := r.curPos + n
	if need <= len(r.data) {
		return
	}
	if !r.owned {
		return
	}
	grown := len(r.data) * 2
	if grown < need {
		grown = need
	}
	r.Grow(grown)
}

// MarkEnd captures the current cursor position as the canonical encoded
// length, transitioning the Record from Writing to Sealed.
func (r *Record) MarkEnd() {
	r.endPos = r.curPos
	r.state = stateSealed
}

// ResetCursor rewinds the read/write cursor to the start, transitioning a
// Sealed Record to Reading.
func (r *Record) ResetCursor() {
	r.curPos = 0
	r.state = stateReading
}

// SetCursor positions the cursor at an arbitrary offset, e.g. to re-read a
// field in place.
func (r *Record) SetCursor(pos int) {
	r.curPos = pos
}

// Pos returns the current cursor offset.
func (r *Record) Pos() int { return r.curPos }

// EndPos returns the offset captured by the most recent MarkEnd call.
func (r *Record) EndPos() int { return r.endPos }

// Len returns the capacity of the underlying buffer.
func (r *Record) Len() int { return len(r.data) }

// Data returns the Record's full backing buffer. Callers that want just
// the encoded bytes should slice it to [:EndPos()].
func (r *Record) Data() []byte { return r.data }

// Bytes returns the encoded record, i.e. Data()[:EndPos()].
func (r *Record) Bytes() []byte { return r.data[:r.endPos] }

// --- null / scan-boundary indicators ---

// PutNotNullIndicator writes the not-null field indicator (0x0F ascending,
// 0xF0 descending).
func (r *Record) PutNotNullIndicator(dir Direction) {
	r.ensure(LenNull)
	if dir == Asc {
		r.data[r.curPos] = notNullAsc
	} else {
		r.data[r.curPos] = notNullDesc
	}
	r.curPos += LenNull
}

// PutNullIndicator writes the stored-NULL field indicator (0x07 ascending,
// 0xF8 descending). No value bytes follow.
func (r *Record) PutNullIndicator(dir Direction) {
	r.ensure(LenNull)
	if dir == Asc {
		r.data[r.curPos] = nullAsc
	} else {
		r.data[r.curPos] = nullDesc
	}
	r.curPos += LenNull
}

// PutRangeBoundaryStart writes the open-low range boundary indicator
// (0x00), used when building the start of a scan key for a column the
// scan leaves unconstrained.
func (r *Record) PutRangeBoundaryStart() {
	r.ensure(LenNull)
	r.data[r.curPos] = rangeBoundaryStart
	r.curPos += LenNull
}

// PutRangeBoundaryEnd writes the open-high range boundary indicator
// (0xFF), used when building the end of a scan key for a column the scan
// leaves unconstrained.
func (r *Record) PutRangeBoundaryEnd() {
	r.ensure(LenNull)
	r.data[r.curPos] = rangeBoundaryEnd
	r.curPos += LenNull
}

// PutNotNullCondition writes the non-NULL scan-boundary indicator. It is
// byte-identical to PutNotNullIndicator; the two are distinguished only by
// caller intent (stored field vs. scan key), never by the bytes
// themselves.
func (r *Record) PutNotNullCondition(dir Direction) {
	r.PutNotNullIndicator(dir)
}

// PutNullPointCondition writes the NULL point-equality scan-boundary
// indicator. It is byte-identical to PutNullIndicator.
func (r *Record) PutNullPointCondition(dir Direction) {
	r.PutNullIndicator(dir)
}

// CheckNullIndicator reads and consumes the one-byte indicator at the
// current cursor and reports whether it denotes a stored NULL field.
func (r *Record) CheckNullIndicator(dir Direction) bool {
	b := r.data[r.curPos]
	r.curPos += LenNull
	if dir == Asc {
		return b == nullAsc
	}
	return b == nullDesc
}

// --- scalar field writers ---

func (r *Record) PutInt32(v int32, dir Direction) {
	r.ensure(LenInt)
	EncodeInt32(r.data[r.curPos:], v, dir)
	r.curPos += LenInt
}

func (r *Record) PutInt64(v int64, dir Direction) {
	r.ensure(LenLong)
	EncodeInt64(r.data[r.curPos:], v, dir)
	r.curPos += LenLong
}

// PutDate encodes a DATE field (signed 64-bit milliseconds since epoch),
// identically to PutInt64.
func (r *Record) PutDate(v int64, dir Direction) {
	r.ensure(LenDate)
	EncodeInt64(r.data[r.curPos:], v, dir)
	r.curPos += LenDate
}

func (r *Record) PutTimestamp(v uint64, dir Direction) {
	r.ensure(LenTimestamp)
	EncodeTimestamp(r.data[r.curPos:], v, dir)
	r.curPos += LenTimestamp
}

func (r *Record) PutFloat64(v float64, dir Direction) {
	r.ensure(LenDouble)
	EncodeFloat64(r.data[r.curPos:], v, dir)
	r.curPos += LenDouble
}

func (r *Record) PutBool(v bool, dir Direction) {
	r.ensure(LenBool)
	EncodeBool(r.data[r.curPos:], v, dir)
	r.curPos += LenBool
}

// PutString writes s using the STRING codec.
func (r *Record) PutString(s []byte, dir Direction) {
	r.ensure(CalcStringEncodedLen(len(s)))
	n := EncodeString(r.data[r.curPos:], s, dir)
	r.curPos += n
}

// PutBinary writes payload using the BINARY/OBJECT codec.
func (r *Record) PutBinary(payload []byte, dir Direction) {
	r.ensure(CalcBinaryEncodedLen(payload))
	n := EncodeBinary(r.data[r.curPos:], payload, dir)
	r.curPos += n
}

// --- scalar field readers ---

func (r *Record) GetInt32(dir Direction) int32 {
	v := DecodeInt32(r.data[r.curPos:], dir)
	r.curPos += LenInt
	return v
}

func (r *Record) GetInt64(dir Direction) int64 {
	v := DecodeInt64(r.data[r.curPos:], dir)
	r.curPos += LenLong
	return v
}

func (r *Record) GetDate(dir Direction) int64 {
	v := DecodeInt64(r.data[r.curPos:], dir)
	r.curPos += LenDate
	return v
}

func (r *Record) GetTimestamp(dir Direction) uint64 {
	v := DecodeTimestamp(r.data[r.curPos:], dir)
	r.curPos += LenTimestamp
	return v
}

func (r *Record) GetFloat64(dir Direction) float64 {
	v := DecodeFloat64(r.data[r.curPos:], dir)
	r.curPos += LenDouble
	return v
}

func (r *Record) GetBool(dir Direction) bool {
	v := DecodeBool(r.data[r.curPos:], dir)
	r.curPos += LenBool
	return v
}

// GetString decodes a STRING field at the current cursor into the
// Record's scratch buffer (grown on demand, reused across calls) and
// returns a view of the decoded payload. The returned slice is only valid
// until the next Get call that touches the scratch buffer.
func (r *Record) GetString(dir Direction) []byte {
	encLen := ScanStringLen(r.data[r.curPos:], dir)
	payloadLen := encLen - stringPadLen
	r.growScratch(payloadLen)
	DecodeString(r.scratch, r.data[r.curPos:], dir)
	r.curPos += encLen
	return r.scratch[:payloadLen]
}

// GetBinary decodes a BINARY/OBJECT field at the current cursor into the
// Record's scratch buffer and returns a view of the decoded payload, with
// the same reuse caveat as GetString. Panics with *CorruptEncodingError if
// the encoding is malformed.
func (r *Record) GetBinary(dir Direction) []byte {
	// Worst case the decoded payload is no longer than the remaining
	// buffer; size the scratch buffer generously and let DecodeBinary
	// report the real length.
	r.growScratch(len(r.data) - r.curPos)
	consumed, decodedLen := DecodeBinary(r.scratch, r.data[r.curPos:], dir)
	r.curPos += consumed
	return r.scratch[:decodedLen]
}

func (r *Record) growScratch(n int) {
	if len(r.scratch) >= n {
		return
	}
	r.scratch = make([]byte, n)
}

// Compare performs an unsigned lexicographic comparison over the common
// prefix of a and b up to min(a.EndPos(), b.EndPos()). It returns a value
// <0, 0, or >0 like bytes.Compare.
func Compare(a, b *Record) int {
	n := a.endPos
	if b.endPos < n {
		n = b.endPos
	}
	ab, bb := a.data[:n], b.data[:n]
	for i := 0; i < n; i++ {
		if ab[i] != bb[i] {
			if ab[i] < bb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Value is a typed scalar tagged with its Type, used by schema-driven
// callers (pkg/store, pkg/index, pkg/query) that need to carry values of
// different scalar types through the same code path without a type
// switch at every call site.
type Value struct {
	Type Type
	I32  int32
	I64  int64
	F64  float64
	B    bool
	Str  []byte
	Null bool
}

// PutField writes v's value preceded by the appropriate null indicator
// for dir. If v.Null, only the indicator byte is written.
func (r *Record) PutField(v Value, dir Direction) {
	if v.Null {
		r.PutNullIndicator(dir)
		return
	}
	r.PutNotNullIndicator(dir)
	switch v.Type {
	case TypeInt:
		r.PutInt32(v.I32, dir)
	case TypeLong:
		r.PutInt64(v.I64, dir)
	case TypeDate:
		r.PutDate(v.I64, dir)
	case TypeTimestamp:
		r.PutTimestamp(uint64(v.I64), dir)
	case TypeDouble:
		r.PutFloat64(v.F64, dir)
	case TypeBool:
		r.PutBool(v.B, dir)
	case TypeString:
		r.PutString(v.Str, dir)
	case TypeBinary, TypeObject:
		r.PutBinary(v.Str, dir)
	default:
		panic(fmt.Sprintf("ope: PutField: unsupported type %s", v.Type))
	}
}

// GetField reads one null-indicator-prefixed field of the given type. For
// STRING/BINARY/OBJECT fields, the returned Value.Str aliases the
// Record's scratch buffer and is only valid until the next Get call.
func (r *Record) GetField(t Type, dir Direction) Value {
	if r.CheckNullIndicator(dir) {
		return Value{Type: t, Null: true}
	}
	switch t {
	case TypeInt:
		return Value{Type: t, I32: r.GetInt32(dir)}
	case TypeLong:
		return Value{Type: t, I64: r.GetInt64(dir)}
	case TypeDate:
		return Value{Type: t, I64: r.GetDate(dir)}
	case TypeTimestamp:
		return Value{Type: t, I64: int64(r.GetTimestamp(dir))}
	case TypeDouble:
		return Value{Type: t, F64: r.GetFloat64(dir)}
	case TypeBool:
		return Value{Type: t, B: r.GetBool(dir)}
	case TypeString:
		return Value{Type: t, Str: r.GetString(dir)}
	case TypeBinary, TypeObject:
		return Value{Type: t, Str: r.GetBinary(dir)}
	default:
		panic(fmt.Sprintf("ope: GetField: unsupported type %s", t))
	}
}
