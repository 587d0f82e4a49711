package parquetstats

import (
	"bytes"
	"fmt"

	"github.com/fraugster/parquet-go/parquet"
)

// byteArrayBound is one end (min or max) of a byte array column's range.
// value is a view into memory owned by whoever produced the value, usually
// a transient row batch; buf is nil while the view is borrowed and holds the
// owned copy once materialized. Keeping the view borrowed makes the common
// case cheap: most updates lose the comparison and never need a copy.
type byteArrayBound struct {
	value []byte
	buf   []byte
}

// set points the bound at new source-owned memory; a previously materialized
// copy no longer matches and is dropped.
func (b *byteArrayBound) set(v []byte) {
	b.value = v
	b.buf = nil
}

func (b *byteArrayBound) materialize() {
	if b.buf != nil {
		return
	}
	// make instead of append so that an empty value still yields a non-nil
	// buffer, which is what marks the bound as owned
	b.buf = make([]byte, len(b.value))
	copy(b.buf, b.value)
	b.value = b.buf
}

func (b *byteArrayBound) reset() {
	b.value = nil
	b.buf = nil
}

// ByteArrayStats accumulates min/max for BYTE_ARRAY and non-decimal
// FIXED_LEN_BYTE_ARRAY columns, ordered byte-lexicographically.
//
// The values passed to Update are not copied. Before the memory backing
// them is released or reused, and before the accumulator is merged into one
// belonging to a different batch lifetime, Materialize must be called. This
// is a precondition of the calling pipeline, not something checked at
// runtime.
type ByteArrayStats struct {
	impl internalByteArray

	hasValues bool
	min, max  byteArrayBound
}

// NewByteArrayStats creates an accumulator for a byte array column.
func NewByteArrayStats() *ByteArrayStats {
	return &ByteArrayStats{}
}

func (s *ByteArrayStats) Update(v []byte) {
	if !s.hasValues {
		s.hasValues = true
		s.min.set(v)
		s.max.set(v)
		return
	}
	if bytes.Compare(v, s.min.value) < 0 {
		s.min.set(v)
	}
	if bytes.Compare(v, s.max.value) > 0 {
		s.max.set(v)
	}
}

func (s *ByteArrayStats) Merge(other Statistics) {
	o, ok := other.(*ByteArrayStats)
	if !ok {
		panic(fmt.Sprintf("cannot merge statistics of type %T into %T", other, s))
	}
	if !o.hasValues {
		return
	}
	s.Update(o.min.value)
	s.Update(o.max.value)
}

func (s *ByteArrayStats) HasValues() bool {
	return s.hasValues
}

// Min returns the current minimum as a view; see Materialize for how long
// it stays valid.
func (s *ByteArrayStats) Min() ([]byte, bool) {
	return s.min.value, s.hasValues
}

// Max returns the current maximum as a view; see Materialize for how long
// it stays valid.
func (s *ByteArrayStats) Max() ([]byte, bool) {
	return s.max.value, s.hasValues
}

func (s *ByteArrayStats) BytesNeeded() int64 {
	return s.impl.ByteSize(s.min.value) + s.impl.ByteSize(s.max.value)
}

func (s *ByteArrayStats) EncodeTo(out *parquet.Statistics) {
	if !s.hasValues {
		panic("EncodeTo called on statistics without values")
	}
	out.MinValue = s.EncodePlainValue(s.min.value)
	out.MaxValue = s.EncodePlainValue(s.max.value)
}

// EncodePlainValue copies the raw bytes; the Statistics structure stores
// byte arrays without any framing. The result is non-nil even for an empty
// value, so the thrift field is written as present.
func (s *ByteArrayStats) EncodePlainValue(v []byte) []byte {
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

// DecodePlainValue returns the stored bytes as-is. The result is a view
// over buf and shares its lifetime.
func (s *ByteArrayStats) DecodePlainValue(buf []byte) ([]byte, error) {
	return s.impl.DecodePlain(buf)
}

// Materialize copies any still-borrowed min/max into buffers the
// accumulator owns. It is idempotent, and after it returns the accumulator
// no longer references the memory its input values lived in.
func (s *ByteArrayStats) Materialize() {
	if !s.hasValues {
		return
	}
	s.min.materialize()
	s.max.materialize()
}

func (s *ByteArrayStats) Reset() {
	s.hasValues = false
	s.min.reset()
	s.max.reset()
}
