package parquetstats

import (
	"fmt"

	"github.com/fraugster/parquet-go/parquet"
)

// Statistics is the type-erased surface of a per-column min/max accumulator.
// A column-agnostic pipeline holds one Statistics per column and drives them
// uniformly; feeding values happens on the concrete accumulator type, which
// is chosen once at schema resolution time via NewColumnStats.
type Statistics interface {
	// HasValues reports whether at least one value has been observed.
	HasValues() bool
	// Merge folds the min/max of other into this accumulator. Both sides
	// must have been built for the same column type; merging mismatched
	// accumulators is a bug in the calling pipeline and panics.
	Merge(other Statistics)
	// BytesNeeded is the total encoded size of the current min and max.
	BytesNeeded() int64
	// EncodeTo writes the plain-encoded min and max into out. It must not
	// be called on an empty accumulator.
	EncodeTo(out *parquet.Statistics)
	// Materialize makes the accumulator independent of the memory that
	// backed the values it was fed. It is a no-op for all fixed-width
	// types; for byte array columns it copies the current min/max. It must
	// be called before the value source is released or reused.
	Materialize()
	// Reset returns the accumulator to its empty state so it can be reused
	// for the next accumulation scope.
	Reset()
}

// ColumnStats accumulates the min/max of a fixed-width column of physical
// type T. One instance is owned by exactly one producer at a time; parallel
// producers each run their own instance and the partial results are combined
// with Merge afterwards.
type ColumnStats[T any, I internalType[T]] struct {
	impl I

	hasValues bool
	min, max  T

	// encodedSize overrides the per-value size computation for types whose
	// on-disk width is declared by the column, not derived from the value.
	// Negative when unused.
	encodedSize int64
}

func newColumnStats[T any, I internalType[T]](impl I, encodedSize int64) *ColumnStats[T, I] {
	return &ColumnStats[T, I]{impl: impl, encodedSize: encodedSize}
}

// NewBooleanStats creates an accumulator for a BOOLEAN column.
func NewBooleanStats() *ColumnStats[bool, internalBoolean] {
	return newColumnStats[bool, internalBoolean](internalBoolean{}, -1)
}

// NewInt32Stats creates an accumulator for an INT32 column.
func NewInt32Stats() *ColumnStats[int32, internalInt32] {
	return newColumnStats[int32, internalInt32](internalInt32{}, -1)
}

// NewInt64Stats creates an accumulator for an INT64 column.
func NewInt64Stats() *ColumnStats[int64, internalInt64] {
	return newColumnStats[int64, internalInt64](internalInt64{}, -1)
}

// NewFloatStats creates an accumulator for a FLOAT column.
func NewFloatStats() *ColumnStats[float32, internalFloat32] {
	return newColumnStats[float32, internalFloat32](internalFloat32{}, -1)
}

// NewDoubleStats creates an accumulator for a DOUBLE column.
func NewDoubleStats() *ColumnStats[float64, internalFloat64] {
	return newColumnStats[float64, internalFloat64](internalFloat64{}, -1)
}

// NewInt96Stats creates an accumulator for an INT96 timestamp column.
func NewInt96Stats() *ColumnStats[Int96, internalInt96] {
	return newColumnStats[Int96, internalInt96](internalInt96{}, -1)
}

// NewDecimalStats creates an accumulator for a decimal column stored as
// FIXED_LEN_BYTE_ARRAY. The encoded size is fixed by the precision.
func NewDecimalStats(precision int) (*ColumnStats[Decimal, internalDecimal], error) {
	size := DecimalByteSize(precision)
	if size < 0 {
		return nil, fmt.Errorf("unsupported decimal precision %d", precision)
	}
	return newColumnStats[Decimal, internalDecimal](internalDecimal{size: size}, int64(size)), nil
}

// Update observes one value. Feeding order is irrelevant, only the extrema
// survive.
func (s *ColumnStats[T, I]) Update(v T) {
	if !s.hasValues {
		s.hasValues = true
		s.min = v
		s.max = v
		return
	}
	if s.impl.Less(v, s.min) {
		s.min = v
	}
	if s.impl.Less(s.max, v) {
		s.max = v
	}
}

func (s *ColumnStats[T, I]) Merge(other Statistics) {
	o, ok := other.(*ColumnStats[T, I])
	if !ok {
		panic(fmt.Sprintf("cannot merge statistics of type %T into %T", other, s))
	}
	if !o.hasValues {
		return
	}
	s.Update(o.min)
	s.Update(o.max)
}

func (s *ColumnStats[T, I]) HasValues() bool {
	return s.hasValues
}

// Min returns the current minimum. The second return value is false while
// the accumulator is empty.
func (s *ColumnStats[T, I]) Min() (T, bool) {
	return s.min, s.hasValues
}

// Max returns the current maximum. The second return value is false while
// the accumulator is empty.
func (s *ColumnStats[T, I]) Max() (T, bool) {
	return s.max, s.hasValues
}

func (s *ColumnStats[T, I]) BytesNeeded() int64 {
	return s.bytesNeeded(s.min) + s.bytesNeeded(s.max)
}

func (s *ColumnStats[T, I]) bytesNeeded(v T) int64 {
	if s.encodedSize < 0 {
		return s.impl.ByteSize(v)
	}
	return s.encodedSize
}

func (s *ColumnStats[T, I]) EncodeTo(out *parquet.Statistics) {
	if !s.hasValues {
		panic("EncodeTo called on statistics without values")
	}
	out.MinValue = s.EncodePlainValue(s.min)
	out.MaxValue = s.EncodePlainValue(s.max)
}

// EncodePlainValue plain-encodes a single value the way it would appear in
// the min_value/max_value fields. Encoding a value that the column cannot
// represent (e.g. a decimal exceeding the declared precision) is a bug on
// the producing side and panics.
func (s *ColumnStats[T, I]) EncodePlainValue(v T) []byte {
	size := s.bytesNeeded(v)
	buf := make([]byte, size)
	written, err := s.impl.EncodePlain(v, size, buf)
	if err != nil {
		panic(err)
	}
	if written != size {
		panic(fmt.Sprintf("encoded %d bytes, expected %d", written, size))
	}
	return buf
}

// DecodePlainValue parses a stored statistics value. A failure means the
// stored statistics must be treated as absent, it is never fatal.
func (s *ColumnStats[T, I]) DecodePlainValue(buf []byte) (T, error) {
	return s.impl.DecodePlain(buf)
}

// Materialize is a no-op: fixed-width values are held by value and do not
// reference caller memory.
func (s *ColumnStats[T, I]) Materialize() {}

func (s *ColumnStats[T, I]) Reset() {
	var zero T
	s.hasValues = false
	s.min = zero
	s.max = zero
}

// ColumnParameters carries the schema details that influence how statistics
// values of a column are encoded.
type ColumnParameters struct {
	TypeLength    *int32
	Scale         *int32
	Precision     *int32
	ConvertedType *parquet.ConvertedType
	LogicalType   *parquet.LogicalType
}

// IsDecimal reports whether the column's logical or converted type marks it
// as a decimal.
func (p *ColumnParameters) IsDecimal() bool {
	_, ok := p.decimalPrecision()
	return ok
}

func (p *ColumnParameters) decimalPrecision() (int, bool) {
	if p == nil {
		return 0, false
	}
	if p.LogicalType != nil && p.LogicalType.IsSetDECIMAL() {
		return int(p.LogicalType.DECIMAL.Precision), true
	}
	if p.ConvertedType != nil && *p.ConvertedType == parquet.ConvertedType_DECIMAL {
		if p.Precision == nil {
			return 0, false
		}
		return int(*p.Precision), true
	}
	return 0, false
}

// NewColumnStats creates the statistics accumulator for a column of the
// given physical type. It is meant to be called once per column when the
// schema is resolved, so the hot Update path never needs to inspect types.
func NewColumnStats(typ parquet.Type, params *ColumnParameters) (Statistics, error) {
	switch typ {
	case parquet.Type_BOOLEAN:
		return NewBooleanStats(), nil
	case parquet.Type_INT32:
		return NewInt32Stats(), nil
	case parquet.Type_INT64:
		return NewInt64Stats(), nil
	case parquet.Type_FLOAT:
		return NewFloatStats(), nil
	case parquet.Type_DOUBLE:
		return NewDoubleStats(), nil
	case parquet.Type_INT96:
		return NewInt96Stats(), nil
	case parquet.Type_BYTE_ARRAY:
		return NewByteArrayStats(), nil
	case parquet.Type_FIXED_LEN_BYTE_ARRAY:
		if precision, ok := params.decimalPrecision(); ok {
			return NewDecimalStats(precision)
		}
		return NewByteArrayStats(), nil
	default:
		return nil, fmt.Errorf("unsupported physical type %s", typ)
	}
}
