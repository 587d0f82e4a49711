package parquetstats

import (
	"fmt"

	"github.com/fraugster/parquet-go/parquet"
)

// EncodeToStatistics builds the thrift statistics record for an accumulator.
// An accumulator that never saw a value (e.g. an all-null column) produces
// no record at all, so nothing is written to the footer for it.
func EncodeToStatistics(s Statistics) *parquet.Statistics {
	if !s.HasValues() {
		return nil
	}
	out := parquet.NewStatistics()
	s.EncodeTo(out)
	return out
}

// Bounds is a decoded min/max pair, ready to be used for pruning decisions.
type Bounds struct {
	// Min and Max hold the typed values: bool, int32, int64, float32,
	// float64, Int96, Decimal or []byte depending on the column's physical
	// type. Byte array values are views into the statistics record they
	// were decoded from.
	Min, Max any

	less func(a, b any) bool
}

// Contains reports whether v falls within [Min, Max]. The value must have
// the same type as the bounds themselves; passing anything else is a bug in
// the caller and panics.
func (b *Bounds) Contains(v any) bool {
	return !b.less(v, b.Min) && !b.less(b.Max, v)
}

// DecodeBounds decodes the min/max pair of a stored statistics record,
// falling back to the deprecated min/max fields when the newer ones are not
// set. It returns nil without error when the record carries no usable pair,
// and an error when the stored bytes are malformed or semantically invalid;
// either way the caller must not prune based on this column.
func DecodeBounds(typ parquet.Type, params *ColumnParameters, st *parquet.Statistics) (*Bounds, error) {
	if st == nil {
		return nil, nil
	}

	minBuf, maxBuf := st.MinValue, st.MaxValue
	if minBuf == nil || maxBuf == nil {
		minBuf, maxBuf = st.Min, st.Max
	}
	if minBuf == nil || maxBuf == nil {
		return nil, nil
	}

	switch typ {
	case parquet.Type_BOOLEAN:
		return decodeBounds[bool](internalBoolean{}, minBuf, maxBuf)
	case parquet.Type_INT32:
		return decodeBounds[int32](internalInt32{}, minBuf, maxBuf)
	case parquet.Type_INT64:
		return decodeBounds[int64](internalInt64{}, minBuf, maxBuf)
	case parquet.Type_FLOAT:
		return decodeBounds[float32](internalFloat32{}, minBuf, maxBuf)
	case parquet.Type_DOUBLE:
		return decodeBounds[float64](internalFloat64{}, minBuf, maxBuf)
	case parquet.Type_INT96:
		return decodeBounds[Int96](internalInt96{}, minBuf, maxBuf)
	case parquet.Type_BYTE_ARRAY:
		return decodeBounds[[]byte](internalByteArray{}, minBuf, maxBuf)
	case parquet.Type_FIXED_LEN_BYTE_ARRAY:
		if precision, ok := params.decimalPrecision(); ok {
			size := DecimalByteSize(precision)
			if size < 0 {
				return nil, fmt.Errorf("unsupported decimal precision %d", precision)
			}
			return decodeBounds[Decimal](internalDecimal{size: size}, minBuf, maxBuf)
		}
		return decodeBounds[[]byte](internalByteArray{}, minBuf, maxBuf)
	default:
		return nil, fmt.Errorf("unsupported physical type %s", typ)
	}
}

func decodeBounds[T any, I internalType[T]](impl I, minBuf, maxBuf []byte) (*Bounds, error) {
	min, err := impl.DecodePlain(minBuf)
	if err != nil {
		return nil, fmt.Errorf("decoding min: %w", err)
	}
	max, err := impl.DecodePlain(maxBuf)
	if err != nil {
		return nil, fmt.Errorf("decoding max: %w", err)
	}
	if impl.Less(max, min) {
		return nil, fmt.Errorf("stored min is greater than stored max")
	}
	return &Bounds{
		Min:  min,
		Max:  max,
		less: func(a, b any) bool { return impl.Less(a.(T), b.(T)) },
	}, nil
}
