package parquetstats

import (
	"fmt"

	"github.com/fraugster/parquet-go/parquet"
)

type internalInt96 struct{}

func (internalInt96) ParquetType() parquet.Type {
	return parquet.Type_INT96
}

func (internalInt96) Less(a, b Int96) bool {
	return a.Before(b)
}

func (internalInt96) ByteSize(Int96) int64 {
	return 12
}

func (internalInt96) EncodePlain(v Int96, byteCount int64, dst []byte) (int64, error) {
	if byteCount != 12 || int64(len(dst)) < byteCount {
		return 0, fmt.Errorf("int96: cannot encode into %d bytes (buffer size %d)", byteCount, len(dst))
	}
	copy(dst, v[:])
	return 12, nil
}

// DecodePlain rejects timestamps outside the valid calendar range. Such
// values were written with a semantically different encoding (e.g. by old
// parquet-mr versions); no conversion is attempted, the statistics are
// simply not usable.
func (internalInt96) DecodePlain(buf []byte) (Int96, error) {
	var v Int96
	if len(buf) != 12 {
		return v, fmt.Errorf("int96: %w: got %d bytes, want 12", ErrInvalidLength, len(buf))
	}
	copy(v[:], buf)
	if !v.Valid() {
		return Int96{}, fmt.Errorf("int96: %w: julian day %d, nanos %d", ErrInvalidTimestamp, v.JulianDay(), v.Nanos())
	}
	return v, nil
}
