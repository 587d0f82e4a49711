package parquetstats

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fraugster/parquet-go/parquet"
)

// internalType knows how a single value of the physical type T is ordered
// and how it is laid out in the plain encoding the parquet format uses for
// statistics values. There is one implementation per physical type; the
// byte array type has its own code path (see bytearray_stats.go) because
// its values borrow caller memory.
type internalType[T any] interface {
	ParquetType() parquet.Type
	Less(a, b T) bool
	// ByteSize is the exact number of bytes v occupies in the plain
	// encoding.
	ByteSize(v T) int64
	// EncodePlain writes v into dst using exactly byteCount bytes and
	// returns the number of bytes written.
	EncodePlain(v T, byteCount int64, dst []byte) (int64, error)
	// DecodePlain parses a plain-encoded value out of buf. The whole buffer
	// must be consumed; a leftover or missing byte means the stored
	// statistics value is corrupt.
	DecodePlain(buf []byte) (T, error)
}

type internalInt32 struct{}

func (internalInt32) ParquetType() parquet.Type {
	return parquet.Type_INT32
}

func (internalInt32) Less(a, b int32) bool {
	return a < b
}

func (internalInt32) ByteSize(int32) int64 {
	return 4
}

func (internalInt32) EncodePlain(v int32, byteCount int64, dst []byte) (int64, error) {
	if byteCount != 4 || int64(len(dst)) < byteCount {
		return 0, fmt.Errorf("int32: cannot encode into %d bytes (buffer size %d)", byteCount, len(dst))
	}
	binary.LittleEndian.PutUint32(dst, uint32(v))
	return 4, nil
}

func (internalInt32) DecodePlain(buf []byte) (int32, error) {
	if len(buf) != 4 {
		return 0, fmt.Errorf("int32: %w: got %d bytes, want 4", ErrInvalidLength, len(buf))
	}
	return int32(binary.LittleEndian.Uint32(buf)), nil
}

type internalInt64 struct{}

func (internalInt64) ParquetType() parquet.Type {
	return parquet.Type_INT64
}

func (internalInt64) Less(a, b int64) bool {
	return a < b
}

func (internalInt64) ByteSize(int64) int64 {
	return 8
}

func (internalInt64) EncodePlain(v int64, byteCount int64, dst []byte) (int64, error) {
	if byteCount != 8 || int64(len(dst)) < byteCount {
		return 0, fmt.Errorf("int64: cannot encode into %d bytes (buffer size %d)", byteCount, len(dst))
	}
	binary.LittleEndian.PutUint64(dst, uint64(v))
	return 8, nil
}

func (internalInt64) DecodePlain(buf []byte) (int64, error) {
	if len(buf) != 8 {
		return 0, fmt.Errorf("int64: %w: got %d bytes, want 8", ErrInvalidLength, len(buf))
	}
	return int64(binary.LittleEndian.Uint64(buf)), nil
}

type internalFloat32 struct{}

func (internalFloat32) ParquetType() parquet.Type {
	return parquet.Type_FLOAT
}

func (internalFloat32) Less(a, b float32) bool {
	return a < b
}

func (internalFloat32) ByteSize(float32) int64 {
	return 4
}

func (internalFloat32) EncodePlain(v float32, byteCount int64, dst []byte) (int64, error) {
	if byteCount != 4 || int64(len(dst)) < byteCount {
		return 0, fmt.Errorf("float: cannot encode into %d bytes (buffer size %d)", byteCount, len(dst))
	}
	binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
	return 4, nil
}

func (internalFloat32) DecodePlain(buf []byte) (float32, error) {
	if len(buf) != 4 {
		return 0, fmt.Errorf("float: %w: got %d bytes, want 4", ErrInvalidLength, len(buf))
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf)), nil
}

type internalFloat64 struct{}

func (internalFloat64) ParquetType() parquet.Type {
	return parquet.Type_DOUBLE
}

func (internalFloat64) Less(a, b float64) bool {
	return a < b
}

func (internalFloat64) ByteSize(float64) int64 {
	return 8
}

func (internalFloat64) EncodePlain(v float64, byteCount int64, dst []byte) (int64, error) {
	if byteCount != 8 || int64(len(dst)) < byteCount {
		return 0, fmt.Errorf("double: cannot encode into %d bytes (buffer size %d)", byteCount, len(dst))
	}
	binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
	return 8, nil
}

func (internalFloat64) DecodePlain(buf []byte) (float64, error) {
	if len(buf) != 8 {
		return 0, fmt.Errorf("double: %w: got %d bytes, want 8", ErrInvalidLength, len(buf))
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
}
