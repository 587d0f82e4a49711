package parquetstats

import (
	"fmt"

	"github.com/fraugster/parquet-go/parquet"
)

// internalDecimal encodes unscaled decimal values as big-endian two's
// complement in a fixed number of bytes. The size is determined by the
// column's declared precision, not by the value, so it is carried here
// instead of being derived in ByteSize.
type internalDecimal struct {
	size int
}

func (internalDecimal) ParquetType() parquet.Type {
	return parquet.Type_FIXED_LEN_BYTE_ARRAY
}

func (internalDecimal) Less(a, b Decimal) bool {
	return a < b
}

func (d internalDecimal) ByteSize(Decimal) int64 {
	return int64(d.size)
}

func (d internalDecimal) EncodePlain(v Decimal, byteCount int64, dst []byte) (int64, error) {
	if byteCount != int64(d.size) || int64(len(dst)) < byteCount {
		return 0, fmt.Errorf("decimal: cannot encode into %d bytes (declared size %d, buffer size %d)", byteCount, d.size, len(dst))
	}
	if !v.fitsIn(d.size) {
		return 0, fmt.Errorf("decimal: %w: %d in %d bytes", ErrValueOutOfRange, int64(v), d.size)
	}
	u := uint64(v)
	for i := d.size - 1; i >= 0; i-- {
		dst[i] = byte(u)
		u >>= 8
	}
	return int64(d.size), nil
}

func (d internalDecimal) DecodePlain(buf []byte) (Decimal, error) {
	if len(buf) != d.size {
		return 0, fmt.Errorf("decimal: %w: got %d bytes, want %d", ErrInvalidLength, len(buf), d.size)
	}
	var v int64
	if buf[0]&0x80 != 0 {
		v = -1 // sign-extend
	}
	for _, b := range buf {
		v = v<<8 | int64(b)
	}
	return Decimal(v), nil
}
