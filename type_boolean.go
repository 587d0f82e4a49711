package parquetstats

import (
	"fmt"

	"github.com/fraugster/parquet-go/parquet"
)

// The parquet Statistics structure stores a boolean as a single 0/1 byte,
// not with the bit packing used for page data.
type internalBoolean struct{}

func (internalBoolean) ParquetType() parquet.Type {
	return parquet.Type_BOOLEAN
}

func (internalBoolean) Less(a, b bool) bool {
	return !a && b
}

func (internalBoolean) ByteSize(bool) int64 {
	return 1
}

func (internalBoolean) EncodePlain(v bool, byteCount int64, dst []byte) (int64, error) {
	if byteCount != 1 || len(dst) < 1 {
		return 0, fmt.Errorf("boolean: cannot encode into %d bytes (buffer size %d)", byteCount, len(dst))
	}
	if v {
		dst[0] = 1
	} else {
		dst[0] = 0
	}
	return 1, nil
}

func (internalBoolean) DecodePlain(buf []byte) (bool, error) {
	if len(buf) != 1 {
		return false, fmt.Errorf("boolean: %w: got %d bytes, want 1", ErrInvalidLength, len(buf))
	}
	return buf[0] != 0, nil
}
