package parquetstats

import (
	"bytes"
	"fmt"

	"github.com/fraugster/parquet-go/parquet"
)

// The Statistics structure stores byte array values directly, without the
// length prefix the plain page encoding uses.
type internalByteArray struct{}

func (internalByteArray) ParquetType() parquet.Type {
	return parquet.Type_BYTE_ARRAY
}

func (internalByteArray) Less(a, b []byte) bool {
	return bytes.Compare(a, b) < 0
}

func (internalByteArray) ByteSize(v []byte) int64 {
	return int64(len(v))
}

func (internalByteArray) EncodePlain(v []byte, byteCount int64, dst []byte) (int64, error) {
	if byteCount != int64(len(v)) || int64(len(dst)) < byteCount {
		return 0, fmt.Errorf("byte array: cannot encode %d bytes into %d (buffer size %d)", len(v), byteCount, len(dst))
	}
	copy(dst, v)
	return byteCount, nil
}

// DecodePlain returns a view over buf, not a copy. The value is only usable
// while buf is.
func (internalByteArray) DecodePlain(buf []byte) ([]byte, error) {
	return buf, nil
}
