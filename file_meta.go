package parquetstats

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/fraugster/parquet-go/parquet"
)

var magic = []byte{'P', 'A', 'R', '1'}

// ReadFileMetaData reads the footer metadata of a parquet file, which is
// where the per-column statistics records live. The magic bytes at both
// ends of the file are verified before the footer is parsed.
func ReadFileMetaData(r io.ReadSeeker) (*parquet.FileMetaData, error) {
	buf := make([]byte, 4)

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to file start failed: %w", err)
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read the file magic header failed: %w", err)
	}
	if !bytes.Equal(buf, magic) {
		return nil, errors.New("invalid parquet file header")
	}

	if _, err := r.Seek(-4, io.SeekEnd); err != nil {
		return nil, fmt.Errorf("seek to file end failed: %w", err)
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read the file magic footer failed: %w", err)
	}
	if !bytes.Equal(buf, magic) {
		return nil, errors.New("invalid parquet file footer")
	}

	if _, err := r.Seek(-8, io.SeekEnd); err != nil {
		return nil, fmt.Errorf("seek for the footer len failed: %w", err)
	}
	var footerLen int32
	if err := binary.Read(r, binary.LittleEndian, &footerLen); err != nil {
		return nil, fmt.Errorf("read the footer len failed: %w", err)
	}
	if footerLen <= 0 {
		return nil, fmt.Errorf("invalid footer len %d", footerLen)
	}

	if _, err := r.Seek(-8-int64(footerLen), io.SeekEnd); err != nil {
		return nil, fmt.Errorf("seek to file meta data failed: %w", err)
	}
	meta := parquet.NewFileMetaData()
	if err := readThrift(context.Background(), meta, io.LimitReader(r, int64(footerLen))); err != nil {
		return nil, fmt.Errorf("read file meta data failed: %w", err)
	}

	return meta, nil
}
