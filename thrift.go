package parquetstats

import (
	"bytes"
	"context"
	"io"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/fraugster/parquet-go/parquet"
)

type thriftReader interface {
	Read(ctx context.Context, p thrift.TProtocol) error
}

type thriftWriter interface {
	Write(ctx context.Context, p thrift.TProtocol) error
}

func readThrift(ctx context.Context, obj thriftReader, r io.Reader) error {
	// Make sure we are not using any kind of buffered reader here. The
	// compact protocol reads exactly as many bytes as it needs and anything
	// read ahead is lost to the caller.
	transport := &thrift.StreamTransport{Reader: r}
	proto := thrift.NewTCompactProtocolConf(transport, nil)
	return obj.Read(ctx, proto)
}

func writeThrift(ctx context.Context, obj thriftWriter, w io.Writer) error {
	transport := &thrift.StreamTransport{Writer: w}
	proto := thrift.NewTCompactProtocolConf(transport, nil)
	if err := obj.Write(ctx, proto); err != nil {
		return err
	}
	return proto.Flush(ctx)
}

// MarshalStatistics serializes a statistics record with the thrift compact
// protocol, the encoding used everywhere in a parquet file footer.
func MarshalStatistics(st *parquet.Statistics) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeThrift(context.Background(), st, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalStatistics parses a thrift compact encoded statistics record. An
// error means the record is corrupt and its statistics must be ignored.
func UnmarshalStatistics(data []byte) (*parquet.Statistics, error) {
	st := parquet.NewStatistics()
	if err := readThrift(context.Background(), st, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return st, nil
}
