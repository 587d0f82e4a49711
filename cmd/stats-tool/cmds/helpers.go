package cmds

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fraugster/parquet-go/parquet"

	parquetstats "github.com/fraugster/parquet-stats"
)

// leafColumn is one primitive column of the schema; its position in the
// slice returned by schemaLeaves matches the position of the corresponding
// column chunk within each row group.
type leafColumn struct {
	name string
	elem *parquet.SchemaElement
}

func schemaLeaves(schema []*parquet.SchemaElement) ([]leafColumn, error) {
	if len(schema) == 0 {
		return nil, errors.New("empty schema")
	}

	var leaves []leafColumn
	pos := 1

	var walk func(prefix string, count int) error
	walk = func(prefix string, count int) error {
		for i := 0; i < count; i++ {
			if pos >= len(schema) {
				return errors.New("malformed schema: fewer elements than declared children")
			}
			elem := schema[pos]
			pos++

			name := elem.Name
			if prefix != "" {
				name = prefix + "." + name
			}
			if elem.NumChildren != nil && *elem.NumChildren > 0 {
				if err := walk(name, int(*elem.NumChildren)); err != nil {
					return err
				}
				continue
			}
			leaves = append(leaves, leafColumn{name: name, elem: elem})
		}
		return nil
	}

	root := schema[0]
	children := 0
	if root.NumChildren != nil {
		children = int(*root.NumChildren)
	}
	if err := walk("", children); err != nil {
		return nil, err
	}

	return leaves, nil
}

func columnParams(elem *parquet.SchemaElement) *parquetstats.ColumnParameters {
	return &parquetstats.ColumnParameters{
		TypeLength:    elem.TypeLength,
		Scale:         elem.Scale,
		Precision:     elem.Precision,
		ConvertedType: elem.ConvertedType,
		LogicalType:   elem.LogicalType,
	}
}

func readMeta(fileName string) (*parquet.FileMetaData, []leafColumn, error) {
	fl, err := os.Open(fileName)
	if err != nil {
		return nil, nil, fmt.Errorf("can not open the file: %w", err)
	}
	defer fl.Close()

	meta, err := parquetstats.ReadFileMetaData(fl)
	if err != nil {
		return nil, nil, err
	}

	leaves, err := schemaLeaves(meta.Schema)
	if err != nil {
		return nil, nil, err
	}

	return meta, leaves, nil
}

func formatValue(v any, elem *parquet.SchemaElement) string {
	switch val := v.(type) {
	case []byte:
		return strconv.Quote(string(val))
	case parquetstats.Int96:
		return val.Time().Format(time.RFC3339Nano)
	case parquetstats.Decimal:
		scale := 0
		if elem.Scale != nil {
			scale = int(*elem.Scale)
		}
		return formatDecimal(int64(val), scale)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatDecimal(unscaled int64, scale int) string {
	if scale <= 0 {
		return strconv.FormatInt(unscaled, 10)
	}
	sign := ""
	if unscaled < 0 {
		sign = "-"
		unscaled = -unscaled
	}
	digits := strconv.FormatInt(unscaled, 10)
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	return sign + digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
}

// parseLiteral converts a command line literal into the typed value a
// column of the given physical type holds.
func parseLiteral(typ parquet.Type, elem *parquet.SchemaElement, s string) (any, error) {
	switch typ {
	case parquet.Type_BOOLEAN:
		return strconv.ParseBool(s)
	case parquet.Type_INT32:
		v, err := strconv.ParseInt(s, 10, 32)
		return int32(v), err
	case parquet.Type_INT64:
		return strconv.ParseInt(s, 10, 64)
	case parquet.Type_FLOAT:
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	case parquet.Type_DOUBLE:
		return strconv.ParseFloat(s, 64)
	case parquet.Type_INT96:
		t, err := dateparse.ParseAny(s)
		if err != nil {
			return nil, fmt.Errorf("can not parse %q as a timestamp: %w", s, err)
		}
		return parquetstats.TimeToInt96(t), nil
	case parquet.Type_BYTE_ARRAY:
		return []byte(s), nil
	case parquet.Type_FIXED_LEN_BYTE_ARRAY:
		params := columnParams(elem)
		if !params.IsDecimal() {
			return []byte(s), nil
		}
		scale := 0
		if elem.Scale != nil {
			scale = int(*elem.Scale)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("can not parse %q as a decimal: %w", s, err)
		}
		return parquetstats.Decimal(math.Round(f * math.Pow10(scale))), nil
	default:
		return nil, fmt.Errorf("unsupported physical type %s", typ)
	}
}
