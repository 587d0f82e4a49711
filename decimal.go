package parquetstats

// Decimal is the unscaled value of a fixed-precision decimal column. The
// scale is part of the column metadata and is the same for every value of a
// column, so ordering unscaled values orders the decimals themselves.
//
// Only precisions up to 18 are supported, which is what fits an int64.
type Decimal int64

const maxDecimalPrecision = 18

// DecimalByteSize returns the smallest number of bytes that can hold any
// two's complement unscaled value of the given precision, or -1 if the
// precision is not supported. This is the fixed encoded size the parquet
// format uses for FIXED_LEN_BYTE_ARRAY decimal values.
func DecimalByteSize(precision int) int {
	if precision < 1 || precision > maxDecimalPrecision {
		return -1
	}

	maxUnscaled := int64(1)
	for i := 0; i < precision; i++ {
		maxUnscaled *= 10
	}
	maxUnscaled--

	for size := 1; size < 8; size++ {
		if maxUnscaled <= int64(1)<<(8*size-1)-1 {
			return size
		}
	}
	return 8
}

// fitsIn reports whether the value can be represented in size bytes of
// two's complement.
func (d Decimal) fitsIn(size int) bool {
	if size >= 8 {
		return true
	}
	limit := int64(1) << (8*size - 1)
	return int64(d) >= -limit && int64(d) < limit
}
