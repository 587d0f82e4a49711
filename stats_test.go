package parquetstats

import (
	"math/rand"
	"testing"

	"github.com/fraugster/parquet-go/parquet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt32StatsUpdateAndMerge(t *testing.T) {
	s1 := NewInt32Stats()
	for _, v := range []int32{5, 1, 9, 3} {
		s1.Update(v)
	}

	s2 := NewInt32Stats()
	s2.Update(-2)
	s2.Update(9)

	s1.Merge(s2)

	min, ok := s1.Min()
	require.True(t, ok)
	assert.Equal(t, int32(-2), min)
	max, ok := s1.Max()
	require.True(t, ok)
	assert.Equal(t, int32(9), max)

	assert.Equal(t, int64(8), s1.BytesNeeded())

	st := &parquet.Statistics{}
	s1.EncodeTo(st)
	assert.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff}, st.MinValue)
	assert.Equal(t, []byte{0x09, 0x00, 0x00, 0x00}, st.MaxValue)
}

func TestStatsUpdateOrderIrrelevant(t *testing.T) {
	values := make([]int64, 100)
	for i := range values {
		values[i] = rand.Int63() - rand.Int63()
	}

	s1 := NewInt64Stats()
	for _, v := range values {
		s1.Update(v)
	}

	rand.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	s2 := NewInt64Stats()
	for _, v := range values {
		s2.Update(v)
	}

	assert.Equal(t, s1.min, s2.min)
	assert.Equal(t, s1.max, s2.max)
}

func TestStatsMergeMatchesDirectAccumulation(t *testing.T) {
	values := make([]int32, 200)
	for i := range values {
		values[i] = rand.Int31() - rand.Int31()
	}

	direct := NewInt32Stats()
	for _, v := range values {
		direct.Update(v)
	}

	// partition into four accumulators and merge them in a different order
	parts := make([]*ColumnStats[int32, internalInt32], 4)
	for i := range parts {
		parts[i] = NewInt32Stats()
	}
	for i, v := range values {
		parts[i%4].Update(v)
	}

	merged := NewInt32Stats()
	for _, idx := range []int{2, 0, 3, 1} {
		merged.Merge(parts[idx])
	}

	assert.Equal(t, direct.min, merged.min)
	assert.Equal(t, direct.max, merged.max)
}

func TestStatsMergeEmpty(t *testing.T) {
	empty := NewInt32Stats()

	s := NewInt32Stats()
	s.Update(42)
	s.Merge(empty)

	min, _ := s.Min()
	max, _ := s.Max()
	assert.Equal(t, int32(42), min)
	assert.Equal(t, int32(42), max)

	// merging into an empty accumulator adopts the other side's range
	target := NewInt32Stats()
	target.Merge(s)
	require.True(t, target.HasValues())
	min, _ = target.Min()
	assert.Equal(t, int32(42), min)

	// two empty accumulators stay empty
	other := NewInt32Stats()
	empty.Merge(other)
	assert.False(t, empty.HasValues())
}

func TestStatsMergeTypeMismatchPanics(t *testing.T) {
	s1 := NewInt32Stats()
	s2 := NewInt64Stats()
	s2.Update(1)

	require.Panics(t, func() {
		s1.Merge(s2)
	})

	require.Panics(t, func() {
		ba := NewByteArrayStats()
		ba.Merge(s1)
	})
}

func TestStatsEncodeEmptyPanics(t *testing.T) {
	require.Panics(t, func() {
		NewInt32Stats().EncodeTo(&parquet.Statistics{})
	})
	require.Panics(t, func() {
		NewByteArrayStats().EncodeTo(&parquet.Statistics{})
	})
}

func TestEncodeToStatistics(t *testing.T) {
	assert.Nil(t, EncodeToStatistics(NewInt64Stats()), "empty statistics must produce no record")

	s := NewDoubleStats()
	s.Update(1.5)
	s.Update(-3.25)

	st := EncodeToStatistics(s)
	require.NotNil(t, st)
	assert.Len(t, st.MinValue, 8)
	assert.Len(t, st.MaxValue, 8)

	min, err := s.DecodePlainValue(st.MinValue)
	require.NoError(t, err)
	assert.Equal(t, -3.25, min)
	max, err := s.DecodePlainValue(st.MaxValue)
	require.NoError(t, err)
	assert.Equal(t, 1.5, max)
}

func TestStatsReset(t *testing.T) {
	s := NewInt32Stats()
	s.Update(10)
	require.True(t, s.HasValues())

	s.Reset()
	assert.False(t, s.HasValues())
	s.Update(-5)
	min, _ := s.Min()
	max, _ := s.Max()
	assert.Equal(t, int32(-5), min)
	assert.Equal(t, int32(-5), max)
}

func TestBooleanStats(t *testing.T) {
	s := NewBooleanStats()
	s.Update(true)
	s.Update(false)
	s.Update(true)

	st := &parquet.Statistics{}
	s.EncodeTo(st)
	assert.Equal(t, []byte{0}, st.MinValue)
	assert.Equal(t, []byte{1}, st.MaxValue)
	assert.Equal(t, int64(2), s.BytesNeeded())
}

func TestDecimalStats(t *testing.T) {
	s, err := NewDecimalStats(5) // 5 digits fit 3 bytes
	require.NoError(t, err)

	s.Update(Decimal(-1))
	s.Update(Decimal(99999))

	assert.Equal(t, int64(6), s.BytesNeeded())

	st := &parquet.Statistics{}
	s.EncodeTo(st)
	assert.Equal(t, []byte{0xff, 0xff, 0xff}, st.MinValue)
	assert.Equal(t, []byte{0x01, 0x86, 0x9f}, st.MaxValue)

	_, err = NewDecimalStats(19)
	assert.Error(t, err)

	// a value that exceeds the declared precision cannot be encoded
	s.Update(Decimal(1 << 40))
	require.Panics(t, func() {
		s.EncodeTo(&parquet.Statistics{})
	})
}

func TestInt96Stats(t *testing.T) {
	early := TimeToInt96(date(2001, 3, 15))
	late := TimeToInt96(date(2019, 12, 31))

	s := NewInt96Stats()
	s.Update(late)
	s.Update(early)

	min, _ := s.Min()
	max, _ := s.Max()
	assert.Equal(t, early, min)
	assert.Equal(t, late, max)
	assert.Equal(t, int64(24), s.BytesNeeded())

	st := &parquet.Statistics{}
	s.EncodeTo(st)
	assert.Equal(t, early[:], st.MinValue)
	assert.Equal(t, late[:], st.MaxValue)
}

func TestNewColumnStats(t *testing.T) {
	decimalConv := parquet.ConvertedType_DECIMAL
	utf8Conv := parquet.ConvertedType_UTF8
	precision := int32(9)

	tests := []struct {
		name   string
		typ    parquet.Type
		params *ColumnParameters
		expect Statistics
	}{
		{"boolean", parquet.Type_BOOLEAN, nil, &ColumnStats[bool, internalBoolean]{}},
		{"int32", parquet.Type_INT32, nil, &ColumnStats[int32, internalInt32]{}},
		{"int64", parquet.Type_INT64, nil, &ColumnStats[int64, internalInt64]{}},
		{"float", parquet.Type_FLOAT, nil, &ColumnStats[float32, internalFloat32]{}},
		{"double", parquet.Type_DOUBLE, nil, &ColumnStats[float64, internalFloat64]{}},
		{"int96", parquet.Type_INT96, nil, &ColumnStats[Int96, internalInt96]{}},
		{"bytearray", parquet.Type_BYTE_ARRAY, &ColumnParameters{ConvertedType: &utf8Conv}, &ByteArrayStats{}},
		{"fixed", parquet.Type_FIXED_LEN_BYTE_ARRAY, nil, &ByteArrayStats{}},
		{
			"decimal",
			parquet.Type_FIXED_LEN_BYTE_ARRAY,
			&ColumnParameters{ConvertedType: &decimalConv, Precision: &precision},
			&ColumnStats[Decimal, internalDecimal]{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewColumnStats(tt.typ, tt.params)
			require.NoError(t, err)
			assert.IsType(t, tt.expect, s)
		})
	}
}

// exercises the way a column-agnostic writer drives accumulators: one
// Statistics per column, set up once from the schema, merged across
// producers and flushed through the type-erased surface only.
func TestColumnAgnosticPipeline(t *testing.T) {
	columns := []parquet.Type{
		parquet.Type_INT64,
		parquet.Type_BYTE_ARRAY,
		parquet.Type_BOOLEAN,
	}

	makeProducer := func() []Statistics {
		stats := make([]Statistics, len(columns))
		for i, typ := range columns {
			s, err := NewColumnStats(typ, nil)
			require.NoError(t, err)
			stats[i] = s
		}
		return stats
	}

	feed := func(stats []Statistics, id int64, name string, flag bool) {
		stats[0].(*ColumnStats[int64, internalInt64]).Update(id)
		stats[1].(*ByteArrayStats).Update([]byte(name))
		stats[2].(*ColumnStats[bool, internalBoolean]).Update(flag)
	}

	p1 := makeProducer()
	feed(p1, 17, "delta", true)
	feed(p1, 4, "alpha", true)

	p2 := makeProducer()
	feed(p2, 23, "charlie", true)

	// each producer materializes before its batch goes away, then the
	// partial results are reduced into the first producer's accumulators
	for _, stats := range [][]Statistics{p1, p2} {
		for _, s := range stats {
			s.Materialize()
		}
	}
	for i := range p1 {
		p1[i].Merge(p2[i])
	}

	records := make([]*parquet.Statistics, len(p1))
	for i, s := range p1 {
		require.True(t, s.HasValues())
		assert.Greater(t, s.BytesNeeded(), int64(0))
		records[i] = EncodeToStatistics(s)
	}

	idBounds, err := DecodeBounds(columns[0], nil, records[0])
	require.NoError(t, err)
	assert.Equal(t, int64(4), idBounds.Min)
	assert.Equal(t, int64(23), idBounds.Max)

	nameBounds, err := DecodeBounds(columns[1], nil, records[1])
	require.NoError(t, err)
	assert.Equal(t, []byte("alpha"), nameBounds.Min)
	assert.Equal(t, []byte("delta"), nameBounds.Max)

	flagBounds, err := DecodeBounds(columns[2], nil, records[2])
	require.NoError(t, err)
	assert.Equal(t, true, flagBounds.Min)
	assert.Equal(t, true, flagBounds.Max)
}
