package parquetstats

import (
	"testing"

	"github.com/fraugster/parquet-go/parquet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteArrayStatsOrdering(t *testing.T) {
	insertionOrders := [][]string{
		{"banana", "apple", "cherry"},
		{"cherry", "banana", "apple"},
		{"apple", "cherry", "banana"},
	}

	for _, order := range insertionOrders {
		s := NewByteArrayStats()
		for _, v := range order {
			s.Update([]byte(v))
		}

		min, ok := s.Min()
		require.True(t, ok)
		assert.Equal(t, []byte("apple"), min)
		max, ok := s.Max()
		require.True(t, ok)
		assert.Equal(t, []byte("cherry"), max)
	}
}

func TestByteArrayStatsEncode(t *testing.T) {
	s := NewByteArrayStats()
	s.Update([]byte("zz"))
	s.Update([]byte(""))

	assert.Equal(t, int64(2), s.BytesNeeded())

	st := &parquet.Statistics{}
	s.EncodeTo(st)
	require.NotNil(t, st.MinValue, "an empty value must still be written as present")
	assert.Equal(t, []byte{}, st.MinValue, "empty byte arrays are legal values")
	assert.Equal(t, []byte("zz"), st.MaxValue)

	// the encoded bytes must not alias the accumulator's view
	max, _ := s.Max()
	max[0] = 'a'
	assert.Equal(t, []byte("zz"), st.MaxValue)
}

func TestByteArrayStatsMaterialize(t *testing.T) {
	// the accumulator borrows the memory it is fed, so reusing the source
	// buffer without materializing first would corrupt the tracked values
	buf := []byte("mango")
	s := NewByteArrayStats()
	s.Update(buf)

	s.Materialize()

	copy(buf, "xxxxx")
	min, _ := s.Min()
	max, _ := s.Max()
	assert.Equal(t, []byte("mango"), min)
	assert.Equal(t, []byte("mango"), max)
}

func TestByteArrayStatsMaterializeIdempotent(t *testing.T) {
	s := NewByteArrayStats()
	s.Update([]byte("pear"))

	s.Materialize()
	min1, _ := s.Min()
	s.Materialize()
	min2, _ := s.Min()

	assert.Equal(t, []byte("pear"), min2)
	assert.Same(t, &min1[0], &min2[0], "second materialize must not copy again")
}

func TestByteArrayStatsUpdateInvalidatesBuffer(t *testing.T) {
	batch1 := []byte("kiwi")
	s := NewByteArrayStats()
	s.Update(batch1)
	s.Materialize()

	// a smaller value from a new batch replaces min; the old owned copy is
	// stale now and materialize has to copy again
	batch2 := []byte("fig")
	s.Update(batch2)
	s.Materialize()

	copy(batch2, "xxx")
	min, _ := s.Min()
	max, _ := s.Max()
	assert.Equal(t, []byte("fig"), min)
	assert.Equal(t, []byte("kiwi"), max)
}

func TestByteArrayStatsMerge(t *testing.T) {
	s1 := NewByteArrayStats()
	s1.Update([]byte("banana"))
	s1.Update([]byte("cherry"))

	s2 := NewByteArrayStats()
	s2.Update([]byte("apple"))
	s2.Update([]byte("blueberry"))

	s1.Merge(s2)
	s1.Materialize()

	min, _ := s1.Min()
	max, _ := s1.Max()
	assert.Equal(t, []byte("apple"), min)
	assert.Equal(t, []byte("cherry"), max)

	// merging an empty accumulator changes nothing
	s1.Merge(NewByteArrayStats())
	min, _ = s1.Min()
	assert.Equal(t, []byte("apple"), min)
}

func TestByteArrayStatsReset(t *testing.T) {
	s := NewByteArrayStats()
	s.Update([]byte("plum"))
	s.Materialize()

	s.Reset()
	assert.False(t, s.HasValues())

	s.Update([]byte("date"))
	min, _ := s.Min()
	max, _ := s.Max()
	assert.Equal(t, []byte("date"), min)
	assert.Equal(t, []byte("date"), max)
}
