package strtab

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNulPaddedSingleString(t *testing.T) {
	assert := assert.New(t)

	b := New[uint32, uint32, NulPadded]()
	id, err := b.Push("hello")
	assert.Nil(err)

	table := b.Build()
	got, ok := table.Get(id)
	assert.True(ok)
	assert.Equal("hello", got)
	assert.Equal([]byte("hello\x00"), table.Bytes())
	assert.Equal([]uint32{0, 6}, table.Offsets())

	start, end, ok := table.ByteRange(id)
	assert.True(ok)
	assert.Equal(0, start)
	assert.Equal(5, end)
	assert.Nil(table.Validate())
}

func TestNulPaddedEmptyString(t *testing.T) {
	assert := assert.New(t)

	b := New[uint32, uint32, NulPadded]()
	id, err := b.Push("")
	assert.Nil(err)

	table := b.Build()
	assert.Equal([]byte{0}, table.Bytes())
	assert.Equal([]uint32{0, 1}, table.Offsets())
	got, ok := table.Get(id)
	assert.True(ok)
	assert.Equal("", got)

	start, end, ok := table.ByteRange(id)
	assert.True(ok)
	assert.Equal(0, start)
	assert.Equal(0, end)
}

func TestNulPaddedIter(t *testing.T) {
	assert := assert.New(t)

	b := New[uint32, uint16, NulPadded]()
	for _, value := range []string{"cat", "", "dog"} {
		_, err := b.Push(value)
		assert.Nil(err)
	}
	table := b.Build()
	assert.Nil(table.Validate())

	got := make([]string, 0, 3)
	table.Scan(func(s string) bool {
		got = append(got, s)
		return true
	})
	assert.Equal([]string{"cat", "", "dog"}, got)
}

func TestGetOutOfRange(t *testing.T) {
	assert := assert.New(t)

	table := Empty[uint32, uint32, Compact]()
	_, ok := table.Get(NewID[uint32](0))
	assert.False(ok)

	b := New[uint32, uint32, Compact]()
	b.Push("a")
	table = b.Build()
	_, ok = table.Get(NewID[uint32](1))
	assert.False(ok)
	_, _, ok = table.ByteRange(NewID[uint32](1))
	assert.False(ok)

	got, ok := table.Get(NewID[uint32](0))
	assert.True(ok)
	assert.Equal("a", got)
}

func TestGetUnchecked(t *testing.T) {
	assert := assert.New(t)

	b := New[uint16, uint8, Compact]()
	values := []string{"alpha", "", "beta", "gamma"}
	ids := make([]ID[uint8], 0, len(values))
	for _, value := range values {
		id, err := b.Push(value)
		assert.Nil(err)
		ids = append(ids, id)
	}
	table := b.Build()
	for i, value := range values {
		assert.Equal(value, table.GetUnchecked(ids[i]))
	}

	bp := New[uint16, uint8, NulPadded]()
	for _, value := range values {
		_, err := bp.Push(value)
		assert.Nil(err)
	}
	padded := bp.Build()
	for i, value := range values {
		assert.Equal(value, padded.GetUnchecked(ids[i]))
	}
}

func TestContains(t *testing.T) {
	assert := assert.New(t)

	b := New[uint32, uint32, Compact]()
	for _, value := range []string{"cat", "dog", "bird"} {
		b.Push(value)
	}
	table := b.Build()

	assert.True(table.Contains("cat"))
	assert.True(table.Contains("bird"))
	assert.False(table.Contains("ca"))
	assert.False(table.Contains("catd"))
	assert.False(table.Contains(""))
}

func TestScanStops(t *testing.T) {
	assert := assert.New(t)

	b := New[uint32, uint32, Compact]()
	for i := 0; i < 10; i++ {
		b.Push(strconv.Itoa(i))
	}
	table := b.Build()

	seen := 0
	table.Scan(func(s string) bool {
		seen++
		return seen < 3
	})
	assert.Equal(3, seen)
}

func TestIteratorRemaining(t *testing.T) {
	assert := assert.New(t)

	b := New[uint32, uint32, Compact]()
	for i := 0; i < 5; i++ {
		b.Push(strconv.Itoa(i))
	}
	table := b.Build()

	it := table.Iter()
	assert.Equal(5, it.Remaining())
	for i := 5; i > 0; i-- {
		assert.Equal(i, it.Remaining())
		_, ok := it.Next()
		assert.True(ok)
	}
	assert.Equal(0, it.Remaining())
	_, ok := it.Next()
	assert.False(ok)
	assert.Equal(0, it.Remaining())

	// Each Iter call is a fresh pass.
	it2 := table.Iter()
	s, ok := it2.Next()
	assert.True(ok)
	assert.Equal("0", s)
}

func TestFromPartsRoundtrip(t *testing.T) {
	assert := assert.New(t)

	b := New[uint32, uint16, Compact]()
	for _, value := range []string{"x", "yy", "zzz"} {
		b.Push(value)
	}
	table := b.Build()

	// Rebuild a table over the same buffers without copying.
	rebuilt := FromParts[uint32, uint16, Compact](table.Bytes(), table.Offsets())
	assert.Nil(rebuilt.Validate())
	assert.Equal(table.Len(), rebuilt.Len())
	got, ok := rebuilt.Get(NewID[uint16](2))
	assert.True(ok)
	assert.Equal("zzz", got)
}

func TestConcurrentReads(t *testing.T) {
	assert := assert.New(t)

	b := New[uint32, uint32, Compact]()
	const n = 1000
	for i := 0; i < n; i++ {
		b.Push(strconv.Itoa(i))
	}
	table := b.Build()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				got, ok := table.Get(NewID[uint32](uint32(i)))
				assert.True(ok)
				assert.Equal(strconv.Itoa(i), got)
			}
			count := 0
			it := table.Iter()
			for {
				if _, ok := it.Next(); !ok {
					break
				}
				count++
			}
			assert.Equal(n, count)
		}()
	}
	wg.Wait()
}
