package strtab

// Iterator yields a table's strings in insertion order. Each call to
// [Table.Iter] returns a fresh iterator over the same immutable data.
type Iterator[O Offset, L Layout] struct {
	bytes   []byte
	offsets []O
	index   int
}

// Iter returns an iterator positioned before the first string.
func (t *Table[O, I, L]) Iter() *Iterator[O, L] {
	return &Iterator[O, L]{bytes: t.bytes, offsets: t.offsets}
}

// Next returns the next string, or false when the iterator is exhausted.
// The result aliases the table's buffer.
func (it *Iterator[O, L]) Next() (string, bool) {
	if it.index+1 >= len(it.offsets) {
		return "", false
	}
	start := int(it.offsets[it.index])
	it.index++
	end := int(it.offsets[it.index]) - paddingOf[L]()
	return b2s(it.bytes[start:end]), true
}

// Remaining reports how many strings Next has yet to yield.
func (it *Iterator[O, L]) Remaining() int {
	if len(it.offsets) == 0 {
		return 0
	}
	return len(it.offsets) - 1 - it.index
}
