// Package strtab provides a compact immutable table for large numbers of
// small strings, addressed by small integer IDs instead of per-string
// pointers.
package strtab

import (
	"unsafe"
)

// Table is immutable string storage.
/*
	Table data content:
	+---------+---------+-----+---------+
	| string0 | string1 | ... | stringN |   bytes
	+---------+---------+-----+---------+
	+------+------+-----+------+----------+
	| off0 | off1 | ... | offN | sentinel |   offsets
	+------+------+-----+------+----------+

	String i spans bytes[offsets[i]:offsets[i+1]], minus one trailing NUL
	in the NulPadded layout. The sentinel equals len(bytes), so every
	lookup is two offset reads with no special case for the last string.
*/
// A table holds exactly what its builder pushed, in insertion order, and
// never mutates afterwards, so it is safe for concurrent readers and the
// string views returned by Get and Iter alias the buffer without copying.
//
// Generic parameters tune the memory profile: O bounds total byte size
// (one O per string in the offset slice), I bounds string count (one I per
// ID stored in caller structs), L fixes the byte layout.
type Table[O Offset, I Index, L Layout] struct {
	bytes   []byte
	offsets []O
}

// Empty creates a table with no strings.
func Empty[O Offset, I Index, L Layout]() *Table[O, I, L] {
	return &Table[O, I, L]{offsets: make([]O, 1)}
}

// FromParts wraps an already-formed byte buffer and offset sequence,
// e.g. recovered from another table's Bytes/Offsets or a shared mapping.
//
// No validation happens in normal builds: the caller is responsible for
// the structural invariants documented on [Table]. Build with the
// strtabdebug tag to have the validator catch mistakes here.
func FromParts[O Offset, I Index, L Layout](bytes []byte, offsets []O) *Table[O, I, L] {
	t := &Table[O, I, L]{bytes: bytes, offsets: offsets}
	if debugValidate {
		if err := t.Validate(); err != nil {
			panic(err)
		}
	}
	return t
}

// Len returns the number of strings in the table.
func (t *Table[O, I, L]) Len() int {
	if len(t.offsets) == 0 {
		return 0
	}
	return len(t.offsets) - 1
}

// IsEmpty reports whether the table has no strings.
func (t *Table[O, I, L]) IsEmpty() bool {
	return t.Len() == 0
}

// Get returns the string for id, or false when id is out of range.
// The result aliases the table's buffer; no copy is made.
func (t *Table[O, I, L]) Get(id ID[I]) (string, bool) {
	i := id.Int()
	if uint(i) >= uint(t.Len()) {
		return "", false
	}
	start := int(t.offsets[i])
	end := int(t.offsets[i+1]) - paddingOf[L]()
	return b2s(t.bytes[start:end]), true
}

// GetUnchecked returns the string for id without bounds checks.
//
// The caller must guarantee id.Int() < t.Len(). Violating that reads out
// of bounds or interprets unrelated bytes as the string; it is not a
// recoverable error.
func (t *Table[O, I, L]) GetUnchecked(id ID[I]) string {
	var zero O
	size := unsafe.Sizeof(zero)
	i := uintptr(id.Int())
	base := unsafe.Pointer(unsafe.SliceData(t.offsets))
	start := int(*(*O)(unsafe.Add(base, i*size)))
	end := int(*(*O)(unsafe.Add(base, (i+1)*size))) - paddingOf[L]()
	data := unsafe.Add(unsafe.Pointer(unsafe.SliceData(t.bytes)), start)
	return unsafe.String((*byte)(data), end-start)
}

// ByteRange returns the half-open logical byte bounds of id's string
// within Bytes, or false when id is out of range. In the NulPadded layout
// the trailing NUL sits at end, outside the range.
func (t *Table[O, I, L]) ByteRange(id ID[I]) (start, end int, ok bool) {
	i := id.Int()
	if uint(i) >= uint(t.Len()) {
		return 0, 0, false
	}
	start = int(t.offsets[i])
	end = int(t.offsets[i+1]) - paddingOf[L]()
	return start, end, true
}

// Bytes returns the contiguous byte storage. Read-only.
func (t *Table[O, I, L]) Bytes() []byte {
	return t.bytes
}

// Offsets returns the offset slice, including the final sentinel. Read-only.
func (t *Table[O, I, L]) Offsets() []O {
	return t.offsets
}

// Contains reports whether any stored string equals value. This is a
// deliberate linear scan over all stored bytes; see [Interner] for an
// indexed alternative.
func (t *Table[O, I, L]) Contains(value string) bool {
	found := false
	t.Scan(func(s string) bool {
		found = s == value
		return !found
	})
	return found
}

// Scan calls fn for each stored string in insertion order until fn
// returns false.
func (t *Table[O, I, L]) Scan(fn func(s string) bool) {
	pad := paddingOf[L]()
	start := 0
	for i := 1; i < len(t.offsets); i++ {
		end := int(t.offsets[i])
		if !fn(b2s(t.bytes[start : end-pad])) {
			return
		}
		start = end
	}
}

// b2s views b as a string without copying.
func b2s(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
