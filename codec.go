package strtab

import (
	"encoding/binary"
	"slices"

	"github.com/klauspost/rvarint"
)

// Snapshot codec: a raw, unversioned dump of a table's two buffers,
// meant for handing tables across process or shared-memory boundaries
// through the trusted [FromParts] path. It is not a stable file format.
/*
	Snapshot content:
	+--------------+-----------------+-----------+---------+
	| string bytes |  offset deltas  | bytes_len | strings |
	+--------------+-----------------+-----------+---------+
	|<- bytes_len->|<--- uvarints -->|<- reverse varints ->|

	The footer is written in reverse varints so decoding starts from the
	tail without any header, like a listpack entry is parsed backwards.
*/

// AppendBinary appends a snapshot of the table to dst and returns the
// extended buffer. Offsets are delta-encoded, so a table of short strings
// costs about one byte of metadata per string.
func (t *Table[O, I, L]) AppendBinary(dst []byte) []byte {
	dst = slices.Grow(dst, len(t.bytes)+2*len(t.offsets)+16)
	dst = append(dst, t.bytes...)
	previous := uint64(0)
	for _, offset := range t.offsets[1:] {
		current := uint64(offset)
		dst = binary.AppendUvarint(dst, current-previous)
		previous = current
	}
	dst = rvarint.AppendUvarint(dst, uint64(len(t.bytes)))
	dst = rvarint.AppendUvarint(dst, uint64(t.Len()))
	return dst
}

// Decode rebuilds a table from a snapshot produced by [Table.AppendBinary].
// The instantiation must match the snapshot's: offsets are re-checked
// against O, but the layout and index type are trusted.
//
// String bytes are copied out of src, so the snapshot buffer may be
// released afterwards.
func Decode[O Offset, I Index, L Layout](src []byte) (*Table[O, I, L], error) {
	strings, n := rvarint.Uvarint(src)
	if n <= 0 {
		return nil, ErrBadSnapshot
	}
	src = src[:len(src)-n]
	bytesLen, n := rvarint.Uvarint(src)
	if n <= 0 || bytesLen > uint64(len(src)-n) {
		return nil, ErrBadSnapshot
	}
	body := src[:len(src)-n]

	// Each offset delta costs at least one byte, so the footer's count
	// is bounded by the bytes left after the string data. Checked before
	// allocating, so a hostile count cannot blow up make.
	if strings > uint64(len(body))-bytesLen {
		return nil, ErrBadSnapshot
	}

	bytes := slices.Clone(body[:bytesLen])
	offsets := make([]O, 1, strings+1)
	pos := int(bytesLen)
	previous := uint64(0)
	for i := uint64(0); i < strings; i++ {
		delta, n := binary.Uvarint(body[pos:])
		if n <= 0 {
			return nil, ErrBadSnapshot
		}
		pos += n
		previous += delta
		offset, ok := toNum[O](int(previous))
		if !ok {
			return nil, ErrBadSnapshot
		}
		offsets = append(offsets, offset)
	}
	if pos != len(body) || previous != bytesLen {
		return nil, ErrBadSnapshot
	}
	return FromParts[O, I, L](bytes, offsets), nil
}
