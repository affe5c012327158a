package strtab

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Offset is the set of integer types usable as byte offsets into a table's
// buffer. The chosen width bounds the total byte size a table can hold and
// costs one value per string in the offset slice. uint32 (4 GiB of data)
// is the common choice.
//
// Named wrapper types over an unsigned width satisfy the constraint too:
//
//	type ByteOffset uint32
type Offset interface {
	constraints.Unsigned
}

// Index is the set of integer types usable as the raw value of an [ID].
// The chosen width bounds the string count per table and costs one value
// per ID field stored in caller structs. uint16 (64Ki strings, 2 bytes
// per handle) is the common choice.
type Index interface {
	constraints.Unsigned
}

// ID identifies one string in the [Table] that issued it. The raw value is
// the string's insertion position. IDs carry no table identity: resolving
// an ID against a different table returns an unrelated string or nothing.
type ID[I Index] struct {
	raw I
}

// NewID wraps a raw index value. Normally IDs come from [Builder.Push].
func NewID[I Index](raw I) ID[I] {
	return ID[I]{raw: raw}
}

// Raw returns the raw index value.
func (id ID[I]) Raw() I { return id.raw }

// Int returns the raw index value as int.
func (id ID[I]) Int() int { return int(id.raw) }

func (id ID[I]) String() string {
	return fmt.Sprintf("%d", id.raw)
}

// Layout selects how string bytes are laid out in the buffer. It is sealed:
// only [Compact] and [NulPadded] satisfy it. The layout is fixed per
// Builder/Table instantiation, so a table can never mix padded and
// unpadded regions.
type Layout interface {
	Compact | NulPadded
	padding() int
}

// Compact stores string bytes back to back with no separators.
type Compact struct{}

func (Compact) padding() int { return 0 }

// NulPadded stores one trailing NUL byte after each string. The NUL is part
// of the buffer and the offset arithmetic but excluded from the logical
// string returned by lookups.
type NulPadded struct{}

func (NulPadded) padding() int { return 1 }

func paddingOf[L Layout]() int {
	var layout L
	return layout.padding()
}

// toNum widens a count to T, reporting false when it does not fit.
func toNum[T constraints.Unsigned](n int) (T, bool) {
	if uint64(n) > uint64(^T(0)) {
		return 0, false
	}
	return T(n), true
}

// typeNameOf is only used on error paths for diagnostics.
func typeNameOf[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
