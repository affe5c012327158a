package strtab

import (
	"strings"

	"github.com/cockroachdb/swiss"
)

// Interner layers a string→ID index over a [Builder] so equal strings
// share one table entry and membership checks are O(1).
//
// This is an opt-in alternative to the plain builder: the table itself
// never maintains an index, and [Table.Contains] stays a linear scan.
// The index costs one map entry per distinct string and is discarded by
// Build.
type Interner[O Offset, I Index, L Layout] struct {
	builder *Builder[O, I, L]
	ids     *swiss.Map[string, ID[I]]
}

// NewInterner creates an interner from builder options.
func NewInterner[O Offset, I Index, L Layout](options Options) *Interner[O, I, L] {
	return &Interner[O, I, L]{
		builder: NewWith[O, I, L](options),
		ids:     swiss.New[string, ID[I]](max(options.ExpectedStrings, 8)),
	}
}

// Intern returns the ID for value, pushing it only on first sight.
// Push errors pass through unchanged and leave the interner untouched.
func (in *Interner[O, I, L]) Intern(value string) (ID[I], error) {
	if id, ok := in.ids.Get(value); ok {
		return id, nil
	}
	// The map key must not alias the caller's bytes.
	value = strings.Clone(value)
	id, err := in.builder.Push(value)
	if err != nil {
		return ID[I]{}, err
	}
	in.ids.Put(value, id)
	return id, nil
}

// Find returns the ID recorded for value, if any.
func (in *Interner[O, I, L]) Find(value string) (ID[I], bool) {
	return in.ids.Get(value)
}

// Len returns the number of distinct strings interned so far.
func (in *Interner[O, I, L]) Len() int {
	return in.builder.Len()
}

// ByteLen returns the current total byte length of interned string data.
func (in *Interner[O, I, L]) ByteLen() int {
	return in.builder.ByteLen()
}

// Build finalizes the underlying builder and drops the index. Like
// [Builder.Build], this is one-way: the interner must not be used after.
func (in *Interner[O, I, L]) Build() *Table[O, I, L] {
	in.ids = nil
	return in.builder.Build()
}
