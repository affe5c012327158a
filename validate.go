package strtab

import (
	"fmt"
	"unicode/utf8"
)

// ValidateKind tags the invariant a [ValidateError] reports.
type ValidateKind uint8

const (
	// BadOffsetWidth: total byte length does not fit the offset type.
	BadOffsetWidth ValidateKind = iota
	// BadIndexWidth: string count does not fit the index type.
	BadIndexWidth
	// MissingSentinel: the offset slice is empty.
	MissingSentinel
	// SentinelMismatch: the final offset does not equal the byte length.
	SentinelMismatch
	// OffsetOutOfBounds: an offset exceeds the byte length.
	OffsetOutOfBounds
	// OffsetsNotMonotonic: an offset is smaller than its predecessor.
	OffsetsNotMonotonic
	// InvalidUTF8: a string region is not valid UTF-8.
	InvalidUTF8
	// MissingTerminator: a NulPadded region lacks its trailing NUL.
	MissingTerminator
)

// ValidateError reports the first structural invariant violation found by
// [Table.Validate]. These are construction-logic bugs, never reachable
// through a correct Push/Build sequence.
type ValidateError struct {
	Kind     ValidateKind
	Index    int // offending string or offset index, -1 when not applicable
	Offset   int
	Expected int
	Type     string // offset/index type name, for the width kinds
}

func (e *ValidateError) Error() string {
	switch e.Kind {
	case BadOffsetWidth:
		return fmt.Sprintf("strtab: invalid table: %d bytes do not fit in offset type %s", e.Offset, e.Type)
	case BadIndexWidth:
		return fmt.Sprintf("strtab: invalid table: %d strings do not fit in id type %s", e.Offset, e.Type)
	case MissingSentinel:
		return "strtab: invalid table: offsets must end with a sentinel equal to total byte length"
	case SentinelMismatch:
		return fmt.Sprintf("strtab: invalid table: final offset is %d, but byte length is %d", e.Offset, e.Expected)
	case OffsetOutOfBounds:
		return fmt.Sprintf("strtab: invalid table: offset[%d] = %d is out of bounds (byte length %d)", e.Index, e.Offset, e.Expected)
	case OffsetsNotMonotonic:
		return fmt.Sprintf("strtab: invalid table: offsets must be non-decreasing; offset[%d] = %d, previous = %d", e.Index, e.Offset, e.Expected)
	case InvalidUTF8:
		return fmt.Sprintf("strtab: invalid table: bytes for string %d are not valid UTF-8", e.Index)
	case MissingTerminator:
		return fmt.Sprintf("strtab: invalid table: string %d must end with a NUL byte", e.Index)
	}
	return "strtab: invalid table"
}

// Validate walks every offset pair and confirms the table's structural
// invariants, returning the first violation found. A table coming out of
// [Builder.Build] always passes; Validate exists for the trusted
// [FromParts] path and is run automatically under the strtabdebug tag.
func (t *Table[O, I, L]) Validate() error {
	bytesLen := len(t.bytes)
	if _, ok := toNum[O](bytesLen); !ok {
		return &ValidateError{Kind: BadOffsetWidth, Index: -1, Offset: bytesLen, Type: typeNameOf[O]()}
	}
	if n := t.Len(); n > 0 {
		if _, ok := toNum[I](n - 1); !ok {
			return &ValidateError{Kind: BadIndexWidth, Index: -1, Offset: n, Type: typeNameOf[I]()}
		}
	}
	if len(t.offsets) == 0 {
		return &ValidateError{Kind: MissingSentinel, Index: -1}
	}
	if last := int(t.offsets[len(t.offsets)-1]); last != bytesLen {
		return &ValidateError{Kind: SentinelMismatch, Index: len(t.offsets) - 1, Offset: last, Expected: bytesLen}
	}

	pad := paddingOf[L]()
	previous := 0
	for i, offset := range t.offsets {
		current := int(offset)
		if current > bytesLen {
			return &ValidateError{Kind: OffsetOutOfBounds, Index: i, Offset: current, Expected: bytesLen}
		}
		if i == 0 {
			previous = current
			continue
		}
		if current < previous {
			return &ValidateError{Kind: OffsetsNotMonotonic, Index: i, Offset: current, Expected: previous}
		}
		if pad != 0 {
			if current == previous {
				return &ValidateError{Kind: MissingTerminator, Index: i - 1, Offset: current}
			}
			if t.bytes[current-1] != 0 {
				return &ValidateError{Kind: MissingTerminator, Index: i - 1, Offset: current - 1}
			}
		}
		if !utf8.Valid(t.bytes[previous : current-pad]) {
			return &ValidateError{Kind: InvalidUTF8, Index: i - 1}
		}
		previous = current
	}
	return nil
}
