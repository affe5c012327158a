package strtab

import (
	"errors"
	"fmt"
)

// ErrBadSnapshot reports a malformed or truncated snapshot passed to [Decode].
var ErrBadSnapshot = errors.New("strtab: malformed snapshot")

// TooManyStringsError is returned by [Builder.Push] when the string count
// would exceed the range of the configured index type. Retry with a wider
// index type or stop inserting; the builder is unchanged.
type TooManyStringsError struct {
	Strings int    // attempted string count
	IDType  string // index type of the builder
}

func (e *TooManyStringsError) Error() string {
	return fmt.Sprintf("strtab: cannot store %d strings: id type %s is too small", e.Strings, e.IDType)
}

// TooManyBytesError is returned by [Builder.Push] when the total byte
// length, including the NUL terminator in the padded layout, would exceed
// the range of the configured offset type. Retry with a wider offset type
// or stop inserting; the builder is unchanged.
type TooManyBytesError struct {
	Bytes      int    // attempted byte length
	OffsetType string // offset type of the builder
}

func (e *TooManyBytesError) Error() string {
	return fmt.Sprintf("strtab: cannot store %d bytes of string data: offset type %s is too small", e.Bytes, e.OffsetType)
}
