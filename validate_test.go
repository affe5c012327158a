package strtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Invalid tables are assembled through struct literals so the cases stay
// independent of the strtabdebug tag on FromParts.

func kindOf(t *testing.T, err error) ValidateKind {
	t.Helper()
	verr, ok := err.(*ValidateError)
	if !ok {
		t.Fatalf("expected *ValidateError, got %v", err)
	}
	return verr.Kind
}

func TestValidateOK(t *testing.T) {
	assert := assert.New(t)

	table := &Table[uint32, uint32, Compact]{
		bytes:   []byte("catdog"),
		offsets: []uint32{0, 3, 6},
	}
	assert.Nil(table.Validate())
}

func TestValidateMissingSentinel(t *testing.T) {
	assert := assert.New(t)

	table := &Table[uint32, uint32, Compact]{bytes: []byte("hello")}
	assert.Equal(MissingSentinel, kindOf(t, table.Validate()))

	short := &Table[uint32, uint32, Compact]{
		bytes:   []byte("hello"),
		offsets: []uint32{0},
	}
	assert.Equal(SentinelMismatch, kindOf(t, short.Validate()))
}

func TestValidateNonMonotonic(t *testing.T) {
	assert := assert.New(t)

	table := &Table[uint32, uint32, Compact]{
		bytes:   []byte("abcd"),
		offsets: []uint32{0, 3, 2, 4},
	}
	err := table.Validate()
	assert.Equal(OffsetsNotMonotonic, kindOf(t, err))
	assert.Equal(2, err.(*ValidateError).Index)
}

func TestValidateOutOfBounds(t *testing.T) {
	assert := assert.New(t)

	table := &Table[uint32, uint32, Compact]{
		bytes:   []byte("ab"),
		offsets: []uint32{0, 9, 2},
	}
	assert.Equal(OffsetOutOfBounds, kindOf(t, table.Validate()))
}

func TestValidateInvalidUTF8(t *testing.T) {
	assert := assert.New(t)

	table := &Table[uint32, uint32, Compact]{
		bytes:   []byte{0xFF},
		offsets: []uint32{0, 1},
	}
	err := table.Validate()
	assert.Equal(InvalidUTF8, kindOf(t, err))
	assert.Equal(0, err.(*ValidateError).Index)
}

func TestValidateNulPadded(t *testing.T) {
	assert := assert.New(t)

	good := &Table[uint32, uint32, NulPadded]{
		bytes:   []byte("hello\x00"),
		offsets: []uint32{0, 6},
	}
	assert.Nil(good.Validate())

	noNul := &Table[uint32, uint32, NulPadded]{
		bytes:   []byte("hello"),
		offsets: []uint32{0, 5},
	}
	assert.Equal(MissingTerminator, kindOf(t, noNul.Validate()))

	// A zero-width region cannot hold its terminator.
	empty := &Table[uint32, uint32, NulPadded]{
		bytes:   []byte("a\x00"),
		offsets: []uint32{0, 0, 2},
	}
	assert.Equal(MissingTerminator, kindOf(t, empty.Validate()))
}

func TestValidateOffsetWidthOverflow(t *testing.T) {
	assert := assert.New(t)

	fits := &Table[uint8, uint32, Compact]{
		bytes:   []byte("abc"),
		offsets: []uint8{0, 3},
	}
	assert.Nil(fits.Validate())

	tooBig := &Table[uint8, uint32, Compact]{
		bytes:   make([]byte, 300),
		offsets: []uint8{0, 255},
	}
	err := tooBig.Validate()
	assert.Equal(BadOffsetWidth, kindOf(t, err))
	assert.Equal("uint8", err.(*ValidateError).Type)
}

func TestValidateIndexWidthOverflow(t *testing.T) {
	assert := assert.New(t)

	offsets := make([]uint32, 258)
	table := &Table[uint32, uint8, Compact]{offsets: offsets}
	err := table.Validate()
	assert.Equal(BadIndexWidth, kindOf(t, err))
	assert.Equal("uint8", err.(*ValidateError).Type)
}
