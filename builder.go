package strtab

// Options configures a [Builder].
type Options struct {
	// Expected number of strings and total byte length. Pure capacity
	// hints; the builder still grows safely past them.
	ExpectedStrings int
	ExpectedBytes   int

	// Allocator backs the byte buffer. Nil means [Heap].
	Allocator Allocator
}

// DefaultOptions is an empty builder on the runtime heap.
var DefaultOptions = Options{}

// Builder accumulates strings for an immutable [Table].
//
// Each Push appends the string's bytes to a single growing buffer and
// records one end offset. Build converts both buffers in place into a
// frozen table; the builder is single-use and single-goroutine.
type Builder[O Offset, I Index, L Layout] struct {
	alloc   Allocator
	bytes   []byte
	offsets []O
}

// New creates an empty builder.
func New[O Offset, I Index, L Layout]() *Builder[O, I, L] {
	return NewWith[O, I, L](DefaultOptions)
}

// WithCapacity creates a builder pre-sized for the expected number of
// strings and total byte length.
func WithCapacity[O Offset, I Index, L Layout](strings, bytes int) *Builder[O, I, L] {
	options := DefaultOptions
	options.ExpectedStrings = strings
	options.ExpectedBytes = bytes
	return NewWith[O, I, L](options)
}

// NewWith creates a builder from options.
func NewWith[O Offset, I Index, L Layout](options Options) *Builder[O, I, L] {
	alloc := options.Allocator
	if alloc == nil {
		alloc = Heap{}
	}
	b := &Builder[O, I, L]{
		alloc:   alloc,
		offsets: make([]O, 1, max(options.ExpectedStrings+1, 1)),
	}
	if options.ExpectedBytes > 0 {
		b.bytes = alloc.Alloc(options.ExpectedBytes)[:0]
	}
	return b
}

// Len returns the number of strings pushed so far, or 0 once the builder
// has been built.
func (b *Builder[O, I, L]) Len() int {
	if len(b.offsets) == 0 {
		return 0
	}
	return len(b.offsets) - 1
}

// IsEmpty reports whether no strings have been pushed.
func (b *Builder[O, I, L]) IsEmpty() bool {
	return b.Len() == 0
}

// ByteLen returns the current total byte length of pushed string data,
// including NUL terminators in the padded layout.
func (b *Builder[O, I, L]) ByteLen() int {
	return len(b.bytes)
}

// Push appends a string and returns its [ID].
//
// It fails with [*TooManyStringsError] when the string count no longer fits
// the index type, and with [*TooManyBytesError] when the resulting byte
// length no longer fits the offset type. Both checks run before any
// mutation, so a failed Push leaves the builder exactly as it was.
//
// Values are expected to be UTF-8 text; the debug validator enforces this.
func (b *Builder[O, I, L]) Push(value string) (ID[I], error) {
	if b.offsets == nil {
		panic("strtab: Push on a built Builder")
	}
	count := b.Len()
	raw, ok := toNum[I](count)
	if !ok {
		return ID[I]{}, &TooManyStringsError{Strings: count + 1, IDType: typeNameOf[I]()}
	}
	end := len(b.bytes) + len(value) + paddingOf[L]()
	endOffset, ok := toNum[O](end)
	if !ok {
		return ID[I]{}, &TooManyBytesError{Bytes: end, OffsetType: typeNameOf[O]()}
	}

	b.grow(end - len(b.bytes))
	b.bytes = append(b.bytes, value...)
	if paddingOf[L]() != 0 {
		b.bytes = append(b.bytes, 0)
	}
	b.offsets = append(b.offsets, endOffset)
	return ID[I]{raw: raw}, nil
}

// grow reserves room for n more bytes through the allocator, so the
// appends in Push never reallocate behind its back.
func (b *Builder[O, I, L]) grow(n int) {
	need := len(b.bytes) + n
	if need <= cap(b.bytes) {
		return
	}
	want := max(2*cap(b.bytes), need, 64)
	dst := b.alloc.Alloc(want)[:len(b.bytes)]
	copy(dst, b.bytes)
	if cap(b.bytes) > 0 {
		b.alloc.Free(b.bytes[:cap(b.bytes)])
	}
	b.bytes = dst
}

// Build finalizes the builder into an immutable [Table] without copying
// string bytes. The builder is poisoned afterwards: any further Push
// panics. With the strtabdebug build tag set, the result is validated and
// Build panics on any invariant violation.
func (b *Builder[O, I, L]) Build() *Table[O, I, L] {
	t := FromParts[O, I, L](b.bytes, b.offsets)
	b.bytes, b.offsets, b.alloc = nil, nil, nil
	return t
}
