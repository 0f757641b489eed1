package cbor

// Span is a non-owning, bounds-checked cursor over a contiguous byte
// buffer. It never copies the underlying bytes; the caller remains
// responsible for keeping the backing buffer alive for the cursor's
// lifetime. Decoders consume a Span's prefix on success and leave it
// untouched on failure, so a caller can always recover the position at
// which decoding stopped via Pos.
type Span struct {
	buf []byte
	pos int // bytes already consumed from the original buffer
}

// NewSpan wraps b in a Span starting at position 0.
func NewSpan(b []byte) Span { return Span{buf: b} }

// Empty reports whether there are no bytes left to read.
func (s Span) Empty() bool { return len(s.buf) == 0 }

// Len returns the number of unread bytes.
func (s Span) Len() int { return len(s.buf) }

// At returns the byte at index i of the unread region. It panics if i is
// out of range, exactly like indexing the underlying slice would.
func (s Span) At(i int) byte { return s.buf[i] }

// Bytes returns the unread region. The caller must not retain it beyond
// the Span's lifetime if the backing buffer may be reused.
func (s Span) Bytes() []byte { return s.buf }

// Pos returns the number of bytes consumed so far - the position the next
// read would start at, and the position an error should be reported at
// when it is detected at the cursor's current location.
func (s Span) Pos() Position { return Position(s.pos) }

// Advance consumes n bytes from the front of the span. It panics if n
// exceeds the number of unread bytes; callers must check Len first.
func (s *Span) Advance(n int) {
	if n < 0 || n > len(s.buf) {
		panic("cbor: span advance past end")
	}
	s.buf = s.buf[n:]
	s.pos += n
}
