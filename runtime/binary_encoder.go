package cbor

// BinaryEncoder is a Handler that serialises the events it receives as a
// binary message into a growable byte buffer. It preserves the first
// error reported to it and drops every event after that, per the
// terminal-error contract the event stream protocol requires of every
// handler.
type BinaryEncoder struct {
	out    *ByteBuffer
	status Status
}

// NewBinaryEncoder returns a Handler that appends binary-encoded bytes to
// out. Callers read the result with out.Bytes() and check Status() for
// success after driving a parser into it.
func NewBinaryEncoder(out *ByteBuffer) *BinaryEncoder {
	return &BinaryEncoder{out: out, status: OKStatus}
}

// Status reports the first error seen, or OKStatus if none.
func (e *BinaryEncoder) Status() Status { return e.status }

func (e *BinaryEncoder) failed() bool { return !e.status.IsOK() }

func (e *BinaryEncoder) MapBegin() {
	if e.failed() {
		return
	}
	e.out.AppendMapBegin()
}

func (e *BinaryEncoder) MapEnd() {
	if e.failed() {
		return
	}
	e.out.AppendStop()
}

func (e *BinaryEncoder) ArrayBegin() {
	if e.failed() {
		return
	}
	e.out.AppendArrayBegin()
}

func (e *BinaryEncoder) ArrayEnd() {
	if e.failed() {
		return
	}
	e.out.AppendStop()
}

func (e *BinaryEncoder) StringKey(units []uint16) {
	if e.failed() {
		return
	}
	e.encodeString(units)
}

func (e *BinaryEncoder) String(units []uint16) {
	if e.failed() {
		return
	}
	e.encodeString(units)
}

// encodeString chooses major type 3 (one byte per unit) when every code
// unit fits 7-bit ASCII, otherwise major type 2 (two little-endian bytes
// per unit), matching the binary parser's own decode-side distinction.
func (e *BinaryEncoder) encodeString(units []uint16) {
	if raw, ok := asciiBytes(units); ok {
		e.out.AppendUTF8String(raw)
		return
	}
	e.out.AppendUTF16String(units)
}

// Binary encodes raw bytes as a UTF-16 string whose code units are the
// zero-extended byte values. Neither parser in this profile emits this
// event; it exists so BinaryEncoder fully implements Handler.
func (e *BinaryEncoder) Binary(b []byte) {
	if e.failed() {
		return
	}
	units := make([]uint16, len(b))
	for i, c := range b {
		units[i] = uint16(c)
	}
	e.out.AppendUTF16String(units)
}

func (e *BinaryEncoder) Double(v float64) {
	if e.failed() {
		return
	}
	e.out.AppendDouble(v)
}

func (e *BinaryEncoder) Int(v int32) {
	if e.failed() {
		return
	}
	e.out.AppendInt(v)
}

func (e *BinaryEncoder) Bool(v bool) {
	if e.failed() {
		return
	}
	e.out.AppendBool(v)
}

func (e *BinaryEncoder) Null() {
	if e.failed() {
		return
	}
	e.out.AppendNull()
}

func (e *BinaryEncoder) Error(status Status) {
	if !e.failed() {
		e.status = status
	}
}

// asciiBytes reports whether every code unit in units is 7-bit ASCII and,
// if so, returns the narrowed byte form.
func asciiBytes(units []uint16) ([]byte, bool) {
	out := make([]byte, len(units))
	for i, u := range units {
		if u > 0x7f {
			return nil, false
		}
		out[i] = byte(u)
	}
	return out, true
}
