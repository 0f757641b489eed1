package cbor

import (
	"strconv"
	"unicode/utf16"
)

// TraceHandler is a Handler that renders every event it receives as one
// human-readable line, indented by nesting depth. It is the event-stream
// analogue of the teacher codec's byte-oriented diagnostic-notation
// renderer: instead of re-decoding a CBOR item into diagnostic notation,
// it narrates the event sequence a parser actually produced, which is
// useful for seeing exactly where a malformed message's parse diverges.
type TraceHandler struct {
	out   *ByteBuffer
	depth int
}

// NewTraceHandler returns a Handler that writes one indented line per
// event to out.
func NewTraceHandler(out *ByteBuffer) *TraceHandler {
	return &TraceHandler{out: out}
}

func (t *TraceHandler) indent() {
	for i := 0; i < t.depth; i++ {
		t.out.WriteString("  ")
	}
}

func (t *TraceHandler) line(s string) {
	t.indent()
	t.out.WriteString(s)
	t.out.WriteByte('\n')
}

func (t *TraceHandler) MapBegin() {
	t.line("map-begin")
	t.depth++
}

func (t *TraceHandler) MapEnd() {
	t.depth--
	t.line("map-end")
}

func (t *TraceHandler) ArrayBegin() {
	t.line("array-begin")
	t.depth++
}

func (t *TraceHandler) ArrayEnd() {
	t.depth--
	t.line("array-end")
}

func (t *TraceHandler) StringKey(units []uint16) {
	t.line("key " + quoteUTF16(units))
}

func (t *TraceHandler) String(units []uint16) {
	t.line("string " + quoteUTF16(units))
}

func (t *TraceHandler) Binary(b []byte) {
	t.line("binary " + strconv.Itoa(len(b)) + " bytes")
}

func (t *TraceHandler) Double(v float64) {
	t.line("double " + strconv.FormatFloat(v, 'g', -1, 64))
}

func (t *TraceHandler) Int(v int32) {
	t.line("int " + strconv.Itoa(int(v)))
}

func (t *TraceHandler) Bool(v bool) {
	t.line("bool " + strconv.FormatBool(v))
}

func (t *TraceHandler) Null() {
	t.line("null")
}

func (t *TraceHandler) Error(status Status) {
	t.line("error " + status.Error())
}

// quoteUTF16 renders UTF-16 code units as a double-quoted Go string
// literal for display. It is lossy for lone surrogates (utf16.Decode
// substitutes the replacement character); that is acceptable for a
// diagnostic tool that is not a round-trip path.
func quoteUTF16(units []uint16) string {
	return strconv.Quote(string(utf16.Decode(units)))
}
