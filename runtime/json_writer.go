package cbor

import (
	"encoding/base64"
	"strconv"
)

// jsonWriterFrame tracks one open container: whether it is a map (needing
// a colon before each value) or an array (needing a comma before every
// element but the first), and whether the next comma should be skipped
// because nothing has been written inside it yet.
type jsonWriterFrame struct {
	isMap bool
	first bool
}

// JSONWriter is a Handler that renders the events it receives as RFC
// 8259 JSON text into a growable text buffer. Like BinaryEncoder, it
// preserves the first error reported to it; on error the buffer
// accumulated so far is discarded, per the writer's error contract.
type JSONWriter struct {
	out    *ByteBuffer
	stack  []jsonWriterFrame
	status Status
}

// NewJSONWriter returns a Handler that writes JSON text to out.
func NewJSONWriter(out *ByteBuffer) *JSONWriter {
	return &JSONWriter{out: out, status: OKStatus}
}

// Status reports the first error seen, or OKStatus if none.
func (w *JSONWriter) Status() Status { return w.status }

func (w *JSONWriter) failed() bool { return !w.status.IsOK() }

// beforeValue writes the separator that precedes a value: a colon if the
// value sits in a map's value position, a comma if it is a non-first
// array element, nothing at top level. The comma between map entries is
// written before the key instead; see beforeKey.
func (w *JSONWriter) beforeValue() {
	if len(w.stack) == 0 {
		return
	}
	top := &w.stack[len(w.stack)-1]
	if top.isMap {
		w.out.WriteByte(':')
		return
	}
	if !top.first {
		w.out.WriteByte(',')
	}
	top.first = false
}

// beforeKey writes the comma that precedes a map key, unless it is the
// map's first key.
func (w *JSONWriter) beforeKey() {
	top := &w.stack[len(w.stack)-1]
	if !top.first {
		w.out.WriteByte(',')
	}
	top.first = false
}

func (w *JSONWriter) push(isMap bool) {
	w.stack = append(w.stack, jsonWriterFrame{isMap: isMap, first: true})
}

func (w *JSONWriter) pop() {
	w.stack = w.stack[:len(w.stack)-1]
}

func (w *JSONWriter) MapBegin() {
	if w.failed() {
		return
	}
	w.beforeValue()
	w.out.WriteByte('{')
	w.push(true)
}

func (w *JSONWriter) MapEnd() {
	if w.failed() {
		return
	}
	w.out.WriteByte('}')
	w.pop()
}

func (w *JSONWriter) ArrayBegin() {
	if w.failed() {
		return
	}
	w.beforeValue()
	w.out.WriteByte('[')
	w.push(false)
}

func (w *JSONWriter) ArrayEnd() {
	if w.failed() {
		return
	}
	w.out.WriteByte(']')
	w.pop()
}

func (w *JSONWriter) StringKey(units []uint16) {
	if w.failed() {
		return
	}
	w.beforeKey()
	w.writeJSONString(units)
}

func (w *JSONWriter) String(units []uint16) {
	if w.failed() {
		return
	}
	w.beforeValue()
	w.writeJSONString(units)
}

// Binary renders raw bytes as a base64 string value, since JSON has no
// native binary type. Neither parser in this profile emits this event.
func (w *JSONWriter) Binary(b []byte) {
	if w.failed() {
		return
	}
	w.beforeValue()
	w.out.WriteByte('"')
	w.out.WriteString(base64.StdEncoding.EncodeToString(b))
	w.out.WriteByte('"')
}

func (w *JSONWriter) Double(v float64) {
	if w.failed() {
		return
	}
	w.beforeValue()
	w.out.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

func (w *JSONWriter) Int(v int32) {
	if w.failed() {
		return
	}
	w.beforeValue()
	w.out.WriteString(strconv.Itoa(int(v)))
}

func (w *JSONWriter) Bool(v bool) {
	if w.failed() {
		return
	}
	w.beforeValue()
	if v {
		w.out.WriteString("true")
	} else {
		w.out.WriteString("false")
	}
}

func (w *JSONWriter) Null() {
	if w.failed() {
		return
	}
	w.beforeValue()
	w.out.WriteString("null")
}

func (w *JSONWriter) Error(status Status) {
	if !w.failed() {
		w.status = status
	}
	w.out.Reset()
	w.stack = nil
}

// writeJSONString writes units as a quoted JSON string literal: the
// standard two-character escapes for quote, backslash, and the named
// control characters, \u00XX for every other control character, and
// \uXXXX for any code unit outside the printable ASCII range (including
// both halves of a surrogate pair, which round-trip as two escapes).
func (w *JSONWriter) writeJSONString(units []uint16) {
	w.out.WriteByte('"')
	for _, u := range units {
		switch u {
		case '"':
			w.out.WriteString(`\"`)
		case '\\':
			w.out.WriteString(`\\`)
		case '\b':
			w.out.WriteString(`\b`)
		case '\f':
			w.out.WriteString(`\f`)
		case '\n':
			w.out.WriteString(`\n`)
		case '\r':
			w.out.WriteString(`\r`)
		case '\t':
			w.out.WriteString(`\t`)
		default:
			if u < 0x20 || u >= 0x7f {
				w.writeUEscape(u)
			} else {
				w.out.WriteByte(byte(u))
			}
		}
	}
	w.out.WriteByte('"')
}

const hexDigits = "0123456789abcdef"

func (w *JSONWriter) writeUEscape(u uint16) {
	w.out.WriteByte('\\')
	w.out.WriteByte('u')
	w.out.WriteByte(hexDigits[(u>>12)&0xf])
	w.out.WriteByte(hexDigits[(u>>8)&0xf])
	w.out.WriteByte(hexDigits[(u>>4)&0xf])
	w.out.WriteByte(hexDigits[u&0xf])
}
