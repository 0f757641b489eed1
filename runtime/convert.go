// Package cbor implements a restricted CBOR-subset binary codec and its
// JSON counterpart, built around a single streaming event protocol
// (Handler) that both a JSON text parser and a binary parser drive, and
// that both a binary encoder and a JSON writer consume.
//
// The four families of exported functions follow one convention:
// ParseXxx drives a Handler from input, AppendXxx/DecodeXxx are the
// primitive codec operating directly on byte slices and Spans, and
// NewXxxEncoder/NewXxxWriter construct a Handler that produces output.
// Errors never panic or return a Go error from the streaming functions;
// they arrive as a single terminal Handler.Error call carrying a Status.
package cbor

// ConvertJSONToBinary parses input as JSON text and re-encodes it as a
// binary message. On success it returns the encoded bytes and OKStatus;
// on failure it returns nil and the Status reported by the parser or
// encoder, whichever failed first.
func ConvertJSONToBinary(input []byte) ([]byte, Status) {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	enc := NewBinaryEncoder(bb)
	ParseJSON(input, enc)
	if !enc.Status().IsOK() {
		return nil, enc.Status()
	}
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out, OKStatus
}

// ConvertJSON16ToBinary is ConvertJSONToBinary for UTF-16 JSON input.
func ConvertJSON16ToBinary(input []uint16) ([]byte, Status) {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	enc := NewBinaryEncoder(bb)
	ParseJSON16(input, enc)
	if !enc.Status().IsOK() {
		return nil, enc.Status()
	}
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out, OKStatus
}

// ConvertBinaryToJSON parses input as a binary message and re-encodes it
// as JSON text. On success it returns the JSON bytes and OKStatus; on
// failure it returns nil and the Status reported by the parser or
// writer, whichever failed first.
func ConvertBinaryToJSON(input []byte) ([]byte, Status) {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	w := NewJSONWriter(bb)
	ParseBinary(input, w)
	if !w.Status().IsOK() {
		return nil, w.Status()
	}
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out, OKStatus
}
