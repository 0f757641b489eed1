package cbor

// Handler is the event sink both parsers drive and both writers
// implement. A well-formed event sequence nests MapBegin/MapEnd and
// ArrayBegin/ArrayEnd correctly, alternates StringKey then a value event
// inside a map, and produces exactly one top-level value unless aborted by
// Error. Handler implementations are not responsible for validating any of
// that; it is the parser's contract. Once Error has been called, a
// conforming parser calls no further methods.
//
// Integers are carried as 32-bit signed values even though the wire
// format can transport the full unsigned/negative 64-bit CBOR range:
// every known consumer of this event stream treats numbers as 32-bit
// signed, and out-of-range values are a decode error (BINARY_ENCODING_
// INVALID_SIGNED), never a silent truncation.
type Handler interface {
	MapBegin()
	MapEnd()
	ArrayBegin()
	ArrayEnd()

	// StringKey is only legal between MapBegin and MapEnd, in key
	// position. Code units are UTF-16.
	StringKey(codeUnits []uint16)

	// String is a UTF-16 string value.
	String(codeUnits []uint16)

	// Binary is a raw-bytes value. It is reserved for forward
	// compatibility: the binary parser never emits it in this profile,
	// and a JSON writer that receives one escapes it as base64.
	Binary(b []byte)

	Double(v float64)
	Int(v int32)
	Bool(v bool)
	Null()

	// Error is terminal. No further events follow it.
	Error(status Status)
}

// NopHandler implements Handler with no-op methods. Embedding it lets a
// handler that only cares about a few events skip implementing the rest.
type NopHandler struct{}

func (NopHandler) MapBegin()             {}
func (NopHandler) MapEnd()               {}
func (NopHandler) ArrayBegin()           {}
func (NopHandler) ArrayEnd()             {}
func (NopHandler) StringKey(_ []uint16)  {}
func (NopHandler) String(_ []uint16)     {}
func (NopHandler) Binary(_ []byte)       {}
func (NopHandler) Double(_ float64)      {}
func (NopHandler) Int(_ int32)           {}
func (NopHandler) Bool(_ bool)           {}
func (NopHandler) Null()                 {}
func (NopHandler) Error(_ Status)        {}
