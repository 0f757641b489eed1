// Package tests fuzzes both parsers to ensure they never panic on
// arbitrary input and never call a recording Handler again after Error.
package tests

import (
	"testing"

	cbor "github.com/ovidlabs/protocbor/runtime"
)

// recordingHandler tracks nesting depth and asserts no method is called
// after Error, which every parser in this module must honor.
type recordingHandler struct {
	t        *testing.T
	errored  bool
	depth    int
}

func (h *recordingHandler) after(name string) {
	if h.errored {
		h.t.Fatalf("%s called after Error", name)
	}
}

func (h *recordingHandler) MapBegin()             { h.after("MapBegin"); h.depth++ }
func (h *recordingHandler) MapEnd()               { h.after("MapEnd"); h.depth-- }
func (h *recordingHandler) ArrayBegin()           { h.after("ArrayBegin"); h.depth++ }
func (h *recordingHandler) ArrayEnd()             { h.after("ArrayEnd"); h.depth-- }
func (h *recordingHandler) StringKey(_ []uint16)  { h.after("StringKey") }
func (h *recordingHandler) String(_ []uint16)     { h.after("String") }
func (h *recordingHandler) Binary(_ []byte)       { h.after("Binary") }
func (h *recordingHandler) Double(_ float64)      { h.after("Double") }
func (h *recordingHandler) Int(_ int32)           { h.after("Int") }
func (h *recordingHandler) Bool(_ bool)           { h.after("Bool") }
func (h *recordingHandler) Null()                 { h.after("Null") }
func (h *recordingHandler) Error(status cbor.Status) {
	h.after("Error")
	h.errored = true
	_ = status
}

func FuzzParseBinary(f *testing.F) {
	f.Add([]byte{0xbf, 0xff})
	f.Add([]byte{0xbf, 0x63, 0x6b, 0x65, 0x79, 0x01, 0xff})
	f.Add([]byte{0xbf, 0x63, 0x6b, 0x65, 0x79, 0x9f, 0x01, 0x02, 0xff, 0xff})
	f.Add([]byte{0x7b, 0x22, 0x6d, 0x73, 0x67, 0x22, 0x7d}) // literal JSON text
	f.Add([]byte{})
	f.Add([]byte{0xbf, 0xf6})

	f.Fuzz(func(t *testing.T, data []byte) {
		h := &recordingHandler{t: t}
		cbor.ParseBinary(data, h)
	})
}

func FuzzParseJSON(f *testing.F) {
	f.Add([]byte(`{"a":1,"b":[1,2,3]}`))
	f.Add([]byte(`[1,2.5,"x",true,false,null]`))
	f.Add([]byte(`{"s":"café"}`))
	f.Add([]byte(`{`))
	f.Add([]byte(``))
	f.Add([]byte(`"just a string"`))
	f.Add([]byte(`{"a":}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		h := &recordingHandler{t: t}
		cbor.ParseJSON(data, h)
	})
}

func FuzzConvertRoundTrip(f *testing.F) {
	f.Add([]byte(`{"a":1,"b":[1,2,3],"c":{"d":"e"}}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		bin, status := cbor.ConvertJSONToBinary(data)
		if !status.IsOK() {
			return
		}
		// A binary message starts with map-begin; an array-rooted JSON
		// document encodes to 0x9f..., which ParseBinary rejects by design.
		if bin[0] != 0xbf {
			return
		}
		if _, status := cbor.ConvertBinaryToJSON(bin); !status.IsOK() {
			t.Fatalf("encoder produced a binary message its own parser rejects: %v", status)
		}
	})
}
