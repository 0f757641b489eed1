// Package tests exercises the documented concrete scenarios (S1-S9) for
// the CBOR-subset codec as black-box tests against the public API.
package tests

import (
	"bytes"
	"encoding/hex"
	"testing"

	cbor "github.com/ovidlabs/protocbor/runtime"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// S1: unsigned 23 encodes to one byte and decodes back exactly.
func TestS1UnsignedInline(t *testing.T) {
	got := cbor.AppendUnsigned(nil, 23)
	if !bytes.Equal(got, []byte{0x17}) {
		t.Fatalf("encode(23) = % x, want 17", got)
	}
	s := cbor.NewSpan(got)
	v, err := cbor.DecodeUnsigned(&s)
	if err != nil || v != 23 || !s.Empty() {
		t.Fatalf("decode(17) = %d, %v, empty=%v", v, err, s.Empty())
	}
}

// S2: unsigned 500 takes the 2-byte payload form.
func TestS2Unsigned500(t *testing.T) {
	got := cbor.AppendUnsigned(nil, 500)
	want := mustHex(t, "1901f4")
	if !bytes.Equal(got, want) {
		t.Fatalf("encode(500) = % x, want % x", got, want)
	}
}

// S3: the IEEE 754 double for 1/3.
func TestS3DoubleOneThird(t *testing.T) {
	got := cbor.AppendDouble(nil, 1.0/3.0)
	want := mustHex(t, "fb3fd5555555555555")
	if !bytes.Equal(got, want) {
		t.Fatalf("encode(1/3) = % x, want % x", got, want)
	}
}

// S4: a JSON object with an astral-plane character converts to the
// documented binary byte sequence.
func TestS4JSONToBinaryEmoji(t *testing.T) {
	in := []byte(`{"msg":"Hello, 🌎."}`)
	got, status := cbor.ConvertJSONToBinary(in)
	if !status.IsOK() {
		t.Fatalf("status = %v", status)
	}
	want := mustHex(t, "bf636d736754480065006c006c006f002c0020003cd80edf2e00ff")
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

// S5: an empty binary map converts to "{}".
func TestS5EmptyMap(t *testing.T) {
	got, status := cbor.ConvertBinaryToJSON(mustHex(t, "bfff"))
	if !status.IsOK() {
		t.Fatalf("status = %v", status)
	}
	if string(got) != "{}" {
		t.Fatalf("got %q, want {}", got)
	}
}

// S6: a null byte in key position is an invalid map key at position 1.
func TestS6BadKeyType(t *testing.T) {
	_, status := cbor.ConvertBinaryToJSON(mustHex(t, "bff6"))
	if status.Kind != cbor.BinaryEncodingInvalidMapKey || status.Pos != 1 {
		t.Fatalf("status = %+v", status)
	}
}

// S7: a tag byte in value position is unsupported at its own position.
func TestS7TagByte(t *testing.T) {
	_, status := cbor.ConvertBinaryToJSON(mustHex(t, "bf636b6579c5"))
	if status.Kind != cbor.BinaryEncodingUnsupportedValue || status.Pos != 5 {
		t.Fatalf("status = %+v", status)
	}
}

// S8: a non-ASCII text string value fails STRING8_MUST_BE_7BIT.
func TestS8NonASCIIValue(t *testing.T) {
	_, status := cbor.ConvertBinaryToJSON(mustHex(t, "bf636b657965f0f0f0f0f0"))
	if status.Kind != cbor.BinaryEncodingString8MustBe7Bit || status.Pos != 5 {
		t.Fatalf("status = %+v", status)
	}
}

// S9: an unsigned value that overflows signed 32-bit is INVALID_SIGNED.
func TestS9OversizedUnsigned(t *testing.T) {
	_, status := cbor.ConvertBinaryToJSON(mustHex(t, "bf636b65791bffffffffffffffff"))
	if status.Kind != cbor.BinaryEncodingInvalidSigned || status.Pos != 5 {
		t.Fatalf("status = %+v", status)
	}
}

// Top-level reject: literal JSON text handed to the binary parser fails
// at position 0 with INVALID_START_BYTE.
func TestTopLevelRejectsJSONText(t *testing.T) {
	_, status := cbor.ConvertBinaryToJSON([]byte(`{"msg": "Hello, world."}`))
	if status.Kind != cbor.BinaryEncodingInvalidStartByte || status.Pos != 0 {
		t.Fatalf("status = %+v", status)
	}
}
