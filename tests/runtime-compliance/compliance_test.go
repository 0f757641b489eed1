// Package tests checks the codec's documented invariants: primitive
// round-tripping, shortest-form encoding, and the nesting depth bound
// shared by both parsers.
package tests

import (
	"math"
	"testing"

	cbor "github.com/ovidlabs/protocbor/runtime"
)

func TestUnsignedRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 22, 23, 24, 255, 256, 65535, 65536, math.MaxUint32, math.MaxUint32 + 1, math.MaxUint64}
	for _, v := range values {
		enc := cbor.AppendUnsigned(nil, v)
		s := cbor.NewSpan(enc)
		got, err := cbor.DecodeUnsigned(&s)
		if err != nil {
			t.Fatalf("decode(%d): %v", v, err)
		}
		if got != v || !s.Empty() {
			t.Fatalf("round-trip(%d) = %d, remaining=%d", v, got, s.Len())
		}
	}
}

func TestNegativeRoundTrip(t *testing.T) {
	values := []int64{-1, -22, -23, -24, -256, -257, -65536, -65537, math.MinInt32, math.MinInt32 - 1, math.MinInt64}
	for _, v := range values {
		enc := cbor.AppendNegative(nil, v)
		s := cbor.NewSpan(enc)
		got, err := cbor.DecodeNegative(&s)
		if err != nil {
			t.Fatalf("decode(%d): %v", v, err)
		}
		if got != v || !s.Empty() {
			t.Fatalf("round-trip(%d) = %d, remaining=%d", v, got, s.Len())
		}
	}
}

func TestDoubleRoundTrip(t *testing.T) {
	values := []float64{0, math.Copysign(0, -1), math.Inf(1), math.Inf(-1), math.NaN(), math.MaxFloat64, math.SmallestNonzeroFloat64, 1.0 / 3.0}
	for _, v := range values {
		enc := cbor.AppendDouble(nil, v)
		s := cbor.NewSpan(enc)
		got, err := cbor.DecodeDouble(&s)
		if err != nil {
			t.Fatalf("decode(%v): %v", v, err)
		}
		if !s.Empty() {
			t.Fatalf("round-trip(%v) left %d bytes", v, s.Len())
		}
		if math.IsNaN(v) {
			if !math.IsNaN(got) {
				t.Fatalf("round-trip(NaN) = %v", got)
			}
			continue
		}
		if got != v || math.Signbit(got) != math.Signbit(v) {
			t.Fatalf("round-trip(%v) = %v", v, got)
		}
	}
}

func TestBoolAndNullRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		enc := cbor.AppendBool(nil, v)
		s := cbor.NewSpan(enc)
		got, err := cbor.DecodeBool(&s)
		if err != nil || got != v || !s.Empty() {
			t.Fatalf("bool(%v): got %v, err %v, empty %v", v, got, err, s.Empty())
		}
	}

	enc := cbor.AppendNull(nil)
	s := cbor.NewSpan(enc)
	if err := cbor.DecodeNull(&s); err != nil || !s.Empty() {
		t.Fatalf("null: err %v, empty %v", err, s.Empty())
	}
}

func TestUTF16StringRoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 20, 250, 65535} {
		units := make([]uint16, size)
		for i := range units {
			units[i] = uint16(i % 0x7fff)
		}
		enc := cbor.AppendUTF16String(nil, units)
		s := cbor.NewSpan(enc)
		got, err := cbor.DecodeUTF16String(&s)
		if err != nil {
			t.Fatalf("size %d: decode: %v", size, err)
		}
		if len(got) != size || !s.Empty() {
			t.Fatalf("size %d: got %d units, remaining %d", size, len(got), s.Len())
		}
		for i := range got {
			if got[i] != units[i] {
				t.Fatalf("size %d: unit %d mismatch: got %d want %d", size, i, got[i], units[i])
			}
		}
	}
}

func TestShortestFormLength(t *testing.T) {
	cases := []struct {
		v    uint64
		want int
	}{
		{23, 1},
		{24, 2},
		{500, 3},
		{0xdeadbeef, 5},
		{0xaabbccddeeff0011, 9},
	}
	for _, c := range cases {
		got := len(cbor.AppendUnsigned(nil, c.v))
		if got != c.want {
			t.Fatalf("len(encode(%#x)) = %d, want %d", c.v, got, c.want)
		}
	}
}

// buildNestedMap constructs a binary message nesting depth maps, each
// holding a single key "key", with a scalar at the innermost level and
// every map properly closed.
func buildNestedMap(depth int) []byte {
	b := make([]byte, 0, depth*5+depth+1)
	for i := 0; i < depth; i++ {
		b = append(b, 0xbf, 0x63, 0x6b, 0x65, 0x79)
	}
	b = append(b, 0x16) // unsigned 22, an arbitrary scalar
	for i := 0; i < depth; i++ {
		b = append(b, 0xff)
	}
	return b
}

func TestDepthBound(t *testing.T) {
	if _, status := cbor.ConvertBinaryToJSON(buildNestedMap(1000)); !status.IsOK() {
		t.Fatalf("depth 1000: status = %+v", status)
	}
	for _, depth := range []int{1001, 1200} {
		_, status := cbor.ConvertBinaryToJSON(buildNestedMap(depth))
		if status.Kind != cbor.BinaryEncodingStackLimitExceeded || status.Pos != 5000 {
			t.Fatalf("depth %d: status = %+v, want StackLimitExceeded at 5000", depth, status)
		}
	}
}

func TestPositionMonotonicity(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x01},
		{0xbf, 0xf6},
		{0xbf, 0x63, 0x6b, 0x65, 0x79, 0xc5},
		{0xbf, 0x63, 0x6b, 0x65, 0x79, 0x65, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0},
	}
	for _, in := range inputs {
		_, status := cbor.ConvertBinaryToJSON(in)
		if status.IsOK() {
			continue
		}
		if status.Pos < 0 || int(status.Pos) > len(in) {
			t.Fatalf("input % x: position %d out of [0,%d]", in, status.Pos, len(in))
		}
	}
}
