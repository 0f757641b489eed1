package cbor

import (
	"encoding/binary"
	"math"
)

// appendUintCore appends v under the given major type, choosing the
// shortest representation: inline for v<=23, then 1/2/4/8-byte big-endian
// payloads as v grows. This mirrors the fast-growth shape of the general
// CBOR codec this profile was distilled from, restricted to the widths
// this profile actually needs.
func appendUintCore(out []byte, major uint8, v uint64) []byte {
	switch {
	case v <= addInfoDirect:
		return append(out, makeByte(major, uint8(v)))
	case v <= math.MaxUint8:
		return append(out, makeByte(major, addInfoUint8), byte(v))
	case v <= math.MaxUint16:
		out = append(out, makeByte(major, addInfoUint16))
		return appendBigEndian16(out, uint16(v))
	case v <= math.MaxUint32:
		out = append(out, makeByte(major, addInfoUint32))
		return appendBigEndian32(out, uint32(v))
	default:
		out = append(out, makeByte(major, addInfoUint64))
		return appendBigEndian64(out, v)
	}
}

func appendBigEndian16(out []byte, v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return append(out, b[:]...)
}

func appendBigEndian32(out []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(out, b[:]...)
}

func appendBigEndian64(out []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(out, b[:]...)
}

// AppendUnsigned appends v (major type 0) to out in the shortest encoding.
func AppendUnsigned(out []byte, v uint64) []byte {
	return appendUintCore(out, majorTypeUint, v)
}

// AppendNegative appends v (major type 1, v<0) to out in the shortest
// encoding. -1-v is computed as the bitwise complement of v, which is
// exactly -1-v in two's complement arithmetic and therefore correctly
// handles v == math.MinInt64 without overflow.
func AppendNegative(out []byte, v int64) []byte {
	raw := uint64(^v)
	return appendUintCore(out, majorTypeNegInt, raw)
}

// AppendUTF16String appends units (major type 2) as little-endian code
// unit pairs, regardless of host endianness.
func AppendUTF16String(out []byte, units []uint16) []byte {
	out = appendUintCore(out, majorTypeBytes, uint64(2*len(units)))
	var pair [2]byte
	for _, u := range units {
		binary.LittleEndian.PutUint16(pair[:], u)
		out = append(out, pair[0], pair[1])
	}
	return out
}

// AppendUTF8String appends b (major type 3) verbatim. Callers using this
// for arbitrary text must guarantee b is valid UTF-8; this profile's
// binary parser additionally constrains decoded text to 7-bit ASCII, but
// that constraint is enforced on decode, not here.
func AppendUTF8String(out []byte, b []byte) []byte {
	out = appendUintCore(out, majorTypeText, uint64(len(b)))
	return append(out, b...)
}

// AppendDouble appends d (major 7, additional info 27) as 8 big-endian
// bytes. Sign bits on zero and NaN bit patterns are preserved verbatim.
func AppendDouble(out []byte, d float64) []byte {
	out = append(out, makeByte(majorTypeSimple, simpleFloat64))
	return appendBigEndian64(out, math.Float64bits(d))
}

// AppendBool appends the true/false sentinel (major 7, info 21/20).
func AppendBool(out []byte, v bool) []byte {
	if v {
		return append(out, makeByte(majorTypeSimple, simpleTrue))
	}
	return append(out, makeByte(majorTypeSimple, simpleFalse))
}

// AppendNull appends the null sentinel (major 7, info 22).
func AppendNull(out []byte) []byte {
	return append(out, makeByte(majorTypeSimple, simpleNull))
}

// AppendMapBegin appends the indefinite-length map-begin sentinel (0xbf).
func AppendMapBegin(out []byte) []byte { return append(out, mapBeginByte) }

// AppendArrayBegin appends the indefinite-length array-begin sentinel (0x9f).
func AppendArrayBegin(out []byte) []byte { return append(out, arrayBeginByte) }

// AppendStop appends the stop/break sentinel (0xff) that closes a map or array.
func AppendStop(out []byte) []byte { return append(out, stopByte) }
