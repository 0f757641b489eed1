package cbor

import (
	"encoding/binary"
	"errors"
	"math"
)

// Sentinel errors used between the primitive codec and its two callers
// (the binary parser, and direct unit tests of the codec itself). The
// binary parser never lets these escape: it always knows which major type
// and container context it is in and translates them into one of the
// BINARY_ENCODING_* Status kinds with the correct position.
var (
	errShortBytes  = errors.New("cbor: too few bytes remaining")
	errWrongMajor  = errors.New("cbor: unexpected major type")
	errBadAddInfo  = errors.New("cbor: reserved additional info value")
	errOddLength16 = errors.New("cbor: utf-16 byte string has odd length")
)

// decodeUintCore reads a length/value prefix under the given major type
// without advancing s; callers advance once they know the read succeeded.
// It returns the decoded value and the number of bytes (including the
// initial byte) the encoding occupies.
func decodeUintCore(s *Span, major uint8) (uint64, int, error) {
	if s.Empty() {
		return 0, 0, errShortBytes
	}
	b0 := s.At(0)
	if getMajorType(b0) != major {
		return 0, 0, errWrongMajor
	}
	info := getAddInfo(b0)
	switch {
	case info <= addInfoDirect:
		return uint64(info), 1, nil
	case info == addInfoUint8:
		if s.Len() < 2 {
			return 0, 0, errShortBytes
		}
		return uint64(s.At(1)), 2, nil
	case info == addInfoUint16:
		if s.Len() < 3 {
			return 0, 0, errShortBytes
		}
		return uint64(binary.BigEndian.Uint16(s.Bytes()[1:3])), 3, nil
	case info == addInfoUint32:
		if s.Len() < 5 {
			return 0, 0, errShortBytes
		}
		return uint64(binary.BigEndian.Uint32(s.Bytes()[1:5])), 5, nil
	case info == addInfoUint64:
		if s.Len() < 9 {
			return 0, 0, errShortBytes
		}
		return binary.BigEndian.Uint64(s.Bytes()[1:9]), 9, nil
	default:
		// info is 28, 29, or 30 (reserved) or 31 (indefinite, meaningless
		// for major types 0/1/2/3 in this profile).
		return 0, 0, errBadAddInfo
	}
}

// DecodeUnsigned reads a major-type-0 value and advances s past it.
func DecodeUnsigned(s *Span) (uint64, error) {
	v, width, err := decodeUintCore(s, majorTypeUint)
	if err != nil {
		return 0, err
	}
	s.Advance(width)
	return v, nil
}

// DecodeNegative reads a major-type-1 value and advances s past it.
// v = -1-raw; raw > math.MaxInt64 cannot be represented and is reported
// as overflow.
func DecodeNegative(s *Span) (int64, error) {
	raw, width, err := decodeUintCore(s, majorTypeNegInt)
	if err != nil {
		return 0, err
	}
	if raw > math.MaxInt64 {
		return 0, errNegativeOverflow
	}
	s.Advance(width)
	return int64(-1) - int64(raw), nil
}

var errNegativeOverflow = errors.New("cbor: negative value overflows int64")

// DecodeUTF16String reads a major-type-2 byte string and interprets its
// payload as little-endian UTF-16 code units. The payload length must be
// even.
func DecodeUTF16String(s *Span) ([]uint16, error) {
	length, width, err := decodeUintCore(s, majorTypeBytes)
	if err != nil {
		return nil, err
	}
	if length%2 != 0 {
		return nil, errOddLength16
	}
	if length > uint64(s.Len()-width) {
		return nil, errShortBytes
	}
	total := width + int(length)
	payload := s.Bytes()[width:total]
	units := make([]uint16, length/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(payload[2*i : 2*i+2])
	}
	s.Advance(total)
	return units, nil
}

// DecodeUTF8String reads a major-type-3 text string and returns its raw
// bytes. It does not itself enforce the 7-bit restriction this profile's
// binary parser applies to map keys and string values; that check lives
// in the parser, which is the only caller that knows the right error kind
// and position to report.
func DecodeUTF8String(s *Span) ([]byte, error) {
	length, width, err := decodeUintCore(s, majorTypeText)
	if err != nil {
		return nil, err
	}
	if length > uint64(s.Len()-width) {
		return nil, errShortBytes
	}
	total := width + int(length)
	out := make([]byte, length)
	copy(out, s.Bytes()[width:total])
	s.Advance(total)
	return out, nil
}

// DecodeDouble reads a major-7/info-27 IEEE 754 double. Any bit pattern,
// including every NaN encoding, is accepted.
func DecodeDouble(s *Span) (float64, error) {
	if s.Empty() || s.At(0) != makeByte(majorTypeSimple, simpleFloat64) {
		return 0, errWrongMajor
	}
	if s.Len() < 9 {
		return 0, errShortBytes
	}
	bits := binary.BigEndian.Uint64(s.Bytes()[1:9])
	s.Advance(9)
	return math.Float64frombits(bits), nil
}

// DecodeBool reads the true/false sentinel.
func DecodeBool(s *Span) (bool, error) {
	if s.Empty() {
		return false, errShortBytes
	}
	switch s.At(0) {
	case makeByte(majorTypeSimple, simpleTrue):
		s.Advance(1)
		return true, nil
	case makeByte(majorTypeSimple, simpleFalse):
		s.Advance(1)
		return false, nil
	default:
		return false, errWrongMajor
	}
}

// DecodeNull reads the null sentinel.
func DecodeNull(s *Span) error {
	if s.Empty() {
		return errShortBytes
	}
	if s.At(0) != makeByte(majorTypeSimple, simpleNull) {
		return errWrongMajor
	}
	s.Advance(1)
	return nil
}
