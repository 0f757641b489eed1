package cbor

import "math"

// ParseBinary drives h from a binary message. The message must begin with
// 0xbf (indefinite-length map start); anything else, including literal
// JSON text, is rejected immediately with BINARY_ENCODING_INVALID_START_BYTE
// so that callers can safely try binary decoding before falling back to
// JSON without risking a misinterpretation.
func ParseBinary(input []byte, h Handler) {
	if len(input) == 0 {
		h.Error(errAt(BinaryEncodingNoInput, 0))
		return
	}
	if input[0] != mapBeginByte {
		h.Error(errAt(BinaryEncodingInvalidStartByte, 0))
		return
	}

	s := NewSpan(input)
	s.Advance(1)

	var stack nestingStack
	stack.push(frameMapKey)
	h.MapBegin()

	for stack.depth() > 0 {
		kind, _ := stack.top()
		switch kind {
		case frameMapKey:
			if s.Empty() {
				h.Error(errAt(BinaryEncodingUnexpectedEOFInMap, s.Pos()))
				return
			}
			if s.At(0) == stopByte {
				s.Advance(1)
				stack.pop()
				h.MapEnd()
				valueConsumed(&stack)
				continue
			}
			if !readMapKey(&s, h) {
				return
			}
			stack.setTop(frameMapValue)

		case frameMapValue:
			if s.Empty() {
				h.Error(errAt(BinaryEncodingUnexpectedEOFExpectedValue, s.Pos()))
				return
			}
			if !readValue(&s, &stack, h, BinaryEncodingUnexpectedEOFExpectedValue) {
				return
			}

		case frameArray:
			if s.Empty() {
				h.Error(errAt(BinaryEncodingUnexpectedEOFInArray, s.Pos()))
				return
			}
			if s.At(0) == stopByte {
				s.Advance(1)
				stack.pop()
				h.ArrayEnd()
				valueConsumed(&stack)
				continue
			}
			if !readValue(&s, &stack, h, BinaryEncodingUnexpectedEOFInArray) {
				return
			}
		}
	}
}

// valueConsumed flips the parent frame from "expecting a value" back to
// "expecting a key" once that value - scalar or a just-closed container -
// has been fully read. Array frames never flip: they always expect another
// element or a stop byte.
func valueConsumed(stack *nestingStack) {
	if top, ok := stack.top(); ok && top == frameMapValue {
		stack.setTop(frameMapKey)
	}
}

// readMapKey reads one map key. Keys must be 7-bit ASCII text (major type
// 3); anything else - wrong major type, a malformed string header, or text
// containing a byte outside the 7-bit range - is INVALID_MAP_KEY at the
// position of the key's initial byte.
func readMapKey(s *Span, h Handler) bool {
	pos := s.Pos()
	if getMajorType(s.At(0)) != majorTypeText {
		h.Error(errAt(BinaryEncodingInvalidMapKey, pos))
		return false
	}
	raw, err := DecodeUTF8String(s)
	if err != nil {
		h.Error(errAt(BinaryEncodingInvalidMapKey, pos))
		return false
	}
	if !isASCII7Bit(raw) {
		h.Error(errAt(BinaryEncodingInvalidMapKey, pos))
		return false
	}
	h.StringKey(widen7Bit(raw))
	return true
}

// readValue reads one value at the current cursor, which the caller has
// already established is non-empty. Scalars emit their event and report
// success; map-begin/array-begin push a new frame and report success
// without emitting a completion event (the map/array isn't "consumed"
// until its own stop byte is read). eofKind selects which context-specific
// error the generic (non-string, non-double) decoders report on a short
// read: UNEXPECTED_EOF_EXPECTED_VALUE inside a map, UNEXPECTED_EOF_IN_ARRAY
// inside an array.
func readValue(s *Span, stack *nestingStack, h Handler, eofKind ErrorKind) bool {
	b0 := s.At(0)

	if b0 == mapBeginByte {
		if !stack.push(frameMapKey) {
			h.Error(errAt(BinaryEncodingStackLimitExceeded, s.Pos()))
			return false
		}
		s.Advance(1)
		h.MapBegin()
		return true
	}
	if b0 == arrayBeginByte {
		if !stack.push(frameArray) {
			h.Error(errAt(BinaryEncodingStackLimitExceeded, s.Pos()))
			return false
		}
		s.Advance(1)
		h.ArrayBegin()
		return true
	}

	switch getMajorType(b0) {
	case majorTypeUint:
		pos := s.Pos()
		u, err := DecodeUnsigned(s)
		if err != nil {
			h.Error(classifyNumericError(err, eofKind, pos))
			return false
		}
		if u > math.MaxInt32 {
			h.Error(errAt(BinaryEncodingInvalidSigned, pos))
			return false
		}
		h.Int(int32(u))
		valueConsumed(stack)
		return true

	case majorTypeNegInt:
		pos := s.Pos()
		v, err := DecodeNegative(s)
		if err != nil {
			if err == errNegativeOverflow {
				h.Error(errAt(BinaryEncodingInvalidSigned, pos))
				return false
			}
			h.Error(classifyNumericError(err, eofKind, pos))
			return false
		}
		if v < math.MinInt32 {
			h.Error(errAt(BinaryEncodingInvalidSigned, pos))
			return false
		}
		h.Int(int32(v))
		valueConsumed(stack)
		return true

	case majorTypeBytes:
		pos := s.Pos()
		units, err := DecodeUTF16String(s)
		if err != nil {
			h.Error(errAt(BinaryEncodingInvalidString16, pos))
			return false
		}
		h.String(units)
		valueConsumed(stack)
		return true

	case majorTypeText:
		pos := s.Pos()
		raw, err := DecodeUTF8String(s)
		if err != nil {
			h.Error(errAt(BinaryEncodingInvalidString8, pos))
			return false
		}
		if !isASCII7Bit(raw) {
			h.Error(errAt(BinaryEncodingString8MustBe7Bit, pos))
			return false
		}
		h.String(widen7Bit(raw))
		valueConsumed(stack)
		return true

	case majorTypeSimple:
		switch getAddInfo(b0) {
		case simpleTrue:
			s.Advance(1)
			h.Bool(true)
			valueConsumed(stack)
			return true
		case simpleFalse:
			s.Advance(1)
			h.Bool(false)
			valueConsumed(stack)
			return true
		case simpleNull:
			s.Advance(1)
			h.Null()
			valueConsumed(stack)
			return true
		case simpleFloat64:
			pos := s.Pos()
			d, err := DecodeDouble(s)
			if err != nil {
				h.Error(errAt(BinaryEncodingInvalidDouble, pos))
				return false
			}
			h.Double(d)
			valueConsumed(stack)
			return true
		default:
			h.Error(errAt(BinaryEncodingUnsupportedValue, s.Pos()))
			return false
		}

	default:
		// Major types 4, 5 (definite-length array/map) and 6 (tag) are
		// outside this profile. Reserved additional-info values under
		// major types 0-3 are reported by those types' own cases above.
		h.Error(errAt(BinaryEncodingUnsupportedValue, s.Pos()))
		return false
	}
}

// classifyNumericError maps a decode_primitives failure for an unsigned or
// negative integer to a Status: a short read is context-specific EOF,
// anything else (a reserved additional-info value) is unsupported.
func classifyNumericError(err error, eofKind ErrorKind, pos Position) Status {
	if err == errShortBytes {
		return errAt(eofKind, pos)
	}
	return errAt(BinaryEncodingUnsupportedValue, pos)
}

// isASCII7Bit reports whether every byte in b is in the 7-bit range.
func isASCII7Bit(b []byte) bool {
	for _, c := range b {
		if c > 0x7f {
			return false
		}
	}
	return true
}

// widen7Bit zero-extends each 7-bit byte to a UTF-16 code unit.
func widen7Bit(b []byte) []uint16 {
	out := make([]uint16, len(b))
	for i, c := range b {
		out[i] = uint16(c)
	}
	return out
}
