package cbor

import "strconv"

// Position is a zero-based offset into the original input, in input units
// (bytes for binary and UTF-8 JSON input, code units for UTF-16 JSON
// input). NoPosition means "success, no position to report".
type Position int64

// NoPosition is the sentinel meaning "no position" - the value Status.Pos
// holds when Status.Kind is OK.
const NoPosition Position = -1

// ErrorKind enumerates every terminal outcome a parser or encoder can
// report. The zero value, OK, is success.
type ErrorKind int

const (
	OK ErrorKind = iota

	// JSON text parser errors.
	JSONUnprocessedInputRemains
	JSONStackLimitExceeded
	JSONNoInput
	JSONInvalidToken
	JSONInvalidNumber
	JSONInvalidString
	JSONUnexpectedArrayEnd
	JSONCommaOrArrayEndExpected
	JSONStringLiteralExpected
	JSONColonExpected
	JSONUnexpectedMapEnd
	JSONCommaOrMapEndExpected
	JSONValueExpected

	// Binary parser errors.
	BinaryEncodingNoInput
	BinaryEncodingInvalidStartByte
	BinaryEncodingUnexpectedEOFExpectedValue
	BinaryEncodingUnexpectedEOFInArray
	BinaryEncodingUnexpectedEOFInMap
	BinaryEncodingInvalidMapKey
	BinaryEncodingStackLimitExceeded
	BinaryEncodingUnsupportedValue
	BinaryEncodingInvalidString16
	BinaryEncodingInvalidString8
	BinaryEncodingString8MustBe7Bit
	BinaryEncodingInvalidDouble
	BinaryEncodingInvalidSigned
)

var errorKindNames = [...]string{
	OK:                                         "OK",
	JSONUnprocessedInputRemains:                "JSON_UNPROCESSED_INPUT_REMAINS",
	JSONStackLimitExceeded:                     "JSON_STACK_LIMIT_EXCEEDED",
	JSONNoInput:                                "JSON_NO_INPUT",
	JSONInvalidToken:                           "JSON_INVALID_TOKEN",
	JSONInvalidNumber:                          "JSON_INVALID_NUMBER",
	JSONInvalidString:                          "JSON_INVALID_STRING",
	JSONUnexpectedArrayEnd:                     "JSON_UNEXPECTED_ARRAY_END",
	JSONCommaOrArrayEndExpected:                "JSON_COMMA_OR_ARRAY_END_EXPECTED",
	JSONStringLiteralExpected:                  "JSON_STRING_LITERAL_EXPECTED",
	JSONColonExpected:                          "JSON_COLON_EXPECTED",
	JSONUnexpectedMapEnd:                       "JSON_UNEXPECTED_MAP_END",
	JSONCommaOrMapEndExpected:                  "JSON_COMMA_OR_MAP_END_EXPECTED",
	JSONValueExpected:                          "JSON_VALUE_EXPECTED",
	BinaryEncodingNoInput:                      "BINARY_ENCODING_NO_INPUT",
	BinaryEncodingInvalidStartByte:             "BINARY_ENCODING_INVALID_START_BYTE",
	BinaryEncodingUnexpectedEOFExpectedValue:   "BINARY_ENCODING_UNEXPECTED_EOF_EXPECTED_VALUE",
	BinaryEncodingUnexpectedEOFInArray:         "BINARY_ENCODING_UNEXPECTED_EOF_IN_ARRAY",
	BinaryEncodingUnexpectedEOFInMap:           "BINARY_ENCODING_UNEXPECTED_EOF_IN_MAP",
	BinaryEncodingInvalidMapKey:                "BINARY_ENCODING_INVALID_MAP_KEY",
	BinaryEncodingStackLimitExceeded:           "BINARY_ENCODING_STACK_LIMIT_EXCEEDED",
	BinaryEncodingUnsupportedValue:             "BINARY_ENCODING_UNSUPPORTED_VALUE",
	BinaryEncodingInvalidString16:              "BINARY_ENCODING_INVALID_STRING16",
	BinaryEncodingInvalidString8:               "BINARY_ENCODING_INVALID_STRING8",
	BinaryEncodingString8MustBe7Bit:            "BINARY_ENCODING_STRING8_MUST_BE_7BIT",
	BinaryEncodingInvalidDouble:                "BINARY_ENCODING_INVALID_DOUBLE",
	BinaryEncodingInvalidSigned:                "BINARY_ENCODING_INVALID_SIGNED",
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(errorKindNames) && errorKindNames[k] != "" {
		return errorKindNames[k]
	}
	return "UNKNOWN_ERROR_KIND(" + strconv.Itoa(int(k)) + ")"
}

// Status is the (error-kind, position) pair every parse or encode
// operation surfaces its outcome through. The zero value has Kind OK but
// Pos 0, not NoPosition; a successful parse ends with OKStatus.
type Status struct {
	Kind ErrorKind
	Pos  Position
}

// OKStatus is the status of a parse or encode that completed successfully.
var OKStatus = Status{Kind: OK, Pos: NoPosition}

// IsOK reports whether the status represents success.
func (s Status) IsOK() bool { return s.Kind == OK }

// Error implements the error interface so a Status can be returned
// wherever Go code expects an error. ConvertJSONToBinary and
// ConvertBinaryToJSON return a Status value, which callers can pass on
// as an error directly.
func (s Status) Error() string {
	if s.IsOK() {
		return "cbor: ok"
	}
	if s.Pos == NoPosition {
		return "cbor: " + s.Kind.String()
	}
	return "cbor: " + s.Kind.String() + " at position " + strconv.FormatInt(int64(s.Pos), 10)
}

// errAt builds a non-OK Status for kind at position pos.
func errAt(kind ErrorKind, pos Position) Status { return Status{Kind: kind, Pos: pos} }
