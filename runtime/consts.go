package cbor

// CBOR major types (3 bits) used by this restricted profile.
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer
	majorTypeBytes  = 2 // byte string (carries UTF-16LE code units here)
	majorTypeText   = 3 // text string (7-bit ASCII here)
	majorTypeSimple = 7 // bool/null/float64/sentinels
)

// Additional info values (5 bits).
const (
	addInfoDirect     = 23 // max value encoded inline in the initial byte
	addInfoUint8      = 24 // 1-byte payload follows
	addInfoUint16     = 25 // 2-byte payload follows
	addInfoUint32     = 26 // 4-byte payload follows
	addInfoUint64     = 27 // 8-byte payload follows
	addInfoIndefinite = 31 // begin/stop marker (maps, arrays, break)
)

// Simple values under major type 7, per RFC 7049 Table 2. The source
// comments this profile was distilled from disagree with each other about
// which additional-info value means what; original_source/ settles it in
// RFC 7049's favor (see DESIGN.md).
const (
	simpleFalse = 20
	simpleTrue  = 21
	simpleNull  = 22
	// simpleUndefined = 23 exists in RFC 7049 but has no role in this
	// profile: it is never emitted and is rejected on decode exactly like
	// any other unsupported major-7 additional-info value.
	simpleFloat64 = 27
)

// Sentinel initial bytes that carry no major/addInfo split in their usage
// here: they mark container and stream boundaries rather than scalar values.
const (
	mapBeginByte   = 0xbf // major 5 (map), addInfo 31 (indefinite)
	arrayBeginByte = 0x9f // major 4 (array), addInfo 31 (indefinite)
	stopByte       = 0xff // major 7 (simple), addInfo 31 (break)
)

// maxNestingDepth bounds the parser's frame stack. Exceeding it is a
// terminal STACK_LIMIT_EXCEEDED error reported at the offending open byte.
const maxNestingDepth = 1000

// makeByte assembles a CBOR initial byte from a major type and additional
// info value.
func makeByte(major, info uint8) byte { return byte(major<<5 | info) }

// getMajorType extracts the major type (top 3 bits) of a CBOR initial byte.
func getMajorType(b byte) uint8 { return (b >> 5) & 0x07 }

// getAddInfo extracts the additional info (bottom 5 bits) of a CBOR initial byte.
func getAddInfo(b byte) uint8 { return b & 0x1f }
