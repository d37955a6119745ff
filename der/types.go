package der

// Universal tag bytes used by the public key structures.
const (
	TagInteger   byte = 0x02
	TagBitString byte = 0x03
	TagNull      byte = 0x05
	TagOID       byte = 0x06
	TagSequence  byte = 0x30 // SEQUENCE with the constructed bit set
)

// Length encoding constants
const (
	// LengthLongFormBit marks a long form length; the low 7 bits give the
	// number of length bytes that follow.
	LengthLongFormBit = 0x80

	// MaxShortFormLength is the largest length DER encodes in a single byte.
	MaxShortFormLength = 127

	// maxLengthBytes bounds long form lengths to what fits in an int32.
	maxLengthBytes = 4
)

// Header is a decoded tag and length. Offset is the absolute position of the
// first content byte in the input.
type Header struct {
	Tag    byte
	Length int
	Offset int
}

// End returns the absolute position just past the content.
func (h Header) End() int {
	return h.Offset + h.Length
}
