package der

// Writer builds a DER encoding from the innermost value outwards. Every write
// lands in front of what was written before, so a structure is produced by
// writing its content first and wrapping it with headers afterwards.
//
// The buffer is kept in reverse byte order so that prepending is an append;
// Bytes flips it back once.
type Writer struct {
	rev []byte
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{rev: make([]byte, 0, 256)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.rev)
}

// Bytes returns the encoding in forward order. The result is a copy and is
// not affected by later writes.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.rev))
	for i, b := range w.rev {
		out[len(w.rev)-1-i] = b
	}
	return out
}

// WriteBytes prepends b to the encoding. The caller is responsible for b
// being well-formed DER content.
func (w *Writer) WriteBytes(b []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		w.rev = append(w.rev, b[i])
	}
}

// Wrap prepends a tag and a minimal length header covering everything
// written so far. Each call adds one level of nesting.
func (w *Writer) Wrap(tag byte) {
	length := len(w.rev)
	if length <= MaxShortFormLength {
		w.rev = append(w.rev, byte(length), tag)
		return
	}

	numBytes := 0
	for l := length; l > 0; l >>= 8 {
		w.rev = append(w.rev, byte(l))
		numBytes++
	}
	w.rev = append(w.rev, byte(LengthLongFormBit|numBytes), tag)
}

// WrapBitString prepends the zero unused-bits byte and wraps the result as a
// BIT STRING.
func (w *Writer) WrapBitString() {
	w.rev = append(w.rev, 0x00)
	w.Wrap(TagBitString)
}

// EncodeLength returns the minimal DER length octets for length.
// Reference: ISO/IEC 8825-1: 10.1
func EncodeLength(length int) []byte {
	size := EncodedLengthSize(length)
	if size == 1 {
		return []byte{byte(length)}
	}

	out := make([]byte, size)
	out[0] = byte(LengthLongFormBit | (size - 1))
	for i := size - 1; i > 0; i-- {
		out[i] = byte(length)
		length >>= 8
	}
	return out
}

// EncodedLengthSize gives the number of octets EncodeLength produces.
func EncodedLengthSize(length int) int {
	if length <= MaxShortFormLength {
		return 1
	}

	size := 1
	for ; length > 0; size++ {
		length >>= 8
	}
	return size
}
