package der

import "bytes"

// Reader consumes a DER encoding from the front. The cursor only moves
// forward, and only when a call succeeds: a failing call leaves it where it
// was.
type Reader struct {
	data   []byte
	offset int
}

// NewReader creates a Reader positioned at the start of data. data must not
// be modified while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// Unwrap reads a tag and length header and moves the cursor to the first
// content byte. The content itself is left for subsequent reads. The
// declared length must fit in the remaining input.
func (r *Reader) Unwrap(expectedTag byte) (Header, error) {
	h, err := r.readHeader(r.offset, expectedTag)
	if err != nil {
		return Header{}, err
	}
	r.offset = h.Offset
	return h, nil
}

// Skip consumes len(expected) bytes that must equal expected.
func (r *Reader) Skip(expected []byte) error {
	start := r.offset
	if r.Remaining() < len(expected) {
		return &TruncatedInputError{Offset: start, Needed: len(expected), Remaining: r.Remaining()}
	}

	actual := r.data[start : start+len(expected)]
	if !bytes.Equal(actual, expected) {
		mismatch := start
		for i := range expected {
			if actual[i] != expected[i] {
				mismatch = start + i
				break
			}
		}
		return &InvalidBytesError{
			Expected: append([]byte(nil), expected...),
			Actual:   append([]byte(nil), actual...),
			Position: start,
			Mismatch: mismatch,
			Encoding: r.data,
		}
	}

	r.offset += len(expected)
	return nil
}

// ReadBytes consumes and returns the next n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, &TruncatedInputError{Offset: r.offset, Needed: n, Remaining: r.Remaining()}
	}
	out := make([]byte, n)
	copy(out, r.data[r.offset:r.offset+n])
	r.offset += n
	return out, nil
}

// ReadContentsOfBitString consumes a BIT STRING holding byte-aligned
// content and returns that content without the unused-bits byte.
func (r *Reader) ReadContentsOfBitString() ([]byte, error) {
	h, err := r.readHeader(r.offset, TagBitString)
	if err != nil {
		return nil, err
	}
	if h.Length == 0 {
		return nil, &TruncatedInputError{Offset: h.Offset, Needed: 1, Remaining: 0}
	}
	if unused := r.data[h.Offset]; unused != 0x00 {
		return nil, &InvalidUnusedBitsError{Offset: h.Offset, UnusedBits: unused}
	}

	content := make([]byte, h.Length-1)
	copy(content, r.data[h.Offset+1:h.End()])
	r.offset = h.End()
	return content, nil
}

// Finish reports an error if any input is left unread.
func (r *Reader) Finish() error {
	if r.Remaining() > 0 {
		return &TrailingDataError{Offset: r.offset, Remaining: r.Remaining()}
	}
	return nil
}

// readHeader decodes the header at offset without moving the cursor.
func (r *Reader) readHeader(offset int, expectedTag byte) (Header, error) {
	if offset >= len(r.data) {
		return Header{}, &TruncatedInputError{Offset: offset, Needed: 1, Remaining: 0}
	}
	if tag := r.data[offset]; tag != expectedTag {
		return Header{}, &UnexpectedTagError{Offset: offset, Expected: expectedTag, Actual: tag}
	}

	lengthOffset := offset + 1
	if lengthOffset >= len(r.data) {
		return Header{}, &TruncatedInputError{Offset: lengthOffset, Needed: 1, Remaining: 0}
	}

	first := r.data[lengthOffset]
	pos := lengthOffset + 1
	length := int(first)

	// Long form: the low 7 bits count the big-endian length bytes that follow
	if first&LengthLongFormBit != 0 {
		numBytes := int(first & 0x7F)
		switch {
		case numBytes == 0:
			return Header{}, &InvalidLengthError{Offset: lengthOffset, Reason: "indefinite length"}
		case numBytes > maxLengthBytes:
			return Header{}, &InvalidLengthError{Offset: lengthOffset, Reason: "length does not fit in 4 bytes"}
		case len(r.data)-pos < numBytes:
			return Header{}, &TruncatedInputError{Offset: pos, Needed: numBytes, Remaining: len(r.data) - pos}
		case r.data[pos] == 0x00:
			return Header{}, &InvalidLengthError{Offset: lengthOffset, Reason: "leading zero in long form length"}
		}

		length = 0
		for i := 0; i < numBytes; i++ {
			length = length<<8 | int(r.data[pos+i])
		}
		if length <= MaxShortFormLength {
			return Header{}, &InvalidLengthError{Offset: lengthOffset, Reason: "long form used for short length"}
		}
		pos += numBytes
	}

	if remaining := len(r.data) - pos; length > remaining {
		return Header{}, &TruncatedInputError{Offset: pos, Needed: length, Remaining: remaining}
	}

	return Header{Tag: expectedTag, Length: length, Offset: pos}, nil
}
