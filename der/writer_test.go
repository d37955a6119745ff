package der

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

func TestWriter_WriteBytesPrepends(t *testing.T) {
	w := NewWriter()
	w.WriteBytes([]byte{0x03, 0x04})
	w.WriteBytes([]byte{0x01, 0x02})

	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, w.Bytes())
	assert.Equal(t, 4, w.Len())
}

func TestWriter_WrapHeaders(t *testing.T) {
	tests := []struct {
		name   string
		length int
		header []byte
	}{
		{"empty", 0, []byte{0x30, 0x00}},
		{"one byte", 1, []byte{0x30, 0x01}},
		{"largest short form", 127, []byte{0x30, 0x7f}},
		{"smallest long form", 128, []byte{0x30, 0x81, 0x80}},
		{"largest one byte long form", 255, []byte{0x30, 0x81, 0xff}},
		{"two byte long form", 256, []byte{0x30, 0x82, 0x01, 0x00}},
		{"largest two byte long form", 65535, []byte{0x30, 0x82, 0xff, 0xff}},
		{"three byte long form", 65536, []byte{0x30, 0x83, 0x01, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := bytes.Repeat([]byte{0xab}, tt.length)

			w := NewWriter()
			w.WriteBytes(content)
			w.Wrap(TagSequence)

			out := w.Bytes()
			require.Len(t, out, len(tt.header)+tt.length)
			assert.Equal(t, tt.header, out[:len(tt.header)])
			assert.Equal(t, content, out[len(tt.header):])
		})
	}
}

func TestWriter_WrapTwiceNests(t *testing.T) {
	w := NewWriter()
	w.WriteBytes([]byte{0x05, 0x00})
	w.Wrap(TagSequence)
	w.Wrap(TagSequence)

	assert.Equal(t, []byte{0x30, 0x04, 0x30, 0x02, 0x05, 0x00}, w.Bytes())
}

func TestWriter_WrapBitString(t *testing.T) {
	w := NewWriter()
	w.WriteBytes([]byte{0x30, 0x00})
	w.WrapBitString()

	assert.Equal(t, []byte{0x03, 0x03, 0x00, 0x30, 0x00}, w.Bytes())
}

func TestWriter_SiblingAfterWrap(t *testing.T) {
	w := NewWriter()
	w.WriteBytes([]byte{0xaa})
	w.WrapBitString()
	w.WriteBytes([]byte{0x05, 0x00})
	w.Wrap(TagSequence)

	assert.Equal(t, []byte{0x30, 0x06, 0x05, 0x00, 0x03, 0x02, 0x00, 0xaa}, w.Bytes())
}

func TestWriter_BytesReturnsCopy(t *testing.T) {
	w := NewWriter()
	w.WriteBytes([]byte{0x01})
	first := w.Bytes()
	first[0] = 0xff

	w.Wrap(TagSequence)
	assert.Equal(t, []byte{0x30, 0x01, 0x01}, w.Bytes())
}

func TestEncodeLength(t *testing.T) {
	tests := []struct {
		length int
		want   []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x81, 0x80}},
		{0x9f, []byte{0x81, 0x9f}},
		{256, []byte{0x82, 0x01, 0x00}},
		{0x010000, []byte{0x83, 0x01, 0x00, 0x00}},
		{0x01000000, []byte{0x84, 0x01, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		got := EncodeLength(tt.length)
		assert.Equal(t, tt.want, got, "length %d", tt.length)
		assert.Equal(t, len(tt.want), EncodedLengthSize(tt.length), "length %d", tt.length)
	}
}

func TestEncodeLength_AlwaysMinimal(t *testing.T) {
	for length := 0; length < 70000; length++ {
		enc := EncodeLength(length)
		if length <= MaxShortFormLength {
			require.Len(t, enc, 1, "length %d must use short form", length)
			continue
		}

		require.Equal(t, byte(LengthLongFormBit|(len(enc)-1)), enc[0], "length %d", length)
		require.NotZero(t, enc[1], "length %d has a leading zero byte", length)

		decoded := 0
		for _, b := range enc[1:] {
			decoded = decoded<<8 | int(b)
		}
		require.Equal(t, length, decoded)
	}
}

func TestWriter_OutputParsesAsDER(t *testing.T) {
	for _, size := range []int{0, 1, 126, 127, 128, 200, 255, 256, 1000, 65535, 65536} {
		inner := bytes.Repeat([]byte{0x5a}, size)

		w := NewWriter()
		w.WriteBytes(inner)
		w.WrapBitString()
		w.Wrap(TagSequence)

		// cryptobyte rejects non-minimal lengths, so this doubles as a DER check
		input := cryptobyte.String(w.Bytes())
		var seq, bitString cryptobyte.String
		require.True(t, input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE), "size %d", size)
		require.True(t, input.Empty())
		require.True(t, seq.ReadASN1(&bitString, cryptobyte_asn1.BIT_STRING), "size %d", size)
		require.True(t, seq.Empty())

		var unused uint8
		require.True(t, bitString.ReadUint8(&unused))
		assert.Zero(t, unused)
		assert.Equal(t, inner, []byte(bitString))
	}
}
