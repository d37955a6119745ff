package der

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_UnwrapShortForm(t *testing.T) {
	r := NewReader([]byte{0x30, 0x03, 0x02, 0x01, 0x05})

	h, err := r.Unwrap(TagSequence)
	require.NoError(t, err)
	assert.Equal(t, Header{Tag: TagSequence, Length: 3, Offset: 2}, h)
	assert.Equal(t, 5, h.End())
	assert.Equal(t, 2, r.Offset())
	assert.Equal(t, 3, r.Remaining())
}

func TestReader_UnwrapLongForm(t *testing.T) {
	content := bytes.Repeat([]byte{0x01}, 300)
	data := append([]byte{0x30, 0x82, 0x01, 0x2c}, content...)

	r := NewReader(data)
	h, err := r.Unwrap(TagSequence)
	require.NoError(t, err)
	assert.Equal(t, 300, h.Length)
	assert.Equal(t, 4, h.Offset)
	assert.Equal(t, 4, r.Offset())
}

func TestReader_UnwrapErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    error
		wantIs  error
		wantPos int
	}{
		{
			name:   "empty input",
			data:   []byte{},
			want:   &TruncatedInputError{Offset: 0, Needed: 1, Remaining: 0},
			wantIs: ErrTruncatedInput,
		},
		{
			name:    "wrong tag",
			data:    []byte{0x31, 0x00},
			want:    &UnexpectedTagError{Offset: 0, Expected: TagSequence, Actual: 0x31},
			wantIs:  ErrUnexpectedTag,
			wantPos: 0,
		},
		{
			name:    "missing length",
			data:    []byte{0x30},
			want:    &TruncatedInputError{Offset: 1, Needed: 1, Remaining: 0},
			wantIs:  ErrTruncatedInput,
			wantPos: 1,
		},
		{
			name:    "missing long form length bytes",
			data:    []byte{0x30, 0x82, 0x01},
			want:    &TruncatedInputError{Offset: 2, Needed: 2, Remaining: 1},
			wantIs:  ErrTruncatedInput,
			wantPos: 2,
		},
		{
			name:    "content shorter than declared",
			data:    []byte{0x30, 0x04, 0x05, 0x00},
			want:    &TruncatedInputError{Offset: 2, Needed: 4, Remaining: 2},
			wantIs:  ErrTruncatedInput,
			wantPos: 2,
		},
		{
			name:    "indefinite length",
			data:    []byte{0x30, 0x80, 0x00, 0x00},
			want:    &InvalidLengthError{Offset: 1, Reason: "indefinite length"},
			wantIs:  ErrInvalidLength,
			wantPos: 1,
		},
		{
			name:    "long form for short length",
			data:    []byte{0x30, 0x81, 0x01, 0x00},
			want:    &InvalidLengthError{Offset: 1, Reason: "long form used for short length"},
			wantIs:  ErrInvalidLength,
			wantPos: 1,
		},
		{
			name:    "leading zero in long form",
			data:    []byte{0x30, 0x82, 0x00, 0x80},
			want:    &InvalidLengthError{Offset: 1, Reason: "leading zero in long form length"},
			wantIs:  ErrInvalidLength,
			wantPos: 1,
		},
		{
			name:    "too many length bytes",
			data:    []byte{0x30, 0x85, 0x01, 0x00, 0x00, 0x00, 0x00},
			want:    &InvalidLengthError{Offset: 1, Reason: "length does not fit in 4 bytes"},
			wantIs:  ErrInvalidLength,
			wantPos: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.data)
			_, err := r.Unwrap(TagSequence)
			require.Error(t, err)
			assert.Equal(t, tt.want, err)
			assert.True(t, errors.Is(err, tt.wantIs))
			assert.Equal(t, tt.wantPos, Position(err))
			assert.Equal(t, 0, r.Offset(), "cursor must not move on failure")
		})
	}
}

func TestReader_Skip(t *testing.T) {
	r := NewReader([]byte{0x05, 0x00, 0x01})
	require.NoError(t, r.Skip([]byte{0x05, 0x00}))
	assert.Equal(t, 2, r.Offset())

	require.NoError(t, r.Skip(nil))
	assert.Equal(t, 2, r.Offset())
}

func TestReader_SkipMismatch(t *testing.T) {
	data := []byte{0xff, 0x05, 0x01, 0x07}
	r := NewReader(data)
	_, err := r.ReadBytes(1)
	require.NoError(t, err)

	err = r.Skip([]byte{0x05, 0x01, 0x01})
	require.Error(t, err)
	assert.Equal(t, &InvalidBytesError{
		Expected: []byte{0x05, 0x01, 0x01},
		Actual:   []byte{0x05, 0x01, 0x07},
		Position: 1,
		Mismatch: 3,
		Encoding: data,
	}, err)
	assert.ErrorIs(t, err, ErrInvalidBytes)
	assert.Equal(t, "invalid_bytes", Kind(err))
	assert.Equal(t, 1, r.Offset())
}

func TestReader_SkipTruncated(t *testing.T) {
	r := NewReader([]byte{0x05})
	err := r.Skip([]byte{0x05, 0x00})
	assert.Equal(t, &TruncatedInputError{Offset: 0, Needed: 2, Remaining: 1}, err)
	assert.Equal(t, 0, r.Offset())
}

func TestReader_ReadBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(data)

	out, err := r.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, out)

	// returned bytes are a copy
	out[0] = 0xff
	assert.Equal(t, byte(0x01), data[0])

	_, err = r.ReadBytes(2)
	assert.Equal(t, &TruncatedInputError{Offset: 2, Needed: 2, Remaining: 1}, err)
	assert.Equal(t, 2, r.Offset())
}

func TestReader_ReadContentsOfBitString(t *testing.T) {
	r := NewReader([]byte{0x03, 0x03, 0x00, 0xde, 0xad})

	content, err := r.ReadContentsOfBitString()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, content)
	assert.Equal(t, 5, r.Offset())
	assert.NoError(t, r.Finish())
}

func TestReader_ReadContentsOfBitStringLongForm(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, 200)
	w := NewWriter()
	w.WriteBytes(payload)
	w.WrapBitString()

	r := NewReader(w.Bytes())
	content, err := r.ReadContentsOfBitString()
	require.NoError(t, err)
	assert.Equal(t, payload, content)
}

func TestReader_EmptyPayloadIsNotNil(t *testing.T) {
	r := NewReader([]byte{0x03, 0x01, 0x00})

	content, err := r.ReadContentsOfBitString()
	require.NoError(t, err)
	assert.NotNil(t, content)
	assert.Equal(t, []byte{}, content)

	out, err := r.ReadBytes(0)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Equal(t, []byte{}, out)
	assert.NoError(t, r.Finish())
}

func TestReader_ReadContentsOfBitStringErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "wrong tag",
			data: []byte{0x04, 0x02, 0x00, 0x01},
			want: &UnexpectedTagError{Offset: 0, Expected: TagBitString, Actual: 0x04},
		},
		{
			name: "no unused bits byte",
			data: []byte{0x03, 0x00},
			want: &TruncatedInputError{Offset: 2, Needed: 1, Remaining: 0},
		},
		{
			name: "nonzero unused bits",
			data: []byte{0x03, 0x02, 0x04, 0xf0},
			want: &InvalidUnusedBitsError{Offset: 2, UnusedBits: 0x04},
		},
		{
			name: "content shorter than declared",
			data: []byte{0x03, 0x05, 0x00, 0x01},
			want: &TruncatedInputError{Offset: 2, Needed: 5, Remaining: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.data)
			content, err := r.ReadContentsOfBitString()
			assert.Nil(t, content)
			assert.Equal(t, tt.want, err)
			assert.Equal(t, 0, r.Offset())
		})
	}
}

func TestReader_Finish(t *testing.T) {
	r := NewReader([]byte{0x05, 0x00, 0x00})
	require.NoError(t, r.Skip([]byte{0x05, 0x00}))

	err := r.Finish()
	assert.Equal(t, &TrailingDataError{Offset: 2, Remaining: 1}, err)
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestReader_WriterRoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 127, 128, 255, 256, 4096, 70000} {
		payload := bytes.Repeat([]byte{0x17}, size)
		sibling := []byte{0x05, 0x00}

		w := NewWriter()
		w.WriteBytes(payload)
		w.WrapBitString()
		w.WriteBytes(sibling)
		w.Wrap(TagSequence)

		r := NewReader(w.Bytes())
		h, err := r.Unwrap(TagSequence)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, r.Remaining(), h.Length)
		require.NoError(t, r.Skip(sibling))
		content, err := r.ReadContentsOfBitString()
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, payload, content)
		assert.NoError(t, r.Finish())
	}
}

func TestKindAndPosition(t *testing.T) {
	tests := []struct {
		err  error
		kind string
		pos  int
	}{
		{&UnexpectedTagError{Offset: 4}, "unexpected_tag", 4},
		{&TruncatedInputError{Offset: 5}, "truncated_input", 5},
		{&InvalidBytesError{Position: 3, Mismatch: 15}, "invalid_bytes", 3},
		{&InvalidUnusedBitsError{Offset: 6}, "invalid_unused_bits", 6},
		{&InvalidLengthError{Offset: 7}, "invalid_length", 7},
		{&TrailingDataError{Offset: 8}, "trailing_data", 8},
		{errors.New("other"), "", -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, Kind(tt.err))
		assert.Equal(t, tt.pos, Position(tt.err))
	}
}
