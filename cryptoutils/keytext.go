package cryptoutils

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

// KeyFormat names a textual or binary representation of a DER encoded key.
type KeyFormat string

const (
	FormatAuto   KeyFormat = "auto"
	FormatPEM    KeyFormat = "pem"
	FormatBase64 KeyFormat = "base64"
	FormatHex    KeyFormat = "hex"
	FormatDER    KeyFormat = "der"
)

// PEM block types for the two public key encodings.
const (
	PEMTypeRSAPublicKey = "RSA PUBLIC KEY" // PKCS#1 RSAPublicKey
	PEMTypePublicKey    = "PUBLIC KEY"     // X.509 SubjectPublicKeyInfo
)

var (
	ErrEmptyKey         = errors.New("empty key data")
	ErrUnknownKeyFormat = errors.New("unknown key format")
)

// ParseKeyFormat validates a format name, as given on the command line or
// in a query string. The empty string means FormatAuto.
func ParseKeyFormat(s string) (KeyFormat, error) {
	switch f := KeyFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatPEM, FormatBase64, FormatHex, FormatDER:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKeyFormat, s)
}

// KeyText is a decoded key together with the representation it came in.
// PEMType is only set for PEM input.
type KeyText struct {
	DER     []byte
	Format  KeyFormat
	PEMType string
}

// DecodeKeyText returns the DER bytes held in data. With FormatAuto the
// representation is detected: PEM armour, then hex when the text is hex
// digits starting with the SEQUENCE tag "30", then Base64 for printable
// input, raw DER otherwise. Pass FormatHex explicitly for other hex input. Whitespace inside hex and Base64 text
// is ignored, so wrapped multi-line strings decode as expected.
func DecodeKeyText(data []byte, format KeyFormat) (*KeyText, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyKey
	}

	if format == FormatAuto {
		format = detectKeyFormat(trimmed)
	}

	switch format {
	case FormatPEM:
		block, rest := pem.Decode(trimmed)
		if block == nil {
			return nil, errors.New("failed to decode PEM block")
		}
		if len(bytes.TrimSpace(rest)) != 0 {
			return nil, errors.New("unexpected data after PEM block")
		}
		return &KeyText{DER: block.Bytes, Format: FormatPEM, PEMType: block.Type}, nil

	case FormatBase64:
		compact := removeWhitespace(trimmed)
		der, err := base64.StdEncoding.DecodeString(compact)
		if err != nil {
			der, err = base64.RawStdEncoding.DecodeString(compact)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 key: %w", err)
		}
		return &KeyText{DER: der, Format: FormatBase64}, nil

	case FormatHex:
		der, err := hex.DecodeString(removeWhitespace(trimmed))
		if err != nil {
			return nil, fmt.Errorf("failed to decode hex key: %w", err)
		}
		return &KeyText{DER: der, Format: FormatHex}, nil

	case FormatDER:
		// raw input is binary, so surrounding bytes are not whitespace
		return &KeyText{DER: append([]byte(nil), data...), Format: FormatDER}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKeyFormat, format)
}

// EncodeKeyText renders der in the requested representation. pemType is
// only used for PEM output; FormatAuto is treated as PEM.
func EncodeKeyText(der []byte, format KeyFormat, pemType string) ([]byte, error) {
	switch format {
	case FormatAuto, FormatPEM:
		return pem.EncodeToMemory(&pem.Block{Type: pemType, Bytes: der}), nil
	case FormatBase64:
		return []byte(base64.StdEncoding.EncodeToString(der) + "\n"), nil
	case FormatHex:
		return []byte(hex.EncodeToString(der) + "\n"), nil
	case FormatDER:
		return append([]byte(nil), der...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKeyFormat, format)
}

func detectKeyFormat(trimmed []byte) KeyFormat {
	if bytes.HasPrefix(trimmed, []byte("-----BEGIN ")) {
		return FormatPEM
	}

	for _, b := range trimmed {
		if (b < 0x20 || b > 0x7e) && !isSpace(b) {
			return FormatDER
		}
	}

	// Text made only of hex digits can also be valid Base64. Both key
	// encodings are DER SEQUENCEs, so hex is only assumed when the first
	// octet is the SEQUENCE tag; Base64 of a SEQUENCE starts with "M".
	compact := removeWhitespace(trimmed)
	if len(compact)%2 == 0 && strings.HasPrefix(compact, "30") && isHex(compact) {
		return FormatHex
	}
	return FormatBase64
}

func removeWhitespace(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if !isSpace(c) {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
