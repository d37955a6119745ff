package cryptoutils

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"math/big"

	"github.com/ruteri/rsa-pubkey-converter/rsakey"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// RSAPublicKeyInfo summarises an RSA public key for display.
type RSAPublicKeyInfo struct {
	ModulusBits int    `json:"modulus_bits"`
	Exponent    int64  `json:"exponent"`
	Fingerprint string `json:"fingerprint"`
}

var ErrMalformedRSAPublicKey = errors.New("malformed PKCS#1 RSA public key")

// DescribeRSAPublicKey decodes the modulus and exponent of a DER encoded
// PKCS#1 RSAPublicKey and computes the fingerprint of the equivalent
// SubjectPublicKeyInfo.
func DescribeRSAPublicKey(rsaPublicKey []byte) (*RSAPublicKeyInfo, error) {
	input := cryptobyte.String(rsaPublicKey)

	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, ErrMalformedRSAPublicKey
	}

	modulus := new(big.Int)
	var exponent int64
	if !seq.ReadASN1Integer(modulus) || !seq.ReadASN1Integer(&exponent) || !seq.Empty() {
		return nil, ErrMalformedRSAPublicKey
	}

	if modulus.Sign() <= 0 {
		return nil, errors.New("RSA modulus is not positive")
	}
	if exponent <= 1 {
		return nil, errors.New("RSA public exponent is too small")
	}

	return &RSAPublicKeyInfo{
		ModulusBits: modulus.BitLen(),
		Exponent:    exponent,
		Fingerprint: Fingerprint(rsakey.ToSubjectPublicKeyInfo(rsaPublicKey)),
	}, nil
}

// IsSubjectPublicKeyInfoShaped reports whether der starts like a SEQUENCE
// whose first element is itself a SEQUENCE, the AlgorithmIdentifier of a
// SubjectPublicKeyInfo. A PKCS#1 RSAPublicKey starts with an INTEGER instead.
// Only the leading octets are examined so truncated input still matches.
func IsSubjectPublicKeyInfoShaped(der []byte) bool {
	if len(der) < 2 || der[0] != byte(cryptobyte_asn1.SEQUENCE) {
		return false
	}
	header := 2
	if der[1]&0x80 != 0 {
		header += int(der[1] & 0x7f)
	}
	return len(der) > header && der[header] == byte(cryptobyte_asn1.SEQUENCE)
}

// Fingerprint returns "SHA256:" followed by the unpadded Base64 SHA-256 of
// a DER encoded SubjectPublicKeyInfo.
func Fingerprint(subjectPublicKeyInfo []byte) string {
	sum := sha256.Sum256(subjectPublicKeyInfo)
	return "SHA256:" + base64.RawStdEncoding.EncodeToString(sum[:])
}
