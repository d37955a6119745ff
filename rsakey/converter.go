package rsakey

import (
	"github.com/ruteri/rsa-pubkey-converter/der"
)

// algorithmIdentifier is the DER encoding of the rsaEncryption
// AlgorithmIdentifier: SEQUENCE { OID 1.2.840.113549.1.1.1, NULL }.
var algorithmIdentifier = [...]byte{
	0x30, 0x0d, // SEQUENCE
	0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01, // OID
	0x05, 0x00, // NULL
}

// AlgorithmIdentifierLen is the size of the rsaEncryption AlgorithmIdentifier.
const AlgorithmIdentifierLen = len(algorithmIdentifier)

// AlgorithmIdentifier returns a copy of the DER encoded rsaEncryption
// AlgorithmIdentifier.
func AlgorithmIdentifier() []byte {
	out := algorithmIdentifier
	return out[:]
}

// ToSubjectPublicKeyInfo converts the DER encoding of a PKCS#1 RSAPublicKey
// into the DER encoding of an X.509 SubjectPublicKeyInfo.
//
// The input is not validated. A DER encoded key produces a DER encoded
// result; anything else produces a result that is equally malformed.
func ToSubjectPublicKeyInfo(rsaPublicKey []byte) []byte {
	w := der.NewWriter()

	// The bare key becomes the payload of the subjectPublicKey BIT STRING
	w.WriteBytes(rsaPublicKey)
	w.WrapBitString()

	// The algorithm sits next to the BIT STRING, not inside it
	w.WriteBytes(algorithmIdentifier[:])
	w.Wrap(der.TagSequence)

	return w.Bytes()
}

// FromSubjectPublicKeyInfo extracts the DER encoding of a PKCS#1
// RSAPublicKey from the DER encoding of an X.509 SubjectPublicKeyInfo.
//
// The algorithm identifier must be the rsaEncryption template byte for byte;
// any other algorithm, parameters or encoding is rejected with a
// *der.InvalidBytesError. All other failures are reported with the typed
// errors of the der package. No key material is returned on failure.
func FromSubjectPublicKeyInfo(subjectPublicKeyInfo []byte) ([]byte, error) {
	r := der.NewReader(subjectPublicKeyInfo)

	seq, err := r.Unwrap(der.TagSequence)
	if err != nil {
		return nil, err
	}
	// The outer SEQUENCE must span the whole input
	if end := len(subjectPublicKeyInfo); seq.End() != end {
		return nil, &der.TrailingDataError{Offset: seq.End(), Remaining: end - seq.End()}
	}

	if err := r.Skip(algorithmIdentifier[:]); err != nil {
		return nil, err
	}

	rsaPublicKey, err := r.ReadContentsOfBitString()
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}

	return rsaPublicKey, nil
}

// Encode is ToSubjectPublicKeyInfo.
func Encode(rsaPublicKey []byte) []byte {
	return ToSubjectPublicKeyInfo(rsaPublicKey)
}

// Decode is FromSubjectPublicKeyInfo.
func Decode(subjectPublicKeyInfo []byte) ([]byte, error) {
	return FromSubjectPublicKeyInfo(subjectPublicKeyInfo)
}
