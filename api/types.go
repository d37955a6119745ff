package api

// Key encodings as reported in responses.
const (
	EncodingPKCS1 = "pkcs1" // RSAPublicKey
	EncodingSPKI  = "spki"  // SubjectPublicKeyInfo
)

// KeyConversionProvider converts keys through a remote conversion service.
// Keys may be passed in any text format the service understands (PEM,
// Base64, hex) or as raw DER.
type KeyConversionProvider interface {
	// ToSubjectPublicKeyInfo converts a PKCS#1 key to X.509.
	ToSubjectPublicKeyInfo(key []byte) (*ConversionResponse, error)

	// FromSubjectPublicKeyInfo converts an X.509 key to PKCS#1.
	FromSubjectPublicKeyInfo(key []byte) (*ConversionResponse, error)

	// Inspect describes a key given in either encoding.
	Inspect(key []byte) (*KeyInfoResponse, error)
}

// ConversionResponse carries a converted key.
type ConversionResponse struct {
	// Encoding is the encoding of the returned key, EncodingPKCS1 or EncodingSPKI
	Encoding string `json:"encoding"`

	// PEM is the converted key as a PEM block ("RSA PUBLIC KEY" or "PUBLIC KEY")
	PEM string `json:"pem"`

	// DER is the converted key, base64 encoded in JSON
	DER []byte `json:"der"`

	// Fingerprint is the SHA-256 fingerprint of the X.509 encoding
	Fingerprint string `json:"fingerprint"`
}

// KeyInfoResponse describes an RSA public key.
type KeyInfoResponse struct {
	// InputEncoding is the detected encoding of the submitted key
	InputEncoding string `json:"input_encoding"`

	ModulusBits int    `json:"modulus_bits"`
	Exponent    int64  `json:"exponent"`
	Fingerprint string `json:"fingerprint"`

	// PKCS1PEM and SPKIPEM hold the key in both encodings
	PKCS1PEM string `json:"pkcs1_pem"`
	SPKIPEM  string `json:"spki_pem"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`

	// Kind is set for malformed DER and names the failure, e.g. "invalid_bytes"
	Kind string `json:"kind,omitempty"`

	// Position is the byte offset of a DER failure. For "invalid_bytes" it is
	// the start of the compared window.
	Position *int `json:"position,omitempty"`

	// Mismatch is the offset of the first differing byte, set for "invalid_bytes"
	Mismatch *int `json:"mismatch,omitempty"`
}
