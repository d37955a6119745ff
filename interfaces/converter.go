package interfaces

// PublicKeyExporter converts the DER encoding of a PKCS#1 RSAPublicKey into
// the DER encoding of an X.509 SubjectPublicKeyInfo. The input is assumed to
// be DER and is not validated, so conversion cannot fail.
type PublicKeyExporter interface {
	ToSubjectPublicKeyInfo(rsaPublicKey []byte) []byte
}

// PublicKeyImporter converts the DER encoding of an X.509
// SubjectPublicKeyInfo holding an rsaEncryption key into the DER encoding of
// the PKCS#1 RSAPublicKey it wraps.
type PublicKeyImporter interface {
	FromSubjectPublicKeyInfo(subjectPublicKeyInfo []byte) ([]byte, error)
}

// PublicKeyConverter converts in both directions.
type PublicKeyConverter interface {
	PublicKeyExporter
	PublicKeyImporter
}
