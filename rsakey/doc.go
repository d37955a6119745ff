// Package rsakey converts RSA public keys between the PKCS#1 RSAPublicKey
// encoding and the X.509 SubjectPublicKeyInfo encoding.
//
// Many platforms produce or expect the bare PKCS#1 structure:
//
//	RSAPublicKey ::= SEQUENCE {
//	    modulus           INTEGER,
//	    publicExponent    INTEGER }
//
// while OpenSSL, Java, Go's crypto/x509 and most TLS tooling use the X.509
// wrapper:
//
//	SubjectPublicKeyInfo ::= SEQUENCE {
//	    algorithm         AlgorithmIdentifier,   -- rsaEncryption, NULL
//	    subjectPublicKey  BIT STRING }           -- DER of RSAPublicKey
//
// The two functions in this package add and remove that wrapper. The key
// itself is treated as an opaque byte run: the modulus and exponent are never
// decoded and no cryptographic operation is performed.
//
// # Usage
//
//	spki := rsakey.ToSubjectPublicKeyInfo(pkcs1)
//
//	pkcs1, err := rsakey.FromSubjectPublicKeyInfo(spki)
//	if errors.Is(err, der.ErrInvalidBytes) {
//	    // not an rsaEncryption key
//	}
//
// Encode and Decode are shorter names for the same two operations. All
// functions are stateless and safe for concurrent use.
//
// # Security Considerations
//
// Converting a key says nothing about where it came from. Bare public keys
// exchanged without a certificate should travel over an authenticated
// channel.
package rsakey
