// Package cryptoutils handles the representations an RSA public key travels
// in outside of its raw DER bytes.
//
// Keys arrive as PEM blocks, Base64 strings (often wrapped over several
// lines), hex dumps or raw DER files. DecodeKeyText turns any of those into
// DER and remembers what it saw; EncodeKeyText goes the other way. Two PEM
// block types matter here:
//
//   - "RSA PUBLIC KEY": the PKCS#1 RSAPublicKey structure
//   - "PUBLIC KEY": the X.509 SubjectPublicKeyInfo structure
//
// DescribeRSAPublicKey reads the modulus size and public exponent of a
// PKCS#1 key for display, and Fingerprint produces the OpenSSH-style
// "SHA256:..." digest of the X.509 encoding so that both encodings of the
// same key share one fingerprint.
//
// # Usage Example
//
//	kt, err := cryptoutils.DecodeKeyText(input, cryptoutils.FormatAuto)
//	if err != nil {
//	    return err
//	}
//	spki := rsakey.ToSubjectPublicKeyInfo(kt.DER)
//	out, _ := cryptoutils.EncodeKeyText(spki, cryptoutils.FormatPEM, cryptoutils.PEMTypePublicKey)
package cryptoutils
