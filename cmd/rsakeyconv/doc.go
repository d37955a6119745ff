// Package main (cmd/rsakeyconv) converts RSA public keys between the PKCS#1
// RSAPublicKey and X.509 SubjectPublicKeyInfo encodings on the command line.
//
// Keys are read from --in (stdin by default) as PEM, Base64, hex or raw DER
// and written to --out (stdout by default) in the format given by
// --out-format. Run without a command, the tool imports a built-in OpenSSL
// key, exports it again and reports whether the bytes match.
//
// Example usage:
//
//	openssl rsa -in private.pem -pubout | rsakeyconv from-spki > pkcs1.pem
//	rsakeyconv to-spki --in pkcs1.pem --out-format hex
//	rsakeyconv inspect --in key.b64
//	rsakeyconv demo
package main
