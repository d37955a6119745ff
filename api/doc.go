/*
Package api contains the wire types and server configuration of the RSA
public key conversion service.

The HTTP handlers live in the keyhandler subpackage and the server lifecycle
in the httpserver package. Together they expose the rsakey conversions over
HTTP so that systems which cannot link Go code can still normalise keys:

  - POST /api/v1/convert/to-spki: PKCS#1 RSAPublicKey to X.509 SubjectPublicKeyInfo
  - POST /api/v1/convert/from-spki: X.509 SubjectPublicKeyInfo to PKCS#1 RSAPublicKey
  - POST /api/v1/inspect: key size, exponent and fingerprint

Request bodies hold a single key as PEM, Base64, hex or raw DER. Successful
responses are JSON (ConversionResponse, KeyInfoResponse); failures return an
ErrorResponse. Malformed DER yields 422 with the failure kind and byte
position, so callers can tell a truncated upload from a key of another
algorithm.
*/
package api
