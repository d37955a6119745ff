// Package interfaces defines the contracts shared between the conversion
// core, the HTTP layer and the metrics backend, separating interface
// definitions from implementations.
//
// # Conversion Interfaces
//
// PublicKeyExporter: Wraps a PKCS#1 RSAPublicKey into an X.509
// SubjectPublicKeyInfo. Exporting is total and never fails.
//
// PublicKeyImporter: Unwraps the PKCS#1 RSAPublicKey from an X.509
// SubjectPublicKeyInfo, rejecting anything that is not an rsaEncryption key
// in DER.
//
// PublicKeyConverter: Both directions; implemented by rsakey.Converter.
//
// # Observability Interfaces
//
// ConversionRecorder: Receives one event per handled request, labelled with
// the conversion direction and its result. Implemented by
// metrics.MetricsServer.
package interfaces
