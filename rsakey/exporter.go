package rsakey

import "github.com/ruteri/rsa-pubkey-converter/interfaces"

var (
	_ interfaces.PublicKeyExporter  = Exporter{}
	_ interfaces.PublicKeyImporter  = Importer{}
	_ interfaces.PublicKeyConverter = Converter{}
)

// Exporter converts PKCS#1 keys to the X.509 format expected by tools such
// as OpenSSL and most TLS stacks.
type Exporter struct{}

// ToSubjectPublicKeyInfo implements interfaces.PublicKeyExporter.
func (Exporter) ToSubjectPublicKeyInfo(rsaPublicKey []byte) []byte {
	return ToSubjectPublicKeyInfo(rsaPublicKey)
}

// Importer converts X.509 keys back to bare PKCS#1 keys.
type Importer struct{}

// FromSubjectPublicKeyInfo implements interfaces.PublicKeyImporter.
func (Importer) FromSubjectPublicKeyInfo(subjectPublicKeyInfo []byte) ([]byte, error) {
	return FromSubjectPublicKeyInfo(subjectPublicKeyInfo)
}

// Converter performs both directions.
type Converter struct {
	Exporter
	Importer
}
