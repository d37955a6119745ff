package common

// Version is set at build time with
// -ldflags "-X github.com/ruteri/rsa-pubkey-converter/common.Version=...".
var Version = "dev"

// PackageName is used as the metrics namespace.
const PackageName = "rsa_pubkey_converter"
