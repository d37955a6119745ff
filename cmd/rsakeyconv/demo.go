package main

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ruteri/rsa-pubkey-converter/cryptoutils"
	"github.com/ruteri/rsa-pubkey-converter/rsakey"
	"github.com/urfave/cli/v2"
)

// demoKeyBase64 is a 2048 bit X.509 encoded public key created with OpenSSL.
const demoKeyBase64 = "" +
	"MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEA3o1GZDe0ivcgcWetu82mX+G7G5P9Ztsq5xptSmzL36mfyxUjrctA2" +
	"MCY0n604s5Gmv3hrrYgUiRndhmITPngnXiKUst+CV4uWEcwqe3qHRfrTXcCMhsOLd8OPmOkOHlsXwwM1OOGnHeQd5bRkCt43h" +
	"aSMrv55LeHH7JRo7+d9b08G04Ih1PAHzQCgfkwgJK+M5fU0k+sP4qeKcj3iFanGkCkl0eVcVbEoW7E9dQfg1VBT+DKbioW3xI" +
	"mBc2Rw+fo2j2gPVNKqvYGXEj3INvEgPxNtqk4DJ4DC+1FyYu94XM/qEVUQ8fKX0kzmDoDQ2WCFBbzO+yCLqpMiscgBH9XpwID" +
	"AQAB"

var errDemoFailed = errors.New("re-exported key differs from the imported key")

func demoAction(cCtx *cli.Context) error {
	return runDemo(cCtx.App.Writer, demoKeyBase64)
}

// runDemo imports the X.509 key in keyBase64, exports the result again and
// reports whether the round trip reproduced the input.
func runDemo(w io.Writer, keyBase64 string) error {
	fmt.Fprintln(w, "\nX.509 encoded RSA public key as a Base64 string:")
	fmt.Fprintln(w, keyBase64)

	kt, err := cryptoutils.DecodeKeyText([]byte(keyBase64), cryptoutils.FormatBase64)
	if err != nil {
		return err
	}
	x509EncodedKey := kt.DER
	fmt.Fprintln(w, "\n...same X.509 encoded RSA public key as an array of hex values:")
	fmt.Fprintln(w, hexValues(x509EncodedKey))

	rsaPublicKey, err := rsakey.FromSubjectPublicKeyInfo(x509EncodedKey)
	if err != nil {
		fmt.Fprintln(w, "\nFailure")
		return fmt.Errorf("could not import key: %w", err)
	}
	fmt.Fprintln(w, "\nResult of FromSubjectPublicKeyInfo as an array of hex values:")
	fmt.Fprintln(w, hexValues(rsaPublicKey))

	fmt.Fprintln(w, "\n...same result as a Base64 string:")
	fmt.Fprintln(w, base64.StdEncoding.EncodeToString(rsaPublicKey))

	reExported := rsakey.ToSubjectPublicKeyInfo(rsaPublicKey)
	fmt.Fprintln(w, "\nResult of ToSubjectPublicKeyInfo as an array of hex values:")
	fmt.Fprintln(w, hexValues(reExported))

	fmt.Fprintln(w, "\n...same result as a Base64 string:")
	fmt.Fprintln(w, base64.StdEncoding.EncodeToString(reExported))

	if !bytes.Equal(x509EncodedKey, reExported) {
		fmt.Fprintln(w, "\nFailure")
		return errDemoFailed
	}
	fmt.Fprintln(w, "\nSuccess!")
	return nil
}

func hexValues(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for _, c := range b {
		fmt.Fprintf(&sb, "%02x ", c)
	}
	return sb.String()
}
