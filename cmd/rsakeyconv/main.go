package main

import (
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/ruteri/rsa-pubkey-converter/cmd/flags"
	"github.com/ruteri/rsa-pubkey-converter/common"
	"github.com/urfave/cli/v2"
)

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "rsakeyconv",
		Usage:     "Convert RSA public keys between PKCS#1 and X.509 encodings",
		Version:   common.Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     append([]cli.Flag{flags.LogServiceFlagFn("rsakeyconv")}, flags.CommonFlags...),
		Commands: []*cli.Command{
			{
				Name:   "to-spki",
				Usage:  "Convert a PKCS#1 RSAPublicKey to an X.509 SubjectPublicKeyInfo",
				Flags:  flags.KeyIOFlags,
				Action: toSPKIAction,
			},
			{
				Name:   "from-spki",
				Usage:  "Convert an X.509 SubjectPublicKeyInfo to a PKCS#1 RSAPublicKey",
				Flags:  flags.KeyIOFlags,
				Action: fromSPKIAction,
			},
			{
				Name:   "inspect",
				Usage:  "Describe a key given in either encoding",
				Flags:  []cli.Flag{flags.InFlag, flags.OutFlag, flags.InFormatFlag},
				Action: inspectAction,
			},
			{
				Name:   "demo",
				Usage:  "Convert a built-in OpenSSL key both ways and compare",
				Action: demoAction,
			},
		},
		Action: demoAction,
	}
}

func main() {
	// a missing .env file is fine, flags and the environment still apply
	_ = godotenv.Load()

	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
