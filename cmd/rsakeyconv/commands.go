package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ruteri/rsa-pubkey-converter/api"
	"github.com/ruteri/rsa-pubkey-converter/cmd/flags"
	"github.com/ruteri/rsa-pubkey-converter/cryptoutils"
	"github.com/ruteri/rsa-pubkey-converter/rsakey"
	"github.com/urfave/cli/v2"
)

func toSPKIAction(cCtx *cli.Context) error {
	log := flags.SetupLogger(cCtx)

	inFormat, outFormat, err := flags.KeyFormats(cCtx)
	if err != nil {
		return err
	}

	kt, err := readKey(cCtx, inFormat)
	if err != nil {
		return err
	}
	if kt.PEMType != "" && kt.PEMType != cryptoutils.PEMTypeRSAPublicKey {
		return fmt.Errorf("expected %q PEM block, got %q", cryptoutils.PEMTypeRSAPublicKey, kt.PEMType)
	}

	spki := rsakey.ToSubjectPublicKeyInfo(kt.DER)
	log.Debug("Converted key to SubjectPublicKeyInfo", "inputFormat", kt.Format, "inputLen", len(kt.DER), "outputLen", len(spki))

	return writeKey(cCtx, spki, outFormat, cryptoutils.PEMTypePublicKey)
}

func fromSPKIAction(cCtx *cli.Context) error {
	log := flags.SetupLogger(cCtx)

	inFormat, outFormat, err := flags.KeyFormats(cCtx)
	if err != nil {
		return err
	}

	kt, err := readKey(cCtx, inFormat)
	if err != nil {
		return err
	}
	if kt.PEMType != "" && kt.PEMType != cryptoutils.PEMTypePublicKey {
		return fmt.Errorf("expected %q PEM block, got %q", cryptoutils.PEMTypePublicKey, kt.PEMType)
	}

	rsaPublicKey, err := rsakey.FromSubjectPublicKeyInfo(kt.DER)
	if err != nil {
		return fmt.Errorf("could not decode SubjectPublicKeyInfo: %w", err)
	}
	log.Debug("Converted key to RSAPublicKey", "inputFormat", kt.Format, "inputLen", len(kt.DER), "outputLen", len(rsaPublicKey))

	return writeKey(cCtx, rsaPublicKey, outFormat, cryptoutils.PEMTypeRSAPublicKey)
}

func inspectAction(cCtx *cli.Context) error {
	inFormat, err := cryptoutils.ParseKeyFormat(cCtx.String(flags.InFormatFlag.Name))
	if err != nil {
		return err
	}

	kt, err := readKey(cCtx, inFormat)
	if err != nil {
		return err
	}

	inputEncoding := api.EncodingPKCS1
	rsaPublicKey := kt.DER
	if kt.PEMType != cryptoutils.PEMTypeRSAPublicKey {
		unwrapped, err := rsakey.FromSubjectPublicKeyInfo(kt.DER)
		switch {
		case err == nil:
			inputEncoding = api.EncodingSPKI
			rsaPublicKey = unwrapped
		case kt.PEMType == cryptoutils.PEMTypePublicKey || cryptoutils.IsSubjectPublicKeyInfoShaped(kt.DER):
			return fmt.Errorf("could not decode SubjectPublicKeyInfo: %w", err)
		}
	}

	info, err := cryptoutils.DescribeRSAPublicKey(rsaPublicKey)
	if err != nil {
		return err
	}

	pkcs1PEM, _ := cryptoutils.EncodeKeyText(rsaPublicKey, cryptoutils.FormatPEM, cryptoutils.PEMTypeRSAPublicKey)
	spkiPEM, _ := cryptoutils.EncodeKeyText(rsakey.ToSubjectPublicKeyInfo(rsaPublicKey), cryptoutils.FormatPEM, cryptoutils.PEMTypePublicKey)

	out, err := json.MarshalIndent(&api.KeyInfoResponse{
		InputEncoding: inputEncoding,
		ModulusBits:   info.ModulusBits,
		Exponent:      info.Exponent,
		Fingerprint:   info.Fingerprint,
		PKCS1PEM:      string(pkcs1PEM),
		SPKIPEM:       string(spkiPEM),
	}, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(cCtx, append(out, '\n'))
}

func readKey(cCtx *cli.Context, format cryptoutils.KeyFormat) (*cryptoutils.KeyText, error) {
	var (
		data []byte
		err  error
	)
	if name := cCtx.String(flags.InFlag.Name); name == "-" {
		data, err = io.ReadAll(cCtx.App.Reader)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read key: %w", err)
	}
	return cryptoutils.DecodeKeyText(data, format)
}

func writeKey(cCtx *cli.Context, der []byte, format cryptoutils.KeyFormat, pemType string) error {
	out, err := cryptoutils.EncodeKeyText(der, format, pemType)
	if err != nil {
		return err
	}
	return writeOutput(cCtx, out)
}

func writeOutput(cCtx *cli.Context, data []byte) error {
	if name := cCtx.String(flags.OutFlag.Name); name != "-" {
		return os.WriteFile(name, data, 0o644)
	}
	_, err := cCtx.App.Writer.Write(data)
	return err
}
