package flags

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ruteri/rsa-pubkey-converter/api"
	"github.com/ruteri/rsa-pubkey-converter/common"
	"github.com/ruteri/rsa-pubkey-converter/cryptoutils"
	"github.com/urfave/cli/v2"
)

// EnvPrefix prefixes the environment variable of every flag.
const EnvPrefix = "RSAKEYCONV_"

func envVars(name string) []string {
	return []string{EnvPrefix + name}
}

func SetupLogger(cCtx *cli.Context) (log *slog.Logger) {
	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   cCtx.Bool(LogDebugFlag.Name),
		JSON:    cCtx.Bool(LogJsonFlag.Name),
		Service: cCtx.String(LogServiceFlagName),
		Version: common.Version,
		Output:  cCtx.App.ErrWriter,
	})

	if cCtx.Bool(LogUidFlag.Name) {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}

func ConfigureServer(cCtx *cli.Context, logger *slog.Logger) *api.HTTPServerConfig {
	return &api.HTTPServerConfig{
		ListenAddr:               cCtx.String(ListenAddrFlag.Name),
		MetricsAddr:              cCtx.String(MetricsAddrFlag.Name),
		Log:                      logger,
		EnablePprof:              cCtx.Bool(PprofFlag.Name),
		DrainDuration:            time.Duration(cCtx.Int64(DrainSecondsFlag.Name)) * time.Second,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             30 * time.Second,
	}
}

// KeyFormats reads the --in-format and --out-format flags.
func KeyFormats(cCtx *cli.Context) (in, out cryptoutils.KeyFormat, err error) {
	in, err = cryptoutils.ParseKeyFormat(cCtx.String(InFormatFlag.Name))
	if err != nil {
		return "", "", err
	}
	out, err = cryptoutils.ParseKeyFormat(cCtx.String(OutFormatFlag.Name))
	if err != nil {
		return "", "", err
	}
	return in, out, nil
}

var LogJsonFlag = &cli.BoolFlag{
	Name:    "log-json",
	Value:   false,
	Usage:   "log in JSON format",
	EnvVars: envVars("LOG_JSON"),
}
var LogDebugFlag = &cli.BoolFlag{
	Name:    "log-debug",
	Value:   false,
	Usage:   "log debug messages",
	EnvVars: envVars("LOG_DEBUG"),
}
var LogUidFlag = &cli.BoolFlag{
	Name:    "log-uid",
	Value:   false,
	Usage:   "generate a uuid and add to all log messages",
	EnvVars: envVars("LOG_UID"),
}

const LogServiceFlagName = "log-service"

var LogServiceFlagFn = func(service string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    LogServiceFlagName,
		Value:   service,
		Usage:   "add 'service' tag to logs",
		EnvVars: envVars("LOG_SERVICE"),
	}
}

var ListenAddrFlag = &cli.StringFlag{
	Name:    "listen-addr",
	Value:   "127.0.0.1:8080",
	Usage:   "address to listen on for API",
	EnvVars: envVars("LISTEN_ADDR"),
}
var PprofFlag = &cli.BoolFlag{
	Name:    "pprof",
	Value:   false,
	Usage:   "enable pprof debug endpoint",
	EnvVars: envVars("PPROF"),
}
var DrainSecondsFlag = &cli.Int64Flag{
	Name:    "drain-seconds",
	Value:   45,
	Usage:   "seconds to wait in drain HTTP request",
	EnvVars: envVars("DRAIN_SECONDS"),
}
var MetricsAddrFlag = &cli.StringFlag{
	Name:    "metrics-addr",
	Value:   "127.0.0.1:8090",
	Usage:   "address to listen on for Prometheus metrics",
	EnvVars: envVars("METRICS_ADDR"),
}

var InFlag = &cli.StringFlag{
	Name:    "in",
	Aliases: []string{"i"},
	Value:   "-",
	Usage:   "file to read the key from, '-' for stdin",
}
var OutFlag = &cli.StringFlag{
	Name:    "out",
	Aliases: []string{"o"},
	Value:   "-",
	Usage:   "file to write the result to, '-' for stdout",
}
var InFormatFlag = &cli.StringFlag{
	Name:    "in-format",
	Value:   string(cryptoutils.FormatAuto),
	Usage:   "input key format: auto, pem, base64, hex or der",
	EnvVars: envVars("IN_FORMAT"),
}
var OutFormatFlag = &cli.StringFlag{
	Name:    "out-format",
	Value:   string(cryptoutils.FormatPEM),
	Usage:   "output key format: pem, base64, hex or der",
	EnvVars: envVars("OUT_FORMAT"),
}

var CommonFlags = []cli.Flag{
	LogJsonFlag,
	LogDebugFlag,
	LogUidFlag,
}

var ServerFlags = []cli.Flag{
	ListenAddrFlag,
	PprofFlag,
	DrainSecondsFlag,
	MetricsAddrFlag,
}

var KeyIOFlags = []cli.Flag{
	InFlag,
	OutFlag,
	InFormatFlag,
	OutFormatFlag,
}
