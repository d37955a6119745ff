package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ruteri/rsa-pubkey-converter/cmd/flags"
	"github.com/ruteri/rsa-pubkey-converter/common"
	"github.com/ruteri/rsa-pubkey-converter/httpserver"
	"github.com/ruteri/rsa-pubkey-converter/rsakey"
	"github.com/urfave/cli/v2"
)

func main() {
	// a missing .env file is fine, flags and the environment still apply
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "rsakeyconv-server",
		Usage:   "Serve the RSA public key conversion API",
		Version: common.Version,
		Flags: append(append([]cli.Flag{flags.LogServiceFlagFn("rsakeyconv-server")},
			flags.CommonFlags...), flags.ServerFlags...),
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)
			cfg := flags.ConfigureServer(cCtx, logger)

			server, err := httpserver.New(cfg, rsakey.Converter{})
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			server.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop")
			<-exit
			logger.Info("Shutdown signal received")

			server.Shutdown()
			logger.Info("Server shutdown complete")

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
