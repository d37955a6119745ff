package api

import (
	"log/slog"
	"time"
)

// HTTPServerConfig configures the conversion API server.
type HTTPServerConfig struct {
	// ListenAddr is the address the API listens on, e.g. "127.0.0.1:8080".
	ListenAddr string

	// MetricsAddr is the address of the Prometheus metrics listener.
	// Empty disables the listener; conversions are still counted.
	MetricsAddr string

	// EnablePprof mounts the pprof handlers under /debug.
	EnablePprof bool

	Log *slog.Logger

	// DrainDuration is how long /drain keeps reporting not ready before
	// the server is considered drained.
	DrainDuration time.Duration

	GracefulShutdownDuration time.Duration
	ReadTimeout              time.Duration
	WriteTimeout             time.Duration
}
