/*
Package httpserver runs the RSA public key conversion API.

The server mounts the key handlers from api/keyhandler next to the usual
operational endpoints, logs every request through the go-utils slog
middleware and counts conversions in a private Prometheus registry that is
served on a separate metrics listener.

# Endpoints

  - POST /api/v1/convert/to-spki - PKCS#1 RSAPublicKey to X.509 SubjectPublicKeyInfo
  - POST /api/v1/convert/from-spki - X.509 SubjectPublicKeyInfo to PKCS#1 RSAPublicKey
  - POST /api/v1/inspect - Describe a key given in either encoding
  - GET /livez - Liveness check
  - GET /readyz - Readiness check
  - GET /drain - Mark server as not ready
  - GET /undrain - Mark server as ready
  - /debug/pprof/* - Profiling, when EnablePprof is set

The metrics listener serves GET /metrics.

# Example Usage

	cfg := &api.HTTPServerConfig{
		ListenAddr:               ":8080",
		MetricsAddr:              ":8090",
		Log:                      logger,
		DrainDuration:            45 * time.Second,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             30 * time.Second,
	}

	server, err := httpserver.New(cfg, rsakey.Converter{})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	server.RunInBackground()
	defer server.Shutdown()
*/
package httpserver
