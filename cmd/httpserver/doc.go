// Package main (cmd/httpserver) runs the RSA public key conversion API.
//
// The server converts keys between the PKCS#1 RSAPublicKey and X.509
// SubjectPublicKeyInfo encodings over HTTP, and exposes health, drain,
// profiling and Prometheus endpoints. See package httpserver for the routes.
//
// Every flag can also be set through an RSAKEYCONV_ prefixed environment
// variable, and a .env file in the working directory is loaded on start.
//
// Example usage:
//
//	rsakeyconv-server --listen-addr=0.0.0.0:8080 \
//	    --metrics-addr=0.0.0.0:8090 \
//	    --log-json
//
//	curl --data-binary @key.pem http://127.0.0.1:8080/api/v1/convert/from-spki
package main
