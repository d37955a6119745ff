// Package keyhandler implements the HTTP handlers and client for the RSA
// public key conversion service.
//
// The service converts between the PKCS#1 RSAPublicKey encoding and the
// X.509 SubjectPublicKeyInfo encoding of the same key, and describes keys
// given in either form. Request bodies carry the key as PEM, Base64, hex or
// raw DER; the representation is detected unless the "format" query
// parameter names it.
//
// # Endpoints
//
//   - POST /api/v1/convert/to-spki: PKCS#1 to X.509
//   - POST /api/v1/convert/from-spki: X.509 to PKCS#1
//   - POST /api/v1/inspect: modulus size, exponent and fingerprint
//
// Malformed X.509 input is answered with 422 Unprocessable Entity and an
// api.ErrorResponse naming the failure kind and the byte position at which
// decoding stopped.
//
// # Usage Example
//
// Server-side usage:
//
//	handler := keyhandler.NewHandler(rsakey.Converter{}, metricsSrv, logger)
//	router := chi.NewRouter()
//	handler.RegisterRoutes(router)
//
// Client-side usage:
//
//	client := keyhandler.NewClient("http://127.0.0.1:8080", nil)
//	resp, err := client.FromSubjectPublicKeyInfo(pemBytes)
//	if err != nil {
//	    var apiErr *keyhandler.APIError
//	    if errors.As(err, &apiErr) {
//	        log.Printf("rejected with status %d: %s", apiErr.StatusCode, apiErr.Response.Kind)
//	    }
//	    return err
//	}
//	fmt.Print(resp.PEM)
package keyhandler
