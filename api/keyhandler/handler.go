package keyhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ruteri/rsa-pubkey-converter/api"
	"github.com/ruteri/rsa-pubkey-converter/cryptoutils"
	"github.com/ruteri/rsa-pubkey-converter/der"
	"github.com/ruteri/rsa-pubkey-converter/interfaces"
	"github.com/ruteri/rsa-pubkey-converter/metrics"
)

// maxBodySize is the maximum allowed request body size (1MB).
const maxBodySize = 1024 * 1024

// Handler processes HTTP requests for the key conversion service.
type Handler struct {
	converter interfaces.PublicKeyConverter
	recorder  interfaces.ConversionRecorder
	log       *slog.Logger
}

// NewHandler creates a new HTTP request handler for the conversion service.
//
// Parameters:
//   - converter: Performs the PKCS#1 <-> X.509 conversions
//   - recorder: Receives one event per request; may be nil
//   - log: Structured logger for operational insights
//
// Returns a configured Handler instance ready to serve conversion requests.
func NewHandler(converter interfaces.PublicKeyConverter, recorder interfaces.ConversionRecorder, log *slog.Logger) *Handler {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Handler{
		converter: converter,
		recorder:  recorder,
		log:       log,
	}
}

// RegisterRoutes configures the HTTP router with the conversion endpoints:
//   - POST /api/v1/convert/to-spki
//   - POST /api/v1/convert/from-spki
//   - POST /api/v1/inspect
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/v1/convert/to-spki", h.HandleToSPKI)
	r.Post("/api/v1/convert/from-spki", h.HandleFromSPKI)
	r.Post("/api/v1/inspect", h.HandleInspect)
}

// HandleToSPKI converts a PKCS#1 RSAPublicKey to an X.509
// SubjectPublicKeyInfo.
//
// URL format: POST /api/v1/convert/to-spki[?format=pem|base64|hex|der]
//
// Request body: the key in the given format, detected when omitted.
// A PEM block of type "PUBLIC KEY" is rejected as already converted.
//
// Response: JSON-encoded api.ConversionResponse
//
// Status codes:
//   - 200 OK: Key converted
//   - 400 Bad Request: Body missing, unreadable or of the wrong PEM type
//   - 413 Request Entity Too Large: Body exceeds 1MB
func (h *Handler) HandleToSPKI(w http.ResponseWriter, r *http.Request) {
	kt, ok := h.readKey(w, r, metrics.DirectionToSPKI)
	if !ok {
		return
	}
	if kt.PEMType != "" && kt.PEMType != cryptoutils.PEMTypeRSAPublicKey {
		h.reject(w, metrics.DirectionToSPKI, http.StatusBadRequest,
			fmt.Errorf("expected %q PEM block, got %q", cryptoutils.PEMTypeRSAPublicKey, kt.PEMType))
		return
	}

	spki := h.converter.ToSubjectPublicKeyInfo(kt.DER)

	h.recorder.RecordConversion(metrics.DirectionToSPKI, metrics.ResultOK)
	h.writeJSON(w, http.StatusOK, &api.ConversionResponse{
		Encoding:    api.EncodingSPKI,
		PEM:         pemString(spki, cryptoutils.PEMTypePublicKey),
		DER:         spki,
		Fingerprint: cryptoutils.Fingerprint(spki),
	})
}

// HandleFromSPKI converts an X.509 SubjectPublicKeyInfo holding an
// rsaEncryption key to the PKCS#1 RSAPublicKey it wraps.
//
// URL format: POST /api/v1/convert/from-spki[?format=pem|base64|hex|der]
//
// Response: JSON-encoded api.ConversionResponse
//
// Status codes:
//   - 200 OK: Key converted
//   - 400 Bad Request: Body missing, unreadable or of the wrong PEM type
//   - 413 Request Entity Too Large: Body exceeds 1MB
//   - 422 Unprocessable Entity: Not a DER SubjectPublicKeyInfo for an RSA key;
//     the response carries the failure kind and byte position
func (h *Handler) HandleFromSPKI(w http.ResponseWriter, r *http.Request) {
	kt, ok := h.readKey(w, r, metrics.DirectionFromSPKI)
	if !ok {
		return
	}
	if kt.PEMType != "" && kt.PEMType != cryptoutils.PEMTypePublicKey {
		h.reject(w, metrics.DirectionFromSPKI, http.StatusBadRequest,
			fmt.Errorf("expected %q PEM block, got %q", cryptoutils.PEMTypePublicKey, kt.PEMType))
		return
	}

	rsaPublicKey, err := h.converter.FromSubjectPublicKeyInfo(kt.DER)
	if err != nil {
		h.log.Debug("Rejected SubjectPublicKeyInfo", "err", err, "inputFormat", kt.Format)
		h.rejectDecode(w, metrics.DirectionFromSPKI, err)
		return
	}

	h.recorder.RecordConversion(metrics.DirectionFromSPKI, metrics.ResultOK)
	h.writeJSON(w, http.StatusOK, &api.ConversionResponse{
		Encoding:    api.EncodingPKCS1,
		PEM:         pemString(rsaPublicKey, cryptoutils.PEMTypeRSAPublicKey),
		DER:         rsaPublicKey,
		Fingerprint: cryptoutils.Fingerprint(kt.DER),
	})
}

// HandleInspect describes a key submitted in either encoding.
//
// URL format: POST /api/v1/inspect[?format=pem|base64|hex|der]
//
// Response: JSON-encoded api.KeyInfoResponse
//
// Status codes:
//   - 200 OK: Key described
//   - 400 Bad Request: Body missing or unreadable
//   - 422 Unprocessable Entity: Not a DER RSA public key. Input shaped like a
//     SubjectPublicKeyInfo gets the failure kind and byte position
func (h *Handler) HandleInspect(w http.ResponseWriter, r *http.Request) {
	kt, ok := h.readKey(w, r, metrics.DirectionInspect)
	if !ok {
		return
	}

	inputEncoding := api.EncodingPKCS1
	rsaPublicKey := kt.DER
	if kt.PEMType != cryptoutils.PEMTypeRSAPublicKey {
		unwrapped, err := h.converter.FromSubjectPublicKeyInfo(kt.DER)
		switch {
		case err == nil:
			inputEncoding = api.EncodingSPKI
			rsaPublicKey = unwrapped
		case kt.PEMType == cryptoutils.PEMTypePublicKey || cryptoutils.IsSubjectPublicKeyInfoShaped(kt.DER):
			h.log.Debug("Rejected SubjectPublicKeyInfo", "err", err, "inputFormat", kt.Format)
			h.rejectDecode(w, metrics.DirectionInspect, err)
			return
		}
	}

	info, err := cryptoutils.DescribeRSAPublicKey(rsaPublicKey)
	if err != nil {
		h.reject(w, metrics.DirectionInspect, http.StatusUnprocessableEntity, err)
		return
	}

	spki := h.converter.ToSubjectPublicKeyInfo(rsaPublicKey)

	h.recorder.RecordConversion(metrics.DirectionInspect, metrics.ResultOK)
	h.writeJSON(w, http.StatusOK, &api.KeyInfoResponse{
		InputEncoding: inputEncoding,
		ModulusBits:   info.ModulusBits,
		Exponent:      info.Exponent,
		Fingerprint:   info.Fingerprint,
		PKCS1PEM:      pemString(rsaPublicKey, cryptoutils.PEMTypeRSAPublicKey),
		SPKIPEM:       pemString(spki, cryptoutils.PEMTypePublicKey),
	})
}

// readKey reads and decodes the request body. On failure the error response
// has already been written.
func (h *Handler) readKey(w http.ResponseWriter, r *http.Request, direction string) (*cryptoutils.KeyText, bool) {
	format, err := cryptoutils.ParseKeyFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.reject(w, direction, http.StatusBadRequest, err)
		return nil, false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.reject(w, direction, http.StatusRequestEntityTooLarge, errors.New("request body too large"))
			return nil, false
		}
		h.log.Error("Failed to read request body", "err", err)
		h.reject(w, direction, http.StatusBadRequest, errors.New("failed to read request body"))
		return nil, false
	}

	kt, err := cryptoutils.DecodeKeyText(body, format)
	if err != nil {
		h.reject(w, direction, http.StatusBadRequest, err)
		return nil, false
	}
	return kt, true
}

func (h *Handler) reject(w http.ResponseWriter, direction string, status int, err error) {
	h.recorder.RecordConversion(direction, metrics.ResultInvalid)
	h.writeJSON(w, status, &api.ErrorResponse{Error: err.Error()})
}

// rejectDecode reports a decode failure; der errors carry their kind and
// position, anything else is an internal error.
func (h *Handler) rejectDecode(w http.ResponseWriter, direction string, err error) {
	kind := der.Kind(err)
	if kind == "" {
		h.log.Error("Conversion failed", "err", err, "direction", direction)
		h.recorder.RecordConversion(direction, metrics.ResultError)
		h.writeJSON(w, http.StatusInternalServerError, &api.ErrorResponse{Error: "internal server error"})
		return
	}

	position := der.Position(err)
	resp := &api.ErrorResponse{
		Error:    err.Error(),
		Kind:     kind,
		Position: &position,
	}
	var bytesErr *der.InvalidBytesError
	if errors.As(err, &bytesErr) {
		resp.Mismatch = &bytesErr.Mismatch
	}

	h.recorder.RecordConversion(direction, metrics.ResultInvalid)
	h.writeJSON(w, http.StatusUnprocessableEntity, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("Failed to encode response", "err", err)
	}
}

func pemString(der []byte, pemType string) string {
	out, _ := cryptoutils.EncodeKeyText(der, cryptoutils.FormatPEM, pemType)
	return string(out)
}

type nopRecorder struct{}

func (nopRecorder) RecordConversion(string, string) {}
