package keyhandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ruteri/rsa-pubkey-converter/api"
)

// APIError is returned by the client when the service answers with a
// non-2xx status.
type APIError struct {
	StatusCode int
	Response   api.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Response.Mismatch != nil && e.Response.Position != nil {
		return fmt.Sprintf("conversion service returned %d: %s (%s at byte %d, first mismatch at byte %d)",
			e.StatusCode, e.Response.Error, e.Response.Kind, *e.Response.Position, *e.Response.Mismatch)
	}
	if e.Response.Kind != "" && e.Response.Position != nil {
		return fmt.Sprintf("conversion service returned %d: %s (%s at byte %d)",
			e.StatusCode, e.Response.Error, e.Response.Kind, *e.Response.Position)
	}
	return fmt.Sprintf("conversion service returned %d: %s", e.StatusCode, e.Response.Error)
}

// Client talks to a remote conversion service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ api.KeyConversionProvider = (*Client)(nil)

// NewClient creates a client for the service at baseURL
// (e.g. "http://127.0.0.1:8080"). A nil httpClient means
// http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ToSubjectPublicKeyInfo converts a PKCS#1 key to X.509 remotely.
func (c *Client) ToSubjectPublicKeyInfo(key []byte) (*api.ConversionResponse, error) {
	var resp api.ConversionResponse
	if err := c.post("/api/v1/convert/to-spki", key, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FromSubjectPublicKeyInfo converts an X.509 key to PKCS#1 remotely.
func (c *Client) FromSubjectPublicKeyInfo(key []byte) (*api.ConversionResponse, error) {
	var resp api.ConversionResponse
	if err := c.post("/api/v1/convert/from-spki", key, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Inspect describes a key given in either encoding.
func (c *Client) Inspect(key []byte) (*api.KeyInfoResponse, error) {
	var resp api.KeyInfoResponse
	if err := c.post("/api/v1/inspect", key, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(path string, key []byte, out any) error {
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(key))
	if err != nil {
		return fmt.Errorf("could not initialize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not request conversion: %w", err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read conversion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, &apiErr.Response); err != nil || apiErr.Response.Error == "" {
			apiErr.Response = api.ErrorResponse{Error: strings.TrimSpace(string(body))}
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("could not parse conversion response: %w", err)
	}
	return nil
}
