// Package jsonrpc provides a generic JSON-RPC 2.0 client implementation over HTTP.
// It is suitable for interacting with any JSON-RPC-compatible service, such as
// blockchain nodes, and classifies failures into transport errors, malformed
// responses, and errors returned by the provider itself.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	// Errors carrying it are always *ProviderError values.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrTransport indicates the request never produced a usable HTTP response
	// (connection refused, timeout, exhausted retries, canceled context).
	ErrTransport = errors.New("jsonrpc transport failure")

	// ErrInvalidResponse indicates the server answered with something that is not
	// a JSON-RPC 2.0 response.
	ErrInvalidResponse = errors.New("invalid jsonrpc response")
)

// ProviderError is the error object of a JSON-RPC 2.0 response.
type ProviderError struct {
	Code    int             `json:"code"`           // JSON-RPC 2.0 error code or a server-specific one
	Message string          `json:"message"`        // Human-readable error message
	Data    json.RawMessage `json:"data,omitempty"` // Optional server-defined details
}

// Error formats the provider error as "provider error: [code] - message".
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

// Unwrap allows errors.Is(err, ErrProviderReturnedError).
func (e *ProviderError) Unwrap() error {
	return ErrProviderReturnedError
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"` // JSON-RPC protocol version (usually "2.0")
	Error   *ProviderError  `json:"error"`   // Present when the call failed
	Result  json.RawMessage `json:"result"`  // Raw result payload returned by the server
}

// Err returns the response's error object, if any.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client defines the interface for a generic JSON-RPC client.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
// It sends JSON-RPC requests to the configured provider endpoint using the provided HTTP client.
type client struct {
	providerEndpoint string                // The URL of the remote JSON-RPC server
	httpClient       *retryablehttp.Client // The HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// The `id` field in the request is generated as a UUID string.
//
// Failures wrap ErrTransport, ErrInvalidResponse, or are a *ProviderError.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: http status %d: %w", ErrInvalidResponse, res.StatusCode, err)
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	if len(data.Result) == 0 {
		return nil, fmt.Errorf("%w: http status %d: missing result", ErrInvalidResponse, res.StatusCode)
	}

	return data.Result, nil
}

// NewClient constructs and returns a Client that will send JSON-RPC requests
// to the specified provider endpoint using the given HTTP client.
//
// httpClient: the HTTP client to use for sending requests (see transport/http).
// providerEndpoint: the URL of the JSON-RPC server.
func NewClient(httpClient *retryablehttp.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
