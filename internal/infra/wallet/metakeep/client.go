// Package metakeep implements wallet.SDK over the MetaKeep HTTPS API.
//
// Requests are sent from a goroutine and answered through the wallet.Callback,
// mirroring the provider's mobile SDK. A response whose status is not SUCCESS,
// or a request that fails in transit, is reported through OnFailure.
package metakeep

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabapcia/solsend/internal/pkg/logger"
	"github.com/gabapcia/solsend/internal/wallet"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	getWalletPath       = "/v3/getWallet"
	signTransactionPath = "/v2/app/sign/transaction"

	apiKeyHeader  = "x-api-key"
	statusSuccess = "SUCCESS"

	maxResponseSize = 1 << 20
)

type (
	user struct {
		Email string `json:"email"`
	}

	getWalletRequest struct {
		User user `json:"user"`
	}

	signTransactionRequest struct {
		TransactionObject wallet.TransactionRequest `json:"transactionObject"`
		Reason            string                    `json:"reason"`
		User              user                      `json:"user"`
	}

	statusResponse struct {
		Status string `json:"status"`
	}
)

// client implements wallet.SDK for a single end user of a MetaKeep app.
type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
	user       user
}

var _ wallet.SDK = (*client)(nil)

func (c *client) GetWallet(ctx context.Context, cb wallet.Callback) {
	go c.dispatch(ctx, getWalletPath, getWalletRequest{User: c.user}, cb)
}

func (c *client) SignTransaction(ctx context.Context, request wallet.TransactionRequest, reason string, cb wallet.Callback) {
	go c.dispatch(ctx, signTransactionPath, signTransactionRequest{
		TransactionObject: request,
		Reason:            reason,
		User:              c.user,
	}, cb)
}

// dispatch performs the request and fires exactly one callback.
func (c *client) dispatch(ctx context.Context, path string, body any, cb wallet.Callback) {
	payload, err := c.post(ctx, path, body)
	if err != nil {
		logger.Error(ctx, "wallet gateway request failed", "wallet.path", path, "error", err)
		cb.OnFailure(failurePayload(err))
		return
	}

	var status statusResponse
	if err := json.Unmarshal(payload, &status); err != nil {
		cb.OnFailure(failurePayload(fmt.Errorf("unexpected response: %w", err)))
		return
	}

	if status.Status != statusSuccess {
		logger.Warn(ctx, "wallet gateway request not approved", "wallet.path", path, "wallet.status", status.Status)
		cb.OnFailure(payload)
		return
	}

	cb.OnSuccess(payload)
}

func (c *client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if !json.Valid(payload) {
		return nil, fmt.Errorf("http status %d: response is not json", res.StatusCode)
	}

	return payload, nil
}

// failurePayload renders a local error the way the gateway reports failures.
func failurePayload(err error) json.RawMessage {
	payload, _ := json.Marshal(map[string]string{
		"status": "REQUEST_FAILED",
		"error":  err.Error(),
	})
	return payload
}

// NewClient returns a MetaKeep SDK for the user identified by userEmail.
func NewClient(httpClient *retryablehttp.Client, baseURL, apiKey, userEmail string) *client {
	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		user:       user{Email: userEmail},
	}
}
