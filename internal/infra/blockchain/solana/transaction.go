package solana

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/solsend/internal/pkg/logger"
	"github.com/gabapcia/solsend/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/solsend/internal/transfer"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Submit implements transfer.Network using sendTransaction with base64 encoding.
// The node runs its preflight simulation at the client's commitment level; a
// failed simulation comes back as *transfer.RPCRejectedError.
func (c *client) Submit(ctx context.Context, signedTransaction []byte) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(signedTransaction)

	data, err := c.conn.Fetch(ctx, "sendTransaction", encoded, rpc.M{
		"encoding":            "base64",
		"preflightCommitment": c.commitment,
	})
	if err != nil {
		var providerErr *jsonrpc.ProviderError
		if errors.As(err, &providerErr) {
			details := strings.TrimSpace(string(providerErr.Data))
			logger.Warn(ctx, "transaction rejected by node",
				"rpc.error.code", providerErr.Code,
				"rpc.error.message", providerErr.Message,
				"rpc.error.data", details,
			)
			return "", &transfer.RPCRejectedError{
				Code:    providerErr.Code,
				Reason:  providerErr.Message,
				Details: details,
			}
		}
		return "", networkError(err)
	}

	var signature string
	if err := json.Unmarshal(data, &signature); err != nil {
		return "", fmt.Errorf("%w: sendTransaction: %w", transfer.ErrMalformedResponse, err)
	}

	if _, err := solanago.SignatureFromBase58(signature); err != nil {
		return "", fmt.Errorf("%w: sendTransaction: transaction id %q: %w", transfer.ErrMalformedResponse, signature, err)
	}

	return signature, nil
}
