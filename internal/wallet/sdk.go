// Package wallet connects the transfer pipeline to an embedded custodial wallet.
//
// The wallet provider is reached through SDK, an asynchronous request/callback
// boundary. Service looks up the custodial address and the signer adapter
// returned by NewSigner implements transfer.Signer. Both bridge the callbacks
// into a single blocking call with a bounded wait.
package wallet

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/solsend/internal/pkg/types"
)

// Callback receives the JSON outcome of an SDK request.
// Implementations invoke exactly one of the functions, once, from any goroutine.
type Callback struct {
	OnSuccess func(payload json.RawMessage)
	OnFailure func(payload json.RawMessage)
}

// TransactionRequest is the transaction object handed to the wallet for signing.
type TransactionRequest struct {
	SerializedTransactionMessage types.HexBytes `json:"serializedTransactionMessage"`
}

// SDK is the embedded wallet provider.
type SDK interface {
	// GetWallet requests the user's custodial wallet. On success the payload
	// holds at least {"wallet": {"solAddress": "..."}}.
	GetWallet(ctx context.Context, cb Callback)

	// SignTransaction asks the user to approve signing request. reason is
	// shown in the approval prompt. On success the payload holds
	// {"signature": "..."}.
	SignTransaction(ctx context.Context, request TransactionRequest, reason string, cb Callback)
}
