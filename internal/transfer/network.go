package transfer

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Network is the client side of the Solana RPC node.
type Network interface {
	// FetchBlockReference returns the most recent blockhash at the configured
	// commitment level. Failures wrap ErrNetworkUnavailable or ErrMalformedResponse.
	FetchBlockReference(ctx context.Context) (BlockReference, error)

	// Submit sends a fully signed, serialized transaction and returns the
	// transaction identifier reported by the node. A refusal by the node is
	// returned as *RPCRejectedError. Submit is never retried.
	Submit(ctx context.Context, signedTransaction []byte) (string, error)
}

// Signer is the external signing authority holding the fee payer's key.
type Signer interface {
	// RequestSignature asks the authority to sign tx's signable message on
	// behalf of its fee payer. reason is shown to the user approving the
	// request. It blocks until the authority answers, the request times out
	// (ErrSigningTimedOut) or ctx is done.
	RequestSignature(ctx context.Context, tx UnsignedTransaction, reason string) (solana.Signature, error)
}
