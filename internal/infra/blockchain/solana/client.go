// Package solana implements transfer.Network for Solana nodes using a JSON-RPC client.
package solana

import (
	"errors"
	"fmt"

	"github.com/gabapcia/solsend/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/solsend/internal/transfer"

	"github.com/gagliardetto/solana-go/rpc"
)

// client implements transfer.Network on top of a JSON-RPC connection to a Solana node.
type client struct {
	conn       jsonrpc.Client      // Underlying JSON-RPC client used to interact with the node
	commitment rpc.CommitmentType // Commitment level for reads and preflight checks
}

// Ensure client implements the transfer.Network interface at compile time.
var _ transfer.Network = (*client)(nil)

// networkError classifies a failed read into the transfer error taxonomy.
func networkError(err error) error {
	if errors.Is(err, jsonrpc.ErrInvalidResponse) {
		return fmt.Errorf("%w: %w", transfer.ErrMalformedResponse, err)
	}
	return fmt.Errorf("%w: %w", transfer.ErrNetworkUnavailable, err)
}

type Option func(*client)

// WithCommitment sets the commitment level. Defaults to finalized.
func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(c *client) {
		c.commitment = commitment
	}
}

// NewClient creates a Solana network client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	c := &client{
		conn:       conn,
		commitment: rpc.CommitmentFinalized,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
