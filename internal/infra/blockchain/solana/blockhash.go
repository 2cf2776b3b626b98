package solana

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/solsend/internal/transfer"

	"github.com/gagliardetto/solana-go/rpc"
)

// FetchBlockReference implements transfer.Network using getLatestBlockhash.
func (c *client) FetchBlockReference(ctx context.Context) (transfer.BlockReference, error) {
	data, err := c.conn.Fetch(ctx, "getLatestBlockhash", rpc.M{"commitment": c.commitment})
	if err != nil {
		return transfer.BlockReference{}, networkError(err)
	}

	var out rpc.GetLatestBlockhashResult
	if err := json.Unmarshal(data, &out); err != nil {
		return transfer.BlockReference{}, fmt.Errorf("%w: getLatestBlockhash: %w", transfer.ErrMalformedResponse, err)
	}

	if out.Value == nil || out.Value.Blockhash.IsZero() {
		return transfer.BlockReference{}, fmt.Errorf("%w: getLatestBlockhash: missing blockhash", transfer.ErrMalformedResponse)
	}

	return transfer.BlockReference{
		Blockhash:            out.Value.Blockhash,
		LastValidBlockHeight: out.Value.LastValidBlockHeight,
	}, nil
}
