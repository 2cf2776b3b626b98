package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/gabapcia/solsend/internal/transfer"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

const recipientAddress = "6xEeDTksyAhBz7QBgzPmYxJN2zbmT7twx5rr1ejnaona"

// staticNetwork serves a fixed block reference and refuses submissions.
type staticNetwork struct{}

func (staticNetwork) FetchBlockReference(context.Context) (transfer.BlockReference, error) {
	return transfer.BlockReference{
		Blockhash:            solana.HashFromBytes(bytes.Repeat([]byte{4}, 32)),
		LastValidBlockHeight: 99,
	}, nil
}

func (staticNetwork) Submit(context.Context, []byte) (string, error) {
	return "", transfer.ErrNetworkUnavailable
}

func newTestKey(t *testing.T) solana.PrivateKey {
	t.Helper()

	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return key
}

func buildTransfer(t *testing.T, sender solana.PublicKey) transfer.UnsignedTransaction {
	t.Helper()

	tx, err := transfer.NewBuilder(staticNetwork{}).Build(context.Background(), sender.String(), recipientAddress, 1_000_000)
	require.NoError(t, err)
	return tx
}

func rawJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
