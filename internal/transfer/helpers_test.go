package transfer

import (
	"bytes"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

const (
	systemProgramAddress = "11111111111111111111111111111111"
	recipientAddress     = "6xEeDTksyAhBz7QBgzPmYxJN2zbmT7twx5rr1ejnaona"
)

func testBlockReference(seed byte) BlockReference {
	return BlockReference{
		Blockhash:            solana.HashFromBytes(bytes.Repeat([]byte{seed}, 32)),
		LastValidBlockHeight: 1_000 + uint64(seed),
	}
}

func newTestKey(t *testing.T) solana.PrivateKey {
	t.Helper()

	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return key
}

func signMessage(t *testing.T, key solana.PrivateKey, tx UnsignedTransaction) solana.Signature {
	t.Helper()

	msg, err := tx.Message()
	require.NoError(t, err)

	sig, err := key.Sign(msg)
	require.NoError(t, err)
	return sig
}

// decodeTransferData returns the lamports of a system transfer instruction payload.
func decodeTransferData(t *testing.T, data []byte) uint64 {
	t.Helper()

	require.Len(t, data, 12)

	dec := bin.NewBinDecoder(data)
	kind, err := dec.ReadUint32(bin.LE)
	require.NoError(t, err)
	require.Equal(t, uint32(2), kind, "expected system transfer instruction")

	lamports, err := dec.ReadUint64(bin.LE)
	require.NoError(t, err)
	return lamports
}
