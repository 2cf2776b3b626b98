package cli

import (
	"fmt"
	"testing"

	"github.com/gabapcia/solsend/internal/transfer"
	transfertest "github.com/gabapcia/solsend/internal/transfer/mocks"
	wallettest "github.com/gabapcia/solsend/internal/wallet/mocks"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

const (
	senderAddress = "11111111111111111111111111111111"
	transactionID = "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"
)

func TestSendCommand(t *testing.T) {
	t.Run("should create command with correct flags", func(t *testing.T) {
		cmd := sendCommand(wallettest.NewService(t), transfertest.NewService(t), "devnet")

		assert.Equal(t, "send", cmd.Name)
		assert.Len(t, cmd.Flags, 4)

		toFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "to", toFlag.Name)
		assert.True(t, toFlag.Required)

		amountFlag := cmd.Flags[1].(*cli.Uint64Flag)
		assert.Equal(t, "amount", amountFlag.Name)
		assert.True(t, amountFlag.Required)

		fromFlag := cmd.Flags[2].(*cli.StringFlag)
		assert.Equal(t, "from", fromFlag.Name)
		assert.False(t, fromFlag.Required)
	})

	t.Run("should send from the custodial wallet by default", func(t *testing.T) {
		mockWallet := wallettest.NewService(t)
		mockTransfer := transfertest.NewService(t)

		mockWallet.EXPECT().Address(mock.Anything).Return(solana.MustPublicKeyFromBase58(walletAddress), nil).Once()
		mockTransfer.EXPECT().Transfer(mock.Anything, transfer.Intent{
			Sender:    walletAddress,
			Recipient: walletAddress,
			Amount:    1_000_000,
		}).Return(transfer.Result{
			AttemptID:     uuid.New(),
			State:         transfer.StateSucceeded,
			TransactionID: transactionID,
		}, nil).Once()

		out, err := runApp(t, newApp(mockWallet, mockTransfer, "devnet"), "send", "--to", walletAddress, "--amount", "1000000")

		assert.NoError(t, err)
		assert.Equal(t,
			"transaction: "+transactionID+"\n"+
				"explorer: https://explorer.solana.com/tx/"+transactionID+"?cluster=devnet\n",
			out)
	})

	t.Run("should use explicit sender and reason", func(t *testing.T) {
		mockWallet := wallettest.NewService(t)
		mockTransfer := transfertest.NewService(t)

		mockTransfer.EXPECT().Transfer(mock.Anything, transfer.Intent{
			Sender:    senderAddress,
			Recipient: walletAddress,
			Amount:    5,
			Reason:    "rent",
		}).Return(transfer.Result{State: transfer.StateSucceeded, TransactionID: transactionID}, nil).Once()

		_, err := runApp(t, newApp(mockWallet, mockTransfer, "mainnet-beta"),
			"send", "--to", walletAddress, "--amount", "5", "--from", senderAddress, "--reason", "rent")

		assert.NoError(t, err)
	})

	t.Run("should surface the failure cause verbatim", func(t *testing.T) {
		mockWallet := wallettest.NewService(t)
		mockTransfer := transfertest.NewService(t)
		rejected := &transfer.SigningRejectedError{Reason: "user rejected"}

		mockTransfer.EXPECT().Transfer(mock.Anything, mock.Anything).
			Return(transfer.Result{State: transfer.StateFailed, Err: rejected}, rejected).Once()

		out, err := runApp(t, newApp(mockWallet, mockTransfer, "devnet"),
			"send", "--to", walletAddress, "--amount", "5", "--from", senderAddress)

		assert.ErrorIs(t, err, rejected)
		assert.Equal(t, "signing rejected: user rejected", err.Error())
		assert.Empty(t, out)
	})

	t.Run("should hint that a new attempt may succeed", func(t *testing.T) {
		mockWallet := wallettest.NewService(t)
		mockTransfer := transfertest.NewService(t)
		stale := &transfer.RPCRejectedError{Code: -32002, Reason: "Transaction simulation failed: Blockhash not found"}
		attemptID := uuid.New()

		mockTransfer.EXPECT().Transfer(mock.Anything, mock.Anything).
			Return(transfer.Result{AttemptID: attemptID, State: transfer.StateFailed, Err: stale}, stale).Once()

		out, err := runApp(t, newApp(mockWallet, mockTransfer, "devnet"),
			"send", "--to", walletAddress, "--amount", "5", "--from", senderAddress)

		assert.ErrorIs(t, err, stale)
		assert.Equal(t, "attempt "+attemptID.String()+" failed; a new attempt may succeed\n", out)
	})

	t.Run("should point to the explorer when the submission outcome is unknown", func(t *testing.T) {
		mockWallet := wallettest.NewService(t)
		mockTransfer := transfertest.NewService(t)
		unknown := fmt.Errorf("%w: %w", transfer.ErrSubmissionOutcomeUnknown, transfer.ErrNetworkUnavailable)

		mockTransfer.EXPECT().Transfer(mock.Anything, mock.Anything).
			Return(transfer.Result{State: transfer.StateFailed, TransactionID: transactionID, Err: unknown}, unknown).Once()

		out, err := runApp(t, newApp(mockWallet, mockTransfer, "devnet"),
			"send", "--to", walletAddress, "--amount", "5", "--from", senderAddress)

		assert.ErrorIs(t, err, transfer.ErrSubmissionOutcomeUnknown)
		assert.Equal(t,
			"transaction "+transactionID+" may have been submitted; check "+
				"https://explorer.solana.com/tx/"+transactionID+"?cluster=devnet before trying again\n",
			out)
		assert.NotContains(t, out, "a new attempt may succeed")
	})

	t.Run("should fail without required flags", func(t *testing.T) {
		_, err := runApp(t, newApp(wallettest.NewService(t), transfertest.NewService(t), "devnet"), "send")
		assert.Error(t, err)
	})
}
