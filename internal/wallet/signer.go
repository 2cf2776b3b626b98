package wallet

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solsend/internal/pkg/logger"
	"github.com/gabapcia/solsend/internal/pkg/types"
	"github.com/gabapcia/solsend/internal/pkg/validator"
	"github.com/gabapcia/solsend/internal/transfer"

	"github.com/gagliardetto/solana-go"
)

type signatureResponse struct {
	Signature string `json:"signature" validate:"required"`
}

// signer implements transfer.Signer by asking the wallet to sign the
// transaction's signable message.
type signer struct {
	sdk     SDK
	timeout time.Duration
}

var _ transfer.Signer = (*signer)(nil)

// RequestSignature sends the signable message as a "0x"-prefixed hex string
// and waits for the wallet's answer.
//
// Failure callbacks become *transfer.SigningRejectedError, an unanswered request
// becomes transfer.ErrSigningTimedOut and an unusable success payload
// becomes transfer.ErrSignatureParse.
func (s *signer) RequestSignature(ctx context.Context, tx transfer.UnsignedTransaction, reason string) (solana.Signature, error) {
	message, err := tx.Message()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("serialize signable message: %w", err)
	}

	request := TransactionRequest{SerializedTransactionMessage: types.HexBytes(message)}

	logger.Info(ctx, "signature requested",
		"wallet.fee_payer", tx.FeePayer().String(),
		"wallet.message_size", len(message),
	)

	payload, err := await(ctx, s.timeout, transfer.ErrSigningTimedOut, func(ctx context.Context, cb Callback) {
		s.sdk.SignTransaction(ctx, request, reason, cb)
	})
	if err != nil {
		var failure *callbackFailure
		if errors.As(err, &failure) {
			return solana.Signature{}, &transfer.SigningRejectedError{Reason: failure.reason()}
		}
		return solana.Signature{}, err
	}

	var res signatureResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		return solana.Signature{}, fmt.Errorf("%w: %w", transfer.ErrSignatureParse, err)
	}

	if err := validator.Validate(res); err != nil {
		return solana.Signature{}, fmt.Errorf("%w: %w", transfer.ErrSignatureParse, err)
	}

	return parseSignature(res.Signature)
}

// parseSignature decodes a 64-byte signature given as "0x"-prefixed hex, bare
// hex or base58.
func parseSignature(encoded string) (solana.Signature, error) {
	var raw []byte

	switch {
	case types.HasHexPrefix(encoded):
		b, err := types.HexBytesFromString(encoded)
		if err != nil {
			return solana.Signature{}, fmt.Errorf("%w: %w", transfer.ErrSignatureParse, err)
		}
		raw = b
	case len(encoded) == 2*solana.SignatureLength:
		b, err := hex.DecodeString(encoded)
		if err != nil {
			return solana.Signature{}, fmt.Errorf("%w: %w", transfer.ErrSignatureParse, err)
		}
		raw = b
	default:
		sig, err := solana.SignatureFromBase58(encoded)
		if err != nil {
			return solana.Signature{}, fmt.Errorf("%w: %w", transfer.ErrSignatureParse, err)
		}
		return sig, nil
	}

	if len(raw) != solana.SignatureLength {
		return solana.Signature{}, fmt.Errorf("%w: expected %d bytes, got %d", transfer.ErrSignatureParse, solana.SignatureLength, len(raw))
	}

	return solana.SignatureFromBytes(raw), nil
}

// NewSigner returns a transfer.Signer backed by sdk.
func NewSigner(sdk SDK, opts ...Option) *signer {
	cfg := newConfig(opts)

	return &signer{
		sdk:     sdk,
		timeout: cfg.timeout,
	}
}
