package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solsend/internal/pkg/validator"
	"github.com/gabapcia/solsend/internal/transfer"

	"github.com/gagliardetto/solana-go"
)

// ErrLookupTimedOut is returned when the wallet does not answer an address lookup in time.
var ErrLookupTimedOut = errors.New("wallet lookup timed out")

// LookupError reports a failure callback for an address lookup.
type LookupError struct {
	Reason string
}

func (e *LookupError) Error() string {
	return "wallet lookup failed: " + e.Reason
}

type walletResponse struct {
	Wallet struct {
		SolAddress string `json:"solAddress" validate:"required,solana_address"`
	} `json:"wallet" validate:"required"`
}

// Service exposes the user's custodial wallet.
type Service interface {
	// Address returns the Solana address of the user's custodial wallet.
	Address(ctx context.Context) (solana.PublicKey, error)
}

type service struct {
	sdk     SDK
	timeout time.Duration
}

var _ Service = (*service)(nil)

func (s *service) Address(ctx context.Context) (solana.PublicKey, error) {
	payload, err := await(ctx, s.timeout, ErrLookupTimedOut, s.sdk.GetWallet)
	if err != nil {
		var failure *callbackFailure
		if errors.As(err, &failure) {
			return solana.PublicKey{}, &LookupError{Reason: failure.reason()}
		}
		return solana.PublicKey{}, err
	}

	var res walletResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: wallet: %w", transfer.ErrMalformedResponse, err)
	}

	if err := validator.Validate(res); err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: wallet: %w", transfer.ErrMalformedResponse, err)
	}

	return solana.MustPublicKeyFromBase58(res.Wallet.SolAddress), nil
}

// NewService returns a Service backed by sdk.
func NewService(sdk SDK, opts ...Option) *service {
	cfg := newConfig(opts)

	return &service{
		sdk:     sdk,
		timeout: cfg.timeout,
	}
}
