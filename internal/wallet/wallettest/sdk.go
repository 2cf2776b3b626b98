// Package wallettest provides an in-process wallet.SDK backed by a local
// ed25519 key, for tests that need real signatures.
package wallettest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gabapcia/solsend/internal/pkg/types"
	"github.com/gabapcia/solsend/internal/wallet"

	"github.com/gagliardetto/solana-go"
)

// SignRequest is a recorded SignTransaction call.
type SignRequest struct {
	Request wallet.TransactionRequest
	Reason  string
}

// SDK answers wallet requests asynchronously, like a remote provider would.
// Signatures are returned as "0x"-prefixed hex.
type SDK struct {
	key          solana.PrivateKey
	rejectReason string
	silent       bool

	mu       sync.Mutex
	requests []SignRequest
}

var _ wallet.SDK = (*SDK)(nil)

type Option func(*SDK)

// WithRejection makes every signing request fail with reason.
func WithRejection(reason string) Option {
	return func(s *SDK) {
		s.rejectReason = reason
	}
}

// WithoutAnswer makes signing requests never call back.
func WithoutAnswer() Option {
	return func(s *SDK) {
		s.silent = true
	}
}

// New returns an SDK holding key.
func New(key solana.PrivateKey, opts ...Option) *SDK {
	s := &SDK{key: key}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Address returns the public key of the held key.
func (s *SDK) Address() solana.PublicKey {
	return s.key.PublicKey()
}

// Requests returns the signing requests received so far.
func (s *SDK) Requests() []SignRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SignRequest(nil), s.requests...)
}

func (s *SDK) GetWallet(_ context.Context, cb wallet.Callback) {
	payload := mustJSON(map[string]any{
		"status": "SUCCESS",
		"wallet": map[string]string{
			"solAddress": s.key.PublicKey().String(),
		},
	})

	go cb.OnSuccess(payload)
}

func (s *SDK) SignTransaction(_ context.Context, request wallet.TransactionRequest, reason string, cb wallet.Callback) {
	s.mu.Lock()
	s.requests = append(s.requests, SignRequest{Request: request, Reason: reason})
	s.mu.Unlock()

	if s.silent {
		return
	}

	if s.rejectReason != "" {
		go cb.OnFailure(mustJSON(map[string]string{
			"status": "USER_REQUEST_DENIED",
			"reason": s.rejectReason,
		}))
		return
	}

	sig, err := s.key.Sign(request.SerializedTransactionMessage)
	if err != nil {
		go cb.OnFailure(mustJSON(map[string]string{"error": err.Error()}))
		return
	}

	go cb.OnSuccess(mustJSON(map[string]string{
		"status":    "SUCCESS",
		"signature": types.HexBytes(sig[:]).String(),
	}))
}

func mustJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
