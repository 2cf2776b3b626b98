package transfer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/gabapcia/solsend/internal/pkg/logger"
	"github.com/gabapcia/solsend/internal/pkg/telemetry"

	"github.com/gagliardetto/solana-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// Service runs transfer attempts end to end: build, sign, submit.
type Service interface {
	// Transfer runs a single attempt for intent and blocks until it reaches
	// a terminal state. The returned error is the same as Result.Err.
	// Only one attempt may run at a time; a concurrent call fails fast with
	// ErrAttemptInProgress and leaves the running attempt untouched.
	Transfer(ctx context.Context, intent Intent) (Result, error)
}

type service struct {
	mu sync.Mutex

	builder  Builder
	signer   Signer
	network  Network
	observer StateObserver

	attempts metric.Int64Counter
}

var _ Service = (*service)(nil)

func (s *service) Transfer(ctx context.Context, intent Intent) (Result, error) {
	if !s.mu.TryLock() {
		return Result{State: StateIdle, Err: ErrAttemptInProgress}, ErrAttemptInProgress
	}
	defer s.mu.Unlock()

	a := newAttempt(s.observer)
	ctx = logger.Derive(ctx, "attempt.id", a.id.String())

	ctx, span := telemetry.Tracer().Start(ctx, "transfer.attempt", trace.WithAttributes(
		attribute.String("attempt.id", a.id.String()),
	))
	defer span.End()

	logger.Info(ctx, "transfer attempt started",
		"transfer.sender", intent.Sender,
		"transfer.recipient", intent.Recipient,
		"transfer.amount", intent.Amount,
	)

	result := s.run(ctx, a, intent)

	s.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("state", result.State.String())))

	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, "transfer failed")
		logger.Error(ctx, "transfer attempt failed",
			"error", result.Err,
			"error.retryable", IsRetryable(result.Err),
			"transfer.transaction_id", result.TransactionID,
		)
		return result, result.Err
	}

	span.SetAttributes(attribute.String("transfer.transaction_id", result.TransactionID))
	logger.Info(ctx, "transfer attempt succeeded", "transfer.transaction_id", result.TransactionID)

	return result, nil
}

func (s *service) run(ctx context.Context, a *attempt, intent Intent) Result {
	a.moveTo(ctx, StateBuildingTransaction)

	unsigned, err := s.builder.Build(ctx, intent.Sender, intent.Recipient, intent.Amount)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.moveTo(ctx, StateAwaitingSignature)

	reason := intent.Reason
	if reason == "" {
		reason = DefaultReason(intent.Amount, intent.Recipient)
	}

	signature, err := s.sign(ctx, unsigned, reason)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.moveTo(ctx, StateSubmitting)

	transactionID, err := s.submit(ctx, unsigned, signature)
	if err != nil {
		result := a.fail(ctx, err)
		result.TransactionID = transactionID
		return result
	}

	return a.succeed(ctx, transactionID)
}

func (s *service) sign(ctx context.Context, unsigned UnsignedTransaction, reason string) (solana.Signature, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "transfer.sign")
	defer span.End()

	signature, err := s.signer.RequestSignature(ctx, unsigned, reason)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request signature")
		return solana.Signature{}, err
	}

	return signature, nil
}

func (s *service) submit(ctx context.Context, unsigned UnsignedTransaction, signature solana.Signature) (string, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "transfer.submit")
	defer span.End()

	signed, err := unsigned.Attach(signature)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "attach signature")
		return "", err
	}

	raw, err := signed.Bytes()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "serialize transaction")
		return "", fmt.Errorf("serialize signed transaction: %w", err)
	}

	transactionID, err := s.network.Submit(ctx, raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "submit transaction")

		// The node may have accepted the transaction before the connection
		// failed, or accepted it and answered with an unreadable result.
		if errors.Is(err, ErrNetworkUnavailable) || errors.Is(err, ErrMalformedResponse) {
			return signed.Signature().String(), fmt.Errorf("%w: %w", ErrSubmissionOutcomeUnknown, err)
		}
		return "", err
	}

	return transactionID, nil
}

// DefaultReason describes a transfer for the user approving its signature.
func DefaultReason(amount uint64, recipient string) string {
	sol := strconv.FormatFloat(float64(amount)/float64(solana.LAMPORTS_PER_SOL), 'f', -1, 64)
	return fmt.Sprintf("Transfer %s SOL to %s", sol, recipient)
}

type config struct {
	builder  Builder
	observer StateObserver
}

type Option func(*config)

// New returns a Service submitting through network and signing through signer.
func New(network Network, signer Signer, opts ...Option) *service {
	cfg := config{
		builder: NewBuilder(network),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var attempts metric.Int64Counter = noop.Int64Counter{}
	counter, err := telemetry.Meter().Int64Counter("transfer.attempts",
		metric.WithDescription("Transfer attempts by terminal state"),
	)
	if err == nil {
		attempts = counter
	}

	return &service{
		builder:  cfg.builder,
		signer:   signer,
		network:  network,
		observer: cfg.observer,
		attempts: attempts,
	}
}

// WithStateObserver registers a callback invoked on every state change.
func WithStateObserver(observer StateObserver) Option {
	return func(c *config) {
		c.observer = observer
	}
}

// WithBuilder replaces the default Builder.
func WithBuilder(b Builder) Option {
	return func(c *config) {
		c.builder = b
	}
}
