package transfer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gabapcia/solsend/internal/pkg/logger"
	"github.com/gabapcia/solsend/internal/pkg/telemetry"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Builder assembles unsigned native-token transfers.
type Builder interface {
	Build(ctx context.Context, sender, recipient string, amount uint64) (UnsignedTransaction, error)
}

type builder struct {
	network Network
}

var _ Builder = (*builder)(nil)

// Build returns an unsigned transaction moving amount lamports from sender to
// recipient, anchored to a freshly fetched block reference.
//
// The transaction holds exactly one system transfer instruction and the sender
// is its fee payer. Inputs are validated before the network is contacted, so
// invalid requests never cost a round trip.
func (b *builder) Build(ctx context.Context, sender, recipient string, amount uint64) (UnsignedTransaction, error) {
	from, err := parseAddress("sender", sender)
	if err != nil {
		return UnsignedTransaction{}, err
	}

	to, err := parseAddress("recipient", recipient)
	if err != nil {
		return UnsignedTransaction{}, err
	}

	if amount == 0 {
		return UnsignedTransaction{}, ErrInvalidAmount
	}

	ctx, span := telemetry.Tracer().Start(ctx, "transfer.build", trace.WithAttributes(
		attribute.String("transfer.sender", from.String()),
		attribute.String("transfer.recipient", to.String()),
		attribute.String("transfer.amount", strconv.FormatUint(amount, 10)),
	))
	defer span.End()

	reference, err := b.network.FetchBlockReference(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch block reference")
		return UnsignedTransaction{}, err
	}

	logger.Debug(ctx, "block reference fetched",
		"block.hash", reference.Blockhash.String(),
		"block.last_valid_height", reference.LastValidBlockHeight,
	)

	instruction := system.NewTransferInstruction(amount, from, to).Build()

	tx, err := newUnsignedTransaction([]solana.Instruction{instruction}, reference, from)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "compile transaction")
		return UnsignedTransaction{}, err
	}

	return tx, nil
}

func parseAddress(role, address string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidAddress, role, address, err)
	}
	return key, nil
}

// NewBuilder returns a Builder that fetches block references from network.
func NewBuilder(network Network) *builder {
	return &builder{network: network}
}
